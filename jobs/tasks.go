// Package jobs holds the background task definitions and the Asynq worker.
package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskInvoiceOverdueSweep flips sent invoices past their due date.
	TaskInvoiceOverdueSweep = "invoice:overdue_sweep"
	// TaskMaterialLowStockReport summarises articles under their threshold.
	TaskMaterialLowStockReport = "material:low_stock_report"
)

// OverdueSweepPayload parameterises the sweep moment. A zero AsOf means
// "now" at processing time.
type OverdueSweepPayload struct {
	AsOf time.Time `json:"asOf,omitempty"`
}

// NewOverdueSweepTask constructs the sweep task.
func NewOverdueSweepTask(payload OverdueSweepPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInvoiceOverdueSweep, data), nil
}

// LowStockReportPayload limits the report length. Zero means no limit.
type LowStockReportPayload struct {
	Limit int `json:"limit,omitempty"`
}

// NewLowStockReportTask constructs the report task.
func NewLowStockReportTask(payload LowStockReportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMaterialLowStockReport, data), nil
}
