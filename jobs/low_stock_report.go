package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/installdesk/installdesk/internal/materials"
)

// LowStockLister is the slice of the material service the report needs.
type LowStockLister interface {
	LowStock(ctx context.Context) ([]materials.Material, error)
}

// LowStockReportJob writes a daily stock warning to the log so the office
// sees which articles need reordering. The report body is rendered in
// Dutch, matching the rest of the user-facing text.
type LowStockReportJob struct {
	lister  LowStockLister
	logger  *slog.Logger
	printer *message.Printer
}

// NewLowStockReportJob constructs the job.
func NewLowStockReportJob(lister LowStockLister, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		lister:  lister,
		logger:  logger,
		printer: message.NewPrinter(language.Dutch),
	}
}

// Handle processes TaskMaterialLowStockReport tasks.
func (j *LowStockReportJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload LowStockReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	items, err := j.lister.LowStock(ctx)
	if err != nil {
		j.logger.Error("low stock report", slog.Any("error", err))
		return err
	}
	if len(items) == 0 {
		j.logger.Info("low stock report: voorraad op peil")
		return nil
	}
	if payload.Limit > 0 && len(items) > payload.Limit {
		items = items[:payload.Limit]
	}
	var b strings.Builder
	for i, m := range items {
		if i > 0 {
			b.WriteString("; ")
		}
		threshold := 0
		if m.MinStock != nil {
			threshold = *m.MinStock
		}
		b.WriteString(j.printer.Sprintf("%s (%s): voorraad %d, minimum %d",
			m.Name, m.ArticleNumber, m.Stock, threshold))
	}
	j.logger.Warn(j.printer.Sprintf("%d artikelen onder minimumvoorraad", len(items)),
		slog.String("report", b.String()))
	return nil
}
