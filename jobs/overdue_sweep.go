package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// OverdueMarker is the slice of the invoice service the sweep needs.
type OverdueMarker interface {
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// OverdueSweepJob marks sent invoices past their due date as Te laat.
type OverdueSweepJob struct {
	marker OverdueMarker
	logger *slog.Logger
}

// NewOverdueSweepJob constructs the job.
func NewOverdueSweepJob(marker OverdueMarker, logger *slog.Logger) *OverdueSweepJob {
	return &OverdueSweepJob{marker: marker, logger: logger}
}

// Handle processes TaskInvoiceOverdueSweep tasks.
func (j *OverdueSweepJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload OverdueSweepPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	asOf := payload.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	changed, err := j.marker.MarkOverdue(ctx, asOf)
	if err != nil {
		j.logger.Error("overdue sweep", slog.Any("error", err))
		return err
	}
	j.logger.Info("overdue sweep finished",
		slog.Time("asOf", asOf),
		slog.Int64("marked", changed))
	return nil
}
