package jobs

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/installdesk/installdesk/internal/invoices"
	"github.com/installdesk/installdesk/internal/materials"
)

func TestOverdueSweepMarksSentInvoices(t *testing.T) {
	repo := invoices.NewMemoryRepository(nil)
	svc := invoices.NewService(repo)
	ctx := context.Background()

	past := time.Now().UTC().AddDate(0, 0, -30)
	inv, err := svc.Create(ctx, invoices.CreateInvoiceRequest{
		CustomerID: 1,
		Status:     invoices.StatusSent,
		DueDate:    &past,
	})
	require.NoError(t, err)

	task, err := NewOverdueSweepTask(OverdueSweepPayload{})
	require.NoError(t, err)

	job := NewOverdueSweepJob(svc, slog.Default())
	require.NoError(t, job.Handle(ctx, task))

	got, err := svc.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, invoices.StatusOverdue, got.Status)
}

func TestLowStockReportHandlesEmptyCatalog(t *testing.T) {
	svc := materials.NewService(materials.NewMemoryRepository(nil))

	task, err := NewLowStockReportTask(LowStockReportPayload{Limit: 10})
	require.NoError(t, err)

	job := NewLowStockReportJob(svc, slog.Default())
	require.NoError(t, job.Handle(context.Background(), task))
}

func TestLowStockReportListsDepletedArticles(t *testing.T) {
	svc := materials.NewService(materials.NewMemoryRepository(nil))
	ctx := context.Background()

	threshold := 5
	_, err := svc.Create(ctx, materials.CreateMaterialRequest{Name: "Zekering 16A", Stock: 1, MinStock: &threshold})
	require.NoError(t, err)

	task, err := NewLowStockReportTask(LowStockReportPayload{})
	require.NoError(t, err)

	job := NewLowStockReportJob(svc, slog.Default())
	require.NoError(t, job.Handle(ctx, task))
}
