package workorders

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/installdesk/installdesk/internal/materials"
)

func newTestService(t *testing.T) (*Service, *materials.Service) {
	t.Helper()
	catalog := materials.NewMemoryRepository(nil)
	svc := NewService(NewMemoryRepository(nil), catalog, nil, slog.Default())
	return svc, materials.NewService(catalog)
}

func floatp(v float64) *float64 { return &v }

func TestCreateAssignsYearScopedOrderNumbers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	year := time.Now().UTC().Year()

	for i := 1; i <= 2; i++ {
		w, err := svc.Create(ctx, CreateWorkOrderRequest{CustomerID: 1, Title: fmt.Sprintf("Klus %d", i)})
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("WB-%d-%04d", year, i), w.OrderNumber)
		require.Equal(t, StatusScheduled, w.Status)
	}
}

func TestCompleteSetsStatusHoursAndNotes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWorkOrderRequest{CustomerID: 1, Title: "CV-ketel vervangen"})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, w.ID, CompleteWorkOrderRequest{
		Notes:      "done",
		LaborHours: floatp(3.5),
		Photos:     []string{},
	})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, done.Status)
	require.Equal(t, 3.5, done.LaborHours)
	require.Equal(t, "done", done.Notes)
	require.NotNil(t, done.CompletedAt)
	require.Empty(t, done.Photos)
}

func TestCompleteWithZeroHoursAndPhotos(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWorkOrderRequest{CustomerID: 1, Title: "Garantiebezoek"})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, w.ID, CompleteWorkOrderRequest{
		LaborHours: floatp(0),
		Photos:     []string{"Zm90bzE=", "Zm90bzI="},
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, done.LaborHours)
	require.Len(t, done.Photos, 2)
	for _, p := range done.Photos {
		require.NotEmpty(t, p.ID)
		require.False(t, p.UploadedAt.IsZero())
	}
}

func TestCompleteMissingOrder(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Complete(context.Background(), 404, CompleteWorkOrderRequest{LaborHours: floatp(1)})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddMaterialSnapshotsCatalogPrice(t *testing.T) {
	svc, catalog := newTestService(t)
	ctx := context.Background()

	article, err := catalog.Create(ctx, materials.CreateMaterialRequest{Name: "Koperen buis 15mm", UnitPrice: 4.50})
	require.NoError(t, err)

	w, err := svc.Create(ctx, CreateWorkOrderRequest{CustomerID: 1, Title: "Leidingwerk"})
	require.NoError(t, err)

	w, err = svc.AddMaterial(ctx, w.ID, AddMaterialRequest{MaterialID: article.ID, Quantity: 6})
	require.NoError(t, err)
	require.Len(t, w.Materials, 1)
	require.Equal(t, 4.50, w.Materials[0].UnitPrice)

	// A later catalogue price change must not rewrite the recorded line.
	newPrice := 9.99
	_, err = catalog.Update(ctx, article.ID, materials.UpdateMaterialRequest{UnitPrice: &newPrice})
	require.NoError(t, err)

	w, err = svc.Get(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, 4.50, w.Materials[0].UnitPrice)
	require.Equal(t, "Koperen buis 15mm", w.Materials[0].Name)
}

func TestAddMaterialUnknownArticle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWorkOrderRequest{CustomerID: 1, Title: "Klus"})
	require.NoError(t, err)

	_, err = svc.AddMaterial(ctx, w.ID, AddMaterialRequest{MaterialID: 404, Quantity: 1})
	require.ErrorIs(t, err, materials.ErrNotFound)
}

func TestUpdateNeverChangesOrderNumber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWorkOrderRequest{CustomerID: 1, Title: "Klus"})
	require.NoError(t, err)

	bogus := "WB-1999-9999"
	status := StatusInProgress
	updated, err := svc.Update(ctx, w.ID, UpdateWorkOrderRequest{OrderNumber: &bogus, Status: &status})
	require.NoError(t, err)
	require.Equal(t, w.OrderNumber, updated.OrderNumber)
	require.Equal(t, StatusInProgress, updated.Status)
}

func TestDeleteReportsExistence(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWorkOrderRequest{CustomerID: 1, Title: "Klus"})
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, w.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Delete(ctx, w.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
