package materials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(nil))
}

func intp(v int) *int { return &v }

func TestCreateAssignsGlobalArticleNumbers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateMaterialRequest{Name: "Kabelgoot 60mm"})
	require.NoError(t, err)
	require.Equal(t, "ART-000001", first.ArticleNumber)

	second, err := svc.Create(ctx, CreateMaterialRequest{Name: "Wandcontactdoos"})
	require.NoError(t, err)
	require.Equal(t, "ART-000002", second.ArticleNumber)
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateMaterialRequest{
		Name:        "Flexbuis 20mm",
		Description: "50m rol",
		Unit:        "rol",
		UnitPrice:   21.95,
		Stock:       14,
		MinStock:    intp(3),
		Supplier:    "Technische Unie",
		Category:    "Installatiemateriaal",
	})
	require.NoError(t, err)
	require.Equal(t, "ART-000001", created.ArticleNumber)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestAdjustStockGuardsAgainstNegative(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateMaterialRequest{Name: "Installatiedraad 2.5mm", Stock: 10})
	require.NoError(t, err)

	m, err = svc.AdjustStock(ctx, m.ID, -4)
	require.NoError(t, err)
	require.Equal(t, 6, m.Stock)

	_, err = svc.AdjustStock(ctx, m.ID, -7)
	require.ErrorIs(t, err, ErrNegativeStock)

	// The failed adjustment leaves stock untouched.
	m, err = svc.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, 6, m.Stock)
}

func TestAdjustStockMissingMaterial(t *testing.T) {
	svc := newTestService()
	_, err := svc.AdjustStock(context.Background(), 404, 5)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLowStockThreshold(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	low, err := svc.Create(ctx, CreateMaterialRequest{Name: "Zekering 16A", Stock: 2, MinStock: intp(5)})
	require.NoError(t, err)
	atThreshold, err := svc.Create(ctx, CreateMaterialRequest{Name: "Lasdop", Stock: 5, MinStock: intp(5)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateMaterialRequest{Name: "Buis 16mm", Stock: 100, MinStock: intp(5)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateMaterialRequest{Name: "Zonder drempel", Stock: 0})
	require.NoError(t, err)

	items, err := svc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Sorted by shortfall: the most depleted article first.
	require.Equal(t, low.ID, items[0].ID)
	require.Equal(t, atThreshold.ID, items[1].ID)
}

func TestUpdateNeverChangesArticleNumber(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateMaterialRequest{Name: "Doorvoertule"})
	require.NoError(t, err)

	bogus := "ART-999999"
	price := 1.25
	updated, err := svc.Update(ctx, m.ID, UpdateMaterialRequest{
		ArticleNumber: &bogus,
		UnitPrice:     &price,
	})
	require.NoError(t, err)
	require.Equal(t, m.ArticleNumber, updated.ArticleNumber)
	require.Equal(t, 1.25, updated.UnitPrice)
}
