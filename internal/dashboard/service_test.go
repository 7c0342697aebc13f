package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/installdesk/installdesk/internal/customers"
	"github.com/installdesk/installdesk/internal/invoices"
	"github.com/installdesk/installdesk/internal/materials"
	"github.com/installdesk/installdesk/internal/projects"
	"github.com/installdesk/installdesk/internal/workorders"
)

type fixture struct {
	customers *customers.Service
	materials *materials.Service
	invoices  *invoices.Service
	projects  *projects.Service
	service   *Service
}

func newFixture(t *testing.T, cache *Cache) *fixture {
	t.Helper()
	custSvc := customers.NewService(customers.NewMemoryRepository(nil))
	matRepo := materials.NewMemoryRepository(nil)
	matSvc := materials.NewService(matRepo)
	woSvc := workorders.NewService(workorders.NewMemoryRepository(nil), matRepo, nil, nil)
	invSvc := invoices.NewService(invoices.NewMemoryRepository(nil))
	projSvc := projects.NewService(projects.NewMemoryRepository())
	return &fixture{
		customers: custSvc,
		materials: matSvc,
		invoices:  invSvc,
		projects:  projSvc,
		service:   NewService(custSvc, matSvc, woSvc, invSvc, projSvc, cache),
	}
}

func intp(v int) *int { return &v }

func TestStatsFoldsAllCollections(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		_, err := f.customers.Create(ctx, customers.CreateCustomerRequest{Name: fmt.Sprintf("Klant %d", i)})
		require.NoError(t, err)
	}
	_, err := f.projects.Create(ctx, projects.CreateProjectRequest{Name: "Actief", CustomerID: 1, Status: projects.StatusInProgress})
	require.NoError(t, err)
	_, err = f.materials.Create(ctx, materials.CreateMaterialRequest{Name: "Zekering", Stock: 1, MinStock: intp(5)})
	require.NoError(t, err)

	sent := now.AddDate(0, 0, -1)
	_, err = f.invoices.Create(ctx, invoices.CreateInvoiceRequest{CustomerID: 1, Status: invoices.StatusSent, Date: &sent, Amount: 300})
	require.NoError(t, err)
	_, err = f.invoices.Create(ctx, invoices.CreateInvoiceRequest{CustomerID: 1, Status: invoices.StatusDraft, Date: &sent, Amount: 999})
	require.NoError(t, err)

	stats, err := f.service.Stats(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, stats.TotalCustomers)
	require.Equal(t, 1, stats.ActiveProjects)
	require.Len(t, stats.LowStock, 1)
	require.Equal(t, 1, stats.InvoiceCount[invoices.StatusSent])
	require.Equal(t, 1, stats.InvoiceCount[invoices.StatusDraft])

	// Draft amounts never count toward revenue.
	month := int(sent.Month()) - 1
	require.Equal(t, 300.0, stats.MonthlyRevenue[month])
}

func TestStatsCapsLowStockAndRecentInvoices(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 8; i++ {
		_, err := f.materials.Create(ctx, materials.CreateMaterialRequest{Name: fmt.Sprintf("Artikel %d", i), Stock: 0, MinStock: intp(1)})
		require.NoError(t, err)
	}
	var newest int64
	for i := 0; i < 8; i++ {
		date := now.AddDate(0, 0, -i)
		inv, err := f.invoices.Create(ctx, invoices.CreateInvoiceRequest{CustomerID: 1, Date: &date})
		require.NoError(t, err)
		if i == 0 {
			newest = inv.ID
		}
	}

	stats, err := f.service.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.LowStock, 5)
	require.Len(t, stats.RecentInvoices, 5)
	require.Equal(t, newest, stats.RecentInvoices[0].ID)
}

func TestStatsServedFromCacheUntilInvalidated(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	cache := NewCache(client, time.Minute)

	f := newFixture(t, cache)
	ctx := context.Background()

	_, err := f.customers.Create(ctx, customers.CreateCustomerRequest{Name: "Eerste"})
	require.NoError(t, err)

	stats, err := f.service.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalCustomers)

	_, err = f.customers.Create(ctx, customers.CreateCustomerRequest{Name: "Tweede"})
	require.NoError(t, err)

	// The cached payload is returned until the TTL or an invalidation.
	stats, err = f.service.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalCustomers)

	require.NoError(t, cache.Invalidate(ctx))
	stats, err = f.service.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalCustomers)
}
