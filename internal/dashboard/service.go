package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/installdesk/installdesk/internal/customers"
	"github.com/installdesk/installdesk/internal/invoices"
	"github.com/installdesk/installdesk/internal/materials"
	"github.com/installdesk/installdesk/internal/workorders"
)

// Source ports over the entity services. The aggregator takes no
// cross-collection transaction: each read sees its own snapshot and a
// slightly inconsistent dashboard is acceptable.
type (
	CustomerLister interface {
		List(ctx context.Context) ([]customers.Customer, error)
	}
	MaterialStock interface {
		LowStock(ctx context.Context) ([]materials.Material, error)
	}
	WorkOrderLister interface {
		List(ctx context.Context) ([]workorders.WorkOrder, error)
	}
	InvoiceLister interface {
		List(ctx context.Context) ([]invoices.Invoice, error)
	}
	ProjectCounter interface {
		CountActive(ctx context.Context) (int, error)
	}
)

// Service computes dashboard statistics.
type Service struct {
	customers  CustomerLister
	materials  MaterialStock
	workOrders WorkOrderLister
	invoices   InvoiceLister
	projects   ProjectCounter
	cache      *Cache
	now        func() time.Time
}

// NewService builds a Service. cache may be nil.
func NewService(c CustomerLister, m MaterialStock, w WorkOrderLister, i InvoiceLister, p ProjectCounter, cache *Cache) *Service {
	return &Service{
		customers:  c,
		materials:  m,
		workOrders: w,
		invoices:   i,
		projects:   p,
		cache:      cache,
		now:        time.Now,
	}
}

// Stats returns the dashboard payload, served from cache when fresh.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := s.cache.FetchJSON(ctx, statsCacheKey, &stats, func(ctx context.Context) (interface{}, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// compute fans the five reads out concurrently and folds the results.
func (s *Service) compute(ctx context.Context) (*Stats, error) {
	var (
		customerList []customers.Customer
		lowStock     []materials.Material
		orderList    []workorders.WorkOrder
		invoiceList  []invoices.Invoice
		activeCount  int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customerList, err = s.customers.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		lowStock, err = s.materials.LowStock(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		orderList, err = s.workOrders.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		invoiceList, err = s.invoices.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		activeCount, err = s.projects.CountActive(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := Stats{
		TotalCustomers: len(customerList),
		ActiveProjects: activeCount,
		WorkOrderCount: make(map[string]int),
		InvoiceCount:   make(map[string]int),
	}

	for _, w := range orderList {
		stats.WorkOrderCount[w.Status]++
	}
	for _, inv := range invoiceList {
		stats.InvoiceCount[inv.Status]++
	}

	if len(lowStock) > lowStockCap {
		lowStock = lowStock[:lowStockCap]
	}
	if lowStock == nil {
		lowStock = []materials.Material{}
	}
	stats.LowStock = lowStock

	recent := append([]invoices.Invoice(nil), invoiceList...)
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > recentInvoicesCap {
		recent = recent[:recentInvoicesCap]
	}
	if recent == nil {
		recent = []invoices.Invoice{}
	}
	stats.RecentInvoices = recent

	year := s.now().UTC().Year()
	for _, inv := range invoiceList {
		if !inv.CountsTowardRevenue() {
			continue
		}
		if inv.Date.UTC().Year() != year {
			continue
		}
		stats.MonthlyRevenue[int(inv.Date.UTC().Month())-1] += inv.Amount
	}

	return &stats, nil
}
