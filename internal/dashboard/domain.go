// Package dashboard folds the entity collections into summary statistics.
package dashboard

import (
	"github.com/installdesk/installdesk/internal/invoices"
	"github.com/installdesk/installdesk/internal/materials"
)

// Caps for the dashboard lists.
const (
	lowStockCap       = 5
	recentInvoicesCap = 5
)

// Stats is the dashboard payload. MonthlyRevenue holds one entry per month
// of the current calendar year, January first; draft invoices are excluded.
type Stats struct {
	TotalCustomers int                  `json:"totalCustomers"`
	ActiveProjects int                  `json:"activeProjects"`
	WorkOrderCount map[string]int       `json:"workOrderCounts"`
	InvoiceCount   map[string]int       `json:"invoiceCounts"`
	LowStock       []materials.Material `json:"lowStock"`
	RecentInvoices []invoices.Invoice   `json:"recentInvoices"`
	MonthlyRevenue [12]float64          `json:"monthlyRevenue"`
}
