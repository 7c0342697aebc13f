// Package invoices manages billing documents.
package invoices

import (
	"fmt"
	"time"

	"github.com/installdesk/installdesk/internal/platform/httpx"
)

// ErrNotFound indicates the requested invoice does not exist.
var ErrNotFound = fmt.Errorf("invoices: %w", httpx.ErrNotFound)

// Invoice statuses. Concept invoices are drafts and excluded from revenue.
const (
	StatusDraft   = "Concept"
	StatusSent    = "Verzonden"
	StatusPaid    = "Betaald"
	StatusOverdue = "Te laat"
)

// InvoiceItem is a billed line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Total returns the line total.
func (i InvoiceItem) Total() float64 {
	return i.Quantity * i.UnitPrice
}

// Invoice is a billing document. InvoiceNumber (F-YYYY-NNNN) is assigned at
// creation and immutable. CustomerID and WorkOrderID are weak references.
type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	CustomerID    int64         `json:"customerId"`
	WorkOrderID   *int64        `json:"workOrderId,omitempty"`
	Status        string        `json:"status"`
	Date          time.Time     `json:"date"`
	DueDate       *time.Time    `json:"dueDate,omitempty"`
	Amount        float64       `json:"amount"`
	Items         []InvoiceItem `json:"items"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// ItemTotal sums the line totals.
func (inv Invoice) ItemTotal() float64 {
	var sum float64
	for _, it := range inv.Items {
		sum += it.Total()
	}
	return sum
}

// CountsTowardRevenue reports whether the invoice contributes to revenue
// figures. Drafts do not.
func (inv Invoice) CountsTowardRevenue() bool {
	return inv.Status != StatusDraft
}
