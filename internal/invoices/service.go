package invoices

import (
	"context"
	"fmt"
	"time"
)

// Repository abstracts invoice storage.
type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id int64) (*Invoice, error)
	Create(ctx context.Context, inv Invoice) (*Invoice, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*Invoice, error)
	Delete(ctx context.Context, id int64) (bool, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// Service coordinates invoice operations.
type Service struct {
	repo Repository
}

// NewService builds a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.Get(ctx, id)
}

func itemsFromInput(in []InvoiceItemInput) []InvoiceItem {
	items := make([]InvoiceItem, 0, len(in))
	for _, it := range in {
		items = append(items, InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

// Create stores a new invoice. When no explicit amount is given the total
// is derived from the lines.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	inv := Invoice{
		CustomerID:  req.CustomerID,
		WorkOrderID: req.WorkOrderID,
		Status:      req.Status,
		Amount:      req.Amount,
		Items:       itemsFromInput(req.Items),
		Notes:       req.Notes,
	}
	if inv.Status == "" {
		inv.Status = StatusDraft
	}
	if req.Date != nil {
		inv.Date = *req.Date
	} else {
		inv.Date = time.Now().UTC()
	}
	inv.DueDate = req.DueDate
	if inv.Amount == 0 {
		inv.Amount = inv.ItemTotal()
	}
	created, err := s.repo.Create(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*Invoice, error) {
	updates := make(map[string]any)
	if req.CustomerID != nil {
		updates["customer_id"] = *req.CustomerID
	}
	if req.WorkOrderID != nil {
		updates["work_order_id"] = *req.WorkOrderID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Items != nil {
		items := itemsFromInput(req.Items)
		updates["items"] = items
		// Replacing the lines without an explicit amount re-derives it.
		if req.Amount == nil {
			var sum float64
			for _, it := range items {
				sum += it.Total()
			}
			updates["amount"] = sum
		}
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, id)
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// MarkOverdue flips sent invoices past their due date to Te laat and
// returns how many were changed. The overdue sweep job runs this daily.
func (s *Service) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return s.repo.MarkOverdue(ctx, asOf)
}
