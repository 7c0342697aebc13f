package invoices

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/installdesk/installdesk/internal/sequence"
)

// MemoryRepository is the in-process storage driver.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[int64]Invoice
	nextID  int64
	codes   *sequence.Counter
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository(codes *sequence.Counter) *MemoryRepository {
	if codes == nil {
		codes = sequence.NewCounter()
	}
	return &MemoryRepository{records: make(map[int64]Invoice), codes: codes}
}

func cloneInvoice(inv Invoice) Invoice {
	inv.Items = append([]InvoiceItem(nil), inv.Items...)
	return inv
}

func (r *MemoryRepository) List(ctx context.Context) ([]Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Invoice, 0, len(r.records))
	for _, inv := range r.records {
		out = append(out, cloneInvoice(inv))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	inv = cloneInvoice(inv)
	return &inv, nil
}

func (r *MemoryRepository) Create(ctx context.Context, inv Invoice) (*Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	r.nextID++
	inv.ID = r.nextID
	inv.InvoiceNumber = r.codes.Next(sequence.ClassInvoice, now)
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.Items == nil {
		inv.Items = []InvoiceItem{}
	}
	r.records[inv.ID] = cloneInvoice(inv)
	return &inv, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, updates map[string]any) (*Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	for col, v := range updates {
		switch col {
		case "customer_id":
			inv.CustomerID = v.(int64)
		case "work_order_id":
			w := v.(int64)
			inv.WorkOrderID = &w
		case "status":
			inv.Status = v.(string)
		case "date":
			inv.Date = v.(time.Time)
		case "due_date":
			d := v.(time.Time)
			inv.DueDate = &d
		case "amount":
			inv.Amount = v.(float64)
		case "items":
			inv.Items = append([]InvoiceItem(nil), v.([]InvoiceItem)...)
		case "notes":
			inv.Notes = v.(string)
		}
	}
	inv.UpdatedAt = time.Now().UTC()
	r.records[id] = inv
	inv = cloneInvoice(inv)
	return &inv, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *MemoryRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var changed int64
	for id, inv := range r.records {
		if inv.Status == StatusSent && inv.DueDate != nil && inv.DueDate.Before(asOf) {
			inv.Status = StatusOverdue
			inv.UpdatedAt = time.Now().UTC()
			r.records[id] = inv
			changed++
		}
	}
	return changed, nil
}
