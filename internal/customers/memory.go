package customers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/installdesk/installdesk/internal/sequence"
)

// MemoryRepository is the in-process storage driver. It backs local
// development without PostgreSQL and the service tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[int64]Customer
	nextID  int64
	codes   *sequence.Counter
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository(codes *sequence.Counter) *MemoryRepository {
	if codes == nil {
		codes = sequence.NewCounter()
	}
	return &MemoryRepository{records: make(map[int64]Customer), codes: codes}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Customer, 0, len(r.records))
	for _, c := range r.records {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *MemoryRepository) Create(ctx context.Context, c Customer) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	r.nextID++
	c.ID = r.nextID
	c.CustomerNumber = r.codes.Next(sequence.ClassCustomer, now)
	c.CreatedAt = now
	c.UpdatedAt = now
	r.records[c.ID] = c
	return &c, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, updates map[string]any) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	for col, v := range updates {
		switch col {
		case "name":
			c.Name = v.(string)
		case "email":
			c.Email = v.(string)
		case "phone":
			c.Phone = v.(string)
		case "address":
			c.Address = v.(string)
		case "postal_code":
			c.PostalCode = v.(string)
		case "city":
			c.City = v.(string)
		case "status":
			c.Status = v.(string)
		case "notes":
			c.Notes = v.(string)
		}
	}
	c.UpdatedAt = time.Now().UTC()
	r.records[id] = c
	return &c, nil
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
