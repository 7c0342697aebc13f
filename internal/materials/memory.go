package materials

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
	records map[int64]Material
	nextID  int64
	codes   *sequence.Counter
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository(codes *sequence.Counter) *MemoryRepository {
	if codes == nil {
		codes = sequence.NewCounter()
	}
	return &MemoryRepository{records: make(map[int64]Material), codes: codes}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Material, 0, len(r.records))
	for _, m := range r.records {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *MemoryRepository) Create(ctx context.Context, m Material) (*Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	r.nextID++
	m.ID = r.nextID
	m.ArticleNumber = r.codes.Next(sequence.ClassMaterial, now)
	m.CreatedAt = now
	m.UpdatedAt = now
	r.records[m.ID] = m
	return &m, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, updates map[string]any) (*Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	for col, v := range updates {
		switch col {
		case "name":
			m.Name = v.(string)
		case "description":
			m.Description = v.(string)
		case "unit":
			m.Unit = v.(string)
		case "unit_price":
			m.UnitPrice = v.(float64)
		case "stock":
			m.Stock = v.(int)
		case "min_stock":
			min := v.(int)
			m.MinStock = &min
		case "supplier":
			m.Supplier = v.(string)
		case "category":
			m.Category = v.(string)
		}
	}
	m.UpdatedAt = time.Now().UTC()
	r.records[id] = m
	return &m, nil
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

func (r *MemoryRepository) AdjustStock(ctx context.Context, id int64, delta int) (*Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.Stock+delta < 0 {
		return nil, ErrNegativeStock
	}
	m.Stock += delta
	m.UpdatedAt = time.Now().UTC()
	r.records[id] = m
	return &m, nil
}

func (r *MemoryRepository) LowStock(ctx context.Context) ([]Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Material
	for _, m := range r.records {
		if m.LowOnStock() {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di := out[i].Stock - *out[i].MinStock
		dj := out[j].Stock - *out[j].MinStock
		if di != dj {
			return di < dj
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
