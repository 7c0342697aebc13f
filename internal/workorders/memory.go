package workorders

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
	records map[int64]WorkOrder
	nextID  int64
	codes   *sequence.Counter
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository(codes *sequence.Counter) *MemoryRepository {
	if codes == nil {
		codes = sequence.NewCounter()
	}
	return &MemoryRepository{records: make(map[int64]WorkOrder), codes: codes}
}

// clone deep-copies the slices so callers cannot mutate stored state.
func clone(w WorkOrder) WorkOrder {
	w.Materials = append([]MaterialLine(nil), w.Materials...)
	w.Photos = append([]Photo(nil), w.Photos...)
	return w
}

func (r *MemoryRepository) List(ctx context.Context) ([]WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]WorkOrder, 0, len(r.records))
	for _, w := range r.records {
		out = append(out, clone(w))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	w = clone(w)
	return &w, nil
}

func (r *MemoryRepository) Create(ctx context.Context, w WorkOrder) (*WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	r.nextID++
	w.ID = r.nextID
	w.OrderNumber = r.codes.Next(sequence.ClassWorkOrder, now)
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Materials == nil {
		w.Materials = []MaterialLine{}
	}
	if w.Photos == nil {
		w.Photos = []Photo{}
	}
	r.records[w.ID] = clone(w)
	return &w, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, updates map[string]any) (*WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	for col, v := range updates {
		switch col {
		case "customer_id":
			w.CustomerID = v.(int64)
		case "title":
			w.Title = v.(string)
		case "description":
			w.Description = v.(string)
		case "location":
			w.Location = v.(string)
		case "status":
			w.Status = v.(string)
		case "scheduled_date":
			d := v.(time.Time)
			w.ScheduledDate = &d
		case "labor_hours":
			w.LaborHours = v.(float64)
		case "notes":
			w.Notes = v.(string)
		}
	}
	w.UpdatedAt = time.Now().UTC()
	r.records[id] = w
	w = clone(w)
	return &w, nil
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

func (r *MemoryRepository) Complete(ctx context.Context, id int64, c Completion) (*WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := time.Now().UTC()
	w.Status = StatusCompleted
	w.LaborHours = c.LaborHours
	w.Notes = c.Notes
	w.Photos = append(append([]Photo(nil), w.Photos...), c.Photos...)
	w.CompletedAt = &now
	w.UpdatedAt = now
	r.records[id] = w
	w = clone(w)
	return &w, nil
}

func (r *MemoryRepository) AppendMaterial(ctx context.Context, id int64, line MaterialLine) (*WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	w.Materials = append(append([]MaterialLine(nil), w.Materials...), line)
	w.UpdatedAt = time.Now().UTC()
	r.records[id] = w
	w = clone(w)
	return &w, nil
}
