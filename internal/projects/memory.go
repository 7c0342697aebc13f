package projects

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is the in-process storage driver.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[int64]Project
	nextID  int64
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[int64]Project)}
}

func cloneProject(p Project) Project {
	p.WorkOrderIDs = append([]int64(nil), p.WorkOrderIDs...)
	return p
}

func (r *MemoryRepository) List(ctx context.Context) ([]Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Project, 0, len(r.records))
	for _, p := range r.records {
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = cloneProject(p)
	return &p, nil
}

func (r *MemoryRepository) Create(ctx context.Context, p Project) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.WorkOrderIDs == nil {
		p.WorkOrderIDs = []int64{}
	}
	r.records[p.ID] = cloneProject(p)
	return &p, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, updates map[string]any) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	for col, v := range updates {
		switch col {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case "customer_id":
			p.CustomerID = v.(int64)
		case "status":
			p.Status = v.(string)
		case "progress":
			p.Progress = v.(int)
		case "start_date":
			d := v.(time.Time)
			p.StartDate = &d
		case "end_date":
			d := v.(time.Time)
			p.EndDate = &d
		case "work_order_ids":
			p.WorkOrderIDs = append([]int64(nil), v.([]int64)...)
		}
	}
	p.UpdatedAt = time.Now().UTC()
	r.records[id] = p
	p = cloneProject(p)
	return &p, nil
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

func (r *MemoryRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int
	for _, p := range r.records {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}
