package projects

import (
	"context"
	"fmt"
)

// Repository abstracts project storage.
type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, p Project) (*Project, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// Service coordinates project operations.
type Service struct {
	repo Repository
}

// NewService builds a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	p := Project{
		Name:         req.Name,
		Description:  req.Description,
		CustomerID:   req.CustomerID,
		Status:       req.Status,
		Progress:     req.Progress,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		WorkOrderIDs: req.WorkOrderIDs,
	}
	if p.Status == "" {
		p.Status = StatusPlanned
	}
	if p.WorkOrderIDs == nil {
		p.WorkOrderIDs = []int64{}
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateProjectRequest) (*Project, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CustomerID != nil {
		updates["customer_id"] = *req.CustomerID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Progress != nil {
		updates["progress"] = *req.Progress
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.WorkOrderIDs != nil {
		updates["work_order_ids"] = req.WorkOrderIDs
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, id)
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// CountActive reports projects currently in execution, used on the
// dashboard.
func (s *Service) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, StatusInProgress)
}
