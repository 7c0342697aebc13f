package materials

import (
	"context"
	"fmt"
)

// Repository abstracts storage so postgres and memory drivers are
// interchangeable.
type Repository interface {
	List(ctx context.Context) ([]Material, error)
	Get(ctx context.Context, id int64) (*Material, error)
	Create(ctx context.Context, m Material) (*Material, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*Material, error)
	Delete(ctx context.Context, id int64) (bool, error)
	AdjustStock(ctx context.Context, id int64, delta int) (*Material, error)
	LowStock(ctx context.Context) ([]Material, error)
}

// Service coordinates material operations.
type Service struct {
	repo Repository
}

// NewService builds a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Material, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Material, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateMaterialRequest) (*Material, error) {
	m := Material{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Supplier:    req.Supplier,
		Category:    req.Category,
	}
	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateMaterialRequest) (*Material, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.UnitPrice != nil {
		updates["unit_price"] = *req.UnitPrice
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.MinStock != nil {
		updates["min_stock"] = *req.MinStock
	}
	if req.Supplier != nil {
		updates["supplier"] = *req.Supplier
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, id)
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// AdjustStock applies a relative stock mutation, rejecting anything that
// would leave stock negative.
func (s *Service) AdjustStock(ctx context.Context, id int64, delta int) (*Material, error) {
	if delta == 0 {
		return s.repo.Get(ctx, id)
	}
	return s.repo.AdjustStock(ctx, id, delta)
}

// LowStock lists materials at or below their configured threshold.
func (s *Service) LowStock(ctx context.Context) ([]Material, error) {
	return s.repo.LowStock(ctx)
}
