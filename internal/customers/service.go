package customers

import (
	"context"
	"fmt"
)

// Repository abstracts storage so postgres and memory drivers are
// interchangeable.
type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, c Customer) (*Customer, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service coordinates customer operations.
type Service struct {
	repo Repository
}

// NewService builds a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all customers, most recent first.
func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

// Get returns a single customer or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

// Create persists a new customer. The repository assigns id, customer number
// and timestamps.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	status := req.Status
	if status == "" {
		status = StatusActive
	}
	c := Customer{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		Status:     status,
		Notes:      req.Notes,
	}
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

// Update merges the non-nil fields of req into the record. The customer
// number is immutable and silently dropped from the payload.
func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*Customer, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, id)
	}
	return s.repo.Update(ctx, id, updates)
}

// Delete removes a customer. Work orders and invoices referring to it are
// left in place; dangling references are accepted behaviour.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
