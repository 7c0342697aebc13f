package workorders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/installdesk/installdesk/internal/materials"
	"github.com/installdesk/installdesk/internal/shared"
)

// Repository abstracts work order storage.
type Repository interface {
	List(ctx context.Context) ([]WorkOrder, error)
	Get(ctx context.Context, id int64) (*WorkOrder, error)
	Create(ctx context.Context, w WorkOrder) (*WorkOrder, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*WorkOrder, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Complete(ctx context.Context, id int64, c Completion) (*WorkOrder, error)
	AppendMaterial(ctx context.Context, id int64, line MaterialLine) (*WorkOrder, error)
}

// MaterialCatalog resolves articles when usage lines are added.
type MaterialCatalog interface {
	Get(ctx context.Context, id int64) (*materials.Material, error)
}

// Auditor records lifecycle events. A nil Auditor disables auditing, which
// is the case for the in-memory driver.
type Auditor interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service coordinates work order operations.
type Service struct {
	repo    Repository
	catalog MaterialCatalog
	audit   Auditor
	logger  *slog.Logger
}

// NewService builds a Service. audit may be nil.
func NewService(repo Repository, catalog MaterialCatalog, audit Auditor, logger *slog.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, audit: audit, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]WorkOrder, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*WorkOrder, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrder, error) {
	w := WorkOrder{
		CustomerID:    req.CustomerID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Status:        req.Status,
		ScheduledDate: req.ScheduledDate,
		Materials:     []MaterialLine{},
		Photos:        []Photo{},
	}
	if w.Status == "" {
		w.Status = StatusScheduled
	}
	created, err := s.repo.Create(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("create work order: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateWorkOrderRequest) (*WorkOrder, error) {
	updates := make(map[string]any)
	if req.CustomerID != nil {
		updates["customer_id"] = *req.CustomerID
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ScheduledDate != nil {
		updates["scheduled_date"] = *req.ScheduledDate
	}
	if req.LaborHours != nil {
		updates["labor_hours"] = *req.LaborHours
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, id)
	}
	return s.repo.Update(ctx, id, updates)
}

// Delete removes the work order. Related audit trail rows stay behind.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.recordAudit(ctx, "workorder.delete", id, map[string]any{"orderNumber": w.OrderNumber})
	return true, nil
}

// Complete transitions the order to Voltooid and stores the operator's
// notes, hours and photo evidence. Photos are optional; labor hours must
// have been validated present by the caller.
func (s *Service) Complete(ctx context.Context, id int64, req CompleteWorkOrderRequest) (*WorkOrder, error) {
	now := time.Now().UTC()
	photos := make([]Photo, 0, len(req.Photos))
	for _, data := range req.Photos {
		photos = append(photos, Photo{ID: uuid.NewString(), Data: data, UploadedAt: now})
	}
	w, err := s.repo.Complete(ctx, id, Completion{
		Notes:      req.Notes,
		LaborHours: *req.LaborHours,
		Photos:     photos,
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, "workorder.complete", id, map[string]any{
		"orderNumber": w.OrderNumber,
		"laborHours":  w.LaborHours,
		"photoCount":  len(photos),
	})
	return w, nil
}

// AddMaterial snapshots the article's current name and price onto the
// order. The line keeps those values even when the catalogue changes later.
func (s *Service) AddMaterial(ctx context.Context, id int64, req AddMaterialRequest) (*WorkOrder, error) {
	article, err := s.catalog.Get(ctx, req.MaterialID)
	if err != nil {
		return nil, err
	}
	line := MaterialLine{
		MaterialID: article.ID,
		Name:       article.Name,
		Quantity:   req.Quantity,
		UnitPrice:  article.UnitPrice,
	}
	return s.repo.AppendMaterial(ctx, id, line)
}

// recordAudit is best effort: a failing audit write never fails the
// operation that triggered it.
func (s *Service) recordAudit(ctx context.Context, action string, id int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	err := s.audit.Record(ctx, shared.AuditLog{
		Action:   action,
		Entity:   "workorder",
		EntityID: strconv.FormatInt(id, 10),
		Meta:     meta,
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("audit record failed", slog.String("action", action), slog.Any("error", err))
	}
}
