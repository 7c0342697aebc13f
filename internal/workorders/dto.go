package workorders

import "time"

type CreateWorkOrderRequest struct {
	CustomerID    int64      `json:"customerId" validate:"required,gt=0"`
	Title         string     `json:"title" validate:"required,max=200"`
	Description   string     `json:"description"`
	Location      string     `json:"location" validate:"omitempty,max=300"`
	Status        string     `json:"status" validate:"omitempty,oneof=Ingepland 'In uitvoering' Voltooid Geannuleerd"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
}

// UpdateWorkOrderRequest carries a partial update. OrderNumber is accepted
// but never applied.
type UpdateWorkOrderRequest struct {
	OrderNumber   *string    `json:"orderNumber,omitempty"`
	CustomerID    *int64     `json:"customerId,omitempty" validate:"omitempty,gt=0"`
	Title         *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description   *string    `json:"description,omitempty"`
	Location      *string    `json:"location,omitempty" validate:"omitempty,max=300"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=Ingepland 'In uitvoering' Voltooid Geannuleerd"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	LaborHours    *float64   `json:"laborHours,omitempty" validate:"omitempty,gte=0"`
	Notes         *string    `json:"notes,omitempty"`
}

// CompleteWorkOrderRequest is the payload for the complete transition.
// LaborHours is a pointer so a missing field is distinguishable from an
// explicit zero: zero hours is valid, absence is a caller error. Photos are
// optional evidence, base64-encoded.
type CompleteWorkOrderRequest struct {
	Notes      string   `json:"notes"`
	LaborHours *float64 `json:"laborHours" validate:"required,gte=0"`
	Photos     []string `json:"photos"`
}

// AddMaterialRequest registers material usage on a work order. Name and
// price are snapshotted from the catalogue server-side.
type AddMaterialRequest struct {
	MaterialID int64   `json:"materialId" validate:"required,gt=0"`
	Quantity   float64 `json:"quantity" validate:"required,gt=0"`
}
