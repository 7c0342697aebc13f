// Package workorders manages field service tickets and their completion
// lifecycle.
package workorders

import (
	"fmt"
	"time"

	"github.com/installdesk/installdesk/internal/platform/httpx"
)

// ErrNotFound indicates the requested work order does not exist.
var ErrNotFound = fmt.Errorf("workorders: %w", httpx.ErrNotFound)

// Work order statuses. Ingepland is the initial state; Voltooid and
// Geannuleerd are terminal by convention, but plain status updates are not
// guarded: the caller is trusted, matching how the office staff actually
// corrects mistakes. Only the complete transition has dedicated semantics.
const (
	StatusScheduled  = "Ingepland"
	StatusInProgress = "In uitvoering"
	StatusCompleted  = "Voltooid"
	StatusCancelled  = "Geannuleerd"
)

// MaterialLine records material usage on a work order. Name and UnitPrice
// are snapshots taken at the moment the line is added; later changes to the
// catalogue never rewrite lines already on an order.
type MaterialLine struct {
	MaterialID int64   `json:"materialId"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// Photo is evidence attached on completion. Data holds the base64 payload
// as submitted by the field app.
type Photo struct {
	ID         string    `json:"id"`
	Data       string    `json:"data"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// WorkOrder is a job scheduled for a customer. OrderNumber (WB-YYYY-NNNN)
// is assigned at creation and immutable. CustomerID is a weak reference:
// deleting the customer leaves the work order in place.
type WorkOrder struct {
	ID            int64          `json:"id"`
	OrderNumber   string         `json:"orderNumber"`
	CustomerID    int64          `json:"customerId"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Location      string         `json:"location,omitempty"`
	Status        string         `json:"status"`
	ScheduledDate *time.Time     `json:"scheduledDate,omitempty"`
	LaborHours    float64        `json:"laborHours"`
	Notes         string         `json:"notes,omitempty"`
	Materials     []MaterialLine `json:"materials"`
	Photos        []Photo        `json:"photos"`
	CompletedAt   *time.Time     `json:"completedAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Completion bundles the data written by the complete transition.
type Completion struct {
	Notes      string
	LaborHours float64
	Photos     []Photo
}
