// Package projects groups work orders into larger engagements.
package projects

import (
	"fmt"
	"time"

	"github.com/installdesk/installdesk/internal/platform/httpx"
)

// ErrNotFound indicates the requested project does not exist.
var ErrNotFound = fmt.Errorf("projects: %w", httpx.ErrNotFound)

// Project statuses.
const (
	StatusPlanned    = "Gepland"
	StatusInProgress = "In uitvoering"
	StatusCompleted  = "Voltooid"
	StatusPaused     = "Gepauzeerd"
)

// Project bundles related work orders. WorkOrderIDs are weak references:
// deleting a work order leaves the id in place. Projects carry no generated
// code; they are internal planning records, not customer-facing documents.
type Project struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	CustomerID   int64      `json:"customerId"`
	Status       string     `json:"status"`
	Progress     int        `json:"progress"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	WorkOrderIDs []int64    `json:"workOrderIds"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
