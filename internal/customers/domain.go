// Package customers manages the client records of the installation company.
package customers

import (
	"fmt"
	"time"

	"github.com/installdesk/installdesk/internal/platform/httpx"
)

// Customer status values as shown on customer-facing documents.
const (
	StatusActive   = "Actief"
	StatusInactive = "Inactief"
)

// ErrNotFound indicates the requested customer does not exist.
var ErrNotFound = fmt.Errorf("customers: %w", httpx.ErrNotFound)

// Customer is a client. CustomerNumber is assigned once at creation from the
// KL sequence and never changes afterwards.
type Customer struct {
	ID             int64     `json:"id"`
	CustomerNumber string    `json:"customerNumber"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	PostalCode     string    `json:"postalCode,omitempty"`
	City           string    `json:"city,omitempty"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
