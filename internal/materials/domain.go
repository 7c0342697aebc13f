// Package materials manages the article catalogue and stock levels.
package materials

import (
	"fmt"
	"time"

	"github.com/installdesk/installdesk/internal/platform/httpx"
)

// ErrNotFound indicates the requested material does not exist.
var ErrNotFound = fmt.Errorf("materials: %w", httpx.ErrNotFound)

// ErrNegativeStock is returned when an adjustment would take stock below zero.
var ErrNegativeStock = fmt.Errorf("materials: %w: stock cannot go negative", httpx.ErrConflict)

// Material is a catalogue article. ArticleNumber comes from the global ART
// sequence: unlike the other document codes it does not reset per year.
// MinStock is nil when no low-stock threshold is configured.
type Material struct {
	ID            int64     `json:"id"`
	ArticleNumber string    `json:"articleNumber"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	UnitPrice     float64   `json:"unitPrice"`
	Stock         int       `json:"stock"`
	MinStock      *int      `json:"minStock,omitempty"`
	Supplier      string    `json:"supplier,omitempty"`
	Category      string    `json:"category,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LowOnStock reports whether the material sits at or below its threshold.
// Materials without a threshold never count as low.
func (m Material) LowOnStock() bool {
	return m.MinStock != nil && m.Stock <= *m.MinStock
}
