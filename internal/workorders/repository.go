package workorders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/installdesk/installdesk/internal/platform/db"
	"github.com/installdesk/installdesk/internal/sequence"
)

// PostgresRepository persists work orders in PostgreSQL. Material lines and
// photos live in jsonb columns: they are variable-length nested lists, not
// joined relations.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgresRepository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const workOrderColumns = `id, order_number, customer_id, title, description, location, status, scheduled_date, labor_hours, notes, materials, photos, completed_at, created_at, updated_at`

func scanWorkOrder(row pgx.Row) (*WorkOrder, error) {
	var w WorkOrder
	var materialsJSON, photosJSON []byte
	err := row.Scan(&w.ID, &w.OrderNumber, &w.CustomerID, &w.Title, &w.Description,
		&w.Location, &w.Status, &w.ScheduledDate, &w.LaborHours, &w.Notes,
		&materialsJSON, &photosJSON, &w.CompletedAt, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(materialsJSON, &w.Materials); err != nil {
		return nil, fmt.Errorf("decode material lines: %w", err)
	}
	if err := json.Unmarshal(photosJSON, &w.Photos); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	return &w, nil
}

func collectWorkOrders(rows pgx.Rows) ([]WorkOrder, error) {
	defer rows.Close()
	var orders []WorkOrder
	for rows.Next() {
		w, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *w)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context) ([]WorkOrder, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+workOrderColumns+` FROM work_orders ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return collectWorkOrders(rows)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*WorkOrder, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+workOrderColumns+` FROM work_orders WHERE id = $1`, id)
	return scanWorkOrder(row)
}

// Create allocates the WB code and inserts the row in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, w WorkOrder) (*WorkOrder, error) {
	materialsJSON, err := json.Marshal(w.Materials)
	if err != nil {
		return nil, err
	}
	photosJSON, err := json.Marshal(w.Photos)
	if err != nil {
		return nil, err
	}
	err = db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		code, err := sequence.Next(ctx, tx, sequence.ClassWorkOrder, time.Now())
		if err != nil {
			return fmt.Errorf("allocate order number: %w", err)
		}
		w.OrderNumber = code
		return tx.QueryRow(ctx, `
			INSERT INTO work_orders (order_number, customer_id, title, description, location, status, scheduled_date, labor_hours, notes, materials, photos)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at`,
			w.OrderNumber, w.CustomerID, w.Title, w.Description, w.Location,
			w.Status, w.ScheduledDate, w.LaborHours, w.Notes, materialsJSON, photosJSON,
		).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, updates map[string]any) (*WorkOrder, error) {
	query := "UPDATE work_orders SET updated_at = NOW()"
	var args []any
	argPos := 1
	for _, col := range []string{"customer_id", "title", "description", "location", "status", "scheduled_date", "labor_hours", "notes"} {
		if v, ok := updates[col]; ok {
			query += fmt.Sprintf(", %s = $%d", col, argPos)
			args = append(args, v)
			argPos++
		}
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argPos, workOrderColumns)
	args = append(args, id)
	return scanWorkOrder(r.pool.QueryRow(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Complete writes the transition in a single statement so the status,
// hours, notes and photos land atomically.
func (r *PostgresRepository) Complete(ctx context.Context, id int64, c Completion) (*WorkOrder, error) {
	photosJSON, err := json.Marshal(c.Photos)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE work_orders
		SET status = $2,
		    labor_hours = $3,
		    notes = $4,
		    photos = COALESCE(photos, '[]'::jsonb) || $5::jsonb,
		    completed_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+workOrderColumns,
		id, StatusCompleted, c.LaborHours, c.Notes, photosJSON)
	return scanWorkOrder(row)
}

// AppendMaterial adds the usage line with a jsonb concat so concurrent
// appends do not lose lines.
func (r *PostgresRepository) AppendMaterial(ctx context.Context, id int64, line MaterialLine) (*WorkOrder, error) {
	lineJSON, err := json.Marshal([]MaterialLine{line})
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE work_orders
		SET materials = COALESCE(materials, '[]'::jsonb) || $2::jsonb,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+workOrderColumns, id, lineJSON)
	return scanWorkOrder(row)
}
