package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository persists projects in PostgreSQL. The work order id
// list lives in a jsonb column.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgresRepository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const projectColumns = `id, name, description, customer_id, status, progress, start_date, end_date, work_order_ids, created_at, updated_at`

func scanProject(row pgx.Row) (*Project, error) {
	var p Project
	var idsJSON []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CustomerID, &p.Status,
		&p.Progress, &p.StartDate, &p.EndDate, &idsJSON, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(idsJSON, &p.WorkOrderIDs); err != nil {
		return nil, fmt.Errorf("decode work order ids: %w", err)
	}
	return &p, nil
}

func collectProjects(rows pgx.Rows) ([]Project, error) {
	defer rows.Close()
	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context) ([]Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return collectProjects(rows)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (r *PostgresRepository) Create(ctx context.Context, p Project) (*Project, error) {
	idsJSON, err := json.Marshal(p.WorkOrderIDs)
	if err != nil {
		return nil, err
	}
	err = r.pool.QueryRow(ctx, `
		INSERT INTO projects (name, description, customer_id, status, progress, start_date, end_date, work_order_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		p.Name, p.Description, p.CustomerID, p.Status, p.Progress,
		p.StartDate, p.EndDate, idsJSON,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, updates map[string]any) (*Project, error) {
	if ids, ok := updates["work_order_ids"]; ok {
		idsJSON, err := json.Marshal(ids)
		if err != nil {
			return nil, err
		}
		updates["work_order_ids"] = idsJSON
	}
	query := "UPDATE projects SET updated_at = NOW()"
	var args []any
	argPos := 1
	for _, col := range []string{"name", "description", "customer_id", "status", "progress", "start_date", "end_date", "work_order_ids"} {
		if v, ok := updates[col]; ok {
			query += fmt.Sprintf(", %s = $%d", col, argPos)
			args = append(args, v)
			argPos++
		}
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argPos, projectColumns)
	args = append(args, id)
	return scanProject(r.pool.QueryRow(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE status = $1`, status).Scan(&count)
	return count, err
}
