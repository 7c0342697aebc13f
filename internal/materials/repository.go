package materials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/installdesk/installdesk/internal/platform/db"
	"github.com/installdesk/installdesk/internal/sequence"
)

// PostgresRepository persists materials in PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgresRepository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const materialColumns = `id, article_number, name, description, unit, unit_price, stock, min_stock, supplier, category, created_at, updated_at`

func scanMaterial(row pgx.Row) (*Material, error) {
	var m Material
	err := row.Scan(&m.ID, &m.ArticleNumber, &m.Name, &m.Description, &m.Unit,
		&m.UnitPrice, &m.Stock, &m.MinStock, &m.Supplier, &m.Category,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func collectMaterials(rows pgx.Rows) ([]Material, error) {
	defer rows.Close()
	var materials []Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, *m)
	}
	return materials, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context) ([]Material, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return collectMaterials(rows)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Material, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id)
	return scanMaterial(row)
}

// Create allocates the ART code and inserts the row in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, m Material) (*Material, error) {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		code, err := sequence.Next(ctx, tx, sequence.ClassMaterial, time.Now())
		if err != nil {
			return fmt.Errorf("allocate article number: %w", err)
		}
		m.ArticleNumber = code
		return tx.QueryRow(ctx, `
			INSERT INTO materials (article_number, name, description, unit, unit_price, stock, min_stock, supplier, category)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at`,
			m.ArticleNumber, m.Name, m.Description, m.Unit, m.UnitPrice,
			m.Stock, m.MinStock, m.Supplier, m.Category,
		).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, updates map[string]any) (*Material, error) {
	query := "UPDATE materials SET updated_at = NOW()"
	var args []any
	argPos := 1
	for _, col := range []string{"name", "description", "unit", "unit_price", "stock", "min_stock", "supplier", "category"} {
		if v, ok := updates[col]; ok {
			query += fmt.Sprintf(", %s = $%d", col, argPos)
			args = append(args, v)
			argPos++
		}
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argPos, materialColumns)
	args = append(args, id)
	return scanMaterial(r.pool.QueryRow(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AdjustStock applies the delta with the negative-stock guard inside the
// statement; a row locked by a concurrent adjustment serialises here.
func (r *PostgresRepository) AdjustStock(ctx context.Context, id int64, delta int) (*Material, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE materials
		SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING `+materialColumns, id, delta)
	m, err := scanMaterial(row)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	// No row matched: either the material is missing or the guard tripped.
	if _, getErr := r.Get(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrNegativeStock
}

func (r *PostgresRepository) LowStock(ctx context.Context) ([]Material, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+materialColumns+`
		FROM materials
		WHERE min_stock IS NOT NULL AND stock <= min_stock
		ORDER BY stock - min_stock ASC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collectMaterials(rows)
}
