package customers

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

// PostgresRepository persists customers in PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgresRepository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const customerColumns = `id, customer_number, name, email, phone, address, postal_code, city, status, notes, created_at, updated_at`

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.CustomerNumber, &c.Name, &c.Email, &c.Phone,
		&c.Address, &c.PostalCode, &c.City, &c.Status, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Customer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

// Create allocates the KL code and inserts the row in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, c Customer) (*Customer, error) {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		code, err := sequence.Next(ctx, tx, sequence.ClassCustomer, time.Now())
		if err != nil {
			return fmt.Errorf("allocate customer number: %w", err)
		}
		c.CustomerNumber = code
		return tx.QueryRow(ctx, `
			INSERT INTO customers (customer_number, name, email, phone, address, postal_code, city, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at`,
			c.CustomerNumber, c.Name, c.Email, c.Phone, c.Address,
			c.PostalCode, c.City, c.Status, c.Notes,
		).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, updates map[string]any) (*Customer, error) {
	query := "UPDATE customers SET updated_at = NOW()"
	var args []any
	argPos := 1
	for _, col := range []string{"name", "email", "phone", "address", "postal_code", "city", "status", "notes"} {
		if v, ok := updates[col]; ok {
			query += fmt.Sprintf(", %s = $%d", col, argPos)
			args = append(args, v)
			argPos++
		}
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argPos, customerColumns)
	args = append(args, id)
	return scanCustomer(r.pool.QueryRow(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
