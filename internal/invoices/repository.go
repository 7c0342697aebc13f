package invoices

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

// PostgresRepository persists invoices in PostgreSQL. Line items live in a
// jsonb column.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgresRepository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const invoiceColumns = `id, invoice_number, customer_id, work_order_id, status, date, due_date, amount, items, notes, created_at, updated_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	var itemsJSON []byte
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerID, &inv.WorkOrderID,
		&inv.Status, &inv.Date, &inv.DueDate, &inv.Amount, &itemsJSON, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("decode invoice items: %w", err)
	}
	return &inv, nil
}

func collectInvoices(rows pgx.Rows) ([]Invoice, error) {
	defer rows.Close()
	var invoices []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return collectInvoices(rows)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	return scanInvoice(row)
}

// Create allocates the F code and inserts the row in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, inv Invoice) (*Invoice, error) {
	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return nil, err
	}
	err = db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		code, err := sequence.Next(ctx, tx, sequence.ClassInvoice, time.Now())
		if err != nil {
			return fmt.Errorf("allocate invoice number: %w", err)
		}
		inv.InvoiceNumber = code
		return tx.QueryRow(ctx, `
			INSERT INTO invoices (invoice_number, customer_id, work_order_id, status, date, due_date, amount, items, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at`,
			inv.InvoiceNumber, inv.CustomerID, inv.WorkOrderID, inv.Status,
			inv.Date, inv.DueDate, inv.Amount, itemsJSON, inv.Notes,
		).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, updates map[string]any) (*Invoice, error) {
	if items, ok := updates["items"]; ok {
		itemsJSON, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		updates["items"] = itemsJSON
	}
	query := "UPDATE invoices SET updated_at = NOW()"
	var args []any
	argPos := 1
	for _, col := range []string{"customer_id", "work_order_id", "status", "date", "due_date", "amount", "items", "notes"} {
		if v, ok := updates[col]; ok {
			query += fmt.Sprintf(", %s = $%d", col, argPos)
			args = append(args, v)
			argPos++
		}
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argPos, invoiceColumns)
	args = append(args, id)
	return scanInvoice(r.pool.QueryRow(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkOverdue flips sent invoices whose due date has passed.
func (r *PostgresRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE invoices
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND due_date IS NOT NULL AND due_date < $3`,
		StatusOverdue, StatusSent, asOf)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
