package sequence

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of pgx needed by the allocator. Both a pool and a
// transaction satisfy it; creates pass their transaction so the counter bump
// and the row insert commit atomically.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Next allocates the next code for the class at the given time. The upsert
// is a single statement, so two concurrent creates in the same scope cannot
// observe the same counter value; this replaces the read-latest-then-write
// scheme whose race is documented in the design notes. A scope without a
// counter row starts at 1 (first work order of a new year -> WB-<year>-0001).
func Next(ctx context.Context, q DBTX, class Class, at time.Time) (string, error) {
	scope := ScopeFor(class, at)
	const query = `
		INSERT INTO number_sequences (entity, scope, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (entity, scope)
		DO UPDATE SET last_value = number_sequences.last_value + 1
		RETURNING last_value`
	var n int64
	if err := q.QueryRow(ctx, query, string(class), scope).Scan(&n); err != nil {
		return "", err
	}
	return Format(class, scope, n), nil
}

// Seed raises a scope's counter to at least the value encoded in latestCode.
// Used when adopting a database that already carries numbered records; codes
// that fail to parse seed at zero.
func Seed(ctx context.Context, q DBTX, class Class, scope, latestCode string) error {
	seed := SeedValue(class, scope, latestCode)
	const query = `
		INSERT INTO number_sequences (entity, scope, last_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (entity, scope)
		DO UPDATE SET last_value = GREATEST(number_sequences.last_value, EXCLUDED.last_value)
		RETURNING last_value`
	var n int64
	return q.QueryRow(ctx, query, string(class), scope, seed).Scan(&n)
}
