package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLGateway reads the store's Postgres database directly, for deployments
// that bypass the REST endpoint. It builds plain SELECTs from the same Query
// values the REST gateway serves.
type SQLGateway struct {
	pool *pgxpool.Pool
}

// NewSQLGateway opens a connection pool against databaseURL and verifies it
// with a ping.
func NewSQLGateway(ctx context.Context, databaseURL string) (*SQLGateway, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &TransportError{Op: "connect", Err: err}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &TransportError{Op: "connect", Err: err}
	}
	return &SQLGateway{pool: pool}, nil
}

// Fetch executes q as a SELECT and decodes the result into Rows.
func (g *SQLGateway) Fetch(ctx context.Context, q Query) ([]Row, error) {
	sqlText, args := buildSelect(q)

	rows, err := g.pool.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, &TransportError{Op: q.Collection, Err: err}
	}
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, &TransportError{Op: q.Collection, Err: err}
		}
		row := make(Row, len(values))
		for i, fd := range rows.FieldDescriptions() {
			row[fd.Name] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &TransportError{Op: q.Collection, Err: err}
	}
	return out, nil
}

// normalizeValue converts driver-specific value types into the plain Go
// scalars Row's coercion helpers understand. NUMERIC columns arrive from
// rows.Values() as pgtype.Numeric; NULLs and unrepresentable values become
// nil so Row.IsNull holds.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case pgtype.Numeric:
		if !n.Valid {
			return nil
		}
		f, err := n.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	default:
		return v
	}
}

// Close releases the connection pool.
func (g *SQLGateway) Close() {
	g.pool.Close()
}

// buildSelect renders q as a parameterized SELECT. Collection and column
// names come from code, not user input, but are sanitized anyway.
func buildSelect(q Query) (string, []any) {
	columns := "*"
	if len(q.Columns) > 0 {
		quoted := make([]string, len(q.Columns))
		for i, c := range q.Columns {
			quoted[i] = pgx.Identifier{c}.Sanitize()
		}
		columns = strings.Join(quoted, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", columns, pgx.Identifier{q.Collection}.Sanitize())

	var args []any
	var conds []string
	if q.Eq != nil {
		args = append(args, q.Eq.Value)
		conds = append(conds, fmt.Sprintf("%s = $%d", pgx.Identifier{q.Eq.Column}.Sanitize(), len(args)))
	}
	if q.In != nil {
		args = append(args, q.In.Values)
		conds = append(conds, fmt.Sprintf("%s = ANY($%d)", pgx.Identifier{q.In.Column}.Sanitize(), len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	if q.OrderBy != "" {
		direction := " ASC"
		if q.Descending {
			direction = " DESC"
		}
		sb.WriteString(" ORDER BY " + pgx.Identifier{q.OrderBy}.Sanitize() + direction)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
	}

	return sb.String(), args
}
