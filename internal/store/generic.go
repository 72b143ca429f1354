package store

import (
	"context"
	"fmt"
	"strings"

	"estoquebot/internal/command"
)

// Generic UPDATE/DELETE/SELECT are the escape hatches the model uses for
// anything beyond the dedicated insert paths. Identifiers are validated
// against the schema map before any SQL is assembled; values always travel
// as bind parameters.

// GenericUpdate builds SET ... WHERE ... from the field and filter maps.
// An empty filter is rejected: no unrestricted bulk mutation.
func (s *Store) GenericUpdate(ctx context.Context, table string, fields, where map[string]any) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 0, &MissingFieldError{Field: "fields"}
	}
	if len(where) == 0 {
		return 0, ErrWhereRequired
	}
	if err := checkColumns(table, fields); err != nil {
		return 0, err
	}
	if err := checkColumns(table, where); err != nil {
		return 0, err
	}

	var (
		sets    []string
		clauses []string
		args    []any
	)
	for _, col := range sortedKeys(fields) {
		sets = append(sets, strings.ToLower(col)+" = ?")
		args = append(args, fields[col])
	}
	for _, col := range sortedKeys(where) {
		clauses = append(clauses, strings.ToLower(col)+" = ?")
		args = append(args, where[col])
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table, strings.Join(sets, ", "), strings.Join(clauses, " AND "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("generic update: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

// GenericDelete removes every row matching the equality filter. Same WHERE
// requirement as GenericUpdate.
func (s *Store) GenericDelete(ctx context.Context, table string, where map[string]any) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(where) == 0 {
		return 0, ErrWhereRequired
	}
	if err := checkColumns(table, where); err != nil {
		return 0, err
	}

	var (
		clauses []string
		args    []any
	)
	for _, col := range sortedKeys(where) {
		clauses = append(clauses, strings.ToLower(col)+" = ?")
		args = append(args, where[col])
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", table, strings.Join(clauses, " AND "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("generic delete: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

// Aggregates the model may request on SELECT. The target column rides in
// fields under "column" and defaults to quantity.
var allowedAggregates = map[string]string{
	"sum":   "SUM",
	"count": "COUNT",
	"avg":   "AVG",
	"total": "SUM",
}

const selectRowLimit = 50

// SelectResult is either a scalar aggregate or a plain row set. Truncated
// is set when more rows matched than the reply can reasonably carry.
type SelectResult struct {
	Aggregate *float64
	Rows      []map[string]any
	Truncated bool
}

// GenericSelect runs an equality-filtered query. Fields may carry an
// aggregate hint, and for transactions an inclusive date range on the sale
// date (start_date / end_date).
func (s *Store) GenericSelect(ctx context.Context, table string, fields, where map[string]any) (*SelectResult, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	if err := checkColumns(table, where); err != nil {
		return nil, err
	}

	var (
		clauses []string
		args    []any
	)
	for _, col := range sortedKeys(where) {
		clauses = append(clauses, strings.ToLower(col)+" = ?")
		args = append(args, where[col])
	}

	if table == "transactions" {
		if start := command.StringField(fields, "start_date", "data_inicio"); start != "" {
			clauses = append(clauses, "date(date_of_sale) >= date(?)")
			args = append(args, start)
		}
		if end := command.StringField(fields, "end_date", "data_fim"); end != "" {
			clauses = append(clauses, "date(date_of_sale) <= date(?)")
			args = append(args, end)
		}
	}

	filter := ""
	if len(clauses) > 0 {
		filter = " WHERE " + strings.Join(clauses, " AND ")
	}

	if agg := strings.ToLower(command.StringField(fields, "aggregate", "agregado")); agg != "" {
		fn, ok := allowedAggregates[agg]
		if !ok {
			return nil, &UnknownColumnError{Table: table, Column: agg}
		}
		col := strings.ToLower(command.StringField(fields, "column", "coluna"))
		if col == "" {
			col = "quantity"
		}
		if fn == "COUNT" {
			col = "*"
		} else if _, ok := allowedColumns[table][col]; !ok {
			return nil, &UnknownColumnError{Table: table, Column: col}
		}

		var value float64
		query := fmt.Sprintf("SELECT COALESCE(%s(%s), 0) FROM %s%s", fn, col, table, filter)
		if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&value); err != nil {
			return nil, fmt.Errorf("generic select aggregate: %w", err)
		}
		return &SelectResult{Aggregate: &value}, nil
	}

	// Fetch one row past the cap to know whether the set was cut short.
	query := fmt.Sprintf("SELECT * FROM %s%s LIMIT %d", table, filter, selectRowLimit+1)
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("generic select: %w", err)
	}
	defer rows.Close()

	result := &SelectResult{}
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result.Rows) > selectRowLimit {
		result.Rows = result.Rows[:selectRowLimit]
		result.Truncated = true
	}
	return result, nil
}
