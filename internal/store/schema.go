// Package store executes validated commands against the relational store.
package store

import (
	"sort"
	"strings"
)

// Table and column names in a command come from model output and are never
// interpolated into SQL directly. Every identifier must match this fixed
// schema map or the command is rejected before any statement is assembled.
var allowedColumns = map[string]map[string]struct{}{
	"official_products": colSet("id", "brand", "product_name"),
	"patients": colSet("id", "full_name", "email", "gov_user", "gov_password",
		"physician", "address", "prescription", "authorization_date",
		"expiration_date", "created_at"),
	"inventory": colSet("id", "brand", "product_name", "quantity", "updated_at"),
	"transactions": colSet("id", "product_id", "operation_type", "quantity",
		"patient_id", "cost_in_real", "cost_in_dollar", "exchange_rate",
		"sale_type", "paid", "payment_method", "date_of_sale", "sale_code",
		"created_at"),
}

func colSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func checkTable(table string) error {
	if _, ok := allowedColumns[table]; !ok {
		return &UnknownTableError{Table: table}
	}
	return nil
}

func checkColumns(table string, fields map[string]any) error {
	cols := allowedColumns[table]
	for name := range fields {
		if _, ok := cols[strings.ToLower(name)]; !ok {
			return &UnknownColumnError{Table: table, Column: name}
		}
	}
	return nil
}

// sortedKeys gives deterministic clause order for assembled statements.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// tableList names the known tables, for error messages.
func tableList() string {
	names := make([]string, 0, len(allowedColumns))
	for name := range allowedColumns {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
