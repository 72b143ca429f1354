package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"estoquebot/domain"
	"estoquebot/internal/command"
)

const defaultExchangeRate = 5.0

// TransactionResult reports the stored transaction and the post-adjustment
// stock level, both echoed back to the user.
type TransactionResult struct {
	ID          int64
	ProductName string
	Quantity    int64
}

// InsertTransaction records a stock movement. The inventory item is looked
// up by (brand, product_name) and adjusted, created on demand when absent.
// The referenced patient must already exist. The quantity adjustment and
// the transaction insert run as sequential statements.
func (s *Store) InsertTransaction(ctx context.Context, fields map[string]any) (*TransactionResult, error) {
	brand := command.StringField(fields, "brand", "marca")
	product := command.StringField(fields, "product_name", "produto")
	qty := command.IntField(fields, "quantity", "quantidade")
	op := canonicalOperation(command.StringField(fields, "operation_type", "operation", "tipo"))
	patientName := command.StringField(fields, "patient_name", "patient", "paciente")

	switch {
	case brand == "":
		return nil, &MissingFieldError{Field: "brand"}
	case product == "":
		return nil, &MissingFieldError{Field: "product_name"}
	case qty <= 0:
		return nil, &MissingFieldError{Field: "quantity"}
	case op == "":
		return nil, &MissingFieldError{Field: "operation_type"}
	case patientName == "":
		return nil, &MissingFieldError{Field: "patient_name"}
	}

	patient, err := s.FindPatientByName(ctx, patientName)
	if err != nil {
		return nil, err
	}

	productID, newQty, err := s.adjustInventory(ctx, brand, product, qty, op)
	if err != nil {
		return nil, err
	}

	costReal, costDollar, rate := reconcileCosts(
		command.NumberField(fields, "cost_in_real"),
		command.NumberField(fields, "cost_in_dollar"),
		command.NumberField(fields, "exchange_rate"),
	)

	saleDate := resolveSaleDate(command.StringField(fields, "date_of_sale", "data"), op)

	saleCode := command.StringField(fields, "sale_code")
	if saleCode == "" && op == domain.OpSaida {
		saleCode = uuid.NewString()
	}

	var paid *bool
	if v, ok := command.BoolField(fields, "paid", "pago"); ok {
		paid = &v
	}

	var id int64
	err = s.db.QueryRowxContext(ctx,
		`INSERT INTO transactions (product_id, operation_type, quantity, patient_id, cost_in_real, cost_in_dollar, exchange_rate, sale_type, paid, payment_method, date_of_sale, sale_code)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		productID, op, qty, patient.ID, costReal, costDollar, rate,
		nullIfEmpty(command.StringField(fields, "sale_type")),
		paid,
		nullIfEmpty(command.StringField(fields, "payment_method", "forma_pagamento")),
		saleDate,
		nullIfEmpty(saleCode),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	return &TransactionResult{ID: id, ProductName: product, Quantity: newQty}, nil
}

// adjustInventory applies the movement to the (brand, product) item,
// creating it when absent. Stock is clamped at zero: a sale can never
// drive the quantity negative.
func (s *Store) adjustInventory(ctx context.Context, brand, product string, qty int64, op string) (int64, int64, error) {
	var item domain.InventoryItem
	err := s.db.GetContext(ctx, &item,
		`SELECT id, brand, product_name, quantity FROM inventory
         WHERE LOWER(brand) = LOWER(?) AND LOWER(product_name) = LOWER(?)`, brand, product)
	if errors.Is(err, sql.ErrNoRows) {
		initial := int64(0)
		if op == domain.OpEntrada {
			initial = qty
		}
		var id int64
		err := s.db.QueryRowxContext(ctx,
			`INSERT INTO inventory (brand, product_name, quantity) VALUES (?, ?, ?) RETURNING id`,
			brand, product, initial).Scan(&id)
		if err != nil {
			return 0, 0, fmt.Errorf("create inventory item: %w", err)
		}
		return id, initial, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("find inventory item: %w", err)
	}

	newQty := item.Quantity + qty
	if op == domain.OpSaida {
		newQty = item.Quantity - qty
		if newQty < 0 {
			newQty = 0
		}
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE inventory SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, newQty, item.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("adjust inventory: %w", err)
	}
	return item.ID, newQty, nil
}

// reconcileCosts fills in whichever currency is missing from the other,
// using the supplied exchange rate or the 5.0 default. Both stay zero when
// neither cost was given.
func reconcileCosts(costReal, costDollar, rate float64) (float64, float64, float64) {
	if rate <= 0 {
		rate = defaultExchangeRate
	}
	r := decimal.NewFromFloat(rate)
	switch {
	case costReal == 0 && costDollar > 0:
		costReal, _ = decimal.NewFromFloat(costDollar).Mul(r).Round(2).Float64()
	case costDollar == 0 && costReal > 0:
		costDollar, _ = decimal.NewFromFloat(costReal).Div(r).Round(2).Float64()
	}
	return costReal, costDollar, rate
}

var saleDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// resolveSaleDate keeps the supplied date when it parses; otherwise a sale
// defaults to now and a stock receipt stays unset.
func resolveSaleDate(raw, op string) *string {
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			formatted := t.Format("2006-01-02 15:04:05")
			return &formatted
		}
	}
	if op == domain.OpSaida {
		now := time.Now().Format("2006-01-02 15:04:05")
		return &now
	}
	return nil
}

// canonicalOperation folds model spellings (saida, entrada, lower case,
// missing accent) onto the two recognized kinds. Returns "" when the value
// is neither.
func canonicalOperation(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ENTRADA":
		return domain.OpEntrada
	case "SAÍDA", "SAIDA":
		return domain.OpSaida
	}
	return ""
}
