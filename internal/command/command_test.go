package command

import (
	"errors"
	"testing"
)

func TestParse_CasesOperationAndTable(t *testing.T) {
	cmd, err := Parse(`{"operation": "insert", "table": "Transactions", "fields": {"quantity": 5}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Operation != OpInsert {
		t.Errorf("expected operation INSERT, got %q", cmd.Operation)
	}
	if cmd.Table != "transactions" {
		t.Errorf("expected table transactions, got %q", cmd.Table)
	}
	if got := IntField(cmd.Fields, "quantity"); got != 5 {
		t.Errorf("expected quantity 5, got %d", got)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse(`{"operation": "INSERT",`)
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestCommand_IsNoop(t *testing.T) {
	cases := []struct {
		operation string
		want      bool
	}{
		{"NONE", true},
		{"", true},
		{"SELECT", false},
		{"INSERT", false},
	}
	for _, tc := range cases {
		cmd := &Command{Operation: tc.operation}
		if got := cmd.IsNoop(); got != tc.want {
			t.Errorf("IsNoop(%q) = %v, want %v", tc.operation, got, tc.want)
		}
	}
}

func TestStringField(t *testing.T) {
	fields := map[string]any{
		"brand":    "1Drop",
		"empty":    "  ",
		"quantity": float64(12),
		"paid":     true,
	}
	if got := StringField(fields, "brand"); got != "1Drop" {
		t.Errorf("expected 1Drop, got %q", got)
	}
	if got := StringField(fields, "missing", "brand"); got != "1Drop" {
		t.Errorf("expected fallback key to win, got %q", got)
	}
	if got := StringField(fields, "empty"); got != "" {
		t.Errorf("blank string should be skipped, got %q", got)
	}
	if got := StringField(fields, "quantity"); got != "12" {
		t.Errorf("expected number formatted as 12, got %q", got)
	}
	if got := StringField(fields, "paid"); got != "true" {
		t.Errorf("expected bool formatted as true, got %q", got)
	}
}

func TestNumberField(t *testing.T) {
	fields := map[string]any{
		"quantity": float64(7),
		"price":    "30,50",
		"junk":     "abc",
	}
	if got := NumberField(fields, "quantity"); got != 7 {
		t.Errorf("expected 7, got %g", got)
	}
	if got := NumberField(fields, "price"); got != 30.5 {
		t.Errorf("expected comma decimal parsed as 30.5, got %g", got)
	}
	if got := NumberField(fields, "junk"); got != 0 {
		t.Errorf("expected 0 for unparseable value, got %g", got)
	}
	if got := NumberField(fields, "missing"); got != 0 {
		t.Errorf("expected 0 for absent key, got %g", got)
	}
}

func TestBoolField(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		want   bool
		wantOK bool
	}{
		{"native true", true, true, true},
		{"portuguese yes", "sim", true, true},
		{"portuguese no", "não", false, true},
		{"numeric", float64(1), true, true},
		{"unrecognized", "talvez", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BoolField(map[string]any{"paid": tc.value}, "paid")
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("BoolField(%v) = (%v, %v), want (%v, %v)", tc.value, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
