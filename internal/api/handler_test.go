package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"

	"estoquebot/internal/database"
	"estoquebot/internal/migrations"
)

func newTestHandler(t *testing.T) (*Handler, *sqlx.DB) {
	t.Helper()
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)
	return New(db), db
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := get(t, h.Router(), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListInventory(t *testing.T) {
	h, db := newTestHandler(t)
	if _, err := db.Exec(`INSERT INTO inventory (brand, product_name, quantity) VALUES ('1Drop', 'Gummy 300mg', 12)`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := get(t, h.Router(), "/inventory")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0]["product_name"] != "Gummy 300mg" {
		t.Errorf("unexpected item: %v", items[0])
	}
}

func TestListPatients_NameFilter(t *testing.T) {
	h, db := newTestHandler(t)
	for _, name := range []string{"Fulano de Tal", "Beltrana Souza"} {
		if _, err := db.Exec(`INSERT INTO patients (full_name) VALUES (?)`, name); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rec := get(t, h.Router(), "/patients?name=fulano")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var patients []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &patients); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(patients) != 1 || patients[0]["full_name"] != "Fulano de Tal" {
		t.Errorf("expected only the matching patient, got %v", patients)
	}
}

func TestListTransactions_InvalidDate(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := get(t, h.Router(), "/transactions?start_date=10-01-2026")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed date, got %d", rec.Code)
	}
}

func TestListTransactions_Filtered(t *testing.T) {
	h, db := newTestHandler(t)

	seed := []string{
		`INSERT INTO patients (full_name) VALUES ('Fulano de Tal')`,
		`INSERT INTO inventory (brand, product_name, quantity) VALUES ('1Drop', 'Gummy 300mg', 5)`,
		`INSERT INTO transactions (product_id, operation_type, quantity, patient_id, date_of_sale) VALUES (1, 'ENTRADA', 5, 1, '2026-01-05 10:00:00')`,
		`INSERT INTO transactions (product_id, operation_type, quantity, patient_id, date_of_sale) VALUES (1, 'SAÍDA', 2, 1, '2026-02-05 10:00:00')`,
	}
	for _, stmt := range seed {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rec := get(t, h.Router(), "/transactions?operation=saída&start_date=2026-02-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 filtered transaction, got %d", len(rows))
	}
	if rows[0]["operation_type"] != "SAÍDA" || rows[0]["brand"] != "1Drop" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}
