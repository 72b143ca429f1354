package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"

	"estoquebot/domain"
)

// Handler bundles dependencies for the read-only admin API.
type Handler struct {
	db *sqlx.DB
}

// New constructs a Handler.
func New(db *sqlx.DB) *Handler {
	return &Handler{db: db}
}

// Router wires up the HTTP API. Everything here is reporting; mutations go
// through the WhatsApp pipeline only.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)
	r.Get("/inventory", h.listInventory)
	r.Get("/patients", h.listPatients)
	r.Get("/transactions", h.listTransactions)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	var items []domain.InventoryItem
	if err := h.db.Select(&items, `SELECT id, brand, product_name, quantity, updated_at FROM inventory ORDER BY brand, product_name`); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list inventory")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	var patients []domain.Patient
	query := `SELECT id, full_name, email, physician, address, prescription, authorization_date, expiration_date, created_at FROM patients ORDER BY full_name`
	args := []any{}
	if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
		query = `SELECT id, full_name, email, physician, address, prescription, authorization_date, expiration_date, created_at FROM patients WHERE LOWER(full_name) LIKE LOWER(?) ORDER BY full_name`
		args = append(args, "%"+name+"%")
	}
	if err := h.db.Select(&patients, query, args...); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list patients")
		return
	}
	respondJSON(w, http.StatusOK, patients)
}

type transactionRow struct {
	domain.Transaction
	Brand       string `db:"brand" json:"brand"`
	ProductName string `db:"product_name" json:"product_name"`
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	var (
		args    []any
		clauses []string
	)

	startDate := strings.TrimSpace(r.URL.Query().Get("start_date"))
	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			respondError(w, http.StatusBadRequest, "start_date must be in YYYY-MM-DD format")
			return
		}
		args = append(args, startDate)
		clauses = append(clauses, "date(t.date_of_sale) >= date(?)")
	}

	endDate := strings.TrimSpace(r.URL.Query().Get("end_date"))
	if endDate != "" {
		if _, err := time.Parse("2006-01-02", endDate); err != nil {
			respondError(w, http.StatusBadRequest, "end_date must be in YYYY-MM-DD format")
			return
		}
		args = append(args, endDate)
		clauses = append(clauses, "date(t.date_of_sale) <= date(?)")
	}

	if op := strings.TrimSpace(r.URL.Query().Get("operation")); op != "" {
		args = append(args, strings.ToUpper(op))
		clauses = append(clauses, "t.operation_type = ?")
	}

	query := `SELECT t.id, t.product_id, t.operation_type, t.quantity, t.patient_id, t.cost_in_real, t.cost_in_dollar, t.exchange_rate, t.sale_type, t.paid, t.payment_method, t.date_of_sale, t.sale_code, t.created_at, i.brand, i.product_name
                FROM transactions t
                JOIN inventory i ON i.id = t.product_id`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY t.created_at DESC"

	var rows []transactionRow
	if err := h.db.Select(&rows, query, args...); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list transactions")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// Helpers

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
