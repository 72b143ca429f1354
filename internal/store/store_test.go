package store

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"

	"estoquebot/internal/database"
	"estoquebot/internal/migrations"
)

func newTestStore(t *testing.T) (*Store, *sqlx.DB) {
	t.Helper()
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)
	return New(db), db
}

func seedCatalog(t *testing.T, db *sqlx.DB, brand string, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := db.Exec(
			`INSERT INTO official_products (brand, product_name) VALUES (?, ?)`, brand, name); err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}
}

func seedPatient(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	id, err := s.InsertPatient(context.Background(), map[string]any{"full_name": name})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return id
}
