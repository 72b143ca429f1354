package seed

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
)

// LoadCatalog ingests the product CSV into official_products, ignoring
// duplicates. The expected layout is brand,product_name with a header row.
func LoadCatalog(db *sqlx.DB, csvPath string) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load product catalog %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read catalog header: %v", err)
		return
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Printf("unable to start catalog transaction: %v", err)
		return
	}
	stmt, err := tx.Preparex(`INSERT OR IGNORE INTO official_products (brand, product_name) VALUES (?, ?)`)
	if err != nil {
		log.Printf("unable to prepare catalog insert: %v", err)
		_ = tx.Rollback()
		return
	}
	defer stmt.Close()

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read catalog row: %v", err)
			continue
		}
		if len(record) < 2 {
			continue
		}
		brand := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if brand == "" || name == "" {
			continue
		}

		if _, err := stmt.Exec(brand, name); err != nil {
			log.Printf("unable to insert product %s %s: %v", brand, name, err)
		} else {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("unable to commit catalog seed: %v", err)
	} else {
		log.Printf("seeded product catalog with %d rows", rows)
	}
}
