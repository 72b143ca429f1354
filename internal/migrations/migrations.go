package migrations

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// Run creates the database schema required by the bot.
func Run(db *sqlx.DB) {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS official_products (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            brand TEXT NOT NULL,
            product_name TEXT NOT NULL,
            UNIQUE(brand, product_name)
        );`,
		`CREATE TABLE IF NOT EXISTS patients (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            full_name TEXT NOT NULL,
            email TEXT,
            gov_user TEXT,
            gov_password TEXT,
            physician TEXT,
            address TEXT,
            prescription TEXT,
            authorization_date TEXT,
            expiration_date TEXT,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS inventory (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            brand TEXT NOT NULL,
            product_name TEXT NOT NULL,
            quantity INTEGER NOT NULL DEFAULT 0,
            updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS transactions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            product_id INTEGER NOT NULL,
            operation_type TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            patient_id INTEGER,
            cost_in_real REAL NOT NULL DEFAULT 0,
            cost_in_dollar REAL NOT NULL DEFAULT 0,
            exchange_rate REAL NOT NULL DEFAULT 5.0,
            sale_type TEXT,
            paid INTEGER,
            payment_method TEXT,
            date_of_sale DATETIME,
            sale_code TEXT,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
            FOREIGN KEY(product_id) REFERENCES inventory(id),
            FOREIGN KEY(patient_id) REFERENCES patients(id)
        );`,
		`CREATE TABLE IF NOT EXISTS chat_history (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_jid TEXT NOT NULL,
            role TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
            content TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE INDEX IF NOT EXISTS idx_chat_history_user ON chat_history (user_jid, id);`,
		`CREATE TABLE IF NOT EXISTS pending_operations (
            user_jid TEXT PRIMARY KEY,
            message TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}
}
