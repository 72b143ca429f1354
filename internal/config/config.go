package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	OpenAIKey     string
	OpenAIBaseURL string
	Model         string
	DatabaseDSN   string
	WhatsAppDSN   string
	HTTPPort      string
	CatalogCSV    string
	HistoryLimit  int
	LogFormat     string
}

// Load reads configuration from environment variables with reasonable
// defaults. A missing OPENAI_API_KEY is fatal: the bot cannot interpret
// any message without the model.
func Load() Config {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "file:estoque.db?_pragma=foreign_keys(1)"
	}

	waDSN := os.Getenv("WHATSAPP_DSN")
	if waDSN == "" {
		waDSN = "file:whatsapp.db?_foreign_keys=on"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	catalog := os.Getenv("CATALOG_CSV")
	if catalog == "" {
		catalog = "assets/products.csv"
	}

	limit := 10
	if raw := os.Getenv("HISTORY_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			log.Printf("invalid HISTORY_LIMIT value %q, defaulting to 10", raw)
		} else {
			limit = n
		}
	}

	return Config{
		OpenAIKey:     key,
		OpenAIBaseURL: baseURL,
		Model:         model,
		DatabaseDSN:   dsn,
		WhatsAppDSN:   waDSN,
		HTTPPort:      port,
		CatalogCSV:    catalog,
		HistoryLimit:  limit,
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}
}
