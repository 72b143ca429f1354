package domain

// OfficialProduct is a catalog entry seeded at startup. It is reference
// data only: the pipeline reads it for fuzzy name resolution and never
// mutates it.
type OfficialProduct struct {
	ID          int64  `db:"id" json:"id"`
	Brand       string `db:"brand" json:"brand"`
	ProductName string `db:"product_name" json:"product_name"`
}

type InventoryItem struct {
	ID          int64  `db:"id" json:"id"`
	Brand       string `db:"brand" json:"brand"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int64  `db:"quantity" json:"quantity"`
	UpdatedAt   string `db:"updated_at" json:"updated_at,omitempty"`
}
