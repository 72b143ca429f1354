package domain

// Transaction operation kinds: stock coming in (purchase from supplier)
// vs. stock going out (sale to a patient).
const (
	OpEntrada = "ENTRADA"
	OpSaida   = "SAÍDA"
)

type Transaction struct {
	ID            int64    `db:"id" json:"id"`
	ProductID     int64    `db:"product_id" json:"product_id"`
	OperationType string   `db:"operation_type" json:"operation_type"`
	Quantity      int64    `db:"quantity" json:"quantity"`
	PatientID     *int64   `db:"patient_id" json:"patient_id,omitempty"`
	CostInReal    float64  `db:"cost_in_real" json:"cost_in_real"`
	CostInDollar  float64  `db:"cost_in_dollar" json:"cost_in_dollar"`
	ExchangeRate  float64  `db:"exchange_rate" json:"exchange_rate"`
	SaleType      *string  `db:"sale_type" json:"sale_type,omitempty"`
	Paid          *bool    `db:"paid" json:"paid,omitempty"`
	PaymentMethod *string  `db:"payment_method" json:"payment_method,omitempty"`
	DateOfSale    *string  `db:"date_of_sale" json:"date_of_sale,omitempty"`
	SaleCode      *string  `db:"sale_code" json:"sale_code,omitempty"`
	CreatedAt     string   `db:"created_at" json:"created_at,omitempty"`
}
