package domain

type Patient struct {
	ID                int64   `db:"id" json:"id"`
	FullName          string  `db:"full_name" json:"full_name"`
	Email             *string `db:"email" json:"email,omitempty"`
	GovUser           *string `db:"gov_user" json:"gov_user,omitempty"`
	GovPassword       *string `db:"gov_password" json:"-"`
	Physician         *string `db:"physician" json:"physician,omitempty"`
	Address           *string `db:"address" json:"address,omitempty"`
	Prescription      *string `db:"prescription" json:"prescription,omitempty"`
	AuthorizationDate *string `db:"authorization_date" json:"authorization_date,omitempty"`
	ExpirationDate    *string `db:"expiration_date" json:"expiration_date,omitempty"`
	CreatedAt         string  `db:"created_at" json:"created_at,omitempty"`
}
