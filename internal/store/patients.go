package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"estoquebot/domain"
	"estoquebot/internal/command"
)

// InsertPatient stores a new patient. Only full_name is required; every
// other field is stored as provided or left null.
func (s *Store) InsertPatient(ctx context.Context, fields map[string]any) (int64, error) {
	name := command.StringField(fields, "full_name", "name", "nome")
	if name == "" {
		return 0, &MissingFieldError{Field: "full_name"}
	}

	var id int64
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO patients (full_name, email, gov_user, gov_password, physician, address, prescription, authorization_date, expiration_date)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		name,
		nullIfEmpty(command.StringField(fields, "email")),
		nullIfEmpty(command.StringField(fields, "gov_user")),
		nullIfEmpty(command.StringField(fields, "gov_password")),
		nullIfEmpty(command.StringField(fields, "physician", "medico")),
		nullIfEmpty(command.StringField(fields, "address", "endereco")),
		nullIfEmpty(command.StringField(fields, "prescription", "receita")),
		nullIfEmpty(command.StringField(fields, "authorization_date")),
		nullIfEmpty(command.StringField(fields, "expiration_date")),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert patient: %w", err)
	}
	return id, nil
}

// FindPatientByName looks a patient up by case-insensitive exact name.
func (s *Store) FindPatientByName(ctx context.Context, name string) (*domain.Patient, error) {
	var p domain.Patient
	err := s.db.GetContext(ctx, &p,
		`SELECT id, full_name, email, gov_user, gov_password, physician, address, prescription, authorization_date, expiration_date, created_at
         FROM patients WHERE LOWER(full_name) = LOWER(?)`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: "paciente", Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &p, nil
}
