package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stellar/internal/domain"
)

// PersonRepository

func (db *DB) Create(ctx context.Context, p domain.Person) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO people (id, name, kind, sign, asterism, subdivision, gender, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.Name, p.Kind, p.Birth.Sign, p.Birth.Asterism, p.Birth.Subdivision, string(p.Birth.Gender), p.CreatedAt)
	return err
}

func (db *DB) Get(ctx context.Context, id string) (domain.Person, error) {
	var p domain.Person
	var gender string
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, kind, sign, asterism, subdivision, gender, created_at
		FROM people WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Kind, &p.Birth.Sign, &p.Birth.Asterism, &p.Birth.Subdivision, &gender, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Person{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Person{}, err
	}
	p.Birth.Gender = domain.Gender(gender)
	return p, nil
}

func (db *DB) Delete(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResultStore implements ports.ResultRepository on top of the shared pool.
// Verdicts are immutable per (subject, counterpart, kind), so a conflicting
// insert keeps the first row.
type ResultStore struct {
	DB *DB
}

func (s *ResultStore) Get(ctx context.Context, subjectID, counterpartID string, kind domain.ReportKind) (domain.CompatibilityResult, bool, error) {
	var raw []byte
	err := s.DB.Pool.QueryRow(ctx, `
		SELECT result FROM compatibilities
		WHERE subject_id = $1 AND counterpart_id = $2 AND report_kind = $3
	`, subjectID, counterpartID, string(kind)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CompatibilityResult{}, false, nil
	}
	if err != nil {
		return domain.CompatibilityResult{}, false, err
	}
	var res domain.CompatibilityResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.CompatibilityResult{}, false, fmt.Errorf("decode stored result: %w", err)
	}
	return res, true, nil
}

func (s *ResultStore) Put(ctx context.Context, subjectID, counterpartID string, kind domain.ReportKind, res domain.CompatibilityResult) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = s.DB.Pool.Exec(ctx, `
		INSERT INTO compatibilities (subject_id, counterpart_id, report_kind, result)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (subject_id, counterpart_id, report_kind) DO NOTHING
	`, subjectID, counterpartID, string(kind), raw)
	return err
}
