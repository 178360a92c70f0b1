package draft

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nocflow/internal/wizard/models"
	"nocflow/pkg/platform/sentinel"
)

// Postgres stores drafts as one jsonb row per (applicant, section). Used in
// deployments that already run Postgres and do not want a second store for
// drafts.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Schema is the DDL for the drafts table. Applied by the operator or a
// migration tool, not by this package.
const Schema = `
CREATE TABLE IF NOT EXISTS noc_drafts (
    applicant_id TEXT NOT NULL,
    section_id   TEXT NOT NULL,
    payload      JSONB NOT NULL,
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (applicant_id, section_id)
);`

func (s *Postgres) SaveSection(ctx context.Context, applicantID string, sectionID models.SectionID, data models.SectionData) error {
	raw, err := Marshal(data)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO noc_drafts (applicant_id, section_id, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (applicant_id, section_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		applicantID, string(sectionID), raw)
	return err
}

func (s *Postgres) LoadSection(ctx context.Context, applicantID string, sectionID models.SectionID) (models.SectionData, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `
		SELECT payload FROM noc_drafts
		WHERE applicant_id = $1 AND section_id = $2`,
		applicantID, string(sectionID)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return Unmarshal(raw)
}

func (s *Postgres) ClearAll(ctx context.Context, applicantID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM noc_drafts WHERE applicant_id = $1`, applicantID)
	return err
}
