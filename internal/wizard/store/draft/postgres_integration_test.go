//go:build integration

package draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"nocflow/internal/wizard/models"
	"nocflow/pkg/platform/sentinel"
	"nocflow/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	ctx       context.Context
	container *containers.PostgresContainer
	store     *Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.container = containers.NewPostgresContainer(s.T())
	_, err := s.container.Pool.Exec(s.ctx, Schema)
	s.Require().NoError(err)
	s.store = NewPostgres(s.container.Pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.container.Pool.Exec(s.ctx, `TRUNCATE noc_drafts`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	data := models.SectionData{
		"title": models.TextValue("River Song"),
		"idProof": models.AttachmentValue(&models.Attachment{
			Name:      "id.pdf",
			SizeBytes: 128,
			MIMEType:  "application/pdf",
			Content:   []byte("%PDF-1.7"),
		}),
	}
	s.Require().NoError(s.store.SaveSection(s.ctx, "applicant-1", "applicant-details", data))

	loaded, err := s.store.LoadSection(s.ctx, "applicant-1", "applicant-details")
	s.Require().NoError(err)
	s.Equal("River Song", loaded["title"].Text)

	att := loaded["idProof"].Attachment
	s.Require().NotNil(att)
	s.Equal("id.pdf", att.Name)
	s.True(att.MetadataOnly)
	s.Empty(att.Content)
}

func (s *PostgresStoreSuite) TestMissingDraft() {
	_, err := s.store.LoadSection(s.ctx, "applicant-1", "declaration")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpsertReplacesPayload() {
	s.Require().NoError(s.store.SaveSection(s.ctx, "applicant-1", "declaration",
		models.SectionData{"place": models.TextValue("Patna")}))
	s.Require().NoError(s.store.SaveSection(s.ctx, "applicant-1", "declaration",
		models.SectionData{"place": models.TextValue("Gaya")}))

	loaded, err := s.store.LoadSection(s.ctx, "applicant-1", "declaration")
	s.Require().NoError(err)
	s.Equal("Gaya", loaded["place"].Text)

	var count int
	s.Require().NoError(s.container.Pool.QueryRow(s.ctx,
		`SELECT count(*) FROM noc_drafts WHERE applicant_id = $1`, "applicant-1").Scan(&count))
	s.Equal(1, count)
}

func (s *PostgresStoreSuite) TestClearAllIsScopedToApplicant() {
	s.Require().NoError(s.store.SaveSection(s.ctx, "applicant-1", "declaration",
		models.SectionData{"place": models.TextValue("Patna")}))
	s.Require().NoError(s.store.SaveSection(s.ctx, "applicant-2", "declaration",
		models.SectionData{"place": models.TextValue("Gaya")}))

	s.Require().NoError(s.store.ClearAll(s.ctx, "applicant-1"))

	_, err := s.store.LoadSection(s.ctx, "applicant-1", "declaration")
	s.ErrorIs(err, sentinel.ErrNotFound)

	loaded, err := s.store.LoadSection(s.ctx, "applicant-2", "declaration")
	s.Require().NoError(err)
	s.Equal("Gaya", loaded["place"].Text)
}
