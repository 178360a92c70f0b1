package draft

import (
	"context"
	"sync"

	"nocflow/internal/wizard/models"
	"nocflow/pkg/platform/sentinel"
)

// InMemory keeps drafts in process memory. It round-trips through the same
// codec as the durable stores so attachments lose their binaries exactly the
// way they would against Redis or Postgres.
type InMemory struct {
	mu     sync.RWMutex
	drafts map[string]map[models.SectionID][]byte
}

func NewInMemory() *InMemory {
	return &InMemory{drafts: make(map[string]map[models.SectionID][]byte)}
}

func (s *InMemory) SaveSection(_ context.Context, applicantID string, sectionID models.SectionID, data models.SectionData) error {
	raw, err := Marshal(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bySection, ok := s.drafts[applicantID]
	if !ok {
		bySection = make(map[models.SectionID][]byte)
		s.drafts[applicantID] = bySection
	}
	bySection[sectionID] = raw
	return nil
}

func (s *InMemory) LoadSection(_ context.Context, applicantID string, sectionID models.SectionID) (models.SectionData, error) {
	s.mu.RLock()
	raw, ok := s.drafts[applicantID][sectionID]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return Unmarshal(raw)
}

func (s *InMemory) ClearAll(_ context.Context, applicantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, applicantID)
	return nil
}
