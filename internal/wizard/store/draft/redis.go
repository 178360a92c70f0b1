package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nocflow/internal/wizard/models"
	"nocflow/pkg/platform/sentinel"
)

const draftKeyPrefix = "noc:draft:"

// Redis is the production draft store: one JSON value per (applicant,
// section) key with a sliding TTL so abandoned drafts age out.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithTTL overrides the default draft retention.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *Redis) { s.ttl = ttl }
}

// NewRedis constructs a Redis-backed draft store. Drafts default to 30 days
// of retention.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	s := &Redis{client: client, ttl: 30 * 24 * time.Hour}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func draftKey(applicantID string, sectionID models.SectionID) string {
	return fmt.Sprintf("%s%s:%s", draftKeyPrefix, applicantID, sectionID)
}

func (s *Redis) SaveSection(ctx context.Context, applicantID string, sectionID models.SectionID, data models.SectionData) error {
	raw, err := Marshal(data)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(applicantID, sectionID), raw, s.ttl).Err()
}

func (s *Redis) LoadSection(ctx context.Context, applicantID string, sectionID models.SectionID) (models.SectionData, error) {
	raw, err := s.client.Get(ctx, draftKey(applicantID, sectionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return Unmarshal(raw)
}

// ClearAll removes every section draft for the applicant.
func (s *Redis) ClearAll(ctx context.Context, applicantID string) error {
	pattern := draftKeyPrefix + applicantID + ":*"
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	pipe := s.client.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}
