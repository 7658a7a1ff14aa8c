package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-brief/internal/cache"
	"quiz-brief/internal/domain"
	"quiz-brief/internal/logger"

	"go.uber.org/zap"
)

// StudySetStore keeps generated study sets for later retrieval and grading.
type StudySetStore interface {
	Put(ctx context.Context, set *domain.StudySet) error
	Get(ctx context.Context, id string) (*domain.StudySet, error)
	Delete(ctx context.Context, id string) error
	// Persistent reports whether stored sets can be read back.
	Persistent() bool
}

// cacheStudySetStore implements StudySetStore on top of domain.Cache.
type cacheStudySetStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewStudySetStore creates a StudySetStore. With a nil cache it returns a
// no-op store whose Get always reports the set as not found.
func NewStudySetStore(c domain.Cache, ttl time.Duration) StudySetStore {
	if c == nil {
		logger.Get().Warn("StudySetStore initialized with nil cache. Study sets will not be kept.")
		return &noopStudySetStore{}
	}
	return &cacheStudySetStore{
		cache: c,
		ttl:   ttl,
	}
}

func studySetKey(id string) string {
	return cache.GenerateCacheKey("study", "set", id)
}

// Put stores the study set under its ID.
func (s *cacheStudySetStore) Put(ctx context.Context, set *domain.StudySet) error {
	if set == nil || set.ID == "" {
		return domain.NewInvalidInputError("cannot store a study set without an ID")
	}

	key := studySetKey(set.ID)
	data, err := json.Marshal(set)
	if err != nil {
		logger.Get().Error("Failed to marshal study set", zap.Error(err), zap.String("id", set.ID))
		return domain.NewInternalError("failed to marshal study set", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store study set", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store study set for key %s", key), err)
	}
	logger.Get().Debug("Stored study set", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get loads a study set by ID.
func (s *cacheStudySetStore) Get(ctx context.Context, id string) (*domain.StudySet, error) {
	key := studySetKey(id)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Study set not found", zap.String("key", key))
			return nil, domain.NewStudySetNotFoundError(id)
		}
		logger.Get().Error("Failed to load study set", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load study set for key %s", key), err)
	}
	if data == "" {
		return nil, domain.NewStudySetNotFoundError(id)
	}

	var set domain.StudySet
	if err := json.Unmarshal([]byte(data), &set); err != nil {
		logger.Get().Error("Failed to unmarshal study set", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal study set for key %s", key), err)
	}
	return &set, nil
}

// Delete removes a study set. Deleting an unknown ID is not an error.
func (s *cacheStudySetStore) Delete(ctx context.Context, id string) error {
	key := studySetKey(id)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to delete study set", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to delete study set for key %s", key), err)
	}
	return nil
}

func (s *cacheStudySetStore) Persistent() bool { return true }

// noopStudySetStore is used when no cache is configured.
type noopStudySetStore struct{}

func (s *noopStudySetStore) Put(ctx context.Context, set *domain.StudySet) error {
	logger.Get().Debug("No-op StudySetStore: Put called")
	return nil
}

func (s *noopStudySetStore) Get(ctx context.Context, id string) (*domain.StudySet, error) {
	logger.Get().Debug("No-op StudySetStore: Get called", zap.String("id", id))
	return nil, domain.NewStudySetNotFoundError(id)
}

func (s *noopStudySetStore) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *noopStudySetStore) Persistent() bool { return false }
