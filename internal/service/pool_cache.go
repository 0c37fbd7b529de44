package service

import (
	"context"
	"encoding/json"
	"time"

	"quizflow/internal/cache"
	"quizflow/internal/domain"
	"quizflow/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// PoolCacheService serves the active question pool from Redis, falling
// back to the repository on a miss. Concurrent misses for the same
// topic are collapsed with singleflight so the database sees one load.
type PoolCacheService interface {
	GetPool(ctx context.Context, topic string) ([]*domain.Question, error)
	InvalidatePool(ctx context.Context, topic string) error
}

type poolCacheService struct {
	cache   domain.Cache
	repo    domain.QuestionRepository
	ttl     time.Duration
	loaders singleflight.Group
}

// NewPoolCacheService creates a new PoolCacheService.
func NewPoolCacheService(cacheClient domain.Cache, repo domain.QuestionRepository, ttl time.Duration) PoolCacheService {
	return &poolCacheService{
		cache: cacheClient,
		repo:  repo,
		ttl:   ttl,
	}
}

func poolCacheKey(topic string) string {
	if topic == "" {
		topic = "all"
	}
	return cache.GenerateCacheKey("quiz", "pool", topic)
}

// GetPool implements PoolCacheService.
func (s *poolCacheService) GetPool(ctx context.Context, topic string) ([]*domain.Question, error) {
	key := poolCacheKey(topic)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var pool []*domain.Question
			if err := json.Unmarshal([]byte(cached), &pool); err == nil {
				return pool, nil
			}
			// Corrupt cache entry: reload below and overwrite.
			logger.Get().Warn("PoolCacheService: failed to decode cached pool, reloading",
				zap.String("key", key))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Error("PoolCacheService: cache read failed",
				zap.String("key", key), zap.Error(err))
		}
	}

	result, err, _ := s.loaders.Do(key, func() (interface{}, error) {
		pool, err := s.repo.ListActiveQuestions(ctx, topic)
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			if data, err := json.Marshal(pool); err == nil {
				if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
					logger.Get().Warn("PoolCacheService: cache write failed",
						zap.String("key", key), zap.Error(err))
				}
			}
		}
		return pool, nil
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to load question pool", err)
	}
	return result.([]*domain.Question), nil
}

// InvalidatePool implements PoolCacheService.
func (s *poolCacheService) InvalidatePool(ctx context.Context, topic string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, poolCacheKey(topic))
}
