package service

import (
	"context"
	"encoding/json"
	"time"

	"doctor-referral-directory/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache keys for the two hot unfiltered directory reads. Filtered queries
// always hit the database.
const (
	CacheKeyApprovedDirectory  = "directory:approved"
	CacheKeyDirectoryLocations = "directory:locations"

	// Timeout for individual Redis operations
	cacheOpTimeout = 2 * time.Second
)

// DirectoryCacheService is a read-through cache over the public directory.
// Cache misses and Redis failures both fall back to the database; review
// decisions invalidate both keys because review is the only mutation that
// changes approved visibility.
type DirectoryCacheService interface {
	GetReferrals(ctx context.Context, key string) ([]entity.Referral, bool)
	SetReferrals(ctx context.Context, key string, referrals []entity.Referral)
	Invalidate(ctx context.Context)
}

type directoryCacheService struct {
	log         *logrus.Logger
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDirectoryCacheService(log *logrus.Logger, redisClient *redis.Client, ttl time.Duration) DirectoryCacheService {
	return &directoryCacheService{
		log:         log,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *directoryCacheService) GetReferrals(ctx context.Context, key string) ([]entity.Referral, bool) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	payload, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Directory cache read failed for %s: %+v", key, err)
		}
		return nil, false
	}

	var referrals []entity.Referral
	if err := json.Unmarshal(payload, &referrals); err != nil {
		s.log.Warnf("Directory cache payload corrupt for %s: %+v", key, err)
		return nil, false
	}
	return referrals, true
}

func (s *directoryCacheService) SetReferrals(ctx context.Context, key string, referrals []entity.Referral) {
	payload, err := json.Marshal(referrals)
	if err != nil {
		s.log.Warnf("Failed to marshal directory cache payload: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Directory cache write failed for %s: %+v", key, err)
	}
}

func (s *directoryCacheService) Invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := s.redisClient.Del(ctx, CacheKeyApprovedDirectory, CacheKeyDirectoryLocations).Err(); err != nil {
		s.log.Warnf("Directory cache invalidation failed: %+v", err)
	}
}
