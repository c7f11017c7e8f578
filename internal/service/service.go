package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tripglide/car-recommendation-service/internal/cache"
	"github.com/tripglide/car-recommendation-service/internal/catalog"
	"github.com/tripglide/car-recommendation-service/internal/domain"
	"github.com/tripglide/car-recommendation-service/internal/recommender"
)

const (
	batchConcurrency = 10
	maxBatchLimit    = 100
)

type Service struct {
	snap   *catalog.Snapshot
	engine *recommender.Engine
	cache  *cache.Cache
}

func NewService(snap *catalog.Snapshot, engine *recommender.Engine, c *cache.Cache) *Service {
	return &Service{
		snap:   snap,
		engine: engine,
		cache:  c,
	}
}

// Locations lists the distinct pickup cities, sorted.
func (s *Service) Locations() []string {
	return s.snap.Locations()
}

// CarTypes lists the distinct car types, sorted, with a fixed fallback when
// the catalog is empty.
func (s *Service) CarTypes() []string {
	return s.snap.CarTypes()
}

// CheckUser reports whether the user has rental history at the location,
// which decides if collaborative filtering is available for them.
func (s *Service) CheckUser(userID int64, location string) bool {
	return s.engine.UserExists(userID, location)
}

// ContentRecommendations serves the content-based pipeline, fronted by the
// response cache. Cache failures are logged and bypassed.
func (s *Service) ContentRecommendations(ctx context.Context, req recommender.ContentRequest) (*domain.RecommendationResult, error) {
	key := cache.ContentKey(req.Location, req.CarType, req.MaxPrice, req.ACRequired, req.UnlimitedMileage)

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[service] cache get error for %s: %v", key, err)
	}
	if found {
		return &domain.RecommendationResult{Recommendations: cached, CacheHit: true}, nil
	}

	recs, err := s.engine.ContentRecommendations(req)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Set(ctx, key, recs); cacheErr != nil {
		log.Printf("[service] cache set error for %s: %v", key, cacheErr)
	}
	return &domain.RecommendationResult{Recommendations: recs, CacheHit: false}, nil
}

// CollaborativeRecommendations serves the collaborative pipeline, fronted by
// the response cache.
func (s *Service) CollaborativeRecommendations(ctx context.Context, userID int64, location string) (*domain.RecommendationResult, error) {
	key := cache.CollaborativeKey(userID, location)

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[service] cache get error for user %d: %v", userID, err)
	}
	if found {
		return &domain.RecommendationResult{Recommendations: cached, CacheHit: true}, nil
	}

	recs, err := s.engine.CollaborativeRecommendations(userID, location)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Set(ctx, key, recs); cacheErr != nil {
		log.Printf("[service] cache set error for user %d: %v", userID, cacheErr)
	}
	return &domain.RecommendationResult{Recommendations: recs, CacheHit: false}, nil
}

// BatchCollaborative generates collaborative recommendations for one page of
// the users active at a location, with a bounded worker pool. Per-user
// failures are captured in the results, never propagated.
func (s *Service) BatchCollaborative(ctx context.Context, location string, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	if limit <= 0 {
		limit = 20
	} else if limit > maxBatchLimit {
		limit = maxBatchLimit
	}
	if page <= 0 {
		page = 1
	}

	allUsers := s.usersAtLocation(location)
	if len(allUsers) == 0 {
		return nil, fmt.Errorf("no rental history for location %q", location)
	}

	offset := (page - 1) * limit
	userIDs := []int64{}
	if offset < len(allUsers) {
		end := offset + limit
		if end > len(allUsers) {
			end = len(allUsers)
		}
		userIDs = allUsers[offset:end]
	}

	results := make([]domain.BatchUserResult, len(userIDs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, userID := range userIDs {
		wg.Add(1)
		go func(idx int, uid int64) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.processUserForBatch(ctx, uid, location)
		}(i, userID)
	}
	wg.Wait()

	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Location:   location,
		Page:       page,
		Limit:      limit,
		TotalUsers: len(allUsers),
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// usersAtLocation returns the sorted distinct users with rental history at
// the location, matched case-insensitively.
func (s *Service) usersAtLocation(location string) []int64 {
	seen := make(map[int64]struct{})
	for _, r := range s.snap.Rentals() {
		if strings.EqualFold(r.PickupLocation, location) {
			seen[r.UserID] = struct{}{}
		}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Generates recommendations for a single user, capturing errors.
func (s *Service) processUserForBatch(ctx context.Context, userID int64, location string) domain.BatchUserResult {
	result, err := s.CollaborativeRecommendations(ctx, userID, location)
	if err != nil {
		log.Printf("[service] batch: failed for user %d: %v", userID, err)
		code, msg := categorizeError(err)
		return domain.BatchUserResult{
			UserID:  userID,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchUserResult{
		UserID:          userID,
		Recommendations: result.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

// Handle response error
func categorizeError(err error) (string, string) {
	if re, ok := domain.AsRecommendationError(err); ok {
		return re.Code, re.Message
	}
	return "internal_error", "an unexpected error occurred"
}
