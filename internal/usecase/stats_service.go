package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/platform/cache"
	"github.com/matthieuv/superligue/internal/platform/logging"
)

// StatsService computes the analytics views. Every call recomputes from a
// fresh snapshot copy; the optional cache only short-circuits identical
// filter lookups between data changes.
type StatsService struct {
	store       season.Store
	penaltyRepo penalty.Repository
	cache       *cache.Store
	logger      *logging.Logger
}

func NewStatsService(store season.Store, penaltyRepo penalty.Repository, cacheStore *cache.Store, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		store:       store,
		penaltyRepo: penaltyRepo,
		cache:       cacheStore,
		logger:      logger,
	}
}

// Compute runs the six statistics views for one filter scope. A nil result
// with a nil error means the scope holds no usable data.
func (s *StatsService) Compute(ctx context.Context, champFilter string, seasonFilter int) (*StatsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Compute")
	defer span.End()

	champFilter = strings.ToLower(strings.TrimSpace(champFilter))
	if champFilter == "" {
		champFilter = championship.FilterAll
	}
	if champFilter != championship.FilterAll {
		if _, ok := championship.KeyForID(champFilter); !ok {
			return nil, fmt.Errorf("%w: unknown championship filter %q", ErrInvalidInput, champFilter)
		}
	}
	if seasonFilter < 0 {
		return nil, fmt.Errorf("%w: season filter must not be negative", ErrInvalidInput)
	}

	if s.cache == nil {
		return s.compute(ctx, champFilter, seasonFilter)
	}

	key := fmt.Sprintf("stats:%s:%d", champFilter, seasonFilter)
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.compute(ctx, champFilter, seasonFilter)
	})
	if err != nil {
		return nil, err
	}
	result, _ := value.(*StatsResult)
	return result, nil
}

// InvalidateCache drops memoized results after a data change.
func (s *StatsService) InvalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.DeletePrefix(ctx, "stats:")
	}
}

func (s *StatsService) compute(ctx context.Context, champFilter string, seasonFilter int) (*StatsResult, error) {
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var penalties map[string]int
	if s.penaltyRepo != nil {
		penalties, err = s.penaltyRepo.Map(ctx)
		if err != nil {
			return nil, fmt.Errorf("load penalties: %w", err)
		}
	}

	result := computeAllStats(snapshot, penalties, champFilter, seasonFilter)
	if result == nil {
		s.logger.DebugContext(ctx, "stats scope empty", "championship", champFilter, "season", seasonFilter)
	}
	return result, nil
}
