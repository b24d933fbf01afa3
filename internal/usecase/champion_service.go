package usecase

import (
	"context"
	"fmt"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/trophy"
	"github.com/matthieuv/superligue/internal/platform/logging"
)

// ChampionService derives season titles and the pantheon board.
type ChampionService struct {
	store       season.Store
	penaltyRepo penalty.Repository
	logger      *logging.Logger
}

func NewChampionService(store season.Store, penaltyRepo penalty.Repository, logger *logging.Logger) *ChampionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChampionService{
		store:       store,
		penaltyRepo: penaltyRepo,
		logger:      logger,
	}
}

// Champions lists completed season titles for one championship, newest
// first. Incomplete seasons contribute nothing.
func (s *ChampionService) Champions(ctx context.Context, championshipID string) ([]trophy.Champion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionService.Champions")
	defer span.End()

	if _, ok := championship.KeyForID(championshipID); !ok {
		return nil, fmt.Errorf("%w: unknown championship %q", ErrInvalidInput, championshipID)
	}

	entries, penalties, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return championsFor(entries, championshipID, penalties), nil
}

// Pantheon returns the cross-championship trophy board.
func (s *ChampionService) Pantheon(ctx context.Context) ([]trophy.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionService.Pantheon")
	defer span.End()

	entries, penalties, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return buildPantheon(entries, penalties), nil
}

func (s *ChampionService) load(ctx context.Context) (map[string]season.Entry, map[string]int, error) {
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}

	var penalties map[string]int
	if s.penaltyRepo != nil {
		penalties, err = s.penaltyRepo.Map(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("load penalties: %w", err)
		}
	}

	// Titles are derived from matches wherever any exist; persisted
	// entries only cover seasons whose match data was never imported.
	entries := mergeEntries(snapshot.Seasons, buildSeasonEntries(snapshot, penalties))
	return entries, penalties, nil
}
