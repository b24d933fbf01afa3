package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/platform/logging"
)

// StandingsService serves positioned tables and season progress. Standings
// are recomputed from the match set on every read; a persisted entry is
// only a fallback for seasons with no match data at all.
type StandingsService struct {
	store       season.Store
	penaltyRepo penalty.Repository
	logger      *logging.Logger
}

func NewStandingsService(store season.Store, penaltyRepo penalty.Repository, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		store:       store,
		penaltyRepo: penaltyRepo,
		logger:      logger,
	}
}

// GetSeason returns the entry for one championship season.
func (s *StandingsService) GetSeason(ctx context.Context, championshipID string, seasonNumber int) (season.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetSeason")
	defer span.End()

	key, ok := championship.KeyForID(championshipID)
	if !ok {
		return season.Entry{}, fmt.Errorf("%w: unknown championship %q", ErrInvalidInput, championshipID)
	}
	if seasonNumber <= 0 {
		return season.Entry{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return season.Entry{}, fmt.Errorf("load snapshot: %w", err)
	}
	penalties, err := s.penalties(ctx)
	if err != nil {
		return season.Entry{}, err
	}

	if entry, ok := recomputedEntry(snapshot, championshipID, seasonNumber, penalties); ok {
		return entry, nil
	}
	if entry, ok := snapshot.Seasons[season.Key(key, seasonNumber)]; ok {
		return entry, nil
	}
	return season.Entry{}, fmt.Errorf("%w: %s season %d", ErrNotFound, strings.ToLower(championshipID), seasonNumber)
}

// GetProgress reports schedule completion for one championship season.
func (s *StandingsService) GetProgress(ctx context.Context, championshipID string, seasonNumber int) (SeasonProgress, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetProgress")
	defer span.End()

	entry, err := s.GetSeason(ctx, championshipID, seasonNumber)
	if err != nil {
		return SeasonProgress{}, err
	}

	progress, ok := seasonProgress(championshipID, seasonNumber, entryPlayedMatchdays(entry))
	if !ok {
		return SeasonProgress{}, fmt.Errorf("%w: no schedule for championship %q", ErrInvalidInput, championshipID)
	}
	return progress, nil
}

// ListSeasons returns every known entry, recomputed where match data
// exists, in deterministic key order.
func (s *StandingsService) ListSeasons(ctx context.Context) (map[string]season.Entry, []string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ListSeasons")
	defer span.End()

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	penalties, err := s.penalties(ctx)
	if err != nil {
		return nil, nil, err
	}

	entries := mergeEntries(snapshot.Seasons, buildSeasonEntries(snapshot, penalties))
	return entries, sortedEntryKeys(entries), nil
}

func (s *StandingsService) penalties(ctx context.Context) (map[string]int, error) {
	if s.penaltyRepo == nil {
		return nil, nil
	}
	penalties, err := s.penaltyRepo.Map(ctx)
	if err != nil {
		return nil, fmt.Errorf("load penalties: %w", err)
	}
	return penalties, nil
}

// recomputedEntry rebuilds one entry from matches. ok is false when the
// scope has no match data, signaling the persisted-entry fallback.
func recomputedEntry(snapshot season.Snapshot, championshipID string, seasonNumber int, penalties map[string]int) (season.Entry, bool) {
	if championship.IsSuperLeague(championshipID) {
		domestic := make([]season.Entry, 0, len(championship.DomesticIDs))
		for _, id := range championship.DomesticIDs {
			if len(filteredBlocks(snapshot, id, seasonNumber)) == 0 {
				continue
			}
			domestic = append(domestic, computeDomesticEntry(snapshot, id, seasonNumber, penalties))
		}
		if len(domestic) == 0 {
			return season.Entry{}, false
		}
		return superLeagueEntry(seasonNumber, domestic, penalties), true
	}

	if len(filteredBlocks(snapshot, championshipID, seasonNumber)) == 0 {
		return season.Entry{}, false
	}
	return computeDomesticEntry(snapshot, championshipID, seasonNumber, penalties), true
}
