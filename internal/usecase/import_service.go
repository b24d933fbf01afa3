package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/account"
	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/platform/logging"
)

// ImportService is the authenticated write path: match blocks and legacy
// season entries enter the store here, and exports leave here.
type ImportService struct {
	store     season.Store
	matchRepo match.Repository
	stats     *StatsService
	logger    *logging.Logger
}

func NewImportService(store season.Store, matchRepo match.Repository, stats *StatsService, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		store:     store,
		matchRepo: matchRepo,
		stats:     stats,
		logger:    logger,
	}
}

// ImportBlocks merges match blocks into the store, last write wins per
// (championship, season, matchday). Requires an admin principal.
func (s *ImportService) ImportBlocks(ctx context.Context, principal account.Principal, blocks []match.Block) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportBlocks")
	defer span.End()

	if !principal.IsAdmin() {
		return 0, fmt.Errorf("%w: match import requires the admin role", ErrForbidden)
	}
	if len(blocks) == 0 {
		return 0, fmt.Errorf("%w: no match blocks in payload", ErrInvalidInput)
	}

	for idx, block := range blocks {
		if err := validateBlock(block); err != nil {
			return 0, fmt.Errorf("%w: block %d: %v", ErrInvalidInput, idx, err)
		}
	}

	imported := 0
	for _, block := range blocks {
		if err := s.store.UpsertBlock(ctx, block); err != nil {
			return imported, fmt.Errorf("upsert block: %w", err)
		}
		imported++

		if s.matchRepo == nil {
			continue
		}
		if err := s.matchRepo.UpsertBlock(ctx, block); err != nil {
			// The in-process store stays authoritative; persistence
			// catches up on the next import.
			s.logger.WarnContext(ctx, "persist block failed",
				"championship", block.Championship,
				"season", block.Season,
				"matchday", block.Matchday,
				"error", err,
			)
		}
	}

	if s.stats != nil {
		s.stats.InvalidateCache(ctx)
	}
	s.logger.InfoContext(ctx, "match blocks imported", "count", imported, "manager", principal.UserID)
	return imported, nil
}

// ImportSeasons overlays legacy persisted season entries onto the store,
// for datasets whose match blocks were never captured. Recomputed entries
// still win wherever match data exists.
func (s *ImportService) ImportSeasons(ctx context.Context, principal account.Principal, entries map[string]season.Entry) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportSeasons")
	defer span.End()

	if !principal.IsAdmin() {
		return 0, fmt.Errorf("%w: season import requires the admin role", ErrForbidden)
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("%w: no season entries in payload", ErrInvalidInput)
	}

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("load snapshot: %w", err)
	}
	if snapshot.Seasons == nil {
		snapshot.Seasons = make(map[string]season.Entry, len(entries))
	}

	imported := 0
	for key, entry := range entries {
		prefix, seasonNumber := splitSeasonKey(key)
		if _, ok := championship.IDForKey(prefix); !ok || seasonNumber <= 0 {
			return 0, fmt.Errorf("%w: malformed season key %q", ErrInvalidInput, key)
		}
		entry.Season = seasonNumber
		snapshot.Seasons[key] = entry
		imported++
	}

	if err := s.store.Replace(ctx, snapshot); err != nil {
		return 0, fmt.Errorf("replace snapshot: %w", err)
	}
	if s.stats != nil {
		s.stats.InvalidateCache(ctx)
	}
	s.logger.InfoContext(ctx, "season entries imported", "count", imported, "manager", principal.UserID)
	return imported, nil
}

// ExportSnapshot returns a deep copy of the full dataset.
func (s *ImportService) ExportSnapshot(ctx context.Context) (season.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ExportSnapshot")
	defer span.End()

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return season.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return snapshot, nil
}

func validateBlock(block match.Block) error {
	if _, ok := championship.KeyForID(block.Championship); !ok {
		return fmt.Errorf("unknown championship %q", block.Championship)
	}
	if championship.IsSuperLeague(block.Championship) {
		return fmt.Errorf("the super league has no matches of its own")
	}
	if block.Season <= 0 {
		return fmt.Errorf("season must be greater than zero")
	}
	if block.Matchday <= 0 {
		return fmt.Errorf("matchday must be greater than zero")
	}
	for idx, raw := range block.Games {
		game := raw.Normalize()
		if strings.TrimSpace(game.HomeTeam) == "" || strings.TrimSpace(game.AwayTeam) == "" {
			return fmt.Errorf("game %d is missing a team name", idx)
		}
	}
	return nil
}
