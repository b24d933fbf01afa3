package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/matthieuv/superligue/internal/domain/account"
	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/trophy"
	"github.com/matthieuv/superligue/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
)

const rebuildWorkerCount = 4

// publishTimeout bounds each fire-and-forget champion push.
const publishTimeout = 10 * time.Second

// ChampionPublisher pushes a derived champion to the remote datastore.
// Publishing is fire-and-forget: failures are logged, never returned to
// the rebuild caller.
type ChampionPublisher interface {
	Publish(ctx context.Context, item trophy.Champion) error
}

// RebuildResult summarizes one full data reload.
type RebuildResult struct {
	SeasonEntries int `json:"seasonEntries"`
	Champions     int `json:"champions"`
	Persisted     int `json:"persisted"`
}

// RebuildService recomputes every season entry from the match set and
// re-derives champions. Season computations are independent, so they run
// on a small worker pool.
type RebuildService struct {
	store       season.Store
	penaltyRepo penalty.Repository
	trophyRepo  trophy.Repository
	publisher   ChampionPublisher
	logger      *logging.Logger
}

func NewRebuildService(
	store season.Store,
	penaltyRepo penalty.Repository,
	trophyRepo trophy.Repository,
	publisher ChampionPublisher,
	logger *logging.Logger,
) *RebuildService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RebuildService{
		store:       store,
		penaltyRepo: penaltyRepo,
		trophyRepo:  trophyRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Rebuild recomputes all derived state. Champion persistence and remote
// pushes only happen for an admin principal.
func (s *RebuildService) Rebuild(ctx context.Context, principal account.Principal) (RebuildResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RebuildService.Rebuild")
	defer span.End()

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("load snapshot: %w", err)
	}

	var penalties map[string]int
	if s.penaltyRepo != nil {
		penalties, err = s.penaltyRepo.Map(ctx)
		if err != nil {
			return RebuildResult{}, fmt.Errorf("load penalties: %w", err)
		}
	}

	computed, err := s.computeEntries(snapshot, penalties)
	if err != nil {
		return RebuildResult{}, err
	}

	snapshot.Seasons = mergeEntries(snapshot.Seasons, computed)
	if err := s.store.Replace(ctx, snapshot); err != nil {
		return RebuildResult{}, fmt.Errorf("replace snapshot: %w", err)
	}

	result := RebuildResult{SeasonEntries: len(computed)}
	for _, championshipID := range championship.AllIDs {
		champions := championsFor(snapshot.Seasons, championshipID, penalties)
		result.Champions += len(champions)
		if !principal.IsAdmin() {
			continue
		}
		for _, champion := range champions {
			if s.trophyRepo != nil {
				if err := s.trophyRepo.UpsertChampion(ctx, champion); err != nil {
					s.logger.WarnContext(ctx, "persist champion failed",
						"championship", champion.ChampionshipID,
						"season", champion.Season,
						"error", err,
					)
					continue
				}
				result.Persisted++
			}
			if s.publisher != nil {
				go s.push(champion)
			}
		}
	}

	s.logger.InfoContext(ctx, "rebuild finished",
		"season_entries", result.SeasonEntries,
		"champions", result.Champions,
		"persisted", result.Persisted,
	)
	return result, nil
}

// computeEntries fans the per-season recomputation over a worker pool and
// then derives the super-league aggregates serially.
func (s *RebuildService) computeEntries(snapshot season.Snapshot, penalties map[string]int) (map[string]season.Entry, error) {
	type task struct {
		championshipID string
		key            string
		seasonNumber   int
	}

	tasks := make([]task, 0, 16)
	for _, championshipID := range championship.DomesticIDs {
		key, _ := championship.KeyForID(championshipID)
		blocks := filteredBlocks(snapshot, championshipID, championship.SeasonAll)
		for _, seasonNumber := range seasonsInBlocks(blocks) {
			tasks = append(tasks, task{championshipID: championshipID, key: key, seasonNumber: seasonNumber})
		}
	}

	entries := make(map[string]season.Entry, len(tasks))
	if len(tasks) == 0 {
		return entries, nil
	}

	pool, err := ants.NewPool(rebuildWorkerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var mu sync.Mutex
	var workers sync.WaitGroup
	for _, item := range tasks {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			entry := computeDomesticEntry(snapshot, item.championshipID, item.seasonNumber, penalties)
			mu.Lock()
			entries[season.Key(item.key, item.seasonNumber)] = entry
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit rebuild task: %w", err)
		}
	}
	workers.Wait()

	domesticBySeason := make(map[int][]season.Entry)
	for _, item := range tasks {
		domesticBySeason[item.seasonNumber] = append(domesticBySeason[item.seasonNumber], entries[season.Key(item.key, item.seasonNumber)])
	}
	for seasonNumber, domestic := range domesticBySeason {
		entries[season.Key(championship.KeySuperLeague, seasonNumber)] = superLeagueEntry(seasonNumber, domestic, penalties)
	}

	return entries, nil
}

func (s *RebuildService) push(champion trophy.Champion) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, champion); err != nil {
		s.logger.Warn("push champion failed",
			"championship", champion.ChampionshipID,
			"season", champion.Season,
			"error", err,
		)
	}
}
