package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/standings"
	"github.com/matthieuv/superligue/internal/infrastructure/repository/memory"
	"github.com/matthieuv/superligue/internal/platform/logging"
)

func TestStandingsService_GetSeason(t *testing.T) {
	store := memory.NewSeasonStore(testSnapshot())
	service := NewStandingsService(store, memory.NewPenaltyRepository(nil), logging.NewNop())

	t.Run("recomputes from matches", func(t *testing.T) {
		entry, err := service.GetSeason(context.Background(), championship.IDFrance, 1)
		if err != nil {
			t.Fatalf("get season: %v", err)
		}
		if entry.PlayedMatchdays != 2 || len(entry.Standings) != 5 {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	})

	t.Run("unknown championship", func(t *testing.T) {
		_, err := service.GetSeason(context.Background(), "germany", 1)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("non positive season", func(t *testing.T) {
		_, err := service.GetSeason(context.Background(), championship.IDFrance, 0)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("missing season", func(t *testing.T) {
		_, err := service.GetSeason(context.Background(), championship.IDEngland, 7)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("persisted entry backs a matchless season", func(t *testing.T) {
		snapshot := testSnapshot()
		snapshot.Seasons["en_s4"] = season.Entry{
			Season:          4,
			PlayedMatchdays: 14,
			Standings:       []standings.Row{{TeamStat: standings.TeamStat{Name: "Alpha", Points: 30, Played: 14}}},
		}
		legacyStore := memory.NewSeasonStore(snapshot)
		legacyService := NewStandingsService(legacyStore, nil, logging.NewNop())

		entry, err := legacyService.GetSeason(context.Background(), championship.IDEngland, 4)
		if err != nil {
			t.Fatalf("get persisted season: %v", err)
		}
		if entry.PlayedMatchdays != 14 {
			t.Fatalf("unexpected persisted entry: %+v", entry)
		}
	})

	t.Run("super league aggregates domestic tables", func(t *testing.T) {
		entry, err := service.GetSeason(context.Background(), championship.IDSuperLeague, 1)
		if err != nil {
			t.Fatalf("get super league: %v", err)
		}
		if entry.PlayedMatchdays != 3 {
			t.Fatalf("unexpected aggregated matchdays: %d", entry.PlayedMatchdays)
		}
	})
}

func TestStandingsService_PenaltiesApply(t *testing.T) {
	penalties := map[string]int{
		penalty.Key(championship.IDFrance, 1, "Charlie"): 10,
	}
	store := memory.NewSeasonStore(testSnapshot())
	service := NewStandingsService(store, memory.NewPenaltyRepository(penalties), logging.NewNop())

	entry, err := service.GetSeason(context.Background(), championship.IDFrance, 1)
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	if entry.Standings[0].Name == "Charlie" {
		t.Fatalf("expected the deduction to demote charlie")
	}
	for _, row := range entry.Standings {
		if row.Name == "Charlie" && (row.Penalty != 10 || row.EffectivePoints != row.Points-10) {
			t.Fatalf("unexpected penalised row: %+v", row)
		}
	}
}

func TestStandingsService_GetProgress(t *testing.T) {
	store := memory.NewSeasonStore(testSnapshot())
	service := NewStandingsService(store, nil, logging.NewNop())

	progress, err := service.GetProgress(context.Background(), championship.IDFrance, 1)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if progress.Complete || progress.PlayedMatchdays != 2 || progress.TotalMatchdays != 14 {
		t.Fatalf("unexpected progress: %+v", progress)
	}
	if progress.Percent != 14 {
		t.Fatalf("unexpected percent: %d", progress.Percent)
	}
}

func TestStandingsService_ListSeasons(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Seasons["it_s9"] = season.Entry{Season: 9, PlayedMatchdays: 14}
	store := memory.NewSeasonStore(snapshot)
	service := NewStandingsService(store, nil, logging.NewNop())

	entries, keys, err := service.ListSeasons(context.Background())
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	for _, key := range []string{"fr_s1", "es_s1", "sl_s1", "it_s9"} {
		if _, ok := entries[key]; !ok {
			t.Fatalf("missing entry %q in %v", key, keys)
		}
	}
	if len(keys) != len(entries) {
		t.Fatalf("keys and entries disagree: %d vs %d", len(keys), len(entries))
	}
}
