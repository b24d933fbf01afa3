package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/infrastructure/repository/memory"
	"github.com/matthieuv/superligue/internal/platform/logging"
)

func TestManagerService_List(t *testing.T) {
	store := memory.NewSeasonStore(testSnapshot())
	service := NewManagerService(store, nil, logging.NewNop())

	managers, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list managers: %v", err)
	}
	if len(managers) != 5 {
		t.Fatalf("unexpected roster size: %d", len(managers))
	}
	for idx := 1; idx < len(managers); idx++ {
		if managers[idx-1].Name > managers[idx].Name {
			t.Fatalf("roster not sorted by name: %+v", managers)
		}
	}
}

func TestManagerService_Rename(t *testing.T) {
	t.Run("validates input", func(t *testing.T) {
		service := NewManagerService(memory.NewSeasonStore(testSnapshot()), nil, logging.NewNop())
		if err := service.Rename(context.Background(), "  ", "New Name"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		if err := service.Rename(context.Background(), "mgr-01", "  "); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("unknown manager maps to not found", func(t *testing.T) {
		service := NewManagerService(memory.NewSeasonStore(testSnapshot()), nil, logging.NewNop())
		if err := service.Rename(context.Background(), "mgr-99", "New Name"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("rename propagates into standings", func(t *testing.T) {
		store := memory.NewSeasonStore(testSnapshot())
		service := NewManagerService(store, nil, logging.NewNop())
		standingsSvc := NewStandingsService(store, nil, logging.NewNop())

		if err := service.Rename(context.Background(), "mgr-01", "Alpha Rebooted"); err != nil {
			t.Fatalf("rename: %v", err)
		}

		entry, err := standingsSvc.GetSeason(context.Background(), championship.IDFrance, 1)
		if err != nil {
			t.Fatalf("get season: %v", err)
		}
		for _, row := range entry.Standings {
			if row.Name == "Alpha" {
				t.Fatalf("old name still present in standings")
			}
		}
		found := false
		for _, row := range entry.Standings {
			if row.Name == "Alpha Rebooted" {
				found = true
			}
		}
		if !found {
			t.Fatalf("renamed team missing from standings: %+v", entry.Standings)
		}
	})

	t.Run("rename rekeys penalties", func(t *testing.T) {
		store := memory.NewSeasonStore(testSnapshot())
		penaltyRepo := memory.NewPenaltyRepository(map[string]int{
			penalty.Key(championship.IDFrance, 1, "Alpha"): 4,
			penalty.Key(championship.IDFrance, 1, "Bravo"): 2,
		})
		service := NewManagerService(store, penaltyRepo, logging.NewNop())

		if err := service.Rename(context.Background(), "mgr-01", "Alpha Rebooted"); err != nil {
			t.Fatalf("rename: %v", err)
		}

		penalties, err := penaltyRepo.Map(context.Background())
		if err != nil {
			t.Fatalf("load penalties: %v", err)
		}
		lookup := penalty.LookupFrom(penalties, championship.IDFrance, 1)
		if got := lookup("Alpha Rebooted"); got != 4 {
			t.Fatalf("deduction did not follow the rename: %d", got)
		}
		if got := lookup("Alpha"); got != 0 {
			t.Fatalf("old key still carries a deduction: %d", got)
		}
		if got := lookup("Bravo"); got != 2 {
			t.Fatalf("unrelated deduction was touched: %d", got)
		}
	})
}
