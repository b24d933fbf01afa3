package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/standings"
	"github.com/matthieuv/superligue/internal/infrastructure/repository/memory"
	"github.com/matthieuv/superligue/internal/platform/logging"
)

func TestChampionService_Champions(t *testing.T) {
	store := memory.NewSeasonStore(season.Snapshot{
		Seasons: map[string]season.Entry{
			"fr_s1": completedEntry(1,
				tableRow("Alpha", 31, 12, 22),
				tableRow("Bravo", 28, 6, 18),
			),
			"fr_s2": {
				Season:          2,
				Standings:       []standings.Row{tableRow("Bravo", 12, 3, 9)},
				PlayedMatchdays: 3,
			},
		},
	})
	service := NewChampionService(store, nil, logging.NewNop())

	t.Run("lists completed titles only", func(t *testing.T) {
		champions, err := service.Champions(context.Background(), championship.IDFrance)
		if err != nil {
			t.Fatalf("champions: %v", err)
		}
		if len(champions) != 1 || champions[0].Team != "Alpha" {
			t.Fatalf("unexpected champions: %+v", champions)
		}
		if champions[0].RunnerUp != "Bravo" {
			t.Fatalf("unexpected runner up: %q", champions[0].RunnerUp)
		}
	})

	t.Run("unknown championship", func(t *testing.T) {
		if _, err := service.Champions(context.Background(), "germany"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}

func TestChampionService_Pantheon(t *testing.T) {
	store := memory.NewSeasonStore(season.Snapshot{
		Seasons: map[string]season.Entry{
			"fr_s1": completedEntry(1, tableRow("Alpha", 31, 12, 22), tableRow("Bravo", 28, 6, 18)),
			"en_s1": completedEntry(1, tableRow("Alpha", 29, 9, 17), tableRow("Charlie", 25, 4, 12)),
		},
	})
	service := NewChampionService(store, nil, logging.NewNop())

	board, err := service.Pantheon(context.Background())
	if err != nil {
		t.Fatalf("pantheon: %v", err)
	}
	if len(board) == 0 || board[0].Team != "Alpha" || board[0].Total != 2 {
		t.Fatalf("unexpected board: %+v", board)
	}
	if board[0].Titles(championship.IDFrance) != 1 || board[0].Titles(championship.IDEngland) != 1 {
		t.Fatalf("unexpected per-championship counts: %+v", board[0].ByChampionship)
	}
}
