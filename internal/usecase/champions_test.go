package usecase

import (
	"strings"
	"testing"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/standings"
)

func completedEntry(seasonNumber int, rows ...standings.Row) season.Entry {
	return season.Entry{
		Season:          seasonNumber,
		Standings:       rows,
		PlayedMatchdays: 14,
	}
}

func tableRow(name string, points, diff, goalsFor int) standings.Row {
	return standings.Row{TeamStat: standings.TeamStat{
		Name: name, Points: points, Diff: diff, GoalsFor: goalsFor, Played: 14,
	}}
}

func TestDeriveChampion(t *testing.T) {
	t.Run("incomplete season has no champion", func(t *testing.T) {
		entry := season.Entry{
			Season:          1,
			Standings:       []standings.Row{tableRow("Alpha", 30, 10, 20)},
			PlayedMatchdays: 8,
		}
		if _, ok := deriveChampion(championship.IDFrance, entry, nil); ok {
			t.Fatalf("expected no champion for an incomplete season")
		}
	})

	t.Run("champion and runner up", func(t *testing.T) {
		entry := completedEntry(1,
			tableRow("Bravo", 28, 6, 18),
			tableRow("Alpha", 31, 12, 22),
			tableRow("Charlie", 20, -2, 10),
		)

		champion, ok := deriveChampion(championship.IDFrance, entry, nil)
		if !ok {
			t.Fatalf("expected a champion")
		}
		if champion.Team != "Alpha" || champion.RunnerUp != "Bravo" {
			t.Fatalf("unexpected outcome: %+v", champion)
		}
		if champion.Points != 31 || champion.Season != 1 {
			t.Fatalf("unexpected champion payload: %+v", champion)
		}
	})

	t.Run("penalties can move the title", func(t *testing.T) {
		entry := completedEntry(1,
			tableRow("Alpha", 31, 12, 22),
			tableRow("Bravo", 29, 6, 18),
		)
		penalties := map[string]int{
			penalty.Key(championship.IDFrance, 1, "Alpha"): 5,
		}

		champion, ok := deriveChampion(championship.IDFrance, entry, penalties)
		if !ok || champion.Team != "Bravo" {
			t.Fatalf("expected penalty-adjusted champion, got %+v", champion)
		}
	})

	t.Run("spain season two is shared", func(t *testing.T) {
		entry := completedEntry(2,
			tableRow("Les Invincibles", 30, 11, 21),
			tableRow("Real Fantasy", 30, 11, 19),
			tableRow("AC Pixel", 24, 2, 14),
			tableRow("Dream United", 24, 2, 12),
		)

		champion, ok := deriveChampion(championship.IDSpain, entry, nil)
		if !ok {
			t.Fatalf("expected a champion")
		}
		if champion.Team != "Les Invincibles & Real Fantasy" {
			t.Fatalf("unexpected shared title: %q", champion.Team)
		}
		if champion.Points != 30 {
			t.Fatalf("unexpected shared points: %d", champion.Points)
		}
		// Both remaining teams tie on points and diff.
		if champion.RunnerUp != "AC Pixel / Dream United" {
			t.Fatalf("unexpected runner up: %q", champion.RunnerUp)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		if _, ok := deriveChampion(championship.IDFrance, season.Entry{Season: 1}, nil); ok {
			t.Fatalf("expected no champion from an empty table")
		}
	})
}

func TestChampionsFor(t *testing.T) {
	entries := map[string]season.Entry{
		"fr_s1": completedEntry(1, tableRow("Alpha", 31, 12, 22), tableRow("Bravo", 28, 6, 18)),
		"fr_s2": completedEntry(2, tableRow("Charlie", 33, 15, 25), tableRow("Alpha", 30, 9, 20)),
		"fr_s3": {
			Season:          3,
			Standings:       []standings.Row{tableRow("Bravo", 12, 3, 9)},
			PlayedMatchdays: 4, // shortened schedule still needs 10
		},
		"es_s1": completedEntry(1, tableRow("Delta", 29, 8, 17)),
	}

	champions := championsFor(entries, championship.IDFrance, nil)
	if len(champions) != 2 {
		t.Fatalf("unexpected champion count: %d", len(champions))
	}
	if champions[0].Season != 2 || champions[1].Season != 1 {
		t.Fatalf("expected newest season first: %+v", champions)
	}
	if champions[0].Team != "Charlie" {
		t.Fatalf("unexpected season 2 champion: %q", champions[0].Team)
	}

	if got := championsFor(entries, "germany", nil); got != nil {
		t.Fatalf("expected nil for unknown championship, got %+v", got)
	}
}

func TestBuildPantheon(t *testing.T) {
	entries := map[string]season.Entry{
		// Alpha takes france twice, Bravo takes england once.
		"fr_s1": completedEntry(1, tableRow("Alpha", 31, 12, 22), tableRow("Bravo", 28, 6, 18)),
		"fr_s2": completedEntry(2, tableRow("Alpha", 33, 15, 25), tableRow("Charlie", 30, 9, 20)),
		"en_s1": completedEntry(1, tableRow("Bravo", 29, 8, 17), tableRow("Alpha", 27, 5, 15)),
		// Shared spain title credits both co-champions.
		"es_s2": completedEntry(2,
			tableRow("Les Invincibles", 30, 11, 21),
			tableRow("Real Fantasy", 30, 11, 19),
			tableRow("Alpha", 20, 0, 10),
		),
	}

	board := buildPantheon(entries, nil)
	if len(board) == 0 {
		t.Fatalf("expected a trophy board")
	}
	if board[0].Team != "Alpha" || board[0].Total != 2 {
		t.Fatalf("unexpected leader: %+v", board[0])
	}

	totals := make(map[string]int, len(board))
	for _, record := range board {
		totals[record.Team] = record.Total
	}
	if totals["Les Invincibles"] != 1 || totals["Real Fantasy"] != 1 {
		t.Fatalf("expected both co-champions credited: %+v", totals)
	}
	if totals["Bravo"] != 1 {
		t.Fatalf("unexpected bravo total: %d", totals["Bravo"])
	}

	leader := board[0]
	if leader.Titles(championship.IDFrance) != 2 {
		t.Fatalf("unexpected per-championship count: %+v", leader.ByChampionship)
	}

	if strings.Contains(leader.Team, coChampionSeparator) {
		t.Fatalf("joined names must never appear on the board: %q", leader.Team)
	}
}
