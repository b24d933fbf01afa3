package usecase

import (
	"testing"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/standings"
)

func testSnapshot() season.Snapshot {
	return season.Snapshot{
		Managers: map[string]season.Manager{
			"mgr-01": {ID: "mgr-01", Name: "Alpha"},
			"mgr-02": {ID: "mgr-02", Name: "Bravo"},
			"mgr-03": {ID: "mgr-03", Name: "Charlie"},
			"mgr-04": {ID: "mgr-04", Name: "Delta"},
			"mgr-05": {ID: "mgr-05", Name: "Echo"},
		},
		Seasons: map[string]season.Entry{},
		Matches: []match.Block{
			{
				Championship: championship.IDFrance, Season: 1, Matchday: 1,
				Games: []match.RawGame{
					scoredGame("Alpha", "Bravo", 2, 1),
					scoredGame("Charlie", "Delta", 1, 1),
				},
			},
			{
				Championship: championship.IDFrance, Season: 1, Matchday: 2,
				Games: []match.RawGame{
					scoredGame("Bravo", "Charlie", 0, 3),
					scoredGame("Delta", "Echo", 2, 2),
				},
			},
			{
				Championship: championship.IDSpain, Season: 1, Matchday: 1,
				Games: []match.RawGame{
					scoredGame("Alpha", "Charlie", 1, 0),
				},
			},
		},
	}
}

func TestComputeDomesticEntry(t *testing.T) {
	entry := computeDomesticEntry(testSnapshot(), championship.IDFrance, 1, nil)

	if entry.Season != 1 {
		t.Fatalf("unexpected season: %d", entry.Season)
	}
	if entry.PlayedMatchdays != 2 {
		t.Fatalf("unexpected played matchdays: %d", entry.PlayedMatchdays)
	}
	if len(entry.Standings) != 5 {
		t.Fatalf("unexpected table size: %d", len(entry.Standings))
	}
	if entry.Standings[0].Name != "Charlie" {
		t.Fatalf("unexpected leader: %s", entry.Standings[0].Name)
	}
	// Five played, four slots on matchday 2: Alpha sat out.
	if entry.ExemptTeam != "Alpha" {
		t.Fatalf("unexpected exempt team: %q", entry.ExemptTeam)
	}
}

func TestExemptTeam(t *testing.T) {
	t.Run("no blocks", func(t *testing.T) {
		if got := exemptTeam(nil); got != "" {
			t.Fatalf("expected no exemption, got %q", got)
		}
	})

	t.Run("even roster has no exemption", func(t *testing.T) {
		blocks := []match.Block{
			{Championship: "france", Season: 1, Matchday: 1, Games: []match.RawGame{
				scoredGame("Alpha", "Bravo", 1, 0),
				scoredGame("Charlie", "Delta", 2, 2),
			}},
		}
		if got := exemptTeam(blocks); got != "" {
			t.Fatalf("expected no exemption, got %q", got)
		}
	})
}

func TestSuperLeagueEntry(t *testing.T) {
	snapshot := testSnapshot()
	france := computeDomesticEntry(snapshot, championship.IDFrance, 1, nil)
	spain := computeDomesticEntry(snapshot, championship.IDSpain, 1, nil)

	entry := superLeagueEntry(1, []season.Entry{france, spain}, nil)
	if entry.PlayedMatchdays != france.PlayedMatchdays+spain.PlayedMatchdays {
		t.Fatalf("unexpected aggregated matchdays: %d", entry.PlayedMatchdays)
	}

	var alpha *standings.Row
	for idx := range entry.Standings {
		if entry.Standings[idx].Name == "Alpha" {
			alpha = &entry.Standings[idx]
		}
	}
	if alpha == nil {
		t.Fatalf("alpha missing from super league table")
	}
	// 2-1 win and 1-0 win across two championships.
	if alpha.Points != 6 || alpha.Played != 2 || alpha.GoalsFor != 3 {
		t.Fatalf("unexpected aggregated alpha line: %+v", alpha)
	}
}

func TestBuildSeasonEntries(t *testing.T) {
	entries := buildSeasonEntries(testSnapshot(), nil)

	for _, key := range []string{"fr_s1", "es_s1", "sl_s1"} {
		if _, ok := entries[key]; !ok {
			t.Fatalf("expected entry %q, have %v", key, sortedEntryKeys(entries))
		}
	}
	if _, ok := entries["it_s1"]; ok {
		t.Fatalf("did not expect an entry for a championship without matches")
	}
}

func TestFilteredBlocks(t *testing.T) {
	snapshot := testSnapshot()

	t.Run("championship filter", func(t *testing.T) {
		blocks := filteredBlocks(snapshot, championship.IDSpain, championship.SeasonAll)
		if len(blocks) != 1 || blocks[0].Championship != championship.IDSpain {
			t.Fatalf("unexpected filtered blocks: %+v", blocks)
		}
	})

	t.Run("all and super league select every domestic block", func(t *testing.T) {
		all := filteredBlocks(snapshot, championship.FilterAll, championship.SeasonAll)
		super := filteredBlocks(snapshot, championship.IDSuperLeague, championship.SeasonAll)
		if len(all) != 3 || len(super) != 3 {
			t.Fatalf("unexpected block counts: all=%d super=%d", len(all), len(super))
		}
	})

	t.Run("unknown filter yields nothing", func(t *testing.T) {
		if blocks := filteredBlocks(snapshot, "germany", championship.SeasonAll); blocks != nil {
			t.Fatalf("expected nil, got %+v", blocks)
		}
	})

	t.Run("duplicate identities collapse last write wins", func(t *testing.T) {
		dup := snapshot.Clone()
		dup.Matches = append(dup.Matches, match.Block{
			Championship: "France", Season: 1, Matchday: 1,
			Games: []match.RawGame{scoredGame("Echo", "Delta", 9, 0)},
		})

		blocks := filteredBlocks(dup, championship.IDFrance, 1)
		if len(blocks) != 2 {
			t.Fatalf("expected duplicate block to collapse, got %d blocks", len(blocks))
		}
		for _, block := range blocks {
			if block.Matchday == 1 && len(block.Games) != 1 {
				t.Fatalf("expected the last matchday-1 block to win")
			}
		}
	})
}

func TestFlattenBlocks(t *testing.T) {
	blocks := []match.Block{
		{Championship: "france", Season: 1, Matchday: 3, Games: []match.RawGame{
			scoredGame("Alpha", "Bravo", 4, 1),
			{"homeTeam": "Charlie", "awayTeam": "Delta"},
		}},
	}

	flat := flattenBlocks(blocks)
	if len(flat) != 1 {
		t.Fatalf("expected unplayed games dropped, got %d", len(flat))
	}
	item := flat[0]
	if item.Matchday != 3 || item.HomeScore != 4 || item.AwayTeam != "Bravo" {
		t.Fatalf("unexpected flattened match: %+v", item)
	}
}

func TestMergeEntries(t *testing.T) {
	persisted := map[string]season.Entry{
		"fr_s1": {Season: 1, PlayedMatchdays: 99},
		"en_s4": {Season: 4, PlayedMatchdays: 14},
	}
	computed := map[string]season.Entry{
		"fr_s1": {Season: 1, PlayedMatchdays: 2},
	}

	merged := mergeEntries(persisted, computed)
	if merged["fr_s1"].PlayedMatchdays != 2 {
		t.Fatalf("expected recomputed entry to win")
	}
	if merged["en_s4"].PlayedMatchdays != 14 {
		t.Fatalf("expected persisted-only entry to survive")
	}
}

func TestSplitSeasonKey(t *testing.T) {
	prefix, number := splitSeasonKey("sl_s12")
	if prefix != "sl" || number != 12 {
		t.Fatalf("unexpected split: %q %d", prefix, number)
	}

	prefix, number = splitSeasonKey("malformed")
	if prefix != "malformed" || number != 0 {
		t.Fatalf("unexpected split of malformed key: %q %d", prefix, number)
	}
}

func TestSortedEntryKeys(t *testing.T) {
	entries := map[string]season.Entry{
		"fr_s2": {}, "fr_s1": {}, "es_s1": {}, "sl_s10": {}, "sl_s2": {},
	}
	keys := sortedEntryKeys(entries)
	want := []string{"es_s1", "fr_s1", "fr_s2", "sl_s2", "sl_s10"}
	for idx, key := range want {
		if keys[idx] != key {
			t.Fatalf("unexpected order: got=%v want=%v", keys, want)
		}
	}
}
