package usecase

import (
	"sort"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/standings"
)

// computeDomesticEntry recomputes one championship season from its match
// blocks. The same routine backs the standings read path, the statistics
// trophy board, and the full rebuild, so the three can never disagree.
func computeDomesticEntry(snapshot season.Snapshot, championshipID string, seasonNumber int, penalties map[string]int) season.Entry {
	blocks := filteredBlocks(snapshot, championshipID, seasonNumber)
	stats := aggregateTeamStats(blocks, snapshot.TeamNames())
	lookup := penalty.LookupFrom(penalties, championshipID, seasonNumber)
	rows := rankStandings(stats, lookup, championship.HasPairedChampions(championshipID, seasonNumber))

	return season.Entry{
		Season:          seasonNumber,
		Standings:       rows,
		PlayedMatchdays: playedMatchdays(blocks),
		ExemptTeam:      exemptTeam(blocks),
	}
}

// superLeagueEntry aggregates the four domestic tables of one season into
// the super-league entry: team totals are summed and the played-matchday
// count is the sum of each domestic league's distinct matchdays.
func superLeagueEntry(seasonNumber int, domestic []season.Entry, penalties map[string]int) season.Entry {
	merged := make(map[string]*standings.TeamStat)
	played := 0

	for _, entry := range domestic {
		played += entry.PlayedMatchdays
		for _, row := range entry.Standings {
			target, ok := merged[row.Name]
			if !ok {
				target = &standings.TeamStat{Name: row.Name}
				merged[row.Name] = target
			}
			sumTeamStats(target, row.TeamStat)
		}
	}

	lookup := penalty.LookupFrom(penalties, championship.IDSuperLeague, seasonNumber)
	rows := rankStandings(merged, lookup, championship.HasPairedChampions(championship.IDSuperLeague, seasonNumber))

	return season.Entry{
		Season:          seasonNumber,
		Standings:       rows,
		PlayedMatchdays: played,
	}
}

// buildSeasonEntries recomputes every (championship, season) entry from
// the snapshot's match set.
func buildSeasonEntries(snapshot season.Snapshot, penalties map[string]int) map[string]season.Entry {
	entries := make(map[string]season.Entry)
	domesticBySeason := make(map[int][]season.Entry)

	for _, championshipID := range championship.DomesticIDs {
		key, _ := championship.KeyForID(championshipID)
		blocks := filteredBlocks(snapshot, championshipID, championship.SeasonAll)

		for _, seasonNumber := range seasonsInBlocks(blocks) {
			entry := computeDomesticEntry(snapshot, championshipID, seasonNumber, penalties)
			entries[season.Key(key, seasonNumber)] = entry
			domesticBySeason[seasonNumber] = append(domesticBySeason[seasonNumber], entry)
		}
	}

	for seasonNumber, domestic := range domesticBySeason {
		entries[season.Key(championship.KeySuperLeague, seasonNumber)] = superLeagueEntry(seasonNumber, domestic, penalties)
	}

	return entries
}

// exemptTeam finds the team sitting out the latest played matchday. With an
// odd team count exactly one team is absent per round; anything else means
// no reliable exemption can be derived.
func exemptTeam(seasonBlocks []match.Block) string {
	latest := 0
	playedByTeam := make(map[string]struct{})
	latestTeams := make(map[string]struct{})

	for _, block := range seasonBlocks {
		if block.Matchday > latest {
			latest = block.Matchday
		}
	}
	if latest == 0 {
		return ""
	}

	for _, block := range seasonBlocks {
		for _, raw := range block.Games {
			game := raw.Normalize()
			if !game.Played() || game.HomeTeam == "" || game.AwayTeam == "" {
				continue
			}
			playedByTeam[game.HomeTeam] = struct{}{}
			playedByTeam[game.AwayTeam] = struct{}{}
			if block.Matchday == latest {
				latestTeams[game.HomeTeam] = struct{}{}
				latestTeams[game.AwayTeam] = struct{}{}
			}
		}
	}

	candidates := make([]string, 0, 1)
	for name := range playedByTeam {
		if _, ok := latestTeams[name]; !ok {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) != 1 {
		return ""
	}
	return candidates[0]
}

// mergeEntries overlays freshly computed entries onto the persisted season
// map. Recomputed entries win wherever match data produced one; persisted
// entries survive only for seasons with no matches at all.
func mergeEntries(persisted, computed map[string]season.Entry) map[string]season.Entry {
	out := make(map[string]season.Entry, len(persisted)+len(computed))
	for key, entry := range persisted {
		out[key] = entry
	}
	for key, entry := range computed {
		out[key] = entry
	}
	return out
}

// sortedEntryKeys returns the season map keys in deterministic order,
// championship key first, season number ascending.
func sortedEntryKeys(entries map[string]season.Entry) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		prefixI, seasonI := splitSeasonKey(keys[i])
		prefixJ, seasonJ := splitSeasonKey(keys[j])
		if prefixI != prefixJ {
			return prefixI < prefixJ
		}
		return seasonI < seasonJ
	})
	return keys
}

func splitSeasonKey(key string) (string, int) {
	idx := strings.LastIndex(key, "_s")
	if idx < 0 {
		return key, 0
	}
	number := 0
	for _, digit := range key[idx+2:] {
		if digit < '0' || digit > '9' {
			return key, 0
		}
		number = number*10 + int(digit-'0')
	}
	return key[:idx], number
}
