package usecase

import (
	"sort"

	"github.com/matthieuv/superligue/internal/domain/match"
)

// computeHeadToHead builds the full pairwise matrix with per-pair match
// details for drill-down. Only teams with at least one recorded pairing
// count as active.
func computeHeadToHead(flat []match.Scored) HeadToHeadStats {
	pairs := make(map[string]*PairRecord, len(flat))
	active := make(map[string]struct{})

	for _, item := range flat {
		teamA, teamB := item.HomeTeam, item.AwayTeam
		goalsA, goalsB := item.HomeScore, item.AwayScore
		if teamA > teamB {
			teamA, teamB = teamB, teamA
			goalsA, goalsB = goalsB, goalsA
		}

		key := pairKey(teamA, teamB)
		record, ok := pairs[key]
		if !ok {
			record = &PairRecord{TeamA: teamA, TeamB: teamB}
			pairs[key] = record
		}

		record.Played++
		record.GoalsA += goalsA
		record.GoalsB += goalsB
		switch {
		case goalsA > goalsB:
			record.WinsA++
		case goalsB > goalsA:
			record.WinsB++
		default:
			record.Draws++
		}
		record.Matches = append(record.Matches, item)

		active[teamA] = struct{}{}
		active[teamB] = struct{}{}
	}

	out := HeadToHeadStats{
		Pairs:       make([]PairRecord, 0, len(pairs)),
		ActiveTeams: make([]string, 0, len(active)),
	}
	for _, record := range pairs {
		sort.SliceStable(record.Matches, func(i, j int) bool {
			if record.Matches[i].Season != record.Matches[j].Season {
				return record.Matches[i].Season < record.Matches[j].Season
			}
			return record.Matches[i].Matchday < record.Matches[j].Matchday
		})
		out.Pairs = append(out.Pairs, *record)
	}
	sort.SliceStable(out.Pairs, func(i, j int) bool {
		if out.Pairs[i].TeamA != out.Pairs[j].TeamA {
			return out.Pairs[i].TeamA < out.Pairs[j].TeamA
		}
		return out.Pairs[i].TeamB < out.Pairs[j].TeamB
	})

	for name := range active {
		out.ActiveTeams = append(out.ActiveTeams, name)
	}
	sort.Strings(out.ActiveTeams)
	return out
}
