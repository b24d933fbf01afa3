package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/season"
)

// blockKey identifies one scheduled round.
func blockKey(block match.Block) string {
	return fmt.Sprintf("%s|s%d|md%d",
		strings.ToLower(strings.TrimSpace(block.Championship)),
		block.Season,
		block.Matchday,
	)
}

// dedupeBlocks collapses duplicate blocks for the same
// (championship, season, matchday) identity, last write wins.
func dedupeBlocks(blocks []match.Block) []match.Block {
	seen := make(map[string]int, len(blocks))
	out := make([]match.Block, 0, len(blocks))
	for _, block := range blocks {
		key := blockKey(block)
		if idx, ok := seen[key]; ok {
			out[idx] = block
			continue
		}
		seen[key] = len(out)
		out = append(out, block)
	}
	return out
}

// filteredBlocks selects the match blocks in scope for one championship and
// season filter. champFilter accepts a user-facing championship id,
// championship.FilterAll, or the super-league id; the super league has no
// native matches, so both the "all" and super-league modes select every
// domestic block. seasonFilter of championship.SeasonAll passes all seasons.
func filteredBlocks(snapshot season.Snapshot, champFilter string, seasonFilter int) []match.Block {
	wantKey := ""
	if !strings.EqualFold(strings.TrimSpace(champFilter), championship.FilterAll) &&
		!championship.IsSuperLeague(champFilter) {
		key, ok := championship.KeyForID(champFilter)
		if !ok {
			return nil
		}
		wantKey = key
	}

	out := make([]match.Block, 0, len(snapshot.Matches))
	for _, block := range dedupeBlocks(snapshot.Matches) {
		key, ok := championship.KeyForID(block.Championship)
		if !ok || key == championship.KeySuperLeague {
			continue
		}
		if wantKey != "" && key != wantKey {
			continue
		}
		if seasonFilter != championship.SeasonAll && block.Season != seasonFilter {
			continue
		}
		out = append(out, block)
	}
	return out
}

// flattenBlocks normalizes every game in scope and drops unplayed or
// unparsable ones, producing the flat scored-match list consumed by the
// statistics views.
func flattenBlocks(blocks []match.Block) []match.Scored {
	out := make([]match.Scored, 0, len(blocks)*4)
	for _, block := range blocks {
		for _, raw := range block.Games {
			game := raw.Normalize()
			if !game.Played() || game.HomeTeam == "" || game.AwayTeam == "" {
				continue
			}
			out = append(out, match.Scored{
				Championship: block.Championship,
				Season:       block.Season,
				Matchday:     block.Matchday,
				HomeTeam:     game.HomeTeam,
				AwayTeam:     game.AwayTeam,
				HomeScore:    *game.HomeScore,
				AwayScore:    *game.AwayScore,
			})
		}
	}
	return out
}

// playedMatchdays counts distinct matchday numbers with at least one
// recorded block.
func playedMatchdays(blocks []match.Block) int {
	seen := make(map[int]struct{}, len(blocks))
	for _, block := range blocks {
		seen[block.Matchday] = struct{}{}
	}
	return len(seen)
}

// seasonsInBlocks lists the distinct season numbers present, ascending.
func seasonsInBlocks(blocks []match.Block) []int {
	seen := make(map[int]struct{})
	for _, block := range blocks {
		seen[block.Season] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for number := range seen {
		out = append(out, number)
	}
	sort.Ints(out)
	return out
}
