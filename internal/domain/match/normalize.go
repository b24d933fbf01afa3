package match

import (
	"math"
	"strconv"
	"strings"
)

// Field aliases accumulated across data generations, evaluated in priority
// order. First non-empty candidate wins.
var (
	homeTeamAliases  = []string{"homeTeam", "home", "h", "equipe1"}
	awayTeamAliases  = []string{"awayTeam", "away", "a", "equipe2"}
	homeScoreAliases = []string{"homeScore", "hs", "scoreHome"}
	awayScoreAliases = []string{"awayScore", "as", "scoreAway"}
)

// Normalize canonicalizes one raw record. It never fails: a missing team
// name yields "", a missing or unparsable score yields nil, which marks the
// game unplayed.
func (g RawGame) Normalize() Game {
	return Game{
		HomeTeam:  firstString(g, homeTeamAliases),
		AwayTeam:  firstString(g, awayTeamAliases),
		HomeScore: firstScore(g, homeScoreAliases),
		AwayScore: firstScore(g, awayScoreAliases),
	}
}

// FromGame wraps a canonical game back into its raw representation, for
// snapshot export.
func FromGame(game Game) RawGame {
	raw := RawGame{
		"homeTeam": game.HomeTeam,
		"awayTeam": game.AwayTeam,
	}
	if game.HomeScore != nil {
		raw["homeScore"] = *game.HomeScore
	}
	if game.AwayScore != nil {
		raw["awayScore"] = *game.AwayScore
	}
	return raw
}

func firstString(g RawGame, aliases []string) string {
	for _, alias := range aliases {
		value, ok := g[alias]
		if !ok {
			continue
		}
		if text, ok := value.(string); ok {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func firstScore(g RawGame, aliases []string) *int {
	for _, alias := range aliases {
		value, ok := g[alias]
		if !ok || value == nil {
			continue
		}
		return parseScore(value)
	}
	return nil
}

// parseScore accepts the numeric and string score encodings seen in the
// wild. JSON decoding yields float64 for numbers; older exports carry
// scores as strings.
func parseScore(value any) *int {
	switch v := value.(type) {
	case int:
		return &v
	case int64:
		score := int(v)
		return &score
	case float64:
		if math.IsNaN(v) || v != math.Trunc(v) {
			return nil
		}
		score := int(v)
		return &score
	case string:
		score, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		return &score
	default:
		return nil
	}
}
