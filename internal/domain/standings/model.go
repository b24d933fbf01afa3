package standings

import (
	"strconv"
	"strings"
)

// TeamStat accumulates one team's results. JSON tags keep the historical
// snapshot field names (j/g/n/p = played/won/drawn/lost, bp/bc = goals
// for/against).
type TeamStat struct {
	Name         string `json:"name"`
	Points       int    `json:"pts"`
	Played       int    `json:"j"`
	Won          int    `json:"g"`
	Drawn        int    `json:"n"`
	Lost         int    `json:"p"`
	GoalsFor     int    `json:"bp"`
	GoalsAgainst int    `json:"bc"`
	Diff         int    `json:"diff"`
}

// Row is one positioned standings entry. EffectivePoints is raw points
// minus the administrative penalty; the stored points are never mutated.
type Row struct {
	TeamStat
	Position        int `json:"pos"`
	Penalty         int `json:"penalty"`
	EffectivePoints int `json:"effectivePts"`
}

// ParseDiff reads a goal difference that older snapshots persisted as a
// signed string ("+12", "-3"). ok is false when the value is unreadable.
func ParseDiff(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case string:
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v), "+"))
		diff, err := strconv.Atoi(text)
		if err != nil {
			return 0, false
		}
		return diff, true
	default:
		return 0, false
	}
}
