package penalty

import "fmt"

// Penalty is one administrative points deduction. Penalties apply only at
// ranking time and never mutate stored points.
type Penalty struct {
	ChampionshipID string `json:"championshipId"`
	Season         int    `json:"season"`
	Team           string `json:"team"`
	Points         int    `json:"points"`
}

// Key builds the flat penalty map key used by the snapshot wire format.
func Key(championshipID string, seasonNumber int, team string) string {
	return fmt.Sprintf("%s_%d_%s", championshipID, seasonNumber, team)
}

// Lookup resolves a team's deduction within one championship season.
type Lookup func(team string) int

// None is the zero lookup.
func None(string) int { return 0 }

// LookupFrom builds a Lookup over the flat penalty map for one
// championship season.
func LookupFrom(penalties map[string]int, championshipID string, seasonNumber int) Lookup {
	if len(penalties) == 0 {
		return None
	}
	return func(team string) int {
		points := penalties[Key(championshipID, seasonNumber, team)]
		if points < 0 {
			return 0
		}
		return points
	}
}
