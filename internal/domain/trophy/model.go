package trophy

// Champion is one completed season title.
type Champion struct {
	ChampionshipID string `json:"championshipId"`
	Season         int    `json:"season"`
	Team           string `json:"team"`
	Points         int    `json:"points"`
	// RunnerUp may join several co-runner-ups with " / " when a season
	// outcome is overridden to a shared title.
	RunnerUp string `json:"runnerUp,omitempty"`
}

// Record is one team's trophy line on the pantheon board.
type Record struct {
	Team string `json:"team"`
	// ByChampionship counts titles per user-facing championship id.
	ByChampionship map[string]int `json:"byChampionship"`
	Total          int            `json:"total"`
}

// Titles returns the count for one championship id.
func (r Record) Titles(championshipID string) int {
	if r.ByChampionship == nil {
		return 0
	}
	return r.ByChampionship[championshipID]
}
