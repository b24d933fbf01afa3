package championship

import "strings"

// User-facing championship identifiers.
const (
	IDSuperLeague = "superleague"
	IDFrance      = "france"
	IDSpain       = "spain"
	IDItaly       = "italy"
	IDEngland     = "england"
)

// Internal snapshot keys. Season entries are stored under
// "<key>_s<season>", so these must never change once data exists.
const (
	KeySuperLeague = "sl"
	KeyFrance      = "fr"
	KeySpain       = "es"
	KeyItaly       = "it"
	KeyEngland     = "en"
)

// FilterAll selects every championship (super-league pseudo-matches excluded,
// since the super league has no matches of its own).
const FilterAll = "all"

// SeasonAll selects every season when used as a season filter.
const SeasonAll = 0

var keyByID = map[string]string{
	IDSuperLeague: KeySuperLeague,
	IDFrance:      KeyFrance,
	IDSpain:       KeySpain,
	IDItaly:       KeyItaly,
	IDEngland:     KeyEngland,
}

var idByKey = map[string]string{
	KeySuperLeague: IDSuperLeague,
	KeyFrance:      IDFrance,
	KeySpain:       IDSpain,
	KeyItaly:       IDItaly,
	KeyEngland:     IDEngland,
}

// DomesticIDs lists the four championships that have their own matches,
// in display order.
var DomesticIDs = []string{IDFrance, IDSpain, IDItaly, IDEngland}

// AllIDs lists every championship, super league first.
var AllIDs = []string{IDSuperLeague, IDFrance, IDSpain, IDItaly, IDEngland}

// Schedule describes the matchday calendar of one championship.
type Schedule struct {
	StandardMatchdays int
	// SpecialSeason, when > 0, uses SpecialMatchdays instead of the
	// standard count for that one season.
	SpecialSeason    int
	SpecialMatchdays int
}

var scheduleByID = map[string]Schedule{
	IDFrance:  {StandardMatchdays: 14, SpecialSeason: 3, SpecialMatchdays: 10},
	IDSpain:   {StandardMatchdays: 14},
	IDItaly:   {StandardMatchdays: 14},
	IDEngland: {StandardMatchdays: 14},
}

// Resolution overrides the computed outcome of one championship season.
// The override is data, not code: the ranking algorithm never special-cases
// a season itself.
type Resolution struct {
	// CoChampions names the teams that share the title. When set, the
	// season is also treated as unconditionally complete (it ended in a
	// tie that the schedule alone cannot express).
	CoChampions []string
}

var resolutionByIDSeason = map[string]map[int]Resolution{
	IDSpain: {
		2: {CoChampions: []string{"Les Invincibles", "Real Fantasy"}},
	},
}

// KeyForID translates a user-facing id into its snapshot key. Lookup is
// case-insensitive. ok is false for unknown ids.
func KeyForID(id string) (string, bool) {
	key, ok := keyByID[strings.ToLower(strings.TrimSpace(id))]
	return key, ok
}

// IDForKey translates a snapshot key back into the user-facing id.
func IDForKey(key string) (string, bool) {
	id, ok := idByKey[strings.ToLower(strings.TrimSpace(key))]
	return id, ok
}

// IsSuperLeague reports whether id names the aggregate pseudo-championship.
func IsSuperLeague(id string) bool {
	return strings.EqualFold(strings.TrimSpace(id), IDSuperLeague)
}

// TotalMatchdays returns the scheduled matchday count for one championship
// season. The super league total is the sum of the domestic schedules for
// that season. ok is false for unknown championships.
func TotalMatchdays(id string, season int) (int, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == IDSuperLeague {
		total := 0
		for _, domestic := range DomesticIDs {
			count, ok := TotalMatchdays(domestic, season)
			if !ok {
				return 0, false
			}
			total += count
		}
		return total, true
	}

	schedule, ok := scheduleByID[id]
	if !ok {
		return 0, false
	}
	if schedule.SpecialSeason > 0 && season == schedule.SpecialSeason {
		return schedule.SpecialMatchdays, true
	}
	return schedule.StandardMatchdays, true
}

// ResolutionFor returns the outcome override for one championship season,
// if any.
func ResolutionFor(id string, season int) (Resolution, bool) {
	bySeason, ok := resolutionByIDSeason[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Resolution{}, false
	}
	resolution, ok := bySeason[season]
	return resolution, ok
}

// HasPairedChampions reports whether the (championship, season) outcome is
// overridden to a shared title. Standings for such a season use grouped
// display ranks.
func HasPairedChampions(id string, season int) bool {
	resolution, ok := ResolutionFor(id, season)
	return ok && len(resolution.CoChampions) > 0
}
