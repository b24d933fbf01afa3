package penalty

import "context"

// Repository exposes the persisted penalty set.
type Repository interface {
	// Map returns the flat "<championshipId>_<season>_<team>" → points map.
	Map(ctx context.Context) (map[string]int, error)
	Upsert(ctx context.Context, item Penalty) error
	// RenameTeam moves every deduction from the old display name to the
	// new one, across all championships and seasons.
	RenameTeam(ctx context.Context, oldName, newName string) error
}
