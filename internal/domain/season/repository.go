package season

import (
	"context"
	"errors"

	"github.com/matthieuv/superligue/internal/domain/match"
)

// ErrManagerNotFound reports a rename against an unknown manager id.
var ErrManagerNotFound = errors.New("manager not found")

// Store owns the authoritative in-process snapshot. Reads return deep
// copies; writes are serialized by the store.
type Store interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Replace(ctx context.Context, snapshot Snapshot) error
	// UpsertBlock merges one match block last-write-wins on
	// (championship lowercased, season, matchday).
	UpsertBlock(ctx context.Context, block match.Block) error
	// RenameManager updates a manager's display name and rewrites it in
	// matches and standings in one pass.
	RenameManager(ctx context.Context, managerID, newName string) error
}
