package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/platform/logging"
)

// ManagerService exposes the roster and the rename operation. Managers are
// referenced by stable id, so a rename is a single store operation instead
// of a cascading rewrite of every derived structure.
type ManagerService struct {
	store       season.Store
	penaltyRepo penalty.Repository
	logger      *logging.Logger
}

func NewManagerService(store season.Store, penaltyRepo penalty.Repository, logger *logging.Logger) *ManagerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ManagerService{store: store, penaltyRepo: penaltyRepo, logger: logger}
}

// List returns the roster sorted by display name.
func (s *ManagerService) List(ctx context.Context) ([]season.Manager, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.List")
	defer span.End()

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	out := make([]season.Manager, 0, len(snapshot.Managers))
	for _, manager := range snapshot.Managers {
		out = append(out, manager)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Rename updates one manager's display name everywhere.
func (s *ManagerService) Rename(ctx context.Context, managerID, newName string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Rename")
	defer span.End()

	managerID = strings.TrimSpace(managerID)
	newName = strings.TrimSpace(newName)
	if managerID == "" {
		return fmt.Errorf("%w: manager id is required", ErrInvalidInput)
	}
	if newName == "" {
		return fmt.Errorf("%w: new name is required", ErrInvalidInput)
	}

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	oldName := snapshot.Managers[managerID].Name

	if err := s.store.RenameManager(ctx, managerID, newName); err != nil {
		if errors.Is(err, season.ErrManagerNotFound) {
			return fmt.Errorf("%w: manager %s", ErrNotFound, managerID)
		}
		return fmt.Errorf("rename manager %s: %w", managerID, err)
	}

	if s.penaltyRepo != nil && oldName != "" && oldName != newName {
		if err := s.penaltyRepo.RenameTeam(ctx, oldName, newName); err != nil {
			// Deductions recompute against the new name on the next read;
			// a stale penalty key only means the deduction stops applying.
			s.logger.WarnContext(ctx, "rename penalty keys failed",
				"manager_id", managerID,
				"old_name", oldName,
				"error", err,
			)
		}
	}

	s.logger.InfoContext(ctx, "manager renamed", "manager_id", managerID, "name", newName)
	return nil
}
