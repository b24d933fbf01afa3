package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/platform/logging"
	"github.com/matthieuv/superligue/internal/usecase"
)

type Handler struct {
	standingsService *usecase.StandingsService
	statsService     *usecase.StatsService
	championService  *usecase.ChampionService
	managerService   *usecase.ManagerService
	importService    *usecase.ImportService
	rebuildService   *usecase.RebuildService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	statsService *usecase.StatsService,
	championService *usecase.ChampionService,
	managerService *usecase.ManagerService,
	importService *usecase.ImportService,
	rebuildService *usecase.RebuildService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService: standingsService,
		statsService:     statsService,
		championService:  championService,
		managerService:   managerService,
		importService:    importService,
		rebuildService:   rebuildService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionships")
	defer span.End()

	items := make([]championshipDTO, 0, len(championship.AllIDs))
	for _, id := range championship.AllIDs {
		key, _ := championship.KeyForID(id)
		items = append(items, championshipDTO{
			ID:          id,
			Key:         key,
			SuperLeague: championship.IsSuperLeague(id),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type championshipDTO struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	SuperLeague bool   `json:"superLeague"`
}
