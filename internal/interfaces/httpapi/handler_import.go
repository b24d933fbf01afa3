package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/standings"
	"github.com/matthieuv/superligue/internal/usecase"
)

func (h *Handler) ImportMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportMatches")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req importMatchesRequest
	decoder := jsoniter.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	blocks := make([]match.Block, 0, len(req.Blocks))
	for _, item := range req.Blocks {
		blocks = append(blocks, match.Block{
			Championship: item.Championship,
			Season:       item.Season,
			Matchday:     item.Matchday,
			Games:        item.Games,
		})
	}

	imported, err := h.importService.ImportBlocks(ctx, principal, blocks)
	if err != nil {
		h.logger.WarnContext(ctx, "import matches failed", "manager", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"imported": imported})
}

func (h *Handler) ImportSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportSeasons")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req map[string]legacySeasonDTO
	decoder := jsoniter.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	entries := make(map[string]season.Entry, len(req))
	for key, item := range req {
		entries[key] = item.toEntry()
	}

	imported, err := h.importService.ImportSeasons(ctx, principal, entries)
	if err != nil {
		h.logger.WarnContext(ctx, "import seasons failed", "manager", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"imported": imported})
}

func (h *Handler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportSnapshot")
	defer span.End()

	snapshot, err := h.importService.ExportSnapshot(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "export snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshot)
}

func (h *Handler) Rebuild(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Rebuild")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	result, err := h.rebuildService.Rebuild(ctx, principal)
	if err != nil {
		h.logger.ErrorContext(ctx, "rebuild failed", "manager", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.statsService.InvalidateCache(ctx)

	writeSuccess(ctx, w, http.StatusOK, result)
}

type importMatchesRequest struct {
	Blocks []matchBlockDTO `json:"blocks" validate:"required,min=1,dive"`
}

type matchBlockDTO struct {
	Championship string          `json:"championship" validate:"required"`
	Season       int             `json:"season" validate:"required,min=1"`
	Matchday     int             `json:"matchday" validate:"required,min=1"`
	Games        []match.RawGame `json:"games" validate:"required"`
}

// legacySeasonDTO accepts the historical season entry shape, where the goal
// difference was persisted as a signed string.
type legacySeasonDTO struct {
	Season          int            `json:"season"`
	Standings       []legacyRowDTO `json:"standings"`
	PlayedMatchdays int            `json:"playedMatchdays"`
	ExemptTeam      string         `json:"exemptTeam"`
}

type legacyRowDTO struct {
	Name            string `json:"name"`
	Points          int    `json:"pts"`
	Played          int    `json:"j"`
	Won             int    `json:"g"`
	Drawn           int    `json:"n"`
	Lost            int    `json:"p"`
	GoalsFor        int    `json:"bp"`
	GoalsAgainst    int    `json:"bc"`
	Diff            any    `json:"diff"`
	Position        int    `json:"pos"`
	Penalty         int    `json:"penalty"`
	EffectivePoints int    `json:"effectivePts"`
}

func (d legacySeasonDTO) toEntry() season.Entry {
	rows := make([]standings.Row, 0, len(d.Standings))
	for _, item := range d.Standings {
		diff, ok := standings.ParseDiff(item.Diff)
		if !ok {
			diff = item.GoalsFor - item.GoalsAgainst
		}
		effective := item.EffectivePoints
		if effective == 0 {
			effective = item.Points - item.Penalty
		}
		rows = append(rows, standings.Row{
			TeamStat: standings.TeamStat{
				Name:         item.Name,
				Points:       item.Points,
				Played:       item.Played,
				Won:          item.Won,
				Drawn:        item.Drawn,
				Lost:         item.Lost,
				GoalsFor:     item.GoalsFor,
				GoalsAgainst: item.GoalsAgainst,
				Diff:         diff,
			},
			Position:        item.Position,
			Penalty:         item.Penalty,
			EffectivePoints: effective,
		})
	}
	return season.Entry{
		Season:          d.Season,
		Standings:       rows,
		PlayedMatchdays: d.PlayedMatchdays,
		ExemptTeam:      d.ExemptTeam,
	}
}
