package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/standings"
	"github.com/matthieuv/superligue/internal/usecase"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	seasonNumber, err := parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.standingsService.GetSeason(ctx, championshipID, seasonNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "championship", championshipID, "season", seasonNumber, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonEntryToDTO(entry))
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProgress")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	seasonNumber, err := parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	progress, err := h.standingsService.GetProgress(ctx, championshipID, seasonNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "get progress failed", "championship", championshipID, "season", seasonNumber, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, progress)
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	entries, keys, err := h.standingsService.ListSeasons(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]keyedSeasonDTO, 0, len(keys))
	for _, key := range keys {
		items = append(items, keyedSeasonDTO{
			Key:           key,
			seasonEntryDTO: seasonEntryToDTO(entries[key]),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseSeasonPath(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("season"))
	seasonNumber, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: season must be a number, got %q", usecase.ErrInvalidInput, raw)
	}
	return seasonNumber, nil
}

type seasonEntryDTO struct {
	Season          int             `json:"season"`
	Standings       []standings.Row `json:"standings"`
	PlayedMatchdays int             `json:"playedMatchdays"`
	ExemptTeam      string          `json:"exemptTeam,omitempty"`
}

type keyedSeasonDTO struct {
	Key string `json:"key"`
	seasonEntryDTO
}

func seasonEntryToDTO(entry season.Entry) seasonEntryDTO {
	return seasonEntryDTO{
		Season:          entry.Season,
		Standings:       entry.Standings,
		PlayedMatchdays: entry.PlayedMatchdays,
		ExemptTeam:      entry.ExemptTeam,
	}
}
