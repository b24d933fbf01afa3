package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/usecase"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	champFilter := strings.TrimSpace(r.URL.Query().Get("championship"))
	seasonFilter := championship.SeasonAll
	if raw := strings.TrimSpace(r.URL.Query().Get("season")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: season must be a number, got %q", usecase.ErrInvalidInput, raw))
			return
		}
		seasonFilter = parsed
	}

	result, err := h.statsService.Compute(ctx, champFilter, seasonFilter)
	if err != nil {
		h.logger.WarnContext(ctx, "compute stats failed", "championship", champFilter, "season", seasonFilter, "error", err)
		writeError(ctx, w, err)
		return
	}
	if result == nil {
		writeError(ctx, w, fmt.Errorf("%w: no data for the requested scope", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
