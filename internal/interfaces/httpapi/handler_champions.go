package httpapi

import (
	"net/http"
)

func (h *Handler) ListChampions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampions")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	champions, err := h.championService.Champions(ctx, championshipID)
	if err != nil {
		h.logger.WarnContext(ctx, "list champions failed", "championship", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, champions)
}

func (h *Handler) GetPantheon(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPantheon")
	defer span.End()

	records, err := h.championService.Pantheon(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get pantheon failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, records)
}
