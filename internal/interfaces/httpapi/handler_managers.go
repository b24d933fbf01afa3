package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/matthieuv/superligue/internal/usecase"
)

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagers")
	defer span.End()

	managers, err := h.managerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list managers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managers)
}

func (h *Handler) RenameManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenameManager")
	defer span.End()

	managerID := r.PathValue("managerID")

	var req renameManagerRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.managerService.Rename(ctx, managerID, req.Name); err != nil {
		h.logger.WarnContext(ctx, "rename manager failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"id":   managerID,
		"name": req.Name,
	})
}

type renameManagerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
