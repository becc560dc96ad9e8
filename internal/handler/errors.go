package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"docstore/internal/domain"
	"docstore/internal/httputil"
)

// handleError maps domain errors to HTTP status codes and stable error
// kind strings. Anything unrecognized is a genuine system fault.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "not_found", "Doc not found")
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, "conflict", "Slug already exists")
	case errors.Is(err, domain.ErrImportFailed):
		httputil.RespondError(w, http.StatusInternalServerError, "import_failed", err.Error())
	default:
		slog.Error("internal error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
