package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docstore/internal/domain/services"
	"docstore/internal/httputil"
)

// ImportHandler handles document import HTTP requests
type ImportHandler struct {
	importService services.ImportService
	logger        *slog.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// ImportDoc scrapes a URL and creates a document from it
// POST /api/v1/docs/import
func (h *ImportHandler) ImportDoc(w http.ResponseWriter, r *http.Request) {
	var req services.ImportDocRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	if err := validateImportRequest(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	doc, err := h.importService.ImportDoc(r.Context(), &req)
	if err != nil {
		h.logger.Error("import failed", "name", req.Name, "url", req.URL, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

func validateImportRequest(req *services.ImportDocRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.URL, validation.Required, validation.By(validAbsoluteURL)),
	)
}

func validAbsoluteURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return validation.NewError("validation_is_url", "must be a valid absolute URL")
	}
	return nil
}
