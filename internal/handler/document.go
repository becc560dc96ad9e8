package handler

import (
	"log/slog"
	"net/http"

	"docstore/internal/domain/models"
	"docstore/internal/domain/services"
	"docstore/internal/httputil"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	docService services.DocumentService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService services.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// ListDocsResponse wraps the frontmatter list.
type ListDocsResponse struct {
	Docs []models.Frontmatter `json:"docs"`
}

// HealthCheck is a simple health check endpoint
// GET /api/v1/health
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListDocs lists frontmatter for all documents
// GET /api/v1/docs
func (h *DocumentHandler) ListDocs(w http.ResponseWriter, r *http.Request) {
	docs, err := h.docService.ListDocs(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	if docs == nil {
		docs = []models.Frontmatter{}
	}

	httputil.RespondJSON(w, http.StatusOK, ListDocsResponse{Docs: docs})
}

// GetDoc retrieves a document by ID
// GET /api/v1/docs/{id}
func (h *DocumentHandler) GetDoc(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "Doc ID is required")
		return
	}

	doc, err := h.docService.GetDocByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// GetDocBySlug retrieves a document by slug
// GET /api/v1/docs/by-slug/{slug}
func (h *DocumentHandler) GetDocBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "Slug is required")
		return
	}

	doc, err := h.docService.GetDocBySlug(r.Context(), slug)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// CreateDoc creates a new document
// POST /api/v1/docs
func (h *DocumentHandler) CreateDoc(w http.ResponseWriter, r *http.Request) {
	var req services.CreateDocRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	doc, err := h.docService.CreateDoc(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// UpdateDoc appends a new version to an existing document
// PUT /api/v1/docs/{id}
func (h *DocumentHandler) UpdateDoc(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "Doc ID is required")
		return
	}

	var req services.UpdateDocRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	// Partial update needs at least one field; the service treats absent
	// fields as "keep previous".
	if req.Title == nil && req.Summary == nil && req.Content == nil {
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", "At least one field must be provided")
		return
	}

	doc, err := h.docService.UpdateDoc(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
