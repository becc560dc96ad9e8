package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docstore/internal/domain"
	"docstore/internal/domain/models"
	"docstore/internal/domain/repositories"
	"docstore/internal/domain/services"
)

// documentService implements the DocumentService interface
type documentService struct {
	repo      repositories.DocumentRepository
	txManager repositories.TransactionManager
	slugs     *SlugAllocator
	logger    *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	repo repositories.DocumentRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.DocumentService {
	return &documentService{
		repo:      repo,
		txManager: txManager,
		slugs:     NewSlugAllocator(repo),
		logger:    logger,
	}
}

// CreateDoc creates a document together with its version-1 snapshot.
// The registry insert, version insert, and current-pointer update run in
// one transaction so a document with zero versions is never durably
// visible.
func (s *documentService) CreateDoc(ctx context.Context, req *services.CreateDocRequest) (*models.DocContent, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	slug, err := s.slugs.Allocate(ctx, req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &models.Document{
		ID:        uuid.NewString(),
		Slug:      slug,
		Title:     req.Title,
		Summary:   req.Summary,
		Project:   req.Project,
		CreatedAt: now,
		UpdatedAt: now,
	}
	version := &models.Version{
		ID:        uuid.NewString(),
		DocID:     doc.ID,
		Version:   1,
		Title:     req.Title,
		Summary:   req.Summary,
		Content:   req.Content,
		CreatedAt: now,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.CreateDoc(txCtx, doc); err != nil {
			return err
		}
		if err := s.repo.InsertVersion(txCtx, version); err != nil {
			return err
		}
		return s.repo.SetCurrentVersion(txCtx, doc, version)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("doc created",
		"id", doc.ID,
		"slug", doc.Slug,
		"version", version.Version,
	)

	return composeDoc(doc, version), nil
}

// UpdateDoc appends a new version and atomically repoints the document at
// it. Fields absent from the request keep the current version's value; the
// previous version row is never touched.
func (s *documentService) UpdateDoc(ctx context.Context, id string, req *services.UpdateDocRequest) (*models.DocContent, error) {
	if err := validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	doc, current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := &models.Version{
		ID:        uuid.NewString(),
		DocID:     doc.ID,
		Version:   current.Version + 1,
		Title:     current.Title,
		Summary:   current.Summary,
		Content:   current.Content,
		CreatedAt: time.Now().UTC(),
	}
	if req.Title != nil {
		next.Title = *req.Title
	}
	if req.Summary != nil {
		next.Summary = *req.Summary
	}
	if req.Content != nil {
		next.Content = *req.Content
	}

	doc.UpdatedAt = next.CreatedAt

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.InsertVersion(txCtx, next); err != nil {
			return err
		}
		return s.repo.SetCurrentVersion(txCtx, doc, next)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("doc updated",
		"id", doc.ID,
		"slug", doc.Slug,
		"version", next.Version,
	)

	return composeDoc(doc, next), nil
}

// GetDocByID retrieves a document with its current version content.
func (s *documentService) GetDocByID(ctx context.Context, id string) (*models.DocContent, error) {
	doc, version, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return composeDoc(doc, version), nil
}

// GetDocBySlug retrieves a document with its current version content.
func (s *documentService) GetDocBySlug(ctx context.Context, slug string) (*models.DocContent, error) {
	doc, version, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return composeDoc(doc, version), nil
}

// ListDocs returns the frontmatter projection of all documents, most
// recently updated first.
func (s *documentService) ListDocs(ctx context.Context) ([]models.Frontmatter, error) {
	return s.repo.List(ctx)
}

func composeDoc(doc *models.Document, v *models.Version) *models.DocContent {
	return &models.DocContent{
		ID:        doc.ID,
		Slug:      doc.Slug,
		Version:   v.Version,
		UpdatedAt: doc.UpdatedAt,
		Frontmatter: models.DocHeader{
			Title:   v.Title,
			Summary: v.Summary,
			Project: doc.Project,
		},
		Content: v.Content,
	}
}

// validateCreateRequest validates a document creation request
func validateCreateRequest(req *services.CreateDocRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Summary, validation.Required),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.Slug, validation.NilOrNotEmpty),
	)
}

// validateUpdateRequest validates a document update request. Absent fields
// mean "keep previous"; a field that is present must not be empty.
func validateUpdateRequest(req *services.UpdateDocRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.NilOrNotEmpty),
		validation.Field(&req.Summary, validation.NilOrNotEmpty),
		validation.Field(&req.Content, validation.NilOrNotEmpty),
	)
}
