package mock

import (
	"context"

	"docstore/internal/domain/models"
	"docstore/internal/domain/services"
)

var _ services.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of services.DocumentService.
type DocumentService struct {
	CreateDocFn    func(ctx context.Context, req *services.CreateDocRequest) (*models.DocContent, error)
	UpdateDocFn    func(ctx context.Context, id string, req *services.UpdateDocRequest) (*models.DocContent, error)
	GetDocByIDFn   func(ctx context.Context, id string) (*models.DocContent, error)
	GetDocBySlugFn func(ctx context.Context, slug string) (*models.DocContent, error)
	ListDocsFn     func(ctx context.Context) ([]models.Frontmatter, error)
}

func (s *DocumentService) CreateDoc(ctx context.Context, req *services.CreateDocRequest) (*models.DocContent, error) {
	return s.CreateDocFn(ctx, req)
}

func (s *DocumentService) UpdateDoc(ctx context.Context, id string, req *services.UpdateDocRequest) (*models.DocContent, error) {
	return s.UpdateDocFn(ctx, id, req)
}

func (s *DocumentService) GetDocByID(ctx context.Context, id string) (*models.DocContent, error) {
	return s.GetDocByIDFn(ctx, id)
}

func (s *DocumentService) GetDocBySlug(ctx context.Context, slug string) (*models.DocContent, error) {
	return s.GetDocBySlugFn(ctx, slug)
}

func (s *DocumentService) ListDocs(ctx context.Context) ([]models.Frontmatter, error) {
	return s.ListDocsFn(ctx)
}
