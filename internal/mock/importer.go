package mock

import (
	"context"

	"docstore/internal/domain/models"
	"docstore/internal/domain/services"
)

var _ services.ImportService = (*ImportService)(nil)

// ImportService is a mock implementation of services.ImportService.
type ImportService struct {
	ImportDocFn func(ctx context.Context, req *services.ImportDocRequest) (*models.DocContent, error)
}

func (s *ImportService) ImportDoc(ctx context.Context, req *services.ImportDocRequest) (*models.DocContent, error) {
	return s.ImportDocFn(ctx, req)
}

var _ services.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of services.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ services.DocExtractor = (*DocExtractor)(nil)

// DocExtractor is a mock implementation of services.DocExtractor.
type DocExtractor struct {
	ExtractFn func(ctx context.Context, in services.ExtractInput) (*services.ExtractedDoc, error)
}

func (e *DocExtractor) Extract(ctx context.Context, in services.ExtractInput) (*services.ExtractedDoc, error) {
	return e.ExtractFn(ctx, in)
}
