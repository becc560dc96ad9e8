package services

import (
	"context"

	"docstore/internal/domain/models"
)

// ImportDocRequest asks to turn a web page into a document.
type ImportDocRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ExtractInput is what the extractor gets to work with.
type ExtractInput struct {
	HTML string
	URL  string
	Name string
}

// ExtractedDoc is the model's distillation of a page. Title and Summary may
// be empty; the import service applies fallbacks. Empty Content makes the
// import fail.
type ExtractedDoc struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// PageFetcher retrieves the raw HTML for a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// DocExtractor distills fetched HTML into a draft document.
type DocExtractor interface {
	Extract(ctx context.Context, in ExtractInput) (*ExtractedDoc, error)
}

// ImportService runs the import pipeline and creates the resulting document
// through the ordinary create path. Any failure along the way surfaces as
// domain.ErrImportFailed; a document is never partially created.
type ImportService interface {
	ImportDoc(ctx context.Context, req *ImportDocRequest) (*models.DocContent, error)
}
