package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"docstore/internal/domain"
	"docstore/internal/domain/models"
	"docstore/internal/domain/services"
)

// summaryFallbackLen is how much of the content stands in for a missing
// summary.
const summaryFallbackLen = 200

// importService implements the ImportService interface
type importService struct {
	fetcher   services.PageFetcher
	extractor services.DocExtractor
	docs      services.DocumentService
	logger    *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(
	fetcher services.PageFetcher,
	extractor services.DocExtractor,
	docs services.DocumentService,
	logger *slog.Logger,
) services.ImportService {
	return &importService{
		fetcher:   fetcher,
		extractor: extractor,
		docs:      docs,
		logger:    logger,
	}
}

// ImportDoc fetches the page, asks the model to distill it, and creates the
// result through the ordinary create path with a slug derived from the
// name. Every failure along the way, including the create itself, surfaces
// as ErrImportFailed so the caller never sees a partially created document.
func (s *importService) ImportDoc(ctx context.Context, req *services.ImportDocRequest) (*models.DocContent, error) {
	s.logger.Info("import starting", "name", req.Name, "url", req.URL)

	html, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", domain.ErrImportFailed, req.URL, err)
	}

	extracted, err := s.extractor.Extract(ctx, services.ExtractInput{
		HTML: html,
		URL:  req.URL,
		Name: req.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: extract: %v", domain.ErrImportFailed, err)
	}

	content := strings.TrimSpace(extracted.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: model did not return any content", domain.ErrImportFailed)
	}

	title := strings.TrimSpace(extracted.Title)
	if title == "" {
		title = req.Name
	}
	summary := strings.TrimSpace(extracted.Summary)
	if summary == "" {
		summary = truncate(content, summaryFallbackLen)
	}

	var slug *string
	if derived := Slugify(req.Name); derived != "" {
		slug = &derived
	}
	created, err := s.docs.CreateDoc(ctx, &services.CreateDocRequest{
		Slug:    slug,
		Title:   title,
		Summary: summary,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create doc: %v", domain.ErrImportFailed, err)
	}

	s.logger.Info("import complete",
		"id", created.ID,
		"slug", created.Slug,
		"content_length", len(content),
	)

	return created, nil
}

// truncate shortens s to at most n runes. Counting runes rather than bytes
// keeps multibyte content from being split mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
