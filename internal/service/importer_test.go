package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstore/internal/domain"
	"docstore/internal/domain/models"
	"docstore/internal/domain/services"
	"docstore/internal/mock"
)

func newTestImportService(
	fetcher services.PageFetcher,
	extractor services.DocExtractor,
	docs services.DocumentService,
) services.ImportService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewImportService(fetcher, extractor, docs, logger)
}

func okFetcher(html string) *mock.PageFetcher {
	return &mock.PageFetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return html, nil
		},
	}
}

func TestImportService_ImportDoc(t *testing.T) {
	t.Parallel()

	t.Run("creates a doc with slug derived from the name", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.DocExtractor{
			ExtractFn: func(_ context.Context, in services.ExtractInput) (*services.ExtractedDoc, error) {
				assert.Equal(t, "<html>page</html>", in.HTML)
				assert.Equal(t, "https://example.com/docs", in.URL)
				return &services.ExtractedDoc{
					Title:   "Extracted Title",
					Summary: "Extracted summary",
					Content: "# Extracted content",
				}, nil
			},
		}

		var captured *services.CreateDocRequest
		docs := &mock.DocumentService{
			CreateDocFn: func(_ context.Context, req *services.CreateDocRequest) (*models.DocContent, error) {
				captured = req
				return &models.DocContent{ID: "id-1", Slug: *req.Slug, Version: 1, Content: req.Content}, nil
			},
		}

		svc := newTestImportService(okFetcher("<html>page</html>"), extractor, docs)

		doc, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "React Docs",
			URL:  "https://example.com/docs",
		})
		require.NoError(t, err)

		assert.Equal(t, "react-docs", doc.Slug)
		require.NotNil(t, captured)
		require.NotNil(t, captured.Slug)
		assert.Equal(t, "react-docs", *captured.Slug)
		assert.Equal(t, "Extracted Title", captured.Title)
		assert.Equal(t, "Extracted summary", captured.Summary)
		assert.Equal(t, "# Extracted content", captured.Content)
	})

	t.Run("falls back to the name for a missing title", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.DocExtractor{
			ExtractFn: func(_ context.Context, _ services.ExtractInput) (*services.ExtractedDoc, error) {
				return &services.ExtractedDoc{Content: "content"}, nil
			},
		}
		var captured *services.CreateDocRequest
		docs := &mock.DocumentService{
			CreateDocFn: func(_ context.Context, req *services.CreateDocRequest) (*models.DocContent, error) {
				captured = req
				return &models.DocContent{ID: "id-1"}, nil
			},
		}

		svc := newTestImportService(okFetcher("<html/>"), extractor, docs)

		_, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "My Page",
			URL:  "https://example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "My Page", captured.Title)
	})

	t.Run("falls back to truncated content for a missing summary", func(t *testing.T) {
		t.Parallel()

		longContent := strings.Repeat("x", 500)
		extractor := &mock.DocExtractor{
			ExtractFn: func(_ context.Context, _ services.ExtractInput) (*services.ExtractedDoc, error) {
				return &services.ExtractedDoc{Title: "t", Content: longContent}, nil
			},
		}
		var captured *services.CreateDocRequest
		docs := &mock.DocumentService{
			CreateDocFn: func(_ context.Context, req *services.CreateDocRequest) (*models.DocContent, error) {
				captured = req
				return &models.DocContent{ID: "id-1"}, nil
			},
		}

		svc := newTestImportService(okFetcher("<html/>"), extractor, docs)

		_, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "My Page",
			URL:  "https://example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("x", 200), captured.Summary)
	})

	t.Run("summary fallback truncates on runes, not bytes", func(t *testing.T) {
		t.Parallel()

		// 199 ASCII characters followed by multibyte runes: a byte-based
		// cut at 200 would split the first rune in half.
		multibyteContent := strings.Repeat("a", 199) + "日本語"
		extractor := &mock.DocExtractor{
			ExtractFn: func(_ context.Context, _ services.ExtractInput) (*services.ExtractedDoc, error) {
				return &services.ExtractedDoc{Title: "t", Content: multibyteContent}, nil
			},
		}
		var captured *services.CreateDocRequest
		docs := &mock.DocumentService{
			CreateDocFn: func(_ context.Context, req *services.CreateDocRequest) (*models.DocContent, error) {
				captured = req
				return &models.DocContent{ID: "id-1"}, nil
			},
		}

		svc := newTestImportService(okFetcher("<html/>"), extractor, docs)

		_, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "My Page",
			URL:  "https://example.com",
		})
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(captured.Summary))
		assert.Equal(t, 200, utf8.RuneCountInString(captured.Summary))
		assert.Equal(t, strings.Repeat("a", 199)+"日", captured.Summary)
	})

	t.Run("empty extracted content fails the import", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.DocExtractor{
			ExtractFn: func(_ context.Context, _ services.ExtractInput) (*services.ExtractedDoc, error) {
				return &services.ExtractedDoc{Title: "t", Summary: "s", Content: "   \n  "}, nil
			},
		}
		docs := &mock.DocumentService{
			CreateDocFn: func(_ context.Context, _ *services.CreateDocRequest) (*models.DocContent, error) {
				t.Fatal("CreateDoc must not be called")
				return nil, nil
			},
		}

		svc := newTestImportService(okFetcher("<html/>"), extractor, docs)

		_, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "My Page",
			URL:  "https://example.com",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrImportFailed))
	})

	t.Run("fetch failure surfaces as import failure, nothing created", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.PageFetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		docs := &mock.DocumentService{
			CreateDocFn: func(_ context.Context, _ *services.CreateDocRequest) (*models.DocContent, error) {
				t.Fatal("CreateDoc must not be called")
				return nil, nil
			},
		}

		svc := newTestImportService(fetcher, &mock.DocExtractor{}, docs)

		_, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "My Page",
			URL:  "https://example.com",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrImportFailed))
	})

	t.Run("extractor failure surfaces as import failure", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.DocExtractor{
			ExtractFn: func(_ context.Context, _ services.ExtractInput) (*services.ExtractedDoc, error) {
				return nil, errors.New("model unavailable")
			},
		}

		svc := newTestImportService(okFetcher("<html/>"), extractor, &mock.DocumentService{})

		_, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "My Page",
			URL:  "https://example.com",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrImportFailed))
	})

	t.Run("create conflict surfaces as import failure", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.DocExtractor{
			ExtractFn: func(_ context.Context, _ services.ExtractInput) (*services.ExtractedDoc, error) {
				return &services.ExtractedDoc{Title: "t", Summary: "s", Content: "c"}, nil
			},
		}
		docs := &mock.DocumentService{
			CreateDocFn: func(_ context.Context, _ *services.CreateDocRequest) (*models.DocContent, error) {
				return nil, domain.ErrConflict
			},
		}

		svc := newTestImportService(okFetcher("<html/>"), extractor, docs)

		_, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "My Page",
			URL:  "https://example.com",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrImportFailed))
		assert.False(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("symbol-only name sends no explicit slug", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.DocExtractor{
			ExtractFn: func(_ context.Context, _ services.ExtractInput) (*services.ExtractedDoc, error) {
				return &services.ExtractedDoc{Title: "t", Summary: "s", Content: "c"}, nil
			},
		}
		var captured *services.CreateDocRequest
		docs := &mock.DocumentService{
			CreateDocFn: func(_ context.Context, req *services.CreateDocRequest) (*models.DocContent, error) {
				captured = req
				return &models.DocContent{ID: "id-1"}, nil
			},
		}

		svc := newTestImportService(okFetcher("<html/>"), extractor, docs)

		_, err := svc.ImportDoc(context.Background(), &services.ImportDocRequest{
			Name: "!!!",
			URL:  "https://example.com",
		})
		require.NoError(t, err)
		assert.Nil(t, captured.Slug)
	})
}
