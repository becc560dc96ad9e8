// Package client is a typed HTTP client for the document service API,
// used by the docsctl CLI. Error responses are translated back into the
// domain sentinel errors so callers can branch with errors.Is.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"docstore/internal/domain"
	"docstore/internal/domain/models"
	"docstore/internal/domain/services"
	"docstore/internal/httputil"
)

// DefaultTimeout bounds each API call. Import calls an LLM server-side, so
// this is generous.
const DefaultTimeout = 120 * time.Second

// Client talks to a document service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListDocsResponse mirrors the list endpoint's wrapper object.
type ListDocsResponse struct {
	Docs []models.Frontmatter `json:"docs"`
}

// ListDocs returns frontmatter for every document.
func (c *Client) ListDocs(ctx context.Context) ([]models.Frontmatter, error) {
	var out ListDocsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/docs", nil, &out); err != nil {
		return nil, err
	}
	return out.Docs, nil
}

// GetDocByID fetches a document with its current content.
func (c *Client) GetDocByID(ctx context.Context, id string) (*models.DocContent, error) {
	var out models.DocContent
	if err := c.do(ctx, http.MethodGet, "/api/v1/docs/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocBySlug fetches a document by its slug.
func (c *Client) GetDocBySlug(ctx context.Context, slug string) (*models.DocContent, error) {
	var out models.DocContent
	if err := c.do(ctx, http.MethodGet, "/api/v1/docs/by-slug/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDoc creates a new document.
func (c *Client) CreateDoc(ctx context.Context, req *services.CreateDocRequest) (*models.DocContent, error) {
	var out models.DocContent
	if err := c.do(ctx, http.MethodPost, "/api/v1/docs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDoc appends a new version to an existing document.
func (c *Client) UpdateDoc(ctx context.Context, id string, req *services.UpdateDocRequest) (*models.DocContent, error) {
	var out models.DocContent
	if err := c.do(ctx, http.MethodPut, "/api/v1/docs/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportDoc asks the server to import a web page as a document.
func (c *Client) ImportDoc(ctx context.Context, req *services.ImportDocRequest) (*models.DocContent, error) {
	var out models.DocContent
	if err := c.do(ctx, http.MethodPost, "/api/v1/docs/import", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns an {error, message} body back into a sentinel-wrapped
// error. Unknown kinds keep the raw message.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var apiErr httputil.APIError
	if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Error == "" {
		return fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}

	switch apiErr.Error {
	case "validation_error":
		return fmt.Errorf("%w: %s", domain.ErrValidation, apiErr.Message)
	case "not_found":
		return fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.Message)
	case "conflict":
		return fmt.Errorf("%w: %s", domain.ErrConflict, apiErr.Message)
	case "import_failed":
		return fmt.Errorf("%w: %s", domain.ErrImportFailed, apiErr.Message)
	default:
		return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Message)
	}
}
