package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstore/internal/client"
	"docstore/internal/domain"
	"docstore/internal/domain/services"
)

func TestClient_ListDocs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/docs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"docs":[{"id":"id-1","slug":"a","title":"A","summary":"s","project":null,"version":1,"updatedAt":"2026-01-02T03:04:05Z"}]}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	docs, err := c.ListDocs(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].Slug)
	assert.Equal(t, 1, docs[0].Version)
}

func TestClient_CreateDoc(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/docs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req services.CreateDocRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Guide", req.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"id-1","slug":"guide","version":1,"updatedAt":"2026-01-02T03:04:05Z","frontmatter":{"title":"Guide","summary":"s","project":null},"content":"c"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	doc, err := c.CreateDoc(context.Background(), &services.CreateDocRequest{
		Title:   "Guide",
		Summary: "s",
		Content: "c",
	})
	require.NoError(t, err)
	assert.Equal(t, "guide", doc.Slug)
	assert.Equal(t, 1, doc.Version)
}

func TestClient_ErrorTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{
			name:     "not_found",
			status:   http.StatusNotFound,
			body:     `{"error":"not_found","message":"Doc not found"}`,
			sentinel: domain.ErrNotFound,
		},
		{
			name:     "conflict",
			status:   http.StatusConflict,
			body:     `{"error":"conflict","message":"Slug already exists"}`,
			sentinel: domain.ErrConflict,
		},
		{
			name:     "validation_error",
			status:   http.StatusBadRequest,
			body:     `{"error":"validation_error","message":"title: cannot be blank"}`,
			sentinel: domain.ErrValidation,
		},
		{
			name:     "import_failed",
			status:   http.StatusInternalServerError,
			body:     `{"error":"import_failed","message":"fetch failed"}`,
			sentinel: domain.ErrImportFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := client.New(srv.URL)
			_, err := c.GetDocByID(context.Background(), "some-id")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}

	t.Run("non-JSON error keeps the raw body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}))
		defer srv.Close()

		c := client.New(srv.URL)
		_, err := c.GetDocByID(context.Background(), "some-id")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream down")
	})
}

func TestClient_PathEscaping(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"id-1","slug":"a b","version":1,"updatedAt":"2026-01-02T03:04:05Z","frontmatter":{"title":"t","summary":"s","project":null},"content":"c"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.GetDocBySlug(context.Background(), "a b")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/docs/by-slug/a%20b", gotPath)
}
