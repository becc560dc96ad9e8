package services

import (
	"context"

	"docstore/internal/domain/models"
)

// CreateDocRequest is the input for document creation. Slug is optional:
// when present it must be free (collision is a Conflict), when absent the
// slug is derived from the title with numeric suffixing.
type CreateDocRequest struct {
	Slug    *string `json:"slug,omitempty"`
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Content string  `json:"content"`
	Project *string `json:"project,omitempty"`
}

// UpdateDocRequest carries partial update fields. Absent means "keep the
// current version's value", never "clear". The API layer enforces that at
// least one field is present.
type UpdateDocRequest struct {
	Title   *string `json:"title,omitempty"`
	Summary *string `json:"summary,omitempty"`
	Content *string `json:"content,omitempty"`
}

// DocumentService is the versioning core: every mutation appends an
// immutable version and atomically repoints the document's current-version
// pointer.
type DocumentService interface {
	CreateDoc(ctx context.Context, req *CreateDocRequest) (*models.DocContent, error)
	UpdateDoc(ctx context.Context, id string, req *UpdateDocRequest) (*models.DocContent, error)
	GetDocByID(ctx context.Context, id string) (*models.DocContent, error)
	GetDocBySlug(ctx context.Context, slug string) (*models.DocContent, error)
	ListDocs(ctx context.Context) ([]models.Frontmatter, error)
}
