package repositories

import (
	"context"

	"docstore/internal/domain/models"
)

// DocumentRepository is the data access contract for the document registry
// and its append-only version ledger. All methods participate in a
// transaction when one is present in the context.
type DocumentRepository interface {
	// CreateDoc inserts a registry row. A slug collision surfaces as
	// domain.ErrConflict (the unique constraint is the backstop for the
	// read-then-write slug check).
	CreateDoc(ctx context.Context, doc *models.Document) error

	// InsertVersion appends an immutable version row. A (doc_id, version)
	// collision surfaces as domain.ErrConflict.
	InsertVersion(ctx context.Context, v *models.Version) error

	// SetCurrentVersion repoints the registry row at the given version and
	// syncs the denormalized title/summary and updated_at stamp.
	SetCurrentVersion(ctx context.Context, doc *models.Document, v *models.Version) error

	// GetByID loads a document joined with its current version. Missing
	// documents and documents with an unresolvable current version both
	// surface as domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Document, *models.Version, error)

	// GetBySlug is GetByID keyed by slug.
	GetBySlug(ctx context.Context, slug string) (*models.Document, *models.Version, error)

	// List returns the frontmatter projection of every document that
	// resolves to a current version, most recently updated first.
	List(ctx context.Context) ([]models.Frontmatter, error)

	// SlugExists reports whether any document already owns the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
}
