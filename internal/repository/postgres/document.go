package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"docstore/internal/domain"
	"docstore/internal/domain/models"
	"docstore/internal/domain/repositories"
)

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// CreateDoc inserts a registry row with no current-version pointer yet.
func (r *PostgresDocumentRepository) CreateDoc(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, slug, current_version_id, title, summary, project, created_at, updated_at)
		VALUES ($1, $2, NULL, $3, $4, $5, $6, $7)
	`, r.tables.Docs)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		doc.ID,
		doc.Slug,
		doc.Title,
		doc.Summary,
		doc.Project,
		doc.CreatedAt,
		doc.UpdatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			// Unique constraint backstop for the read-then-write slug check.
			return fmt.Errorf("slug %q: %w", doc.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("create doc: %w", err)
	}

	return nil
}

// InsertVersion appends an immutable version row.
func (r *PostgresDocumentRepository) InsertVersion(ctx context.Context, v *models.Version) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc_id, version, title, summary, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.DocVersions)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		v.ID,
		v.DocID,
		v.Version,
		v.Title,
		v.Summary,
		v.Content,
		v.CreatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("version %d of doc %s: %w", v.Version, v.DocID, domain.ErrConflict)
		}
		return fmt.Errorf("insert version: %w", err)
	}

	return nil
}

// SetCurrentVersion repoints the registry row at the given version and syncs
// the denormalized title/summary. Must run in the same transaction as the
// version insert so readers never see the two out of step.
func (r *PostgresDocumentRepository) SetCurrentVersion(ctx context.Context, doc *models.Document, v *models.Version) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET current_version_id = $1, title = $2, summary = $3, updated_at = $4
		WHERE id = $5
	`, r.tables.Docs)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		v.ID,
		v.Title,
		v.Summary,
		doc.UpdatedAt,
		doc.ID,
	)
	if err != nil {
		return fmt.Errorf("set current version: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("doc %s: %w", doc.ID, domain.ErrNotFound)
	}

	doc.CurrentVersionID = &v.ID
	doc.Title = v.Title
	doc.Summary = v.Summary
	return nil
}

// GetByID retrieves a document joined with its current version.
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, *models.Version, error) {
	// The id column is uuid-typed; a malformed id can never match a row, so
	// short-circuit before postgres rejects the cast.
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, fmt.Errorf("doc %s: %w", id, domain.ErrNotFound)
	}
	return r.getOne(ctx, "d.id = $1", id)
}

// GetBySlug retrieves a document joined with its current version.
func (r *PostgresDocumentRepository) GetBySlug(ctx context.Context, slug string) (*models.Document, *models.Version, error) {
	return r.getOne(ctx, "d.slug = $1", slug)
}

func (r *PostgresDocumentRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.Document, *models.Version, error) {
	query := fmt.Sprintf(`
		SELECT d.id, d.slug, d.current_version_id, d.title, d.summary, d.project, d.created_at, d.updated_at,
		       v.id, v.doc_id, v.version, v.title, v.summary, v.content, v.created_at
		FROM %s d
		LEFT JOIN %s v ON v.id = d.current_version_id
		WHERE %s
	`, r.tables.Docs, r.tables.DocVersions, where)

	var doc models.Document
	var (
		vID        *string
		vDocID     *string
		vVersion   *int
		vTitle     *string
		vSummary   *string
		vContent   *string
		vCreatedAt *time.Time
	)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, arg).Scan(
		&doc.ID,
		&doc.Slug,
		&doc.CurrentVersionID,
		&doc.Title,
		&doc.Summary,
		&doc.Project,
		&doc.CreatedAt,
		&doc.UpdatedAt,
		&vID,
		&vDocID,
		&vVersion,
		&vTitle,
		&vSummary,
		&vContent,
		&vCreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil, fmt.Errorf("doc %v: %w", arg, domain.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("get doc: %w", err)
	}

	// Unreachable given the create invariant, but a registry row with a
	// dangling current-version pointer must read as not found.
	if vID == nil {
		return nil, nil, fmt.Errorf("doc %v has no current version: %w", arg, domain.ErrNotFound)
	}

	version := models.Version{
		ID:        *vID,
		DocID:     *vDocID,
		Version:   *vVersion,
		Title:     *vTitle,
		Summary:   *vSummary,
		Content:   *vContent,
		CreatedAt: *vCreatedAt,
	}

	return &doc, &version, nil
}

// List returns the frontmatter projection of all documents, most recently
// updated first. Documents without a resolvable current version are
// excluded by the inner join.
func (r *PostgresDocumentRepository) List(ctx context.Context) ([]models.Frontmatter, error) {
	query := fmt.Sprintf(`
		SELECT d.id, d.slug, d.title, d.summary, d.project, v.version, d.updated_at
		FROM %s d
		INNER JOIN %s v ON v.id = d.current_version_id
		ORDER BY d.updated_at DESC
	`, r.tables.Docs, r.tables.DocVersions)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list docs: %w", err)
	}
	defer rows.Close()

	var docs []models.Frontmatter
	for rows.Next() {
		var fm models.Frontmatter
		err := rows.Scan(
			&fm.ID,
			&fm.Slug,
			&fm.Title,
			&fm.Summary,
			&fm.Project,
			&fm.Version,
			&fm.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan doc: %w", err)
		}
		docs = append(docs, fm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate docs: %w", err)
	}

	return docs, nil
}

// SlugExists reports whether any document already owns the slug.
func (r *PostgresDocumentRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE slug = $1)`, r.tables.Docs)

	var exists bool
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}

	return exists, nil
}
