package models

import (
	"time"
)

// Document is the registry row for a logical document. It always points at
// exactly one current Version; CurrentVersionID is nil only inside the
// create transaction, never visible to readers. Title and Summary are
// denormalized copies of the current version, kept in sync transactionally
// so listing never joins content.
type Document struct {
	ID               string
	Slug             string
	CurrentVersionID *string
	Title            string
	Summary          string
	Project          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Version is an immutable snapshot in a document's linear edit history.
// Version numbers start at 1 and increase without gaps; rows are never
// mutated or deleted after insertion.
type Version struct {
	ID        string
	DocID     string
	Version   int
	Title     string
	Summary   string
	Content   string
	CreatedAt time.Time
}

// Frontmatter is the lightweight listing projection of a document.
// Content is deliberately excluded to keep list payloads small.
type Frontmatter struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Project   *string   `json:"project"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DocHeader carries the frontmatter block of a full document response.
type DocHeader struct {
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Project *string `json:"project"`
}

// DocContent is the composed read model returned by every document
// operation: the registry row joined with its current version.
type DocContent struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Version     int       `json:"version"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Frontmatter DocHeader `json:"frontmatter"`
	Content     string    `json:"content"`
}
