package main

import (
	"time"

	"docstore/internal/domain/models"
	"docstore/internal/frontmatter"
)

// docToFile converts a server document into its on-disk form.
func docToFile(doc *models.DocContent) *frontmatter.Doc {
	meta := frontmatter.Meta{
		ID:        doc.ID,
		Slug:      doc.Slug,
		Title:     doc.Frontmatter.Title,
		Summary:   doc.Frontmatter.Summary,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if doc.Frontmatter.Project != nil {
		meta.Project = *doc.Frontmatter.Project
	}
	return &frontmatter.Doc{Meta: meta, Content: doc.Content}
}
