package main

import (
	"fmt"
	"os"
	"path/filepath"

	"docstore/internal/domain/models"
	"docstore/internal/domain/services"
	"docstore/internal/frontmatter"
)

// Run executes the push command. A file without an id in its frontmatter
// creates a new document; a file with an id appends a version. Either way
// the server's assigned metadata is written back into the file.
func (c *PushCmd) Run(deps *Dependencies) error {
	path := c.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(deps.Config.DocsDir, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	parsed, err := frontmatter.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if parsed.Meta.ID == "" {
		return c.create(deps, path, parsed)
	}
	return c.update(deps, path, parsed)
}

func (c *PushCmd) create(deps *Dependencies, path string, parsed *frontmatter.Doc) error {
	if parsed.Meta.Title == "" || parsed.Meta.Summary == "" {
		return fmt.Errorf("title and summary are required for new docs")
	}

	req := &services.CreateDocRequest{
		Title:   parsed.Meta.Title,
		Summary: parsed.Meta.Summary,
		Content: parsed.Content,
	}
	if parsed.Meta.Slug != "" {
		req.Slug = &parsed.Meta.Slug
	}
	if parsed.Meta.Project != "" {
		req.Project = &parsed.Meta.Project
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "[dry-run] Would create doc from %s (title=%q)\n", path, req.Title)
		return nil
	}

	created, err := deps.Client.CreateDoc(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if err := writeBack(path, created); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Pushed doc: id=%s, slug=%s, version=%d\n", created.ID, created.Slug, created.Version)
	return nil
}

func (c *PushCmd) update(deps *Dependencies, path string, parsed *frontmatter.Doc) error {
	req := &services.UpdateDocRequest{
		Content: &parsed.Content,
	}
	if parsed.Meta.Title != "" {
		req.Title = &parsed.Meta.Title
	}
	if parsed.Meta.Summary != "" {
		req.Summary = &parsed.Meta.Summary
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "[dry-run] Would update doc %s from %s\n", parsed.Meta.ID, path)
		return nil
	}

	updated, err := deps.Client.UpdateDoc(deps.Ctx, parsed.Meta.ID, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if err := writeBack(path, updated); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Pushed doc: id=%s, slug=%s, version=%d\n", updated.ID, updated.Slug, updated.Version)
	return nil
}

// writeBack rewrites the pushed file with the server-assigned frontmatter
// so the next push is an update, not a duplicate create.
func writeBack(path string, doc *models.DocContent) error {
	text, err := frontmatter.Render(docToFile(doc))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
