package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"docstore/internal/domain/services"
	"docstore/internal/frontmatter"
)

// Run executes the edit command: pull the document into a temp file, open
// it in the editor, and push a new version only if something changed.
func (c *EditCmd) Run(deps *Dependencies) error {
	doc, err := deps.Client.GetDocByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	text, err := frontmatter.Render(docToFile(doc))
	if err != nil {
		return err
	}

	// Re-parse the rendered form so the unchanged comparison is against
	// exactly what the editor was handed.
	baseline, err := frontmatter.Parse(text)
	if err != nil {
		return err
	}

	editDir, err := os.MkdirTemp("", "docsctl-edit-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(editDir)

	editPath := filepath.Join(editDir, doc.Slug+".md")
	if err := os.WriteFile(editPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", editPath, err)
	}

	if err := c.edit(deps, editPath); err != nil {
		return err
	}

	edited, err := os.ReadFile(editPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", editPath, err)
	}

	parsed, err := frontmatter.Parse(string(edited))
	if err != nil {
		return fmt.Errorf("parse edited file: %w", err)
	}

	if parsed.Meta == baseline.Meta && parsed.Content == baseline.Content {
		fmt.Fprintln(deps.Stdout, "No changes detected; skipping update.")
		return nil
	}

	req := &services.UpdateDocRequest{Content: &parsed.Content}
	if parsed.Meta.Title != "" {
		req.Title = &parsed.Meta.Title
	}
	if parsed.Meta.Summary != "" {
		req.Summary = &parsed.Meta.Summary
	}

	updated, err := deps.Client.UpdateDoc(deps.Ctx, c.ID, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated doc: id=%s, slug=%s, version=%d\n", c.ID, updated.Slug, updated.Version)
	return nil
}

func (c *EditCmd) edit(deps *Dependencies, path string) error {
	if deps.EditFile != nil {
		return deps.EditFile(path)
	}

	editor := c.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command("sh", "-c", editor+" "+path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", editor, err)
	}
	return nil
}
