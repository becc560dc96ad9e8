package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"docstore/internal/frontmatter"
)

type syncedDoc struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Path string `json:"path"`
}

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	docs, err := deps.Client.ListDocs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if err := os.MkdirAll(deps.Config.DocsDir, 0o755); err != nil {
		return fmt.Errorf("create docs dir %s: %w", deps.Config.DocsDir, err)
	}

	results := make([]syncedDoc, 0, len(docs))
	for _, fm := range docs {
		doc, err := deps.Client.GetDocByID(deps.Ctx, fm.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", fm.Slug, err)
			return err
		}

		text, err := frontmatter.Render(docToFile(doc))
		if err != nil {
			return err
		}

		path := filepath.Join(deps.Config.DocsDir, doc.Slug+".md")
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		results = append(results, syncedDoc{ID: doc.ID, Slug: doc.Slug, Path: path})
	}

	if c.JSON {
		out, err := json.MarshalIndent(map[string]interface{}{
			"syncedCount": len(results),
			"docsDir":     deps.Config.DocsDir,
			"docs":        results,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Synced %d docs into %s\n", len(results), deps.Config.DocsDir)
	return nil
}
