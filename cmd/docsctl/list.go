package main

import (
	"encoding/json"
	"fmt"

	"docstore/internal/domain/models"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Client.ListDocs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.JSON {
		if docs == nil {
			docs = []models.Frontmatter{}
		}
		out, err := json.MarshalIndent(map[string]interface{}{"docs": docs}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No docs found. Use 'docsctl push' or 'docsctl import' to create one.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%-24s  %-32s  %-7s  %s\n", "slug", "title", "version", "updated")
	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "%-24s  %-32s  %-7d  %s\n",
			doc.Slug, doc.Title, doc.Version, doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}
