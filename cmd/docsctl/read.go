package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	doc, err := deps.Client.GetDocBySlug(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.JSON {
		out, err := json.MarshalIndent(map[string]interface{}{"doc": doc}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Title   : %s\n", doc.Frontmatter.Title)
	fmt.Fprintf(deps.Stdout, "Slug    : %s\n", doc.Slug)
	fmt.Fprintf(deps.Stdout, "Version : %d\n", doc.Version)
	fmt.Fprintf(deps.Stdout, "Updated : %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(deps.Stdout, "Summary : %s\n", doc.Frontmatter.Summary)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, doc.Content)

	return nil
}
