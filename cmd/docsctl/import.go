package main

import (
	"fmt"

	"docstore/internal/domain/services"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Importing %q from %s ...\n", c.Name, c.URL)

	doc, err := deps.Client.ImportDoc(deps.Ctx, &services.ImportDocRequest{
		Name: c.Name,
		URL:  c.URL,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported doc: id=%s, slug=%s, version=%d\n", doc.ID, doc.Slug, doc.Version)
	return nil
}
