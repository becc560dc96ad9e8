package main

import (
	"context"
	"io"

	"docstore/internal/domain/models"
	"docstore/internal/domain/services"
)

// APIClient is the slice of the server API the CLI consumes. The real
// implementation is internal/client; tests substitute a mock.
type APIClient interface {
	ListDocs(ctx context.Context) ([]models.Frontmatter, error)
	GetDocByID(ctx context.Context, id string) (*models.DocContent, error)
	GetDocBySlug(ctx context.Context, slug string) (*models.DocContent, error)
	CreateDoc(ctx context.Context, req *services.CreateDocRequest) (*models.DocContent, error)
	UpdateDoc(ctx context.Context, id string, req *services.UpdateDocRequest) (*models.DocContent, error)
	ImportDoc(ctx context.Context, req *services.ImportDocRequest) (*models.DocContent, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *Config
	Client APIClient

	// EditFile replaces the interactive editor in tests.
	EditFile func(path string) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL string `help:"Server base URL" name:"base-url"`
	DocsDir string `help:"Local docs directory" name:"docs-dir"`

	List   ListCmd   `cmd:"" help:"List all documents"`
	Read   ReadCmd   `cmd:"" help:"Print a document by slug"`
	Sync   SyncCmd   `cmd:"" help:"Pull all documents into the docs directory"`
	Push   PushCmd   `cmd:"" help:"Create or update a document from a markdown file"`
	Edit   EditCmd   `cmd:"" help:"Edit a document in $EDITOR"`
	Import ImportCmd `cmd:"" help:"Import a web page as a document"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	JSON bool `help:"Output as JSON"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Slug string `arg:"" help:"Document slug"`
	JSON bool   `help:"Output as JSON"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	JSON bool `help:"Output as JSON"`
}

// PushCmd is the "push" subcommand.
type PushCmd struct {
	Path   string `arg:"" help:"Markdown file (absolute, or relative to the docs directory)"`
	DryRun bool   `help:"Show what would be sent without calling the server"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	ID     string `arg:"" help:"Document ID"`
	Editor string `help:"Editor command (defaults to $EDITOR)"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name string `arg:"" help:"Name for the imported document (drives the slug)"`
	URL  string `arg:"" help:"Web page URL to import"`
}
