package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"docstore/internal/client"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Client overrides the API client. Set before calling Run() for
	// end-to-end testing; nil means a real HTTP client against the
	// resolved base URL.
	Client APIClient

	// EditFile overrides the interactive editor step of the edit command.
	EditFile func(path string) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsctl"),
		kong.Description("Sync and edit versioned documents against a docstore server"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsctl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cli.BaseURL, cli.DocsDir)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Config:   cfg,
		Client:   m.Client,
		EditFile: m.EditFile,
	}
	if deps.Client == nil {
		deps.Client = client.New(cfg.BaseURL)
	}

	return kongCtx.Run(deps)
}
