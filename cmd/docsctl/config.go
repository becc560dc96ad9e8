package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultDocsDir = "./docs"
)

// Config is the resolved CLI configuration.
type Config struct {
	BaseURL string `json:"baseUrl"`
	DocsDir string `json:"docsDir"`
}

// resolveConfig layers configuration sources: flags beat environment
// variables beat ~/.docsctl/config.json beat built-in defaults.
func resolveConfig(flagBaseURL, flagDocsDir string) (*Config, error) {
	fileCfg, err := loadConfigFile()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL: firstNonEmpty(flagBaseURL, os.Getenv("DOCSTORE_BASE_URL"), fileCfg.BaseURL, defaultBaseURL),
		DocsDir: firstNonEmpty(flagDocsDir, os.Getenv("DOCSTORE_DOCS_DIR"), fileCfg.DocsDir, defaultDocsDir),
	}
	return cfg, nil
}

func loadConfigFile() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}

	path := filepath.Join(home, ".docsctl", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
