package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RuntimeConfig is the resolved per-invocation configuration.
type RuntimeConfig struct {
	// ProjectRoot is the directory the tool operates in.
	ProjectRoot string

	// BuildDir is the directory holding compiler-output JSON artifacts.
	BuildDir string

	// DataDir is where connection settings and deployment history are
	// persisted (as clear-text JSON; see the config command help).
	DataDir string

	// PrivateKeyOverride, when set (CATAPULT_PRIVATE_KEY), is used for
	// signing instead of the persisted private key and is never written
	// to the data dir.
	PrivateKeyOverride string

	// NonInteractive disables prompts and selectors.
	NonInteractive bool

	// JSON switches renderers to raw JSON output.
	JSON bool

	// Timeout bounds a whole command invocation.
	Timeout time.Duration
}

// Validate checks that the configured directories can be used.
func (c *RuntimeConfig) Validate() error {
	if _, err := os.Stat(c.ProjectRoot); err != nil {
		return fmt.Errorf("project root does not exist: %s", c.ProjectRoot)
	}
	return nil
}

// resolveRoot makes the project root absolute.
func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(root) {
		return root, nil
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	return abs, nil
}
