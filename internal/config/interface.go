package config

import "context"

// Loader is the interface for a format-specific workspace loader.
type Loader interface {
	// Load reads workspace definitions from the given paths (files or
	// directories) and translates them into the format-agnostic Document.
	Load(ctx context.Context, paths ...string) (*Document, error)
}
