package config

import "context"

// Loader is the interface for a format-specific scenario loader.
type Loader interface {
	// Load reads a scenario document from path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Scenario, error)
}
