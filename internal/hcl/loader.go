package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/ctxlog"
)

// Loader implements config.Loader for HCL scenario files.
type Loader struct{}

// NewLoader creates an HCL scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the HCL file at path and translates it into the
// format-agnostic scenario model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL scenario.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed scenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	sc, err := translate(&parsed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("HCL scenario loaded.",
		"species", len(sc.Species), "objects", len(sc.Objects))
	return sc, nil
}
