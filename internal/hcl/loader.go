package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/dcruz/pltscheck/internal/config"
	"github.com/dcruz/pltscheck/internal/ctxlog"
	"github.com/dcruz/pltscheck/internal/fsutil"
	"github.com/dcruz/pltscheck/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL workspace loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file the paths denote and merges their blocks into
// a single workspace document. Any parse or decode failure aborts the whole
// load.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl workspace files found in %v", paths)
	}
	logger.Debug("Discovered workspace files.", "count", len(files))

	parser := hclparse.NewParser()
	doc := &config.Document{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root schema.Document
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		if err := l.translate(&root, doc); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.",
		"lattices", len(doc.Lattices),
		"residuated_lattices", len(doc.ResiduatedLattices),
		"twist_structures", len(doc.TwistStructures),
		"models", len(doc.Models),
		"checks", len(doc.Checks),
	)
	return doc, nil
}
