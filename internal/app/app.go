package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dcruz/pltscheck/internal/config"
	"github.com/dcruz/pltscheck/internal/ctxlog"
	"github.com/dcruz/pltscheck/internal/workspace"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	workspace *workspace.Workspace
	document  *config.Document
	results   []*config.CheckResult
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and a built
// workspace with every lattice, structure and model resolved.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all definitions into the format-agnostic document first.
	doc, err := loader.Load(ctx, appConfig.WorkspacePath)
	if err != nil {
		// A failure to load the workspace is a fatal startup error.
		panic(fmt.Errorf("failed to load workspace: %w", err))
	}
	logger.Debug("Workspace definitions loaded and translated into unified document.")

	// Build the algebraic objects in dependency order. A dangling reference
	// or an algebraically invalid definition is a fatal startup error too.
	ws, err := workspace.Build(ctx, doc)
	if err != nil {
		panic(fmt.Errorf("failed to build workspace: %w", err))
	}
	logger.Debug("Workspace built.",
		"checks", len(ws.Checks()),
	)

	return &App{
		outW:      outW,
		logger:    logger,
		workspace: ws,
		document:  doc,
	}
}

// Workspace returns the application's built workspace. This is primarily for testing.
func (a *App) Workspace() *workspace.Workspace {
	return a.workspace
}

// Results returns the exchange-shaped outcome of every check evaluated so far.
func (a *App) Results() []*config.CheckResult {
	return a.results
}
