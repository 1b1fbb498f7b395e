// Package app wires the generator together: spec selection, mode dispatch,
// and the user-facing run summary.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/soapywu/xcgen/internal/config"
	"github.com/soapywu/xcgen/internal/ctxlog"
	"github.com/soapywu/xcgen/internal/manifest"
	"github.com/soapywu/xcgen/internal/publish"
	"github.com/soapywu/xcgen/xcodeproj"
)

// App is one configured generator run.
type App struct {
	out    io.Writer
	logW   io.Writer
	cfg    *Config
	runner manifest.Runner
}

// NewApp assembles an App. The runner is injectable so tests never exec the
// external package tool.
func NewApp(out, logW io.Writer, cfg *Config, runner manifest.Runner) *App {
	return &App{out: out, logW: logW, cfg: cfg, runner: runner}
}

// Run executes the configured generation mode to completion. Every failure
// is terminal; there are no retries and no partial-success reporting.
func (a *App) Run(ctx context.Context) error {
	logger := newLogger(a.cfg.LogLevel, a.cfg.LogFormat, a.logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	spec, err := a.loadSpec()
	if err != nil {
		return err
	}
	logger.Debug("Loaded project spec", "target", spec.TargetName, "dependencies", len(spec.Dependencies))

	mode := a.cfg.Mode
	if a.cfg.Interactive {
		mode, err = chooseMode(mode)
		if err != nil {
			return fmt.Errorf("interactive setup failed: %w", err)
		}
		container := filepath.Join(a.cfg.OutputDir, spec.TargetName+".xcodeproj")
		if _, statErr := os.Stat(container); statErr == nil {
			proceed, confirmErr := confirmReplace(container)
			if confirmErr != nil {
				return fmt.Errorf("interactive setup failed: %w", confirmErr)
			}
			if !proceed {
				fmt.Fprintln(a.out, "Aborted. Nothing was changed.")
				return nil
			}
		}
	}

	switch mode {
	case ModeManifest:
		return a.runManifest(ctx, spec)
	default:
		return a.runProject(ctx, spec)
	}
}

func (a *App) loadSpec() (xcodeproj.ProjectSpec, error) {
	if a.cfg.DescriptorPath != "" {
		return config.Load(a.cfg.DescriptorPath)
	}
	return config.Default(), nil
}

func (a *App) runProject(ctx context.Context, spec xcodeproj.ProjectSpec) error {
	doc, err := xcodeproj.Generate(spec, xcodeproj.NewAllocator())
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	text := xcodeproj.Render(doc)

	res, err := publish.Publish(ctx, a.cfg.OutputDir, spec.TargetName, text, xcodeproj.WorkspaceSettings)
	if err != nil {
		return err
	}
	printProjectSummary(a.out, spec, res)
	return nil
}

func (a *App) runManifest(ctx context.Context, spec xcodeproj.ProjectSpec) error {
	printManifestWarning(a.out, spec)
	if err := manifest.Generate(ctx, a.cfg.OutputDir, spec, a.runner); err != nil {
		return err
	}
	printManifestSummary(a.out, spec)
	return nil
}
