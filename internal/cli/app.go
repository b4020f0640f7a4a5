package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/config"
	"github.com/roach88/masft/internal/educator"
	"github.com/roach88/masft/internal/format"
	"github.com/roach88/masft/internal/history"
	"github.com/roach88/masft/internal/resolve"
)

// app is what a command needs: configuration, the catalog, the service and
// its output sinks.
type app struct {
	cfg      *config.Config
	svc      *educator.Service
	log      history.Log
	out      *OutputFormatter
	renderer *format.Renderer
	logger   *slog.Logger
	registry *prometheus.Registry
}

// newFormatter builds the formatter for cmd's writers.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Warnings go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// newLogger writes to stderr at Debug with --verbose. Otherwise only errors
// are logged; log failures reach the user as styled warnings.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	level := slog.LevelError
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}
	if opts.CatalogPath != "" {
		cfg.Catalog.Path = opts.CatalogPath
	}
	if opts.MetricsFile != "" {
		cfg.Metrics.File = opts.MetricsFile
	}
	return cfg, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.LoadFile(path)
}

// newApp loads configuration and the catalog and, when withLog is set, opens
// the interaction log. A log that cannot be opened is replaced by
// history.Unavailable so queries are still answered.
// Errors are reported through the formatter and returned as *ExitError.
func newApp(opts *RootOptions, cmd *cobra.Command, withLog bool) (*app, error) {
	out := newFormatter(opts, cmd)
	logger := newLogger(opts, cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		out.Error(ErrCodeConfig, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "configuration could not be loaded", err)
	}
	logger.Debug("configuration loaded", "database", cfg.Database.Path, "catalog", cfg.Catalog.Path)

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, reportError(out, err)
	}
	logger.Debug("catalog loaded", "failure_modes", len(cat.FailureModes()), "categories", len(cat.Categories()))

	renderer, err := newRenderer(cfg.Output.Render, cmd.OutOrStdout())
	if err != nil {
		logger.Debug("markdown rendering disabled", "error", err)
		renderer = nil
	}

	a := &app{
		cfg:      cfg,
		out:      out,
		renderer: renderer,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		log:      history.Unavailable(fmt.Errorf("interaction log not opened")),
	}
	if withLog {
		a.log = openLog(cfg.Database.Path, logger, out)
	}

	a.svc = educator.New(cat, a.log,
		educator.WithLogger(logger.With("component", "educator")),
		educator.WithMetrics(educator.NewMetrics(a.registry)),
		educator.WithResolverOptions(resolve.WithMinScore(cfg.Resolver.MinScore)),
		educator.WithHistoryLimit(cfg.History.Limit),
	)
	return a, nil
}

func openLog(path string, logger *slog.Logger, out *OutputFormatter) history.Log {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			out.Warn("interaction log disabled: %v", err)
			return history.Unavailable(err)
		}
	}

	st, err := history.Open(path)
	if err != nil {
		out.Warn("interaction log disabled: %v", err)
		return history.Unavailable(err)
	}
	logger.Debug("interaction log opened", "path", path)
	return st
}

// Close closes the interaction log and writes the metrics textfile if one
// is configured.
func (a *app) Close() {
	if err := a.log.Close(); err != nil {
		a.logger.Error("error closing interaction log", "error", err)
	}
	if a.cfg.Metrics.File == "" {
		return
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.File, a.registry); err != nil {
		a.out.Warn("metrics not written: %v", err)
	}
}

// render turns a payload into text output, styled when a renderer is active.
func (a *app) render(p format.Payload) string {
	if a.renderer == nil {
		return p.Markdown()
	}
	styled, err := a.renderer.Render(p)
	if err != nil {
		a.logger.Debug("falling back to plain markdown", "error", err)
		return p.Markdown()
	}
	return styled
}

// emit writes a payload in the configured format.
func (a *app) emit(p format.Payload) error {
	if a.out.Format == "json" {
		return a.out.Success(p)
	}
	return a.out.Success(a.render(p))
}

// warnIf prints a warning for a non-nil log failure.
func (a *app) warnIf(err error) {
	if err != nil {
		a.out.Warn("interaction not logged: %v", err)
	}
}
