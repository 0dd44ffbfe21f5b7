package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"pingdash/internal/acquire"
	"pingdash/internal/config"
	"pingdash/internal/logging"
	"pingdash/internal/report"
	"pingdash/internal/state"
)

// App represents the application context
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Client   *acquire.Client
	Store    *state.Store
	Exporter *report.Exporter
}

// Options carries command line overrides. Empty values leave the loaded
// configuration untouched.
type Options struct {
	ConfigPath string
	BaseURL    string
	ExportDir  string
	LogLevel   string
	// Console receives a copy of the log when non-nil and verbose output
	// was requested.
	Console io.Writer
	Verbose bool
}

// New creates a new application instance
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.BaseURL != "" {
		cfg.Service.BaseURL = opts.BaseURL
	}
	if opts.ExportDir != "" {
		cfg.Export.Dir = opts.ExportDir
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	logOpts := logging.Options{Dir: cfg.Logging.Dir, Level: cfg.Logging.Level}
	if opts.Verbose || cfg.Logging.Console {
		logOpts.Console = opts.Console
	}
	logger, err := logging.NewLogger(logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	return NewWithConfig(cfg, logger)
}

// NewWithConfig wires the components around an already loaded config.
func NewWithConfig(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := acquire.NewClient(acquire.ClientConfig{
		BaseURL:         cfg.Service.BaseURL,
		SystemInfoPath:  cfg.Service.SystemInfoPath,
		NetworkInfoPath: cfg.Service.NetworkInfoPath,
		PingPath:        cfg.Service.PingPath,
		UserAgent:       cfg.Service.UserAgent,
		Timeout:         cfg.Service.GetTimeout(),
	}, logger.Named("acquire"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Client:   client,
		Store:    state.NewStore(logger.Named("state")),
		Exporter: report.NewExporter(cfg.Export.Dir, logger.Named("export")),
	}, nil
}

// Refresh runs one acquisition and applies its outcome to the store. The
// returned error is the acquisition failure, if any; the store keeps the
// previous snapshot in that case.
func (a *App) Refresh(ctx context.Context) (*state.Snapshot, error) {
	snap, err := a.Client.Fetch(ctx)
	a.Store.Apply(snap, err)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Close closes the application and releases resources
func (a *App) Close() error {
	if a.Logger != nil {
		// Syncing a terminal stderr returns EINVAL on some platforms.
		_ = a.Logger.Sync()
	}
	return nil
}
