package cli

import (
	"context"
	"io"
	"os"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/logging"
)

// App represents the main CLI application
type App struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	loader       *config.Loader
	out          io.Writer
	errorHandler *ErrorHandler
	closeStore   func() error
}

// NewApp creates an application that loads its configuration and opens the
// store once the command line has been parsed
func NewApp(loader *config.Loader) *App {
	return &App{
		loader:       loader,
		out:          os.Stdout,
		errorHandler: NewErrorHandler(),
	}
}

// NewAppWithAPI creates an application around an existing BusinessAPI
func NewAppWithAPI(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		businessAPI:  businessAPI,
		config:       cfg,
		out:          os.Stdout,
		errorHandler: NewErrorHandler(),
	}
}

// SetOutput redirects command results, which go to stdout by default
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	root := NewRootCommand(a)
	root.cmd.SetArgs(protectNegativeIDs(args))
	root.cmd.SetOut(a.out)

	err := root.ExecuteContext(ctx)
	if closeErr := a.close(); closeErr != nil {
		logging.Warn("closing task store failed", "err", closeErr)
	}
	if err != nil {
		return a.errorHandler.HandleSimple(err)
	}
	return nil
}

// setup resolves configuration and builds the API unless one was injected
func (a *App) setup(ctx context.Context, overrides *config.ConfigOverrides) error {
	if a.businessAPI != nil {
		config.ApplyOverrides(a.config, overrides)
		logging.SetVerbose(a.config.Application.Verbose)
		return a.config.Validate()
	}

	cfg, err := a.loader.LoadWithOverrides(overrides)
	if err != nil {
		return err
	}
	logging.SetVerbose(cfg.Application.Verbose)

	storeCtx, cancel := context.WithTimeout(ctx, cfg.GetTimeout())
	defer cancel()

	store, err := config.CreateStore(storeCtx, cfg)
	if err != nil {
		return err
	}

	a.config = cfg
	a.businessAPI = api.New(store)
	a.closeStore = store.Close
	return nil
}

// close releases a store opened by setup so the next Run opens a fresh one
func (a *App) close() error {
	if a.closeStore == nil {
		return nil
	}
	err := a.closeStore()
	a.closeStore = nil
	a.businessAPI = nil
	a.config = nil
	return err
}
