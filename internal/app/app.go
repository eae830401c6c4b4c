package app

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/catapult-sh/catapult/internal/adapters/blockchain"
	"github.com/catapult-sh/catapult/internal/adapters/clipboard"
	"github.com/catapult-sh/catapult/internal/adapters/fs"
	"github.com/catapult-sh/catapult/internal/adapters/interactive"
	"github.com/catapult-sh/catapult/internal/adapters/repository/state"
	"github.com/catapult-sh/catapult/internal/config"
	"github.com/catapult-sh/catapult/internal/usecase"
)

// App is the application container holding the wired use cases.
type App struct {
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared adapters
	Notifier usecase.Notifier
	Store    *state.FileStore
	Selector *interactive.Selector
	Prompter *interactive.ArgumentPrompter

	// Use cases
	LoadArtifacts  *usecase.LoadArtifacts
	DeployContract *usecase.DeployContract
	SetConfig      *usecase.SetConfig
	ShowConfig     *usecase.ShowConfig
	ShowHistory    *usecase.ShowHistory
	CopyAddress    *usecase.CopyAddress
}

// InitApp builds the dependency graph for one command invocation.
func InitApp(v *viper.Viper, log *slog.Logger, notifier usecase.Notifier) (*App, error) {
	cfg, err := config.Provider(v)
	if err != nil {
		return nil, err
	}

	store := state.NewFileStore(cfg.DataDir)
	repo := state.NewRepository(store, log)
	artifacts := fs.NewArtifactStore(cfg.BuildDir, log)
	provider := blockchain.NewEthProvider(log)
	clip := clipboard.NewSystemClipboard()

	return &App{
		Config:   cfg,
		Log:      log,
		Notifier: notifier,
		Store:    store,
		Selector: interactive.NewSelector(cfg.NonInteractive),
		Prompter: interactive.NewArgumentPrompter(cfg.NonInteractive),

		LoadArtifacts:  usecase.NewLoadArtifacts(artifacts, notifier, log),
		DeployContract: usecase.NewDeployContract(cfg, repo, provider, notifier, log),
		SetConfig:      usecase.NewSetConfig(repo, log),
		ShowConfig:     usecase.NewShowConfig(repo),
		ShowHistory:    usecase.NewShowHistory(repo),
		CopyAddress:    usecase.NewCopyAddress(repo, clip, notifier),
	}, nil
}
