package usecase

import (
	"context"
	"log/slog"

	"github.com/catapult-sh/catapult/internal/domain"
)

// LoadArtifacts reads the full artifact set from the build directory.
type LoadArtifacts struct {
	store    ArtifactStore
	notifier Notifier
	log      *slog.Logger
}

// NewLoadArtifacts creates the LoadArtifacts use case.
func NewLoadArtifacts(store ArtifactStore, notifier Notifier, log *slog.Logger) *LoadArtifacts {
	return &LoadArtifacts{store: store, notifier: notifier, log: log}
}

// Run replaces the artifact set wholesale. On any failure it surfaces a
// single notification and returns the error; the caller keeps whatever set
// it already had.
func (uc *LoadArtifacts) Run(ctx context.Context) (*domain.ArtifactSet, error) {
	set, err := uc.store.LoadAll(ctx)
	if err != nil {
		uc.log.Debug("artifact load failed", "error", err)
		uc.notifier.Failure("Failed to load contract artifacts: " + err.Error())
		return nil, err
	}

	uc.log.Debug("artifacts loaded", "count", set.Len(), "selected", set.Selected)
	return set, nil
}
