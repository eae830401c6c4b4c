package usecase

import (
	"context"

	"github.com/catapult-sh/catapult/internal/domain"
)

// ShowConfig reads the current connection settings.
type ShowConfig struct {
	repo StateRepository
}

// NewShowConfig creates the ShowConfig use case.
func NewShowConfig(repo StateRepository) *ShowConfig {
	return &ShowConfig{repo: repo}
}

// Run returns the persisted configuration, falling back to defaults when
// nothing usable is stored.
func (uc *ShowConfig) Run(ctx context.Context) domain.ConnectionConfig {
	return uc.repo.LoadConnection(ctx)
}
