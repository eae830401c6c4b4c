package usecase

import (
	"context"

	"github.com/catapult-sh/catapult/internal/domain"
)

// ShowHistory reads the deployment history.
type ShowHistory struct {
	repo StateRepository
}

// NewShowHistory creates the ShowHistory use case.
func NewShowHistory(repo StateRepository) *ShowHistory {
	return &ShowHistory{repo: repo}
}

// Run returns the history in insertion order. The list is append-only:
// records are never deduplicated, reordered or removed.
func (uc *ShowHistory) Run(ctx context.Context) []domain.DeployedRecord {
	return uc.repo.LoadHistory(ctx)
}
