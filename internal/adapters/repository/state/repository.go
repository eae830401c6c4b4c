package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/catapult-sh/catapult/internal/domain"
	"github.com/catapult-sh/catapult/internal/usecase"
)

// Repository implements usecase.StateRepository over a Store.
type Repository struct {
	store Store
	log   *slog.Logger
}

// NewRepository creates a Repository backed by the given store.
func NewRepository(store Store, log *slog.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// LoadConnection hydrates the connection settings. An absent or unparsable
// value falls back to the defaults; this never fails.
func (r *Repository) LoadConnection(ctx context.Context) domain.ConnectionConfig {
	data, ok, err := r.store.Get(ctx, KeyRPCConfig)
	if err != nil || !ok {
		if err != nil {
			r.log.Warn("could not read connection settings, using defaults", "error", err)
		}
		return domain.DefaultConnectionConfig()
	}

	var cfg domain.ConnectionConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		r.log.Warn("stored connection settings are unparsable, using defaults", "error", err)
		return domain.DefaultConnectionConfig()
	}
	return cfg
}

// SaveConnection writes the whole configuration through to the store.
func (r *Repository) SaveConnection(ctx context.Context, cfg domain.ConnectionConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal connection settings: %w", err)
	}
	return r.store.Set(ctx, KeyRPCConfig, data)
}

// LoadHistory hydrates the deployment history, falling back to empty on an
// absent or unparsable value.
func (r *Repository) LoadHistory(ctx context.Context) []domain.DeployedRecord {
	data, ok, err := r.store.Get(ctx, KeyDeployedContracts)
	if err != nil || !ok {
		if err != nil {
			r.log.Warn("could not read deployment history", "error", err)
		}
		return nil
	}

	var history []domain.DeployedRecord
	if err := json.Unmarshal(data, &history); err != nil {
		r.log.Warn("stored deployment history is unparsable", "error", err)
		return nil
	}
	return history
}

// AppendHistory appends one record and writes the whole list through,
// returning the updated list. Insertion order is append order; nothing is
// ever deduplicated or removed.
func (r *Repository) AppendHistory(ctx context.Context, rec domain.DeployedRecord) ([]domain.DeployedRecord, error) {
	history := append(r.LoadHistory(ctx), rec)
	data, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal deployment history: %w", err)
	}
	if err := r.store.Set(ctx, KeyDeployedContracts, data); err != nil {
		return nil, err
	}
	return history, nil
}

var _ usecase.StateRepository = (*Repository)(nil)
