package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/catapult-sh/catapult/internal/domain"
)

// ConfigField names one editable field of the connection settings.
type ConfigField string

const (
	FieldRPCURL     ConfigField = "url"
	FieldChainID    ConfigField = "chain-id"
	FieldPrivateKey ConfigField = "private-key"
)

// ConfigFields lists the editable fields in display order.
var ConfigFields = []ConfigField{FieldRPCURL, FieldChainID, FieldPrivateKey}

// SetConfigParams is one single-field edit.
type SetConfigParams struct {
	Field    ConfigField
	RawValue string
}

// SetConfig updates one field of the connection settings, copying the other
// fields verbatim, and writes the whole value through to the store.
type SetConfig struct {
	repo StateRepository
	log  *slog.Logger
}

// NewSetConfig creates the SetConfig use case.
func NewSetConfig(repo StateRepository, log *slog.Logger) *SetConfig {
	return &SetConfig{repo: repo, log: log}
}

// Run applies the edit and returns the updated configuration.
//
// The chain-id field parses its raw text as an integer; non-numeric input
// stores domain.InvalidChainID as-is, without validation or clamping.
// Callers must tolerate that sentinel.
func (uc *SetConfig) Run(ctx context.Context, p SetConfigParams) (domain.ConnectionConfig, error) {
	next := uc.repo.LoadConnection(ctx)

	switch p.Field {
	case FieldRPCURL:
		next.RPCURL = p.RawValue
	case FieldChainID:
		n, err := strconv.ParseInt(p.RawValue, 10, 64)
		if err != nil {
			n = domain.InvalidChainID
		}
		next.ChainID = n
	case FieldPrivateKey:
		next.PrivateKey = p.RawValue
	default:
		return next, fmt.Errorf("unknown config field: %s", p.Field)
	}

	if err := uc.repo.SaveConnection(ctx, next); err != nil {
		return next, fmt.Errorf("save connection settings: %w", err)
	}

	uc.log.Debug("connection settings updated", "field", string(p.Field))
	return next, nil
}
