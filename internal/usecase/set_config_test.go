package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-sh/catapult/internal/adapters/repository/state"
	"github.com/catapult-sh/catapult/internal/domain"
	"github.com/catapult-sh/catapult/internal/usecase"
)

func TestSetConfig(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (*usecase.SetConfig, *state.Repository) {
		t.Helper()
		repo := state.NewRepository(state.NewMemoryStore(), testLogger())
		return usecase.NewSetConfig(repo, testLogger()), repo
	}

	t.Run("each edit preserves the untouched fields verbatim", func(t *testing.T) {
		uc, repo := newFixture(t)

		cfg, err := uc.Run(ctx, usecase.SetConfigParams{Field: usecase.FieldRPCURL, RawValue: "http://localhost:8545"})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultChainID, cfg.ChainID)
		assert.Empty(t, cfg.PrivateKey)

		cfg, err = uc.Run(ctx, usecase.SetConfigParams{Field: usecase.FieldChainID, RawValue: "31337"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
		assert.Equal(t, int64(31337), cfg.ChainID)
		assert.Empty(t, cfg.PrivateKey)

		cfg, err = uc.Run(ctx, usecase.SetConfigParams{Field: usecase.FieldPrivateKey, RawValue: "0xac0974"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
		assert.Equal(t, int64(31337), cfg.ChainID)
		assert.Equal(t, "0xac0974", cfg.PrivateKey)

		// every edit wrote the whole value through
		assert.Equal(t, cfg, repo.LoadConnection(ctx))
	})

	t.Run("non-numeric chain id stores the sentinel as-is", func(t *testing.T) {
		uc, repo := newFixture(t)

		cfg, err := uc.Run(ctx, usecase.SetConfigParams{Field: usecase.FieldChainID, RawValue: "mainnet"})
		require.NoError(t, err)
		assert.Equal(t, domain.InvalidChainID, cfg.ChainID)

		// sentinel survives the round trip untouched
		assert.Equal(t, domain.InvalidChainID, repo.LoadConnection(ctx).ChainID)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		uc, _ := newFixture(t)

		_, err := uc.Run(ctx, usecase.SetConfigParams{Field: "timeout", RawValue: "5"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown config field")
	})
}
