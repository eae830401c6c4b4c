package state_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-sh/catapult/internal/adapters/repository/state"
	"github.com/catapult-sh/catapult/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRepositoryConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips any editor-producible value", func(t *testing.T) {
		repo := state.NewRepository(state.NewMemoryStore(), testLogger())

		for _, cfg := range []domain.ConnectionConfig{
			{RPCURL: "http://localhost:8545", ChainID: 31337, PrivateKey: "0xac0974"},
			{RPCURL: "", ChainID: domain.InvalidChainID, PrivateKey: ""},
			{RPCURL: "wss://mainnet.example", ChainID: 1, PrivateKey: "deadbeef"},
		} {
			require.NoError(t, repo.SaveConnection(ctx, cfg))
			assert.Equal(t, cfg, repo.LoadConnection(ctx))
		}
	})

	t.Run("falls back to defaults when nothing is stored", func(t *testing.T) {
		repo := state.NewRepository(state.NewMemoryStore(), testLogger())
		assert.Equal(t, domain.DefaultConnectionConfig(), repo.LoadConnection(ctx))
	})

	t.Run("falls back to defaults on unparsable state", func(t *testing.T) {
		store := state.NewMemoryStore()
		require.NoError(t, store.Set(ctx, state.KeyRPCConfig, []byte("{broken")))

		repo := state.NewRepository(store, testLogger())
		assert.Equal(t, domain.DefaultConnectionConfig(), repo.LoadConnection(ctx))
	})
}

func TestRepositoryHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("appends keep insertion order", func(t *testing.T) {
		repo := state.NewRepository(state.NewMemoryStore(), testLogger())

		first := domain.DeployedRecord{
			Address:      "0x1111111111111111111111111111111111111111",
			ContractName: "Token",
			Network:      "anvil (chain 31337)",
			Timestamp:    "2026-08-30T12:00:00Z",
			Args:         domain.FormValues{"owner": "0xABC"},
		}
		second := domain.DeployedRecord{
			Address:      "0x2222222222222222222222222222222222222222",
			ContractName: "Vault",
			Network:      "anvil (chain 31337)",
			Timestamp:    "2026-08-30T12:05:00Z",
		}

		_, err := repo.AppendHistory(ctx, first)
		require.NoError(t, err)
		updated, err := repo.AppendHistory(ctx, second)
		require.NoError(t, err)

		require.Len(t, updated, 2)
		assert.Equal(t, []domain.DeployedRecord{first, second}, updated)
		assert.Equal(t, updated, repo.LoadHistory(ctx))
	})

	t.Run("duplicate records are kept", func(t *testing.T) {
		repo := state.NewRepository(state.NewMemoryStore(), testLogger())
		rec := domain.DeployedRecord{Address: "0xAA", ContractName: "Token"}

		_, err := repo.AppendHistory(ctx, rec)
		require.NoError(t, err)
		updated, err := repo.AppendHistory(ctx, rec)
		require.NoError(t, err)

		assert.Len(t, updated, 2, "history is never deduplicated")
	})

	t.Run("empty history loads as empty", func(t *testing.T) {
		repo := state.NewRepository(state.NewMemoryStore(), testLogger())
		assert.Empty(t, repo.LoadHistory(ctx))
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("persists state across repository instances", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "data")
		cfg := domain.ConnectionConfig{RPCURL: "http://localhost:8545", ChainID: 31337, PrivateKey: "0xac0974"}

		repo := state.NewRepository(state.NewFileStore(dir), testLogger())
		require.NoError(t, repo.SaveConnection(ctx, cfg))

		reloaded := state.NewRepository(state.NewFileStore(dir), testLogger())
		assert.Equal(t, cfg, reloaded.LoadConnection(ctx))
	})

	t.Run("key files are written with owner-only permissions", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "data")
		store := state.NewFileStore(dir)
		require.NoError(t, store.Set(ctx, state.KeyRPCConfig, []byte(`{}`)))

		info, err := os.Stat(store.Path(state.KeyRPCConfig))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		store := state.NewFileStore(t.TempDir())
		_, ok, err := store.Get(ctx, "nothing")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
