package fs_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-sh/catapult/internal/adapters/fs"
	"github.com/catapult-sh/catapult/internal/domain"
)

const tokenArtifactJSON = `{
  "abi": [
    {"type": "constructor", "inputs": [
      {"name": "owner", "type": "address", "internalType": "address"},
      {"name": "amount", "type": "uint256", "internalType": "uint256"}
    ]},
    {"type": "function", "name": "transfer", "inputs": [], "stateMutability": "nonpayable"}
  ],
  "evm": {"bytecode": {"object": "0x6080604052"}}
}`

const vaultArtifactJSON = `{
  "abi": [],
  "evm": {"bytecode": {"object": "0x60016001"}}
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestArtifactStore(t *testing.T) {
	ctx := context.Background()

	t.Run("loads json artifacts and selects the first key", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "Token.json", tokenArtifactJSON)
		writeFile(t, dir, "Vault.json", vaultArtifactJSON)
		writeFile(t, dir, "README.md", "not an artifact")

		store := fs.NewArtifactStore(dir, testLogger())
		set, err := store.LoadAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, set.Len())
		assert.Equal(t, []string{"Token.json", "Vault.json"}, set.Order)
		assert.Equal(t, "Token.json", set.Selected)

		token, ok := set.Get("Token.json")
		require.True(t, ok)
		assert.Equal(t, "Token", token.Name, "display name strips .json")
		assert.Equal(t, "0x6080604052", token.Bytecode)

		ctor := token.Constructor()
		require.NotNil(t, ctor)
		assert.Len(t, ctor.Inputs, 2)

		vault, ok := set.Get("Vault.json")
		require.True(t, ok)
		assert.Nil(t, vault.Constructor())
		assert.Empty(t, vault.ConstructorInputs(), "missing constructor means zero arguments here")
	})

	t.Run("empty directory yields an empty set with no selection", func(t *testing.T) {
		store := fs.NewArtifactStore(t.TempDir(), testLogger())
		set, err := store.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
		assert.Empty(t, set.Selected)
	})

	t.Run("one malformed artifact aborts the whole load", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "Token.json", tokenArtifactJSON)
		writeFile(t, dir, "Broken.json", `{"abi": "definitely not a list"`)

		store := fs.NewArtifactStore(dir, testLogger())
		set, err := store.LoadAll(ctx)
		require.Error(t, err)
		assert.Nil(t, set, "no partial set is ever returned")

		var malformed *domain.MalformedArtifactError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, malformed.Path, "Broken.json")
	})

	t.Run("artifact without abi or bytecode is malformed", func(t *testing.T) {
		for name, content := range map[string]string{
			"NoABI.json":      `{"evm": {"bytecode": {"object": "0x00"}}}`,
			"NoBytecode.json": `{"abi": []}`,
		} {
			dir := t.TempDir()
			writeFile(t, dir, name, content)

			store := fs.NewArtifactStore(dir, testLogger())
			_, err := store.LoadAll(ctx)

			var malformed *domain.MalformedArtifactError
			require.ErrorAs(t, err, &malformed, "file %s", name)
		}
	})

	t.Run("missing build directory fails the load", func(t *testing.T) {
		store := fs.NewArtifactStore(filepath.Join(t.TempDir(), "missing"), testLogger())
		_, err := store.LoadAll(ctx)
		require.Error(t, err)
	})
}
