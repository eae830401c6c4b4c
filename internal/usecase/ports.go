package usecase

import (
	"context"

	"github.com/catapult-sh/catapult/internal/domain"
)

// ArtifactStore loads compiled contract artifacts from the build directory.
type ArtifactStore interface {
	// LoadAll lists the build directory, parses every *.json artifact and
	// returns the complete set. Any listing, read or parse failure aborts
	// the whole load.
	LoadAll(ctx context.Context) (*domain.ArtifactSet, error)
}

// StateRepository persists connection settings and deployment history.
// Loads fall back to defaults when a key is absent or unparsable; every
// save writes the whole value through synchronously.
type StateRepository interface {
	LoadConnection(ctx context.Context) domain.ConnectionConfig
	SaveConnection(ctx context.Context, cfg domain.ConnectionConfig) error
	LoadHistory(ctx context.Context) []domain.DeployedRecord
	AppendHistory(ctx context.Context, rec domain.DeployedRecord) ([]domain.DeployedRecord, error)
}

// ChainProvider opens connections to a JSON-RPC endpoint. It is the single
// boundary to the wallet/provider machinery; everything behind it (gas
// estimation, nonces, signing, broadcast) is owned by go-ethereum.
type ChainProvider interface {
	Connect(ctx context.Context, rpcURL string) (ChainConn, error)
}

// ChainConn is an open connection to one endpoint.
type ChainConn interface {
	// Network reports the connected chain. The configured chain id is not
	// consulted; the chain id always comes from the endpoint itself.
	Network(ctx context.Context) (domain.NetworkInfo, error)

	// NewDeployer builds a deployable handle from the artifact's ABI and
	// bytecode and a signer derived from the private key.
	NewDeployer(artifact *domain.ContractArtifact, privateKeyHex string) (ContractDeployer, error)

	Close()
}

// ContractDeployer submits one deployment transaction and waits for
// on-chain confirmation, returning the deployed address.
type ContractDeployer interface {
	DeployAndWait(ctx context.Context, args ...any) (string, error)
}

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter interface {
	WriteText(text string) error
}

// Notifier surfaces transient success/failure messages to the user.
type Notifier interface {
	Success(message string)
	Failure(message string)
	Info(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Failure(string) {}
func (NopNotifier) Info(string)    {}
