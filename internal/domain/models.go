package domain

import (
	"encoding/json"
	"fmt"
)

// ABIParameter describes a single input of an ABI entry.
type ABIParameter struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	InternalType string `json:"internalType,omitempty"`
}

// ABIEntry is one entry of a contract ABI. Only entries with
// Type == "constructor" drive argument collection.
type ABIEntry struct {
	Type            string         `json:"type"`
	Name            string         `json:"name,omitempty"`
	Inputs          []ABIParameter `json:"inputs"`
	StateMutability string         `json:"stateMutability,omitempty"`
}

// ContractArtifact is a compiled contract loaded from the build directory.
// Immutable once loaded; the artifact set is replaced wholesale on refresh.
type ContractArtifact struct {
	Name     string
	ABI      []ABIEntry
	Bytecode string
}

// Constructor returns the ABI entry of type "constructor", or nil when the
// ABI carries none.
func (a *ContractArtifact) Constructor() *ABIEntry {
	for i := range a.ABI {
		if a.ABI[i].Type == "constructor" {
			return &a.ABI[i]
		}
	}
	return nil
}

// ConstructorInputs returns the constructor parameter list. A missing
// constructor entry means a zero-argument constructor here; the deploy
// sequence itself treats it as an error instead.
func (a *ContractArtifact) ConstructorInputs() []ABIParameter {
	if ctor := a.Constructor(); ctor != nil {
		return ctor.Inputs
	}
	return nil
}

// ABIJSON re-serializes the ABI for consumers that want the raw JSON form.
func (a *ContractArtifact) ABIJSON() ([]byte, error) {
	data, err := json.Marshal(a.ABI)
	if err != nil {
		return nil, fmt.Errorf("marshal ABI for %s: %w", a.Name, err)
	}
	return data, nil
}

// ArtifactSet holds the currently loaded artifacts, keyed by filename.
// Order preserves directory-listing order; Selected is the first key when
// the set is non-empty.
type ArtifactSet struct {
	Contracts map[string]*ContractArtifact
	Order     []string
	Selected  string
}

// Get returns the artifact stored under the given filename key.
func (s *ArtifactSet) Get(key string) (*ContractArtifact, bool) {
	a, ok := s.Contracts[key]
	return a, ok
}

// Len returns the number of loaded artifacts.
func (s *ArtifactSet) Len() int {
	return len(s.Contracts)
}

const (
	// DefaultChainID is the chain id used when no configuration is persisted.
	DefaultChainID int64 = 1

	// InvalidChainID is stored as-is when a chain-id edit is not numeric.
	// Callers must tolerate it; it is never validated or clamped.
	InvalidChainID int64 = -1
)

// ConnectionConfig holds the RPC endpoint settings. It round-trips verbatim
// through the state store as JSON under the "rpcConfig" key.
//
// PrivateKey is persisted unencrypted. That is the documented contract of
// this tool, not an accident; see the README and `catapult config --help`.
type ConnectionConfig struct {
	RPCURL     string `json:"url"`
	ChainID    int64  `json:"chainId"`
	PrivateKey string `json:"privateKey"`
}

// DefaultConnectionConfig is the fallback when the store has no config or
// the persisted value cannot be parsed.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{ChainID: DefaultChainID}
}

// CanDeploy reports whether a deployment may be submitted: both the RPC URL
// and the private key must be non-empty.
func (c ConnectionConfig) CanDeploy() bool {
	return c.RPCURL != "" && c.PrivateKey != ""
}

// FormValues maps constructor parameter names to the raw submitted strings.
type FormValues map[string]string

// DeployedRecord is one entry of the append-only deployment history.
// Args keeps the original un-coerced form values.
type DeployedRecord struct {
	Address      string     `json:"address"`
	ContractName string     `json:"contractName"`
	Network      string     `json:"network"`
	Timestamp    string     `json:"timestamp"`
	Args         FormValues `json:"args,omitempty"`
}

// NetworkInfo identifies the chain reached through an RPC endpoint.
type NetworkInfo struct {
	Name    string
	ChainID int64
}

// Label formats the network for display and for history records.
func (n NetworkInfo) Label() string {
	return fmt.Sprintf("%s (chain %d)", n.Name, n.ChainID)
}
