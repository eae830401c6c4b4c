package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/catapult-sh/catapult/internal/domain"
)

// compilerOutput is the expected shape of a build artifact file.
type compilerOutput struct {
	ABI []domain.ABIEntry `json:"abi"`
	EVM struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"evm"`
}

// ArtifactStore loads compiler-output JSON artifacts from a build directory.
type ArtifactStore struct {
	buildDir string
	log      *slog.Logger
}

// NewArtifactStore creates an ArtifactStore rooted at buildDir.
func NewArtifactStore(buildDir string, log *slog.Logger) *ArtifactStore {
	return &ArtifactStore{buildDir: buildDir, log: log}
}

// LoadAll lists the build directory, reads every *.json file and parses it
// against the compiler-output schema. All-or-nothing: any listing, read or
// parse failure aborts the whole load so a partial set is never returned.
// The first key in listing order becomes the selected artifact.
func (s *ArtifactStore) LoadAll(ctx context.Context) (*domain.ArtifactSet, error) {
	entries, err := os.ReadDir(s.buildDir)
	if err != nil {
		return nil, fmt.Errorf("list build directory %s: %w", s.buildDir, err)
	}

	set := &domain.ArtifactSet{
		Contracts: make(map[string]*domain.ContractArtifact),
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.buildDir, entry.Name())
		artifact, err := s.readArtifact(path)
		if err != nil {
			return nil, err
		}

		artifact.Name = strings.TrimSuffix(entry.Name(), ".json")
		set.Contracts[entry.Name()] = artifact
		set.Order = append(set.Order, entry.Name())
		s.log.Debug("loaded artifact", "file", entry.Name(), "contract", artifact.Name)
	}

	if len(set.Order) > 0 {
		set.Selected = set.Order[0]
	}

	return set, nil
}

func (s *ArtifactStore) readArtifact(path string) (*domain.ContractArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var out compilerOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &domain.MalformedArtifactError{Path: path, Err: err}
	}
	if out.ABI == nil {
		return nil, &domain.MalformedArtifactError{Path: path, Err: fmt.Errorf("missing abi")}
	}
	if out.EVM.Bytecode.Object == "" {
		return nil, &domain.MalformedArtifactError{Path: path, Err: fmt.Errorf("missing evm.bytecode.object")}
	}

	return &domain.ContractArtifact{
		ABI:      out.ABI,
		Bytecode: out.EVM.Bytecode.Object,
	}, nil
}
