package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-sh/catapult/internal/domain"
	"github.com/catapult-sh/catapult/internal/usecase"
)

type fakeArtifactStore struct {
	set *domain.ArtifactSet
	err error
}

func (s *fakeArtifactStore) LoadAll(ctx context.Context) (*domain.ArtifactSet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.set, nil
}

func TestLoadArtifacts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the loaded set", func(t *testing.T) {
		set := &domain.ArtifactSet{
			Contracts: map[string]*domain.ContractArtifact{
				"Token.json": {Name: "Token"},
			},
			Order:    []string{"Token.json"},
			Selected: "Token.json",
		}
		notifier := &recordingNotifier{}
		uc := usecase.NewLoadArtifacts(&fakeArtifactStore{set: set}, notifier, testLogger())

		got, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Same(t, set, got)
		assert.Empty(t, notifier.failures)
	})

	t.Run("load failure surfaces one notification and no partial set", func(t *testing.T) {
		loadErr := &domain.MalformedArtifactError{Path: "Broken.json", Err: errors.New("unexpected end of JSON input")}
		notifier := &recordingNotifier{}
		uc := usecase.NewLoadArtifacts(&fakeArtifactStore{err: loadErr}, notifier, testLogger())

		got, err := uc.Run(ctx)
		require.ErrorIs(t, err, loadErr)
		assert.Nil(t, got)

		require.Len(t, notifier.failures, 1)
		assert.Contains(t, notifier.failures[0], "Broken.json")
	})
}
