package interactive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catapult-sh/catapult/internal/adapters/interactive"
)

func TestSelectedIndex(t *testing.T) {
	options := []interactive.Option[string]{
		{Value: "Token.json", Text: "Token"},
		{Value: "Vault.json", Text: "Vault"},
		{Value: "Registry.json", Text: "Registry"},
	}

	t.Run("highlights exactly the strictly equal value", func(t *testing.T) {
		assert.Equal(t, 0, interactive.SelectedIndex(options, "Token.json"))
		assert.Equal(t, 1, interactive.SelectedIndex(options, "Vault.json"))
		assert.Equal(t, 2, interactive.SelectedIndex(options, "Registry.json"))
	})

	t.Run("no option matches an absent value", func(t *testing.T) {
		assert.Equal(t, -1, interactive.SelectedIndex(options, "Other.json"))
		assert.Equal(t, -1, interactive.SelectedIndex(options, ""))
		assert.Equal(t, -1, interactive.SelectedIndex(options, "token.json"), "equality is strict, not fuzzy")
	})

	t.Run("empty option list matches nothing", func(t *testing.T) {
		assert.Equal(t, -1, interactive.SelectedIndex(nil, "Token.json"))
	})

	t.Run("works for non-string values", func(t *testing.T) {
		ints := []interactive.Option[int]{{Value: 1, Text: "one"}, {Value: 2, Text: "two"}}
		assert.Equal(t, 1, interactive.SelectedIndex(ints, 2))
		assert.Equal(t, -1, interactive.SelectedIndex(ints, 3))
	})
}
