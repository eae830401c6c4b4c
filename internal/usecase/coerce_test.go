package usecase_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-sh/catapult/internal/domain"
	"github.com/catapult-sh/catapult/internal/usecase"
)

func TestCoerceArgs(t *testing.T) {
	t.Run("positional coercion follows declared order", func(t *testing.T) {
		inputs := []domain.ABIParameter{
			{Name: "owner", Type: "address"},
			{Name: "amount", Type: "uint256"},
			{Name: "active", Type: "bool"},
		}
		values := domain.FormValues{
			"owner":  "0xABC",
			"amount": "1000",
			"active": "true",
		}

		args, err := usecase.CoerceArgs(inputs, values)
		require.NoError(t, err)
		require.Len(t, args, 3)

		assert.Equal(t, "0xABC", args[0])
		assert.Equal(t, big.NewInt(1000), args[1])
		assert.Equal(t, true, args[2])
	})

	t.Run("bool is true only for the exact string true", func(t *testing.T) {
		inputs := []domain.ABIParameter{{Name: "flag", Type: "bool"}}

		for raw, want := range map[string]bool{
			"true":  true,
			"True":  false,
			"TRUE":  false,
			"1":     false,
			"false": false,
			"":      false,
		} {
			args, err := usecase.CoerceArgs(inputs, domain.FormValues{"flag": raw})
			require.NoError(t, err)
			assert.Equal(t, want, args[0], "raw value %q", raw)
		}
	})

	t.Run("uint256 is arbitrary precision", func(t *testing.T) {
		inputs := []domain.ABIParameter{{Name: "supply", Type: "uint256"}}
		huge := "115792089237316195423570985008687907853269984665640564039457584007913129639935"

		args, err := usecase.CoerceArgs(inputs, domain.FormValues{"supply": huge})
		require.NoError(t, err)

		want, ok := new(big.Int).SetString(huge, 10)
		require.True(t, ok)
		assert.Equal(t, want, args[0])
	})

	t.Run("invalid uint256 fails", func(t *testing.T) {
		inputs := []domain.ABIParameter{{Name: "amount", Type: "uint256"}}

		_, err := usecase.CoerceArgs(inputs, domain.FormValues{"amount": "not-a-number"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("unknown declared types pass through as strings", func(t *testing.T) {
		inputs := []domain.ABIParameter{
			{Name: "data", Type: "bytes32"},
			{Name: "label", Type: "string"},
		}
		values := domain.FormValues{"data": "0xdead", "label": "hello"}

		args, err := usecase.CoerceArgs(inputs, values)
		require.NoError(t, err)
		assert.Equal(t, []any{"0xdead", "hello"}, args)
	})

	t.Run("empty parameter list yields empty args", func(t *testing.T) {
		args, err := usecase.CoerceArgs(nil, domain.FormValues{})
		require.NoError(t, err)
		assert.Empty(t, args)
	})
}
