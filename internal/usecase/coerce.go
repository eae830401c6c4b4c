package usecase

import (
	"fmt"
	"math/big"

	"github.com/catapult-sh/catapult/internal/domain"
)

// CoerceArgs turns raw form values into a positional argument list, in the
// constructor's declared parameter order:
//
//	uint256 -> *big.Int parsed base 10
//	bool    -> true only when the value is exactly "true"
//	everything else (address, string, ...) -> the raw string unchanged
//
// Address strings are converted at the provider boundary, not here.
func CoerceArgs(inputs []domain.ABIParameter, values domain.FormValues) ([]any, error) {
	args := make([]any, 0, len(inputs))
	for _, in := range inputs {
		raw := values[in.Name]
		switch in.Type {
		case "uint256":
			n, ok := new(big.Int).SetString(raw, 10)
			if !ok {
				return nil, fmt.Errorf("parameter %s: invalid uint256 value %q", in.Name, raw)
			}
			args = append(args, n)
		case "bool":
			args = append(args, raw == "true")
		default:
			args = append(args, raw)
		}
	}
	return args, nil
}
