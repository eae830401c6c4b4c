package usecase

import "strings"

// ClassifyDeployError maps a raw deployment error onto a user-facing
// message by substring match. Fragile against wording changes in
// go-ethereum, which is why it is isolated here; replace with typed error
// codes if the library ever grows them.
func ClassifyDeployError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return "Insufficient funds for deployment"
	case strings.Contains(msg, "nonce"):
		return "Transaction nonce error, retry"
	case strings.Contains(msg, "gas"):
		return "Gas estimation failed, check constructor arguments"
	default:
		return msg
	}
}
