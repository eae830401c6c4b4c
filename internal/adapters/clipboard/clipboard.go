// Package clipboard wraps the system clipboard behind the usecase port.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/catapult-sh/catapult/internal/usecase"
)

// SystemClipboard writes through the OS clipboard.
type SystemClipboard struct{}

// NewSystemClipboard creates the adapter.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// WriteText places text on the system clipboard.
func (SystemClipboard) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	return nil
}

var _ usecase.ClipboardWriter = (*SystemClipboard)(nil)
