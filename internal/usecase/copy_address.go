package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/catapult-sh/catapult/internal/domain"
)

// CopyAddressParams identifies a history record either by its 1-based
// position or by the address itself.
type CopyAddressParams struct {
	Ref string
}

// CopyAddress writes a deployed contract address to the system clipboard.
type CopyAddress struct {
	repo      StateRepository
	clipboard ClipboardWriter
	notifier  Notifier
}

// NewCopyAddress creates the CopyAddress use case.
func NewCopyAddress(repo StateRepository, clipboard ClipboardWriter, notifier Notifier) *CopyAddress {
	return &CopyAddress{repo: repo, clipboard: clipboard, notifier: notifier}
}

// Run resolves the record and copies its address, raising a confirmation
// notification on success.
func (uc *CopyAddress) Run(ctx context.Context, p CopyAddressParams) error {
	rec, err := uc.resolve(ctx, p.Ref)
	if err != nil {
		return err
	}

	if err := uc.clipboard.WriteText(rec.Address); err != nil {
		return fmt.Errorf("write to clipboard: %w", err)
	}

	uc.notifier.Success("Address copied to clipboard: " + rec.Address)
	return nil
}

func (uc *CopyAddress) resolve(ctx context.Context, ref string) (*domain.DeployedRecord, error) {
	history := uc.repo.LoadHistory(ctx)
	if len(history) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(history) {
			return nil, fmt.Errorf("%w: index %d out of range 1..%d", domain.ErrRecordNotFound, n, len(history))
		}
		return &history[n-1], nil
	}

	for i := range history {
		if strings.EqualFold(history[i].Address, ref) {
			return &history[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, ref)
}
