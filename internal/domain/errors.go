package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the deploy workflow
var (
	// ErrNoConstructor is returned when a deploy is attempted against an
	// artifact whose ABI has no constructor entry. Raised before any
	// network interaction.
	ErrNoConstructor = errors.New("no constructor found in ABI")

	// ErrDeployInFlight is returned when a second deployment is submitted
	// while one is still awaiting confirmation.
	ErrDeployInFlight = errors.New("a deployment is already in progress")

	// ErrMissingConnection is returned when the RPC URL or private key is
	// not configured.
	ErrMissingConnection = errors.New("rpc url and private key must be configured")

	// ErrRecordNotFound is returned when a history lookup matches nothing.
	ErrRecordNotFound = errors.New("deployment record not found")
)

// MalformedArtifactError is returned when a build-directory file does not
// conform to the expected compiler-output shape. Any such error aborts the
// whole artifact load and leaves prior state untouched.
type MalformedArtifactError struct {
	Path string
	Err  error
}

func (e *MalformedArtifactError) Error() string {
	return fmt.Sprintf("malformed artifact %s: %v", e.Path, e.Err)
}

func (e *MalformedArtifactError) Unwrap() error {
	return e.Err
}
