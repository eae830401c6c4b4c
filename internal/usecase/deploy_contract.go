package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/catapult-sh/catapult/internal/config"
	"github.com/catapult-sh/catapult/internal/domain"
)

// DeployParams carries one deployment request.
type DeployParams struct {
	// Artifact is the selected contract; a nil artifact makes the whole
	// call a no-op.
	Artifact *domain.ContractArtifact

	// Values are the raw constructor argument strings, keyed by parameter
	// name. The history record keeps them un-coerced.
	Values domain.FormValues
}

// DeployContract submits a contract deployment and records the result.
type DeployContract struct {
	cfg      *config.RuntimeConfig
	repo     StateRepository
	provider ChainProvider
	notifier Notifier
	log      *slog.Logger

	inFlight atomic.Bool
	now      func() time.Time
}

// NewDeployContract creates the DeployContract use case.
func NewDeployContract(
	cfg *config.RuntimeConfig,
	repo StateRepository,
	provider ChainProvider,
	notifier Notifier,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		cfg:      cfg,
		repo:     repo,
		provider: provider,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Run performs the deploy sequence:
//
//  1. no selected artifact: no-op
//  2. missing constructor: fail before any network interaction
//  3. coerce raw values positionally per declared parameter types
//  4. dial the endpoint, build a signer and a deployable handle, submit
//     and await confirmation
//  5. append a history record and surface a success notification
//
// On failure at any step exactly one failure notification carries the
// classified message, and the underlying error is returned to the caller.
// Only one deployment may be in flight at a time; there is no cancellation
// of a submitted transaction.
func (uc *DeployContract) Run(ctx context.Context, p DeployParams) (*domain.DeployedRecord, error) {
	if p.Artifact == nil {
		return nil, nil
	}

	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrDeployInFlight
	}
	defer uc.inFlight.Store(false)

	rec, err := uc.deploy(ctx, p)
	if err != nil {
		uc.notifier.Failure(ClassifyDeployError(err))
		return nil, err
	}

	uc.notifier.Success(fmt.Sprintf("Deployed %s at %s", rec.ContractName, rec.Address))
	return rec, nil
}

func (uc *DeployContract) deploy(ctx context.Context, p DeployParams) (*domain.DeployedRecord, error) {
	conn := uc.connection(ctx)
	if !conn.CanDeploy() {
		return nil, domain.ErrMissingConnection
	}

	ctor := p.Artifact.Constructor()
	if ctor == nil {
		return nil, domain.ErrNoConstructor
	}

	args, err := CoerceArgs(ctor.Inputs, p.Values)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("deploying contract",
		"contract", p.Artifact.Name,
		"args", len(args),
		"rpc", conn.RPCURL,
	)

	chain, err := uc.provider.Connect(ctx, conn.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", conn.RPCURL, err)
	}
	defer chain.Close()

	deployer, err := chain.NewDeployer(p.Artifact, conn.PrivateKey)
	if err != nil {
		return nil, err
	}

	address, err := deployer.DeployAndWait(ctx, args...)
	if err != nil {
		return nil, err
	}

	network, err := chain.Network(ctx)
	if err != nil {
		return nil, fmt.Errorf("read network info: %w", err)
	}

	rec := domain.DeployedRecord{
		Address:      address,
		ContractName: p.Artifact.Name,
		Network:      network.Label(),
		Timestamp:    uc.now().UTC().Format(time.RFC3339),
		Args:         p.Values,
	}

	if _, err := uc.repo.AppendHistory(ctx, rec); err != nil {
		return nil, fmt.Errorf("record deployment: %w", err)
	}

	return &rec, nil
}

// connection resolves the effective ConnectionConfig. CATAPULT_PRIVATE_KEY
// overrides the persisted key without ever being written to disk. The
// configured chain id is deliberately not used here; the provider reads the
// chain id from the endpoint.
func (uc *DeployContract) connection(ctx context.Context) domain.ConnectionConfig {
	conn := uc.repo.LoadConnection(ctx)
	if uc.cfg != nil && uc.cfg.PrivateKeyOverride != "" {
		conn.PrivateKey = uc.cfg.PrivateKeyOverride
	}
	return conn
}
