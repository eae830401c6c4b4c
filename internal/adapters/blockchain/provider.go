// Package blockchain is the single boundary to go-ethereum. It exposes the
// three operations the deploy workflow needs: connect to an endpoint, build
// a deployable handle from ABI + bytecode + signer, and submit-and-await a
// deployment transaction. Everything else (gas, nonces, signing, broadcast)
// stays inside the library.
package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/catapult-sh/catapult/internal/domain"
	"github.com/catapult-sh/catapult/internal/usecase"
)

const receiptPollInterval = time.Second

// networkNames maps well-known chain ids to display names. Unknown chains
// render as "unknown"; the label always carries the numeric id as well.
var networkNames = map[int64]string{
	1:        "mainnet",
	10:       "optimism",
	137:      "polygon",
	8453:     "base",
	17000:    "holesky",
	42161:    "arbitrum",
	31337:    "anvil",
	11155111: "sepolia",
}

// EthProvider implements usecase.ChainProvider with ethclient.
type EthProvider struct {
	log *slog.Logger
}

// NewEthProvider creates the provider adapter.
func NewEthProvider(log *slog.Logger) *EthProvider {
	return &EthProvider{log: log}
}

// Connect dials the JSON-RPC endpoint.
func (p *EthProvider) Connect(ctx context.Context, rpcURL string) (usecase.ChainConn, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	return &ethConn{client: client, log: p.log}, nil
}

type ethConn struct {
	client *ethclient.Client
	log    *slog.Logger
}

// Network reads the chain id from the endpoint. The locally configured
// chain id is never consulted.
func (c *ethConn) Network(ctx context.Context) (domain.NetworkInfo, error) {
	id, err := c.client.ChainID(ctx)
	if err != nil {
		return domain.NetworkInfo{}, fmt.Errorf("read chain id: %w", err)
	}
	name, ok := networkNames[id.Int64()]
	if !ok {
		name = "unknown"
	}
	return domain.NetworkInfo{Name: name, ChainID: id.Int64()}, nil
}

func (c *ethConn) NewDeployer(artifact *domain.ContractArtifact, privateKeyHex string) (usecase.ContractDeployer, error) {
	abiJSON, err := artifact.ABIJSON()
	if err != nil {
		return nil, err
	}
	parsedABI, err := abi.JSON(strings.NewReader(string(abiJSON)))
	if err != nil {
		return nil, fmt.Errorf("parse ABI for %s: %w", artifact.Name, err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	bytecode := common.FromHex(artifact.Bytecode)
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("artifact %s has empty bytecode", artifact.Name)
	}

	return &contractDeployer{
		client:   c.client,
		abi:      parsedABI,
		bytecode: bytecode,
		key:      key,
		log:      c.log,
	}, nil
}

func (c *ethConn) Close() {
	c.client.Close()
}

type contractDeployer struct {
	client   *ethclient.Client
	abi      abi.ABI
	bytecode []byte
	key      *ecdsa.PrivateKey
	log      *slog.Logger
}

// DeployAndWait packs the constructor arguments, signs and submits the
// deployment transaction, then polls for the receipt until confirmation or
// context cancellation.
func (d *contractDeployer) DeployAndWait(ctx context.Context, args ...any) (string, error) {
	packArgs, err := d.packableArgs(args)
	if err != nil {
		return "", err
	}
	packed, err := d.abi.Pack("", packArgs...)
	if err != nil {
		return "", fmt.Errorf("encode constructor arguments: %w", err)
	}
	data := append(append([]byte(nil), d.bytecode...), packed...)

	from := crypto.PubkeyToAddress(d.key.PublicKey)

	nonce, err := d.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("fetch nonce: %w", err)
	}

	gas, err := d.client.EstimateGas(ctx, ethereum.CallMsg{From: from, Data: data})
	if err != nil {
		return "", fmt.Errorf("estimate gas: %w", err)
	}
	// headroom over the estimate
	gas = gas * 110 / 100

	price, err := d.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	chainID, err := d.client.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("read chain id: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		Gas:      gas,
		GasPrice: price,
		Data:     data,
	})
	tx, err = types.SignTx(tx, types.NewEIP155Signer(chainID), d.key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := d.client.SendTransaction(ctx, tx); err != nil {
		return "", fmt.Errorf("send deployment transaction: %w", err)
	}
	d.log.Debug("deployment transaction sent", "hash", tx.Hash().Hex(), "gas", gas)

	receipt, err := d.waitForReceipt(ctx, tx.Hash())
	if err != nil {
		return "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", fmt.Errorf("deployment transaction %s reverted", tx.Hash().Hex())
	}

	return receipt.ContractAddress.Hex(), nil
}

func (d *contractDeployer) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := d.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("fetch receipt for %s: %w", hash.Hex(), err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// packableArgs converts coerced argument values into the concrete types
// abi.Pack expects. Address parameters arrive as raw hex strings from the
// coercion step and are converted here, at the library boundary.
func (d *contractDeployer) packableArgs(args []any) ([]any, error) {
	ctor := d.abi.Constructor
	if len(ctor.Inputs) != len(args) {
		return nil, fmt.Errorf("constructor expects %d arguments, got %d", len(ctor.Inputs), len(args))
	}

	out := make([]any, len(args))
	for i, arg := range args {
		if ctor.Inputs[i].Type.T == abi.AddressTy {
			s, ok := arg.(string)
			if !ok {
				return nil, fmt.Errorf("argument %d: address parameter must be a string", i)
			}
			if !common.IsHexAddress(s) {
				return nil, fmt.Errorf("argument %d: %q is not a valid address", i, s)
			}
			out[i] = common.HexToAddress(s)
			continue
		}
		out[i] = arg
	}
	return out, nil
}

var _ usecase.ChainProvider = (*EthProvider)(nil)
