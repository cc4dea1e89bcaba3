package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/palettelab/retint/internal/logger"
	"github.com/palettelab/retint/internal/minting"
)

// collectibleABI is the minimal interface of the collectible contract:
// minting, reverse lookup by metadata reference, and the standard transfer
// event carrying the issued token id.
const collectibleABI = `[
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"metadataRef","type":"string"}],"outputs":[]},
	{"type":"function","name":"assetOf","stateMutability":"view","inputs":[{"name":"metadataRef","type":"string"}],"outputs":[{"name":"tokenId","type":"uint256"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true}],"anonymous":false}
]`

// Config holds the collectible contract connection settings
type Config struct {
	RPCURL          string
	ContractAddress string
	PrivateKey      string
	ChainID         int64
	// ReceiptTimeout bounds how long Mint waits for the transaction receipt
	ReceiptTimeout time.Duration
}

type minter struct {
	client         *ethclient.Client
	contract       *bind.BoundContract
	contractAddr   common.Address
	privateKey     *ecdsa.PrivateKey
	chainID        *big.Int
	receiptTimeout time.Duration
	transferTopic  common.Hash
}

// NewMinter creates a minter bound to the collectible contract
func NewMinter(ctx context.Context, cfg Config) (minting.Minter, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ethereum rpc: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(collectibleABI))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to parse contract abi: %w", err)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	contractAddr := common.HexToAddress(cfg.ContractAddress)
	receiptTimeout := cfg.ReceiptTimeout
	if receiptTimeout == 0 {
		receiptTimeout = 2 * time.Minute
	}

	return &minter{
		client:         client,
		contract:       bind.NewBoundContract(contractAddr, parsedABI, client, client, client),
		contractAddr:   contractAddr,
		privateKey:     privateKey,
		chainID:        big.NewInt(cfg.ChainID),
		receiptTimeout: receiptTimeout,
		transferTopic:  parsedABI.Events["Transfer"].ID,
	}, nil
}

// Mint issues a collectible owned by owner and returns the asset id in the
// form {contract_address}/{token_id}
func (m *minter) Mint(ctx context.Context, owner, metadataRef string) (string, error) {
	if !common.IsHexAddress(owner) {
		return "", fmt.Errorf("owner %q is not a valid address", owner)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(m.privateKey, m.chainID)
	if err != nil {
		return "", fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := m.contract.Transact(opts, "mint", common.HexToAddress(owner), metadataRef)
	if err != nil {
		return "", fmt.Errorf("failed to send mint transaction: %w", err)
	}

	receipt, err := m.waitForReceipt(ctx, tx.Hash())
	if err != nil {
		return "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", fmt.Errorf("mint transaction %s reverted", tx.Hash().Hex())
	}

	tokenID, err := m.tokenIDFromReceipt(receipt)
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Minted collectible",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("owner", owner),
		zap.String("token_id", tokenID.String()))

	return fmt.Sprintf("%s/%s", strings.ToLower(m.contractAddr.Hex()), tokenID.String()), nil
}

// AssetOf returns the asset id minted for metadataRef, or empty if none
func (m *minter) AssetOf(ctx context.Context, metadataRef string) (string, error) {
	var out []interface{}
	err := m.contract.Call(&bind.CallOpts{Context: ctx}, &out, "assetOf", metadataRef)
	if err != nil {
		return "", fmt.Errorf("failed to call assetOf: %w", err)
	}

	tokenID := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	if tokenID.Sign() == 0 {
		return "", nil
	}
	return fmt.Sprintf("%s/%s", strings.ToLower(m.contractAddr.Hex()), tokenID.String()), nil
}

// Close releases the RPC connection
func (m *minter) Close() {
	m.client.Close()
}

// waitForReceipt polls for the transaction receipt with exponential backoff.
// Pending transactions report ethereum.NotFound until mined.
func (m *minter) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = m.receiptTimeout
	b.RandomizationFactor = 0.5

	var receipt *types.Receipt
	operation := func() error {
		var err error
		receipt, err = m.client.TransactionReceipt(ctx, txHash)
		if err != nil {
			if errors.Is(err, goethereum.NotFound) {
				return fmt.Errorf("transaction %s not mined yet: %w", txHash.Hex(), err)
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to get receipt for %s: %w", txHash.Hex(), err)
	}
	return receipt, nil
}

// tokenIDFromReceipt extracts the issued token id from the Transfer event
func (m *minter) tokenIDFromReceipt(receipt *types.Receipt) (*big.Int, error) {
	for _, log := range receipt.Logs {
		if log.Address != m.contractAddr {
			continue
		}
		if len(log.Topics) == 4 && log.Topics[0] == m.transferTopic {
			return new(big.Int).SetBytes(log.Topics[3].Bytes()), nil
		}
	}
	return nil, fmt.Errorf("transaction %s has no transfer event", receipt.TxHash.Hex())
}
