package txmgr

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"

	kcrypto "github.com/op-succinct/fault-proof/utils/service/crypto"
)

// ErrTransactionReverted is returned when a transaction was mined but its
// receipt carries a failed status.
var ErrTransactionReverted = errors.New("transaction reverted on-chain")

// ETHBackend is the set of methods the tx manager needs from an L1 client.
type ETHBackend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// TxCandidate is a partial transaction that Send turns into a full signed
// transaction.
type TxCandidate struct {
	// TxData is the transaction calldata to be used in the constructed tx.
	TxData []byte
	// To is the recipient of the constructed tx.
	To *common.Address
	// GasLimit is the gas limit to be used in the constructed tx. If 0 the
	// gas limit is estimated.
	GasLimit uint64
	// Value is the ETH value to attach to the constructed tx.
	Value *big.Int
}

// SimpleTxManager signs candidates, publishes them, and waits for the
// configured number of confirmations within the send timeout. The periodic
// agent tick is the retry loop, so a failed send is simply reported.
type SimpleTxManager struct {
	cfg     Config
	backend ETHBackend
	l       log.Logger
}

func NewSimpleTxManager(l log.Logger, cfg Config) *SimpleTxManager {
	return &SimpleTxManager{
		cfg:     cfg,
		backend: cfg.Backend,
		l:       l,
	}
}

// From returns the sending address of the manager.
func (m *SimpleTxManager) From() common.Address {
	return m.cfg.From
}

// Send constructs, signs and publishes the candidate, then blocks until the
// transaction has NumConfirmations confirmations or the send timeout elapses.
func (m *SimpleTxManager) Send(ctx context.Context, candidate TxCandidate) (*types.Receipt, error) {
	if m.cfg.TxSendTimeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.TxSendTimeout)
		defer cancel()
	}

	tx, err := m.craftTx(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to create the tx: %w", err)
	}

	sCtx, sCancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
	defer sCancel()
	signedTx, err := m.cfg.Signer(sCtx, m.cfg.From, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to sign the tx: %w", err)
	}

	if err := m.backend.SendTransaction(sCtx, signedTx); err != nil {
		return nil, fmt.Errorf("failed to publish the tx: %w", err)
	}
	m.l.Debug("Published transaction", "tx_hash", signedTx.Hash(), "nonce", signedTx.Nonce())

	receipt, err := m.waitMined(ctx, signedTx.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, fmt.Errorf("%w: tx %s", ErrTransactionReverted, signedTx.Hash())
	}
	return receipt, nil
}

func (m *SimpleTxManager) craftTx(ctx context.Context, candidate TxCandidate) (*types.Transaction, error) {
	cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
	defer cancel()

	nonce, err := m.backend.PendingNonceAt(cCtx, m.cfg.From)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending nonce: %w", err)
	}

	gasTipCap, err := m.backend.SuggestGasTipCap(cCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggested gas tip cap: %w", err)
	}
	head, err := m.backend.HeaderByNumber(cCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get L1 head: %w", err)
	}
	// Pay at most tip + 2*baseFee so the tx survives one full base fee bump.
	gasFeeCap := new(big.Int).Add(gasTipCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	gasLimit := candidate.GasLimit
	if gasLimit == 0 {
		gasLimit, err = m.backend.EstimateGas(cCtx, ethereum.CallMsg{
			From:      m.cfg.From,
			To:        candidate.To,
			Value:     candidate.Value,
			Data:      candidate.TxData,
			GasFeeCap: gasFeeCap,
			GasTipCap: gasTipCap,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   m.cfg.ChainID,
		Nonce:     nonce,
		To:        candidate.To,
		Value:     candidate.Value,
		Data:      candidate.TxData,
		Gas:       gasLimit,
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
	}), nil
}

// waitMined polls for the receipt and then for the configured confirmation
// depth on top of the inclusion block.
func (m *SimpleTxManager) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(m.cfg.ReceiptQueryInterval)
	defer ticker.Stop()

	for {
		receipt, err := m.backend.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			confirmed, err := m.isConfirmed(ctx, receipt)
			if err != nil {
				return nil, err
			}
			if confirmed {
				return receipt, nil
			}
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timed out waiting for tx %s: %w", txHash, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (m *SimpleTxManager) isConfirmed(ctx context.Context, receipt *types.Receipt) (bool, error) {
	cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
	defer cancel()

	tip, err := m.backend.BlockNumber(cCtx)
	if err != nil {
		return false, fmt.Errorf("failed to get block number: %w", err)
	}
	txHeight := receipt.BlockNumber.Uint64()
	if tip < txHeight+m.cfg.NumConfirmations-1 {
		m.l.Debug("Transaction not yet confirmed", "tx_hash", receipt.TxHash, "tx_height", txHeight, "tip", tip)
		return false, nil
	}
	return true, nil
}

// Config houses parameters for altering the behavior of a SimpleTxManager.
type Config struct {
	Backend ETHBackend

	// ChainID is the chain ID of the L1 chain.
	ChainID *big.Int

	// TxSendTimeout is how long to wait for sending a transaction, including
	// the confirmation wait. Zero disables the timeout.
	TxSendTimeout time.Duration

	// NetworkTimeout is the allowed duration for a single network request.
	// This is intended to be used for network requests that can be replayed.
	NetworkTimeout time.Duration

	// ReceiptQueryInterval is the interval at which the tx manager will query
	// the backend to check for confirmations after a tx has been published.
	ReceiptQueryInterval time.Duration

	// NumConfirmations specifies how many blocks are need to consider a
	// transaction confirmed.
	NumConfirmations uint64

	// Signer is used to sign transactions before publishing.
	Signer kcrypto.SignerFn
	From   common.Address
}

func (c Config) Check() error {
	if c.NumConfirmations == 0 {
		return errors.New("NumConfirmations must not be 0")
	}
	if c.NetworkTimeout == 0 {
		return errors.New("must provide NetworkTimeout")
	}
	if c.ReceiptQueryInterval == 0 {
		return errors.New("must provide ReceiptQueryInterval")
	}
	if c.Signer == nil {
		return errors.New("must provide the Signer")
	}
	return nil
}
