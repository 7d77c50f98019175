package txmgr

import (
	"context"
	"math/big"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"
)

type mockBackend struct {
	tip         uint64
	receipt     *types.Receipt
	sent        []*types.Transaction
	estimateGas uint64
}

func (m *mockBackend) BlockNumber(context.Context) (uint64, error) {
	return m.tip, nil
}

func (m *mockBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{
		Number:  new(big.Int).SetUint64(m.tip),
		BaseFee: big.NewInt(1_000_000_000),
	}, nil
}

func (m *mockBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 7, nil
}

func (m *mockBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (m *mockBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return m.estimateGas, nil
}

func (m *mockBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	m.sent = append(m.sent, tx)
	return nil
}

func (m *mockBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return m.receipt, nil
}

func testLogger() log.Logger {
	l := log.New()
	l.SetHandler(log.DiscardHandler())
	return l
}

func passthroughSigner(_ context.Context, _ common.Address, tx *types.Transaction) (*types.Transaction, error) {
	return tx, nil
}

func newTestManager(backend *mockBackend) *SimpleTxManager {
	return NewSimpleTxManager(testLogger(), Config{
		Backend:              backend,
		ChainID:              big.NewInt(901),
		TxSendTimeout:        5 * time.Second,
		NetworkTimeout:       time.Second,
		ReceiptQueryInterval: 10 * time.Millisecond,
		NumConfirmations:     3,
		Signer:               passthroughSigner,
		From:                 common.HexToAddress("0x01"),
	})
}

func TestSendWaitsForConfirmations(t *testing.T) {
	to := common.HexToAddress("0x02")
	backend := &mockBackend{
		tip:         110,
		estimateGas: 21_000,
		receipt: &types.Receipt{
			TxHash:      common.HexToHash("0x03"),
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(100),
		},
	}
	m := newTestManager(backend)

	receipt, err := m.Send(context.Background(), TxCandidate{
		TxData: []byte{0x01},
		To:     &to,
		Value:  big.NewInt(1),
	})
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	require.Len(t, backend.sent, 1)
	require.Equal(t, uint64(7), backend.sent[0].Nonce())
	require.Equal(t, uint64(21_000), backend.sent[0].Gas())
}

func TestSendReportsRevertedTx(t *testing.T) {
	to := common.HexToAddress("0x02")
	backend := &mockBackend{
		tip:         110,
		estimateGas: 21_000,
		receipt: &types.Receipt{
			TxHash:      common.HexToHash("0x03"),
			Status:      types.ReceiptStatusFailed,
			BlockNumber: big.NewInt(100),
		},
	}
	m := newTestManager(backend)

	_, err := m.Send(context.Background(), TxCandidate{TxData: []byte{0x01}, To: &to})
	require.ErrorIs(t, err, ErrTransactionReverted)
}

func TestSendTimesOutBeforeConfirmation(t *testing.T) {
	to := common.HexToAddress("0x02")
	backend := &mockBackend{
		tip:         100, // inclusion block, zero extra confirmations
		estimateGas: 21_000,
		receipt: &types.Receipt{
			TxHash:      common.HexToHash("0x03"),
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(100),
		},
	}
	m := newTestManager(backend)
	m.cfg.TxSendTimeout = 50 * time.Millisecond

	_, err := m.Send(context.Background(), TxCandidate{TxData: []byte{0x01}, To: &to})
	require.Error(t, err)
}
