package challenger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/op-succinct/fault-proof/bindings/bindings"
	"github.com/op-succinct/fault-proof/components/challenger/metrics"
	"github.com/op-succinct/fault-proof/rollup"
	"github.com/op-succinct/fault-proof/utils/service/txmgr"
)

const (
	challengeSelector   = "6c541de1"
	claimCreditSelector = "60e27464"
)

var testRollupAddr = common.HexToAddress("0x00000000000000000000000000000000000000aa")

func testLogger() log.Logger {
	l := log.New()
	l.SetHandler(log.DiscardHandler())
	return l
}

type mockContract struct {
	anchor    uint32
	length    *big.Int
	proposals map[string]bindings.RollupProposal
	credit    map[common.Address]*big.Int
}

func newMockContract() *mockContract {
	return &mockContract{
		length:    big.NewInt(0),
		proposals: make(map[string]bindings.RollupProposal),
		credit:    make(map[common.Address]*big.Int),
	}
}

func (m *mockContract) setProposal(id int64, p bindings.RollupProposal) {
	m.proposals[big.NewInt(id).String()] = p
	if next := big.NewInt(id + 1); m.length.Cmp(next) < 0 {
		m.length = next
	}
}

func (m *mockContract) AnchorProposalId(*bind.CallOpts) (uint32, error) {
	return m.anchor, nil
}

func (m *mockContract) GetProposal(_ *bind.CallOpts, id *big.Int) (bindings.RollupProposal, error) {
	p, ok := m.proposals[id.String()]
	if !ok {
		return bindings.RollupProposal{}, fmt.Errorf("no proposal %v", id)
	}
	return p, nil
}

func (m *mockContract) GetProposalsLength(*bind.CallOpts) (*big.Int, error) {
	return new(big.Int).Set(m.length), nil
}

func (m *mockContract) IsResolvable(*bind.CallOpts, *big.Int) (bool, error) {
	return false, nil
}

func (m *mockContract) NeedsDefense(*bind.CallOpts, *big.Int) (bool, error) {
	return false, nil
}

func (m *mockContract) GameOver(*bind.CallOpts, *big.Int) (bool, error) {
	return false, nil
}

func (m *mockContract) Credit(_ *bind.CallOpts, addr common.Address) (*big.Int, error) {
	if c, ok := m.credit[addr]; ok {
		return c, nil
	}
	return big.NewInt(0), nil
}

type mockOracle struct {
	roots   map[string]common.Hash
	missing map[string]bool
	head    *types.Header
}

func newMockOracle(tip int64) *mockOracle {
	return &mockOracle{
		roots:   make(map[string]common.Hash),
		missing: make(map[string]bool),
		head:    &types.Header{Number: big.NewInt(tip), Time: 1_000},
	}
}

func (m *mockOracle) OutputRootAtBlock(_ context.Context, n *big.Int) (common.Hash, error) {
	if m.missing[n.String()] {
		return common.Hash{}, fmt.Errorf("%w: %v", rollup.ErrBlockNotFound, n)
	}
	root, ok := m.roots[n.String()]
	if !ok {
		return common.Hash{}, errors.New("rpc failure")
	}
	return root, nil
}

func (m *mockOracle) LatestHeader(context.Context) (*types.Header, error) {
	return m.head, nil
}

type mockSender struct {
	from common.Address
	sent []txmgr.TxCandidate
}

func (m *mockSender) From() common.Address {
	return m.from
}

func (m *mockSender) Send(_ context.Context, candidate txmgr.TxCandidate) (*types.Receipt, error) {
	m.sent = append(m.sent, candidate)
	return &types.Receipt{
		TxHash:      common.HexToHash("0x01"),
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(1),
	}, nil
}

func newTestChallenger(t *testing.T, contract *mockContract, oracle *mockOracle, cfg Config) (*Challenger, *mockSender) {
	l := testLogger()
	view, err := rollup.NewView(l, contract, oracle, testRollupAddr)
	require.NoError(t, err)
	sender := &mockSender{from: common.HexToAddress("0x01")}
	return &Challenger{
		cfg:            cfg,
		l:              l,
		metr:           metrics.NewMetrics(prometheus.NewRegistry()),
		view:           view,
		l2:             oracle,
		sender:         sender,
		challengerBond: big.NewInt(1e18),
		rng:            rand.New(rand.NewSource(42)),
	}, sender
}

func proposalAt(block int64, root common.Hash, status rollup.ProposalStatus) bindings.RollupProposal {
	return bindings.RollupProposal{
		RootClaim:      [32]byte(root),
		L2BlockNumber:  big.NewInt(block),
		Deadline:       2_000,
		ParentIndex:    rollup.ParentIndexSentinel,
		ProposalStatus: uint8(status),
	}
}

func TestChallengeInvalidProposal(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle(10_000)
	goodRoot := common.HexToHash("0x01")
	oracle.roots[big.NewInt(1800).String()] = goodRoot
	oracle.roots[big.NewInt(3600).String()] = goodRoot

	contract.setProposal(0, proposalAt(1800, goodRoot, rollup.Resolved))
	contract.setProposal(1, proposalAt(3600, common.HexToHash("0xdead"), rollup.Unchallenged))

	c, sender := newTestChallenger(t, contract, oracle, Config{MaxProposalsToCheckForChallenge: 100})

	require.NoError(t, c.handleProposalChallenges(context.Background()))
	require.Len(t, sender.sent, 1)
	require.Equal(t, challengeSelector, common.Bytes2Hex(sender.sent[0].TxData[:4]))
	require.Equal(t, big.NewInt(1e18), sender.sent[0].Value, "challenge must escrow the challenger bond")
}

func TestNoChallengeWhenAllValid(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle(10_000)
	goodRoot := common.HexToHash("0x01")
	oracle.roots[big.NewInt(1800).String()] = goodRoot
	oracle.roots[big.NewInt(3600).String()] = goodRoot

	contract.setProposal(0, proposalAt(1800, goodRoot, rollup.Resolved))
	contract.setProposal(1, proposalAt(3600, goodRoot, rollup.Unchallenged))

	c, sender := newTestChallenger(t, contract, oracle, Config{MaxProposalsToCheckForChallenge: 100})

	// Malicious challenge percentage is zero: a valid proposal must never be
	// challenged.
	require.NoError(t, c.handleProposalChallenges(context.Background()))
	require.Empty(t, sender.sent)
}

func TestMaliciousChallengeKnob(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle(10_000)
	goodRoot := common.HexToHash("0x01")
	oracle.roots[big.NewInt(3600).String()] = goodRoot

	contract.setProposal(0, proposalAt(1800, common.HexToHash("0x02"), rollup.Resolved))
	contract.setProposal(1, proposalAt(3600, goodRoot, rollup.Unchallenged))

	// At 100 percent every draw fires, so the valid proposal is challenged.
	c, sender := newTestChallenger(t, contract, oracle, Config{
		MaxProposalsToCheckForChallenge: 100,
		MaliciousChallengePercentage:    100,
	})

	require.NoError(t, c.handleProposalChallenges(context.Background()))
	require.Len(t, sender.sent, 1)
	require.Equal(t, challengeSelector, common.Bytes2Hex(sender.sent[0].TxData[:4]))
}

func TestFutureBlockChallenge(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle(10_000)
	oracle.roots[big.NewInt(1800).String()] = common.HexToHash("0x01")
	oracle.missing[big.NewInt(10_100).String()] = true

	contract.setProposal(0, proposalAt(1800, common.HexToHash("0x01"), rollup.Resolved))
	contract.setProposal(1, proposalAt(10_100, common.HexToHash("0xbeef"), rollup.Unchallenged))

	c, sender := newTestChallenger(t, contract, oracle, Config{MaxProposalsToCheckForChallenge: 100})

	// The claim is beyond the current tip: unfalsifiable, challenge it.
	require.NoError(t, c.handleProposalChallenges(context.Background()))
	require.Len(t, sender.sent, 1)
	require.Equal(t, challengeSelector, common.Bytes2Hex(sender.sent[0].TxData[:4]))
}

func TestDataAvailabilityFailure(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle(10_000)
	oracle.roots[big.NewInt(1800).String()] = common.HexToHash("0x01")
	oracle.missing[big.NewInt(9_999).String()] = true

	contract.setProposal(0, proposalAt(1800, common.HexToHash("0x01"), rollup.Resolved))
	contract.setProposal(1, proposalAt(9_999, common.HexToHash("0xbeef"), rollup.Unchallenged))

	c, sender := newTestChallenger(t, contract, oracle, Config{MaxProposalsToCheckForChallenge: 100})

	// The block is below the chain head but cannot be served: the node is
	// inconsistent and the tick must fail loudly, not challenge.
	err := c.handleProposalChallenges(context.Background())
	require.ErrorIs(t, err, rollup.ErrDataAvailability)
	require.Empty(t, sender.sent)
}

func TestBondClaimingSkippedOnZeroCredit(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle(10_000)

	c, sender := newTestChallenger(t, contract, oracle, Config{})

	action, err := c.handleBondClaiming(context.Background())
	require.NoError(t, err)
	require.Equal(t, rollup.ActionSkipped, action)
	require.Empty(t, sender.sent)
}

func TestBondClaiming(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle(10_000)

	c, sender := newTestChallenger(t, contract, oracle, Config{})
	contract.credit[sender.from] = big.NewInt(5e18)

	action, err := c.handleBondClaiming(context.Background())
	require.NoError(t, err)
	require.Equal(t, rollup.ActionPerformed, action)
	require.Len(t, sender.sent, 1)
	require.Equal(t, claimCreditSelector, common.Bytes2Hex(sender.sent[0].TxData[:4]))
}
