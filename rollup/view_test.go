package rollup

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/op-succinct/fault-proof/bindings/bindings"
	"github.com/op-succinct/fault-proof/utils/service/txmgr"
)

var testRollupAddr = common.HexToAddress("0x00000000000000000000000000000000000000aa")

func testLogger() log.Logger {
	l := log.New()
	l.SetHandler(log.DiscardHandler())
	return l
}

type mockContract struct {
	anchor       uint32
	length       *big.Int
	proposals    map[string]bindings.RollupProposal
	resolvable   map[string]bool
	needsDefense map[string]bool
	gameOver     map[string]bool
	credit       map[common.Address]*big.Int
}

func newMockContract() *mockContract {
	return &mockContract{
		length:       big.NewInt(0),
		proposals:    make(map[string]bindings.RollupProposal),
		resolvable:   make(map[string]bool),
		needsDefense: make(map[string]bool),
		gameOver:     make(map[string]bool),
		credit:       make(map[common.Address]*big.Int),
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

func (m *mockContract) IsResolvable(_ *bind.CallOpts, id *big.Int) (bool, error) {
	return m.resolvable[id.String()], nil
}

func (m *mockContract) NeedsDefense(_ *bind.CallOpts, id *big.Int) (bool, error) {
	return m.needsDefense[id.String()], nil
}

func (m *mockContract) GameOver(_ *bind.CallOpts, id *big.Int) (bool, error) {
	return m.gameOver[id.String()], nil
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

func newMockOracle() *mockOracle {
	return &mockOracle{
		roots:   make(map[string]common.Hash),
		missing: make(map[string]bool),
		head:    &types.Header{Number: big.NewInt(10_000), Time: 1_000},
	}
}

func (m *mockOracle) OutputRootAtBlock(_ context.Context, n *big.Int) (common.Hash, error) {
	if m.missing[n.String()] {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrBlockNotFound, n)
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
	// errOn maps calldata (hex) to an error returned instead of a receipt.
	errOn map[string]error
	logs  []*types.Log
}

func (m *mockSender) From() common.Address {
	return m.from
}

func (m *mockSender) Send(_ context.Context, candidate txmgr.TxCandidate) (*types.Receipt, error) {
	if err, ok := m.errOn[common.Bytes2Hex(candidate.TxData)]; ok && err != nil {
		return nil, err
	}
	m.sent = append(m.sent, candidate)
	return &types.Receipt{
		TxHash:      common.HexToHash("0x01"),
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(1),
		Logs:        m.logs,
	}, nil
}

func newTestView(t *testing.T, contract Contract, oracle OutputOracle) *View {
	view, err := NewView(testLogger(), contract, oracle, testRollupAddr)
	require.NoError(t, err)
	return view
}

func proposalAt(block int64, root common.Hash, status ProposalStatus) bindings.RollupProposal {
	return bindings.RollupProposal{
		RootClaim:      [32]byte(root),
		L2BlockNumber:  big.NewInt(block),
		Deadline:       2_000,
		ParentIndex:    ParentIndexSentinel,
		ProposalStatus: uint8(status),
	}
}

func TestLatestValidProposal(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()
	goodRoot := common.HexToHash("0x01")
	badRoot := common.HexToHash("0xdead")
	oracle.roots[big.NewInt(1800).String()] = goodRoot
	oracle.roots[big.NewInt(3600).String()] = goodRoot

	contract.setProposal(0, proposalAt(1800, goodRoot, Resolved))
	contract.setProposal(1, proposalAt(3600, badRoot, Unchallenged))

	view := newTestView(t, contract, oracle)

	// The newest proposal has a bogus claim, so the walk lands on proposal 0.
	block, id, ok, err := view.LatestValidProposal(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, id.Cmp(big.NewInt(0)), "want proposal id 0, got %v", id)
	require.Equal(t, big.NewInt(1800), block)
}

func TestLatestValidProposalNoneValid(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()
	oracle.roots[big.NewInt(1800).String()] = common.HexToHash("0x01")
	contract.setProposal(0, proposalAt(1800, common.HexToHash("0xdead"), Unchallenged))

	view := newTestView(t, contract, oracle)

	_, _, ok, err := view.LatestValidProposal(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLatestValidProposalEmpty(t *testing.T) {
	view := newTestView(t, newMockContract(), newMockOracle())

	_, _, ok, err := view.LatestValidProposal(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOldestChallengeable(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()
	goodRoot := common.HexToHash("0x01")
	oracle.roots[big.NewInt(1800).String()] = goodRoot
	oracle.roots[big.NewInt(3600).String()] = goodRoot
	oracle.roots[big.NewInt(5400).String()] = goodRoot

	contract.setProposal(0, proposalAt(1800, goodRoot, Resolved))
	// id 1 is valid, id 2 carries a bogus claim.
	contract.setProposal(1, proposalAt(3600, goodRoot, Unchallenged))
	contract.setProposal(2, proposalAt(5400, common.HexToHash("0xdead"), Unchallenged))

	view := newTestView(t, contract, oracle)

	id, ok, err := view.OldestChallengeable(context.Background(), 100)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, big.NewInt(2), id)
}

func TestOldestChallengeableSkipsExpiredDeadline(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()
	oracle.roots[big.NewInt(3600).String()] = common.HexToHash("0x01")

	expired := proposalAt(3600, common.HexToHash("0xdead"), Unchallenged)
	expired.Deadline = 500 // before the current L2 timestamp of 1000
	contract.setProposal(0, proposalAt(1800, common.HexToHash("0x01"), Resolved))
	contract.setProposal(1, expired)

	view := newTestView(t, contract, oracle)

	_, ok, err := view.OldestChallengeable(context.Background(), 100)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOldestChallengeableSurfacesMissingBlock(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()
	oracle.missing[big.NewInt(99_999).String()] = true

	contract.setProposal(0, proposalAt(1800, common.HexToHash("0x01"), Resolved))
	contract.setProposal(1, proposalAt(99_999, common.HexToHash("0xbeef"), Unchallenged))

	view := newTestView(t, contract, oracle)

	// The claimed block cannot be found: the proposal must still surface so
	// the challenger can run its future-block handling.
	id, ok, err := view.OldestChallengeable(context.Background(), 100)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, big.NewInt(1), id)
}

func TestOldestDefensibleSkipsMissingBlock(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()
	oracle.missing[big.NewInt(3600).String()] = true

	contract.setProposal(0, proposalAt(1800, common.HexToHash("0x01"), Resolved))
	contract.setProposal(1, proposalAt(3600, common.HexToHash("0x01"), Challenged))

	view := newTestView(t, contract, oracle)

	_, ok, err := view.OldestDefensible(context.Background(), 100)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOldestDefensible(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()
	goodRoot := common.HexToHash("0x01")
	oracle.roots[big.NewInt(3600).String()] = goodRoot

	contract.setProposal(0, proposalAt(1800, goodRoot, Resolved))
	contract.setProposal(1, proposalAt(3600, goodRoot, Challenged))

	view := newTestView(t, contract, oracle)

	id, ok, err := view.OldestDefensible(context.Background(), 100)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, big.NewInt(1), id)
}

func TestScanEmptyWindow(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()
	contract.setProposal(0, proposalAt(1800, common.HexToHash("0x01"), Resolved))
	contract.anchor = 0 // anchor+1 == length: nothing to scan

	view := newTestView(t, contract, oracle)

	_, ok, err := view.OldestChallengeable(context.Background(), 100)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = view.OldestDefensible(context.Background(), 100)
	require.NoError(t, err)
	require.False(t, ok)

	sender := &mockSender{from: common.HexToAddress("0x01")}
	resolved, err := view.ResolveProposals(context.Background(), RoleProposer, 100, sender)
	require.NoError(t, err)
	require.Zero(t, resolved)
	require.Empty(t, sender.sent)
}

func TestShouldAttemptResolution(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()

	root := proposalAt(1800, common.HexToHash("0x01"), Resolved)
	contract.setProposal(0, root)

	child := proposalAt(3600, common.HexToHash("0x02"), Unchallenged)
	child.ParentIndex = 0
	contract.setProposal(1, child)

	grandchild := proposalAt(5400, common.HexToHash("0x03"), Unchallenged)
	grandchild.ParentIndex = 1
	contract.setProposal(2, grandchild)

	view := newTestView(t, contract, oracle)
	ctx := context.Background()

	ok, err := view.ShouldAttemptResolution(ctx, big.NewInt(0))
	require.NoError(t, err)
	require.True(t, ok, "root proposals are always resolvable")

	ok, err = view.ShouldAttemptResolution(ctx, big.NewInt(1))
	require.NoError(t, err)
	require.True(t, ok, "parent is resolved")

	ok, err = view.ShouldAttemptResolution(ctx, big.NewInt(2))
	require.NoError(t, err)
	require.False(t, ok, "parent is not resolved")
}

func TestTryResolveProposalRoleGating(t *testing.T) {
	us := common.HexToAddress("0x01")
	them := common.HexToAddress("0x02")
	ctx := context.Background()

	contract := newMockContract()
	oracle := newMockOracle()

	unchallenged := proposalAt(1800, common.HexToHash("0x01"), Unchallenged)
	contract.setProposal(0, unchallenged)
	contract.resolvable[big.NewInt(0).String()] = true

	ours := proposalAt(3600, common.HexToHash("0x02"), Challenged)
	ours.Challenger = us
	contract.setProposal(1, ours)
	contract.resolvable[big.NewInt(1).String()] = true
	contract.gameOver[big.NewInt(1).String()] = true

	theirs := proposalAt(5400, common.HexToHash("0x03"), Challenged)
	theirs.Challenger = them
	contract.setProposal(2, theirs)
	contract.resolvable[big.NewInt(2).String()] = true
	contract.gameOver[big.NewInt(2).String()] = true

	pending := proposalAt(7200, common.HexToHash("0x04"), Unchallenged)
	contract.setProposal(3, pending)
	// not resolvable

	view := newTestView(t, contract, oracle)
	sender := &mockSender{from: us}

	// Proposer resolves unchallenged proposals only.
	action, err := view.TryResolveProposal(ctx, big.NewInt(0), RoleProposer, sender)
	require.NoError(t, err)
	require.Equal(t, ActionPerformed, action)

	action, err = view.TryResolveProposal(ctx, big.NewInt(1), RoleProposer, sender)
	require.NoError(t, err)
	require.Equal(t, ActionSkipped, action)

	// Challenger resolves only its own challenges.
	action, err = view.TryResolveProposal(ctx, big.NewInt(1), RoleChallenger, sender)
	require.NoError(t, err)
	require.Equal(t, ActionPerformed, action)

	action, err = view.TryResolveProposal(ctx, big.NewInt(2), RoleChallenger, sender)
	require.NoError(t, err)
	require.Equal(t, ActionSkipped, action)

	// Not resolvable yet.
	action, err = view.TryResolveProposal(ctx, big.NewInt(3), RoleProposer, sender)
	require.NoError(t, err)
	require.Equal(t, ActionSkipped, action)

	// Our challenge, but the dispute clock has not elapsed.
	contract.gameOver[big.NewInt(1).String()] = false
	action, err = view.TryResolveProposal(ctx, big.NewInt(1), RoleChallenger, sender)
	require.NoError(t, err)
	require.Equal(t, ActionSkipped, action)

	require.Len(t, sender.sent, 2)
}

func TestResolveProposalsSkipsOnStuckParent(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()

	root := proposalAt(1800, common.HexToHash("0x01"), Resolved)
	contract.setProposal(0, root)

	stuckParent := proposalAt(3600, common.HexToHash("0x02"), Challenged)
	stuckParent.ParentIndex = 0
	contract.setProposal(1, stuckParent)

	child := proposalAt(5400, common.HexToHash("0x03"), Unchallenged)
	child.ParentIndex = 1
	contract.setProposal(2, child)
	contract.resolvable[big.NewInt(2).String()] = true
	contract.anchor = 1

	view := newTestView(t, contract, oracle)
	sender := &mockSender{from: common.HexToAddress("0x01")}

	// Proposal 2's parent is challenged, not resolved: the whole window is
	// skipped and no transactions go out.
	resolved, err := view.ResolveProposals(context.Background(), RoleProposer, 100, sender)
	require.NoError(t, err)
	require.Zero(t, resolved)
	require.Empty(t, sender.sent)
}

func TestResolveProposalsResolvesWindow(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()

	root := proposalAt(1800, common.HexToHash("0x01"), Resolved)
	contract.setProposal(0, root)
	for i := int64(1); i <= 3; i++ {
		p := proposalAt(1800*(i+1), common.HexToHash("0x02"), Unchallenged)
		p.ParentIndex = uint32(i - 1)
		contract.setProposal(i, p)
		contract.resolvable[big.NewInt(i).String()] = true
	}

	view := newTestView(t, contract, oracle)
	sender := &mockSender{from: common.HexToAddress("0x01")}

	resolved, err := view.ResolveProposals(context.Background(), RoleProposer, 100, sender)
	require.NoError(t, err)
	require.Equal(t, 3, resolved)
	require.Len(t, sender.sent, 3)
}

func TestResolveProposalsToleratesStuckProposal(t *testing.T) {
	contract := newMockContract()
	oracle := newMockOracle()

	root := proposalAt(1800, common.HexToHash("0x01"), Resolved)
	contract.setProposal(0, root)
	for i := int64(1); i <= 3; i++ {
		p := proposalAt(1800*(i+1), common.HexToHash("0x02"), Unchallenged)
		p.ParentIndex = uint32(i - 1)
		contract.setProposal(i, p)
		contract.resolvable[big.NewInt(i).String()] = true
	}

	view := newTestView(t, contract, oracle)

	rollupABI, err := bindings.RollupMetaData.GetAbi()
	require.NoError(t, err)
	stuckCalldata, err := rollupABI.Pack("resolveProposal", big.NewInt(2))
	require.NoError(t, err)

	// Proposal 2's transaction keeps failing; 1 and 3 must still resolve.
	sender := &mockSender{
		from:  common.HexToAddress("0x01"),
		errOn: map[string]error{common.Bytes2Hex(stuckCalldata): errors.New("nonce too low")},
	}
	resolved, err := view.ResolveProposals(context.Background(), RoleProposer, 100, sender)
	require.NoError(t, err)
	require.Equal(t, 2, resolved)
	require.Len(t, sender.sent, 2)
}
