package prover

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/op-succinct/fault-proof/bindings/bindings"
	"github.com/op-succinct/fault-proof/rollup"
	"github.com/op-succinct/fault-proof/utils/service/txmgr"
)

const proveSelector = "1eb3b352"

var (
	testRollupAddr = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testProverAddr = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	testRangeVKey  = common.HexToHash("0x00000000000000000000000000000000000000000000000000000000000000cc")
)

func testLogger() log.Logger {
	l := log.New()
	l.SetHandler(log.DiscardHandler())
	return l
}

type mockContract struct {
	proposals map[string]bindings.RollupProposal
}

func (m *mockContract) AnchorProposalId(*bind.CallOpts) (uint32, error) {
	return 0, nil
}

func (m *mockContract) GetProposal(_ *bind.CallOpts, id *big.Int) (bindings.RollupProposal, error) {
	p, ok := m.proposals[id.String()]
	if !ok {
		return bindings.RollupProposal{}, fmt.Errorf("no proposal %v", id)
	}
	return p, nil
}

func (m *mockContract) GetProposalsLength(*bind.CallOpts) (*big.Int, error) {
	return big.NewInt(int64(len(m.proposals))), nil
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

func (m *mockContract) Credit(*bind.CallOpts, common.Address) (*big.Int, error) {
	return big.NewInt(0), nil
}

type mockOracle struct{}

func (mockOracle) OutputRootAtBlock(context.Context, *big.Int) (common.Hash, error) {
	return common.Hash{}, nil
}

func (mockOracle) LatestHeader(context.Context) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(10_000), Time: 1_000}, nil
}

type mockHost struct {
	witnessStart  uint64
	witnessEnd    uint64
	witnessL1Head common.Hash
	stdin         hexutil.Bytes
	headers       []hexutil.Bytes
}

func (m *mockHost) FinalizedL2BlockNumber(context.Context, uint64) (uint64, bool, error) {
	return 0, false, nil
}

func (m *mockHost) FetchRangeWitness(_ context.Context, start, end uint64, l1Head common.Hash, _ bool) (hexutil.Bytes, error) {
	m.witnessStart = start
	m.witnessEnd = end
	m.witnessL1Head = l1Head
	return m.stdin, nil
}

func (m *mockHost) HeaderPreimages(context.Context, common.Hash) ([]hexutil.Bytes, error) {
	return m.headers, nil
}

type mockProofClient struct {
	rangePublicValues []byte
	aggStdin          []byte
	aggBytes          hexutil.Bytes
}

func (m *mockProofClient) RangeVKey() common.Hash {
	return testRangeVKey
}

func (m *mockProofClient) RangeProof(_ context.Context, stdin hexutil.Bytes) (*Proof, error) {
	return &Proof{Mode: ProofModeCompressed, PublicValues: m.rangePublicValues}, nil
}

func (m *mockProofClient) AggregationProof(_ context.Context, stdin []byte) (*Proof, error) {
	m.aggStdin = stdin
	return &Proof{Mode: ProofModeGroth16, Bytes: m.aggBytes}, nil
}

type mockSender struct {
	sent []txmgr.TxCandidate
}

func (m *mockSender) From() common.Address {
	return common.HexToAddress("0x01")
}

func (m *mockSender) Send(_ context.Context, candidate txmgr.TxCandidate) (*types.Receipt, error) {
	m.sent = append(m.sent, candidate)
	return &types.Receipt{
		TxHash:      common.HexToHash("0x99"),
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(1),
	}, nil
}

func newTestPipeline(t *testing.T, contract *mockContract, host *mockHost, client ProofClient) (*Pipeline, *mockSender) {
	view, err := rollup.NewView(testLogger(), contract, mockOracle{}, testRollupAddr)
	require.NoError(t, err)
	sender := &mockSender{}
	return NewPipeline(testLogger(), view, host, client, sender, testProverAddr, 1800, false), sender
}

func challengedProposal(block int64, l1Head common.Hash, status rollup.ProposalStatus) bindings.RollupProposal {
	return bindings.RollupProposal{
		RootClaim:      [32]byte(common.HexToHash("0x01")),
		L1Head:         [32]byte(l1Head),
		L2BlockNumber:  big.NewInt(block),
		Deadline:       2_000,
		ParentIndex:    rollup.ParentIndexSentinel,
		ProposalStatus: uint8(status),
	}
}

func TestProveSequencesPipeline(t *testing.T) {
	l1Head := common.HexToHash("0xabcd")
	contract := &mockContract{proposals: map[string]bindings.RollupProposal{
		big.NewInt(1).String(): challengedProposal(3600, l1Head, rollup.Challenged),
	}}

	bootInfo := &BootInfo{
		L1Head:           l1Head,
		L2PreRoot:        common.HexToHash("0x02"),
		L2PostRoot:       common.HexToHash("0x03"),
		L2BlockNumber:    3600,
		RollupConfigHash: common.HexToHash("0x04"),
	}
	publicValues, err := MarshalBootInfo(bootInfo)
	require.NoError(t, err)

	host := &mockHost{
		stdin:   hexutil.Bytes{0x01, 0x02},
		headers: []hexutil.Bytes{{0xaa}, {0xbb}},
	}
	client := &mockProofClient{
		rangePublicValues: publicValues,
		aggBytes:          hexutil.Bytes{0x12, 0x34},
	}
	pipeline, sender := newTestPipeline(t, contract, host, client)

	txHash, err := pipeline.Prove(context.Background(), big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x99"), txHash)

	// The witness request covers [end-interval, end] pinned to the
	// proposal's L1 head.
	require.Equal(t, uint64(1800), host.witnessStart)
	require.Equal(t, uint64(3600), host.witnessEnd)
	require.Equal(t, l1Head, host.witnessL1Head)

	// The aggregation stdin binds the range proof, boot info, headers, vkey
	// and prover address.
	var aggInput AggregationInput
	require.NoError(t, json.Unmarshal(client.aggStdin, &aggInput))
	require.Equal(t, testRangeVKey, aggInput.RangeVKey)
	require.Equal(t, l1Head, aggInput.L1Head)
	require.Equal(t, testProverAddr, aggInput.ProverAddress)
	require.Equal(t, bootInfo.L2BlockNumber, aggInput.BootInfo.L2BlockNumber)
	require.Len(t, aggInput.Headers, 2)

	// The aggregation proof bytes are what lands on-chain.
	require.Len(t, sender.sent, 1)
	require.Equal(t, proveSelector, common.Bytes2Hex(sender.sent[0].TxData[:4]))
	require.Contains(t, common.Bytes2Hex(sender.sent[0].TxData), "1234")
}

func TestProvePhaseGating(t *testing.T) {
	l1Head := common.HexToHash("0xabcd")

	tests := []struct {
		name    string
		status  rollup.ProposalStatus
		wantErr error
	}{
		{"unchallenged", rollup.Unchallenged, rollup.ErrWrongPhase},
		{"already proved", rollup.ChallengedAndValidProofProvided, rollup.ErrAlreadyProved},
		{"already resolved", rollup.Resolved, rollup.ErrAlreadyResolved},
		{"unchallenged with proof", rollup.UnchallengedAndValidProofProvided, rollup.ErrWrongPhase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contract := &mockContract{proposals: map[string]bindings.RollupProposal{
				big.NewInt(1).String(): challengedProposal(3600, l1Head, tt.status),
			}}
			pipeline, sender := newTestPipeline(t, contract, &mockHost{}, &mockProofClient{})

			_, err := pipeline.Prove(context.Background(), big.NewInt(1))
			require.ErrorIs(t, err, tt.wantErr)
			require.Empty(t, sender.sent)
		})
	}
}

func TestBootInfoRoundTrip(t *testing.T) {
	info := &BootInfo{
		L1Head:           common.HexToHash("0x11"),
		L2PreRoot:        common.HexToHash("0x22"),
		L2PostRoot:       common.HexToHash("0x33"),
		L2BlockNumber:    1234,
		RollupConfigHash: common.HexToHash("0x44"),
	}
	encoded, err := MarshalBootInfo(info)
	require.NoError(t, err)

	decoded, err := UnmarshalBootInfo(encoded)
	require.NoError(t, err)
	require.Equal(t, info, decoded)
}
