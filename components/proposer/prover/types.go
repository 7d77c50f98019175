package prover

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ProofMode identifies the proof system a proof was produced under.
type ProofMode string

const (
	ProofModeCompressed ProofMode = "compressed"
	ProofModeGroth16    ProofMode = "groth16"
)

// RangeProofCycleLimit bounds the guest execution when requesting a range
// proof from the proving network.
const RangeProofCycleLimit = uint64(19_000_000_000)

// HostedFulfillmentStrategy asks the proving network to fulfill the request
// on its own capacity.
const HostedFulfillmentStrategy = "hosted"

// Proof is a proof returned by the proving service. Mock proofs carry the
// same public values as real ones and an empty seal, so the on-chain
// submission shape is identical in both modes.
type Proof struct {
	Mode         ProofMode     `json:"mode"`
	PublicValues hexutil.Bytes `json:"public_values"`
	Bytes        hexutil.Bytes `json:"proof"`
}

// BootInfo is the public commitment of a range proof: the derivation view and
// the claimed state transition.
type BootInfo struct {
	L1Head           common.Hash
	L2PreRoot        common.Hash
	L2PostRoot       common.Hash
	L2BlockNumber    uint64
	RollupConfigHash common.Hash
}

// bootInfoArguments is the ABI layout of the range proof public values.
var bootInfoArguments = abi.Arguments{
	{Name: "l1Head", Type: mustNewType("bytes32")},
	{Name: "l2PreRoot", Type: mustNewType("bytes32")},
	{Name: "l2PostRoot", Type: mustNewType("bytes32")},
	{Name: "l2BlockNumber", Type: mustNewType("uint64")},
	{Name: "rollupConfigHash", Type: mustNewType("bytes32")},
}

func mustNewType(t string) abi.Type {
	ty, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Errorf("invalid abi type %s: %w", t, err))
	}
	return ty
}

// UnmarshalBootInfo decodes the public values of a range proof.
func UnmarshalBootInfo(publicValues []byte) (*BootInfo, error) {
	values, err := bootInfoArguments.Unpack(publicValues)
	if err != nil {
		return nil, fmt.Errorf("failed to decode boot info: %w", err)
	}
	return &BootInfo{
		L1Head:           common.Hash(values[0].([32]byte)),
		L2PreRoot:        common.Hash(values[1].([32]byte)),
		L2PostRoot:       common.Hash(values[2].([32]byte)),
		L2BlockNumber:    values[3].(uint64),
		RollupConfigHash: common.Hash(values[4].([32]byte)),
	}, nil
}

// MarshalBootInfo encodes boot info into range proof public values, the
// inverse of UnmarshalBootInfo. Only the tests call it.
func MarshalBootInfo(info *BootInfo) ([]byte, error) {
	return bootInfoArguments.Pack(
		[32]byte(info.L1Head),
		[32]byte(info.L2PreRoot),
		[32]byte(info.L2PostRoot),
		info.L2BlockNumber,
		[32]byte(info.RollupConfigHash),
	)
}

// AggregationInput is the stdin of the aggregation guest. It binds the range
// proof, its boot info, the L1 header chain up to the boot info's l1Head, the
// range verifying key and the prover identity.
type AggregationInput struct {
	RangeProof    *Proof          `json:"range_proof"`
	BootInfo      *BootInfo       `json:"boot_info"`
	Headers       []hexutil.Bytes `json:"headers"`
	RangeVKey     common.Hash     `json:"range_vkey"`
	L1Head        common.Hash     `json:"l1_head"`
	ProverAddress common.Address  `json:"prover_address"`
}
