package rollup

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestComputeOutputRoot(t *testing.T) {
	stateRoot := common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	storageRoot := common.HexToHash("0x2222222222222222222222222222222222222222222222222222222222222222")
	blockHash := common.HexToHash("0x3333333333333333333333333333333333333333333333333333333333333333")

	// The preimage is abi.encode(uint32(0), stateRoot, storageRoot, blockHash):
	// four 32-byte words, the version word left-padded.
	var preimage []byte
	preimage = append(preimage, make([]byte, 32)...)
	preimage = append(preimage, stateRoot.Bytes()...)
	preimage = append(preimage, storageRoot.Bytes()...)
	preimage = append(preimage, blockHash.Bytes()...)

	want := crypto.Keccak256Hash(preimage)
	require.Equal(t, want, ComputeOutputRoot(stateRoot, storageRoot, blockHash))
}

func TestComputeOutputRootDeterministic(t *testing.T) {
	a := common.HexToHash("0xaa")
	b := common.HexToHash("0xbb")
	c := common.HexToHash("0xcc")
	require.Equal(t, ComputeOutputRoot(a, b, c), ComputeOutputRoot(a, b, c))
	require.NotEqual(t, ComputeOutputRoot(a, b, c), ComputeOutputRoot(c, b, a))
}
