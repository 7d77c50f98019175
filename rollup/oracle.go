package rollup

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// L2ToL1MessagePasserAddr is the predeploy whose storage root is committed to
// by every output root.
var L2ToL1MessagePasserAddr = common.HexToAddress("0x4200000000000000000000000000000000000016")

// outputRootArguments is the ABI layout of the output root preimage:
// abi.encode(uint32(0), stateRoot, messagePasserStorageRoot, blockHash).
var outputRootArguments = abi.Arguments{
	{Type: mustNewType("uint32")},
	{Type: mustNewType("bytes32")},
	{Type: mustNewType("bytes32")},
	{Type: mustNewType("bytes32")},
}

func mustNewType(t string) abi.Type {
	ty, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Errorf("invalid abi type %s: %w", t, err))
	}
	return ty
}

// OutputOracle computes canonical output roots from L2 chain state. The output
// root is always derived locally rather than through the node's
// output-at-block RPC, because that RPC fails for older blocks once the node
// has pruned historical state.
type OutputOracle interface {
	// OutputRootAtBlock returns the 32-byte output root committing to the L2
	// state at the given block number. Returns an error wrapping
	// ErrBlockNotFound when the node has no block at that number.
	OutputRootAtBlock(ctx context.Context, l2BlockNumber *big.Int) (common.Hash, error)

	// LatestHeader returns the current L2 chain head.
	LatestHeader(ctx context.Context) (*types.Header, error)
}

// L2Client is the concrete OutputOracle over an L2 execution-layer RPC.
type L2Client struct {
	client *ethclient.Client
	geth   *gethclient.Client
}

func DialL2Client(ctx context.Context, rawurl string) (*L2Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("could not dial l2 client: %w", err)
	}
	return NewL2Client(rpcClient), nil
}

func NewL2Client(rpcClient *rpc.Client) *L2Client {
	return &L2Client{
		client: ethclient.NewClient(rpcClient),
		geth:   gethclient.New(rpcClient),
	}
}

func (c *L2Client) LatestHeader(ctx context.Context) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, nil)
}

// StorageRoot returns the storage trie root of the given account at the given
// block, via eth_getProof with no storage keys.
func (c *L2Client) StorageRoot(ctx context.Context, address common.Address, l2BlockNumber *big.Int) (common.Hash, error) {
	proof, err := c.geth.GetProof(ctx, address, nil, l2BlockNumber)
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetching storage proof for %s: %w", address, err)
	}
	return proof.StorageHash, nil
}

func (c *L2Client) OutputRootAtBlock(ctx context.Context, l2BlockNumber *big.Int) (common.Hash, error) {
	header, err := c.client.HeaderByNumber(ctx, l2BlockNumber)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return common.Hash{}, fmt.Errorf("%w: %v", ErrBlockNotFound, l2BlockNumber)
		}
		return common.Hash{}, fmt.Errorf("fetching l2 block %v: %w", l2BlockNumber, err)
	}

	storageRoot, err := c.StorageRoot(ctx, L2ToL1MessagePasserAddr, l2BlockNumber)
	if err != nil {
		return common.Hash{}, err
	}

	return ComputeOutputRoot(header.Root, storageRoot, header.Hash()), nil
}

// ComputeOutputRoot combines the state root, the message passer storage root
// and the block hash under the versioned output root encoding.
func ComputeOutputRoot(stateRoot, storageRoot, blockHash common.Hash) common.Hash {
	packed, err := outputRootArguments.Pack(uint32(0), [32]byte(stateRoot), [32]byte(storageRoot), [32]byte(blockHash))
	if err != nil {
		// The argument set is static, packing fixed-size values cannot fail.
		panic(fmt.Errorf("packing output root preimage: %w", err))
	}
	return crypto.Keccak256Hash(packed)
}
