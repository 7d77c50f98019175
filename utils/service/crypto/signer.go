package crypto

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignerFn is a generic transaction signing function. It may be a remote
// signer so it takes a context. It also takes the address that should be used
// to sign the transaction with.
type SignerFn func(context.Context, common.Address, *types.Transaction) (*types.Transaction, error)

// SignerFactory creates a SignerFn that is bound to a specific chainID.
type SignerFactory func(chainID *big.Int) SignerFn

// SignerFactoryFromPrivateKey creates a factory for a local in-memory hex
// encoded private key.
func SignerFactoryFromPrivateKey(hexPrivateKey string) (SignerFactory, common.Address, error) {
	privKey, err := crypto.HexToECDSA(strings.TrimPrefix(hexPrivateKey, "0x"))
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to parse the private key: %w", err)
	}
	from := crypto.PubkeyToAddress(privKey.PublicKey)

	factory := func(chainID *big.Int) SignerFn {
		s := types.LatestSignerForChainID(chainID)
		return func(_ context.Context, addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != from {
				return nil, errors.New("unauthorized address")
			}
			return types.SignTx(tx, s, privKey)
		}
	}
	return factory, from, nil
}
