package rollup

import "errors"

var (
	// ErrBlockNotFound is returned by the output oracle when the L2 node
	// reports no block at the requested number. Callers use this to tell a
	// future-block claim apart from ordinary RPC failures.
	ErrBlockNotFound = errors.New("failed to get L2 block by number")

	// ErrDataAvailability signals an L2 block that is below the chain head
	// but cannot be served. The node is inconsistent and operator
	// intervention is required; the tick must not silently continue.
	ErrDataAvailability = errors.New("l2 block not found but within chain head")

	// ErrNoValidAnchor means no proposal on-chain matches locally computed
	// output roots. The deployment is expected to carry at least a valid
	// genesis proposal, so this is fatal for the proposer.
	ErrNoValidAnchor = errors.New("no valid proposals exist on-chain")

	// ErrOverflow guards the next-proposal block arithmetic.
	ErrOverflow = errors.New("overflow calculating next l2 block number")

	// Prover pipeline phase gating.
	ErrAlreadyProved   = errors.New("proposal already has a valid proof")
	ErrAlreadyResolved = errors.New("proposal is already resolved")
	ErrWrongPhase      = errors.New("proposal is not in a challenged state")
)
