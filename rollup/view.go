package rollup

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/hashicorp/go-multierror"

	"github.com/op-succinct/fault-proof/bindings/bindings"
	"github.com/op-succinct/fault-proof/utils/service/txmgr"
)

// Contract is the read surface the view layer needs from the Rollup contract.
// *bindings.RollupCaller satisfies it.
type Contract interface {
	AnchorProposalId(opts *bind.CallOpts) (uint32, error)
	GetProposal(opts *bind.CallOpts, id *big.Int) (bindings.RollupProposal, error)
	GetProposalsLength(opts *bind.CallOpts) (*big.Int, error)
	IsResolvable(opts *bind.CallOpts, proposalId *big.Int) (bool, error)
	NeedsDefense(opts *bind.CallOpts, proposalId *big.Int) (bool, error)
	GameOver(opts *bind.CallOpts, proposalId *big.Int) (bool, error)
	Credit(opts *bind.CallOpts, arg0 common.Address) (*big.Int, error)
}

// TxSender publishes signed transactions and waits for confirmations.
// *txmgr.SimpleTxManager satisfies it.
type TxSender interface {
	From() common.Address
	Send(ctx context.Context, candidate txmgr.TxCandidate) (*types.Receipt, error)
}

// StatusPredicate selects proposals by phase within a scan.
type StatusPredicate func(status ProposalStatus) bool

// RootPredicate compares the locally computed output root against the
// proposal's claim.
type RootPredicate func(outputRoot, rootClaim common.Hash) bool

// OracleErrPredicate decides whether an output-root computation failure makes
// the proposal a scan hit anyway. The challengeable scan surfaces proposals
// whose block is missing so the future-block safety net can inspect them; the
// defensible scan never defends what it cannot verify.
type OracleErrPredicate func(err error) bool

// View is the read-side abstraction over the Rollup contract shared by both
// agents. All scans operate on the half-open window (anchor, anchor+W].
type View struct {
	l         log.Logger
	contract  Contract
	l2        OutputOracle
	rollupABI *abi.ABI
	addr      common.Address
}

func NewView(l log.Logger, contract Contract, l2 OutputOracle, addr common.Address) (*View, error) {
	parsed, err := bindings.RollupMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rollup abi: %w", err)
	}
	return &View{
		l:         l,
		contract:  contract,
		l2:        l2,
		rollupABI: parsed,
		addr:      addr,
	}, nil
}

// Address returns the Rollup contract address.
func (v *View) Address() common.Address {
	return v.addr
}

// ABI returns the parsed Rollup contract ABI.
func (v *View) ABI() *abi.ABI {
	return v.rollupABI
}

func (v *View) ProposalsLength(ctx context.Context) (*big.Int, error) {
	return v.contract.GetProposalsLength(&bind.CallOpts{Context: ctx})
}

func (v *View) AnchorID(ctx context.Context) (*big.Int, error) {
	anchor, err := v.contract.AnchorProposalId(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(uint64(anchor)), nil
}

func (v *View) Proposal(ctx context.Context, id *big.Int) (bindings.RollupProposal, error) {
	return v.contract.GetProposal(&bind.CallOpts{Context: ctx}, id)
}

func (v *View) Credit(ctx context.Context, recipient common.Address) (*big.Int, error) {
	return v.contract.Credit(&bind.CallOpts{Context: ctx}, recipient)
}

func (v *View) NeedsDefense(ctx context.Context, id *big.Int) (bool, error) {
	return v.contract.NeedsDefense(&bind.CallOpts{Context: ctx}, id)
}

// LatestValidProposal walks the proposal array from the newest entry down and
// returns the first proposal whose root claim matches the locally computed
// output root. The proposer uses the result to anchor the next proposal's L2
// window. ok is false when no proposal validates.
func (v *View) LatestValidProposal(ctx context.Context) (l2BlockNumber, id *big.Int, ok bool, err error) {
	length, err := v.ProposalsLength(ctx)
	if err != nil {
		return nil, nil, false, err
	}
	if length.Sign() == 0 {
		v.l.Info("No proposals exist yet")
		return nil, nil, false, nil
	}

	proposalID := new(big.Int).Sub(length, common.Big1)
	for {
		proposal, err := v.Proposal(ctx, proposalID)
		if err != nil {
			return nil, nil, false, err
		}
		blockNumber := proposal.L2BlockNumber

		v.l.Debug("Checking if proposal is valid", "proposal_id", proposalID, "l2_block_number", blockNumber)

		outputRoot, err := v.l2.OutputRootAtBlock(ctx, blockNumber)
		if err != nil {
			return nil, nil, false, err
		}
		if outputRoot == common.Hash(proposal.RootClaim) {
			v.l.Info("Latest valid proposal found", "proposal_id", proposalID, "l2_block_number", blockNumber)
			return blockNumber, proposalID, true, nil
		}

		v.l.Info("Output root does not match proposal claim",
			"proposal_id", proposalID, "output_root", outputRoot, "root_claim", common.Hash(proposal.RootClaim))

		if proposalID.Sign() == 0 {
			v.l.Info("No valid proposals found after checking all proposals")
			return nil, nil, false, nil
		}
		proposalID = new(big.Int).Sub(proposalID, common.Big1)
	}
}

// OldestProposal scans ascending over (anchor, anchor+window] and returns the
// first proposal accepted by both predicates. Proposals whose phase deadline
// is not after the current L2 timestamp are skipped: they can no longer be
// challenged or defended, only resolved. When the output root cannot be computed the
// proposal is skipped unless oracleErr accepts the failure.
func (v *View) OldestProposal(
	ctx context.Context,
	window uint64,
	statusOK StatusPredicate,
	rootOK RootPredicate,
	oracleErr OracleErrPredicate,
	label string,
) (*big.Int, bool, error) {
	length, err := v.ProposalsLength(ctx)
	if err != nil {
		return nil, false, err
	}
	if length.Sign() == 0 {
		v.l.Info("No proposals exist yet")
		return nil, false, nil
	}

	anchorID, err := v.AnchorID(ctx)
	if err != nil {
		return nil, false, err
	}
	startID := new(big.Int).Add(anchorID, common.Big1)
	endID := new(big.Int).Add(startID, new(big.Int).SetUint64(window))
	if endID.Cmp(length) > 0 {
		endID = length
	}

	v.l.Info("Scanning for "+label, "start_id", startID, "end_id", endID)

	for id := new(big.Int).Set(startID); id.Cmp(endID) < 0; id = new(big.Int).Add(id, common.Big1) {
		proposal, err := v.Proposal(ctx, id)
		if err != nil {
			continue
		}

		status := ProposalStatus(proposal.ProposalStatus)
		if !statusOK(status) {
			v.l.Debug("Proposal status does not match criteria", "proposal_id", id, "status", status)
			continue
		}

		// The phase clock must not have expired: challenging and defending
		// are only allowed before the deadline.
		head, err := v.l2.LatestHeader(ctx)
		if err != nil {
			return nil, false, err
		}
		if proposal.Deadline <= head.Time {
			v.l.Debug("Proposal deadline has passed", "proposal_id", id, "deadline", proposal.Deadline)
			continue
		}

		outputRoot, err := v.l2.OutputRootAtBlock(ctx, proposal.L2BlockNumber)
		if err != nil {
			if oracleErr != nil && oracleErr(err) {
				v.l.Info("Found "+label, "proposal_id", id, "l2_block_number", proposal.L2BlockNumber, "err", err)
				return id, true, nil
			}
			v.l.Warn("Failed to compute output root for proposal", "proposal_id", id, "err", err)
			continue
		}

		if rootOK(outputRoot, common.Hash(proposal.RootClaim)) {
			v.l.Info("Found "+label, "proposal_id", id, "l2_block_number", proposal.L2BlockNumber)
			return id, true, nil
		}
	}

	return nil, false, nil
}

// OldestChallengeable returns the oldest unchallenged proposal whose claim
// does not match the local output root, or whose claimed block cannot be
// found at all.
func (v *View) OldestChallengeable(ctx context.Context, window uint64) (*big.Int, bool, error) {
	return v.OldestProposal(ctx, window,
		func(status ProposalStatus) bool { return status == Unchallenged },
		func(outputRoot, rootClaim common.Hash) bool { return outputRoot != rootClaim },
		func(err error) bool { return IsBlockNotFound(err) },
		"oldest challengeable proposal",
	)
}

// OldestDefensible returns the oldest challenged proposal whose claim matches
// the local output root.
func (v *View) OldestDefensible(ctx context.Context, window uint64) (*big.Int, bool, error) {
	return v.OldestProposal(ctx, window,
		func(status ProposalStatus) bool { return status == Challenged },
		func(outputRoot, rootClaim common.Hash) bool { return outputRoot == rootClaim },
		nil,
		"oldest defensible proposal",
	)
}

// ShouldAttemptResolution is true when the proposal is a root or its parent
// has already been resolved. The contract rejects out-of-order resolution, so
// a stuck parent makes the whole window unresolvable for now.
func (v *View) ShouldAttemptResolution(ctx context.Context, id *big.Int) (bool, error) {
	proposal, err := v.Proposal(ctx, id)
	if err != nil {
		return false, err
	}
	if proposal.ParentIndex == ParentIndexSentinel {
		return true, nil
	}
	parent, err := v.Proposal(ctx, new(big.Int).SetUint64(uint64(proposal.ParentIndex)))
	if err != nil {
		return false, err
	}
	return ProposalStatus(parent.ProposalStatus) == Resolved, nil
}

// TryResolveProposal resolves a single proposal if it is resolvable and the
// role gate matches: the proposer resolves unchallenged proposals, the
// challenger resolves proposals it challenged itself.
func (v *View) TryResolveProposal(ctx context.Context, id *big.Int, role Role, sender TxSender) (Action, error) {
	resolvable, err := v.contract.IsResolvable(&bind.CallOpts{Context: ctx}, id)
	if err != nil || !resolvable {
		return ActionSkipped, nil
	}

	proposal, err := v.Proposal(ctx, id)
	if err != nil {
		return ActionSkipped, err
	}
	status := ProposalStatus(proposal.ProposalStatus)

	switch role {
	case RoleProposer:
		if status != Unchallenged {
			v.l.Debug("Proposal is not unchallenged, skipping resolution", "proposal_id", id, "status", status)
			return ActionSkipped, nil
		}
	case RoleChallenger:
		if status != Challenged {
			v.l.Debug("Proposal is not challenged, skipping resolution", "proposal_id", id, "status", status)
			return ActionSkipped, nil
		}
		if proposal.Challenger != sender.From() {
			v.l.Debug("Proposal was not challenged by us, skipping", "proposal_id", id)
			return ActionSkipped, nil
		}
		gameOver, err := v.contract.GameOver(&bind.CallOpts{Context: ctx}, id)
		if err != nil || !gameOver {
			v.l.Debug("Dispute clock has not elapsed, skipping", "proposal_id", id)
			return ActionSkipped, nil
		}
	}

	data, err := v.rollupABI.Pack("resolveProposal", id)
	if err != nil {
		return ActionSkipped, fmt.Errorf("packing resolveProposal: %w", err)
	}
	receipt, err := sender.Send(ctx, txmgr.TxCandidate{
		TxData: data,
		To:     &v.addr,
	})
	if err != nil {
		return ActionSkipped, err
	}

	v.l.Info("Successfully resolved proposal", "proposal_id", id, "tx_hash", receipt.TxHash)
	return ActionPerformed, nil
}

// ResolveProposals walks (anchor, anchor+window] and resolves every eligible
// proposal. The entire tick is skipped when the frontier proposal's parent is
// unresolved. Individual failures are collected and logged at debug so one
// stuck proposal does not block the ones behind it. Returns the number of
// proposals resolved.
func (v *View) ResolveProposals(ctx context.Context, role Role, window uint64, sender TxSender) (int, error) {
	length, err := v.ProposalsLength(ctx)
	if err != nil {
		return 0, err
	}
	if length.Sign() == 0 {
		v.l.Info("No proposals exist, skipping resolution")
		return 0, nil
	}

	anchorID, err := v.AnchorID(ctx)
	if err != nil {
		return 0, err
	}
	startID := new(big.Int).Add(anchorID, common.Big1)
	endID := new(big.Int).Add(startID, new(big.Int).SetUint64(window))
	if endID.Cmp(length) > 0 {
		endID = length
	}

	if startID.Cmp(endID) < 0 {
		ok, err := v.ShouldAttemptResolution(ctx, startID)
		if err != nil {
			return 0, err
		}
		if !ok {
			v.l.Info("Oldest proposal has unresolved parent, skipping resolution", "proposal_id", startID)
			return 0, nil
		}
	}

	var (
		resolved int
		failures error
	)
	for id := new(big.Int).Set(startID); id.Cmp(endID) < 0; id = new(big.Int).Add(id, common.Big1) {
		action, err := v.TryResolveProposal(ctx, id, role, sender)
		if err != nil {
			failures = multierror.Append(failures, fmt.Errorf("proposal %v: %w", id, err))
			continue
		}
		if action == ActionPerformed {
			resolved++
		}
	}
	if failures != nil {
		v.l.Debug("Some proposals could not be resolved", "err", failures)
	}

	return resolved, nil
}

// IsBlockNotFound reports whether the error indicates a missing L2 block.
func IsBlockNotFound(err error) bool {
	return errors.Is(err, ErrBlockNotFound)
}
