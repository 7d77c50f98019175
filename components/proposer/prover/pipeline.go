package prover

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/op-succinct/fault-proof/rollup"
	"github.com/op-succinct/fault-proof/utils/service/txmgr"
)

// Pipeline sequences the two-stage proof generation for a challenged
// proposal: a compressed range proof over the proposal's block window, then a
// groth16 aggregation proof binding the range proof to the prover identity,
// submitted on-chain via proveProposal.
type Pipeline struct {
	l      log.Logger
	view   *rollup.View
	host   Host
	client ProofClient
	sender rollup.TxSender

	proverAddress    common.Address
	proposalInterval uint64
	safeDBFallback   bool
}

func NewPipeline(
	l log.Logger,
	view *rollup.View,
	host Host,
	client ProofClient,
	sender rollup.TxSender,
	proverAddress common.Address,
	proposalInterval uint64,
	safeDBFallback bool,
) *Pipeline {
	return &Pipeline{
		l:                l,
		view:             view,
		host:             host,
		client:           client,
		sender:           sender,
		proverAddress:    proverAddress,
		proposalInterval: proposalInterval,
		safeDBFallback:   safeDBFallback,
	}
}

// Prove generates and submits the proof for the given proposal, returning the
// proveProposal transaction hash.
func (p *Pipeline) Prove(ctx context.Context, proposalID *big.Int) (common.Hash, error) {
	proposal, err := p.view.Proposal(ctx, proposalID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetching proposal %v: %w", proposalID, err)
	}

	switch rollup.ProposalStatus(proposal.ProposalStatus) {
	case rollup.Challenged:
		p.l.Info("Proposal is challenged, proceeding with proof generation", "proposal_id", proposalID)
	case rollup.ChallengedAndValidProofProvided:
		return common.Hash{}, fmt.Errorf("proposal %v: %w", proposalID, rollup.ErrAlreadyProved)
	case rollup.Resolved:
		return common.Hash{}, fmt.Errorf("proposal %v: %w", proposalID, rollup.ErrAlreadyResolved)
	default:
		return common.Hash{}, fmt.Errorf("proposal %v: %w", proposalID, rollup.ErrWrongPhase)
	}

	l1Head := common.Hash(proposal.L1Head)
	end := proposal.L2BlockNumber.Uint64()
	start := end - p.proposalInterval
	p.l.Debug("Fetching range witness", "start", start, "end", end, "l1_head", l1Head)

	stdin, err := p.host.FetchRangeWitness(ctx, start, end, l1Head, p.safeDBFallback)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get witness inputs: %w", err)
	}

	p.l.Info("Generating range proof", "proposal_id", proposalID)
	rangeProof, err := p.client.RangeProof(ctx, stdin)
	if err != nil {
		return common.Hash{}, fmt.Errorf("range proof generation: %w", err)
	}

	bootInfo, err := UnmarshalBootInfo(rangeProof.PublicValues)
	if err != nil {
		return common.Hash{}, err
	}

	headers, err := p.host.HeaderPreimages(ctx, bootInfo.L1Head)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get header preimages: %w", err)
	}

	p.l.Info("Generating aggregation proof", "proposal_id", proposalID)
	aggStdin, err := json.Marshal(&AggregationInput{
		RangeProof:    rangeProof,
		BootInfo:      bootInfo,
		Headers:       headers,
		RangeVKey:     p.client.RangeVKey(),
		L1Head:        bootInfo.L1Head,
		ProverAddress: p.proverAddress,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to build aggregation stdin: %w", err)
	}
	aggProof, err := p.client.AggregationProof(ctx, aggStdin)
	if err != nil {
		return common.Hash{}, fmt.Errorf("aggregation proof generation: %w", err)
	}

	data, err := p.view.ABI().Pack("proveProposal", proposalID, []byte(aggProof.Bytes))
	if err != nil {
		return common.Hash{}, fmt.Errorf("packing proveProposal: %w", err)
	}
	to := p.view.Address()
	receipt, err := p.sender.Send(ctx, txmgr.TxCandidate{
		TxData: data,
		To:     &to,
	})
	if err != nil {
		return common.Hash{}, err
	}

	return receipt.TxHash, nil
}
