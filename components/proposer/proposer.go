package proposer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/op-succinct/fault-proof/bindings/bindings"
	"github.com/op-succinct/fault-proof/components/proposer/metrics"
	"github.com/op-succinct/fault-proof/components/proposer/prover"
	"github.com/op-succinct/fault-proof/rollup"
	kcrypto "github.com/op-succinct/fault-proof/utils/service/crypto"
	"github.com/op-succinct/fault-proof/utils/service/txmgr"
)

// ProofPipeline generates and submits the proof for a challenged proposal.
// *prover.Pipeline satisfies it.
type ProofPipeline interface {
	Prove(ctx context.Context, proposalID *big.Int) (common.Hash, error)
}

// Proposer submits new output root proposals, defends challenged honest
// proposals with proofs, resolves finished games and claims bonds. All state
// lives on-chain; every tick re-reads from the contract.
type Proposer struct {
	cfg  Config
	l    log.Logger
	metr *metrics.Metrics

	view     *rollup.View
	l2       rollup.OutputOracle
	sender   rollup.TxSender
	host     prover.Host
	pipeline ProofPipeline
	filterer *bindings.RollupFilterer

	proverAddress common.Address

	// Bond amounts are immutable on-chain, read once at startup. A contract
	// upgrade changing them requires a restart.
	proposerBond *big.Int
}

// New dials the RPC endpoints, binds the contract, sets up the prover
// pipeline and caches the bond amount.
func New(ctx context.Context, l log.Logger, cfg Config, metr *metrics.Metrics) (*Proposer, error) {
	l1Client, err := ethclient.DialContext(ctx, cfg.L1RPC)
	if err != nil {
		return nil, fmt.Errorf("could not dial l1 client: %w", err)
	}
	chainID, err := l1Client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch l1 chain id: %w", err)
	}

	signerFactory, from, err := kcrypto.SignerFactoryFromPrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("could not init signer: %w", err)
	}
	sender := txmgr.NewSimpleTxManager(l, txmgr.Config{
		Backend:              l1Client,
		ChainID:              chainID,
		TxSendTimeout:        cfg.TxTimeout,
		NetworkTimeout:       cfg.NetworkTimeout,
		ReceiptQueryInterval: cfg.ReceiptQueryInterval,
		NumConfirmations:     cfg.NumConfirmations,
		Signer:               signerFactory(chainID),
		From:                 from,
	})

	proverAddress := cfg.ProverAddress
	if proverAddress == (common.Address{}) {
		proverAddress = from
	}

	l2Client, err := rollup.DialL2Client(ctx, cfg.L2RPC)
	if err != nil {
		return nil, err
	}

	caller, err := bindings.NewRollupCaller(cfg.RollupAddress, l1Client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind rollup contract at %s: %w", cfg.RollupAddress, err)
	}
	filterer, err := bindings.NewRollupFilterer(cfg.RollupAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to bind rollup filterer: %w", err)
	}
	view, err := rollup.NewView(l, caller, l2Client, cfg.RollupAddress)
	if err != nil {
		return nil, err
	}

	host, err := prover.NewRPCHost(ctx, cfg.L2NodeRPC, cfg.WitnessHostURL)
	if err != nil {
		return nil, err
	}
	proofClient, err := prover.NewProofClient(ctx, l, cfg.NetworkProverURL, cfg.NetworkPrivateKey, cfg.MockMode)
	if err != nil {
		return nil, err
	}
	pipeline := prover.NewPipeline(
		l, view, host, proofClient, sender,
		proverAddress, cfg.ProposalIntervalInBlocks, cfg.SafeDBFallback)

	proposerBond, err := caller.PROPOSERBOND(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read PROPOSER_BOND: %w", err)
	}

	return &Proposer{
		cfg:           cfg,
		l:             l,
		metr:          metr,
		view:          view,
		l2:            l2Client,
		sender:        sender,
		host:          host,
		pipeline:      pipeline,
		filterer:      filterer,
		proverAddress: proverAddress,
		proposerBond:  proposerBond,
	}, nil
}

// createProposal submits a new proposal for the given L2 block and returns
// the id assigned by the contract, decoded from the receipt logs.
func (p *Proposer) createProposal(ctx context.Context, l2BlockNumber *big.Int) (*big.Int, error) {
	outputRoot, err := p.l2.OutputRootAtBlock(ctx, l2BlockNumber)
	if err != nil {
		return nil, err
	}
	p.l.Info("Submitting proposal",
		"l2_block_number", l2BlockNumber,
		"output_root", outputRoot,
		"proposer_bond", p.proposerBond,
		"prover_address", p.proverAddress)

	data, err := p.view.ABI().Pack("submitProposal", [32]byte(outputRoot), l2BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("packing submitProposal: %w", err)
	}
	to := p.view.Address()
	receipt, err := p.sender.Send(ctx, txmgr.TxCandidate{
		TxData: data,
		To:     &to,
		Value:  p.proposerBond,
	})
	if err != nil {
		return nil, err
	}

	var proposalID *big.Int
	for _, lg := range receipt.Logs {
		if lg.Address != p.view.Address() {
			continue
		}
		ev, err := p.filterer.ParseProposalSubmitted(*lg)
		if err != nil {
			continue
		}
		proposalID = ev.ProposalId
		break
	}
	if proposalID == nil {
		return nil, errors.New("could not find ProposalSubmitted event in transaction receipt logs")
	}

	p.l.Info("New proposal created",
		"proposal_id", proposalID, "l2_block_number", l2BlockNumber, "tx_hash", receipt.TxHash)

	if p.cfg.FastFinalityMode {
		p.l.Info("Fast finality mode enabled: generating proof for the proposal immediately", "proposal_id", proposalID)
		txHash, err := p.pipeline.Prove(ctx, proposalID)
		if err != nil {
			return nil, err
		}
		p.l.Info("Proposal proved", "proposal_id", proposalID, "tx_hash", txHash)
	}

	return proposalID, nil
}

// handleProposalCreation extends the chain of valid proposals by one interval
// when the finalized L2 head has advanced far enough.
func (p *Proposer) handleProposalCreation(ctx context.Context) (*big.Int, error) {
	referenceBlock, referenceID, ok, err := p.view.LatestValidProposal(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The deployment guarantees a valid genesis proposal, so this is a
		// broken deployment rather than a transient failure.
		return nil, rollup.ErrNoValidAnchor
	}

	p.l.Info("Reference proposal for next window", "proposal_id", referenceID, "l2_block_number", referenceBlock)

	reference, overflowed := uint256.FromBig(referenceBlock)
	if overflowed {
		return nil, rollup.ErrOverflow
	}
	nextL2, carry := new(uint256.Int).AddOverflow(reference, uint256.NewInt(p.cfg.ProposalIntervalInBlocks))
	if carry {
		return nil, rollup.ErrOverflow
	}

	finalized, hasFinalized, err := p.host.FinalizedL2BlockNumber(ctx, referenceBlock.Uint64())
	if err != nil {
		return nil, err
	}
	if !hasFinalized {
		p.l.Info("No finalized block past the reference proposal yet", "reference", referenceBlock)
		return nil, nil
	}

	if uint256.NewInt(finalized).Cmp(nextL2) <= 0 {
		p.l.Info("Skipping proposal creation, finalized head has not reached the next window",
			"finalized", finalized, "next_l2_block_number", nextL2)
		return nil, nil
	}

	p.l.Info("Creating new proposal", "finalized", finalized, "next_l2_block_number", nextL2)
	return p.createProposal(ctx, nextL2.ToBig())
}

// handleProposalDefense proves challenged proposals whose claim matches the
// locally computed output root. Proposals that fail that check are not ours
// to defend.
func (p *Proposer) handleProposalDefense(ctx context.Context) error {
	length, err := p.view.ProposalsLength(ctx)
	if err != nil {
		return err
	}
	if length.Sign() == 0 {
		return nil
	}
	anchorID, err := p.view.AnchorID(ctx)
	if err != nil {
		return err
	}
	startID := new(big.Int).Add(anchorID, common.Big1)
	endID := new(big.Int).Add(startID, new(big.Int).SetUint64(p.cfg.MaxProposalsToCheckForDefense))
	if endID.Cmp(length) > 0 {
		endID = length
	}

	defended := 0
	for id := new(big.Int).Set(startID); id.Cmp(endID) < 0; id = new(big.Int).Add(id, common.Big1) {
		needsDefense, err := p.view.NeedsDefense(ctx, id)
		if err != nil || !needsDefense {
			continue
		}

		proposal, err := p.view.Proposal(ctx, id)
		if err != nil {
			continue
		}

		outputRoot, err := p.l2.OutputRootAtBlock(ctx, proposal.L2BlockNumber)
		if err != nil {
			p.l.Warn("Failed to compute output root for proposal", "proposal_id", id, "err", err)
			continue
		}
		if outputRoot != common.Hash(proposal.RootClaim) {
			// The claim does not match local truth; no proof exists for it.
			continue
		}

		p.l.Info("Attempting to defend proposal", "proposal_id", id)
		txHash, err := p.pipeline.Prove(ctx, id)
		if err != nil {
			p.l.Warn("Failed to defend proposal", "proposal_id", id, "err", err)
			p.metr.ProposalDefenseError.Inc()
			continue
		}
		p.l.Info("Successfully defended proposal", "proposal_id", id, "tx_hash", txHash)
		defended++
	}

	if defended > 0 {
		p.l.Info("Defended proposals", "count", defended)
	}
	return nil
}

// handleBondClaiming withdraws any credit accumulated for the prover address.
func (p *Proposer) handleBondClaiming(ctx context.Context) (rollup.Action, error) {
	credit, err := p.view.Credit(ctx, p.proverAddress)
	if err != nil {
		return rollup.ActionSkipped, err
	}
	if credit.Sign() == 0 {
		p.l.Info("No credit to claim")
		return rollup.ActionSkipped, nil
	}

	p.l.Info("Attempting to claim credit", "credit_wei", credit)

	data, err := p.view.ABI().Pack("claimCredit", p.proverAddress)
	if err != nil {
		return rollup.ActionSkipped, fmt.Errorf("packing claimCredit: %w", err)
	}
	to := p.view.Address()
	receipt, err := p.sender.Send(ctx, txmgr.TxCandidate{
		TxData: data,
		To:     &to,
	})
	if err != nil {
		return rollup.ActionSkipped, fmt.Errorf("failed to claim credit: %w", err)
	}

	p.l.Info("Successfully claimed credit", "credit_wei", credit, "tx_hash", receipt.TxHash)
	return rollup.ActionPerformed, nil
}

// fetchMetrics refreshes the anchor, latest and finalized block gauges.
func (p *Proposer) fetchMetrics(ctx context.Context) error {
	anchorID, err := p.view.AnchorID(ctx)
	if err != nil {
		return err
	}
	anchorProposal, err := p.view.Proposal(ctx, anchorID)
	if err != nil {
		return err
	}
	p.metr.AnchorProposalL2BlockNumber.Set(float64(anchorProposal.L2BlockNumber.Uint64()))

	length, err := p.view.ProposalsLength(ctx)
	if err != nil {
		return err
	}
	if length.Sign() == 0 {
		return nil
	}
	latestID := new(big.Int).Sub(length, common.Big1)
	latestProposal, err := p.view.Proposal(ctx, latestID)
	if err != nil {
		return err
	}
	p.metr.LatestProposalL2BlockNumber.Set(float64(latestProposal.L2BlockNumber.Uint64()))

	finalized, ok, err := p.host.FinalizedL2BlockNumber(ctx, latestProposal.L2BlockNumber.Uint64())
	if err != nil {
		return err
	}
	if ok {
		p.metr.FinalizedL2BlockNumber.Set(float64(finalized))
	}

	return nil
}

// tick runs one create/defend/resolve/claim cycle. The returned error is
// non-nil only for conditions that must stop the agent.
func (p *Proposer) tick(ctx context.Context) error {
	proposalID, err := p.handleProposalCreation(ctx)
	if err != nil {
		if errors.Is(err, rollup.ErrNoValidAnchor) {
			return err
		}
		p.l.Warn("Failed to handle proposal creation", "err", err)
		p.metr.ProposalCreationError.Inc()
	} else if proposalID != nil {
		p.metr.ProposalsCreated.Inc()
	}

	if err := p.handleProposalDefense(ctx); err != nil {
		p.l.Warn("Failed to handle proposal defense", "err", err)
		p.metr.ProposalDefenseError.Inc()
	}

	if p.cfg.EnableProposalResolution {
		resolved, err := p.view.ResolveProposals(ctx, rollup.RoleProposer, p.cfg.MaxProposalsToCheckForResolution, p.sender)
		if err != nil {
			p.l.Warn("Failed to handle proposal resolution", "err", err)
			p.metr.ProposalResolutionError.Inc()
		}
		p.metr.ProposalsResolved.Add(float64(resolved))
	}

	action, err := p.handleBondClaiming(ctx)
	if err != nil {
		p.l.Warn("Failed to handle bond claiming", "err", err)
		p.metr.BondClaimingError.Inc()
	} else if action == rollup.ActionPerformed {
		p.metr.BondsClaimed.Inc()
	}

	return nil
}

// Start runs the proposer until the context is cancelled or a fatal
// condition is hit.
func (p *Proposer) Start(ctx context.Context) error {
	p.l.Info("Rollup proposer running...",
		"rollup_address", p.view.Address(),
		"fetch_interval", p.cfg.FetchInterval,
		"proposal_interval_in_blocks", p.cfg.ProposalIntervalInBlocks,
		"fast_finality_mode", p.cfg.FastFinalityMode,
		"mock_mode", p.cfg.MockMode,
		"proposer_bond", p.proposerBond)

	ticker := time.NewTicker(p.cfg.FetchInterval)
	defer ticker.Stop()
	metricsTicker := time.NewTicker(metricsRefreshInterval)
	defer metricsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.tick(ctx); err != nil {
				return err
			}
		case <-metricsTicker.C:
			if err := p.fetchMetrics(ctx); err != nil {
				p.l.Warn("Failed to fetch metrics", "err", err)
				p.metr.MetricsError.Inc()
			}
		}
	}
}
