package challenger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"

	"github.com/op-succinct/fault-proof/bindings/bindings"
	"github.com/op-succinct/fault-proof/components/challenger/metrics"
	"github.com/op-succinct/fault-proof/rollup"
	kcrypto "github.com/op-succinct/fault-proof/utils/service/crypto"
	"github.com/op-succinct/fault-proof/utils/service/txmgr"
)

// Challenger watches the proposal window for invalid claims and disputes
// them. All state lives on-chain; every tick re-reads from the contract.
type Challenger struct {
	cfg  Config
	l    log.Logger
	metr *metrics.Metrics

	view   *rollup.View
	l2     rollup.OutputOracle
	sender rollup.TxSender

	// Bond amounts are immutable on-chain, read once at startup. A contract
	// upgrade changing them requires a restart.
	challengerBond *big.Int

	rng *rand.Rand
}

// New dials the RPC endpoints, binds the contract and caches the bond amount.
func New(ctx context.Context, l log.Logger, cfg Config, metr *metrics.Metrics) (*Challenger, error) {
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

	l2Client, err := rollup.DialL2Client(ctx, cfg.L2RPC)
	if err != nil {
		return nil, err
	}

	caller, err := bindings.NewRollupCaller(cfg.RollupAddress, l1Client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind rollup contract at %s: %w", cfg.RollupAddress, err)
	}
	view, err := rollup.NewView(l, caller, l2Client, cfg.RollupAddress)
	if err != nil {
		return nil, err
	}

	challengerBond, err := caller.CHALLENGERBOND(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read CHALLENGER_BOND: %w", err)
	}

	return &Challenger{
		cfg:            cfg,
		l:              l,
		metr:           metr,
		view:           view,
		l2:             l2Client,
		sender:         sender,
		challengerBond: challengerBond,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// challengeProposal submits challengeProposal(id) escrowing the challenger
// bond.
func (c *Challenger) challengeProposal(ctx context.Context, proposalID *big.Int) error {
	c.l.Info("Challenging proposal", "proposal_id", proposalID)

	data, err := c.view.ABI().Pack("challengeProposal", proposalID)
	if err != nil {
		return fmt.Errorf("packing challengeProposal: %w", err)
	}
	to := c.view.Address()
	receipt, err := c.sender.Send(ctx, txmgr.TxCandidate{
		TxData: data,
		To:     &to,
		Value:  c.challengerBond,
	})
	if err != nil {
		return err
	}

	c.l.Info("Successfully challenged proposal", "proposal_id", proposalID, "tx_hash", receipt.TxHash)
	return nil
}

// submitChallenge wraps challengeProposal with the phase's metric accounting.
// Transaction failures are transient and swallowed: the next tick retries.
func (c *Challenger) submitChallenge(ctx context.Context, proposalID *big.Int) {
	if err := c.challengeProposal(ctx, proposalID); err != nil {
		c.l.Warn("Failed to challenge proposal", "proposal_id", proposalID, "err", err)
		c.metr.ProposalChallengeError.Inc()
		return
	}
	c.metr.ProposalsChallenged.Inc()
}

// oldestChallengeCandidate picks the next proposal for the challenge phase.
// With the malicious-challenge knob active every unchallenged proposal is a
// candidate, so the phase's own root check can decide to misbehave; otherwise
// only proposals with a mismatching claim surface.
func (c *Challenger) oldestChallengeCandidate(ctx context.Context) (*big.Int, bool, error) {
	if c.cfg.MaliciousChallengePercentage > 0 {
		return c.view.OldestProposal(ctx, c.cfg.MaxProposalsToCheckForChallenge,
			func(status rollup.ProposalStatus) bool { return status == rollup.Unchallenged },
			func(outputRoot, rootClaim common.Hash) bool { return true },
			func(err error) bool { return rollup.IsBlockNotFound(err) },
			"oldest challengeable proposal",
		)
	}
	return c.view.OldestChallengeable(ctx, c.cfg.MaxProposalsToCheckForChallenge)
}

// handleProposalChallenges finds the oldest challengeable proposal and
// disputes it. An invalid claim is always challenged; a valid one only under
// the malicious-challenge test knob. A claim about a block the L2 node does
// not have is challenged when it lies beyond the chain head, and reported as
// a data availability failure when it does not.
func (c *Challenger) handleProposalChallenges(ctx context.Context) error {
	proposalID, ok, err := c.oldestChallengeCandidate(ctx)
	if err != nil {
		return err
	}
	if !ok {
		c.l.Debug("No challengeable proposals found")
		return nil
	}

	proposal, err := c.view.Proposal(ctx, proposalID)
	if err != nil {
		return err
	}

	outputRoot, err := c.l2.OutputRootAtBlock(ctx, proposal.L2BlockNumber)
	switch {
	case err == nil && outputRoot != common.Hash(proposal.RootClaim):
		c.l.Info("Found invalid proposal",
			"proposal_id", proposalID, "output_root", outputRoot, "root_claim", common.Hash(proposal.RootClaim))
		c.submitChallenge(ctx, proposalID)
		return nil

	case err == nil:
		if c.cfg.MaliciousChallengePercentage > 0 {
			if draw := c.rng.Float64() * 100; draw < c.cfg.MaliciousChallengePercentage {
				c.l.Warn("Maliciously challenging valid proposal for testing",
					"proposal_id", proposalID, "percentage", c.cfg.MaliciousChallengePercentage)
				c.submitChallenge(ctx, proposalID)
			}
		}
		return nil

	case rollup.IsBlockNotFound(err):
		head, headErr := c.l2.LatestHeader(ctx)
		if headErr != nil {
			return fmt.Errorf("failed to get current max block height: %w", headErr)
		}
		tip := head.Number
		if proposal.L2BlockNumber.Cmp(tip) > 0 {
			// The claim is about a block that does not exist yet, so it is
			// unfalsifiable by construction. Challenge it.
			c.l.Info("Challenging proposal with future L2 block",
				"proposal_id", proposalID, "l2_block_number", proposal.L2BlockNumber, "current_max", tip)
			c.submitChallenge(ctx, proposalID)
			return nil
		}
		return fmt.Errorf("%w: block %v, chain head %v", rollup.ErrDataAvailability, proposal.L2BlockNumber, tip)

	default:
		return fmt.Errorf("failed to compute output root for proposal %v: %w", proposalID, err)
	}
}

// handleBondClaiming withdraws any credit accumulated for the signer.
func (c *Challenger) handleBondClaiming(ctx context.Context) (rollup.Action, error) {
	credit, err := c.view.Credit(ctx, c.sender.From())
	if err != nil {
		return rollup.ActionSkipped, err
	}
	if credit.Sign() == 0 {
		c.l.Info("No credit to claim")
		return rollup.ActionSkipped, nil
	}

	c.l.Info("Attempting to claim credit", "credit_wei", credit)

	data, err := c.view.ABI().Pack("claimCredit", c.sender.From())
	if err != nil {
		return rollup.ActionSkipped, fmt.Errorf("packing claimCredit: %w", err)
	}
	to := c.view.Address()
	receipt, err := c.sender.Send(ctx, txmgr.TxCandidate{
		TxData: data,
		To:     &to,
	})
	if err != nil {
		return rollup.ActionSkipped, fmt.Errorf("failed to claim credit: %w", err)
	}

	c.l.Info("Successfully claimed credit", "credit_wei", credit, "tx_hash", receipt.TxHash)
	return rollup.ActionPerformed, nil
}

// fetchMetrics refreshes the anchor and latest proposal gauges.
func (c *Challenger) fetchMetrics(ctx context.Context) error {
	anchorID, err := c.view.AnchorID(ctx)
	if err != nil {
		return err
	}
	anchorProposal, err := c.view.Proposal(ctx, anchorID)
	if err != nil {
		return err
	}
	c.metr.AnchorProposalL2BlockNumber.Set(float64(anchorProposal.L2BlockNumber.Uint64()))

	length, err := c.view.ProposalsLength(ctx)
	if err != nil {
		return err
	}
	if length.Sign() > 0 {
		latestID := new(big.Int).Sub(length, common.Big1)
		latestProposal, err := c.view.Proposal(ctx, latestID)
		if err != nil {
			return err
		}
		c.metr.LatestProposalL2BlockNumber.Set(float64(latestProposal.L2BlockNumber.Uint64()))
	}

	return nil
}

// tick runs one challenge/resolve/claim cycle.
func (c *Challenger) tick(ctx context.Context) {
	if err := c.handleProposalChallenges(ctx); err != nil {
		if errors.Is(err, rollup.ErrDataAvailability) {
			c.l.Error("L2 node is missing a block below its head, intervention required", "err", err)
		} else {
			c.l.Warn("Failed to handle proposal challenges", "err", err)
		}
		c.metr.ProposalChallengeError.Inc()
	}

	if c.cfg.EnableProposalResolution {
		resolved, err := c.view.ResolveProposals(ctx, rollup.RoleChallenger, c.cfg.MaxProposalsToCheckForResolution, c.sender)
		if err != nil {
			c.l.Warn("Failed to handle proposal resolution", "err", err)
			c.metr.ProposalResolutionError.Inc()
		}
		c.metr.ProposalsResolved.Add(float64(resolved))
	}

	action, err := c.handleBondClaiming(ctx)
	if err != nil {
		c.l.Warn("Failed to handle bond claiming", "err", err)
		c.metr.BondClaimingError.Inc()
	} else if action == rollup.ActionPerformed {
		c.metr.BondsClaimed.Inc()
	}
}

// Start runs the challenger until the context is cancelled.
func (c *Challenger) Start(ctx context.Context) error {
	c.l.Info("Rollup challenger running...",
		"rollup_address", c.view.Address(),
		"fetch_interval", c.cfg.FetchInterval,
		"challenger_bond", c.challengerBond)

	ticker := time.NewTicker(c.cfg.FetchInterval)
	defer ticker.Stop()
	metricsTicker := time.NewTicker(metricsRefreshInterval)
	defer metricsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.tick(ctx)
		case <-metricsTicker.C:
			if err := c.fetchMetrics(ctx); err != nil {
				c.l.Warn("Failed to fetch metrics", "err", err)
				c.metr.MetricsError.Inc()
			}
		}
	}
}
