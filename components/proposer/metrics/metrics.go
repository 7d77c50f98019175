package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the closed set of proposer gauges. The metric names are scraped
// by existing dashboards and must not change.
type Metrics struct {
	FinalizedL2BlockNumber      prometheus.Gauge
	LatestProposalL2BlockNumber prometheus.Gauge
	AnchorProposalL2BlockNumber prometheus.Gauge
	ProposalsCreated            prometheus.Gauge
	ProposalsResolved           prometheus.Gauge
	BondsClaimed                prometheus.Gauge

	ProposalCreationError   prometheus.Gauge
	ProposalDefenseError    prometheus.Gauge
	ProposalResolutionError prometheus.Gauge
	BondClaimingError       prometheus.Gauge
	MetricsError            prometheus.Gauge
}

// NewMetrics registers and initializes all proposer gauges on the registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	gauge := func(name, help string) prometheus.Gauge {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		})
		registry.MustRegister(g)
		g.Set(0)
		return g
	}

	return &Metrics{
		FinalizedL2BlockNumber:      gauge("op_succinct_fp_finalized_l2_block_number", "Finalized L2 block number"),
		LatestProposalL2BlockNumber: gauge("op_succinct_fp_latest_proposal_l2_block_number", "Latest proposal L2 block number"),
		AnchorProposalL2BlockNumber: gauge("op_succinct_fp_anchor_proposal_l2_block_number", "Anchor proposal L2 block number"),
		ProposalsCreated:            gauge("op_succinct_fp_proposals_created", "Total number of proposals created by the proposer"),
		ProposalsResolved:           gauge("op_succinct_fp_proposals_resolved", "Total number of proposals resolved by the proposer"),
		BondsClaimed:                gauge("op_succinct_fp_bonds_claimed", "Total number of bonds claimed by the proposer"),
		ProposalCreationError:       gauge("op_succinct_fp_proposal_creation_error", "Total number of proposal creation errors encountered by the proposer"),
		ProposalDefenseError:        gauge("op_succinct_fp_proposal_defense_error", "Total number of proposal defense errors encountered by the proposer"),
		ProposalResolutionError:     gauge("op_succinct_fp_proposal_resolution_error", "Total number of proposal resolution errors encountered by the proposer"),
		BondClaimingError:           gauge("op_succinct_fp_bond_claiming_error", "Total number of bond claiming errors encountered by the proposer"),
		MetricsError:                gauge("op_succinct_fp_metrics_error", "Total number of metrics errors encountered by the proposer"),
	}
}
