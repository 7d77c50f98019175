package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the closed set of challenger gauges. The metric names are
// scraped by existing dashboards and must not change.
type Metrics struct {
	ProposalsChallenged         prometheus.Gauge
	ProposalsResolved           prometheus.Gauge
	BondsClaimed                prometheus.Gauge
	LatestProposalL2BlockNumber prometheus.Gauge
	AnchorProposalL2BlockNumber prometheus.Gauge

	ProposalChallengeError  prometheus.Gauge
	ProposalResolutionError prometheus.Gauge
	BondClaimingError       prometheus.Gauge
	MetricsError            prometheus.Gauge
}

// NewMetrics registers and initializes all challenger gauges on the registry.
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
		ProposalsChallenged:         gauge("op_succinct_fp_challenger_proposals_challenged", "Total number of proposals challenged by the challenger"),
		ProposalsResolved:           gauge("op_succinct_fp_challenger_proposals_resolved", "Total number of proposals resolved by the challenger"),
		BondsClaimed:                gauge("op_succinct_fp_challenger_bonds_claimed", "Total number of bonds claimed by the challenger"),
		LatestProposalL2BlockNumber: gauge("op_succinct_fp_challenger_latest_proposal_l2_block_number", "Latest proposal L2 block number"),
		AnchorProposalL2BlockNumber: gauge("op_succinct_fp_challenger_anchor_proposal_l2_block_number", "Anchor proposal L2 block number"),
		ProposalChallengeError:      gauge("op_succinct_fp_challenger_proposal_challenging_error", "Total number of proposal challenging errors encountered by the challenger"),
		ProposalResolutionError:     gauge("op_succinct_fp_challenger_proposal_resolution_error", "Total number of proposal resolution errors encountered by the challenger"),
		BondClaimingError:           gauge("op_succinct_fp_challenger_bond_claiming_error", "Total number of bond claiming errors encountered by the challenger"),
		MetricsError:                gauge("op_succinct_fp_challenger_metrics_error", "Total number of metrics errors encountered by the challenger"),
	}
}
