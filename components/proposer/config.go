package proposer

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	kservice "github.com/op-succinct/fault-proof/utils/service"
)

const (
	defaultFetchInterval        = 12 * time.Second
	defaultProposalInterval     = 1800
	defaultMaxDefenseWindow     = 100
	defaultMaxResolutionWindow  = 50
	defaultMetricsPort          = 9001
	defaultNumConfirmations     = 3
	defaultTxTimeout            = 60 * time.Second
	defaultNetworkTimeout       = 2 * time.Second
	defaultReceiptQueryInterval = 12 * time.Second
	metricsRefreshInterval      = 15 * time.Second
)

// Config holds the proposer settings, read once from the environment at
// startup.
type Config struct {
	L1RPC         string
	L2RPC         string
	L2NodeRPC     string
	RollupAddress common.Address
	PrivateKey    string

	// ProverAddress receives the credit for proven proposals. It may differ
	// from the signer when a hot key signs on behalf of a cold prover.
	ProverAddress common.Address

	NetworkProverURL  string
	NetworkPrivateKey string
	WitnessHostURL    string

	MetricsPort   int
	FetchInterval time.Duration

	ProposalIntervalInBlocks         uint64
	MaxProposalsToCheckForDefense    uint64
	MaxProposalsToCheckForResolution uint64

	EnableProposalResolution bool
	FastFinalityMode         bool
	SafeDBFallback           bool
	MockMode                 bool

	NumConfirmations     uint64
	TxTimeout            time.Duration
	NetworkTimeout       time.Duration
	ReceiptQueryInterval time.Duration
}

// FromEnv reads the proposer config from the environment.
func FromEnv() (Config, error) {
	cfg := Config{
		L1RPC:                kservice.EnvString("L1_RPC", ""),
		L2RPC:                kservice.EnvString("L2_RPC", ""),
		L2NodeRPC:            kservice.EnvString("L2_NODE_RPC", ""),
		PrivateKey:           kservice.EnvString("PRIVATE_KEY", ""),
		NetworkProverURL:     kservice.EnvString("NETWORK_PROVER_URL", ""),
		NetworkPrivateKey:    kservice.EnvString("NETWORK_PRIVATE_KEY", ""),
		WitnessHostURL:       kservice.EnvString("WITNESS_HOST_URL", ""),
		NumConfirmations:     defaultNumConfirmations,
		TxTimeout:            defaultTxTimeout,
		NetworkTimeout:       defaultNetworkTimeout,
		ReceiptQueryInterval: defaultReceiptQueryInterval,
	}

	rollupAddress := kservice.EnvString("ROLLUP_ADDRESS", "")
	if rollupAddress != "" {
		addr, err := kservice.ParseAddress(rollupAddress)
		if err != nil {
			return Config{}, err
		}
		cfg.RollupAddress = addr
	}
	proverAddress := kservice.EnvString("PROVER_ADDRESS", "")
	if proverAddress != "" {
		addr, err := kservice.ParseAddress(proverAddress)
		if err != nil {
			return Config{}, err
		}
		cfg.ProverAddress = addr
	}

	metricsPort, err := kservice.EnvInt("METRICS_PORT", defaultMetricsPort)
	if err != nil {
		return Config{}, err
	}
	cfg.MetricsPort = metricsPort

	fetchInterval, err := kservice.EnvUint64("FETCH_INTERVAL", uint64(defaultFetchInterval/time.Second))
	if err != nil {
		return Config{}, err
	}
	cfg.FetchInterval = time.Duration(fetchInterval) * time.Second

	cfg.ProposalIntervalInBlocks, err = kservice.EnvUint64("PROPOSAL_INTERVAL_IN_BLOCKS", defaultProposalInterval)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxProposalsToCheckForDefense, err = kservice.EnvUint64("MAX_PROPOSALS_TO_CHECK_FOR_DEFENSE", defaultMaxDefenseWindow)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxProposalsToCheckForResolution, err = kservice.EnvUint64("MAX_PROPOSALS_TO_CHECK_FOR_RESOLUTION", defaultMaxResolutionWindow)
	if err != nil {
		return Config{}, err
	}
	cfg.EnableProposalResolution, err = kservice.EnvBool("ENABLE_PROPOSAL_RESOLUTION", true)
	if err != nil {
		return Config{}, err
	}
	cfg.FastFinalityMode, err = kservice.EnvBool("FAST_FINALITY_MODE", false)
	if err != nil {
		return Config{}, err
	}
	cfg.SafeDBFallback, err = kservice.EnvBool("SAFE_DB_FALLBACK", false)
	if err != nil {
		return Config{}, err
	}
	cfg.MockMode, err = kservice.EnvBool("MOCK_MODE", false)
	if err != nil {
		return Config{}, err
	}

	return cfg, cfg.Check()
}

func (c Config) Check() error {
	if c.L1RPC == "" {
		return errors.New("must provide L1_RPC")
	}
	if c.L2RPC == "" {
		return errors.New("must provide L2_RPC")
	}
	if c.L2NodeRPC == "" {
		return errors.New("must provide L2_NODE_RPC")
	}
	if c.RollupAddress == (common.Address{}) {
		return errors.New("must provide ROLLUP_ADDRESS")
	}
	if c.PrivateKey == "" {
		return errors.New("must provide PRIVATE_KEY")
	}
	if c.NetworkProverURL == "" {
		return errors.New("must provide NETWORK_PROVER_URL")
	}
	if c.WitnessHostURL == "" {
		return errors.New("must provide WITNESS_HOST_URL")
	}
	if c.FetchInterval == 0 {
		return errors.New("FETCH_INTERVAL must not be 0")
	}
	if c.ProposalIntervalInBlocks == 0 {
		return errors.New("PROPOSAL_INTERVAL_IN_BLOCKS must not be 0")
	}
	return nil
}
