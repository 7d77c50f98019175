package challenger

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	kservice "github.com/op-succinct/fault-proof/utils/service"
)

const (
	defaultFetchInterval        = 12 * time.Second
	defaultMaxProposalsToCheck  = 100
	defaultMaxResolutionWindow  = 50
	defaultMetricsPort          = 9000
	defaultNumConfirmations     = 3
	defaultTxTimeout            = 60 * time.Second
	defaultNetworkTimeout       = 2 * time.Second
	defaultReceiptQueryInterval = 12 * time.Second
	metricsRefreshInterval      = 15 * time.Second
)

// Config holds the challenger settings, read once from the environment at
// startup.
type Config struct {
	L1RPC         string
	L2RPC         string
	RollupAddress common.Address
	PrivateKey    string

	MetricsPort   int
	FetchInterval time.Duration

	MaxProposalsToCheckForChallenge  uint64
	MaxProposalsToCheckForResolution uint64

	// MaliciousChallengePercentage makes the challenger randomly challenge
	// valid proposals for integration testing. 0.0 disables it.
	MaliciousChallengePercentage float64

	EnableProposalResolution bool

	NumConfirmations     uint64
	TxTimeout            time.Duration
	NetworkTimeout       time.Duration
	ReceiptQueryInterval time.Duration
}

// FromEnv reads the challenger config from the environment.
func FromEnv() (Config, error) {
	cfg := Config{
		L1RPC:                defaultString("L1_RPC"),
		L2RPC:                defaultString("L2_RPC"),
		PrivateKey:           defaultString("PRIVATE_KEY"),
		NumConfirmations:     defaultNumConfirmations,
		TxTimeout:            defaultTxTimeout,
		NetworkTimeout:       defaultNetworkTimeout,
		ReceiptQueryInterval: defaultReceiptQueryInterval,
	}

	rollupAddress := defaultString("ROLLUP_ADDRESS")
	if rollupAddress != "" {
		addr, err := kservice.ParseAddress(rollupAddress)
		if err != nil {
			return Config{}, err
		}
		cfg.RollupAddress = addr
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

	cfg.MaxProposalsToCheckForChallenge, err = kservice.EnvUint64("MAX_PROPOSALS_TO_CHECK_FOR_CHALLENGE", defaultMaxProposalsToCheck)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxProposalsToCheckForResolution, err = kservice.EnvUint64("MAX_PROPOSALS_TO_CHECK_FOR_RESOLUTION", defaultMaxResolutionWindow)
	if err != nil {
		return Config{}, err
	}
	cfg.MaliciousChallengePercentage, err = kservice.EnvFloat64("MALICIOUS_CHALLENGE_PERCENTAGE", 0.0)
	if err != nil {
		return Config{}, err
	}
	cfg.EnableProposalResolution, err = kservice.EnvBool("ENABLE_PROPOSAL_RESOLUTION", true)
	if err != nil {
		return Config{}, err
	}

	return cfg, cfg.Check()
}

func defaultString(name string) string {
	return kservice.EnvString(name, "")
}

func (c Config) Check() error {
	if c.L1RPC == "" {
		return errors.New("must provide L1_RPC")
	}
	if c.L2RPC == "" {
		return errors.New("must provide L2_RPC")
	}
	if c.RollupAddress == (common.Address{}) {
		return errors.New("must provide ROLLUP_ADDRESS")
	}
	if c.PrivateKey == "" {
		return errors.New("must provide PRIVATE_KEY")
	}
	if c.FetchInterval == 0 {
		return errors.New("FETCH_INTERVAL must not be 0")
	}
	if c.MaliciousChallengePercentage < 0 || c.MaliciousChallengePercentage > 100 {
		return errors.New("MALICIOUS_CHALLENGE_PERCENTAGE must be within [0, 100]")
	}
	return nil
}
