package prover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
)

// DefaultNetworkPrivateKey is only valid against a proving service running in
// mock mode.
const DefaultNetworkPrivateKey = "0x0000000000000000000000000000000000000000000000000000000000000001"

// ProofClient produces range and aggregation proofs. The mock and network
// variants return the same Proof shape; callers never branch on the mode.
type ProofClient interface {
	// RangeVKey returns the verifying key of the range guest program.
	RangeVKey() common.Hash

	// RangeProof produces a compressed proof over the range guest stdin.
	RangeProof(ctx context.Context, stdin hexutil.Bytes) (*Proof, error)

	// AggregationProof produces a groth16 proof over the aggregation stdin.
	AggregationProof(ctx context.Context, stdin []byte) (*Proof, error)
}

// NewProofClient constructs the proving client for the configured mode. The
// branch happens here, once; both variants talk to the same service.
func NewProofClient(ctx context.Context, l log.Logger, endpoint, networkPrivateKey string, mockMode bool) (ProofClient, error) {
	if networkPrivateKey == "" {
		l.Warn("Using default NETWORK_PRIVATE_KEY of 0x01. This is only valid in mock mode.")
		networkPrivateKey = DefaultNetworkPrivateKey
	}
	network, err := newNetworkClient(ctx, l, endpoint, networkPrivateKey)
	if err != nil {
		return nil, err
	}
	if mockMode {
		return &MockClient{network: network, l: l}, nil
	}
	return network, nil
}

type vkeysResponse struct {
	RangeVKey       common.Hash `json:"range_vkey"`
	AggregationVKey common.Hash `json:"aggregation_vkey"`
}

type proveRequest struct {
	Mode           ProofMode     `json:"mode"`
	Strategy       string        `json:"strategy,omitempty"`
	SkipSimulation bool          `json:"skip_simulation,omitempty"`
	CycleLimit     uint64        `json:"cycle_limit,omitempty"`
	Stdin          hexutil.Bytes `json:"stdin"`
}

type executeRequest struct {
	Guest string        `json:"guest"`
	Stdin hexutil.Bytes `json:"stdin"`
}

type executeResponse struct {
	PublicValues hexutil.Bytes `json:"public_values"`
}

// NetworkClient requests real proofs from the proving network.
type NetworkClient struct {
	l          log.Logger
	endpoint   string
	privateKey string
	client     *http.Client
	rangeVKey  common.Hash
	aggVKey    common.Hash
}

func newNetworkClient(ctx context.Context, l log.Logger, endpoint, privateKey string) (*NetworkClient, error) {
	c := &NetworkClient{
		l:          l,
		endpoint:   endpoint,
		privateKey: privateKey,
		// Proof generation routinely takes many minutes.
		client: &http.Client{Timeout: 90 * time.Minute},
	}
	var vkeys vkeysResponse
	if err := c.post(ctx, "/vkeys", struct{}{}, &vkeys); err != nil {
		return nil, fmt.Errorf("fetching verifying keys: %w", err)
	}
	c.rangeVKey = vkeys.RangeVKey
	c.aggVKey = vkeys.AggregationVKey
	return c, nil
}

func (c *NetworkClient) RangeVKey() common.Hash {
	return c.rangeVKey
}

func (c *NetworkClient) RangeProof(ctx context.Context, stdin hexutil.Bytes) (*Proof, error) {
	req := proveRequest{
		Mode:           ProofModeCompressed,
		Strategy:       HostedFulfillmentStrategy,
		SkipSimulation: true,
		CycleLimit:     RangeProofCycleLimit,
		Stdin:          stdin,
	}
	var proof Proof
	if err := c.post(ctx, "/prove/range", req, &proof); err != nil {
		return nil, fmt.Errorf("range proof request: %w", err)
	}
	return &proof, nil
}

func (c *NetworkClient) AggregationProof(ctx context.Context, stdin []byte) (*Proof, error) {
	req := proveRequest{
		Mode:  ProofModeGroth16,
		Stdin: stdin,
	}
	var proof Proof
	if err := c.post(ctx, "/prove/aggregation", req, &proof); err != nil {
		return nil, fmt.Errorf("aggregation proof request: %w", err)
	}
	return &proof, nil
}

// execute runs the guest without proving and returns its public values.
func (c *NetworkClient) execute(ctx context.Context, guest string, stdin hexutil.Bytes) (hexutil.Bytes, error) {
	req := executeRequest{Guest: guest, Stdin: stdin}
	var resp executeResponse
	if err := c.post(ctx, "/execute", req, &resp); err != nil {
		return nil, fmt.Errorf("guest execution request: %w", err)
	}
	return resp.PublicValues, nil
}

func (c *NetworkClient) post(ctx context.Context, path string, request, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.privateKey)

		res, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("prover network returned status %d", res.StatusCode)
		}
		return json.NewDecoder(res.Body).Decode(response)
	}

	return backoff.Retry(attempt, backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(30*time.Second), 3), ctx))
}

// MockClient executes the guests without proving and wraps the public values
// in proofs with empty seals.
type MockClient struct {
	l       log.Logger
	network *NetworkClient
}

func (c *MockClient) RangeVKey() common.Hash {
	return c.network.RangeVKey()
}

func (c *MockClient) RangeProof(ctx context.Context, stdin hexutil.Bytes) (*Proof, error) {
	c.l.Info("Using mock mode for range proof generation")
	publicValues, err := c.network.execute(ctx, "range", stdin)
	if err != nil {
		return nil, err
	}
	return &Proof{Mode: ProofModeCompressed, PublicValues: publicValues, Bytes: hexutil.Bytes{}}, nil
}

func (c *MockClient) AggregationProof(ctx context.Context, stdin []byte) (*Proof, error) {
	c.l.Info("Using mock mode for aggregation proof generation")
	publicValues, err := c.network.execute(ctx, "aggregation", stdin)
	if err != nil {
		return nil, err
	}
	return &Proof{Mode: ProofModeGroth16, PublicValues: publicValues, Bytes: hexutil.Bytes{}}, nil
}
