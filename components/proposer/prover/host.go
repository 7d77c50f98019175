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
	"github.com/ethereum/go-ethereum/rpc"
)

// Host abstracts the witness-generation host and the rollup node. The
// pipeline only sequences it; witness generation itself runs out of process.
type Host interface {
	// FinalizedL2BlockNumber returns the newest L2 block whose L1 derivation
	// is finalized. ok is false when no finalized block past the reference
	// exists yet.
	FinalizedL2BlockNumber(ctx context.Context, reference uint64) (uint64, bool, error)

	// FetchRangeWitness returns the serialized range-guest stdin for the
	// block range [start, end], derived against the given L1 head.
	FetchRangeWitness(ctx context.Context, start, end uint64, l1Head common.Hash, safeDBFallback bool) (hexutil.Bytes, error)

	// HeaderPreimages returns the RLP encoded L1 headers up to and including
	// the given L1 head, as required by the aggregation guest.
	HeaderPreimages(ctx context.Context, l1Head common.Hash) ([]hexutil.Bytes, error)
}

// syncStatus is the subset of the rollup node's optimism_syncStatus response
// the host needs.
type syncStatus struct {
	FinalizedL2 struct {
		Number uint64 `json:"number"`
	} `json:"finalized_l2"`
}

// RPCHost talks to the rollup node over RPC and to the witness host over
// HTTP. Witness generation can take minutes, so requests are retried with a
// constant backoff rather than failing the whole defense phase on a blip.
type RPCHost struct {
	rollupNode *rpc.Client
	witnessURL string
	client     *http.Client
}

func NewRPCHost(ctx context.Context, rollupNodeURL, witnessURL string) (*RPCHost, error) {
	rollupNode, err := rpc.DialContext(ctx, rollupNodeURL)
	if err != nil {
		return nil, fmt.Errorf("could not dial rollup node: %w", err)
	}
	return &RPCHost{
		rollupNode: rollupNode,
		witnessURL: witnessURL,
		client:     &http.Client{Timeout: 10 * time.Minute},
	}, nil
}

func (h *RPCHost) FinalizedL2BlockNumber(ctx context.Context, reference uint64) (uint64, bool, error) {
	var status syncStatus
	if err := h.rollupNode.CallContext(ctx, &status, "optimism_syncStatus"); err != nil {
		return 0, false, fmt.Errorf("fetching sync status: %w", err)
	}
	finalized := status.FinalizedL2.Number
	if finalized <= reference {
		return 0, false, nil
	}
	return finalized, true, nil
}

type rangeWitnessRequest struct {
	Start          uint64      `json:"start"`
	End            uint64      `json:"end"`
	L1Head         common.Hash `json:"l1_head"`
	SafeDBFallback bool        `json:"safe_db_fallback"`
}

type rangeWitnessResponse struct {
	Stdin hexutil.Bytes `json:"stdin"`
}

func (h *RPCHost) FetchRangeWitness(ctx context.Context, start, end uint64, l1Head common.Hash, safeDBFallback bool) (hexutil.Bytes, error) {
	req := rangeWitnessRequest{Start: start, End: end, L1Head: l1Head, SafeDBFallback: safeDBFallback}
	var resp rangeWitnessResponse
	if err := h.post(ctx, "/witness/range", req, &resp); err != nil {
		return nil, fmt.Errorf("fetching range witness: %w", err)
	}
	return resp.Stdin, nil
}

type headerPreimagesRequest struct {
	L1Head common.Hash `json:"l1_head"`
}

type headerPreimagesResponse struct {
	Headers []hexutil.Bytes `json:"headers"`
}

func (h *RPCHost) HeaderPreimages(ctx context.Context, l1Head common.Hash) ([]hexutil.Bytes, error) {
	req := headerPreimagesRequest{L1Head: l1Head}
	var resp headerPreimagesResponse
	if err := h.post(ctx, "/witness/headers", req, &resp); err != nil {
		return nil, fmt.Errorf("fetching header preimages: %w", err)
	}
	return resp.Headers, nil
}

func (h *RPCHost) post(ctx context.Context, path string, request, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.witnessURL+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := h.client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("witness host returned status %d", res.StatusCode)
		}
		return json.NewDecoder(res.Body).Decode(response)
	}

	return backoff.Retry(attempt, backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(12*time.Second), 5), ctx))
}
