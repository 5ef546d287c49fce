package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

// RPC asks a JSON-RPC 2.0 endpoint (typically a local node or a wallet
// bridge) for accounts. It is present whenever an endpoint is configured.
type RPC struct {
	Endpoint string
	Client   *http.Client

	seq atomic.Int64
}

func NewRPC(endpoint string) *RPC {
	return &RPC{Endpoint: endpoint, Client: http.DefaultClient}
}

func (r *RPC) Present() bool { return r != nil && r.Endpoint != "" }

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	ID     int64     `json:"id"`
	Result any       `json:"result"`
	Error  *rpcError `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// RequestAccounts issues eth_requestAccounts. The request is bounded only by
// ctx; an unresponsive endpoint keeps the call outstanding.
func (r *RPC) RequestAccounts(ctx context.Context) (any, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      r.seq.Add(1),
		Method:  MethodRequestAccounts,
		Params:  []any{},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", r.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("post %s: status %d: %s", r.Endpoint, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return nil, out.Error
	}
	return out.Result, nil
}
