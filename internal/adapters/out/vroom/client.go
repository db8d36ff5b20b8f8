// Package vroom implements the RouteOptimizer port against a VROOM
// (Vehicle Routing Open-source Optimization Machine) HTTP endpoint.
package vroom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fueldispatch/internal/core/domain/services"
	"fueldispatch/internal/core/ports"
	"fueldispatch/internal/pkg/errs"
)

const defaultTimeout = 30 * time.Second

// Client submits solver payloads to a VROOM server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a VROOM client for the given base URL.
// The URL should point at the solver endpoint, e.g. "http://vroom:3000".
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// solveResponse mirrors the subset of the VROOM response the dispatcher
// cares about. Route geometry is left to the solver's own consumers.
type solveResponse struct {
	Code    int `json:"code"`
	Summary struct {
		Distance int `json:"distance"`
		Duration int `json:"duration"`
	} `json:"summary"`
	Routes     []json.RawMessage `json:"routes"`
	Unassigned []json.RawMessage `json:"unassigned"`
}

// Solve submits the payload and returns the solution summary.
// A non-zero VROOM code is not an error at this level: the solution is
// returned so the caller can decide how to report the rejection.
func (c *Client) Solve(ctx context.Context, payload *services.SolverPayload) (*ports.RouteSolution, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode solver payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build solver request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("solver request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("solver returned status %d", resp.StatusCode)
	}

	var decoded solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode solver response: %w", err)
	}

	return &ports.RouteSolution{
		Code:            decoded.Code,
		Routes:          len(decoded.Routes),
		DistanceMeters:  decoded.Summary.Distance,
		DurationSeconds: decoded.Summary.Duration,
		Unassigned:      len(decoded.Unassigned),
	}, nil
}
