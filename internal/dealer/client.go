package dealer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/openpoker/dealerd/internal/game"
)

// DefaultTimeout bounds every outbound dealer call
const DefaultTimeout = 10 * time.Second

// Client is the remote dealer authority, speaking the JSON contract
// over HTTP with a bounded per-call timeout
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	clock      quartz.Clock
	logger     *log.Logger
}

// NewClient creates a remote dealer client. A zero timeout falls back
// to DefaultTimeout; a nil clock uses the real one.
func NewClient(baseURL string, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
		clock:      clock,
		logger:     logger.WithPrefix("dealer").With("url", baseURL),
	}
}

type betRequest struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type foldRequest struct {
	Name string `json:"name"`
}

// PingResponse is the dealer's ping reply
type PingResponse struct {
	Message      string `json:"message"`
	DealerStatus string `json:"dealer_status,omitempty"`
}

// Ping checks whether the dealer is reachable
func (c *Client) Ping(ctx context.Context) (PingResponse, error) {
	var out PingResponse
	err := c.do(ctx, http.MethodGet, "/ping", nil, &out)
	return out, err
}

// CommunityCards fetches the board from the dealer
func (c *Client) CommunityCards(ctx context.Context) (game.BoardView, error) {
	var out game.BoardView
	err := c.do(ctx, http.MethodGet, "/community_cards", nil, &out)
	return out, err
}

// ShowCards fetches a player's hole cards from the dealer
func (c *Client) ShowCards(ctx context.Context, playerName string) (game.CardsView, error) {
	var out game.CardsView
	path := "/show_cards?player_name=" + url.QueryEscape(playerName)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// PlaceBet submits a bet to the dealer
func (c *Client) PlaceBet(ctx context.Context, playerName string, amount int) (game.BetResult, error) {
	var out game.BetResult
	err := c.do(ctx, http.MethodPost, "/place_bet", betRequest{Name: playerName, Amount: amount}, &out)
	return out, err
}

// Fold submits a fold to the dealer
func (c *Client) Fold(ctx context.Context, playerName string) (game.FoldResult, error) {
	var out game.FoldResult
	err := c.do(ctx, http.MethodPost, "/fold", foldRequest{Name: playerName}, &out)
	return out, err
}

// do performs one bounded HTTP exchange. Any transport error,
// non-success status, undecodable body or error-keyed payload is
// reported as ErrUnavailable so the caller falls back to the local
// authority.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := c.clock.AfterFunc(c.timeout, cancel)
	defer timer.Stop()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrUnavailable, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	// A well-formed body carrying an "error" key counts as a dealer
	// failure under the shared contract
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: invalid response: %v", ErrUnavailable, err)
	}
	if msg, ok := probe["error"]; ok {
		return fmt.Errorf("%w: dealer error: %s", ErrUnavailable, msg)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
		}
	}
	return nil
}
