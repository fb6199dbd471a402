package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/eragame/erachange/internal/game"
)

// HTTPClient talks to the game server over its JSON REST API.
type HTTPClient struct {
	cfg  Config
	http *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the configured server.
func NewHTTPClient(cfg Config) *HTTPClient {
	cfg = cfg.withDefaults()
	return &HTTPClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type loginRequest struct {
	Identifier string `json:"identificator"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Player  *game.Player `json:"player,omitempty"`
	Message string       `json:"message,omitempty"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type caravanRequest struct {
	CountryID int64              `json:"country_id"`
	Sells     []game.ResourceLot `json:"res_pl_sells"`
	Buys      []game.ResourceLot `json:"res_pl_buys"`
}

type caravanResponse struct {
	ToPlayer []game.Resource `json:"res_to_player"`
}

// Login authenticates by player identifier.
func (c *HTTPClient) Login(ctx context.Context, identifier string) (game.Player, error) {
	var resp loginResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Identifier: identifier}, &resp); err != nil {
		return game.Player{}, err
	}
	if !resp.Success || resp.Player == nil {
		if resp.Message != "" {
			return game.Player{}, fmt.Errorf("%w: %s", ErrAuthFailed, resp.Message)
		}
		return game.Player{}, ErrAuthFailed
	}
	return *resp.Player, nil
}

// Logout ends the server session. Errors are returned but carry no state to
// roll back.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", struct{}{}, nil)
}

// PlayerResources returns the player's resource ledger.
func (c *HTTPClient) PlayerResources(ctx context.Context, id game.PlayerID) ([]game.Resource, error) {
	var out []game.Resource
	if err := c.get(ctx, fmt.Sprintf("/players/%d/resources", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ForeignCountries lists the trade counterparties.
func (c *HTTPClient) ForeignCountries(ctx context.Context) ([]game.Country, error) {
	var out []game.Country
	if err := c.get(ctx, "/foreign_countries", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarketPrices returns the per-country price lists.
func (c *HTTPClient) MarketPrices(ctx context.Context) (game.MarketPrices, error) {
	var out game.MarketPrices
	if err := c.get(ctx, "/market_prices", &out); err != nil {
		return game.MarketPrices{}, err
	}
	return out, nil
}

// CalculateCaravan computes the signed deltas of a prospective trade.
func (c *HTTPClient) CalculateCaravan(ctx context.Context, countryID game.CountryID, sells, buys []game.ResourceLot) ([]game.Resource, error) {
	req := caravanRequest{CountryID: int64(countryID), Sells: sells, Buys: buys}
	var resp caravanResponse
	if err := c.post(ctx, "/caravan/calculate", req, &resp); err != nil {
		return nil, err
	}
	return resp.ToPlayer, nil
}

// ExchangeResources transfers resources to another player.
func (c *HTTPClient) ExchangeResources(ctx context.Context, id game.PlayerID, req ExchangeRequest) error {
	var resp submitResponse
	if err := c.post(ctx, fmt.Sprintf("/players/%d/exchange", id), req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("exchange rejected: %s", resp.Error)
	}
	return nil
}

// MarketTrade settles a foreign-market trade.
func (c *HTTPClient) MarketTrade(ctx context.Context, id game.PlayerID, req TradeRequest) error {
	var resp submitResponse
	if err := c.post(ctx, fmt.Sprintf("/players/%d/market_trade", id), req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("trade rejected: %s", resp.Error)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, msg)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}

func (c *HTTPClient) url(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}
