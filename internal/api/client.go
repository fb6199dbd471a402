// Package api defines the remote game-state contract the client consumes
// and its two implementations: HTTP against the real game server, and an
// explicit in-memory fake for tests and offline demos. Which one runs is a
// configuration decision, never a silent runtime fallback.
package api

import (
	"context"
	"errors"

	"github.com/eragame/erachange/internal/game"
)

var (
	// ErrAuthFailed is returned when the server rejects an identifier.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrUnknownPlayer is returned for operations against a player the
	// server does not know.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrUnknownCountry is returned for a trade against a country the
	// server does not know.
	ErrUnknownCountry = errors.New("unknown country")
)

// ExchangeRequest is the payload of a peer-to-peer resource transfer.
// Field names follow the server's wire contract.
type ExchangeRequest struct {
	WithWhom  string             `json:"with_whom"`
	Resources []game.ResourceLot `json:"hashed_resources"`
}

// TradeRequest is the payload of a foreign-market trade settlement.
type TradeRequest struct {
	CountryID int64              `json:"country_id"`
	Sells     []game.ResourceLot `json:"res_pl_sells"`
	Buys      []game.ResourceLot `json:"res_pl_buys"`
}

// Client is the remote game-state service. Every call is a single attempt:
// no retries, no backoff; failures surface to the caller unchanged.
type Client interface {
	// Login authenticates by player identifier.
	Login(ctx context.Context, identifier string) (game.Player, error)
	// Logout ends the server session.
	Logout(ctx context.Context) error
	// PlayerResources returns the player's resource ledger.
	PlayerResources(ctx context.Context, id game.PlayerID) ([]game.Resource, error)
	// ForeignCountries lists the trade counterparties.
	ForeignCountries(ctx context.Context) ([]game.Country, error)
	// MarketPrices returns the full per-country price lists.
	MarketPrices(ctx context.Context) (game.MarketPrices, error)
	// CalculateCaravan computes the signed resource deltas a trade would
	// produce without committing it.
	CalculateCaravan(ctx context.Context, countryID game.CountryID, sells, buys []game.ResourceLot) ([]game.Resource, error)
	// ExchangeResources transfers resources to another player.
	ExchangeResources(ctx context.Context, id game.PlayerID, req ExchangeRequest) error
	// MarketTrade settles a foreign-market trade.
	MarketTrade(ctx context.Context, id game.PlayerID, req TradeRequest) error
}
