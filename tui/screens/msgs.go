// Package screens holds the full-screen sub-models of the client TUI. Each
// screen handles its own keys and views; network work is requested through
// messages that the root model turns into commands, so screens never block.
package screens

import (
	"github.com/eragame/erachange/internal/api"
	"github.com/eragame/erachange/internal/game"
)

// Screen identifies one of the client's top-level screens.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenResources
	ScreenExchange
	ScreenMarket
)

// NavigateMsg asks the root model to switch screens.
type NavigateMsg struct{ To Screen }

// Requests. Screens emit these; the root model runs the remote call.

// LoginRequestMsg asks for authentication by player identifier.
type LoginRequestMsg struct{ Identifier string }

// LogoutRequestMsg asks to end the session.
type LogoutRequestMsg struct{}

// LedgerRequestMsg asks for a fresh copy of the player's resources.
type LedgerRequestMsg struct{}

// MarketDataRequestMsg asks for the country list and price lists.
type MarketDataRequestMsg struct{}

// CaravanRequestMsg asks for a non-committing trade cost computation over
// the raw selections. Gold settlement is the server's to compute.
type CaravanRequestMsg struct {
	CountryID game.CountryID
	Sells     []game.ResourceLot
	Buys      []game.ResourceLot
}

// ExchangeSubmitMsg asks to finalize a peer-to-peer transfer.
type ExchangeSubmitMsg struct{ Req api.ExchangeRequest }

// TradeSubmitMsg asks to settle a foreign-market trade.
type TradeSubmitMsg struct{ Req api.TradeRequest }

// Results. The root model delivers these back to the screens.

// LoginResultMsg carries the authentication outcome.
type LoginResultMsg struct {
	Player game.Player
	Err    error
}

// LogoutResultMsg carries the logout outcome.
type LogoutResultMsg struct{ Err error }

// LedgerResultMsg carries a refreshed resource ledger.
type LedgerResultMsg struct {
	Ledger []game.Resource
	Err    error
}

// MarketDataResultMsg carries countries and prices together.
type MarketDataResultMsg struct {
	Countries []game.Country
	Prices    game.MarketPrices
	Err       error
}

// CaravanResultMsg carries the signed deltas of a cost computation.
type CaravanResultMsg struct {
	Deltas []game.Resource
	Err    error
}

// ExchangeResultMsg carries the exchange finalize outcome.
type ExchangeResultMsg struct{ Err error }

// TradeResultMsg carries the trade finalize outcome.
type TradeResultMsg struct{ Err error }
