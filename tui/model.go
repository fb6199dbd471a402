// Package tui wires the screens into one bubbletea program. The root model
// owns the session, routes messages to the active screen, and turns screen
// requests into remote calls so no screen ever blocks the event loop.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eragame/erachange/internal/api"
	"github.com/eragame/erachange/internal/catalog"
	"github.com/eragame/erachange/internal/game"
	"github.com/eragame/erachange/tui/screens"
)

// Model is the root TUI model.
type Model struct {
	client  api.Client
	timeout time.Duration

	screen    screens.Screen
	login     *screens.LoginScreen
	dashboard *screens.DashboardScreen
	resources *screens.ResourcesScreen
	exchange  *screens.ExchangeScreen
	market    *screens.MarketScreen

	player game.Player
	ledger []game.Resource

	width  int
	height int
}

// NewModel builds the root model over a client and display catalog.
func NewModel(client api.Client, cat *catalog.Catalog, cfg game.ClientConfig) Model {
	return Model{
		client:    client,
		timeout:   time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		screen:    screens.ScreenLogin,
		login:     screens.NewLoginScreen(),
		dashboard: screens.NewDashboardScreen(),
		resources: screens.NewResourcesScreen(cat),
		exchange:  screens.NewExchangeScreen(cat),
		market:    screens.NewMarketScreen(cat, cfg.BuyCeiling),
	}
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages: global keys, screen requests, remote results,
// then forwards to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.login.SetSize(msg.Width, msg.Height)
		m.dashboard.SetSize(msg.Width, msg.Height)
		m.resources.SetSize(msg.Width, msg.Height)
		m.exchange.SetSize(msg.Width, msg.Height)
		m.market.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screens.NavigateMsg:
		return m.navigate(msg.To)

	case screens.LoginRequestMsg:
		return m, m.loginCmd(msg.Identifier)
	case screens.LogoutRequestMsg:
		return m, m.logoutCmd()
	case screens.LedgerRequestMsg:
		return m, m.ledgerCmd()
	case screens.MarketDataRequestMsg:
		return m, m.marketDataCmd()
	case screens.CaravanRequestMsg:
		return m, m.caravanCmd(msg)
	case screens.ExchangeSubmitMsg:
		return m, m.exchangeCmd(msg.Req)
	case screens.TradeSubmitMsg:
		return m, m.tradeCmd(msg.Req)

	case screens.LoginResultMsg:
		if msg.Err != nil {
			break
		}
		m.player = msg.Player
		m.dashboard.SetPlayer(msg.Player)
		next, navCmd := m.navigate(screens.ScreenDashboard)
		return next, tea.Batch(navCmd, next.(Model).ledgerCmd())

	case screens.LogoutResultMsg:
		// Leave the session either way; a failed logout call is not
		// worth keeping the user signed in for.
		m.player = game.Player{}
		m.ledger = nil
		m.login.Reset()
		m.screen = screens.ScreenLogin
		return m, nil

	case screens.LedgerResultMsg:
		if msg.Err == nil {
			m.ledger = game.EnsureGold(msg.Ledger)
			m.resources.SetLedger(m.ledger)
			m.exchange.SetLedger(m.ledger)
			m.market.SetLedger(m.ledger)
			m.dashboard.SetGold(game.GoldCount(m.ledger))
		}
	}

	return m, m.route(msg)
}

// navigate switches screens, preparing the target for entry.
func (m Model) navigate(to screens.Screen) (tea.Model, tea.Cmd) {
	m.screen = to
	switch to {
	case screens.ScreenLogin:
		m.login.Reset()
	case screens.ScreenResources:
		return m, m.ledgerCmd()
	case screens.ScreenExchange:
		m.exchange.Begin()
	case screens.ScreenMarket:
		m.market.Begin()
		return m, tea.Batch(m.marketDataCmd(), m.ledgerCmd())
	}
	return m, nil
}

// route forwards a message to the active screen.
func (m Model) route(msg tea.Msg) tea.Cmd {
	switch m.screen {
	case screens.ScreenLogin:
		return m.login.Update(msg)
	case screens.ScreenDashboard:
		return m.dashboard.Update(msg)
	case screens.ScreenResources:
		return m.resources.Update(msg)
	case screens.ScreenExchange:
		return m.exchange.Update(msg)
	case screens.ScreenMarket:
		return m.market.Update(msg)
	}
	return nil
}

func (m Model) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) loginCmd(identifier string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		p, err := m.client.Login(ctx, identifier)
		return screens.LoginResultMsg{Player: p, Err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		return screens.LogoutResultMsg{Err: m.client.Logout(ctx)}
	}
}

func (m Model) ledgerCmd() tea.Cmd {
	id := m.player.PlayerID()
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		rs, err := m.client.PlayerResources(ctx, id)
		return screens.LedgerResultMsg{Ledger: rs, Err: err}
	}
}

func (m Model) marketDataCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		cs, err := m.client.ForeignCountries(ctx)
		if err != nil {
			return screens.MarketDataResultMsg{Err: err}
		}
		ps, err := m.client.MarketPrices(ctx)
		return screens.MarketDataResultMsg{Countries: cs, Prices: ps, Err: err}
	}
}

func (m Model) caravanCmd(req screens.CaravanRequestMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		deltas, err := m.client.CalculateCaravan(ctx, req.CountryID, req.Sells, req.Buys)
		return screens.CaravanResultMsg{Deltas: deltas, Err: err}
	}
}

func (m Model) exchangeCmd(req api.ExchangeRequest) tea.Cmd {
	id := m.player.PlayerID()
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		return screens.ExchangeResultMsg{Err: m.client.ExchangeResources(ctx, id, req)}
	}
}

func (m Model) tradeCmd(req api.TradeRequest) tea.Cmd {
	id := m.player.PlayerID()
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		return screens.TradeResultMsg{Err: m.client.MarketTrade(ctx, id, req)}
	}
}

// View renders the active screen over the full terminal.
func (m Model) View() string {
	var view string
	switch m.screen {
	case screens.ScreenLogin:
		view = m.login.View()
	case screens.ScreenDashboard:
		view = m.dashboard.View()
	case screens.ScreenResources:
		view = m.resources.View()
	case screens.ScreenExchange:
		view = m.exchange.View()
	case screens.ScreenMarket:
		view = m.market.View()
	}
	if m.width == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}
