package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eragame/erachange/internal/game"
	"github.com/eragame/erachange/tui/styles"
)

// DashboardScreen is the landing screen after login: the player card and
// navigation into the resource and market flows.
type DashboardScreen struct {
	player     game.Player
	gold       int64
	cursor     int
	busy       bool
	confirming bool
	err        error
	width      int
	height     int
}

var dashboardEntries = []struct {
	label  string
	target Screen
}{
	{"My resources", ScreenResources},
	{"Foreign market", ScreenMarket},
	{"Send resources", ScreenExchange},
}

// NewDashboardScreen builds an empty dashboard.
func NewDashboardScreen() *DashboardScreen { return &DashboardScreen{} }

// SetPlayer installs the authenticated player.
func (s *DashboardScreen) SetPlayer(p game.Player) {
	s.player = p
	s.cursor = 0
	s.busy = false
	s.confirming = false
	s.err = nil
}

// SetGold updates the gold balance shown on the player card.
func (s *DashboardScreen) SetGold(n int64) { s.gold = n }

// SetSize records the terminal size.
func (s *DashboardScreen) SetSize(w, h int) { s.width, s.height = w, h }

// Update handles messages for the dashboard.
func (s *DashboardScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LogoutResultMsg:
		s.busy = false
		s.err = msg.Err
		return nil

	case tea.KeyMsg:
		if s.busy {
			return nil
		}
		if s.confirming {
			switch msg.String() {
			case "enter", "y":
				s.confirming = false
				s.busy = true
				return func() tea.Msg { return LogoutRequestMsg{} }
			case "esc", "n":
				s.confirming = false
			}
			return nil
		}
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(dashboardEntries)-1 {
				s.cursor++
			}
		case "enter":
			to := dashboardEntries[s.cursor].target
			return func() tea.Msg { return NavigateMsg{To: to} }
		case "q":
			s.confirming = true
		}
	}
	return nil
}

// View renders the player card and menu.
func (s *DashboardScreen) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Era of Change"))
	b.WriteString("\n\n")

	name := s.player.Name
	if name == "" {
		name = s.player.Identifier
	}
	b.WriteString(styles.SectionTitleStyle.Render(name))
	b.WriteString("\n")
	if s.player.Family != "" {
		b.WriteString(styles.MutedStyle.Render("House of " + s.player.Family))
		b.WriteString("\n")
	}
	if len(s.player.Jobs) > 0 {
		b.WriteString(styles.MutedStyle.Render(strings.Join(s.player.Jobs, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(styles.GoldStyle.Render(fmt.Sprintf("Gold: %d", s.gold)))
	b.WriteString("\n\n")

	for i, e := range dashboardEntries {
		row := "  " + e.label
		if i == s.cursor {
			row = styles.SelectedRowStyle.Render("> " + e.label)
		} else {
			row = styles.RowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	switch {
	case s.busy:
		b.WriteString(styles.MutedStyle.Render("signing out..."))
	case s.err != nil:
		b.WriteString(styles.ErrorStyle.Render(s.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(styles.RenderHelp("enter", "open") + "  " +
		styles.RenderHelp("q", "sign out") + "  " +
		styles.RenderHelp("ctrl+c", "quit"))

	view := styles.ScreenStyle.Render(b.String())
	if s.confirming {
		dialog := styles.DialogStyle.Render(
			styles.DialogTitleStyle.Render("Sign out?") + "\n\n" +
				styles.RenderHelp("enter", "sign out") + "  " + styles.RenderHelp("esc", "stay"))
		return overlay(view, dialog, s.width)
	}
	return view
}
