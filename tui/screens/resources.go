package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eragame/erachange/internal/catalog"
	"github.com/eragame/erachange/internal/game"
	"github.com/eragame/erachange/tui/styles"
)

// ResourcesScreen shows the player's ledger and opens the transfer flow.
type ResourcesScreen struct {
	cat     *catalog.Catalog
	ledger  []game.Resource
	cursor  int
	loading bool
	err     error
	width   int
	height  int
}

// NewResourcesScreen builds the resource list screen.
func NewResourcesScreen(cat *catalog.Catalog) *ResourcesScreen {
	return &ResourcesScreen{cat: cat, loading: true}
}

// SetLedger installs a fresh ledger.
func (s *ResourcesScreen) SetLedger(rs []game.Resource) {
	s.ledger = rs
	if s.cursor >= len(rs) {
		s.cursor = 0
	}
}

// SetSize records the terminal size.
func (s *ResourcesScreen) SetSize(w, h int) { s.width, s.height = w, h }

// Update handles messages for the resource list.
func (s *ResourcesScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LedgerResultMsg:
		s.loading = false
		s.err = msg.Err
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.ledger)-1 {
				s.cursor++
			}
		case "r":
			s.loading = true
			s.err = nil
			return func() tea.Msg { return LedgerRequestMsg{} }
		case "t":
			return func() tea.Msg { return NavigateMsg{To: ScreenExchange} }
		case "esc":
			return func() tea.Msg { return NavigateMsg{To: ScreenDashboard} }
		}
	}
	return nil
}

// View renders the ledger.
func (s *ResourcesScreen) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("My resources"))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(styles.MutedStyle.Render("loading..."))
		b.WriteString("\n")
	case s.err != nil:
		b.WriteString(styles.ErrorStyle.Render(s.err.Error()))
		b.WriteString("\n")
	case len(s.ledger) == 0:
		b.WriteString(styles.MutedStyle.Render("nothing in the treasury"))
		b.WriteString("\n")
	}
	for i, r := range s.ledger {
		row := fmt.Sprintf("%s %-18s %8d", s.cat.ResourceIcon(r.Identifier), s.displayName(r), r.Count)
		switch {
		case i == s.cursor:
			row = styles.SelectedRowStyle.Render(row)
		case r.Identifier == game.GoldID:
			row = styles.GoldStyle.Render(row)
		default:
			row = styles.RowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.RenderHelp("t", "transfer") + "  " +
		styles.RenderHelp("r", "refresh") + "  " +
		styles.RenderHelp("esc", "back"))
	return styles.ScreenStyle.Render(b.String())
}

func (s *ResourcesScreen) displayName(r game.Resource) string {
	if r.Name != "" {
		return r.Name
	}
	return s.cat.ResourceName(r.Identifier)
}
