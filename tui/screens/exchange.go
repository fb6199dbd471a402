package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eragame/erachange/internal/api"
	"github.com/eragame/erachange/internal/catalog"
	"github.com/eragame/erachange/internal/game"
	"github.com/eragame/erachange/internal/wizard"
	"github.com/eragame/erachange/tui/styles"
)

// ExchangeScreen runs the peer-to-peer transfer flow: pick a recipient by
// identifier or scan, select resources and quantities from the ledger, then
// confirm and send.
type ExchangeScreen struct {
	cat *catalog.Catalog
	wiz *wizard.Wizard

	recipient     textinput.Model
	recipientName string
	scanner       ScanPrompt

	ledger     []game.Resource
	cursor     int
	confirming bool
	qtyErr     error
	err        error
	width      int
	height     int
}

// NewExchangeScreen builds the transfer screen.
func NewExchangeScreen(cat *catalog.Catalog) *ExchangeScreen {
	ti := textinput.New()
	ti.Placeholder = "recipient identifier"
	ti.CharLimit = 128
	ti.Width = 32
	return &ExchangeScreen{
		cat:       cat,
		wiz:       wizard.New(wizard.FlowExchange),
		recipient: ti,
		scanner:   NewScanPrompt(true),
	}
}

// SetLedger installs the resources available for transfer.
func (s *ExchangeScreen) SetLedger(rs []game.Resource) {
	s.ledger = rs
	if s.cursor >= len(rs) {
		s.cursor = 0
	}
}

// SetSize records the terminal size.
func (s *ExchangeScreen) SetSize(w, h int) { s.width, s.height = w, h }

// Begin starts a fresh transfer.
func (s *ExchangeScreen) Begin() {
	s.wiz.Reset()
	s.recipient.SetValue("")
	s.recipient.Focus()
	s.recipientName = ""
	s.scanner.Close()
	s.cursor = 0
	s.confirming = false
	s.qtyErr = nil
	s.err = nil
}

// Update handles messages for the transfer flow.
func (s *ExchangeScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ExchangeResultMsg:
		s.wiz.EndFinalize(msg.Err == nil)
		s.confirming = false
		if msg.Err != nil {
			s.err = msg.Err
			return nil
		}
		// Sent; the resource screen reloads the treasury on entry.
		return func() tea.Msg { return NavigateMsg{To: ScreenResources} }

	case tea.KeyMsg:
		if s.wiz.Finalizing() {
			return nil
		}
		if s.confirming {
			return s.updateConfirm(msg)
		}
		switch s.wiz.Step() {
		case wizard.StepCounterparty:
			return s.updateRecipient(msg)
		case wizard.StepSelectSell:
			return s.updateSelect(msg)
		case wizard.StepQuantity:
			s.qtyErr = updateQuantity(s.wiz, msg)
		}
	}
	return nil
}

func (s *ExchangeScreen) updateRecipient(msg tea.KeyMsg) tea.Cmd {
	if s.scanner.Active() {
		if res := s.scanner.Update(msg); res != nil {
			s.recipient.SetValue(res.Identifier)
			s.recipientName = res.DisplayName
		}
		return nil
	}
	switch msg.String() {
	case "enter":
		if err := s.wiz.SetRecipient(s.recipient.Value()); err != nil {
			s.err = err
			return nil
		}
		s.err = nil
		s.cursor = 0
	case "ctrl+s":
		s.scanner.Open()
	case "esc":
		return func() tea.Msg { return NavigateMsg{To: ScreenDashboard} }
	default:
		s.err = nil
		var cmd tea.Cmd
		s.recipient, cmd = s.recipient.Update(msg)
		return cmd
	}
	return nil
}

func (s *ExchangeScreen) updateSelect(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.ledger)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(s.ledger) {
			s.qtyErr = nil
			s.err = s.wiz.PickResource(s.ledger[s.cursor])
		}
	case "d":
		if s.cursor < len(s.ledger) {
			s.wiz.Remove(s.ledger[s.cursor].Identifier)
		}
	case "c":
		if err := s.wiz.ValidateExchange(); err != nil {
			s.err = err
			return nil
		}
		s.err = nil
		s.confirming = true
	case "esc":
		s.wiz.Back()
		s.recipient.Focus()
	}
	return nil
}

func (s *ExchangeScreen) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "y":
		if err := s.wiz.BeginFinalize(); err != nil {
			return nil
		}
		req := api.ExchangeRequest{
			WithWhom:  s.wiz.Recipient(),
			Resources: s.wiz.ExchangeLots(),
		}
		return func() tea.Msg { return ExchangeSubmitMsg{Req: req} }
	case "esc", "n":
		s.confirming = false
	}
	return nil
}

// View renders the current wizard step.
func (s *ExchangeScreen) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Send resources"))
	b.WriteString("\n\n")

	switch s.wiz.Step() {
	case wizard.StepCounterparty:
		b.WriteString(styles.LabelStyle.Render("To whom?"))
		b.WriteString("\n")
		b.WriteString(styles.FocusedInputStyle.Render(s.recipient.View()))
		b.WriteString("\n")
		if s.recipientName != "" {
			b.WriteString(styles.MutedStyle.Render(s.recipientName))
			b.WriteString("\n")
		}
		s.writeErr(&b)
		b.WriteString("\n")
		b.WriteString(styles.RenderHelp("enter", "next") + "  " +
			styles.RenderHelp("ctrl+s", "scan badge") + "  " +
			styles.RenderHelp("esc", "back"))

	default:
		b.WriteString(styles.LabelStyle.Render("To: "))
		b.WriteString(styles.RowStyle.Render(s.recipientLabel()))
		b.WriteString("\n\n")
		for i, r := range s.ledger {
			row := fmt.Sprintf("%s %-18s %8d", s.cat.ResourceIcon(r.Identifier), s.resourceName(r), r.Count)
			if sel, ok := s.wiz.SellSelection().Get(r.Identifier); ok {
				row += styles.GainStyle.Render(fmt.Sprintf("  → %d", sel.SelectedCount))
			}
			if i == s.cursor {
				row = styles.SelectedRowStyle.Render(row)
			} else {
				row = styles.RowStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
		s.writeErr(&b)
		b.WriteString("\n")
		b.WriteString(styles.RenderHelp("enter", "pick") + "  " +
			styles.RenderHelp("d", "drop") + "  " +
			styles.RenderHelp("c", "send") + "  " +
			styles.RenderHelp("esc", "back"))
	}

	view := styles.ScreenStyle.Render(b.String())
	if s.wiz.Step() == wizard.StepQuantity {
		return overlay(view, viewQuantity(s.cat, s.wiz, s.qtyErr), s.width)
	}
	if s.confirming {
		return overlay(view, s.confirmView(), s.width)
	}
	return overlay(view, s.scanner.View(), s.width)
}

func (s *ExchangeScreen) confirmView() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitleStyle.Render("Send to " + s.recipientLabel() + "?"))
	b.WriteString("\n\n")
	for _, it := range s.wiz.SellSelection().Items() {
		b.WriteString(fmt.Sprintf("%s %s  %d\n",
			s.cat.ResourceIcon(it.Identifier), s.resourceName(it.Resource), it.SelectedCount))
	}
	b.WriteString("\n")
	if s.wiz.Finalizing() {
		b.WriteString(styles.MutedStyle.Render("sending..."))
	} else {
		b.WriteString(styles.RenderHelp("enter", "send") + "  " + styles.RenderHelp("esc", "back"))
	}
	return styles.DialogStyle.Render(b.String())
}

func (s *ExchangeScreen) recipientLabel() string {
	if s.recipientName != "" && s.recipientName != s.wiz.Recipient() {
		return fmt.Sprintf("%s (%s)", s.recipientName, s.wiz.Recipient())
	}
	return s.wiz.Recipient()
}

func (s *ExchangeScreen) resourceName(r game.Resource) string {
	if r.Name != "" {
		return r.Name
	}
	return s.cat.ResourceName(r.Identifier)
}

func (s *ExchangeScreen) writeErr(b *strings.Builder) {
	if s.err == nil {
		return
	}
	msg := s.err.Error()
	if errors.Is(s.err, wizard.ErrNoSelection) {
		msg = "pick at least one resource first"
	}
	b.WriteString(styles.ErrorStyle.Render(msg))
	b.WriteString("\n")
}
