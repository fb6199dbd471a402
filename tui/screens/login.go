package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eragame/erachange/tui/styles"
)

// LoginScreen authenticates by player identifier, typed or scanned. A scan
// fills the field and submits immediately.
type LoginScreen struct {
	input   textinput.Model
	scanner ScanPrompt
	busy    bool
	err     error
	width   int
	height  int
}

// NewLoginScreen builds the login screen with the identifier field focused.
func NewLoginScreen() *LoginScreen {
	ti := textinput.New()
	ti.Placeholder = "player identifier"
	ti.CharLimit = 128
	ti.Width = 32
	ti.Focus()
	return &LoginScreen{input: ti, scanner: NewScanPrompt(false)}
}

// SetSize records the terminal size.
func (s *LoginScreen) SetSize(w, h int) { s.width, s.height = w, h }

// Reset clears the form for a fresh session.
func (s *LoginScreen) Reset() {
	s.input.SetValue("")
	s.busy = false
	s.err = nil
	s.scanner.Close()
	s.input.Focus()
}

// Update handles messages for the login screen.
func (s *LoginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LoginResultMsg:
		s.busy = false
		s.err = msg.Err
		return nil

	case tea.KeyMsg:
		if s.busy {
			return nil
		}
		if s.scanner.Active() {
			if res := s.scanner.Update(msg); res != nil {
				s.input.SetValue(res.Identifier)
				return s.submit()
			}
			return nil
		}
		switch msg.String() {
		case "enter":
			return s.submit()
		case "ctrl+s":
			s.scanner.Open()
			return nil
		default:
			s.err = nil
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return cmd
		}
	}
	return nil
}

func (s *LoginScreen) submit() tea.Cmd {
	id := strings.TrimSpace(s.input.Value())
	if id == "" {
		s.err = fmt.Errorf("enter a player identifier")
		return nil
	}
	s.busy = true
	s.err = nil
	return func() tea.Msg { return LoginRequestMsg{Identifier: id} }
}

// View renders the login form.
func (s *LoginScreen) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Era of Change"))
	b.WriteString("\n\n")
	b.WriteString(styles.LabelStyle.Render("Sign in"))
	b.WriteString("\n")
	if s.scanner.Active() {
		b.WriteString(styles.InputStyle.Render(s.input.View()))
	} else {
		b.WriteString(styles.FocusedInputStyle.Render(s.input.View()))
	}
	b.WriteString("\n")
	switch {
	case s.busy:
		b.WriteString(styles.MutedStyle.Render("signing in..."))
	case s.err != nil:
		b.WriteString(styles.ErrorStyle.Render(s.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.RenderHelp("enter", "sign in") + "  " +
		styles.RenderHelp("ctrl+s", "scan badge") + "  " +
		styles.RenderHelp("ctrl+c", "quit"))

	view := styles.ScreenStyle.Render(b.String())
	return overlay(view, s.scanner.View(), s.width)
}
