package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eragame/erachange/internal/scan"
	"github.com/eragame/erachange/tui/styles"
)

// ScanPrompt is the in-TUI stand-in for the camera scanner: the user pastes
// the decoded code text and it is resolved to a player identifier. With
// confirm enabled the resolved player is shown for approval before it is
// accepted, matching the badge-scan confirmation flow.
type ScanPrompt struct {
	input   textinput.Model
	confirm bool
	staged  *scan.Resolved
	active  bool
	err     error
}

// NewScanPrompt builds an inactive prompt. confirm adds an approval dialog
// between resolving and accepting.
func NewScanPrompt(confirm bool) ScanPrompt {
	ti := textinput.New()
	ti.Placeholder = "paste scanned code"
	ti.CharLimit = 512
	ti.Width = 40
	return ScanPrompt{input: ti, confirm: confirm}
}

// Active reports whether the prompt is capturing input.
func (s *ScanPrompt) Active() bool { return s.active }

// Open activates the prompt with a cleared input.
func (s *ScanPrompt) Open() {
	s.input.SetValue("")
	s.staged = nil
	s.err = nil
	s.active = true
	s.input.Focus()
}

// Close deactivates the prompt, discarding any staged result.
func (s *ScanPrompt) Close() {
	s.active = false
	s.staged = nil
	s.input.Blur()
}

// Update handles one key press. A non-nil result means the scan was
// accepted and the prompt has closed itself.
func (s *ScanPrompt) Update(msg tea.KeyMsg) *scan.Resolved {
	if s.staged != nil {
		switch msg.String() {
		case "enter", "y":
			res := s.staged
			s.Close()
			return res
		case "esc", "n":
			// Back to entry for a re-scan.
			s.staged = nil
			s.input.SetValue("")
		}
		return nil
	}

	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(s.input.Value())
		if raw == "" {
			return nil
		}
		res, err := scan.Resolve(raw)
		if err != nil {
			s.err = err
			return nil
		}
		if s.confirm {
			s.staged = &res
			return nil
		}
		s.Close()
		return &res
	case "esc":
		s.Close()
	default:
		s.err = nil
		s.input, _ = s.input.Update(msg)
	}
	return nil
}

// View renders the prompt dialog.
func (s *ScanPrompt) View() string {
	if !s.active {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.DialogTitleStyle.Render("Scan code"))
	b.WriteString("\n\n")
	if s.staged != nil {
		b.WriteString(styles.LabelStyle.Render("Player: "))
		b.WriteString(styles.RowStyle.Render(s.staged.DisplayName))
		b.WriteString("\n\n")
		b.WriteString(styles.RenderHelp("enter", "confirm") + "  " + styles.RenderHelp("esc", "re-scan"))
	} else {
		b.WriteString(s.input.View())
		b.WriteString("\n")
		if s.err != nil {
			b.WriteString(styles.ErrorStyle.Render(s.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.RenderHelp("enter", "resolve") + "  " + styles.RenderHelp("esc", "cancel"))
	}
	return styles.DialogStyle.Render(b.String())
}

// overlay centers a dialog over a base view when the prompt is active.
func overlay(base, dialog string, width int) string {
	if dialog == "" {
		return base
	}
	return base + "\n" + lipgloss.PlaceHorizontal(max(width, lipgloss.Width(dialog)), lipgloss.Center, dialog)
}
