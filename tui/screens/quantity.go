package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eragame/erachange/internal/catalog"
	"github.com/eragame/erachange/internal/wizard"
	"github.com/eragame/erachange/tui/styles"
)

// updateQuantity feeds one key press into the wizard's quantity sub-flow.
// It returns a non-nil error for a refused confirm; the sub-flow stays open
// in that case.
func updateQuantity(w *wizard.Wizard, msg tea.KeyMsg) error {
	q := w.Quantity()
	if q == nil {
		return nil
	}
	key := msg.String()
	switch key {
	case "enter":
		return w.ConfirmQuantity()
	case "esc":
		w.CancelQuantity()
	case "backspace":
		q.PressDelete()
	case "c":
		q.PressClear()
	case "+", "up", "k":
		q.PressIncrement()
	case "-", "down", "j":
		q.PressDecrement()
	case "m":
		q.PressMax()
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			q.PressDigit(rune(key[0]))
		}
	}
	return nil
}

// viewQuantity renders the quantity sub-flow dialog.
func viewQuantity(cat *catalog.Catalog, w *wizard.Wizard, confirmErr error) string {
	q := w.Quantity()
	r, ok := w.PendingResource()
	if q == nil || !ok {
		return ""
	}
	name := r.Name
	if name == "" {
		name = cat.ResourceName(r.Identifier)
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitleStyle.Render(cat.ResourceIcon(r.Identifier) + " " + name))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("up to %d", q.Max())))
	b.WriteString("\n\n")
	b.WriteString(styles.QuantityStyle.Render(fmt.Sprintf("%6s", q.Text())))
	b.WriteString("\n")
	if confirmErr != nil {
		b.WriteString(styles.ErrorStyle.Render(confirmErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.RenderHelp("0-9", "type") + "  " +
		styles.RenderHelp("+/-", "step") + "  " +
		styles.RenderHelp("m", "max") + "  " +
		styles.RenderHelp("c", "clear"))
	b.WriteString("\n")
	b.WriteString(styles.RenderHelp("enter", "confirm") + "  " +
		styles.RenderHelp("esc", "cancel"))
	return styles.DialogStyle.Render(b.String())
}
