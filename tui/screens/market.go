package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eragame/erachange/internal/api"
	"github.com/eragame/erachange/internal/catalog"
	"github.com/eragame/erachange/internal/game"
	"github.com/eragame/erachange/internal/wizard"
	"github.com/eragame/erachange/tui/styles"
)

// MarketScreen runs the foreign-market trade flow: pick a country, select
// what to sell and what to buy, review the computed caravan cost, then pay
// and settle.
type MarketScreen struct {
	cat *catalog.Catalog
	wiz *wizard.Wizard

	countries []game.Country
	prices    game.MarketPrices
	ledger    []game.Resource

	// Per-country selectable lists. Count carries the selection ceiling:
	// ledger availability on the sell side, the configured cap on the
	// buy side.
	sellable []game.Resource
	buyable  []game.Resource

	buyCeiling int64
	cursor     int
	loading    bool
	costBusy   bool
	confirming bool

	embargoed *game.Country
	qtyErr    error
	status    string
	err       error
	width     int
	height    int
}

// NewMarketScreen builds the market screen. buyCeiling caps a single
// purchase quantity.
func NewMarketScreen(cat *catalog.Catalog, buyCeiling int64) *MarketScreen {
	return &MarketScreen{
		cat:        cat,
		wiz:        wizard.New(wizard.FlowTrade),
		buyCeiling: buyCeiling,
		loading:    true,
	}
}

// SetLedger installs the player's resources for sell ceilings and the gold
// balance check.
func (s *MarketScreen) SetLedger(rs []game.Resource) { s.ledger = rs }

// SetSize records the terminal size.
func (s *MarketScreen) SetSize(w, h int) { s.width, s.height = w, h }

// Begin starts a fresh trade and marks market data as pending.
func (s *MarketScreen) Begin() {
	s.wiz.Reset()
	s.cursor = 0
	s.loading = true
	s.costBusy = false
	s.confirming = false
	s.embargoed = nil
	s.qtyErr = nil
	s.status = ""
	s.err = nil
}

// Update handles messages for the trade flow.
func (s *MarketScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case MarketDataResultMsg:
		s.loading = false
		if msg.Err != nil {
			s.err = msg.Err
			return nil
		}
		s.countries = msg.Countries
		s.prices = msg.Prices
		if s.cursor >= len(s.countries) {
			s.cursor = 0
		}
		return nil

	case CaravanResultMsg:
		s.costBusy = false
		if msg.Err != nil {
			s.err = msg.Err
			return nil
		}
		s.err = s.wiz.SetCostResult(msg.Deltas)
		return nil

	case TradeResultMsg:
		s.wiz.EndFinalize(msg.Err == nil)
		s.confirming = false
		if msg.Err != nil {
			s.err = msg.Err
			return nil
		}
		s.status = "caravan dispatched"
		s.cursor = 0
		// Settled; pull the post-trade balances.
		return func() tea.Msg { return LedgerRequestMsg{} }

	case tea.KeyMsg:
		if s.wiz.Finalizing() || s.costBusy {
			return nil
		}
		if s.confirming {
			return s.updateConfirm(msg)
		}
		if s.embargoed != nil {
			return s.updateEmbargo(msg)
		}
		switch s.wiz.Step() {
		case wizard.StepCounterparty:
			return s.updateCountry(msg)
		case wizard.StepSelectSell, wizard.StepSelectBuy:
			return s.updateSelect(msg)
		case wizard.StepQuantity:
			s.qtyErr = updateQuantity(s.wiz, msg)
		case wizard.StepCost:
			return s.updateCost(msg)
		}
	}
	return nil
}

func (s *MarketScreen) updateCountry(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.countries)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor >= len(s.countries) {
			return nil
		}
		c := s.countries[s.cursor]
		s.status = ""
		if err := s.wiz.SelectCountry(c, false); err != nil {
			if err == wizard.ErrEmbargo {
				s.embargoed = &c
				return nil
			}
			s.err = err
			return nil
		}
		s.enterCountry(c)
	case "r":
		s.loading = true
		s.err = nil
		return func() tea.Msg { return MarketDataRequestMsg{} }
	case "esc":
		return func() tea.Msg { return NavigateMsg{To: ScreenDashboard} }
	}
	return nil
}

func (s *MarketScreen) updateEmbargo(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y":
		c := *s.embargoed
		s.embargoed = nil
		if err := s.wiz.SelectCountry(c, true); err != nil {
			s.err = err
			return nil
		}
		s.enterCountry(c)
	case "n", "esc":
		s.embargoed = nil
	}
	return nil
}

// enterCountry snapshots the country's price lists into selectable rows.
func (s *MarketScreen) enterCountry(c game.Country) {
	sellable, buyable := s.prices.ForCountry(c.CountryID())
	for i := range sellable {
		sellable[i].Count = ledgerCount(s.ledger, sellable[i].Identifier)
	}
	for i := range buyable {
		buyable[i].Count = s.buyCeiling
	}
	s.sellable = sellable
	s.buyable = buyable
	s.cursor = 0
	s.err = nil
}

func (s *MarketScreen) activeList() []game.Resource {
	if s.wiz.IsSellPhase() {
		return s.sellable
	}
	return s.buyable
}

func (s *MarketScreen) updateSelect(msg tea.KeyMsg) tea.Cmd {
	list := s.activeList()
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(list)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(list) {
			s.qtyErr = nil
			s.err = s.wiz.PickResource(list[s.cursor])
		}
	case "d":
		if s.cursor < len(list) {
			s.wiz.Remove(list[s.cursor].Identifier)
		}
	case "p":
		if s.wiz.Step() == wizard.StepSelectSell {
			s.err = s.wiz.ProceedToBuy()
			s.cursor = 0
		}
	case "c":
		if s.wiz.Step() == wizard.StepSelectBuy {
			return s.requestCost()
		}
	case "esc":
		s.wiz.Back()
		s.cursor = 0
		s.err = nil
	}
	return nil
}

func (s *MarketScreen) requestCost() tea.Cmd {
	if s.wiz.SellSelection().Len() == 0 && s.wiz.BuySelection().Len() == 0 {
		s.err = wizard.ErrNoSelection
		return nil
	}
	country, ok := s.wiz.Country()
	if !ok {
		return nil
	}
	s.costBusy = true
	s.err = nil
	req := CaravanRequestMsg{
		CountryID: country.CountryID(),
		Sells:     s.wiz.SellSelection().Lots(),
		Buys:      s.wiz.BuySelection().Lots(),
	}
	return func() tea.Msg { return req }
}

func (s *MarketScreen) updateCost(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if err := s.wiz.ValidateTrade(game.GoldCount(s.ledger)); err != nil {
			s.err = err
			return nil
		}
		s.err = nil
		s.confirming = true
	case "esc":
		s.wiz.Back()
		s.cursor = 0
		s.err = nil
	}
	return nil
}

func (s *MarketScreen) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "y":
		if err := s.wiz.BeginFinalize(); err != nil {
			return nil
		}
		country, _ := s.wiz.Country()
		sells, buys := s.wiz.TradePayload()
		req := api.TradeRequest{CountryID: country.ID, Sells: sells, Buys: buys}
		return func() tea.Msg { return TradeSubmitMsg{Req: req} }
	case "esc", "n":
		s.confirming = false
	}
	return nil
}

// View renders the current trade step.
func (s *MarketScreen) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Foreign market"))
	b.WriteString("\n\n")

	switch s.wiz.Step() {
	case wizard.StepCounterparty:
		s.viewCountries(&b)
	case wizard.StepSelectSell, wizard.StepSelectBuy, wizard.StepQuantity:
		s.viewSelect(&b)
	case wizard.StepCost:
		s.viewCost(&b)
	}

	view := styles.ScreenStyle.Render(b.String())
	if s.wiz.Step() == wizard.StepQuantity {
		return overlay(view, viewQuantity(s.cat, s.wiz, s.qtyErr), s.width)
	}
	if s.embargoed != nil {
		return overlay(view, s.embargoView(), s.width)
	}
	if s.confirming {
		return overlay(view, s.confirmView(), s.width)
	}
	return view
}

func (s *MarketScreen) viewCountries(b *strings.Builder) {
	switch {
	case s.loading:
		b.WriteString(styles.MutedStyle.Render("loading..."))
		b.WriteString("\n")
	case s.err != nil:
		b.WriteString(styles.ErrorStyle.Render(s.err.Error()))
		b.WriteString("\n")
	case len(s.countries) == 0:
		b.WriteString(styles.MutedStyle.Render("no countries are trading"))
		b.WriteString("\n")
	}
	for i, c := range s.countries {
		row := fmt.Sprintf("%-28s", c.Name)
		if i == s.cursor {
			row = styles.SelectedRowStyle.Render(row)
		} else {
			row = styles.RowStyle.Render(row)
		}
		b.WriteString(row)
		if c.HasEmbargo() {
			b.WriteString(" " + styles.EmbargoBadgeStyle.Render("EMBARGO"))
		}
		b.WriteString("\n")
	}
	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.SuccessStyle.Render(s.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.RenderHelp("enter", "trade") + "  " +
		styles.RenderHelp("r", "refresh") + "  " +
		styles.RenderHelp("esc", "back"))
}

func (s *MarketScreen) viewSelect(b *strings.Builder) {
	country, _ := s.wiz.Country()
	phase := "Sell to"
	sel := s.wiz.SellSelection()
	if !s.wiz.IsSellPhase() {
		phase = "Buy from"
		sel = s.wiz.BuySelection()
	}
	b.WriteString(styles.SectionTitleStyle.Render(fmt.Sprintf("%s %s", phase, country.Name)))
	b.WriteString("\n")
	b.WriteString(styles.GoldStyle.Render(fmt.Sprintf("Gold: %d", game.GoldCount(s.ledger))))
	b.WriteString("\n\n")

	list := s.activeList()
	if len(list) == 0 {
		b.WriteString(styles.MutedStyle.Render("nothing on offer"))
		b.WriteString("\n")
	}
	for i, r := range list {
		price := r.SellPrice
		if !s.wiz.IsSellPhase() {
			price = r.BuyPrice
		}
		row := fmt.Sprintf("%s %-18s %5d gold", s.cat.ResourceIcon(r.Identifier), s.resourceName(r), price)
		if s.wiz.IsSellPhase() {
			row += styles.MutedStyle.Render(fmt.Sprintf("  (have %d)", r.Count))
		}
		if it, ok := sel.Get(r.Identifier); ok {
			row += styles.GainStyle.Render(fmt.Sprintf("  → %d", it.SelectedCount))
		}
		if i == s.cursor {
			row = styles.SelectedRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	if s.err != nil {
		b.WriteString(styles.ErrorStyle.Render(s.err.Error()))
		b.WriteString("\n")
	}
	if s.costBusy {
		b.WriteString(styles.MutedStyle.Render("computing cost..."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if s.wiz.IsSellPhase() {
		b.WriteString(styles.RenderHelp("enter", "pick") + "  " +
			styles.RenderHelp("d", "drop") + "  " +
			styles.RenderHelp("p", "to purchases") + "  " +
			styles.RenderHelp("esc", "back"))
	} else {
		b.WriteString(styles.RenderHelp("enter", "pick") + "  " +
			styles.RenderHelp("d", "drop") + "  " +
			styles.RenderHelp("c", "compute cost") + "  " +
			styles.RenderHelp("esc", "back"))
	}
}

func (s *MarketScreen) viewCost(b *strings.Builder) {
	country, _ := s.wiz.Country()
	b.WriteString(styles.SectionTitleStyle.Render("Caravan to " + country.Name))
	b.WriteString("\n\n")
	for _, d := range s.wiz.CostResult() {
		b.WriteString(fmt.Sprintf("%s %-18s %s\n",
			s.cat.ResourceIcon(d.Identifier), s.resourceName(d), styles.FormatSigned(d.Count)))
	}
	b.WriteString("\n")
	delta := s.wiz.GoldDelta()
	switch {
	case delta < 0:
		b.WriteString(styles.LabelStyle.Render("You pay ") + styles.GoldStyle.Render(fmt.Sprintf("%d gold", -delta)))
	case delta > 0:
		b.WriteString(styles.LabelStyle.Render("You receive ") + styles.GoldStyle.Render(fmt.Sprintf("%d gold", delta)))
	default:
		b.WriteString(styles.MutedStyle.Render("even trade"))
	}
	b.WriteString("\n")
	b.WriteString(styles.GoldStyle.Render(fmt.Sprintf("Treasury: %d gold", game.GoldCount(s.ledger))))
	b.WriteString("\n")
	if s.err != nil {
		b.WriteString(styles.ErrorStyle.Render(s.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.RenderHelp("enter", "pay and send") + "  " + styles.RenderHelp("esc", "back"))
}

func (s *MarketScreen) embargoView() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitleStyle.Render("Embargo"))
	b.WriteString("\n\n")
	b.WriteString(styles.RowStyle.Render(s.embargoed.Name + " has declared an embargo."))
	b.WriteString("\n")
	b.WriteString(styles.RowStyle.Render("Trade runs as contraband. Continue?"))
	b.WriteString("\n\n")
	b.WriteString(styles.RenderHelp("y", "continue") + "  " + styles.RenderHelp("n", "decline"))
	return styles.DialogStyle.Render(b.String())
}

func (s *MarketScreen) confirmView() string {
	country, _ := s.wiz.Country()
	var b strings.Builder
	b.WriteString(styles.DialogTitleStyle.Render("Dispatch caravan to " + country.Name + "?"))
	b.WriteString("\n\n")
	sells, buys := s.wiz.TradePayload()
	if len(sells) > 0 {
		b.WriteString(styles.SectionTitleStyle.Render("Selling"))
		b.WriteString("\n")
		for _, l := range sells {
			b.WriteString(fmt.Sprintf("  %s  %d\n", s.lotName(l), l.Count))
		}
	}
	if len(buys) > 0 {
		b.WriteString(styles.SectionTitleStyle.Render("Buying"))
		b.WriteString("\n")
		for _, l := range buys {
			b.WriteString(fmt.Sprintf("  %s  %d\n", s.lotName(l), l.Count))
		}
	}
	b.WriteString("\n")
	if s.wiz.Finalizing() {
		b.WriteString(styles.MutedStyle.Render("dispatching..."))
	} else {
		b.WriteString(styles.RenderHelp("enter", "dispatch") + "  " + styles.RenderHelp("esc", "back"))
	}
	return styles.DialogStyle.Render(b.String())
}

func (s *MarketScreen) resourceName(r game.Resource) string {
	if r.Name != "" {
		return r.Name
	}
	return s.cat.ResourceName(r.Identifier)
}

func (s *MarketScreen) lotName(l game.ResourceLot) string {
	if l.Name != "" {
		return l.Name
	}
	return s.cat.ResourceName(l.Identifier)
}

func ledgerCount(rs []game.Resource, id string) int64 {
	r, _ := game.FindResource(rs, id)
	return r.Count
}
