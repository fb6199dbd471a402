// Package wizard implements the client-side multi-step transaction flow:
// counterparty selection, resource selection, quantity entry, cost preview
// (trade only) and finalization. The wizard owns no network access; screens
// drive it with user input and feed remote results back in. One wizard
// instance covers exactly one flow and is reset on completion or cancel.
package wizard

import (
	"errors"
	"strings"

	"github.com/eragame/erachange/internal/game"
)

// Flow selects which concrete flow the wizard runs.
type Flow int

const (
	// FlowExchange is the peer-to-peer resource transfer flow.
	FlowExchange Flow = iota
	// FlowTrade is the foreign-market buy/sell flow with a cost preview.
	FlowTrade
)

// Step is the wizard's current screen.
type Step int

const (
	// StepCounterparty selects the recipient (exchange) or country (trade).
	StepCounterparty Step = iota
	// StepSelectSell selects resources to hand over.
	StepSelectSell
	// StepSelectBuy selects resources to receive (trade only).
	StepSelectBuy
	// StepQuantity runs the quantity selector for one picked resource.
	StepQuantity
	// StepCost shows the computed caravan result (trade only).
	StepCost
)

var (
	ErrEmptyRecipient   = errors.New("recipient identifier is empty")
	ErrEmbargo          = errors.New("country has an embargo; contraband required")
	ErrNoSelection      = errors.New("no resources selected")
	ErrInsufficientGold = errors.New("not enough gold to pay for the trade")
	ErrNoCostResult     = errors.New("trade cost has not been computed")
	ErrWrongStep        = errors.New("operation not valid at this step")
	ErrBusy             = errors.New("finalize already in flight")
)

// Wizard sequences one transaction. Zero value is not usable; construct
// with New.
type Wizard struct {
	flow Flow
	step Step

	recipient  string
	country    game.Country
	hasCountry bool

	sell game.SelectionSet
	buy  game.SelectionSet

	// Quantity sub-flow. The ceiling is snapshotted from the picked
	// resource's available count when the sub-flow starts.
	pending    game.Resource
	hasPending bool
	qty        *QuantitySelector
	returnStep Step

	sellPhase  bool
	costResult []game.Resource
	finalizing bool
}

// New creates a wizard at its initial step.
func New(flow Flow) *Wizard {
	return &Wizard{flow: flow, step: StepCounterparty, sellPhase: true}
}

func (w *Wizard) Flow() Flow        { return w.flow }
func (w *Wizard) Step() Step        { return w.step }
func (w *Wizard) Recipient() string { return w.recipient }

// Country returns the picked country; ok is false before one is picked.
func (w *Wizard) Country() (game.Country, bool) { return w.country, w.hasCountry }

func (w *Wizard) SellSelection() *game.SelectionSet { return &w.sell }
func (w *Wizard) BuySelection() *game.SelectionSet  { return &w.buy }

// IsSellPhase reports whether quantity confirmations target the sell set.
func (w *Wizard) IsSellPhase() bool { return w.sellPhase }

// Quantity returns the active quantity selector, nil outside StepQuantity.
func (w *Wizard) Quantity() *QuantitySelector { return w.qty }

// PendingResource returns the resource being quantified.
func (w *Wizard) PendingResource() (game.Resource, bool) { return w.pending, w.hasPending }

// CostResult returns the signed deltas of the last cost computation.
func (w *Wizard) CostResult() []game.Resource { return w.costResult }

func (w *Wizard) Finalizing() bool { return w.finalizing }

// SetRecipient stores the trimmed counterparty identifier and advances to
// resource selection. Exchange flow only.
func (w *Wizard) SetRecipient(id string) error {
	if w.flow != FlowExchange || w.step != StepCounterparty {
		return ErrWrongStep
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyRecipient
	}
	w.recipient = id
	w.step = StepSelectSell
	return nil
}

// SelectCountry picks the trade counterparty. A country under embargo is
// refused with ErrEmbargo unless the caller passes contraband=true (the
// user's explicit override); the wizard stays at country selection.
func (w *Wizard) SelectCountry(c game.Country, contraband bool) error {
	if w.flow != FlowTrade || w.step != StepCounterparty {
		return ErrWrongStep
	}
	if c.HasEmbargo() && !contraband {
		return ErrEmbargo
	}
	w.country = c
	w.hasCountry = true
	w.sellPhase = true
	w.step = StepSelectSell
	return nil
}

// PickResource opens the quantity sub-flow for one resource, snapshotting
// its current available count as the selection ceiling.
func (w *Wizard) PickResource(r game.Resource) error {
	if w.step != StepSelectSell && w.step != StepSelectBuy {
		return ErrWrongStep
	}
	w.pending = r
	w.hasPending = true
	w.qty = NewQuantitySelector(r.Count)
	w.returnStep = w.step
	w.step = StepQuantity
	return nil
}

// ConfirmQuantity validates the entered quantity and upserts the pending
// resource into the active selection set, keyed by identifier. The wizard
// returns to the selection step it came from.
func (w *Wizard) ConfirmQuantity() error {
	if w.step != StepQuantity || !w.hasPending {
		return ErrWrongStep
	}
	count, err := w.qty.Confirm()
	if err != nil {
		return err
	}
	if w.sellPhase {
		w.sell.Upsert(w.pending, count)
	} else {
		w.buy.Upsert(w.pending, count)
	}
	w.closeQuantity()
	return nil
}

// CancelQuantity discards the sub-flow without touching the selection sets.
func (w *Wizard) CancelQuantity() {
	if w.step != StepQuantity {
		return
	}
	w.closeQuantity()
}

func (w *Wizard) closeQuantity() {
	w.pending = game.Resource{}
	w.hasPending = false
	w.qty = nil
	w.step = w.returnStep
}

// Remove drops a resource from the active phase's selection set. Allowed at
// any time while selecting resources, independent of the quantity sub-flow.
func (w *Wizard) Remove(id string) {
	if w.sellPhase {
		w.sell.Remove(id)
	} else {
		w.buy.Remove(id)
	}
}

// ProceedToBuy moves from sell selection to buy selection, redirecting
// subsequent quantity upserts to the buy set. Trade flow only, and
// unconditional: an empty sell set is a valid pure-purchase trade.
func (w *Wizard) ProceedToBuy() error {
	if w.flow != FlowTrade || w.step != StepSelectSell {
		return ErrWrongStep
	}
	w.sellPhase = false
	w.step = StepSelectBuy
	return nil
}

// SetCostResult stores the remote caravan computation and advances to the
// cost preview. The caller performs the remote call; on failure it simply
// never calls this and the wizard holds StepSelectBuy.
func (w *Wizard) SetCostResult(deltas []game.Resource) error {
	if w.flow != FlowTrade || w.step != StepSelectBuy {
		return ErrWrongStep
	}
	w.costResult = deltas
	w.step = StepCost
	return nil
}

// GoldDelta returns the gold line of the cost result: negative means the
// player owes that much gold, positive means the player receives it.
func (w *Wizard) GoldDelta() int64 {
	return game.GoldCount(w.costResult)
}

// ValidateExchange checks the exchange flow's finalize preconditions.
func (w *Wizard) ValidateExchange() error {
	if w.flow != FlowExchange || w.step != StepSelectSell {
		return ErrWrongStep
	}
	if strings.TrimSpace(w.recipient) == "" {
		return ErrEmptyRecipient
	}
	if w.sell.Len() == 0 {
		return ErrNoSelection
	}
	return nil
}

// ExchangeLots returns the finalize payload of the exchange flow.
func (w *Wizard) ExchangeLots() []game.ResourceLot {
	return w.sell.Lots()
}

// ValidateTrade checks the trade finalize preconditions against the
// player's currently known gold balance. Insufficient gold fails locally;
// no network call is to be issued.
func (w *Wizard) ValidateTrade(playerGold int64) error {
	if w.flow != FlowTrade || w.step != StepCost {
		return ErrWrongStep
	}
	if w.costResult == nil {
		return ErrNoCostResult
	}
	if delta := w.GoldDelta(); delta < 0 && playerGold < -delta {
		return ErrInsufficientGold
	}
	return nil
}

// TradePayload builds the finalize payload from the originally selected
// resources, appending a synthetic gold line to the sells when payment is
// owed or to the buys when gold is received. Non-gold entries of the cost
// preview never cross into the payload.
func (w *Wizard) TradePayload() (sells, buys []game.ResourceLot) {
	sells = w.sell.Lots()
	buys = w.buy.Lots()
	switch delta := w.GoldDelta(); {
	case delta < 0:
		sells = append(sells, game.ResourceLot{Identifier: game.GoldID, Name: "Gold", Count: -delta})
	case delta > 0:
		buys = append(buys, game.ResourceLot{Identifier: game.GoldID, Name: "Gold", Count: delta})
	}
	return sells, buys
}

// BeginFinalize marks the finalize call in flight. A second call before
// EndFinalize is refused, so no two finalize requests can race.
func (w *Wizard) BeginFinalize() error {
	if w.finalizing {
		return ErrBusy
	}
	w.finalizing = true
	return nil
}

// EndFinalize records the outcome. Success resets the wizard to a fresh
// initial step; failure holds the pre-finalize step so the user may retry
// or cancel. Nothing partial is ever committed locally.
func (w *Wizard) EndFinalize(success bool) {
	w.finalizing = false
	if success {
		w.Reset()
	}
}

// Back navigates one step backward, discarding forward-only state. There is
// no save-and-resume: leaving buy selection clears the buy set, leaving
// sell selection clears everything.
func (w *Wizard) Back() {
	switch w.step {
	case StepQuantity:
		w.closeQuantity()
	case StepCost:
		w.costResult = nil
		w.sellPhase = false
		w.step = StepSelectBuy
	case StepSelectBuy:
		w.buy.Clear()
		w.sellPhase = true
		w.step = StepSelectSell
	case StepSelectSell:
		w.Reset()
	}
}

// Reset discards all state and returns to the initial step.
func (w *Wizard) Reset() {
	*w = Wizard{flow: w.flow, step: StepCounterparty, sellPhase: true}
}
