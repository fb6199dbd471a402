package wizard

import (
	"testing"

	"github.com/eragame/erachange/internal/game"
)

func TestExchangeRecipientGuard(t *testing.T) {
	w := New(FlowExchange)

	if err := w.SetRecipient("   "); err != ErrEmptyRecipient {
		t.Errorf("expected ErrEmptyRecipient, got %v", err)
	}
	if w.Step() != StepCounterparty {
		t.Errorf("blank recipient must not advance, step=%d", w.Step())
	}

	if err := w.SetRecipient("  PLAYER42 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Recipient() != "PLAYER42" {
		t.Errorf("recipient not trimmed: %q", w.Recipient())
	}
	if w.Step() != StepSelectSell {
		t.Errorf("expected StepSelectSell, got %d", w.Step())
	}
}

func TestExchangeQuantityUpsert(t *testing.T) {
	w := New(FlowExchange)
	if err := w.SetRecipient("PLAYER42"); err != nil {
		t.Fatal(err)
	}

	grain := game.Resource{Identifier: "grain", Name: "Grain", Count: 100}
	if err := w.PickResource(grain); err != nil {
		t.Fatal(err)
	}
	if w.Step() != StepQuantity {
		t.Fatalf("expected StepQuantity, got %d", w.Step())
	}
	if w.Quantity().Max() != 100 {
		t.Errorf("ceiling must snapshot available count, got %d", w.Quantity().Max())
	}

	w.Quantity().PressDigit('4')
	w.Quantity().PressDigit('0')
	if err := w.ConfirmQuantity(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Step() != StepSelectSell {
		t.Errorf("confirm must return to selection, step=%d", w.Step())
	}

	// Re-pick the same resource: count replaced, no duplicate.
	if err := w.PickResource(grain); err != nil {
		t.Fatal(err)
	}
	w.Quantity().PressDigit('7')
	if err := w.ConfirmQuantity(); err != nil {
		t.Fatal(err)
	}
	if w.SellSelection().Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", w.SellSelection().Len())
	}
	got, _ := w.SellSelection().Get("grain")
	if got.SelectedCount != 7 {
		t.Errorf("expected replaced count 7, got %d", got.SelectedCount)
	}
}

func TestQuantityCancelLeavesSelectionUntouched(t *testing.T) {
	w := New(FlowExchange)
	if err := w.SetRecipient("PLAYER42"); err != nil {
		t.Fatal(err)
	}
	if err := w.PickResource(game.Resource{Identifier: "grain", Count: 10}); err != nil {
		t.Fatal(err)
	}
	w.Quantity().PressDigit('5')
	w.CancelQuantity()

	if w.Step() != StepSelectSell {
		t.Errorf("cancel must return to selection, step=%d", w.Step())
	}
	if w.SellSelection().Len() != 0 {
		t.Errorf("cancel must not mutate the selection set")
	}
}

func TestExchangeValidate(t *testing.T) {
	w := New(FlowExchange)
	if err := w.SetRecipient("PLAYER42"); err != nil {
		t.Fatal(err)
	}
	if err := w.ValidateExchange(); err != ErrNoSelection {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}

	if err := w.PickResource(game.Resource{Identifier: "grain", Count: 10}); err != nil {
		t.Fatal(err)
	}
	w.Quantity().PressDigit('3')
	if err := w.ConfirmQuantity(); err != nil {
		t.Fatal(err)
	}
	if err := w.ValidateExchange(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	lots := w.ExchangeLots()
	if len(lots) != 1 || lots[0].Count != 3 {
		t.Errorf("unexpected payload: %+v", lots)
	}
}

func TestEmbargoRequiresContraband(t *testing.T) {
	w := New(FlowTrade)
	horde := game.Country{ID: 1, Name: "Great Horde", EmbargoLevel: 1}

	// Declining the override leaves the wizard at country selection.
	if err := w.SelectCountry(horde, false); err != ErrEmbargo {
		t.Errorf("expected ErrEmbargo, got %v", err)
	}
	if w.Step() != StepCounterparty {
		t.Errorf("embargo refusal must hold the step, step=%d", w.Step())
	}

	// Accepting proceeds to sell selection.
	if err := w.SelectCountry(horde, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Step() != StepSelectSell {
		t.Errorf("expected StepSelectSell, got %d", w.Step())
	}
	if !w.IsSellPhase() {
		t.Error("trade must start in the sell phase")
	}
}

func tradeAtBuyStep(t *testing.T) *Wizard {
	t.Helper()
	w := New(FlowTrade)
	if err := w.SelectCountry(game.Country{ID: 2, Name: "Sweden"}, false); err != nil {
		t.Fatal(err)
	}
	if err := w.PickResource(game.Resource{Identifier: "grain", Name: "Grain", Count: 100}); err != nil {
		t.Fatal(err)
	}
	w.Quantity().PressDigit('2')
	w.Quantity().PressDigit('0')
	if err := w.ConfirmQuantity(); err != nil {
		t.Fatal(err)
	}
	if err := w.ProceedToBuy(); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestProceedToBuyFlipsPhase(t *testing.T) {
	w := tradeAtBuyStep(t)
	if w.IsSellPhase() {
		t.Error("expected buy phase after proceed")
	}

	if err := w.PickResource(game.Resource{Identifier: "weapon", Name: "Weapons", Count: 500}); err != nil {
		t.Fatal(err)
	}
	w.Quantity().PressDigit('5')
	if err := w.ConfirmQuantity(); err != nil {
		t.Fatal(err)
	}
	if w.BuySelection().Len() != 1 {
		t.Errorf("quantity upsert must target the buy set")
	}
	if w.SellSelection().Len() != 1 {
		t.Errorf("sell set must be unchanged")
	}
}

func TestBackFromBuyClearsBuySetKeepsSellSet(t *testing.T) {
	w := tradeAtBuyStep(t)
	if err := w.PickResource(game.Resource{Identifier: "weapon", Count: 500}); err != nil {
		t.Fatal(err)
	}
	w.Quantity().PressDigit('5')
	if err := w.ConfirmQuantity(); err != nil {
		t.Fatal(err)
	}

	w.Back()
	if w.Step() != StepSelectSell {
		t.Fatalf("expected StepSelectSell, got %d", w.Step())
	}
	if w.BuySelection().Len() != 0 {
		t.Error("buy set must be cleared on backward navigation")
	}
	if w.SellSelection().Len() != 1 {
		t.Error("sell set must be preserved")
	}
	if !w.IsSellPhase() {
		t.Error("phase must flip back to sell")
	}
}

func TestBackFromSellClearsEverything(t *testing.T) {
	w := tradeAtBuyStep(t)
	w.Back()
	w.Back()
	if w.Step() != StepCounterparty {
		t.Fatalf("expected StepCounterparty, got %d", w.Step())
	}
	if w.SellSelection().Len() != 0 {
		t.Error("sell set must be cleared")
	}
	if _, ok := w.Country(); ok {
		t.Error("country must be cleared")
	}
}

func TestInsufficientGoldFailsLocally(t *testing.T) {
	w := tradeAtBuyStep(t)
	if err := w.SetCostResult([]game.Resource{{Identifier: game.GoldID, Count: -40}}); err != nil {
		t.Fatal(err)
	}

	if err := w.ValidateTrade(30); err != ErrInsufficientGold {
		t.Errorf("expected ErrInsufficientGold, got %v", err)
	}
	if w.Step() != StepCost {
		t.Errorf("local validation failure must hold the step")
	}

	if err := w.ValidateTrade(40); err != nil {
		t.Errorf("exact balance must pass, got %v", err)
	}
}

func TestTradePayloadAppendsOwedGoldToSells(t *testing.T) {
	w := tradeAtBuyStep(t)
	if err := w.SetCostResult([]game.Resource{{Identifier: game.GoldID, Count: -40}}); err != nil {
		t.Fatal(err)
	}

	sells, buys := w.TradePayload()
	if len(sells) != 2 {
		t.Fatalf("expected original sell + gold line, got %d lots", len(sells))
	}
	last := sells[len(sells)-1]
	if last.Identifier != game.GoldID || last.Count != 40 {
		t.Errorf("expected gold x40 appended to sells, got %+v", last)
	}
	if len(buys) != 0 {
		t.Errorf("no gold received, buys must stay as selected: %+v", buys)
	}
}

func TestTradePayloadAppendsReceivedGoldToBuys(t *testing.T) {
	w := tradeAtBuyStep(t)
	if err := w.PickResource(game.Resource{Identifier: "weapon", Name: "Weapons", Count: 500}); err != nil {
		t.Fatal(err)
	}
	w.Quantity().PressDigit('5')
	if err := w.ConfirmQuantity(); err != nil {
		t.Fatal(err)
	}
	if err := w.SetCostResult([]game.Resource{
		{Identifier: game.GoldID, Count: 25},
		{Identifier: "grain", Count: -20},
	}); err != nil {
		t.Fatal(err)
	}

	sells, buys := w.TradePayload()
	if len(buys) != 2 {
		t.Fatalf("expected selected buy + gold line, got %d lots", len(buys))
	}
	last := buys[len(buys)-1]
	if last.Identifier != game.GoldID || last.Count != 25 {
		t.Errorf("expected gold x25 appended to buys, got %+v", last)
	}
	// Non-gold preview entries never cross into the payload.
	if len(sells) != 1 || sells[0].Identifier != "grain" || sells[0].Count != 20 {
		t.Errorf("sells must be the original selection verbatim: %+v", sells)
	}
}

func TestFinalizeSingleFlight(t *testing.T) {
	w := tradeAtBuyStep(t)
	if err := w.SetCostResult([]game.Resource{{Identifier: game.GoldID, Count: 10}}); err != nil {
		t.Fatal(err)
	}

	if err := w.BeginFinalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.BeginFinalize(); err != ErrBusy {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	// Failure holds the pre-finalize step for retry.
	w.EndFinalize(false)
	if w.Step() != StepCost {
		t.Errorf("failed finalize must hold StepCost, got %d", w.Step())
	}
	if w.Finalizing() {
		t.Error("processing flag must be released")
	}

	// Success resets to a fresh flow.
	if err := w.BeginFinalize(); err != nil {
		t.Fatal(err)
	}
	w.EndFinalize(true)
	if w.Step() != StepCounterparty {
		t.Errorf("successful finalize must reset, got step %d", w.Step())
	}
	if w.SellSelection().Len() != 0 || w.BuySelection().Len() != 0 {
		t.Error("successful finalize must discard all selections")
	}
}

func TestCostResultRequiresBuyStep(t *testing.T) {
	w := New(FlowTrade)
	if err := w.SetCostResult(nil); err != ErrWrongStep {
		t.Errorf("expected ErrWrongStep, got %v", err)
	}
}
