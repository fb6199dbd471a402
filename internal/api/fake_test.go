package api

import (
	"context"
	"testing"

	"github.com/eragame/erachange/internal/game"
)

func TestFakeLogin(t *testing.T) {
	f := NewSeededFake()
	ctx := context.Background()

	p, err := f.Login(ctx, "MERCHANT-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "MERCHANT" {
		t.Errorf("expected MERCHANT, got %q", p.Name)
	}

	if _, err := f.Login(ctx, "NOBODY"); err != ErrAuthFailed {
		t.Errorf("expected ErrAuthFailed, got %v", err)
	}
}

func TestFakeExchangeMovesResources(t *testing.T) {
	f := NewSeededFake()
	ctx := context.Background()

	err := f.ExchangeResources(ctx, 1, ExchangeRequest{
		WithWhom: "RURIKID-002",
		Resources: []game.ResourceLot{
			{Identifier: "grain", Name: "Grain", Count: 30},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	from, _ := f.PlayerResources(ctx, 1)
	if got := ledgerCount(from, "grain"); got != 70 {
		t.Errorf("sender grain: expected 70, got %d", got)
	}
	to, _ := f.PlayerResources(ctx, 2)
	if got := ledgerCount(to, "grain"); got != 30 {
		t.Errorf("recipient grain: expected 30, got %d", got)
	}
}

func TestFakeExchangeInsufficientIsAtomic(t *testing.T) {
	f := NewSeededFake()
	ctx := context.Background()

	err := f.ExchangeResources(ctx, 1, ExchangeRequest{
		WithWhom: "RURIKID-002",
		Resources: []game.ResourceLot{
			{Identifier: "timber", Count: 10},
			{Identifier: "grain", Count: 1000},
		},
	})
	if err == nil {
		t.Fatal("expected error for over-count transfer")
	}

	// Nothing moved, not even the first lot.
	from, _ := f.PlayerResources(ctx, 1)
	if got := ledgerCount(from, "timber"); got != 40 {
		t.Errorf("timber must be untouched, got %d", got)
	}
}

func TestFakeCaravanPricesNet(t *testing.T) {
	f := NewSeededFake()
	ctx := context.Background()

	// Lithuania: grain sells at 2, weapons buy at 12.
	deltas, err := f.CalculateCaravan(ctx, 2,
		[]game.ResourceLot{{Identifier: "grain", Count: 20}},
		[]game.ResourceLot{{Identifier: "weapon", Count: 5}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deltas) != 1 || deltas[0].Identifier != game.GoldID {
		t.Fatalf("expected single gold delta, got %+v", deltas)
	}
	// 20*2 - 5*12 = -20: the player owes 20 gold.
	if deltas[0].Count != -20 {
		t.Errorf("expected -20, got %d", deltas[0].Count)
	}
}

func TestFakeMarketTradeSettles(t *testing.T) {
	f := NewSeededFake()
	ctx := context.Background()

	err := f.MarketTrade(ctx, 1, TradeRequest{
		CountryID: 2,
		Sells: []game.ResourceLot{
			{Identifier: "grain", Name: "Grain", Count: 20},
			{Identifier: "gold", Name: "Gold", Count: 20},
		},
		Buys: []game.ResourceLot{
			{Identifier: "weapon", Name: "Weapons", Count: 5},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ledger, _ := f.PlayerResources(ctx, 1)
	if got := ledgerCount(ledger, "grain"); got != 80 {
		t.Errorf("grain: expected 80, got %d", got)
	}
	if got := ledgerCount(ledger, "gold"); got != 100 {
		t.Errorf("gold: expected 100, got %d", got)
	}
	if got := ledgerCount(ledger, "weapon"); got != 5 {
		t.Errorf("weapon: expected 5, got %d", got)
	}
}
