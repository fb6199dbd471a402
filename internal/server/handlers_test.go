package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/eragame/erachange/internal/api"
	"github.com/eragame/erachange/internal/game"
)

// Round-trips the HTTP client against the demo server, covering both wire
// implementations of the contract at once.
func newTestClient(t *testing.T) *api.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(NewRouter(api.NewSeededFake()))
	t.Cleanup(srv.Close)
	cfg := api.DefaultConfig()
	cfg.BaseURL = srv.URL
	return api.NewHTTPClient(cfg)
}

func TestLoginRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	player, err := c.Login(ctx, "MERCHANT-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if player.ID != 1 || player.Name != "MERCHANT" {
		t.Errorf("unexpected player: %+v", player)
	}

	if _, err := c.Login(ctx, "NOBODY"); err == nil {
		t.Error("expected error for unknown identifier")
	}
}

func TestResourcesAndPricesRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	ledger, err := c.PlayerResources(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.GoldCount(ledger) != 120 {
		t.Errorf("expected 120 gold, got %d", game.GoldCount(ledger))
	}

	countries, err := c.ForeignCountries(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(countries) != 3 {
		t.Fatalf("expected 3 countries, got %d", len(countries))
	}
	if !countries[0].HasEmbargo() {
		t.Error("expected the first seeded country to carry an embargo")
	}

	prices, err := c.MarketPrices(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sellable, buyable := prices.ForCountry(2)
	if len(sellable) != 2 || len(buyable) != 1 {
		t.Errorf("Lithuania price lists: expected 2 sellable / 1 buyable, got %d/%d",
			len(sellable), len(buyable))
	}
}

func TestCaravanAndTradeRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	deltas, err := c.CalculateCaravan(ctx, 2,
		[]game.ResourceLot{{Identifier: "grain", Count: 20}},
		[]game.ResourceLot{{Identifier: "weapon", Count: 5}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deltas) != 1 || deltas[0].Count != -20 {
		t.Fatalf("expected gold -20, got %+v", deltas)
	}

	err = c.MarketTrade(ctx, 1, api.TradeRequest{
		CountryID: 2,
		Sells: []game.ResourceLot{
			{Identifier: "grain", Name: "Grain", Count: 20},
			{Identifier: "gold", Name: "Gold", Count: 20},
		},
		Buys: []game.ResourceLot{{Identifier: "weapon", Name: "Weapons", Count: 5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ledger, err := c.PlayerResources(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if game.GoldCount(ledger) != 100 {
		t.Errorf("expected 100 gold after settlement, got %d", game.GoldCount(ledger))
	}
}

func TestExchangeRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	err := c.ExchangeResources(ctx, 1, api.ExchangeRequest{
		WithWhom:  "RURIKID-002",
		Resources: []game.ResourceLot{{Identifier: "grain", Name: "Grain", Count: 10}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A rejected exchange surfaces the server's reason.
	err = c.ExchangeResources(ctx, 1, api.ExchangeRequest{
		WithWhom:  "NOBODY",
		Resources: []game.ResourceLot{{Identifier: "grain", Count: 1}},
	})
	if err == nil {
		t.Error("expected error for unknown recipient")
	}
}
