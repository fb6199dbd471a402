package api

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/eragame/erachange/internal/game"
)

// Fake is an in-memory Client. It backs the offline demo and the tests; it
// is selected explicitly through Config.Mode and is never substituted at
// runtime when the real server is unreachable.
type Fake struct {
	mu        sync.Mutex
	players   []game.Player
	ledgers   map[game.PlayerID][]game.Resource
	countries []game.Country
	prices    game.MarketPrices
}

var _ Client = (*Fake)(nil)

// NewFake creates an empty fake world.
func NewFake() *Fake {
	return &Fake{ledgers: make(map[game.PlayerID][]game.Resource)}
}

// NewSeededFake creates a fake world with demo players, countries and
// prices, enough to walk every screen of the client offline.
func NewSeededFake() *Fake {
	f := NewFake()
	f.AddPlayer(
		game.Player{ID: 1, Name: "MERCHANT", Identifier: "MERCHANT-001", PlayerType: "Merchant", Family: "Traders", Jobs: []string{"Guild master"}},
		[]game.Resource{
			{Identifier: "gold", Count: 120, Name: "Gold"},
			{Identifier: "grain", Count: 100, Name: "Grain"},
			{Identifier: "timber", Count: 40, Name: "Timber"},
			{Identifier: "tools", Count: 9, Name: "Tools"},
		},
	)
	f.AddPlayer(
		game.Player{ID: 2, Name: "RURIKID", Identifier: "RURIKID-002", PlayerType: "Nobility", Family: "Nobles", Jobs: []string{"Grand prince"}},
		[]game.Resource{
			{Identifier: "gold", Count: 500, Name: "Gold"},
			{Identifier: "luxury", Count: 12, Name: "Luxury goods"},
		},
	)

	horde := game.Country{ID: 1, Name: "Great Horde", EmbargoLevel: 1}
	lithuania := game.Country{ID: 2, Name: "Grand Duchy of Lithuania"}
	sweden := game.Country{ID: 3, Name: "Kingdom of Sweden"}
	f.SetCountries([]game.Country{horde, lithuania, sweden})

	f.SetPrices(game.MarketPrices{
		ToMarket: []game.MarketResource{
			{Identifier: "grain", Name: "Grain", SellPrice: 2, Country: lithuania},
			{Identifier: "timber", Name: "Timber", SellPrice: 3, Country: lithuania},
			{Identifier: "grain", Name: "Grain", SellPrice: 1, Country: horde},
			{Identifier: "horses", Name: "Horses", SellPrice: 8, Country: sweden},
		},
		OffMarket: []game.MarketResource{
			{Identifier: "weapon", Name: "Weapons", BuyPrice: 12, Country: lithuania},
			{Identifier: "armor", Name: "Armor", BuyPrice: 15, Country: sweden},
			{Identifier: "horses", Name: "Horses", BuyPrice: 6, Country: horde},
		},
	})
	return f
}

// AddPlayer registers a player with an initial ledger.
func (f *Fake) AddPlayer(p game.Player, ledger []game.Resource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.players = append(f.players, p)
	f.ledgers[p.PlayerID()] = ledger
}

// SetCountries replaces the country list.
func (f *Fake) SetCountries(cs []game.Country) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countries = cs
}

// SetPrices replaces the market price lists.
func (f *Fake) SetPrices(p game.MarketPrices) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prices = p
}

// Login matches the identifier against registered players.
func (f *Fake) Login(_ context.Context, identifier string) (game.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	identifier = strings.TrimSpace(identifier)
	for _, p := range f.players {
		if p.Identifier == identifier {
			return p, nil
		}
	}
	return game.Player{}, ErrAuthFailed
}

func (f *Fake) Logout(context.Context) error { return nil }

// PlayerResources returns a copy of the player's ledger.
func (f *Fake) PlayerResources(_ context.Context, id game.PlayerID) ([]game.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ledger, ok := f.ledgers[id]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	out := make([]game.Resource, len(ledger))
	copy(out, ledger)
	return out, nil
}

func (f *Fake) ForeignCountries(context.Context) ([]game.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]game.Country, len(f.countries))
	copy(out, f.countries)
	return out, nil
}

func (f *Fake) MarketPrices(context.Context) (game.MarketPrices, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prices, nil
}

// CalculateCaravan prices the trade: sells earn their sell price, buys cost
// their buy price, and the net is returned as a single signed gold line.
func (f *Fake) CalculateCaravan(_ context.Context, countryID game.CountryID, sells, buys []game.ResourceLot) ([]game.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.countryLocked(countryID); !ok {
		return nil, ErrUnknownCountry
	}

	var gold int64
	for _, lot := range sells {
		price, ok := f.priceLocked(f.prices.ToMarket, countryID, lot.Identifier)
		if !ok {
			return nil, fmt.Errorf("%s is not sellable to country %d", lot.Identifier, countryID)
		}
		gold += price.SellPrice * lot.Count
	}
	for _, lot := range buys {
		price, ok := f.priceLocked(f.prices.OffMarket, countryID, lot.Identifier)
		if !ok {
			return nil, fmt.Errorf("%s is not buyable from country %d", lot.Identifier, countryID)
		}
		gold -= price.BuyPrice * lot.Count
	}
	return []game.Resource{{Identifier: game.GoldID, Name: "Gold", Count: gold}}, nil
}

// ExchangeResources moves resources from one player to another. The whole
// transfer applies or none of it does.
func (f *Fake) ExchangeResources(_ context.Context, id game.PlayerID, req ExchangeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	from, ok := f.ledgers[id]
	if !ok {
		return ErrUnknownPlayer
	}
	var to game.PlayerID
	found := false
	for _, p := range f.players {
		if p.Identifier == strings.TrimSpace(req.WithWhom) {
			to = p.PlayerID()
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("recipient %q: %w", req.WithWhom, ErrUnknownPlayer)
	}

	for _, lot := range req.Resources {
		if have := ledgerCount(from, lot.Identifier); have < lot.Count {
			return fmt.Errorf("not enough %s: have %d, need %d", lot.Identifier, have, lot.Count)
		}
	}
	for _, lot := range req.Resources {
		f.ledgers[id] = applyDelta(f.ledgers[id], lot.Identifier, lot.Name, -lot.Count)
		f.ledgers[to] = applyDelta(f.ledgers[to], lot.Identifier, lot.Name, lot.Count)
	}
	return nil
}

// MarketTrade settles the trade against the player's ledger: sells (gold
// payment included, if any) leave it, buys (gold proceeds included) enter.
func (f *Fake) MarketTrade(_ context.Context, id game.PlayerID, req TradeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ledger, ok := f.ledgers[id]
	if !ok {
		return ErrUnknownPlayer
	}
	if _, ok := f.countryLocked(game.CountryID(req.CountryID)); !ok {
		return ErrUnknownCountry
	}

	for _, lot := range req.Sells {
		if have := ledgerCount(ledger, lot.Identifier); have < lot.Count {
			return fmt.Errorf("not enough %s: have %d, need %d", lot.Identifier, have, lot.Count)
		}
	}
	for _, lot := range req.Sells {
		f.ledgers[id] = applyDelta(f.ledgers[id], lot.Identifier, lot.Name, -lot.Count)
	}
	for _, lot := range req.Buys {
		f.ledgers[id] = applyDelta(f.ledgers[id], lot.Identifier, lot.Name, lot.Count)
	}
	return nil
}

func (f *Fake) countryLocked(id game.CountryID) (game.Country, bool) {
	for _, c := range f.countries {
		if c.CountryID() == id {
			return c, true
		}
	}
	return game.Country{}, false
}

func (f *Fake) priceLocked(list []game.MarketResource, countryID game.CountryID, resID string) (game.MarketResource, bool) {
	for _, m := range list {
		if m.Country.CountryID() == countryID && m.Identifier == resID {
			return m, true
		}
	}
	return game.MarketResource{}, false
}

func ledgerCount(ledger []game.Resource, id string) int64 {
	r, _ := game.FindResource(ledger, id)
	return r.Count
}

func applyDelta(ledger []game.Resource, id, name string, delta int64) []game.Resource {
	for i := range ledger {
		if ledger[i].Identifier == id {
			ledger[i].Count += delta
			return ledger
		}
	}
	return append(ledger, game.Resource{Identifier: id, Name: name, Count: delta})
}
