package game

// PlayerID uniquely identifies a player on the game server.
type PlayerID int64

// Player is the authenticated game account.
type Player struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Identifier string   `json:"identificator"`
	PlayerType string   `json:"player_type,omitempty"`
	Family     string   `json:"family,omitempty"`
	Jobs       []string `json:"jobs"`
}

// PlayerID returns the PlayerID for this Player.
func (p Player) PlayerID() PlayerID {
	return PlayerID(p.ID)
}

// GoldID is the identifier of the gold resource, the settlement currency
// of every market trade.
const GoldID = "gold"

// Resource is a quantity of a fungible good. Count is never negative in a
// player ledger; in a caravan cost preview a negative count means gold owed.
type Resource struct {
	Identifier string `json:"identificator"`
	Count      int64  `json:"count"`
	Name       string `json:"name,omitempty"`
	SellPrice  int64  `json:"sell_price,omitempty"`
	BuyPrice   int64  `json:"buy_price,omitempty"`
}

// SelectedResource is a Resource tagged with how many units the player has
// selected for a transaction. 0 <= SelectedCount <= Count always holds.
type SelectedResource struct {
	Resource
	SelectedCount int64 `json:"selected_count"`
}

// CountryID uniquely identifies a foreign country.
type CountryID int64

// Country is a foreign-trade counterparty. EmbargoLevel > 0 means the
// country has declared an embargo and trading requires contraband.
type Country struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	EmbargoLevel int64  `json:"embargo"`
}

// CountryID returns the CountryID for this Country.
func (c Country) CountryID() CountryID {
	return CountryID(c.ID)
}

// HasEmbargo reports whether trading with the country needs a contraband
// acknowledgment.
func (c Country) HasEmbargo() bool {
	return c.EmbargoLevel > 0
}

// MarketResource is a price-list entry scoped to one country.
type MarketResource struct {
	Identifier string  `json:"identificator"`
	Name       string  `json:"name,omitempty"`
	SellPrice  int64   `json:"sell_price,omitempty"`
	BuyPrice   int64   `json:"buy_price,omitempty"`
	Country    Country `json:"country"`
}

// Resource converts a price-list entry into a zero-count Resource carrying
// the prices along.
func (m MarketResource) Resource() Resource {
	name := m.Name
	if name == "" {
		name = m.Identifier
	}
	return Resource{
		Identifier: m.Identifier,
		Count:      0,
		Name:       name,
		SellPrice:  m.SellPrice,
		BuyPrice:   m.BuyPrice,
	}
}

// MarketPrices is the full foreign-market price list. ToMarket holds what
// players may sell to each country, OffMarket what they may buy from it.
type MarketPrices struct {
	ToMarket  []MarketResource `json:"to_market"`
	OffMarket []MarketResource `json:"off_market"`
}

// ForCountry filters both price lists down to a single country and converts
// the entries to selectable resources.
func (p MarketPrices) ForCountry(id CountryID) (sellable, buyable []Resource) {
	for _, m := range p.ToMarket {
		if m.Country.CountryID() == id {
			sellable = append(sellable, m.Resource())
		}
	}
	for _, m := range p.OffMarket {
		if m.Country.CountryID() == id {
			buyable = append(buyable, m.Resource())
		}
	}
	return sellable, buyable
}

// ResourceLot is the wire form of one resource line in an exchange or trade
// payload.
type ResourceLot struct {
	Identifier string `json:"identificator"`
	Name       string `json:"name,omitempty"`
	Count      int64  `json:"count"`
}

// FindResource returns the resource with the given identifier, if present.
func FindResource(rs []Resource, id string) (Resource, bool) {
	for _, r := range rs {
		if r.Identifier == id {
			return r, true
		}
	}
	return Resource{}, false
}

// GoldCount returns the player's gold balance in the given ledger, zero when
// the ledger carries no gold line.
func GoldCount(rs []Resource) int64 {
	r, _ := FindResource(rs, GoldID)
	return r.Count
}

// EnsureGold appends a zero-count gold line when the ledger has none, so the
// market screens can always show a balance.
func EnsureGold(rs []Resource) []Resource {
	if _, ok := FindResource(rs, GoldID); ok {
		return rs
	}
	return append(rs, Resource{Identifier: GoldID, Count: 0, Name: "Gold"})
}
