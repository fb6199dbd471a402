// Package catalog maps resource and country identifiers to display
// metadata. The mapping is data, not code: it ships with built-in defaults
// and can be replaced wholesale from a YAML file, keeping presentation
// assets out of the transaction logic.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is the display metadata for one identifier.
type Entry struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon,omitempty"`
}

// Catalog resolves identifiers to display metadata. Unknown identifiers
// fall back to the identifier itself so nothing ever renders blank.
type Catalog struct {
	Resources map[string]Entry `yaml:"resources"`
	Countries map[string]Entry `yaml:"countries"`
}

// Default returns the built-in catalog covering the stock resource set.
func Default() *Catalog {
	return &Catalog{
		Resources: map[string]Entry{
			"gold":        {Name: "Gold", Icon: "🪙"},
			"grain":       {Name: "Grain", Icon: "🌾"},
			"timber":      {Name: "Timber", Icon: "🪵"},
			"boards":      {Name: "Boards", Icon: "🪚"},
			"stone":       {Name: "Stone", Icon: "🪨"},
			"stone_brick": {Name: "Stone brick", Icon: "🧱"},
			"food":        {Name: "Food", Icon: "🍞"},
			"flour":       {Name: "Flour", Icon: "🫓"},
			"meat":        {Name: "Meat", Icon: "🍖"},
			"horses":      {Name: "Horses", Icon: "🐴"},
			"metal_ore":   {Name: "Metal ore", Icon: "⛏"},
			"metal":       {Name: "Metal", Icon: "🔩"},
			"gem_ore":     {Name: "Gem ore", Icon: "💠"},
			"gems":        {Name: "Gems", Icon: "💎"},
			"tools":       {Name: "Tools", Icon: "🔧"},
			"weapon":      {Name: "Weapons", Icon: "⚔"},
			"armor":       {Name: "Armor", Icon: "🛡"},
			"luxury":      {Name: "Luxury goods", Icon: "👑"},
			"money":       {Name: "Money", Icon: "💰"},
		},
		Countries: map[string]Entry{},
	}
}

// Load reads a catalog from a YAML file. An empty path returns the
// defaults. A file entry set overrides the corresponding default set
// entirely; the other set keeps its defaults.
func Load(path string) (*Catalog, error) {
	c := Default()
	if strings.TrimSpace(path) == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file Catalog
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	if file.Resources != nil {
		c.Resources = file.Resources
	}
	if file.Countries != nil {
		c.Countries = file.Countries
	}
	return c, nil
}

// ResourceName returns the display name for a resource identifier.
func (c *Catalog) ResourceName(id string) string {
	if e, ok := c.Resources[id]; ok && e.Name != "" {
		return e.Name
	}
	return id
}

// ResourceIcon returns the icon for a resource identifier, empty when the
// catalog has none.
func (c *Catalog) ResourceIcon(id string) string {
	return c.Resources[id].Icon
}

// CountryName returns the display name for a country identifier.
func (c *Catalog) CountryName(id string) string {
	if e, ok := c.Countries[id]; ok && e.Name != "" {
		return e.Name
	}
	return id
}
