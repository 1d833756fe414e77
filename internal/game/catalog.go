/*
Package game
File: catalog.go
Description:
    Loads the static reference data (the Catalog) from the YAML files in the
    catalog directory. The Catalog is immutable after load and is passed
    explicitly to every engine; nothing in this package reads it through a
    global.

    A load failure here is fatal at process startup. Engines assume a
    well-formed, non-empty catalog and do not re-validate its schema.
*/

package game

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog holds every reference table for one universe.
type Catalog struct {
	Locations  map[string]Location          `yaml:"locations"`
	Goods      map[string]Commodity         `yaml:"goods"`
	Materials  map[string]Commodity         `yaml:"materials"`
	Ships      map[string]Ship              `yaml:"ships"`
	Recipes    map[string]Recipe            `yaml:"recipes"`
	Structures map[string]Structure         `yaml:"structures"`
	Missions   []MissionTemplate            `yaml:"missions"`
	Pets       map[string]Pet               `yaml:"pets"`
	Characters []CharacterTemplate          `yaml:"characters"`
	Profiles   map[string]PlanetProfile     `yaml:"planet_profiles"`

	// tradeables is the consolidated Goods+Materials view, built once at load.
	tradeables map[string]Commodity
}

// catalogFiles maps file names under the catalog dir to the field they fill.
// Each file holds exactly one top-level table.
var catalogFiles = []string{
	"locations.yaml",
	"goods.yaml",
	"materials.yaml",
	"ships.yaml",
	"recipes.yaml",
	"structures.yaml",
	"missions.yaml",
	"pets.yaml",
	"characters.yaml",
	"planet_profiles.yaml",
}

// LoadCatalog reads every catalog file under dir and returns the assembled,
// validated Catalog.
func LoadCatalog(dir string) (*Catalog, error) {
	cat := &Catalog{}
	for _, name := range catalogFiles {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("catalog: reading %s: %w", name, err)
		}
		if err := yaml.Unmarshal(raw, cat); err != nil {
			return nil, fmt.Errorf("catalog: parsing %s: %w", name, err)
		}
	}

	if err := cat.validate(); err != nil {
		return nil, err
	}

	// Consolidate goods and materials for trade lookups.
	cat.tradeables = make(map[string]Commodity, len(cat.Goods)+len(cat.Materials))
	for name, c := range cat.Goods {
		cat.tradeables[name] = c
	}
	for name, c := range cat.Materials {
		cat.tradeables[name] = c
	}
	return cat, nil
}

// validate rejects malformed reference data at the loading boundary so the
// engines never have to re-check it.
func (c *Catalog) validate() error {
	if len(c.Locations) == 0 {
		return fmt.Errorf("catalog: no locations defined")
	}
	if len(c.Goods)+len(c.Materials) == 0 {
		return fmt.Errorf("catalog: no tradeable items defined")
	}
	if len(c.Characters) == 0 {
		return fmt.Errorf("catalog: no character templates defined")
	}
	for name, loc := range c.Locations {
		for _, conn := range loc.Connections {
			if _, ok := c.Locations[conn]; !ok {
				return fmt.Errorf("catalog: location %q connects to unknown location %q", name, conn)
			}
		}
	}
	for i, m := range c.Missions {
		switch m.Type {
		case MissionDelivery, MissionExploration:
		default:
			return fmt.Errorf("catalog: mission template %d has unknown type %q", i, m.Type)
		}
	}
	for _, ch := range c.Characters {
		if _, ok := c.Locations[ch.StartLocation]; !ok {
			return fmt.Errorf("catalog: character %q starts at unknown location %q", ch.Name, ch.StartLocation)
		}
		if _, ok := c.Ships[ch.StartShip]; !ok {
			return fmt.Errorf("catalog: character %q starts with unknown ship %q", ch.Name, ch.StartShip)
		}
	}
	return nil
}

// Tradeable returns the commodity entry (good or material) for an item name.
func (c *Catalog) Tradeable(name string) (Commodity, bool) {
	item, ok := c.tradeables[name]
	return item, ok
}

// TradeableNames returns every tradeable item name in sorted order.
// Sorted so random picks drawn against it are reproducible under a seeded Dice.
func (c *Catalog) TradeableNames() []string {
	names := make([]string, 0, len(c.tradeables))
	for name := range c.tradeables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LocationByName returns the location entry for a name.
func (c *Catalog) LocationByName(name string) (Location, bool) {
	loc, ok := c.Locations[name]
	return loc, ok
}

// Character returns the template matching name, falling back to the first
// template when the name is unknown.
func (c *Catalog) Character(name string) CharacterTemplate {
	for _, ch := range c.Characters {
		if ch.Name == name {
			return ch
		}
	}
	return c.Characters[0]
}

// MarketView returns the commodity data for the items listed on a location's
// market board, skipping names not present in the tradeable tables.
func (c *Catalog) MarketView(locationName string) map[string]Commodity {
	loc, ok := c.Locations[locationName]
	if !ok {
		return map[string]Commodity{}
	}
	view := make(map[string]Commodity, len(loc.MarketItems))
	for _, item := range loc.MarketItems {
		if data, ok := c.tradeables[item]; ok {
			view[item] = data
		}
	}
	return view
}
