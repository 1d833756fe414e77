/*
Package game
File: models.go
Description:
    Defines the data structures for the Starborn Traders universe.
    This file serves as the "schema" for the application, mapping directly to
    the YAML catalog files and JSON API responses.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// Tuning constants for the macro-economy. These mirror the balance values the
// catalog does not carry per-entry.
const (
	TradePriceVariation = 0.2  // Max +/- 20% price fluctuation at a market
	EncounterChance     = 0.15 // Chance of a random encounter per completed jump
	FleeChanceBase      = 0.5  // Base chance to flee pirates before pet bonuses
	DefaultTravelCost   = 50   // Fallback jump cost when a location omits one
	HubFoundingCost     = 5000 // Credits to establish an empire hub
)

// Location represents a static node in the universe.
type Location struct {
	Name        string   `yaml:"name" json:"name"`                 // Display name, also the catalog key
	Connections []string `yaml:"connections" json:"connections"`   // Locations reachable in one jump
	TravelCost  int      `yaml:"travel_cost" json:"travel_cost"`   // Credits per jump to arrive here
	Market      bool     `yaml:"market" json:"market"`             // Whether goods can be traded here
	Shipyard    bool     `yaml:"shipyard" json:"shipyard"`         // Whether ships can be purchased here
	MarketItems []string `yaml:"market_items" json:"market_items"` // Item names listed on the local market board
	Services    []string `yaml:"services" json:"services"`         // Crafting stations present (e.g. "Quantum Forge")
}

// Commodity represents a tradeable good or raw material.
type Commodity struct {
	Name      string   `yaml:"name" json:"name"`             // Display name, also the catalog key
	BaseValue int      `yaml:"base_value" json:"base_value"` // Baseline price before market variation
	Tags      []string `yaml:"tags" json:"tags"`             // Classification tags ("metallic", "volatile", ...)
	Rarity    string   `yaml:"rarity" json:"rarity"`         // "common", "uncommon", "rare"
}

// Ship represents a purchasable hull.
type Ship struct {
	Name          string `yaml:"name" json:"name"`
	CargoCapacity int    `yaml:"cargo_capacity" json:"cargo_capacity"` // Max units of cargo
	Cost          int    `yaml:"cost" json:"cost"`                     // Purchase price in credits
}

// Recipe describes how materials combine into a crafted item.
// The recipe key doubles as the output item name.
type Recipe struct {
	Inputs          map[string]int `yaml:"inputs" json:"inputs"`                     // Material name -> quantity consumed
	OutputQuantity  int            `yaml:"output_quantity" json:"output_quantity"`   // Units produced before bonuses
	MinSkill        int            `yaml:"min_skill" json:"min_skill"`               // Minimum crafting skill
	RequiredStation string         `yaml:"required_station" json:"required_station"` // Station service needed, empty = none
}

// StructureEffects are the per-unit contributions an active structure makes to
// its hub's resource totals.
type StructureEffects struct {
	PowerGeneration    int `yaml:"power_generation" json:"power_generation"`
	PowerConsumption   int `yaml:"power_consumption" json:"power_consumption"`
	PopulationCapacity int `yaml:"population_capacity" json:"population_capacity"`
	FoodGeneration     int `yaml:"food_generation" json:"food_generation"`
}

// StructureCost is what a structure demands up front.
type StructureCost struct {
	Credits   int            `yaml:"credits" json:"credits"`
	Resources map[string]int `yaml:"resources" json:"resources"` // Drawn from the hub's planetary assets
}

// Structure represents a buildable hub installation.
type Structure struct {
	Name      string           `yaml:"name" json:"name"`
	BuildCost StructureCost    `yaml:"build_cost" json:"build_cost"`
	Effects   StructureEffects `yaml:"effects" json:"effects"`
	BuildTime int              `yaml:"build_time" json:"build_time"` // Turns until completion
}

// MissionType is a closed set; string-keyed dispatch from the old data files
// is replaced by this tagged form, validated at catalog load.
type MissionType string

const (
	MissionDelivery    MissionType = "delivery"
	MissionExploration MissionType = "exploration"
)

// MissionTemplate is the catalog seed a concrete mission offer is rolled from.
type MissionTemplate struct {
	Type       MissionType `yaml:"type" json:"type"`
	BaseReward int         `yaml:"reward" json:"reward"`
	Flavor     string      `yaml:"flavor" json:"flavor"` // Short flavor line shown with the offer
}

// Pet is a companion creature granting situational bonuses.
type Pet struct {
	Name    string         `yaml:"name" json:"name"`
	Trait   string         `yaml:"trait" json:"trait"`     // Display trait ("Loyal", "Scavenger", ...)
	Bonuses map[string]int `yaml:"bonuses" json:"bonuses"` // Bonus type -> flat value ("negotiation", "evasion", "investigation")
}

// CharacterTemplate seeds a brand new player state.
type CharacterTemplate struct {
	Name          string         `yaml:"name" json:"name"`
	StartCredits  int            `yaml:"start_credits" json:"start_credits"`
	StartShip     string         `yaml:"start_ship" json:"start_ship"`
	StartLocation string         `yaml:"start_location" json:"start_location"`
	StartCargo    map[string]int `yaml:"start_cargo" json:"start_cargo"`
	Skills        map[string]int `yaml:"skills" json:"skills"`
	Pet           string         `yaml:"pet" json:"pet"` // Pet catalog key
}

// PlanetProfile tunes crafting efficiency by location.
// Bonus keys are rules of the form "tag:<material tag>" mapping to a
// multiplier (1.10 = +10% when any input carries the tag).
type PlanetProfile struct {
	EfficiencyBonus map[string]float64 `yaml:"efficiency_bonus" json:"efficiency_bonus"`
}
