package game

// scriptedDice replays fixed rolls in order. Exhausted scripts fall back to
// Float64 0.5 (no price variation, no encounter) and Intn 0.
type scriptedDice struct {
	floats []float64
	ints   []int
}

func (d *scriptedDice) Float64() float64 {
	if len(d.floats) == 0 {
		return 0.5
	}
	v := d.floats[0]
	d.floats = d.floats[1:]
	return v
}

func (d *scriptedDice) Intn(n int) int {
	if len(d.ints) == 0 {
		return 0
	}
	v := d.ints[0]
	d.ints = d.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// testCatalog builds a small self-consistent universe in code so tests do not
// depend on the shipped data files.
func testCatalog() *Catalog {
	cat := &Catalog{
		Locations: map[string]Location{
			"Mars Colony": {
				Name:        "Mars Colony",
				Connections: []string{"Earth", "Aetheria"},
				TravelCost:  50,
				Market:      true,
				MarketItems: []string{"Fuel Cell", "Iron", "Silicates"},
				Services:    []string{"Fabricator"},
			},
			"Earth": {
				Name:        "Earth",
				Connections: []string{"Mars Colony"},
				TravelCost:  50,
				Market:      true,
				Shipyard:    true,
				MarketItems: []string{"Fuel Cell"},
			},
			"Aetheria": {
				Name:        "Aetheria",
				Connections: []string{"Mars Colony"},
				TravelCost:  75,
				Services:    []string{"Quantum Forge"},
			},
		},
		Goods: map[string]Commodity{
			"Fuel Cell": {Name: "Fuel Cell", BaseValue: 25, Tags: []string{"volatile"}, Rarity: "common"},
		},
		Materials: map[string]Commodity{
			"Iron":      {Name: "Iron", BaseValue: 8, Tags: []string{"metallic"}, Rarity: "common"},
			"Silicates": {Name: "Silicates", BaseValue: 6, Tags: []string{"mineral"}, Rarity: "common"},
		},
		Ships: map[string]Ship{
			"Shuttle": {Name: "Shuttle", CargoCapacity: 50, Cost: 0},
			"Clipper": {Name: "Clipper", CargoCapacity: 80, Cost: 4500},
		},
		Recipes: map[string]Recipe{
			"Plasteel": {
				Inputs:          map[string]int{"Iron": 5, "Silicates": 3},
				OutputQuantity:  2,
				MinSkill:        1,
				RequiredStation: "Fabricator",
			},
			"Nutrient Paste": {
				Inputs:         map[string]int{"Silicates": 1},
				OutputQuantity: 10,
			},
		},
		Structures: map[string]Structure{
			"solar_array": {
				Name:      "Solar Array",
				BuildCost: StructureCost{Credits: 500, Resources: map[string]int{"Silicates": 10}},
				Effects:   StructureEffects{PowerGeneration: 10},
				BuildTime: 1,
			},
			"habitat_dome": {
				Name:      "Habitat Dome",
				BuildCost: StructureCost{Credits: 1500, Resources: map[string]int{"Iron": 20}},
				Effects:   StructureEffects{PowerConsumption: 5, PopulationCapacity: 50},
				BuildTime: 2,
			},
		},
		Missions: []MissionTemplate{
			{Type: MissionDelivery, BaseReward: 200, Flavor: "Freight run."},
			{Type: MissionExploration, BaseReward: 300, Flavor: "Survey run."},
		},
		Pets: map[string]Pet{
			"Kibble": {Name: "Kibble", Trait: "Scrap Rat", Bonuses: map[string]int{"negotiation": 2}},
			"Echo":   {Name: "Echo", Trait: "Void Pup", Bonuses: map[string]int{"evasion": 3}},
			"Glitch": {Name: "Glitch", Trait: "Tech Spider", Bonuses: map[string]int{"investigation": 4}},
		},
		Characters: []CharacterTemplate{
			{
				Name:          "Captain Rex",
				StartCredits:  1000,
				StartShip:     "Shuttle",
				StartLocation: "Mars Colony",
				Skills:        map[string]int{"crafting": 1, "piloting": 2},
				Pet:           "Kibble",
			},
		},
		Profiles: map[string]PlanetProfile{
			"Mars Colony": {EfficiencyBonus: map[string]float64{"tag:mineral": 1.05}},
		},
	}

	cat.tradeables = map[string]Commodity{}
	for name, c := range cat.Goods {
		cat.tradeables[name] = c
	}
	for name, c := range cat.Materials {
		cat.tradeables[name] = c
	}
	return cat
}

// testEngine returns a fresh engine with scripted dice and its default player.
func testEngine(dice *scriptedDice) (*Engine, *Player) {
	cat := testCatalog()
	e := NewEngineWithDice(cat, dice)
	return e, NewPlayer(cat, "Captain Rex")
}
