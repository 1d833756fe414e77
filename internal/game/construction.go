/*
Package game
File: construction.go
Description:
    The construction and empire-hub engine. Two phases: Initiate validates
    cost and power headroom and queues a project; Advance completes projects
    whose time has come and recomputes the derived resource balances.

    power_balance, food_balance and workforce_available are never assigned
    directly anywhere else - Advance is the single place they are derived.
*/

package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ConstructionProject is one queued structure build at a hub.
type ConstructionProject struct {
	ProjectID      string `json:"project_id"`
	StructureID    string `json:"id"`
	CompletionTime int    `json:"completion_time"` // Game time at which the build finishes
}

// Hub is a player-owned planetary site with structures and resource balances.
type Hub struct {
	Location        string                `json:"location"`
	PlanetaryAssets map[string]int        `json:"planetary_assets"`
	Ongoing         []ConstructionProject `json:"ongoing_constructions"`
	Active          map[string]int        `json:"active_structures"` // structure id -> count

	PowerGeneration    int `json:"power_generation"`
	PowerConsumption   int `json:"power_consumption"`
	PopulationCapacity int `json:"population_capacity"`
	Population         int `json:"population"`
	FoodGeneration     int `json:"food_generation"`
	FoodConsumption    int `json:"food_consumption"` // Per head, per turn

	// Derived by AdvanceConstruction; never authoritative on their own.
	PowerBalance       int `json:"power_balance"`
	FoodBalance        int `json:"food_balance"`
	WorkforceAvailable int `json:"workforce_available"`
}

// EstablishHub founds an empire hub at the player's current location.
func (e *Engine) EstablishHub(p *Player) (bool, string) {
	if _, exists := p.Hubs[p.Location]; exists {
		msg := fmt.Sprintf("A hub is already established at %s.", p.Location)
		p.AddLog(msg)
		return false, msg
	}
	if p.Credits < HubFoundingCost {
		msg := fmt.Sprintf("Cannot establish hub: need %d credits, have %d.", HubFoundingCost, p.Credits)
		p.AddLog(msg)
		return false, msg
	}

	p.Credits -= HubFoundingCost
	p.Hubs[p.Location] = &Hub{
		Location:        p.Location,
		PlanetaryAssets: map[string]int{},
		Active:          map[string]int{},
	}
	msg := fmt.Sprintf("Established empire hub at %s.", p.Location)
	p.AddLog(msg)
	p.crumb("hub_established")
	return true, msg
}

// DepositResources moves materials from the cargo hold into the local hub's
// planetary assets, where construction draws from.
func (e *Engine) DepositResources(p *Player, item string, qty int) (bool, string) {
	hub, ok := p.Hubs[p.Location]
	if !ok {
		msg := fmt.Sprintf("No hub established at %s.", p.Location)
		p.AddLog(msg)
		return false, msg
	}
	if qty <= 0 {
		msg := "Invalid quantity specified."
		p.AddLog(msg)
		return false, msg
	}
	if held := p.CargoHold[item]; held < qty {
		msg := fmt.Sprintf("Cannot deposit %d %s. Only have %d.", qty, item, held)
		p.AddLog(msg)
		return false, msg
	}

	p.removeCargo(item, qty)
	hub.PlanetaryAssets[item] += qty
	msg := fmt.Sprintf("Deposited %d %s at the %s hub.", qty, item, p.Location)
	p.AddLog(msg)
	p.crumb("hub_deposit")
	return true, msg
}

// InitiateConstruction queues a structure build at the current location's hub.
// Fails without deducting anything when resources, credits or power headroom
// are insufficient.
func (e *Engine) InitiateConstruction(p *Player, structureID string) (bool, string) {
	hub, ok := p.Hubs[p.Location]
	if !ok {
		msg := fmt.Sprintf("No hub established at %s.", p.Location)
		p.AddLog(msg)
		return false, msg
	}

	structure, ok := e.Catalog().Structures[structureID]
	if !ok {
		msg := fmt.Sprintf("Structure %s not found", structureID)
		p.AddLog(msg)
		return false, msg
	}

	var missing []string
	for resource, amount := range structure.BuildCost.Resources {
		if have := hub.PlanetaryAssets[resource]; have < amount {
			missing = append(missing, fmt.Sprintf("%s (need %d, have %d)", resource, amount, have))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		msg := fmt.Sprintf("Insufficient resources: %s", strings.Join(missing, ", "))
		p.AddLog(msg)
		return false, msg
	}

	if p.Credits < structure.BuildCost.Credits {
		msg := fmt.Sprintf("Insufficient credits: need %d, have %d", structure.BuildCost.Credits, p.Credits)
		p.AddLog(msg)
		return false, msg
	}

	if draw := structure.Effects.PowerConsumption; draw > 0 {
		if hub.PowerConsumption+draw > hub.PowerGeneration {
			msg := fmt.Sprintf("Insufficient power capacity to operate this structure (Needs %d, Available headroom: %d)",
				draw, hub.PowerGeneration-hub.PowerConsumption)
			p.AddLog(msg)
			return false, msg
		}
	}

	p.Credits -= structure.BuildCost.Credits
	for resource, amount := range structure.BuildCost.Resources {
		hub.PlanetaryAssets[resource] -= amount
	}

	hub.Ongoing = append(hub.Ongoing, ConstructionProject{
		ProjectID:      uuid.NewString(),
		StructureID:    structureID,
		CompletionTime: p.GameTime + structure.BuildTime,
	})

	msg := fmt.Sprintf("Construction of %s started", structureID)
	p.AddLog(msg)
	p.crumb("construction_started")
	return true, msg
}

// AdvanceConstruction is called once per elapsed game-time tick. It applies
// the effects of every finished project, then recomputes the derived
// balances for every hub - unconditionally, so calling it with nothing
// pending is an idempotent recompute.
func (e *Engine) AdvanceConstruction(p *Player) {
	defer p.crumb("update_construction")

	cat := e.Catalog()
	for _, hub := range p.Hubs {
		remaining := hub.Ongoing[:0]
		for _, project := range hub.Ongoing {
			if project.CompletionTime > p.GameTime {
				remaining = append(remaining, project)
				continue
			}

			structure, ok := cat.Structures[project.StructureID]
			if !ok {
				// Catalog changed under a live game; drop the orphan quietly.
				continue
			}
			if hub.Active == nil {
				hub.Active = map[string]int{}
			}
			hub.Active[project.StructureID]++
			hub.PowerGeneration += structure.Effects.PowerGeneration
			hub.PowerConsumption += structure.Effects.PowerConsumption
			hub.PopulationCapacity += structure.Effects.PopulationCapacity
			hub.FoodGeneration += structure.Effects.FoodGeneration

			p.AddLog(fmt.Sprintf("Construction complete: %s at %s.", structure.Name, hub.Location))
		}
		hub.Ongoing = remaining

		hub.PowerBalance = hub.PowerGeneration - hub.PowerConsumption
		hub.FoodBalance = hub.FoodGeneration - hub.FoodConsumption*hub.Population
		hub.WorkforceAvailable = hub.Population
	}
}

// EndTurn advances the game clock one tick and settles construction.
func (e *Engine) EndTurn(p *Player) string {
	p.GameTime++
	e.AdvanceConstruction(p)
	p.crumb("turn_ended")
	return fmt.Sprintf("Turn %d begins.", p.GameTime)
}
