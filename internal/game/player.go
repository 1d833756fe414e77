/*
Package game
File: player.go
Description:
    The Player State: the single mutable aggregate representing one player's
    progress. Every engine call mutates exactly one Player in place and
    appends to its bounded log. Callers (the API layer) are responsible for
    serializing access; the engines themselves never lock.
*/

package game

import "fmt"

const (
	maxLogSize        = 20 // Player-visible history, oldest entries evicted
	maxBreadcrumbSize = 64 // Debug trace trail, kept bounded as a ring
)

// Player is one player's complete mutable state.
type Player struct {
	Name          string         `json:"name"`
	Credits       int            `json:"credits"`
	ShipType      string         `json:"ship_type"`
	CargoCapacity int            `json:"cargo_capacity"`
	CargoHold     map[string]int `json:"cargo_hold"` // item -> quantity; quantities are always > 0
	Location      string         `json:"location"`
	Skills        map[string]int `json:"skills"`

	ActiveMission     *Mission  `json:"active_mission,omitempty"`
	AvailableMissions []Mission `json:"available_missions,omitempty"`

	Hubs map[string]*Hub `json:"empire_hubs"` // location -> hub

	PendingEncounter *Encounter `json:"pending_encounter,omitempty"`

	PetName  string `json:"pet_name"`
	PetTrait string `json:"pet_trait"`

	GameTime int `json:"game_time"` // Turn counter

	Log         []string `json:"log"`
	Breadcrumbs []string `json:"breadcrumbs"`

	// travelCompleted is the one-shot flag set by a successful jump and
	// consumed by the next encounter check.
	travelCompleted bool
}

// NewPlayer builds a fresh Player from the named character template.
// Unknown names fall back to the catalog's first template.
func NewPlayer(cat *Catalog, characterName string) *Player {
	ch := cat.Character(characterName)

	ship, ok := cat.Ships[ch.StartShip]
	if !ok {
		// Guarded at catalog load; keep a sane floor anyway.
		ship = Ship{Name: ch.StartShip, CargoCapacity: 50}
	}

	cargo := make(map[string]int, len(ch.StartCargo))
	for item, qty := range ch.StartCargo {
		if qty > 0 {
			cargo[item] = qty
		}
	}
	skills := make(map[string]int, len(ch.Skills))
	for k, v := range ch.Skills {
		skills[k] = v
	}

	pet := cat.Pets[ch.Pet]

	p := &Player{
		Name:          ch.Name,
		Credits:       ch.StartCredits,
		ShipType:      ship.Name,
		CargoCapacity: ship.CargoCapacity,
		CargoHold:     cargo,
		Location:      ch.StartLocation,
		Skills:        skills,
		Hubs:          map[string]*Hub{},
		PetName:       pet.Name,
		PetTrait:      pet.Trait,
		Log:           []string{"Character creation complete."},
	}
	p.crumb("init_player")
	return p
}

// AddLog appends a message to the player's visible history, evicting the
// oldest entries past maxLogSize.
func (p *Player) AddLog(message string) {
	p.Log = append(p.Log, message)
	if len(p.Log) > maxLogSize {
		p.Log = p.Log[len(p.Log)-maxLogSize:]
	}
	p.crumb("add_log")
}

// crumb records a trace tag on the bounded breadcrumb ring.
func (p *Player) crumb(tag string) {
	p.Breadcrumbs = append(p.Breadcrumbs, tag)
	if len(p.Breadcrumbs) > maxBreadcrumbSize {
		p.Breadcrumbs = p.Breadcrumbs[len(p.Breadcrumbs)-maxBreadcrumbSize:]
	}
}

// CargoUsed returns the total units currently held.
func (p *Player) CargoUsed() int {
	total := 0
	for _, qty := range p.CargoHold {
		total += qty
	}
	return total
}

// CargoFree returns the remaining cargo capacity.
func (p *Player) CargoFree() int {
	return p.CargoCapacity - p.CargoUsed()
}

// addCargo increments a cargo entry.
func (p *Player) addCargo(item string, qty int) {
	if p.CargoHold == nil {
		p.CargoHold = map[string]int{}
	}
	p.CargoHold[item] += qty
}

// removeCargo decrements a cargo entry, deleting it when it reaches zero.
// Removing more than held clamps at zero.
func (p *Player) removeCargo(item string, qty int) {
	held := p.CargoHold[item]
	if qty >= held {
		delete(p.CargoHold, item)
		return
	}
	p.CargoHold[item] = held - qty
}

// Skill returns a named skill level, zero when untrained.
func (p *Player) Skill(name string) int {
	return p.Skills[name]
}

// petBonus looks up the companion's bonus of the given type, logging when one
// actually applies. Players without a companion get zero. The catalog comes
// from the caller so the whole operation reads one snapshot.
func (e *Engine) petBonus(cat *Catalog, p *Player, bonusType string) int {
	if p.PetName == "" {
		return 0
	}
	pet, ok := cat.Pets[p.PetName]
	if !ok {
		return 0
	}
	bonus := pet.Bonuses[bonusType]
	if bonus > 0 {
		p.AddLog(fmt.Sprintf("%s provides a bonus to %s!", p.PetName, bonusType))
	}
	return bonus
}
