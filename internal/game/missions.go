/*
Package game
File: missions.go
Description:
    The mission engine: generates offers from the template catalog, tracks
    the single active mission, and resolves it whenever the player's
    location changes. Delivery missions fail outright on arrival without
    the goods; there is no retry.
*/

package game

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Mission is a concrete offer rolled from a MissionTemplate.
type Mission struct {
	ID          string      `json:"id"`
	Type        MissionType `json:"type"`
	Destination string      `json:"destination"`
	Reward      int         `json:"reward"`
	Description string      `json:"description"`

	// Delivery-only fields.
	Item     string `json:"item,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// GenerateMissions rolls 1-4 fresh offers from the template catalog and
// stores them on the player, replacing any previous unaccepted offers.
// Templates are sampled without replacement; each offer gets a destination
// different from the player's location and a reward within +/-20% of base.
func (e *Engine) GenerateMissions(p *Player) []Mission {
	cat := e.Catalog()
	templates := cat.Missions
	count := e.rollRange(1, 4)
	if count > len(templates) {
		count = len(templates)
	}

	// Fisher-Yates over template indices, driven by the engine dice.
	order := make([]int, len(templates))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := e.Dice.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	destinations := otherLocations(cat, p.Location)

	offers := make([]Mission, 0, count)
	for _, idx := range order[:count] {
		tmpl := templates[idx]
		if len(destinations) == 0 {
			break
		}

		m := Mission{
			ID:          uuid.NewString(),
			Type:        tmpl.Type,
			Destination: e.pick(destinations),
			Reward:      e.rollRange(int(float64(tmpl.BaseReward)*0.8), int(float64(tmpl.BaseReward)*1.2)),
		}

		switch m.Type {
		case MissionDelivery:
			m.Item = e.pick(cat.TradeableNames())
			maxQty := p.CargoCapacity / 10
			if maxQty < 1 {
				maxQty = 1
			}
			m.Quantity = e.rollRange(1, maxQty)
			m.Description = fmt.Sprintf("Deliver %d units of %s to %s", m.Quantity, m.Item, m.Destination)
		case MissionExploration:
			m.Description = fmt.Sprintf("Explore the %s system.", m.Destination)
		}

		offers = append(offers, m)
	}

	p.AvailableMissions = offers
	p.crumb("missions_generated")
	return offers
}

// AcceptMission takes an offer by ID. Only one mission may be active; an
// existing mission must be abandoned explicitly first.
func (e *Engine) AcceptMission(p *Player, missionID string) (bool, string) {
	if p.ActiveMission != nil {
		msg := "You already have an active mission. Abandon it first."
		p.AddLog(msg)
		return false, msg
	}

	var selected *Mission
	for i := range p.AvailableMissions {
		if p.AvailableMissions[i].ID == missionID {
			selected = &p.AvailableMissions[i]
			break
		}
	}
	if selected == nil {
		msg := "Invalid mission choice."
		p.AddLog(msg)
		return false, msg
	}

	m := *selected
	p.ActiveMission = &m
	p.AvailableMissions = nil

	var msg string
	if m.Type == MissionDelivery && p.CargoHold[m.Item] < m.Quantity {
		msg = fmt.Sprintf("Accepted mission: %s. You need to acquire %d %s.", m.Description, m.Quantity, m.Item)
	} else {
		msg = fmt.Sprintf("Accepted mission: %s", m.Description)
	}
	p.AddLog(msg)
	p.crumb("mission_accepted")
	return true, msg
}

// AbandonMission clears the active mission. Delivery missions forfeit the
// quest goods by name match - up to the mission quantity is removed from
// cargo, since quest items carry no unique identity.
func (e *Engine) AbandonMission(p *Player) (bool, string) {
	if p.ActiveMission == nil {
		msg := "No active mission to abandon."
		p.AddLog(msg)
		return false, msg
	}

	m := p.ActiveMission
	p.AddLog(fmt.Sprintf("Mission abandoned: %s", m.Description))

	if m.Type == MissionDelivery && m.Item != "" && m.Quantity > 0 {
		held := p.CargoHold[m.Item]
		lost := m.Quantity
		if lost > held {
			lost = held
		}
		if lost > 0 {
			p.removeCargo(m.Item, lost)
			p.AddLog(fmt.Sprintf("Lost %d %s from abandoning delivery.", lost, m.Item))
		}
	}

	p.ActiveMission = nil
	p.crumb("mission_abandoned")
	return true, "Mission abandoned."
}

// checkMissionCompletion runs whenever the player's location changes.
// Reaching a delivery destination without the goods fails the mission.
func (e *Engine) checkMissionCompletion(p *Player) {
	defer p.crumb("check_mission_completion")

	if p.ActiveMission == nil {
		return
	}
	m := p.ActiveMission
	if p.Location != m.Destination {
		return
	}

	if m.Type == MissionDelivery {
		if p.CargoHold[m.Item] < m.Quantity {
			p.AddLog(fmt.Sprintf("Mission failed: Insufficient %s to complete delivery.", m.Item))
			p.ActiveMission = nil
			return
		}
		p.removeCargo(m.Item, m.Quantity)
		p.AddLog(fmt.Sprintf("Delivered %d %s.", m.Quantity, m.Item))
	}

	p.Credits += m.Reward
	p.AddLog(fmt.Sprintf("Mission completed: %s. Reward: %s credits.", m.Description, humanize.Comma(int64(m.Reward))))
	p.ActiveMission = nil
	p.crumb("mission_completed")
}

// otherLocations lists every location name except current, sorted.
func otherLocations(cat *Catalog, current string) []string {
	names := make([]string, 0, len(cat.Locations))
	for name := range cat.Locations {
		if name != current {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
