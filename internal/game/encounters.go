/*
Package game
File: encounters.go
Description:
    The encounter engine. A successful jump arms a one-shot flag; the next
    encounter check consumes it and may roll a narrative event. Because the
    server cannot prompt at a terminal, a triggered encounter is parked on
    the player state as a typed pending record and resolved by a follow-up
    player choice.
*/

package game

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// EncounterKind discriminates the encounter variants.
type EncounterKind string

const (
	EncounterPirates  EncounterKind = "pirates"
	EncounterTrader   EncounterKind = "trader"
	EncounterDistress EncounterKind = "distress_signal"
)

// PirateDetails carries the pre-rolled flee odds for a pirate ambush.
type PirateDetails struct {
	FleeChance float64 `json:"flee_chance"`
}

// TraderDetails carries the one-item offer of a wandering trader.
// Selling means the trader sells TO the player.
type TraderDetails struct {
	Selling  bool   `json:"selling"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"` // Per unit; rolled on wider bands than market prices
}

// Encounter is a pending narrative event awaiting a player choice.
// Exactly one detail field matching Kind is set.
type Encounter struct {
	Kind    EncounterKind  `json:"kind"`
	Message string         `json:"message"`
	Pirates *PirateDetails `json:"pirates,omitempty"`
	Trader  *TraderDetails `json:"trader,omitempty"`
}

// CheckEncounter consumes the post-travel flag and rolls for an encounter.
// Returns the pending encounter, or nil when nothing triggered. Trader
// encounters that cannot produce an offer (the trader wants goods the player
// does not hold) self-resolve into a log entry.
func (e *Engine) CheckEncounter(p *Player) *Encounter {
	defer p.crumb("check_random_encounter")

	if !p.travelCompleted {
		return nil
	}
	p.travelCompleted = false

	if e.Dice.Float64() >= EncounterChance {
		return nil
	}

	cat := e.Catalog()
	kinds := []EncounterKind{EncounterPirates, EncounterTrader, EncounterDistress}
	kind := kinds[e.Dice.Intn(len(kinds))]
	p.AddLog(fmt.Sprintf("Encounter triggered: %s", kind))

	var enc *Encounter
	switch kind {
	case EncounterPirates:
		enc = e.rollPirates(cat, p)
	case EncounterTrader:
		enc = e.rollTrader(cat, p)
	case EncounterDistress:
		p.AddLog("Detected a distress signal.")
		enc = &Encounter{
			Kind:    EncounterDistress,
			Message: "You pick up a distress signal nearby.",
		}
	}

	p.PendingEncounter = enc
	return enc
}

// ResolveEncounter applies the player's choice to the pending encounter.
func (e *Engine) ResolveEncounter(p *Player, choice string) (bool, string) {
	enc := p.PendingEncounter
	if enc == nil {
		return false, "No encounter to resolve."
	}
	p.PendingEncounter = nil

	switch enc.Kind {
	case EncounterPirates:
		return e.resolvePirates(p, enc.Pirates, choice)
	case EncounterTrader:
		return e.resolveTrader(p, enc.Trader, choice)
	case EncounterDistress:
		return e.resolveDistress(p, choice)
	}
	return false, "Unknown encounter."
}

func (e *Engine) rollPirates(cat *Catalog, p *Player) *Encounter {
	p.AddLog("Encountered pirates.")

	flee := FleeChanceBase + float64(e.petBonus(cat, p, "evasion"))
	if flee < 0.1 {
		flee = 0.1
	}
	if flee > 0.9 {
		flee = 0.9
	}
	return &Encounter{
		Kind:    EncounterPirates,
		Message: "Hostile ships detected - Pirates!",
		Pirates: &PirateDetails{FleeChance: flee},
	}
}

func (e *Engine) resolvePirates(p *Player, details *PirateDetails, choice string) (bool, string) {
	defer p.crumb("encounter_pirates")

	switch choice {
	case "flee":
		if e.Dice.Float64() < details.FleeChance {
			p.AddLog("Successfully fled from pirates.")
			p.crumb("fled_pirates")
			return true, "You managed to escape!"
		}
		p.AddLog("Failed to flee pirates. Cargo lost.")
		p.CargoHold = map[string]int{}
		return false, "Escape failed! The pirates seize your cargo."
	case "fight":
		p.AddLog("Attempted to fight pirates. Overwhelmed. Cargo lost.")
		p.CargoHold = map[string]int{}
		return false, "You engage the pirates, but their numbers are too great. They take your cargo."
	case "jettison":
		p.AddLog("Jettisoned cargo to appease the pirates.")
		return true, "You jettison your cargo to appease the pirates. They let you go... this time."
	default:
		p.AddLog("Hesitated against pirates. Cargo lost.")
		p.CargoHold = map[string]int{}
		return false, "You hesitate, and the pirates board your ship, taking all your cargo."
	}
}

// rollTrader builds the one-item offer. A trader who wants to buy something
// the player does not carry resolves immediately with no pending state.
func (e *Engine) rollTrader(cat *Catalog, p *Player) *Encounter {
	p.AddLog("Encountered a friendly trader.")

	selling := e.Dice.Intn(2) == 0
	item := e.pick(cat.TradeableNames())
	data, _ := cat.Tradeable(item)

	if selling {
		qty := e.rollRange(1, 5)
		price := roundPrice(float64(data.BaseValue) * e.between(0.9, 1.5))
		return &Encounter{
			Kind:    EncounterTrader,
			Message: fmt.Sprintf("Trader offers to sell %d %s for %d credits each.", qty, item, price),
			Trader:  &TraderDetails{Selling: true, Item: item, Quantity: qty, Price: price},
		}
	}

	held := p.CargoHold[item]
	if held == 0 {
		p.AddLog(fmt.Sprintf("Trader encounter: Wanted %s, player had none.", item))
		return nil
	}
	maxWanted := held / 2
	if maxWanted < 1 {
		maxWanted = 1
	}
	qty := e.rollRange(1, maxWanted)
	price := roundPrice(float64(data.BaseValue) * e.between(0.5, 1.1))
	return &Encounter{
		Kind:    EncounterTrader,
		Message: fmt.Sprintf("Trader wants to buy %d %s for %d credits each.", qty, item, price),
		Trader:  &TraderDetails{Selling: false, Item: item, Quantity: qty, Price: price},
	}
}

func (e *Engine) resolveTrader(p *Player, offer *TraderDetails, choice string) (bool, string) {
	defer p.crumb("encounter_trader")

	if choice != "accept" {
		if offer.Selling {
			p.AddLog("Declined trader's sell offer.")
		} else {
			p.AddLog("Declined trader's buy offer.")
		}
		return true, "You decline the offer."
	}

	if offer.Selling {
		cost := offer.Quantity * offer.Price
		switch {
		case p.Credits < cost:
			p.AddLog("Trade failed: Insufficient credits.")
			return false, "You don't have enough credits."
		case p.CargoFree() < offer.Quantity:
			p.AddLog("Trade failed: Insufficient cargo space.")
			return false, "You don't have enough cargo space."
		default:
			p.Credits -= cost
			p.addCargo(offer.Item, offer.Quantity)
			p.AddLog(fmt.Sprintf("Bought %d %s from encounter trader for %s credits.",
				offer.Quantity, offer.Item, humanize.Comma(int64(cost))))
			p.crumb("trade_encounter_buy")
			return true, "Purchase successful."
		}
	}

	if p.CargoHold[offer.Item] < offer.Quantity {
		p.AddLog("Trade failed: Somehow lacked goods despite check.")
		return false, "Error: Goods not available."
	}
	earnings := offer.Quantity * offer.Price
	p.Credits += earnings
	p.removeCargo(offer.Item, offer.Quantity)
	p.AddLog(fmt.Sprintf("Sold %d %s to encounter trader for %s credits.",
		offer.Quantity, offer.Item, humanize.Comma(int64(earnings))))
	p.crumb("trade_encounter_sell")
	return true, "Sale successful."
}

// resolveDistress runs the weighted outcome table. An ambush outcome re-arms
// the pending encounter with a pirate event.
func (e *Engine) resolveDistress(p *Player, choice string) (bool, string) {
	defer p.crumb("encounter_distress_signal")

	if choice != "investigate" {
		p.AddLog("Ignored distress signal.")
		p.crumb("distress_ignored")
		return true, "You decide it's too risky and continue on your way."
	}

	p.AddLog("Investigating distress signal.")
	cat := e.Catalog()
	bonus := e.petBonus(cat, p, "investigation")
	outcome := e.Dice.Float64() + float64(bonus)*0.01

	switch {
	case outcome < 0.3:
		p.AddLog("Distress signal was a pirate ambush!")
		p.PendingEncounter = e.rollPirates(cat, p)
		p.crumb("distress_ambush")
		return false, "It's a trap! Pirates emerge from hiding!"

	case outcome < 0.7:
		reward := e.rollRange(50, 200)
		p.Credits += reward
		p.AddLog(fmt.Sprintf("Rescued stranded ship. Received %d credits reward.", reward))
		p.crumb("distress_rescue_reward")
		return true, fmt.Sprintf("You find a stranded civilian ship. They gratefully transfer %d credits.", reward)

	default:
		p.AddLog("Found a derelict ship near distress signal.")
		if e.Dice.Float64() >= 0.6+float64(bonus)*0.01 {
			p.AddLog("Derelict ship yielded no useful salvage.")
			p.crumb("distress_salvage_fail")
			return true, "The derelict is picked clean or too damaged. Nothing useful found."
		}
		item := e.pick(cat.TradeableNames())
		qty := e.rollRange(1, 5)
		if p.CargoFree() < qty {
			p.AddLog("Found salvage but lacked cargo space.")
			p.crumb("distress_salvage_no_space")
			return false, fmt.Sprintf("You found some salvage (%s), but lack the cargo space to take it.", item)
		}
		p.addCargo(item, qty)
		p.AddLog(fmt.Sprintf("Salvaged %d %s from derelict.", qty, item))
		p.crumb("distress_salvage_success")
		return true, fmt.Sprintf("You salvaged %d units of %s!", qty, item)
	}
}

func roundPrice(v float64) int {
	price := int(math.Round(v))
	if price < 1 {
		price = 1
	}
	return price
}
