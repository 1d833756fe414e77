/*
Package game
File: trade.go
Description:
    The trade engine: validates and applies buy/sell transactions against the
    player state and the catalog. Buy prices come from the dynamic pricing
    roll; sell prices use the fixed half-base-value heuristic plus the
    companion's negotiation bonus. The asymmetry is deliberate - round-trip
    trading at one location is never profitable.
*/

package game

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Buy attempts to purchase qty units of item at the player's location.
// Returns (false, reason) without mutating holdings on any failed check.
func (e *Engine) Buy(p *Player, item string, qty int) (bool, string) {
	cat := e.Catalog()

	loc, ok := cat.LocationByName(p.Location)
	if !ok || !loc.Market {
		msg := "No market available at this location."
		p.AddLog(msg)
		return false, msg
	}

	if qty <= 0 {
		msg := "Invalid quantity specified."
		p.AddLog(msg)
		return false, msg
	}

	data, ok := cat.Tradeable(item)
	if !ok {
		msg := fmt.Sprintf("Item '%s' not available for purchase here.", item)
		p.AddLog(msg)
		return false, msg
	}

	prices := e.DynamicPrices(map[string]Commodity{item: data}, p.Location)
	price := prices[item]

	cost := qty * price
	if p.Credits < cost {
		msg := fmt.Sprintf("Cannot afford %d %s. Need %s, have %s.",
			qty, item, humanize.Comma(int64(cost)), humanize.Comma(int64(p.Credits)))
		p.AddLog(msg)
		return false, msg
	}

	if free := p.CargoFree(); free < qty {
		msg := fmt.Sprintf("Cannot buy %d %s. Cargo hold full (%d units free).", qty, item, free)
		p.AddLog(msg)
		return false, msg
	}

	p.Credits -= cost
	p.addCargo(item, qty)
	msg := fmt.Sprintf("Bought %d %s for %s credits.", qty, item, humanize.Comma(int64(cost)))
	p.AddLog(msg)
	p.crumb("trade_buy")
	return true, msg
}

// Sell attempts to sell qty units of item from the cargo hold.
func (e *Engine) Sell(p *Player, item string, qty int) (bool, string) {
	cat := e.Catalog()

	loc, ok := cat.LocationByName(p.Location)
	if !ok || !loc.Market {
		msg := "No market available at this location."
		p.AddLog(msg)
		return false, msg
	}

	if qty <= 0 {
		msg := "Invalid quantity specified."
		p.AddLog(msg)
		return false, msg
	}

	held, ok := p.CargoHold[item]
	if !ok {
		msg := fmt.Sprintf("Item '%s' not found in cargo hold.", item)
		p.AddLog(msg)
		return false, msg
	}
	if qty > held {
		msg := fmt.Sprintf("Cannot sell %d %s. Only have %d.", qty, item, held)
		p.AddLog(msg)
		return false, msg
	}

	data, ok := cat.Tradeable(item)
	if !ok {
		// Held items should always have catalog data; safeguard anyway.
		msg := fmt.Sprintf("Error: Data for item '%s' not found.", item)
		p.AddLog(msg)
		return false, msg
	}

	negotiation := e.petBonus(cat, p, "negotiation")
	sellPrice := data.BaseValue/2 + negotiation
	if sellPrice < 1 {
		sellPrice = 1
	}
	earnings := qty * sellPrice

	p.Credits += earnings
	p.removeCargo(item, qty)
	msg := fmt.Sprintf("Sold %d %s for %s credits.", qty, item, humanize.Comma(int64(earnings)))
	p.AddLog(msg)
	p.crumb("trade_sell")
	return true, msg
}
