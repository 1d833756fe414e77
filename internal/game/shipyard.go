/*
Package game
File: shipyard.go
Description:
    Ship purchases. The old hull is traded in with no residual value; the
    purchase is refused if the current cargo would not fit the new hold.
*/

package game

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// BuyShip swaps the player's hull for the named ship at a shipyard location.
func (e *Engine) BuyShip(p *Player, shipName string) (bool, string) {
	cat := e.Catalog()

	loc, ok := cat.LocationByName(p.Location)
	if !ok || !loc.Shipyard {
		msg := "No shipyard available at this location."
		p.AddLog(msg)
		return false, msg
	}

	ship, ok := cat.Ships[shipName]
	if !ok || shipName == p.ShipType {
		msg := "Invalid ship choice."
		p.AddLog(msg)
		return false, msg
	}

	if p.Credits < ship.Cost {
		msg := fmt.Sprintf("Cannot buy %s: Insufficient credits.", shipName)
		p.AddLog(msg)
		return false, msg
	}

	if used := p.CargoUsed(); used > ship.CargoCapacity {
		msg := fmt.Sprintf("Cannot buy %s: Current cargo (%d units) exceeds its capacity (%d units).",
			shipName, used, ship.CargoCapacity)
		p.AddLog(msg)
		return false, msg
	}

	oldShip := p.ShipType
	p.Credits -= ship.Cost
	p.ShipType = shipName
	p.CargoCapacity = ship.CargoCapacity
	msg := fmt.Sprintf("Purchased %s for %s credits. Traded in %s.",
		shipName, humanize.Comma(int64(ship.Cost)), oldShip)
	p.AddLog(msg)
	p.crumb("ship_purchased")
	return true, msg
}
