/*
Package game
File: travel.go
Description:
    The travel engine: validates a jump against the current location's
    connection list, charges the destination's travel cost, and runs the
    post-arrival mission completion check. A successful jump arms the
    one-shot flag the encounter engine consumes.
*/

package game

import "fmt"

// Travel attempts to move the player to destination.
// State is unchanged on any failure.
func (e *Engine) Travel(p *Player, destination string) (bool, string) {
	cat := e.Catalog()
	current, _ := cat.LocationByName(p.Location)

	connected := false
	for _, conn := range current.Connections {
		if conn == destination {
			connected = true
			break
		}
	}
	if !connected {
		msg := fmt.Sprintf("Invalid destination or no direct route from %s to %s.", p.Location, destination)
		p.AddLog(msg)
		return false, msg
	}

	dest, _ := cat.LocationByName(destination)
	cost := dest.TravelCost
	if cost <= 0 {
		cost = DefaultTravelCost
	}

	if p.Credits < cost {
		msg := "Travel failed: Insufficient credits."
		p.AddLog(msg)
		return false, msg
	}

	p.Credits -= cost
	p.Location = destination
	p.AddLog(fmt.Sprintf("Traveled to %s. Cost: %d credits.", destination, cost))

	e.checkMissionCompletion(p)

	p.travelCompleted = true
	p.crumb("travel_completed")
	return true, fmt.Sprintf("Arrived at %s.", destination)
}
