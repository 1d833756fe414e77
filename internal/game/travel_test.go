package game

import (
	"strings"
	"testing"
)

func TestTravelDeductsCostAndMoves(t *testing.T) {
	e, p := testEngine(&scriptedDice{})

	ok, msg := e.Travel(p, "Earth")
	if !ok {
		t.Fatalf("travel failed: %s", msg)
	}
	if msg != "Arrived at Earth." {
		t.Fatalf("unexpected message: %s", msg)
	}
	if p.Location != "Earth" || p.Credits != 950 {
		t.Fatalf("expected Earth with 950 credits, got %s with %d", p.Location, p.Credits)
	}
	if !p.travelCompleted {
		t.Fatalf("successful travel must arm the encounter flag")
	}
}

func TestTravelRejectsUnconnectedRoute(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.Location = "Earth"

	ok, msg := e.Travel(p, "Aetheria")
	if ok {
		t.Fatalf("expected travel to fail")
	}
	if msg != "Invalid destination or no direct route from Earth to Aetheria." {
		t.Fatalf("unexpected message: %s", msg)
	}
	if p.Location != "Earth" || p.Credits != 1000 {
		t.Fatalf("failed travel must not mutate state")
	}
}

func TestTravelInsufficientCredits(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.Credits = 10

	ok, msg := e.Travel(p, "Earth")
	if ok || msg != "Travel failed: Insufficient credits." {
		t.Fatalf("expected credit rejection, got ok=%v msg=%s", ok, msg)
	}
	if p.Location != "Mars Colony" || p.Credits != 10 {
		t.Fatalf("failed travel must not mutate state")
	}
}

func TestTravelCompletesDeliveryMission(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.CargoHold = map[string]int{"Iron": 5}
	p.ActiveMission = &Mission{
		ID:          "m1",
		Type:        MissionDelivery,
		Destination: "Earth",
		Reward:      100,
		Item:        "Iron",
		Quantity:    3,
		Description: "Deliver 3 units of Iron to Earth",
	}

	if ok, msg := e.Travel(p, "Earth"); !ok {
		t.Fatalf("travel failed: %s", msg)
	}
	if p.Credits != 1050 {
		t.Fatalf("expected 1000 - 50 travel + 100 reward = 1050, got %d", p.Credits)
	}
	if p.CargoHold["Iron"] != 2 {
		t.Fatalf("expected 2 Iron left after delivery, got %d", p.CargoHold["Iron"])
	}
	if p.ActiveMission != nil {
		t.Fatalf("completed mission must be cleared")
	}
}

func TestTravelFailsDeliveryWithoutGoods(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.ActiveMission = &Mission{
		ID:          "m1",
		Type:        MissionDelivery,
		Destination: "Earth",
		Reward:      100,
		Item:        "Iron",
		Quantity:    3,
	}

	if ok, msg := e.Travel(p, "Earth"); !ok {
		t.Fatalf("travel failed: %s", msg)
	}
	if p.Credits != 950 {
		t.Fatalf("failed delivery must not pay out, got %d credits", p.Credits)
	}
	if p.ActiveMission != nil {
		t.Fatalf("failed mission must be cleared")
	}

	found := false
	for _, line := range p.Log {
		if strings.Contains(line, "Mission failed: Insufficient Iron") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected mission failure log, got %v", p.Log)
	}
}

func TestExplorationMissionCompletesOnArrival(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.ActiveMission = &Mission{
		ID:          "m2",
		Type:        MissionExploration,
		Destination: "Aetheria",
		Reward:      240,
		Description: "Explore the Aetheria system.",
	}

	if ok, msg := e.Travel(p, "Aetheria"); !ok {
		t.Fatalf("travel failed: %s", msg)
	}
	if p.Credits != 1000-75+240 {
		t.Fatalf("expected reward paid on arrival, got %d", p.Credits)
	}
	if p.ActiveMission != nil {
		t.Fatalf("completed mission must be cleared")
	}
}
