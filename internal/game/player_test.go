package game

import (
	"fmt"
	"testing"
)

func TestNewPlayerFromTemplate(t *testing.T) {
	cat := testCatalog()
	p := NewPlayer(cat, "Captain Rex")

	if p.Name != "Captain Rex" || p.Credits != 1000 {
		t.Fatalf("unexpected identity: %s / %d", p.Name, p.Credits)
	}
	if p.ShipType != "Shuttle" || p.CargoCapacity != 50 {
		t.Fatalf("unexpected ship: %s / %d", p.ShipType, p.CargoCapacity)
	}
	if p.Location != "Mars Colony" {
		t.Fatalf("unexpected start location: %s", p.Location)
	}
	if p.PetName != "Kibble" || p.PetTrait != "Scrap Rat" {
		t.Fatalf("unexpected companion: %s / %s", p.PetName, p.PetTrait)
	}
	if len(p.Log) != 1 || p.Log[0] != "Character creation complete." {
		t.Fatalf("unexpected initial log: %v", p.Log)
	}
}

func TestNewPlayerUnknownNameFallsBack(t *testing.T) {
	cat := testCatalog()
	p := NewPlayer(cat, "Nobody")
	if p.Name != "Captain Rex" {
		t.Fatalf("unknown character must fall back to the first template, got %s", p.Name)
	}
}

func TestAddLogEvictsOldest(t *testing.T) {
	p := &Player{}
	for i := 0; i < 25; i++ {
		p.AddLog(fmt.Sprintf("entry %d", i))
	}
	if len(p.Log) != maxLogSize {
		t.Fatalf("expected log capped at %d, got %d", maxLogSize, len(p.Log))
	}
	if p.Log[0] != "entry 5" || p.Log[len(p.Log)-1] != "entry 24" {
		t.Fatalf("expected oldest entries evicted, got first=%s last=%s", p.Log[0], p.Log[len(p.Log)-1])
	}
}

func TestBreadcrumbsStayBounded(t *testing.T) {
	p := &Player{}
	for i := 0; i < 200; i++ {
		p.crumb("tick")
	}
	if len(p.Breadcrumbs) != maxBreadcrumbSize {
		t.Fatalf("expected breadcrumbs capped at %d, got %d", maxBreadcrumbSize, len(p.Breadcrumbs))
	}
}

func TestCargoHelpers(t *testing.T) {
	p := &Player{CargoCapacity: 10}

	p.addCargo("Iron", 4)
	p.addCargo("Iron", 2)
	if p.CargoUsed() != 6 || p.CargoFree() != 4 {
		t.Fatalf("expected 6 used / 4 free, got %d / %d", p.CargoUsed(), p.CargoFree())
	}

	p.removeCargo("Iron", 5)
	if p.CargoHold["Iron"] != 1 {
		t.Fatalf("expected 1 Iron left, got %d", p.CargoHold["Iron"])
	}

	// Removals clamp and drop the zeroed entry.
	p.removeCargo("Iron", 99)
	if _, ok := p.CargoHold["Iron"]; ok {
		t.Fatalf("zeroed entry must be deleted")
	}
}
