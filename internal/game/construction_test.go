package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstablishHubChargesFoundingCost(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.Credits = 6000

	ok, msg := e.EstablishHub(p)
	require.True(t, ok, msg)
	assert.Equal(t, 1000, p.Credits)
	require.Contains(t, p.Hubs, "Mars Colony")

	ok, msg = e.EstablishHub(p)
	assert.False(t, ok)
	assert.Equal(t, "A hub is already established at Mars Colony.", msg)
}

func TestEstablishHubInsufficientCredits(t *testing.T) {
	e, p := testEngine(&scriptedDice{})

	ok, msg := e.EstablishHub(p)
	assert.False(t, ok)
	assert.Equal(t, "Cannot establish hub: need 5000 credits, have 1000.", msg)
	assert.Empty(t, p.Hubs)
}

func TestDepositResources(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.CargoHold = map[string]int{"Silicates": 12}

	ok, msg := e.DepositResources(p, "Silicates", 10)
	assert.False(t, ok)
	assert.Equal(t, "No hub established at Mars Colony.", msg)

	p.Credits = 6000
	e.EstablishHub(p)

	ok, msg = e.DepositResources(p, "Silicates", 10)
	require.True(t, ok, msg)
	assert.Equal(t, 2, p.CargoHold["Silicates"])
	assert.Equal(t, 10, p.Hubs["Mars Colony"].PlanetaryAssets["Silicates"])

	ok, _ = e.DepositResources(p, "Silicates", 5)
	assert.False(t, ok, "deposit past holdings must fail")
}

func TestInitiateConstructionInsufficientResources(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.Credits = 6000
	e.EstablishHub(p)
	creditsBefore := p.Credits

	ok, msg := e.InitiateConstruction(p, "solar_array")
	require.False(t, ok)
	assert.Equal(t, "Insufficient resources: Silicates (need 10, have 0)", msg)
	assert.Equal(t, creditsBefore, p.Credits, "failed build must not charge")
	assert.Empty(t, p.Hubs["Mars Colony"].Ongoing)
}

func TestInitiateConstructionPowerHeadroom(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.Credits = 8000
	p.CargoHold = map[string]int{"Iron": 20}
	e.EstablishHub(p)
	e.DepositResources(p, "Iron", 20)

	hub := p.Hubs["Mars Colony"]
	creditsBefore := p.Credits

	// No generation yet, so a 5-power consumer cannot be operated.
	ok, msg := e.InitiateConstruction(p, "habitat_dome")
	require.False(t, ok)
	assert.Equal(t, "Insufficient power capacity to operate this structure (Needs 5, Available headroom: 0)", msg)
	assert.Equal(t, creditsBefore, p.Credits)
	assert.Equal(t, 20, hub.PlanetaryAssets["Iron"], "failed build must not draw resources")
	assert.Empty(t, hub.Ongoing)
}

func TestConstructionLifecycle(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.Credits = 8000
	p.CargoHold = map[string]int{"Silicates": 10, "Iron": 20}
	e.EstablishHub(p)
	e.DepositResources(p, "Silicates", 10)
	e.DepositResources(p, "Iron", 20)

	hub := p.Hubs["Mars Colony"]

	ok, msg := e.InitiateConstruction(p, "solar_array")
	require.True(t, ok, msg)
	assert.Equal(t, 2500, p.Credits)
	assert.Equal(t, 0, hub.PlanetaryAssets["Silicates"])
	require.Len(t, hub.Ongoing, 1)
	assert.Equal(t, 1, hub.Ongoing[0].CompletionTime)

	msg = e.EndTurn(p)
	assert.Equal(t, "Turn 1 begins.", msg)
	assert.Equal(t, 1, p.GameTime)
	assert.Empty(t, hub.Ongoing)
	assert.Equal(t, 1, hub.Active["solar_array"])
	assert.Equal(t, 10, hub.PowerGeneration)
	assert.Equal(t, 10, hub.PowerBalance)

	// With generation online the dome fits the headroom.
	ok, msg = e.InitiateConstruction(p, "habitat_dome")
	require.True(t, ok, msg)
	assert.Equal(t, 1000, p.Credits)

	e.EndTurn(p)
	assert.Len(t, hub.Ongoing, 1, "two-turn build must still be pending")

	e.EndTurn(p)
	assert.Empty(t, hub.Ongoing)
	assert.Equal(t, 1, hub.Active["habitat_dome"])
	assert.Equal(t, 5, hub.PowerConsumption)
	assert.Equal(t, 5, hub.PowerBalance)
	assert.Equal(t, 50, hub.PopulationCapacity)
}

func TestAdvanceConstructionIsIdempotent(t *testing.T) {
	e, p := testEngine(&scriptedDice{})
	p.Credits = 8000
	p.CargoHold = map[string]int{"Silicates": 10}
	e.EstablishHub(p)
	e.DepositResources(p, "Silicates", 10)
	e.InitiateConstruction(p, "solar_array")
	e.EndTurn(p)

	hub := p.Hubs["Mars Colony"]
	require.Equal(t, 10, hub.PowerGeneration)

	// Re-running the settle with nothing pending only recomputes balances.
	e.AdvanceConstruction(p)
	e.AdvanceConstruction(p)
	assert.Equal(t, 10, hub.PowerGeneration)
	assert.Equal(t, 1, hub.Active["solar_array"])
	assert.Equal(t, 10, hub.PowerBalance)
}
