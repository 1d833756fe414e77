package game

import "testing"

func TestDynamicPricesEmptyInput(t *testing.T) {
	e, _ := testEngine(&scriptedDice{})
	prices := e.DynamicPrices(map[string]Commodity{}, "Mars Colony")
	if len(prices) != 0 {
		t.Fatalf("expected empty result, got %v", prices)
	}
}

func TestDynamicPricesSpread(t *testing.T) {
	item := map[string]Commodity{"Fuel Cell": {Name: "Fuel Cell", BaseValue: 25}}

	cases := []struct {
		roll float64
		want int
	}{
		{0.0, 20}, // -20%
		{0.5, 25}, // no variation
		{1.0, 30}, // +20%
	}
	for _, tc := range cases {
		e, _ := testEngine(&scriptedDice{floats: []float64{tc.roll}})
		got := e.DynamicPrices(item, "Mars Colony")["Fuel Cell"]
		if got != tc.want {
			t.Fatalf("roll %.1f: expected price %d, got %d", tc.roll, tc.want, got)
		}
	}
}

func TestDynamicPricesFloorAtOneCredit(t *testing.T) {
	e, _ := testEngine(&scriptedDice{floats: []float64{0.0}})
	item := map[string]Commodity{"Scrap": {Name: "Scrap", BaseValue: 1}}
	if got := e.DynamicPrices(item, "Mars Colony")["Scrap"]; got != 1 {
		t.Fatalf("expected floor price 1, got %d", got)
	}
}
