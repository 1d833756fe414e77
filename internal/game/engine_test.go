package game

import (
	"sync"
	"testing"
)

func TestDefaultDiceSafeForConcurrentUse(t *testing.T) {
	// The default engine's random source is shared by the heartbeat and every
	// request handler; concurrent rolls must not trip the race detector.
	e := NewEngine(testCatalog())
	items := map[string]Commodity{"Fuel Cell": {Name: "Fuel Cell", BaseValue: 25}}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				price := e.DynamicPrices(items, "Mars Colony")["Fuel Cell"]
				if price < 20 || price > 30 {
					t.Errorf("price outside the 20%% band: %d", price)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestReloadCatalogDuringOperations(t *testing.T) {
	// A hot reload swaps the catalog pointer while requests are in flight;
	// every operation must see exactly one of the two snapshots.
	catA := testCatalog()
	catB := testCatalog()
	e := NewEngine(catA)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			e.ReloadCatalog(catB)
			e.ReloadCatalog(catA)
		}
	}()

	for i := 0; i < 1000; i++ {
		p := NewPlayer(e.Catalog(), "Captain Rex")
		if ok, msg := e.Travel(p, "Earth"); !ok {
			t.Fatalf("travel failed mid-reload: %s", msg)
		}
	}
	<-done

	if got := e.Catalog(); got != catA && got != catB {
		t.Fatalf("catalog must be one of the stored snapshots")
	}
}

func TestReloadCatalogVisibleToNewOperations(t *testing.T) {
	e, p := testEngine(&scriptedDice{})

	fresh := testCatalog()
	loc := fresh.Locations["Earth"]
	loc.TravelCost = 10
	fresh.Locations["Earth"] = loc
	e.ReloadCatalog(fresh)

	if ok, msg := e.Travel(p, "Earth"); !ok {
		t.Fatalf("travel failed: %s", msg)
	}
	if p.Credits != 990 {
		t.Fatalf("expected the reloaded travel cost of 10, got credits %d", p.Credits)
	}
}
