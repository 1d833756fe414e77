/*
Package game
File: engine.go
Description:
    The Engine bundles the immutable Catalog with a randomness source and
    hosts every rule operation (trade, travel, missions, crafting,
    construction, encounters). One Engine serves any number of players; it
    holds no per-player state.

    The catalog hangs off an atomic pointer so a live reload swaps the whole
    universe at once; each operation snapshots it on entry and never mixes
    two catalogs within one call.
*/

package game

import (
	"math/rand"
	"sync"
	"sync/atomic"
)

// Dice abstracts the random source so tests can script exact rolls.
// Implementations must be safe for concurrent use; *math/rand.Rand alone is
// not, which is why NewEngine wraps one in a lock.
type Dice interface {
	Float64() float64
	Intn(n int) int
}

// lockedDice serializes a *rand.Rand shared by concurrent callers.
type lockedDice struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (d *lockedDice) Float64() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rnd.Float64()
}

func (d *lockedDice) Intn(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rnd.Intn(n)
}

// Engine evaluates game rules against the catalog.
type Engine struct {
	cat  atomic.Pointer[Catalog]
	Dice Dice
}

// NewEngine builds an Engine over cat using a time-seeded random source.
func NewEngine(cat *Catalog) *Engine {
	return NewEngineWithDice(cat, &lockedDice{rnd: rand.New(rand.NewSource(rand.Int63()))})
}

// NewEngineWithDice builds an Engine with an explicit random source.
func NewEngineWithDice(cat *Catalog, dice Dice) *Engine {
	e := &Engine{Dice: dice}
	e.cat.Store(cat)
	return e
}

// Catalog returns the current catalog snapshot.
func (e *Engine) Catalog() *Catalog {
	return e.cat.Load()
}

// ReloadCatalog swaps in a freshly loaded catalog. In-flight operations keep
// the snapshot they started with.
func (e *Engine) ReloadCatalog(cat *Catalog) {
	e.cat.Store(cat)
}

// uniform draws a value in [-spread, spread].
func (e *Engine) uniform(spread float64) float64 {
	return -spread + e.Dice.Float64()*2*spread
}

// between draws a value in [lo, hi].
func (e *Engine) between(lo, hi float64) float64 {
	return lo + e.Dice.Float64()*(hi-lo)
}

// rollRange draws an integer in [lo, hi] inclusive.
func (e *Engine) rollRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.Dice.Intn(hi-lo+1)
}

// pick selects a uniformly random element of names.
func (e *Engine) pick(names []string) string {
	return names[e.Dice.Intn(len(names))]
}
