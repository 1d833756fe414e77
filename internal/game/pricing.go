/*
Package game
File: pricing.go
Description:
    Dynamic market pricing. Buy prices wobble around the catalog base value;
    the spread is symmetric and clamped so nothing ever sells for less than
    one credit.
*/

package game

import "math"

// DynamicPrices derives a transient price for every item in items.
// The location is accepted as a seed for future locality rules but is not
// structurally consulted yet. An empty input yields an empty map.
func (e *Engine) DynamicPrices(items map[string]Commodity, location string) map[string]int {
	prices := make(map[string]int, len(items))
	for name, item := range items {
		variation := e.uniform(TradePriceVariation)
		price := int(math.Round(float64(item.BaseValue) * (1 + variation)))
		if price < 1 {
			price = 1
		}
		prices[name] = price
	}
	return prices
}
