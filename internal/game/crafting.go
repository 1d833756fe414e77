/*
Package game
File: crafting.go
Description:
    The crafting engine. Preconditions are checked in a fixed order (skill,
    station, materials) without touching state; once they pass, inputs are
    consumed BEFORE the output is clamped to remaining cargo space. A full
    hold can therefore eat materials and yield nothing. Changing that
    ordering changes game balance; do not reorder it.
*/

package game

import (
	"fmt"
	"math"
	"sort"
)

// MaterialShortfall reports one under-stocked crafting input.
type MaterialShortfall struct {
	Name   string `json:"name"`
	Needed int    `json:"needed"`
	Held   int    `json:"held"`
}

// CraftBonuses records the multipliers applied to a craft.
type CraftBonuses struct {
	EfficiencyMult float64 `json:"efficiency_mult"`
}

// CraftReport is the structured result of a crafting attempt.
type CraftReport struct {
	Success          bool                `json:"success"`
	Message          string              `json:"message"`
	ItemCrafted      string              `json:"item_crafted,omitempty"`
	QuantityAdded    int                 `json:"quantity_added"`
	BonusesApplied   *CraftBonuses       `json:"bonuses_applied,omitempty"`
	MissingMaterials []MaterialShortfall `json:"missing_materials,omitempty"`
}

// AttemptCraft tries to craft the named recipe for the player.
func (e *Engine) AttemptCraft(p *Player, recipeName string) CraftReport {
	defer p.crumb("attempt_craft")

	cat := e.Catalog()
	recipe, ok := cat.Recipes[recipeName]
	if !ok {
		return e.craftFail(p, fmt.Sprintf("Recipe '%s' not found.", recipeName))
	}
	if len(recipe.Inputs) == 0 {
		return e.craftFail(p, fmt.Sprintf("Recipe '%s' has invalid inputs.", recipeName))
	}

	// 1. Skill gate.
	skill := p.Skill("crafting")
	if skill < recipe.MinSkill {
		return e.craftFail(p, fmt.Sprintf("Insufficient crafting skill (%d/%d).", skill, recipe.MinSkill))
	}

	// 2. Station gate.
	if recipe.RequiredStation != "" {
		loc, _ := cat.LocationByName(p.Location)
		if !containsString(loc.Services, recipe.RequiredStation) {
			return e.craftFail(p, fmt.Sprintf("Required station '%s' not available here.", recipe.RequiredStation))
		}
	}

	// 3. Material availability, reported without mutating anything.
	missing := e.missingMaterials(p, recipe.Inputs)
	if len(missing) > 0 {
		report := e.craftFail(p, "Insufficient materials.")
		report.MissingMaterials = missing
		return report
	}

	// All checks passed: compute bonuses, then consume.
	bonuses := e.craftBonuses(cat, p, recipe)

	for material, qty := range recipe.Inputs {
		p.removeCargo(material, qty)
	}

	outputQty := recipe.OutputQuantity
	if outputQty < 1 {
		outputQty = 1
	}
	finalQty := int(math.Floor(float64(outputQty) * bonuses.EfficiencyMult))
	if finalQty < 1 {
		finalQty = 1
	}

	// Clamp the yield to remaining space. Inputs stay spent either way.
	added := finalQty
	if free := p.CargoFree(); added > free {
		added = free
	}
	if added < 0 {
		added = 0
	}
	if added > 0 {
		p.addCargo(recipeName, added)
	}

	report := CraftReport{
		ItemCrafted:    recipeName,
		QuantityAdded:  added,
		BonusesApplied: &bonuses,
	}
	if added > 0 {
		report.Success = true
		report.Message = fmt.Sprintf("Successfully crafted %dx %s.", added, recipeName)
		if added < finalQty {
			report.Message += fmt.Sprintf(" (%d lost due to space).", finalQty-added)
		}
		p.crumb("item_crafted")
	} else {
		report.Message = fmt.Sprintf("Materials consumed for '%s', but failed to add to inventory (no cargo space).", recipeName)
	}
	p.AddLog(report.Message)
	return report
}

// missingMaterials lists each under-stocked ingredient as (name, needed,
// held), sorted by name for stable reporting.
func (e *Engine) missingMaterials(p *Player, inputs map[string]int) []MaterialShortfall {
	var missing []MaterialShortfall
	for material, needed := range inputs {
		if needed <= 0 {
			continue
		}
		held := p.CargoHold[material]
		if held < needed {
			missing = append(missing, MaterialShortfall{Name: material, Needed: needed, Held: held})
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Name < missing[j].Name })
	return missing
}

// craftBonuses combines the location's planetary profile with player skill.
// Planet rules of the form "tag:<t>" add (multiplier - 1) when any input
// material carries the tag; each crafting skill point adds 0.5% efficiency.
func (e *Engine) craftBonuses(cat *Catalog, p *Player, recipe Recipe) CraftBonuses {
	mult := 1.0

	tags := map[string]bool{}
	for material := range recipe.Inputs {
		if data, ok := cat.Materials[material]; ok {
			for _, tag := range data.Tags {
				tags[tag] = true
			}
		}
	}

	if profile, ok := cat.Profiles[p.Location]; ok {
		for rule, value := range profile.EfficiencyBonus {
			const prefix = "tag:"
			if len(rule) > len(prefix) && rule[:len(prefix)] == prefix && tags[rule[len(prefix):]] {
				bonus := value - 1.0
				if bonus > 0 {
					mult += bonus
				}
			}
		}
	}

	mult += float64(p.Skill("crafting")) * 0.005
	if mult < 0 {
		mult = 0
	}
	return CraftBonuses{EfficiencyMult: mult}
}

func (e *Engine) craftFail(p *Player, reason string) CraftReport {
	p.AddLog(reason)
	return CraftReport{Message: reason}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
