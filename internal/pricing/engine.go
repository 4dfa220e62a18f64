package pricing

import (
	"math"

	"github.com/specflow/quote-server/internal/model"
)

// Engine computes an itemized price for a validated door spec. It is a pure
// function of the spec and the injected tables: no I/O, no side effects, and
// safe for arbitrary concurrent use.
type Engine struct {
	tables Tables
}

// NewEngine creates an Engine over the given pricing tables.
func NewEngine(tables Tables) *Engine {
	return &Engine{tables: tables}
}

// Estimate prices the spec. Pricing is monotonically non-decreasing in
// width, height, and the count of positive-cost hardware items.
//
// Duplicate hardware entries are each costed independently ("two locksets"
// cost twice), and dimensions carry no upper bound; both behaviors are
// contractual.
func (e *Engine) Estimate(spec model.DoorSpec) model.PriceBreakdown {
	areaSqFt := spec.Width * spec.Height / 144

	multiplier := e.tables.MaterialMultiplier(spec.Material)
	materialCost := areaSqFt * e.tables.BaseRate * multiplier

	items := make([]model.HardwareItem, 0, len(spec.Hardware))
	hardwareCost := 0.0
	for _, name := range spec.Hardware {
		cost := e.tables.HardwareCost(name)
		items = append(items, model.HardwareItem{Name: name, Cost: cost})
		hardwareCost += cost
	}

	return model.PriceBreakdown{
		AreaSqFt:           areaSqFt,
		MaterialMultiplier: multiplier,
		MaterialCost:       materialCost,
		HardwareItems:      items,
		HardwareCost:       hardwareCost,
		Total:              round2(materialCost + hardwareCost),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
