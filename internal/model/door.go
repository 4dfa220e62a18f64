package model

// DoorSpec is the validated, request-scoped description of one door.
// It lives for the duration of a single estimate request and is never
// written to durable storage by the pricing pipeline; journaling a priced
// estimate is a separate, explicitly enabled concern.
type DoorSpec struct {
	Width    float64
	Height   float64
	Material string
	Hardware []string
}

// HardwareItem is one costed hardware selection. Duplicate selections in a
// request each produce their own item.
type HardwareItem struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// PriceBreakdown is the itemized output of the pricing engine.
// Total always equals material cost plus hardware cost, rounded to cents.
type PriceBreakdown struct {
	AreaSqFt           float64        `json:"area_sqft"`
	MaterialMultiplier float64        `json:"material_multiplier"`
	MaterialCost       float64        `json:"material_cost"`
	HardwareItems      []HardwareItem `json:"hardware_items"`
	HardwareCost       float64        `json:"hardware_cost"`
	Total              float64        `json:"total"`
}
