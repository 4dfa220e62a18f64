// Package recommend matches distributor product catalogs against a door
// specification. Catalogs live in code; adding a distributor means
// implementing Distributor and registering it.
package recommend

import "strings"

// Spec carries the door attributes recommendations are matched against.
// It is a superset of the pricing spec: door type, fire rating and glazing
// matter for hardware selection even though they do not affect the price.
type Spec struct {
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Material  string   `json:"material"`
	DoorType  string   `json:"door_type"`
	Hardware  []string `json:"hardware"`
	FireRated bool     `json:"fire_rated"`
	HasGlass  bool     `json:"has_glass"`
}

// WantsHardware reports whether the spec requests the named hardware,
// case-insensitively.
func (s Spec) WantsHardware(name string) bool {
	for _, h := range s.Hardware {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}

// Commercial reports whether the door type calls for commercial-grade
// hardware.
func (s Spec) Commercial() bool {
	return s.DoorType == "commercial" || s.DoorType == "exterior-entry"
}

// Product is one recommended catalog item.
type Product struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	ModelNumbers []string `json:"model_numbers"`
	Features     []string `json:"features"`
	PriceRange   string   `json:"price_range"`
	Distributor  string   `json:"distributor"`
}

// Info identifies a distributor.
type Info struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website"`
}

// Distributor produces product recommendations for a spec.
type Distributor interface {
	Info() Info
	Recommend(spec Spec) []Product
}

// Result is one distributor's contribution to an aggregated response.
type Result struct {
	Info
	Recommendations []Product `json:"recommendations"`
	Count           int       `json:"recommendation_count"`
}

// Registry aggregates recommendations across distributors.
type Registry struct {
	distributors []Distributor
}

// NewRegistry creates a Registry over the given distributors.
func NewRegistry(distributors ...Distributor) *Registry {
	return &Registry{distributors: distributors}
}

// DefaultRegistry returns the built-in distributor set.
func DefaultRegistry() *Registry {
	return NewRegistry(&Dormakaba{}, &SecLock{})
}

// Available lists the registered distributors.
func (r *Registry) Available() []Info {
	infos := make([]Info, 0, len(r.distributors))
	for _, d := range r.distributors {
		infos = append(infos, d.Info())
	}
	return infos
}

// All collects recommendations from every distributor and the total count.
func (r *Registry) All(spec Spec) ([]Result, int) {
	results := make([]Result, 0, len(r.distributors))
	total := 0
	for _, d := range r.distributors {
		recs := d.Recommend(spec)
		results = append(results, Result{
			Info:            d.Info(),
			Recommendations: recs,
			Count:           len(recs),
		})
		total += len(recs)
	}
	return results, total
}
