package pricing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/specflow/quote-server/internal/model"
)

// minDimension is the smallest accepted width or height, in inches.
const minDimension = 0.1

// Validator normalizes a raw estimate payload into a DoorSpec. All field
// violations are collected and reported together, never one at a time.
//
// In lenient mode (the default) any material or hardware name is accepted;
// unknown names simply price at the base multiplier or zero cost. Strict
// mode turns unknown names into field errors so typos surface instead of
// silently costing nothing.
type Validator struct {
	tables Tables
	strict bool
}

// NewValidator creates a Validator over the given tables.
func NewValidator(tables Tables, strict bool) *Validator {
	return &Validator{tables: tables, strict: strict}
}

// ParseSpec validates raw key/value input. On success fieldErrs is nil; on
// failure it maps each violated field to a message.
func (v *Validator) ParseSpec(raw map[string]any) (model.DoorSpec, model.FieldErrors) {
	fieldErrs := model.FieldErrors{}

	spec := model.DoorSpec{
		Width:    v.parseDimension(raw, "width", fieldErrs),
		Height:   v.parseDimension(raw, "height", fieldErrs),
		Hardware: []string{},
	}

	if m, ok := raw["material"]; ok && m != nil {
		s, ok := m.(string)
		if !ok {
			fieldErrs["material"] = "must be a string"
		} else {
			spec.Material = s
			if v.strict && s != "" && !v.tables.KnownMaterial(s) {
				fieldErrs["material"] = fmt.Sprintf("unknown material %q", s)
			}
		}
	}

	if h, ok := raw["hardware"]; ok && h != nil {
		list, ok := h.([]any)
		if !ok {
			fieldErrs["hardware"] = "must be a list of strings"
		} else {
			unknown := []string{}
			for _, entry := range list {
				s, ok := entry.(string)
				if !ok {
					fieldErrs["hardware"] = "must be a list of strings"
					break
				}
				spec.Hardware = append(spec.Hardware, s)
				if v.strict && !v.tables.KnownHardware(s) {
					unknown = append(unknown, s)
				}
			}
			if _, bad := fieldErrs["hardware"]; !bad && len(unknown) > 0 {
				fieldErrs["hardware"] = "unknown hardware: " + strings.Join(unknown, ", ")
			}
		}
	}

	if len(fieldErrs) > 0 {
		return model.DoorSpec{}, fieldErrs
	}
	return spec, nil
}

func (v *Validator) parseDimension(raw map[string]any, field string, fieldErrs model.FieldErrors) float64 {
	value, ok := raw[field]
	if !ok || value == nil {
		fieldErrs[field] = "is required"
		return 0
	}

	f, err := toFloat(value)
	if err != nil {
		fieldErrs[field] = "must be a number"
		return 0
	}
	if f < minDimension {
		fieldErrs[field] = fmt.Sprintf("must be at least %v", minDimension)
		return 0
	}
	return f
}

func toFloat(value any) (float64, error) {
	switch n := value.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %T", value)
	}
}
