package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specflow/quote-server/internal/model"
)

func TestValidator_ParseSpec(t *testing.T) {
	tests := []struct {
		name       string
		raw        map[string]any
		strict     bool
		wantSpec   model.DoorSpec
		wantFields []string
	}{
		{
			name: "full valid payload",
			raw: map[string]any{
				"width": 36.0, "height": 80.0,
				"material": "steel",
				"hardware": []any{"hinges", "handle"},
			},
			wantSpec: model.DoorSpec{Width: 36, Height: 80, Material: "steel", Hardware: []string{"hinges", "handle"}},
		},
		{
			name:     "material and hardware default",
			raw:      map[string]any{"width": 36.0, "height": 80.0},
			wantSpec: model.DoorSpec{Width: 36, Height: 80, Hardware: []string{}},
		},
		{
			name:     "numeric strings accepted",
			raw:      map[string]any{"width": "36", "height": " 80.5 "},
			wantSpec: model.DoorSpec{Width: 36, Height: 80.5, Hardware: []string{}},
		},
		{
			name:       "both dimensions missing are both reported",
			raw:        map[string]any{"material": "wood"},
			wantFields: []string{"width", "height"},
		},
		{
			name:       "non-numeric width",
			raw:        map[string]any{"width": "wide", "height": 80.0},
			wantFields: []string{"width"},
		},
		{
			name:       "zero height below minimum",
			raw:        map[string]any{"width": 36.0, "height": 0.0},
			wantFields: []string{"height"},
		},
		{
			name:       "negative width below minimum",
			raw:        map[string]any{"width": -1.0, "height": 80.0},
			wantFields: []string{"width"},
		},
		{
			name:       "hardware not a list",
			raw:        map[string]any{"width": 36.0, "height": 80.0, "hardware": "hinges"},
			wantFields: []string{"hardware"},
		},
		{
			name:       "hardware with non-string entry",
			raw:        map[string]any{"width": 36.0, "height": 80.0, "hardware": []any{"hinges", 7.0}},
			wantFields: []string{"hardware"},
		},
		{
			name:     "unknown material accepted when lenient",
			raw:      map[string]any{"width": 36.0, "height": 80.0, "material": "unicorn"},
			wantSpec: model.DoorSpec{Width: 36, Height: 80, Material: "unicorn", Hardware: []string{}},
		},
		{
			name:     "unknown hardware accepted when lenient",
			raw:      map[string]any{"width": 36.0, "height": 80.0, "hardware": []any{"unobtainium"}},
			wantSpec: model.DoorSpec{Width: 36, Height: 80, Hardware: []string{"unobtainium"}},
		},
		{
			name:       "unknown material rejected when strict",
			raw:        map[string]any{"width": 36.0, "height": 80.0, "material": "unicorn"},
			strict:     true,
			wantFields: []string{"material"},
		},
		{
			name:       "unknown hardware rejected when strict",
			raw:        map[string]any{"width": 36.0, "height": 80.0, "hardware": []any{"hinges", "unobtainium"}},
			strict:     true,
			wantFields: []string{"hardware"},
		},
		{
			name:     "known names pass strict mode",
			raw:      map[string]any{"width": 36.0, "height": 80.0, "material": "Wood", "hardware": []any{"Hinges"}},
			strict:   true,
			wantSpec: model.DoorSpec{Width: 36, Height: 80, Material: "Wood", Hardware: []string{"Hinges"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(DefaultTables(), tt.strict)

			spec, fieldErrs := v.ParseSpec(tt.raw)

			if len(tt.wantFields) > 0 {
				require.NotNil(t, fieldErrs)
				assert.Len(t, fieldErrs, len(tt.wantFields))
				for _, field := range tt.wantFields {
					assert.Contains(t, fieldErrs, field)
				}
				return
			}

			require.Nil(t, fieldErrs)
			assert.Equal(t, tt.wantSpec, spec)
		})
	}
}

func TestValidator_ParseSpec_MinimumDimensionAccepted(t *testing.T) {
	v := NewValidator(DefaultTables(), false)

	spec, fieldErrs := v.ParseSpec(map[string]any{"width": 0.1, "height": 0.1})

	require.Nil(t, fieldErrs)
	assert.Equal(t, 0.1, spec.Width)
	assert.Equal(t, 0.1, spec.Height)
}
