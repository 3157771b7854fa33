package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		want    PizzaType
		wantErr bool
	}{
		{"margarita", 1, TypeMargarita, false},
		{"pepperoni", 2, TypePepperoni, false},
		{"bbq", 3, TypeBBQ, false},
		{"zero", 0, 0, true},
		{"out of range", 99, 0, true},
		{"negative", -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				var enumErr *InvalidEnumError
				require.ErrorAs(t, err, &enumErr)
				assert.Equal(t, "type", enumErr.Enum)
				assert.Equal(t, tt.value, enumErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		want    PizzaSize
		wantErr bool
	}{
		{"small", 1, SizeSmall, false},
		{"big", 2, SizeBig, false},
		{"unknown", 3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.value)
			if tt.wantErr {
				var enumErr *InvalidEnumError
				require.ErrorAs(t, err, &enumErr)
				assert.Equal(t, "size", enumErr.Enum)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "Margarita", TypeMargarita.String())
	assert.Equal(t, "Pepperoni", TypePepperoni.String())
	assert.Equal(t, "BBQ", TypeBBQ.String())
	assert.Equal(t, "30cm", SizeSmall.String())
	assert.Equal(t, "50cm", SizeBig.String())
}

func TestVariantString(t *testing.T) {
	v := Variant{Type: TypePepperoni, Size: SizeBig}
	assert.Equal(t, "Pepperoni/50cm", v.String())
}

func TestVariantAsMapKey(t *testing.T) {
	m := map[Variant]int{}
	m[Variant{TypeMargarita, SizeSmall}] = 1
	m[Variant{TypeMargarita, SizeBig}] = 2
	m[Variant{TypeMargarita, SizeSmall}] = 3

	assert.Len(t, m, 2)
	assert.Equal(t, 3, m[Variant{TypeMargarita, SizeSmall}])
}
