package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Triol19/pizza-orders/internal/catalog"
)

func TestNormalizeRequest_EmptyList(t *testing.T) {
	_, err := NormalizeRequest(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "pizzas", verr.Fields[0].Field)
}

func TestNormalizeRequest_InvalidEnums(t *testing.T) {
	_, err := NormalizeRequest([]PizzaRequest{
		{Number: 1, Type: 99, Size: 1},
		{Number: 1, Type: 2, Size: 7},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = f.Field
	}
	assert.Contains(t, fields, "pizzas[0].type")
	assert.Contains(t, fields, "pizzas[1].size")
}

func TestNormalizeRequest_NonPositiveAmount(t *testing.T) {
	for _, number := range []int{0, -3} {
		_, err := NormalizeRequest([]PizzaRequest{{Number: number, Type: 1, Size: 1}})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "pizzas[0].number", verr.Fields[0].Field)
	}
}

func TestNormalizeRequest_SumsDuplicatePairs(t *testing.T) {
	lines, err := NormalizeRequest([]PizzaRequest{
		{Number: 2, Type: 2, Size: 2},
		{Number: 1, Type: 1, Size: 1},
		{Number: 3, Type: 2, Size: 2},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, catalog.Variant{Type: catalog.TypePepperoni, Size: catalog.SizeBig}, lines[0].Variant)
	assert.Equal(t, 5, lines[0].Amount)
	assert.Equal(t, catalog.Variant{Type: catalog.TypeMargarita, Size: catalog.SizeSmall}, lines[1].Variant)
	assert.Equal(t, 1, lines[1].Amount)
}

func TestVariants_PreservesRequestOrder(t *testing.T) {
	lines, err := NormalizeRequest([]PizzaRequest{
		{Number: 1, Type: 3, Size: 2},
		{Number: 1, Type: 1, Size: 1},
	})
	require.NoError(t, err)

	vs := Variants(lines)
	require.Len(t, vs, 2)
	assert.Equal(t, catalog.TypeBBQ, vs[0].Type)
	assert.Equal(t, catalog.TypeMargarita, vs[1].Type)
}
