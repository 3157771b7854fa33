package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Triol19/pizza-orders/internal/catalog"
)

func pizza(id int64, typ catalog.PizzaType, size catalog.PizzaSize, price string) catalog.Pizza {
	return catalog.Pizza{ID: id, Type: typ, Size: size, Price: decimal.RequireFromString(price)}
}

var (
	margaritaSmall = pizza(1, catalog.TypeMargarita, catalog.SizeSmall, "10.00")
	pepperoniBig   = pizza(2, catalog.TypePepperoni, catalog.SizeBig, "20.00")
	bbqBig         = pizza(3, catalog.TypeBBQ, catalog.SizeBig, "25.50")
)

func resolvedFor(pizzas ...catalog.Pizza) map[catalog.Variant]catalog.Pizza {
	m := make(map[catalog.Variant]catalog.Pizza, len(pizzas))
	for _, p := range pizzas {
		m[p.Variant()] = p
	}
	return m
}

func TestCreateLines_Total(t *testing.T) {
	requested := []RequestedLine{
		{Variant: pepperoniBig.Variant(), Amount: 5},
		{Variant: margaritaSmall.Variant(), Amount: 2},
	}
	lines, total := CreateLines(requested, resolvedFor(pepperoniBig, margaritaSmall))

	require.Len(t, lines, 2)
	assert.Equal(t, int64(2), lines[0].Pizza.ID)
	assert.Equal(t, 5, lines[0].Amount)
	assert.True(t, total.Equal(decimal.RequireFromString("120.00")), "total = %s", total)
}

func TestReconcile_UpdateDeleteCreate(t *testing.T) {
	current := []LineItem{
		{ID: 11, Pizza: margaritaSmall, Amount: 1},
		{ID: 12, Pizza: pepperoniBig, Amount: 2},
	}
	// keep pepperoni with a new quantity, drop margarita, add bbq
	requested := []RequestedLine{
		{Variant: pepperoniBig.Variant(), Amount: 4},
		{Variant: bbqBig.Variant(), Amount: 1},
	}

	plan := Reconcile(current, requested, resolvedFor(bbqBig))

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, int64(12), plan.Updates[0].LineID)
	assert.Equal(t, 4, plan.Updates[0].Amount)

	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, int64(11), plan.Deletes[0])

	require.Len(t, plan.Creates, 1)
	assert.Equal(t, bbqBig.ID, plan.Creates[0].Pizza.ID)
	assert.Equal(t, 1, plan.Creates[0].Amount)

	// 4×20.00 + 1×25.50
	assert.True(t, plan.Total.Equal(decimal.RequireFromString("105.50")), "total = %s", plan.Total)
}

func TestReconcile_ReplaceEverything(t *testing.T) {
	current := []LineItem{{ID: 11, Pizza: margaritaSmall, Amount: 1}}
	requested := []RequestedLine{{Variant: bbqBig.Variant(), Amount: 2}}

	plan := Reconcile(current, requested, resolvedFor(bbqBig))

	assert.Empty(t, plan.Updates)
	assert.Equal(t, []int64{11}, plan.Deletes)
	require.Len(t, plan.Creates, 1)
	// total reflects only the new line
	assert.True(t, plan.Total.Equal(decimal.RequireFromString("51.00")))
}

func TestReconcile_Idempotent(t *testing.T) {
	current := []LineItem{
		{ID: 11, Pizza: margaritaSmall, Amount: 3},
		{ID: 12, Pizza: pepperoniBig, Amount: 1},
	}
	requested := []RequestedLine{
		{Variant: margaritaSmall.Variant(), Amount: 3},
		{Variant: pepperoniBig.Variant(), Amount: 1},
	}

	plan := Reconcile(current, requested, nil)

	assert.Empty(t, plan.Deletes)
	assert.Empty(t, plan.Creates)
	require.Len(t, plan.Updates, 2)
	assert.Equal(t, 3, plan.Updates[0].Amount)
	assert.Equal(t, 1, plan.Updates[1].Amount)
	// 3×10.00 + 1×20.00, same as before the edit
	assert.True(t, plan.Total.Equal(decimal.RequireFromString("50.00")))
}

func TestReconcile_EmptyCurrent(t *testing.T) {
	requested := []RequestedLine{{Variant: margaritaSmall.Variant(), Amount: 2}}
	plan := Reconcile(nil, requested, resolvedFor(margaritaSmall))

	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.Deletes)
	require.Len(t, plan.Creates, 1)
	assert.True(t, plan.Total.Equal(decimal.RequireFromString("20.00")))
}
