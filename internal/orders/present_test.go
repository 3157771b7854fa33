package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresent_Scenario(t *testing.T) {
	// catalog has Pepperoni/50cm at 20.00, five were ordered
	o := &Order{
		ID:           1,
		CustomerID:   1,
		CustomerName: "",
		Ordered:      time.Now(),
		Total:        decimal.RequireFromString("100.00"),
		Lines:        []LineItem{{ID: 1, Pizza: pepperoniBig, Amount: 5}},
	}

	view := Present(o)

	assert.Equal(t, "100.00", view.TotalPrice)
	require.Len(t, view.Pizzas, 1)
	assert.Equal(t, "Pepperoni", view.Pizzas[0].Name)
	assert.Equal(t, "50cm", view.Pizzas[0].Size)
	assert.Equal(t, 5, view.Pizzas[0].Amount)
	assert.Equal(t, float64(100), view.Pizzas[0].Price)
	assert.Equal(t, float64(100), view.EstimatedTotalPrice)
}

func TestPresent_EstimatedMatchesStoredTotal(t *testing.T) {
	lines := []LineItem{
		{ID: 1, Pizza: margaritaSmall, Amount: 2},
		{ID: 2, Pizza: bbqBig, Amount: 3},
	}
	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(li.Pizza.Price.Mul(decimal.NewFromInt(int64(li.Amount))))
	}

	view := Present(&Order{ID: 2, CustomerName: "Ann", Total: total, Lines: lines})

	stored, err := decimal.NewFromString(view.TotalPrice)
	require.NoError(t, err)
	assert.True(t, stored.Equal(decimal.NewFromFloat(view.EstimatedTotalPrice)),
		"estimated %v should equal stored %s", view.EstimatedTotalPrice, view.TotalPrice)
}

func TestPresent_EmptyOrder(t *testing.T) {
	view := Present(&Order{ID: 3, Total: decimal.Zero})
	assert.Equal(t, "0.00", view.TotalPrice)
	assert.Empty(t, view.Pizzas)
	assert.Zero(t, view.EstimatedTotalPrice)
}
