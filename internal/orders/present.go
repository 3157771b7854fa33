package orders

import (
	"github.com/shopspring/decimal"
)

type LineView struct {
	Name   string  `json:"name"`
	Size   string  `json:"size"`
	Amount int     `json:"amount"`
	Price  float64 `json:"price"`
}

type OrderView struct {
	ID       int64      `json:"id"`
	Customer string     `json:"customer"`
	Pizzas   []LineView `json:"pizzas"`
	// TotalPrice is the authoritative persisted total; EstimatedTotalPrice is
	// recomputed from the emitted per-line prices as a consistency cross-check
	// for callers. It never drives writes.
	TotalPrice          string  `json:"total_price"`
	EstimatedTotalPrice float64 `json:"estimated_total_price"`
}

// Present renders a stored order into the wire representation:
// human-readable type and size names, line price = amount × unit price.
func Present(o *Order) OrderView {
	estimated := decimal.Zero
	pizzas := make([]LineView, 0, len(o.Lines))
	for _, li := range o.Lines {
		price := linePrice(li.Pizza.Price, li.Amount)
		estimated = estimated.Add(price)
		pizzas = append(pizzas, LineView{
			Name:   li.Pizza.Type.String(),
			Size:   li.Pizza.Size.String(),
			Amount: li.Amount,
			Price:  price.InexactFloat64(),
		})
	}
	return OrderView{
		ID:                  o.ID,
		Customer:            o.CustomerName,
		Pizzas:              pizzas,
		TotalPrice:          o.Total.StringFixed(2),
		EstimatedTotalPrice: estimated.InexactFloat64(),
	}
}

func PresentAll(orders []Order) []OrderView {
	out := make([]OrderView, len(orders))
	for i := range orders {
		out[i] = Present(&orders[i])
	}
	return out
}
