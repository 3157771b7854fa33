package orders

import (
	"github.com/shopspring/decimal"

	"github.com/Triol19/pizza-orders/internal/catalog"
)

// Plan is the write set that turns an order's current line items into the
// requested set. The store applies it in one transaction, never partially.
type Plan struct {
	Updates []LineUpdate
	Deletes []int64
	Creates []LineCreate
	Total   decimal.Decimal
}

type LineUpdate struct {
	LineID int64
	Amount int
}

type LineCreate struct {
	Pizza  catalog.Pizza
	Amount int
}

// Reconcile diffs the order's current line items against the requested lines.
// Line items whose variant is still requested get the requested quantity;
// those absent from the request are deleted; requested variants with no
// current line item become creates. requested must be normalized (one entry
// per variant) and resolved must cover every variant in requested that is not
// already on the order. Total is recomputed over the surviving and created
// lines only.
func Reconcile(current []LineItem, requested []RequestedLine, resolved map[catalog.Variant]catalog.Pizza) Plan {
	var plan Plan
	total := decimal.Zero

	wanted := make(map[catalog.Variant]int, len(requested))
	for _, rl := range requested {
		wanted[rl.Variant] = rl.Amount
	}

	kept := make(map[catalog.Variant]bool, len(current))
	for _, li := range current {
		v := li.Pizza.Variant()
		amount, ok := wanted[v]
		if !ok {
			plan.Deletes = append(plan.Deletes, li.ID)
			continue
		}
		plan.Updates = append(plan.Updates, LineUpdate{LineID: li.ID, Amount: amount})
		total = total.Add(linePrice(li.Pizza.Price, amount))
		kept[v] = true
	}

	for _, rl := range requested {
		if kept[rl.Variant] {
			continue
		}
		p := resolved[rl.Variant]
		plan.Creates = append(plan.Creates, LineCreate{Pizza: p, Amount: rl.Amount})
		total = total.Add(linePrice(p.Price, rl.Amount))
	}

	plan.Total = total
	return plan
}

// CreateLines builds the line set and total for a brand-new order.
func CreateLines(requested []RequestedLine, resolved map[catalog.Variant]catalog.Pizza) ([]LineCreate, decimal.Decimal) {
	lines := make([]LineCreate, 0, len(requested))
	total := decimal.Zero
	for _, rl := range requested {
		p := resolved[rl.Variant]
		lines = append(lines, LineCreate{Pizza: p, Amount: rl.Amount})
		total = total.Add(linePrice(p.Price, rl.Amount))
	}
	return lines, total
}

func linePrice(unit decimal.Decimal, amount int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(amount)))
}
