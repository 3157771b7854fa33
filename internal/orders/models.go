package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Triol19/pizza-orders/internal/catalog"
)

type Customer struct {
	ID      int64
	Name    string
	Address string
}

// Order is a delivery order. Total always equals the sum of
// amount × catalog price over its current line items; the reconciler and the
// store keep that invariant inside one transaction per mutation.
type Order struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	Ordered      time.Time
	Updated      *time.Time
	Made         *time.Time
	Delivered    *time.Time
	Total        decimal.Decimal
	Lines        []LineItem
}

// LineItem links one catalog entry to an order with a positive quantity.
// An order holds at most one line item per (type, size) variant.
type LineItem struct {
	ID     int64
	Pizza  catalog.Pizza
	Amount int
}
