package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Store is the transactional persistence boundary. Every mutating call either
// commits in full or leaves the database untouched.
type Store interface {
	// GetOrder loads an order with its line items and their catalog entries.
	GetOrder(ctx context.Context, orderID int64) (*Order, error)

	// CreateOrder creates the customer stub if needed, then the order and its
	// line items, in one transaction. Returns the new order id.
	CreateOrder(ctx context.Context, customerID int64, lines []LineCreate, total decimal.Decimal) (int64, error)

	// ApplyPlan applies a reconciliation plan to an existing order and stamps
	// its updated time, in one transaction.
	ApplyPlan(ctx context.Context, orderID int64, plan Plan, updated time.Time) error

	// DeleteOrder removes the order and cascades its line items. Returns the
	// owning customer id.
	DeleteOrder(ctx context.Context, orderID int64) (int64, error)

	// ListCustomerOrders returns all orders of the customer, newest last.
	// Not transactional; concurrent commits may be observed.
	ListCustomerOrders(ctx context.Context, customerID int64) ([]Order, error)
}
