package redisx

import "time"

const (
	// Rendered read representation of one order: order:{order_id}
	KeyOrder = "order:%d"

	// Rendered order list for a customer: customer_orders:{customer_id}
	KeyCustomerOrders = "customer_orders:%d"

	// Dedup for event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLOrderCache    = 5 * time.Minute
	TTLCustomerCache = 1 * time.Minute
	TTLDedup         = 48 * time.Hour
)
