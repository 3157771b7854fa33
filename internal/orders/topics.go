package orders

import "strconv"

const (
	TopicOrderCreated = "pizza-order.created"
	TopicOrderUpdated = "pizza-order.updated"
	TopicOrderDeleted = "pizza-order.deleted"
)

// PartitionKey keeps all events of one order on one partition, preserving
// their relative order.
func PartitionKey(orderID int64) []byte {
	return []byte(strconv.FormatInt(orderID, 10))
}
