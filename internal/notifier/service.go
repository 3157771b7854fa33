package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/Triol19/pizza-orders/internal/kafka"
	"github.com/Triol19/pizza-orders/internal/orders"
	"github.com/Triol19/pizza-orders/internal/redisx"
)

// Service keeps the Redis read cache in step with order lifecycle events, so
// API instances other than the one that handled the mutation stop serving
// stale representations.
type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// HandleOrderEvent is wired as the consumer handler for all three lifecycle topics.
func (s *Service) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	// dedup by event id; consumer-group rebalances can redeliver
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	if seen, _ := redisx.Exists(ctx, s.Redis, dkey); seen {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[orders.OrderEventPayload](env.Payload)
	if err != nil {
		return err
	}

	orderKey := fmt.Sprintf(redisx.KeyOrder, p.OrderID)
	customerKey := fmt.Sprintf(redisx.KeyCustomerOrders, p.CustomerID)

	switch env.EventType {
	case orders.EventOrderCreated, orders.EventOrderUpdated:
		if p.Order != nil {
			if err := s.Redis.Set(ctx, orderKey, kafkax.MustMarshal(p.Order), redisx.TTLOrderCache).Err(); err != nil {
				return fmt.Errorf("warm order cache: %w", err)
			}
		}
		if err := s.Redis.Del(ctx, customerKey).Err(); err != nil {
			return fmt.Errorf("drop customer cache: %w", err)
		}
	case orders.EventOrderDeleted:
		if err := s.Redis.Del(ctx, orderKey, customerKey).Err(); err != nil {
			return fmt.Errorf("drop caches: %w", err)
		}
	default:
		slog.Debug("ignoring event", "type", env.EventType)
	}
	return nil
}
