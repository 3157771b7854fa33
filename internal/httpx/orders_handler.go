package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/Triol19/pizza-orders/internal/kafka"
	"github.com/Triol19/pizza-orders/internal/orders"
	"github.com/Triol19/pizza-orders/internal/redisx"
)

type CreateOrderReq struct {
	CustomerID int64                 `json:"customer_id"`
	Pizzas     []orders.PizzaRequest `json:"pizzas"`
}

type EditOrderReq struct {
	Pizzas []orders.PizzaRequest `json:"pizzas"`
}

type OrdersHandler struct {
	Service *orders.Service
	Redis   *redis.Client

	// one producer per lifecycle topic, all optional
	Created *kafkax.Producer
	Updated *kafkax.Producer
	Deleted *kafkax.Producer

	ServiceName string
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/pizza-orders", h.createOrder)
	r.Put("/pizza-orders/{order_id}", h.editOrder)
	r.Delete("/pizza-orders/{order_id}", h.deleteOrder)
	r.Get("/customers/{customer_id}/orders", h.customerOrders)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto status codes: field-level
// validation → 400, missing order/customer → 404, anything else → 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *orders.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verr.Fields})
	case errors.Is(err, orders.ErrOrderNotFound), errors.Is(err, orders.ErrCustomerNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		slog.Error("request failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	order, err := h.Service.Create(ctx, req.CustomerID, req.Pizzas)
	if err != nil {
		writeError(w, err)
		return
	}

	view := orders.Present(order)
	h.refreshCaches(ctx, order.ID, order.CustomerID, &view)
	h.publish(h.Created, orders.EventOrderCreated, r, order.ID, order.CustomerID, &view)
	writeJSON(w, http.StatusOK, view)
}

func (h *OrdersHandler) editOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "order_id")
	if !ok {
		return
	}
	var req EditOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	order, err := h.Service.Edit(ctx, orderID, req.Pizzas)
	if err != nil {
		writeError(w, err)
		return
	}

	view := orders.Present(order)
	h.refreshCaches(ctx, order.ID, order.CustomerID, &view)
	h.publish(h.Updated, orders.EventOrderUpdated, r, order.ID, order.CustomerID, &view)
	writeJSON(w, http.StatusOK, view)
}

func (h *OrdersHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "order_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customerID, err := h.Service.Delete(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.dropCaches(ctx, orderID, customerID)
	h.publish(h.Deleted, orders.EventOrderDeleted, r, orderID, customerID, nil)
	w.WriteHeader(http.StatusOK)
}

func (h *OrdersHandler) customerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customer_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// cache first, DB stays the source of truth
	if h.Redis != nil {
		key := fmt.Sprintf(redisx.KeyCustomerOrders, customerID)
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s))
			return
		}
	}

	list, err := h.Service.CustomerOrders(ctx, customerID)
	if err != nil {
		writeError(w, err)
		return
	}

	body := map[string]any{"object_list": orders.PresentAll(list)}
	b, err := json.Marshal(body)
	if err != nil {
		writeError(w, err)
		return
	}
	if h.Redis != nil {
		key := fmt.Sprintf(redisx.KeyCustomerOrders, customerID)
		_ = h.Redis.Set(ctx, key, b, redisx.TTLCustomerCache).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// refreshCaches stores the fresh representation and drops the stale customer
// list. Cache failures are non-fatal.
func (h *OrdersHandler) refreshCaches(ctx context.Context, orderID, customerID int64, view *orders.OrderView) {
	if h.Redis == nil {
		return
	}
	_ = h.Redis.Set(ctx, fmt.Sprintf(redisx.KeyOrder, orderID), kafkax.MustMarshal(view), redisx.TTLOrderCache).Err()
	_ = h.Redis.Del(ctx, fmt.Sprintf(redisx.KeyCustomerOrders, customerID)).Err()
}

func (h *OrdersHandler) dropCaches(ctx context.Context, orderID, customerID int64) {
	if h.Redis == nil {
		return
	}
	_ = h.Redis.Del(ctx,
		fmt.Sprintf(redisx.KeyOrder, orderID),
		fmt.Sprintf(redisx.KeyCustomerOrders, customerID),
	).Err()
}

func (h *OrdersHandler) publish(p *kafkax.Producer, eventType string, r *http.Request, orderID, customerID int64, view *orders.OrderView) {
	if p == nil {
		return
	}
	payload := kafkax.MustMarshal(orders.OrderEventPayload{
		OrderID:    orderID,
		CustomerID: customerID,
		Order:      view,
	})
	ev := orders.NewEnvelope(eventType, h.ServiceName, r.Header.Get("X-Request-Id"), strconv.FormatInt(orderID, 10), payload)
	p.Publish(orders.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
