package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/Triol19/pizza-orders/internal/catalog"
)

// CatalogResolver resolves (type, size) variants to catalog entries in one
// batch. Unmatched variants are absent from the result.
type CatalogResolver interface {
	Resolve(ctx context.Context, variants []catalog.Variant) (map[catalog.Variant]catalog.Pizza, error)
}

type Service struct {
	store   Store
	catalog CatalogResolver
	now     func() time.Time
}

func NewService(store Store, resolver CatalogResolver) *Service {
	return &Service{store: store, catalog: resolver, now: time.Now}
}

// Create validates the request, resolves the catalog in one batch, and creates
// the order with its line items transactionally. The customer row is created
// on first reference.
func (s *Service) Create(ctx context.Context, customerID int64, pizzas []PizzaRequest) (*Order, error) {
	requested, err := NormalizeRequest(pizzas)
	if err != nil {
		return nil, err
	}

	resolved, err := s.catalog.Resolve(ctx, Variants(requested))
	if err != nil {
		return nil, fmt.Errorf("resolve catalog: %w", err)
	}
	if verr := unresolved(requested, nil, resolved); verr != nil {
		return nil, verr
	}

	lines, total := CreateLines(requested, resolved)
	orderID, err := s.store.CreateOrder(ctx, customerID, lines, total)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return s.store.GetOrder(ctx, orderID)
}

// Edit reconciles an existing order's line items against the requested set:
// still-requested variants keep their line item with the new quantity, absent
// ones are deleted, new ones are created, and the total is recomputed — all in
// one transaction.
func (s *Service) Edit(ctx context.Context, orderID int64, pizzas []PizzaRequest) (*Order, error) {
	requested, err := NormalizeRequest(pizzas)
	if err != nil {
		return nil, err
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	current := make(map[catalog.Variant]bool, len(order.Lines))
	for _, li := range order.Lines {
		current[li.Pizza.Variant()] = true
	}
	var fresh []catalog.Variant
	for _, rl := range requested {
		if !current[rl.Variant] {
			fresh = append(fresh, rl.Variant)
		}
	}

	resolved := map[catalog.Variant]catalog.Pizza{}
	if len(fresh) > 0 {
		if resolved, err = s.catalog.Resolve(ctx, fresh); err != nil {
			return nil, fmt.Errorf("resolve catalog: %w", err)
		}
		if verr := unresolved(requested, current, resolved); verr != nil {
			return nil, verr
		}
	}

	plan := Reconcile(order.Lines, requested, resolved)
	if err := s.store.ApplyPlan(ctx, orderID, plan, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("apply reconciliation: %w", err)
	}
	return s.store.GetOrder(ctx, orderID)
}

// Delete removes the order and its line items. Returns the owning customer id.
func (s *Service) Delete(ctx context.Context, orderID int64) (int64, error) {
	return s.store.DeleteOrder(ctx, orderID)
}

func (s *Service) CustomerOrders(ctx context.Context, customerID int64) ([]Order, error) {
	return s.store.ListCustomerOrders(ctx, customerID)
}

// unresolved reports requested variants that neither sit on the order already
// nor matched a catalog entry. Surfaced before any write happens.
func unresolved(requested []RequestedLine, current map[catalog.Variant]bool, resolved map[catalog.Variant]catalog.Pizza) error {
	verr := &ValidationError{}
	for _, rl := range requested {
		if current[rl.Variant] {
			continue
		}
		if _, ok := resolved[rl.Variant]; !ok {
			verr.Add("pizzas", fmt.Sprintf("no catalog entry for %s", rl.Variant))
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
