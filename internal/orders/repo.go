package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Triol19/pizza-orders/internal/catalog"
)

// Repo implements Store on PostgreSQL.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	var (
		o     Order
		total string
	)
	err := r.DB.QueryRow(ctx, `
		SELECT o.id, o.customer_id, c.name, o.ordered, o.updated, o.made, o.delivered, o.total::text
		FROM delivery_orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`, orderID,
	).Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.Ordered, &o.Updated, &o.Made, &o.Delivered, &total)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order %d: %w", orderID, err)
	}
	if o.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("parse total of order %d: %w", orderID, err)
	}

	lines, err := r.orderLines(ctx, []int64{orderID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[orderID]
	return &o, nil
}

func (r *Repo) CreateOrder(ctx context.Context, customerID int64, lines []LineCreate, total decimal.Decimal) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// get-or-create: a bare customer row is enough at order time, profile data
	// is owned by another process
	if _, err := tx.Exec(ctx, `
		INSERT INTO customers (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING`, customerID); err != nil {
		return 0, fmt.Errorf("ensure customer %d: %w", customerID, err)
	}

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO delivery_orders (customer_id, total)
		VALUES ($1, $2)
		RETURNING id`, customerID, total.StringFixed(2),
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	for _, l := range lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO pizza_links (order_id, pizza_id, amount)
			VALUES ($1, $2, $3)`, orderID, l.Pizza.ID, l.Amount); err != nil {
			return 0, fmt.Errorf("insert line item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *Repo) ApplyPlan(ctx context.Context, orderID int64, plan Plan, updated time.Time) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, u := range plan.Updates {
		if _, err := tx.Exec(ctx, `
			UPDATE pizza_links SET amount = $2 WHERE id = $1`, u.LineID, u.Amount); err != nil {
			return fmt.Errorf("update line item %d: %w", u.LineID, err)
		}
	}
	for _, id := range plan.Deletes {
		if _, err := tx.Exec(ctx, `
			DELETE FROM pizza_links WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete line item %d: %w", id, err)
		}
	}
	for _, c := range plan.Creates {
		if _, err := tx.Exec(ctx, `
			INSERT INTO pizza_links (order_id, pizza_id, amount)
			VALUES ($1, $2, $3)`, orderID, c.Pizza.ID, c.Amount); err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
	}

	ct, err := tx.Exec(ctx, `
		UPDATE delivery_orders SET total = $2, updated = $3 WHERE id = $1`,
		orderID, plan.Total.StringFixed(2), updated)
	if err != nil {
		return fmt.Errorf("update order %d: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return tx.Commit(ctx)
}

func (r *Repo) DeleteOrder(ctx context.Context, orderID int64) (int64, error) {
	var customerID int64
	// pizza_links go with the order via ON DELETE CASCADE
	err := r.DB.QueryRow(ctx, `
		DELETE FROM delivery_orders WHERE id = $1 RETURNING customer_id`, orderID,
	).Scan(&customerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrOrderNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("delete order %d: %w", orderID, err)
	}
	return customerID, nil
}

func (r *Repo) ListCustomerOrders(ctx context.Context, customerID int64) ([]Order, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, customerID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check customer %d: %w", customerID, err)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	rows, err := r.DB.Query(ctx, `
		SELECT o.id, o.customer_id, c.name, o.ordered, o.updated, o.made, o.delivered, o.total::text
		FROM delivery_orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.customer_id = $1
		ORDER BY o.id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("query customer orders: %w", err)
	}
	defer rows.Close()

	var (
		out []Order
		ids []int64
	)
	for rows.Next() {
		var (
			o     Order
			total string
		)
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.Ordered, &o.Updated, &o.Made, &o.Delivered, &total); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("parse total of order %d: %w", o.ID, err)
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := r.orderLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Lines = lines[out[i].ID]
	}
	return out, nil
}

// orderLines loads line items with their catalog entries for a batch of orders.
func (r *Repo) orderLines(ctx context.Context, orderIDs []int64) (map[int64][]LineItem, error) {
	out := make(map[int64][]LineItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	rows, err := r.DB.Query(ctx, `
		SELECT l.order_id, l.id, l.amount, p.id, p.type, p.size, p.price::text
		FROM pizza_links l
		JOIN pizzas p ON p.id = l.pizza_id
		WHERE l.order_id = ANY($1)
		ORDER BY l.id`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("query line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   int64
			li        LineItem
			typ, size int
			price     string
		)
		if err := rows.Scan(&orderID, &li.ID, &li.Amount, &li.Pizza.ID, &typ, &size, &price); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		li.Pizza.Type = catalog.PizzaType(typ)
		li.Pizza.Size = catalog.PizzaSize(size)
		if li.Pizza.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse price of line item %d: %w", li.ID, err)
		}
		out[orderID] = append(out[orderID], li)
	}
	return out, rows.Err()
}
