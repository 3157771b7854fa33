package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Pizza is one catalog entry: a priced (type, size) variant. Entries are owned
// by an external catalog process; this service only reads them.
type Pizza struct {
	ID    int64
	Type  PizzaType
	Size  PizzaSize
	Price decimal.Decimal
}

func (p Pizza) Variant() Variant { return Variant{Type: p.Type, Size: p.Size} }

type Lookup struct{ DB *pgxpool.Pool }

// Resolve maps the given variants to catalog entries with a single query,
// batched by the distinct types and sizes involved and filtered back to the
// exact pairs. Variants with no catalog entry are absent from the result; the
// caller decides whether that is an error.
func (l *Lookup) Resolve(ctx context.Context, variants []Variant) (map[Variant]Pizza, error) {
	out := make(map[Variant]Pizza, len(variants))
	if len(variants) == 0 {
		return out, nil
	}

	wanted := make(map[Variant]bool, len(variants))
	var types, sizes []int32
	seenType := map[PizzaType]bool{}
	seenSize := map[PizzaSize]bool{}
	for _, v := range variants {
		wanted[v] = true
		if !seenType[v.Type] {
			seenType[v.Type] = true
			types = append(types, int32(v.Type))
		}
		if !seenSize[v.Size] {
			seenSize[v.Size] = true
			sizes = append(sizes, int32(v.Size))
		}
	}

	rows, err := l.DB.Query(ctx, `
		SELECT id, type, size, price::text
		FROM pizzas
		WHERE type = ANY($1) AND size = ANY($2)`, types, sizes)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p         Pizza
			typ, size int
			price     string
		)
		if err := rows.Scan(&p.ID, &typ, &size, &price); err != nil {
			return nil, fmt.Errorf("scan catalog entry: %w", err)
		}
		p.Type = PizzaType(typ)
		p.Size = PizzaSize(size)
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse price for pizza %d: %w", p.ID, err)
		}
		// the type/size batch can match pairs nobody asked for
		if v := p.Variant(); wanted[v] {
			out[v] = p
		}
	}
	return out, rows.Err()
}
