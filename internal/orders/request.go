package orders

import (
	"fmt"

	"github.com/Triol19/pizza-orders/internal/catalog"
)

// PizzaRequest is one requested line: number pizzas of the given type and size.
type PizzaRequest struct {
	Number int `json:"number"`
	Type   int `json:"type"`
	Size   int `json:"size"`
}

// RequestedLine is a validated, aggregated request entry, one per variant.
type RequestedLine struct {
	Variant catalog.Variant
	Amount  int
}

// NormalizeRequest validates every entry against the enumerations and folds
// duplicate (type, size) pairs into a single line by summing their quantities.
// The same policy applies to create and edit requests.
func NormalizeRequest(pizzas []PizzaRequest) ([]RequestedLine, error) {
	if len(pizzas) == 0 {
		verr := &ValidationError{}
		verr.Add("pizzas", "at least one pizza is required")
		return nil, verr
	}

	verr := &ValidationError{}
	index := make(map[catalog.Variant]int)
	var lines []RequestedLine

	for i, p := range pizzas {
		bad := false
		typ, err := catalog.ParseType(p.Type)
		if err != nil {
			verr.Add(fmt.Sprintf("pizzas[%d].type", i), err.Error())
			bad = true
		}
		size, err := catalog.ParseSize(p.Size)
		if err != nil {
			verr.Add(fmt.Sprintf("pizzas[%d].size", i), err.Error())
			bad = true
		}
		if p.Number < 1 {
			verr.Add(fmt.Sprintf("pizzas[%d].number", i), "must be a positive integer")
			bad = true
		}
		if bad {
			continue
		}

		v := catalog.Variant{Type: typ, Size: size}
		if at, ok := index[v]; ok {
			lines[at].Amount += p.Number
			continue
		}
		index[v] = len(lines)
		lines = append(lines, RequestedLine{Variant: v, Amount: p.Number})
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return lines, nil
}

// Variants returns the distinct variants of the normalized lines, in request order.
func Variants(lines []RequestedLine) []catalog.Variant {
	out := make([]catalog.Variant, len(lines))
	for i, l := range lines {
		out[i] = l.Variant
	}
	return out
}
