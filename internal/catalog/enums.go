package catalog

import "fmt"

// PizzaType and PizzaSize are closed enumerations; the catalog only ever
// contains entries for members of both.
type PizzaType int

const (
	TypeMargarita PizzaType = 1
	TypePepperoni PizzaType = 2
	TypeBBQ       PizzaType = 3
)

var typeNames = map[PizzaType]string{
	TypeMargarita: "Margarita",
	TypePepperoni: "Pepperoni",
	TypeBBQ:       "BBQ",
}

func (t PizzaType) String() string { return typeNames[t] }

type PizzaSize int

const (
	SizeSmall PizzaSize = 1
	SizeBig   PizzaSize = 2
)

var sizeNames = map[PizzaSize]string{
	SizeSmall: "30cm",
	SizeBig:   "50cm",
}

func (s PizzaSize) String() string { return sizeNames[s] }

// InvalidEnumError reports an integer outside the enumeration.
type InvalidEnumError struct {
	Enum  string
	Value int
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid pizza %s: %d", e.Enum, e.Value)
}

func ParseType(v int) (PizzaType, error) {
	t := PizzaType(v)
	if _, ok := typeNames[t]; !ok {
		return 0, &InvalidEnumError{Enum: "type", Value: v}
	}
	return t, nil
}

func ParseSize(v int) (PizzaSize, error) {
	s := PizzaSize(v)
	if _, ok := sizeNames[s]; !ok {
		return 0, &InvalidEnumError{Enum: "size", Value: v}
	}
	return s, nil
}

// Variant is the composite (type, size) key a catalog entry is unique by.
type Variant struct {
	Type PizzaType
	Size PizzaSize
}

func (v Variant) String() string {
	return fmt.Sprintf("%s/%s", v.Type, v.Size)
}
