package quantity

// Operand is the sealed set of shapes the arithmetic operations accept:
// a plain Number or a unit-tagged Quantity.
type Operand interface {
	isOperand()
}

// Number is a plain dimensionless value.
type Number float64

func (Number) isOperand() {}

// Quantity is an immutable (value, unit) pair. Quantities are created ad hoc
// at each call site and never mutated; every operation returns a new value.
type Quantity struct {
	Value float64
	Unit  Unit
}

func (Quantity) isOperand() {}

// New constructs a Quantity tagging value with unit.
func New(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// Add sums two operands. Two numbers add numerically. Two quantities of the
// same dimension add in the left operand's unit (the right operand is
// converted first). A number mixed with a quantity is a caller error.
func Add(a, b Operand) (Operand, error) {
	return combine("add", a, b, func(x, y float64) float64 { return x + y })
}

// Subtract computes a minus b with the same dispatch rules as Add.
func Subtract(a, b Operand) (Operand, error) {
	return combine("subtract", a, b, func(x, y float64) float64 { return x - y })
}

func combine(op string, a, b Operand, f func(x, y float64) float64) (Operand, error) {
	switch x := a.(type) {
	case Number:
		if y, ok := b.(Number); ok {
			return Number(f(float64(x), float64(y))), nil
		}
	case Quantity:
		if y, ok := b.(Quantity); ok {
			if x.Unit == y.Unit {
				return Quantity{Value: f(x.Value, y.Value), Unit: x.Unit}, nil
			}
			// The result keeps the left operand's unit.
			converted, err := Convert(y, x.Unit)
			if err != nil {
				return nil, err
			}
			return Quantity{Value: f(x.Value, converted.Value), Unit: x.Unit}, nil
		}
	}
	return nil, &MixedOperandsError{Op: op}
}

// Negate returns the operand with its numeric part negated; a quantity keeps
// its unit.
func Negate(a Operand) Operand {
	switch x := a.(type) {
	case Number:
		return -x
	case Quantity:
		return Quantity{Value: -x.Value, Unit: x.Unit}
	}
	return a
}

// Multiply computes a times b. A number scales a quantity without changing
// its unit. Multiplying two quantities infers the result dimension from the
// relation table and expresses the result in that dimension's base unit.
func Multiply(a, b Operand) (Operand, error) {
	switch x := a.(type) {
	case Number:
		switch y := b.(type) {
		case Number:
			return Number(float64(x) * float64(y)), nil
		case Quantity:
			return Quantity{Value: float64(x) * y.Value, Unit: y.Unit}, nil
		}
	case Quantity:
		switch y := b.(type) {
		case Number:
			return Quantity{Value: x.Value * float64(y), Unit: x.Unit}, nil
		case Quantity:
			return multiplyQuantities(x, y)
		}
	}
	return nil, &MixedOperandsError{Op: "multiply"}
}

// Divide computes a divided by b with the same dispatch rules as Multiply;
// quantity-by-quantity division resolves the result dimension by using the
// relation table in reverse.
func Divide(a, b Operand) (Operand, error) {
	switch x := a.(type) {
	case Number:
		switch y := b.(type) {
		case Number:
			return Number(float64(x) / float64(y)), nil
		case Quantity:
			return Quantity{Value: float64(x) / y.Value, Unit: y.Unit}, nil
		}
	case Quantity:
		switch y := b.(type) {
		case Number:
			return Quantity{Value: x.Value / float64(y), Unit: x.Unit}, nil
		case Quantity:
			return divideQuantities(x, y)
		}
	}
	return nil, &MixedOperandsError{Op: "divide"}
}

func multiplyQuantities(a, b Quantity) (Operand, error) {
	da, err := lookup(a.Unit)
	if err != nil {
		return nil, err
	}
	db, err := lookup(b.Unit)
	if err != nil {
		return nil, err
	}
	dim, err := MultiplyDimensions(da.dim, db.dim)
	if err != nil {
		return nil, err
	}
	unit, err := BaseUnitOf(dim)
	if err != nil {
		return nil, err
	}
	return Quantity{
		Value: da.conv.toBase(a.Value) * db.conv.toBase(b.Value),
		Unit:  unit,
	}, nil
}

func divideQuantities(a, b Quantity) (Operand, error) {
	da, err := lookup(a.Unit)
	if err != nil {
		return nil, err
	}
	db, err := lookup(b.Unit)
	if err != nil {
		return nil, err
	}
	dim, err := DivideDimensions(da.dim, db.dim)
	if err != nil {
		return nil, err
	}
	unit, err := BaseUnitOf(dim)
	if err != nil {
		return nil, err
	}
	return Quantity{
		Value: da.conv.toBase(a.Value) / db.conv.toBase(b.Value),
		Unit:  unit,
	}, nil
}
