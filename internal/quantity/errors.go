package quantity

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	// ErrUnknownUnit indicates a unit identifier absent from the registry.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrDimensionMismatch indicates an operation across incompatible dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrNoRelation indicates that dimension inference found zero or more than
	// one matching relation.
	ErrNoRelation = errors.New("no unambiguous dimension relation")
	// ErrNoBaseUnit indicates a dimension without exactly one factor-1.0 unit,
	// which means the registry itself is malformed.
	ErrNoBaseUnit = errors.New("no base unit for dimension")
	// ErrMixedOperands indicates an addition or subtraction mixing a plain
	// number with a quantity, which has no defined meaning.
	ErrMixedOperands = errors.New("mixed number and quantity operands")
)

// UnknownUnitError reports a unit with no registry entry.
type UnknownUnitError struct {
	Unit Unit
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit: %s", e.Unit)
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// DimensionMismatchError reports a conversion or combination attempted across
// incompatible dimensions. It carries both dimensions and both human-readable
// unit descriptions for diagnostics.
type DimensionMismatchError struct {
	FromDescription string
	FromDimension   Dimension
	ToDescription   string
	ToDimension     Dimension
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)",
		e.FromDescription, e.FromDimension, e.ToDescription, e.ToDimension)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// RelationError reports a dimension inference that did not match exactly one
// relation. Matches is the number of relations found (zero or more than one).
type RelationError struct {
	Op      string // "multiply" or "divide"
	DimA    Dimension
	DimB    Dimension
	Matches int
}

func (e *RelationError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no relation to %s %s and %s", e.Op, e.DimA, e.DimB)
	}
	return fmt.Sprintf("ambiguous relation (%d matches) to %s %s and %s",
		e.Matches, e.Op, e.DimA, e.DimB)
}

func (e *RelationError) Unwrap() error { return ErrNoRelation }

// MixedOperandsError reports an add or subtract over one number and one
// quantity. The operation is intentionally undefined: callers must either
// strip the unit or tag the number explicitly.
type MixedOperandsError struct {
	Op string
}

func (e *MixedOperandsError) Error() string {
	return fmt.Sprintf("cannot %s a number and a quantity", e.Op)
}

func (e *MixedOperandsError) Unwrap() error { return ErrMixedOperands }
