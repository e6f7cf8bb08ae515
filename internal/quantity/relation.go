package quantity

import "fmt"

// relation states that product = factorA × factorB. Relations are used
// bidirectionally: multiplication looks up the unordered factor pair,
// division looks up the product and one factor.
type relation struct {
	product Dimension
	factorA Dimension
	factorB Dimension
}

// relations is deliberately a short fixed table scanned linearly. The only
// correctness requirement is that no lookup ever matches more than one entry.
var relations = []relation{
	{DimArea, DimLength, DimLength},
	{DimVolume, DimArea, DimLength},
	{DimLength, DimVelocity, DimTime},
	{DimVelocity, DimAcceleration, DimTime},
	{DimForce, DimMass, DimAcceleration},
	{DimForce, DimPressure, DimArea},
	{DimMass, DimDensity, DimVolume},
	{DimMoment, DimForce, DimLength},
	{DimPower, DimForce, DimVelocity},
	{DimEnergy, DimPower, DimTime},
}

// MultiplyDimensions returns the dimension produced by multiplying a and b.
// The unordered pair {a, b} must match exactly one relation's factor pair.
func MultiplyDimensions(a, b Dimension) (Dimension, error) {
	var product Dimension
	matches := 0
	for _, r := range relations {
		if (r.factorA == a && r.factorB == b) || (r.factorA == b && r.factorB == a) {
			product = r.product
			matches++
		}
	}
	if matches != 1 {
		return 0, &RelationError{Op: "multiply", DimA: a, DimB: b, Matches: matches}
	}
	return product, nil
}

// DivideDimensions returns the dimension produced by dividing numerator by
// denominator: it finds the relation whose product is the numerator and one
// of whose factors is the denominator, and returns the other factor. Exactly
// one relation must match.
func DivideDimensions(numerator, denominator Dimension) (Dimension, error) {
	var quotient Dimension
	matches := 0
	for _, r := range relations {
		if r.product != numerator {
			continue
		}
		// Each relation contributes at most one match; when both factors
		// equal the denominator (area = length × length) the quotient is
		// that same factor.
		switch denominator {
		case r.factorA:
			quotient = r.factorB
			matches++
		case r.factorB:
			quotient = r.factorA
			matches++
		}
	}
	if matches != 1 {
		return 0, &RelationError{Op: "divide", DimA: numerator, DimB: denominator, Matches: matches}
	}
	return quotient, nil
}

// BaseUnitOf returns the unit of the given dimension whose scalar factor is
// exactly 1.0. A failure here means the registry violates its own invariant
// of one base unit per dimension.
func BaseUnitOf(d Dimension) (Unit, error) {
	var base Unit
	matches := 0
	for u, desc := range registry {
		if Unit(u) == UnitInvalid || desc.dim != d {
			continue
		}
		if desc.conv.factor == 1 {
			base = Unit(u)
			matches++
		}
	}
	if matches != 1 {
		return UnitInvalid, fmt.Errorf("%w %s: found %d factor-1.0 units", ErrNoBaseUnit, d, matches)
	}
	return base, nil
}
