package quantity

import "math"

// conversionPrecision is the number of decimal places Convert rounds to.
// Routing every conversion through the base unit accumulates floating-point
// noise; rounding the result is part of the conversion contract so converted
// values compare exactly.
const conversionPrecision = 14

// Convert returns q expressed in the target unit. The source and target must
// belong to the same dimension; the value is translated through the
// dimension's base unit and rounded to conversionPrecision decimal places;
// converting to the quantity's own unit returns it unchanged.
// Convert is a pure function of its two inputs.
func Convert(q Quantity, target Unit) (Quantity, error) {
	src, err := lookup(q.Unit)
	if err != nil {
		return Quantity{}, err
	}
	if q.Unit == target {
		return q, nil
	}
	dst, err := lookup(target)
	if err != nil {
		return Quantity{}, err
	}
	if src.dim != dst.dim {
		return Quantity{}, &DimensionMismatchError{
			FromDescription: src.desc,
			FromDimension:   src.dim,
			ToDescription:   dst.desc,
			ToDimension:     dst.dim,
		}
	}
	out := dst.conv.fromBase(src.conv.toBase(q.Value))
	return Quantity{Value: roundPlaces(out, conversionPrecision), Unit: target}, nil
}

func roundPlaces(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	r := math.Round(v*shift) / shift
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}
