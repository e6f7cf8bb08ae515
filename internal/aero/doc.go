// Package aero implements aeronautical performance formulas on top of the
// quantity package.
//
// The formulas are straightforward algebraic expressions: they build their
// inputs with quantity.New, combine them with the quantity arithmetic and
// conversion operations, and return unit-tagged results. The package never
// reads the unit registry or relation tables directly.
//
// Atmosphere carries the density-ratio table used to correct sea-level
// formulas for altitude. The standard table is a fixed 5-point curve with
// linear interpolation; a replacement table can be loaded from YAML for
// non-standard conditions.
package aero
