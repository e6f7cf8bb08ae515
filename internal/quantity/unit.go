package quantity

import (
	"fmt"
	"strings"
)

// Unit is a closed enumeration of the units known to the registry. The zero
// value is invalid so that an uninitialized Quantity fails lookups instead of
// silently behaving like a base unit.
type Unit int

const (
	UnitInvalid Unit = iota

	// mass
	UnitKilogram
	UnitGram
	UnitPound
	UnitSlug

	// length
	UnitMeter
	UnitCentimeter
	UnitMillimeter
	UnitKilometer
	UnitInch
	UnitFoot
	UnitYard
	UnitMile
	UnitNauticalMile

	// time
	UnitSecond
	UnitMinute
	UnitHour

	// area
	UnitSquareMeter
	UnitSquareCentimeter
	UnitSquareInch
	UnitSquareFoot

	// volume
	UnitCubicMeter
	UnitLiter
	UnitGallon
	UnitCubicFoot

	// velocity
	UnitMeterPerSecond
	UnitKilometerPerHour
	UnitMilePerHour
	UnitKnot
	UnitFootPerSecond
	UnitFootPerMinute

	// acceleration
	UnitMeterPerSecondSquared
	UnitFootPerSecondSquared

	// force
	UnitNewton
	UnitPoundForce

	// pressure
	UnitPascal
	UnitKilopascal
	UnitPoundPerSquareInch
	UnitPoundPerSquareFoot
	UnitInchOfMercury
	UnitAtmosphere

	// power
	UnitWatt
	UnitKilowatt
	UnitHorsepower

	// energy
	UnitJoule
	UnitKilojoule
	UnitBTU

	// density
	UnitKilogramPerCubicMeter
	UnitSlugPerCubicFoot

	// moment
	UnitNewtonMeter
	UnitFootPound
	UnitInchPound

	// temperature
	UnitCelsius
	UnitFahrenheit
	UnitKelvin
	UnitRankine
)

// conversion translates values between a unit and its dimension's base unit.
// Every descriptor is a pair of pure functions; a plain scalar factor f is
// simply toBase(v) = v*f, fromBase(v) = v/f, so the converter has a single
// code path regardless of conversion kind.
type conversion struct {
	toBase   func(float64) float64
	fromBase func(float64) float64
	factor   float64 // scalar factor to the base unit; 0 for affine conversions
}

func scalar(factor float64) conversion {
	return conversion{
		toBase:   func(v float64) float64 { return v * factor },
		fromBase: func(v float64) float64 { return v / factor },
		factor:   factor,
	}
}

func affine(toBase, fromBase func(float64) float64) conversion {
	return conversion{toBase: toBase, fromBase: fromBase}
}

// descriptor is one registry entry: the unit's identifier, dimension,
// conversion descriptor, and human-readable description.
type descriptor struct {
	id   string
	dim  Dimension
	conv conversion
	desc string
}

// registry maps each Unit to its descriptor. It is built once at package
// initialization and never mutated; reads need no coordination.
var registry = [...]descriptor{
	UnitKilogram: {"kg", DimMass, scalar(1), "kilograms"},
	UnitGram:     {"g", DimMass, scalar(0.001), "grams"},
	UnitPound:    {"lb", DimMass, scalar(0.45359237), "pounds"},
	UnitSlug:     {"slug", DimMass, scalar(14.59390294), "slugs"},

	UnitMeter:        {"m", DimLength, scalar(1), "meters"},
	UnitCentimeter:   {"cm", DimLength, scalar(0.01), "centimeters"},
	UnitMillimeter:   {"mm", DimLength, scalar(0.001), "millimeters"},
	UnitKilometer:    {"km", DimLength, scalar(1000), "kilometers"},
	UnitInch:         {"in", DimLength, scalar(0.0254), "inches"},
	UnitFoot:         {"ft", DimLength, scalar(0.3048), "feet"},
	UnitYard:         {"yd", DimLength, scalar(0.9144), "yards"},
	UnitMile:         {"mi", DimLength, scalar(1609.344), "statute miles"},
	UnitNauticalMile: {"nmi", DimLength, scalar(1852), "nautical miles"},

	UnitSecond: {"s", DimTime, scalar(1), "seconds"},
	UnitMinute: {"min", DimTime, scalar(60), "minutes"},
	UnitHour:   {"hr", DimTime, scalar(3600), "hours"},

	UnitSquareMeter:      {"m2", DimArea, scalar(1), "square meters"},
	UnitSquareCentimeter: {"cm2", DimArea, scalar(0.0001), "square centimeters"},
	UnitSquareInch:       {"in2", DimArea, scalar(0.00064516), "square inches"},
	UnitSquareFoot:       {"ft2", DimArea, scalar(0.09290304), "square feet"},

	UnitCubicMeter: {"m3", DimVolume, scalar(1), "cubic meters"},
	UnitLiter:      {"l", DimVolume, scalar(0.001), "liters"},
	UnitGallon:     {"gal", DimVolume, scalar(0.003785411784), "US gallons"},
	UnitCubicFoot:  {"ft3", DimVolume, scalar(0.028316846592), "cubic feet"},

	UnitMeterPerSecond:   {"m/s", DimVelocity, scalar(1), "meters per second"},
	UnitKilometerPerHour: {"km/h", DimVelocity, scalar(1000.0 / 3600.0), "kilometers per hour"},
	UnitMilePerHour:      {"mph", DimVelocity, scalar(0.44704), "miles per hour"},
	UnitKnot:             {"kt", DimVelocity, scalar(1852.0 / 3600.0), "knots"},
	UnitFootPerSecond:    {"ft/s", DimVelocity, scalar(0.3048), "feet per second"},
	UnitFootPerMinute:    {"ft/min", DimVelocity, scalar(0.00508), "feet per minute"},

	UnitMeterPerSecondSquared: {"m/s2", DimAcceleration, scalar(1), "meters per second squared"},
	UnitFootPerSecondSquared:  {"ft/s2", DimAcceleration, scalar(0.3048), "feet per second squared"},

	UnitNewton:     {"n", DimForce, scalar(1), "newtons"},
	UnitPoundForce: {"lbf", DimForce, scalar(4.4482216152605), "pounds of force"},

	UnitPascal:             {"pa", DimPressure, scalar(1), "pascals"},
	UnitKilopascal:         {"kpa", DimPressure, scalar(1000), "kilopascals"},
	UnitPoundPerSquareInch: {"psi", DimPressure, scalar(6894.757293168361), "pounds per square inch"},
	UnitPoundPerSquareFoot: {"psf", DimPressure, scalar(47.880258980335840), "pounds per square foot"},
	UnitInchOfMercury:      {"inhg", DimPressure, scalar(3386.389), "inches of mercury"},
	UnitAtmosphere:         {"atm", DimPressure, scalar(101325), "standard atmospheres"},

	UnitWatt:       {"w", DimPower, scalar(1), "watts"},
	UnitKilowatt:   {"kw", DimPower, scalar(1000), "kilowatts"},
	UnitHorsepower: {"hp", DimPower, scalar(745.6998715822702), "horsepower"},

	UnitJoule:     {"j", DimEnergy, scalar(1), "joules"},
	UnitKilojoule: {"kj", DimEnergy, scalar(1000), "kilojoules"},
	UnitBTU:       {"btu", DimEnergy, scalar(1055.05585262), "British thermal units"},

	UnitKilogramPerCubicMeter: {"kg/m3", DimDensity, scalar(1), "kilograms per cubic meter"},
	UnitSlugPerCubicFoot:      {"slug/ft3", DimDensity, scalar(515.3788183931961), "slugs per cubic foot"},

	UnitNewtonMeter: {"nm", DimMoment, scalar(1), "newton-meters"},
	UnitFootPound:   {"ftlb", DimMoment, scalar(1.3558179483314004), "foot-pounds"},
	UnitInchPound:   {"inlb", DimMoment, scalar(0.1129848290276167), "inch-pounds"},

	UnitCelsius: {"c", DimTemperature, scalar(1), "degrees Celsius"},
	UnitFahrenheit: {"f", DimTemperature, affine(
		func(v float64) float64 { return (v - 32) / 1.8 },
		func(v float64) float64 { return v*1.8 + 32 },
	), "degrees Fahrenheit"},
	UnitKelvin: {"k", DimTemperature, affine(
		func(v float64) float64 { return v - 273.15 },
		func(v float64) float64 { return v + 273.15 },
	), "kelvins"},
	UnitRankine: {"r", DimTemperature, affine(
		func(v float64) float64 { return (v - 491.67) / 1.8 },
		func(v float64) float64 { return v*1.8 + 491.67 },
	), "degrees Rankine"},
}

// unitIDs indexes the registry by identifier for ParseUnit.
var unitIDs = func() map[string]Unit {
	ids := make(map[string]Unit, len(registry))
	for u, d := range registry {
		if d.id != "" {
			ids[d.id] = Unit(u)
		}
	}
	return ids
}()

func lookup(u Unit) (descriptor, error) {
	if u <= UnitInvalid || int(u) >= len(registry) {
		return descriptor{}, &UnknownUnitError{Unit: u}
	}
	return registry[u], nil
}

func (u Unit) String() string {
	if u <= UnitInvalid || int(u) >= len(registry) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return registry[u].id
}

// ParseUnit maps a unit identifier such as "ft" or "m/s" to its Unit value.
// Identifiers are matched case-insensitively.
func ParseUnit(id string) (Unit, error) {
	u, ok := unitIDs[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return UnitInvalid, fmt.Errorf("%w: %q", ErrUnknownUnit, id)
	}
	return u, nil
}

// Units returns every registered unit in declaration order.
func Units() []Unit {
	units := make([]Unit, 0, len(registry)-1)
	for u := range registry {
		if Unit(u) == UnitInvalid {
			continue
		}
		units = append(units, Unit(u))
	}
	return units
}

// DimensionOf returns the dimension of the quantity's unit.
func DimensionOf(q Quantity) (Dimension, error) {
	d, err := lookup(q.Unit)
	if err != nil {
		return 0, err
	}
	return d.dim, nil
}

// Describe returns the human-readable description of the quantity's unit.
func Describe(q Quantity) (string, error) {
	d, err := lookup(q.Unit)
	if err != nil {
		return "", err
	}
	return d.desc, nil
}
