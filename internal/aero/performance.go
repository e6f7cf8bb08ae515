package aero

import (
	"errors"
	"fmt"
	"math"

	"github.com/zjrosen/aeroquant/internal/quantity"
)

// dynamicPressureCoefficient converts a squared speed in mph to a sea-level
// dynamic pressure in psf (half the sea-level air density in those units).
const dynamicPressureCoefficient = 0.00256

// foot-pounds of work per minute delivered by one horsepower.
const footPoundsPerHorsepowerMinute = 33000

// DynamicPressure computes the dynamic pressure q for a true airspeed at an
// altitude: q = 0.00256 · V² · σ with V in mph. The speed may be supplied in
// any velocity unit and the altitude in any length unit; the result is in
// pounds per square foot.
func DynamicPressure(speed, altitude quantity.Quantity, atm Atmosphere) (quantity.Quantity, error) {
	v, err := quantity.Convert(speed, quantity.UnitMilePerHour)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("dynamic pressure: %w", err)
	}
	alt, err := quantity.Convert(altitude, quantity.UnitFoot)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("dynamic pressure: %w", err)
	}

	seaLevel := quantity.New(dynamicPressureCoefficient*v.Value*v.Value, quantity.UnitPoundPerSquareFoot)
	scaled, err := quantity.Multiply(quantity.Number(atm.DensityRatio(alt.Value)), seaLevel)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("dynamic pressure: %w", err)
	}
	return scaled.(quantity.Quantity), nil
}

// Lift computes L = CL · q · S for a lift coefficient, true airspeed,
// altitude, and wing area. The result is a force in the registry's base
// force unit.
func Lift(cl float64, speed, altitude, wingArea quantity.Quantity, atm Atmosphere) (quantity.Quantity, error) {
	return aeroForce("lift", cl, speed, altitude, wingArea, atm)
}

// Drag computes D = CD · q · S with the same inputs as Lift.
func Drag(cd float64, speed, altitude, wingArea quantity.Quantity, atm Atmosphere) (quantity.Quantity, error) {
	return aeroForce("drag", cd, speed, altitude, wingArea, atm)
}

func aeroForce(name string, coefficient float64, speed, altitude, wingArea quantity.Quantity, atm Atmosphere) (quantity.Quantity, error) {
	q, err := DynamicPressure(speed, altitude, atm)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("%s: %w", name, err)
	}
	// pressure × area resolves to a force through the relation table.
	qs, err := quantity.Multiply(q, wingArea)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("%s: %w", name, err)
	}
	force, err := quantity.Multiply(quantity.Number(coefficient), qs)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("%s: %w", name, err)
	}
	return force.(quantity.Quantity), nil
}

// StallSpeed computes the speed at which the wing can no longer support the
// aircraft's weight: Vs = √(W/S ÷ (CLmax · 0.00256 · σ)) with the weight in
// lbf and the wing area in ft². The result is in miles per hour.
func StallSpeed(weight, wingArea quantity.Quantity, clMax float64, altitude quantity.Quantity, atm Atmosphere) (quantity.Quantity, error) {
	if clMax <= 0 {
		return quantity.Quantity{}, errors.New("stall speed: maximum lift coefficient must be positive")
	}
	w, err := quantity.Convert(weight, quantity.UnitPoundForce)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("stall speed: %w", err)
	}
	s, err := quantity.Convert(wingArea, quantity.UnitSquareFoot)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("stall speed: %w", err)
	}
	if s.Value <= 0 {
		return quantity.Quantity{}, errors.New("stall speed: wing area must be positive")
	}
	alt, err := quantity.Convert(altitude, quantity.UnitFoot)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("stall speed: %w", err)
	}

	sigma := atm.DensityRatio(alt.Value)
	vs := math.Sqrt(w.Value / (s.Value * clMax * dynamicPressureCoefficient * sigma))
	return quantity.New(vs, quantity.UnitMilePerHour), nil
}

// RateOfClimb computes the climb rate from excess power:
// RC = 33000 · (Pavail − Prequired) / W with powers in hp and weight in lbf.
// The powers may be supplied in different units; the subtraction converts the
// right operand into the left operand's unit. The result is in feet per
// minute.
func RateOfClimb(powerAvailable, powerRequired, weight quantity.Quantity) (quantity.Quantity, error) {
	excess, err := quantity.Subtract(powerAvailable, powerRequired)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("rate of climb: %w", err)
	}
	hp, err := quantity.Convert(excess.(quantity.Quantity), quantity.UnitHorsepower)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("rate of climb: %w", err)
	}
	w, err := quantity.Convert(weight, quantity.UnitPoundForce)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("rate of climb: %w", err)
	}
	if w.Value <= 0 {
		return quantity.Quantity{}, errors.New("rate of climb: weight must be positive")
	}
	return quantity.New(footPoundsPerHorsepowerMinute*hp.Value/w.Value, quantity.UnitFootPerMinute), nil
}
