package aero

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/aeroquant/internal/quantity"
)

func TestDynamicPressure_SeaLevel(t *testing.T) {
	q, err := DynamicPressure(
		quantity.New(175, quantity.UnitMilePerHour),
		quantity.New(0, quantity.UnitFoot),
		StandardAtmosphere(),
	)
	require.NoError(t, err)
	assert.Equal(t, quantity.UnitPoundPerSquareFoot, q.Unit)
	assert.InDelta(t, 78.4, q.Value, 1e-9)
}

func TestDynamicPressure_AtAltitude(t *testing.T) {
	q, err := DynamicPressure(
		quantity.New(175, quantity.UnitMilePerHour),
		quantity.New(15000, quantity.UnitFoot),
		StandardAtmosphere(),
	)
	require.NoError(t, err)
	assert.InDelta(t, 49.392, q.Value, 1e-9)
}

// TestDynamicPressure_ConvertsSpeedUnits verifies the speed input may be in
// any velocity unit; 100 kt is 115.0779448 mph.
func TestDynamicPressure_ConvertsSpeedUnits(t *testing.T) {
	q, err := DynamicPressure(
		quantity.New(100, quantity.UnitKnot),
		quantity.New(0, quantity.UnitMeter),
		StandardAtmosphere(),
	)
	require.NoError(t, err)
	assert.InDelta(t, 33.9019, q.Value, 1e-3)
}

func TestDynamicPressure_RejectsWrongDimensions(t *testing.T) {
	atm := StandardAtmosphere()

	_, err := DynamicPressure(
		quantity.New(175, quantity.UnitFoot), // a length, not a velocity
		quantity.New(0, quantity.UnitFoot),
		atm,
	)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)

	_, err = DynamicPressure(
		quantity.New(175, quantity.UnitMilePerHour),
		quantity.New(0, quantity.UnitSecond), // a time, not a length
		atm,
	)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestLift(t *testing.T) {
	lift, err := Lift(
		0.5,
		quantity.New(175, quantity.UnitMilePerHour),
		quantity.New(0, quantity.UnitFoot),
		quantity.New(200, quantity.UnitSquareFoot),
		StandardAtmosphere(),
	)
	require.NoError(t, err)
	assert.Equal(t, quantity.UnitNewton, lift.Unit)

	// 0.5 · 78.4 psf · 200 ft² = 7840 lbf.
	inPounds, err := quantity.Convert(lift, quantity.UnitPoundForce)
	require.NoError(t, err)
	assert.InDelta(t, 7840, inPounds.Value, 1e-6)
}

func TestDrag(t *testing.T) {
	drag, err := Drag(
		0.05,
		quantity.New(175, quantity.UnitMilePerHour),
		quantity.New(0, quantity.UnitFoot),
		quantity.New(200, quantity.UnitSquareFoot),
		StandardAtmosphere(),
	)
	require.NoError(t, err)

	inPounds, err := quantity.Convert(drag, quantity.UnitPoundForce)
	require.NoError(t, err)
	assert.InDelta(t, 784, inPounds.Value, 1e-6)
}

func TestStallSpeed(t *testing.T) {
	atm := StandardAtmosphere()
	weight := quantity.New(2000, quantity.UnitPoundForce)
	area := quantity.New(200, quantity.UnitSquareFoot)

	seaLevel, err := StallSpeed(weight, area, 1.5, quantity.New(0, quantity.UnitFoot), atm)
	require.NoError(t, err)
	assert.Equal(t, quantity.UnitMilePerHour, seaLevel.Unit)
	assert.InDelta(t, 51.03104, seaLevel.Value, 1e-4)

	// Thinner air raises the stall speed by 1/√σ.
	atAltitude, err := StallSpeed(weight, area, 1.5, quantity.New(20000, quantity.UnitFoot), atm)
	require.NoError(t, err)
	assert.InDelta(t, seaLevel.Value/math.Sqrt(0.53), atAltitude.Value, 1e-9)
}

func TestStallSpeed_Invalid(t *testing.T) {
	atm := StandardAtmosphere()
	alt := quantity.New(0, quantity.UnitFoot)

	_, err := StallSpeed(
		quantity.New(2000, quantity.UnitKilogram), // a mass, not a force
		quantity.New(200, quantity.UnitSquareFoot), 1.5, alt, atm)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)

	_, err = StallSpeed(
		quantity.New(2000, quantity.UnitPoundForce),
		quantity.New(200, quantity.UnitSquareFoot), 0, alt, atm)
	require.Error(t, err)

	_, err = StallSpeed(
		quantity.New(2000, quantity.UnitPoundForce),
		quantity.New(0, quantity.UnitSquareFoot), 1.5, alt, atm)
	require.Error(t, err)
}

func TestRateOfClimb(t *testing.T) {
	rc, err := RateOfClimb(
		quantity.New(200, quantity.UnitHorsepower),
		quantity.New(120, quantity.UnitHorsepower),
		quantity.New(2500, quantity.UnitPoundForce),
	)
	require.NoError(t, err)
	assert.Equal(t, quantity.UnitFootPerMinute, rc.Unit)
	assert.InDelta(t, 1056, rc.Value, 1e-9)
}

// TestRateOfClimb_MixedPowerUnits verifies the subtraction converts the
// required power into the available power's unit.
func TestRateOfClimb_MixedPowerUnits(t *testing.T) {
	rc, err := RateOfClimb(
		quantity.New(200, quantity.UnitHorsepower),
		quantity.New(74569.98715822702, quantity.UnitWatt), // 100 hp
		quantity.New(2500, quantity.UnitPoundForce),
	)
	require.NoError(t, err)
	assert.InDelta(t, 1320, rc.Value, 1e-6)
}

func TestRateOfClimb_Invalid(t *testing.T) {
	_, err := RateOfClimb(
		quantity.New(200, quantity.UnitHorsepower),
		quantity.New(120, quantity.UnitPoundForce), // a force, not a power
		quantity.New(2500, quantity.UnitPoundForce),
	)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)

	_, err = RateOfClimb(
		quantity.New(200, quantity.UnitHorsepower),
		quantity.New(120, quantity.UnitHorsepower),
		quantity.New(0, quantity.UnitPoundForce),
	)
	require.Error(t, err)
}
