package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvert_IdentityIsExact verifies that converting a quantity to its own
// unit returns it unchanged, for every unit in the registry.
func TestConvert_IdentityIsExact(t *testing.T) {
	for _, u := range Units() {
		t.Run(u.String(), func(t *testing.T) {
			for _, v := range []float64{0, 1, 2.5, -3.25, 144} {
				got, err := Convert(New(v, u), u)
				require.NoError(t, err)
				assert.Equal(t, New(v, u), got)
			}
		})
	}
}

func TestConvert_Linear(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{"feet to inches", 1, UnitFoot, UnitInch, 12},
		{"inches to feet", 6, UnitInch, UnitFoot, 0.5},
		{"miles to feet", 1, UnitMile, UnitFoot, 5280},
		{"nautical miles to meters", 1, UnitNauticalMile, UnitMeter, 1852},
		{"meters to centimeters", 2, UnitMeter, UnitCentimeter, 200},
		{"hours to seconds", 1.5, UnitHour, UnitSecond, 5400},
		{"square feet to square inches", 1, UnitSquareFoot, UnitSquareInch, 144},
		{"knots to meters per second", 3600, UnitKnot, UnitMeterPerSecond, 1852},
		{"kilometers per hour to meters per second", 36, UnitKilometerPerHour, UnitMeterPerSecond, 10},
		{"pounds to kilograms", 1, UnitPound, UnitKilogram, 0.45359237},
		{"atmospheres to pascals", 1, UnitAtmosphere, UnitPascal, 101325},
		{"kilowatts to watts", 1.25, UnitKilowatt, UnitWatt, 1250},
		{"gallons to liters", 1, UnitGallon, UnitLiter, 3.785411784},
		{"negative values convert", -2, UnitFoot, UnitInch, -24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(New(tt.value, tt.from), tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Unit)
			assert.InDelta(t, tt.want, got.Value, 1e-10)
		})
	}
}

// TestConvert_Affine covers the temperature conversions, which need an offset
// as well as a scale.
func TestConvert_Affine(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{"fahrenheit to celsius", 50, UnitFahrenheit, UnitCelsius, 10},
		{"celsius to fahrenheit", 10, UnitCelsius, UnitFahrenheit, 50},
		{"freezing point", 32, UnitFahrenheit, UnitCelsius, 0},
		{"boiling point", 100, UnitCelsius, UnitFahrenheit, 212},
		{"celsius to kelvin", 0, UnitCelsius, UnitKelvin, 273.15},
		{"kelvin to celsius", 373.15, UnitKelvin, UnitCelsius, 100},
		{"fahrenheit to rankine", 0, UnitFahrenheit, UnitRankine, 459.67},
		{"rankine to kelvin", 0, UnitRankine, UnitKelvin, 0},
		{"negative forty is its own image", -40, UnitFahrenheit, UnitCelsius, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(New(tt.value, tt.from), tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Unit)
			assert.InDelta(t, tt.want, got.Value, 1e-10)
		})
	}
}

// TestConvert_ExactRoundedResults asserts the exact post-rounding values the
// conversion contract guarantees.
func TestConvert_ExactRoundedResults(t *testing.T) {
	got, err := Convert(New(50, UnitFahrenheit), UnitCelsius)
	require.NoError(t, err)
	assert.Equal(t, New(10.0, UnitCelsius), got)

	got, err = Convert(New(10, UnitCelsius), UnitFahrenheit)
	require.NoError(t, err)
	assert.Equal(t, New(50.0, UnitFahrenheit), got)

	got, err = Convert(New(1, UnitFoot), UnitInch)
	require.NoError(t, err)
	assert.Equal(t, New(12.0, UnitInch), got)
}

// TestConvert_DimensionGuard verifies conversion across dimensions always
// fails with a mismatch error carrying both descriptions and dimensions.
func TestConvert_DimensionGuard(t *testing.T) {
	tests := []struct {
		name string
		from Unit
		to   Unit
	}{
		{"length to mass", UnitFoot, UnitKilogram},
		{"velocity to length", UnitKnot, UnitMeter},
		{"pressure to force", UnitPoundPerSquareFoot, UnitNewton},
		{"temperature to time", UnitCelsius, UnitSecond},
		{"area to volume", UnitSquareMeter, UnitCubicMeter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(New(1, tt.from), tt.to)
			require.ErrorIs(t, err, ErrDimensionMismatch)

			var mismatch *DimensionMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.NotEmpty(t, mismatch.FromDescription)
			assert.NotEmpty(t, mismatch.ToDescription)
			assert.NotEqual(t, mismatch.FromDimension, mismatch.ToDimension)
		})
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	_, err := Convert(Quantity{Value: 1, Unit: UnitInvalid}, UnitMeter)
	require.ErrorIs(t, err, ErrUnknownUnit)

	_, err = Convert(New(1, UnitMeter), Unit(9999))
	require.ErrorIs(t, err, ErrUnknownUnit)
}
