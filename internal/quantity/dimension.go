package quantity

// Dimension identifies a physical quantity category, independent of any
// specific unit.
type Dimension int

const (
	DimMass Dimension = iota
	DimLength
	DimTime
	DimArea
	DimVolume
	DimVelocity
	DimAcceleration
	DimForce
	DimPressure
	DimPower
	DimEnergy
	DimDensity
	DimMoment
	DimTemperature
)

var dimensionNames = [...]string{
	DimMass:         "mass",
	DimLength:       "length",
	DimTime:         "time",
	DimArea:         "area",
	DimVolume:       "volume",
	DimVelocity:     "velocity",
	DimAcceleration: "acceleration",
	DimForce:        "force",
	DimPressure:     "pressure",
	DimPower:        "power",
	DimEnergy:       "energy",
	DimDensity:      "density",
	DimMoment:       "moment",
	DimTemperature:  "temperature",
}

func (d Dimension) String() string {
	if d < 0 || int(d) >= len(dimensionNames) {
		return "unknown"
	}
	return dimensionNames[d]
}

// Dimensions returns every dimension in declaration order.
func Dimensions() []Dimension {
	dims := make([]Dimension, len(dimensionNames))
	for i := range dims {
		dims[i] = Dimension(i)
	}
	return dims
}
