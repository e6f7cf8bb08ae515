package aero

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// densityPoint is one row of a density-ratio table: the ratio of air density
// at the given altitude to the density at sea level.
type densityPoint struct {
	AltitudeFt   float64 `yaml:"altitude_ft"`
	DensityRatio float64 `yaml:"density_ratio"`
}

// Atmosphere interpolates air density ratios from a fixed altitude table.
// The zero value is not usable; construct one with StandardAtmosphere or
// AtmosphereFromYAML.
type Atmosphere struct {
	table []densityPoint
}

// StandardAtmosphere returns the built-in 5-point density-ratio table.
func StandardAtmosphere() Atmosphere {
	return Atmosphere{table: []densityPoint{
		{AltitudeFt: 0, DensityRatio: 1.0},
		{AltitudeFt: 5000, DensityRatio: 0.86},
		{AltitudeFt: 10000, DensityRatio: 0.74},
		{AltitudeFt: 15000, DensityRatio: 0.63},
		{AltitudeFt: 20000, DensityRatio: 0.53},
	}}
}

// AtmosphereFromYAML loads a replacement density-ratio table. The document is
// a YAML list of {altitude_ft, density_ratio} entries; altitudes must be
// strictly increasing and the table must not be empty.
func AtmosphereFromYAML(r io.Reader) (Atmosphere, error) {
	var table []densityPoint
	if err := yaml.NewDecoder(r).Decode(&table); err != nil {
		return Atmosphere{}, fmt.Errorf("decoding density table: %w", err)
	}
	if len(table) == 0 {
		return Atmosphere{}, errors.New("density table is empty")
	}
	for i, p := range table {
		if p.DensityRatio <= 0 {
			return Atmosphere{}, fmt.Errorf("density table entry %d: density_ratio must be positive", i)
		}
		if i > 0 && p.AltitudeFt <= table[i-1].AltitudeFt {
			return Atmosphere{}, fmt.Errorf("density table entry %d: altitudes must be strictly increasing", i)
		}
	}
	return Atmosphere{table: table}, nil
}

// DensityRatio returns the density ratio at the given altitude in feet,
// linearly interpolated between table points and clamped at the table ends.
func (a Atmosphere) DensityRatio(altitudeFt float64) float64 {
	t := a.table
	if altitudeFt <= t[0].AltitudeFt {
		return t[0].DensityRatio
	}
	last := t[len(t)-1]
	if altitudeFt >= last.AltitudeFt {
		return last.DensityRatio
	}
	for i := 1; i < len(t); i++ {
		if altitudeFt <= t[i].AltitudeFt {
			lo, hi := t[i-1], t[i]
			frac := (altitudeFt - lo.AltitudeFt) / (hi.AltitudeFt - lo.AltitudeFt)
			return lo.DensityRatio + frac*(hi.DensityRatio-lo.DensityRatio)
		}
	}
	return last.DensityRatio
}
