package ascent

import "math"

// Physical constants shared by the atmosphere model and the flight integrator.
const (
	// G0 is the standard gravitational acceleration in m/s^2.
	G0 = 9.80665
	// R is the specific gas constant of dry air in J/(kg·K).
	R = 287.05
	// P0 is the sea level pressure in Pa.
	P0 = 101325.0
	// T0 is the sea level temperature in K.
	T0 = 288.15
	// LapseRate is the tropospheric temperature lapse rate in K/m.
	LapseRate = -0.0065
	// Rho0 is the sea level air density in kg/m^3.
	Rho0 = 1.225
	// ScaleHeight is the altitude over which the air density decays by a factor of e, in m.
	ScaleHeight = 8500.0
	// Ceiling is the top of the linear lapse rate layer, in m.
	Ceiling = 11000.0
	// kelvin0 is 0°C in Kelvin.
	kelvin0 = 273.15
)

// clampAltitude caps the altitude to the validity range of the troposphere model.
func clampAltitude(altitude float64) float64 {
	return math.Min(altitude, Ceiling)
}

// TemperatureAt returns the temperature in Kelvin at the provided altitude (in meters),
// shifted by tempOffset (in Kelvin).
func TemperatureAt(altitude, tempOffset float64) float64 {
	return T0 + LapseRate*clampAltitude(altitude) + tempOffset
}

// PressureAt returns the pressure in Pa at the provided altitude (in meters) using the
// barometric formula, scaled by pressureFactor.
func PressureAt(altitude, pressureFactor float64) float64 {
	tLocal := T0 + LapseRate*clampAltitude(altitude)
	return P0 * math.Pow(tLocal/T0, -G0/(LapseRate*R)) * pressureFactor
}

// DensityAt returns the air density in kg/m^3 at the provided altitude using an exponential
// decay from the provided sea level density. This is not clamped to the ceiling.
func DensityAt(altitude, seaLevelDensity float64) float64 {
	return seaLevelDensity * math.Exp(-altitude/ScaleHeight)
}

// Atmosphere is the atmosphere as modified by a given weather.
type Atmosphere struct {
	Weather Weather
}

// NewAtmosphere returns the atmosphere for this weather.
func NewAtmosphere(w Weather) Atmosphere {
	return Atmosphere{w}
}

// SeaLevelDensity returns the sea level air density for this weather.
func (a Atmosphere) SeaLevelDensity() float64 {
	return Rho0 * a.Weather.DensityFactor
}

// Density returns the air density at the provided altitude.
func (a Atmosphere) Density(altitude float64) float64 {
	return DensityAt(altitude, a.SeaLevelDensity())
}

// Pressure returns the pressure in Pa at the provided altitude.
func (a Atmosphere) Pressure(altitude float64) float64 {
	return PressureAt(altitude, a.Weather.PressureFactor)
}

// Temperature returns the temperature in Kelvin at the provided altitude.
func (a Atmosphere) Temperature(altitude float64) float64 {
	return TemperatureAt(altitude, a.Weather.TempOffset)
}

// Celsius returns the temperature in °C at the provided altitude.
func (a Atmosphere) Celsius(altitude float64) float64 {
	return a.Temperature(altitude) - kelvin0
}
