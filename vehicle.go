package ascent

import (
	"fmt"
	"math"
	"strings"
)

// Rocket defines the airframe of the vehicle.
type Rocket struct {
	Name            string
	Mass            float64 // kg
	DragCoefficient float64
	Area            float64 // cross section in m^2
}

// Validate returns a ConfigurationError if the rocket cannot fly.
func (r Rocket) Validate() error {
	if err := mustBePositive("rocket.mass", r.Mass); err != nil {
		return err
	}
	if err := mustBePositive("rocket.drag", r.DragCoefficient); err != nil {
		return err
	}
	return mustBePositive("rocket.area", r.Area)
}

// Weight returns the weight of the rocket in N.
func (r Rocket) Weight() float64 {
	return r.Mass * G0
}

func (r Rocket) String() string {
	return fmt.Sprintf("%s (m=%.1f kg, Cd=%.2f, A=%.3f m^2)", r.Name, r.Mass, r.DragCoefficient, r.Area)
}

// Engine defines a constant thrust engine. Fuel is not modeled.
type Engine struct {
	Name   string
	Thrust float64 // N
}

// Validate returns a ConfigurationError if the thrust is negative.
func (e Engine) Validate() error {
	if e.Thrust < 0 || math.IsNaN(e.Thrust) || math.IsInf(e.Thrust, 0) {
		return &ConfigurationError{"engine.thrust", e.Thrust, "must be finite and not negative"}
	}
	return nil
}

func (e Engine) String() string {
	return fmt.Sprintf("%s (%.1f N)", e.Name, e.Thrust)
}

// Weather scales the standard atmosphere uniformly for the whole flight.
type Weather struct {
	Name           string
	PressureFactor float64
	TempOffset     float64 // K
	DensityFactor  float64
}

// Validate returns a ConfigurationError if the weather is not physical.
func (w Weather) Validate() error {
	if err := mustBePositive("weather.pressure_factor", w.PressureFactor); err != nil {
		return err
	}
	if err := mustBePositive("weather.density_factor", w.DensityFactor); err != nil {
		return err
	}
	if math.IsNaN(w.TempOffset) || math.IsInf(w.TempOffset, 0) {
		return &ConfigurationError{"weather.temp_offset", w.TempOffset, "must be finite"}
	}
	if T0+w.TempOffset <= 0 {
		return &ConfigurationError{"weather.temp_offset", w.TempOffset, "leads to a sea level temperature below 0 K"}
	}
	return nil
}

func (w Weather) String() string {
	return fmt.Sprintf("%s (P×%.2f, T%+.1f K, ρ×%.2f)", w.Name, w.PressureFactor, w.TempOffset, w.DensityFactor)
}

/* Presets */

// SmallRocket is a sounding rocket.
var SmallRocket = Rocket{"Small", 500, 0.5, math.Pi * 0.5 * 0.5}

// MediumRocket is the reference vehicle.
var MediumRocket = Rocket{"Medium", 1000, 0.75, math.Pi}

// LargeRocket is heavy and wide.
var LargeRocket = Rocket{"Large", 5000, 0.8, math.Pi * 2 * 2}

// SolidEngine is a solid rocket motor.
var SolidEngine = Engine{"Solid", 1e6}

// LiquidEngine is a liquid fueled engine.
var LiquidEngine = Engine{"Liquid", 2.5e6}

// HybridEngine is a hybrid motor.
var HybridEngine = Engine{"Hybrid", 5e5}

// IonEngine cannot lift anything off the pad.
var IonEngine = Engine{"Ion", 0.5}

// Clear is the standard atmosphere.
var Clear = Weather{"Clear", 1, 0, 1}

// Cloudy weather.
var Cloudy = Weather{"Cloudy", 0.99, -2, 1.01}

// Rainy weather.
var Rainy = Weather{"Rainy", 0.98, -5, 1.03}

// Stormy weather.
var Stormy = Weather{"Stormy", 0.95, -8, 1.05}

// Hot weather.
var Hot = Weather{"Hot", 1, 15, 0.95}

// Rockets returns the rocket presets, smallest first.
func Rockets() []Rocket {
	return []Rocket{SmallRocket, MediumRocket, LargeRocket}
}

// Engines returns the engine presets.
func Engines() []Engine {
	return []Engine{SolidEngine, LiquidEngine, HybridEngine, IonEngine}
}

// WeatherConditions returns the weather presets.
func WeatherConditions() []Weather {
	return []Weather{Clear, Cloudy, Rainy, Stormy, Hot}
}

// RocketFromString returns the rocket preset from its name.
func RocketFromString(name string) (Rocket, error) {
	switch strings.ToLower(name) {
	case "small":
		return SmallRocket, nil
	case "medium":
		return MediumRocket, nil
	case "large":
		return LargeRocket, nil
	default:
		return Rocket{}, fmt.Errorf("undefined rocket '%s'", name)
	}
}

// EngineFromString returns the engine preset from its name.
func EngineFromString(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "solid":
		return SolidEngine, nil
	case "liquid":
		return LiquidEngine, nil
	case "hybrid":
		return HybridEngine, nil
	case "ion":
		return IonEngine, nil
	default:
		return Engine{}, fmt.Errorf("undefined engine '%s'", name)
	}
}

// WeatherFromString returns the weather preset from its name.
func WeatherFromString(name string) (Weather, error) {
	switch strings.ToLower(name) {
	case "clear":
		return Clear, nil
	case "cloudy":
		return Cloudy, nil
	case "rainy":
		return Rainy, nil
	case "stormy":
		return Stormy, nil
	case "hot":
		return Hot, nil
	default:
		return Weather{}, fmt.Errorf("undefined weather '%s'", name)
	}
}
