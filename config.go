package ascent

import (
	"fmt"

	"github.com/spf13/viper"
)

// Scenario is a flight read from a TOML file.
type Scenario struct {
	Name     string
	Rocket   Rocket
	Engine   Engine
	Weather  Weather
	Duration int
	Method   Method
	Export   ExportConfig
}

// LoadScenario reads the scenario from the provided TOML file.
// Each of the rocket, engine and weather sections may set a `preset`, whose values are
// overwritten by any explicit key of that section.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return scenarioFrom(v)
}

func scenarioFrom(v *viper.Viper) (*Scenario, error) {
	v.SetDefault("flight.name", "ascent")
	v.SetDefault("flight.method", "euler")

	s := &Scenario{Name: v.GetString("flight.name"), Duration: v.GetInt("flight.duration")}
	var err error
	if s.Rocket, err = readRocket(v); err != nil {
		return nil, err
	}
	if s.Engine, err = readEngine(v); err != nil {
		return nil, err
	}
	if s.Weather, err = readWeather(v); err != nil {
		return nil, err
	}
	if s.Method, err = MethodFromString(v.GetString("flight.method")); err != nil {
		return nil, err
	}
	s.Export = ExportConfig{Filename: v.GetString("export.csv"), Timestamp: v.GetBool("export.timestamp")}
	if v.IsSet("flight.start") {
		s.Export.Start = v.GetTime("flight.start")
		if s.Export.Start.IsZero() {
			return nil, fmt.Errorf("could not understand flight.start `%s`", v.GetString("flight.start"))
		}
	}
	return s, nil
}

func readRocket(v *viper.Viper) (r Rocket, err error) {
	r.Name = "Custom"
	if v.IsSet("rocket.preset") {
		if r, err = RocketFromString(v.GetString("rocket.preset")); err != nil {
			return
		}
	}
	if v.IsSet("rocket.mass") {
		r.Mass = v.GetFloat64("rocket.mass")
	}
	if v.IsSet("rocket.drag") {
		r.DragCoefficient = v.GetFloat64("rocket.drag")
	}
	if v.IsSet("rocket.area") {
		r.Area = v.GetFloat64("rocket.area")
	}
	return
}

func readEngine(v *viper.Viper) (e Engine, err error) {
	e.Name = "Custom"
	if v.IsSet("engine.preset") {
		if e, err = EngineFromString(v.GetString("engine.preset")); err != nil {
			return
		}
	}
	if v.IsSet("engine.thrust") {
		e.Thrust = v.GetFloat64("engine.thrust")
	}
	return
}

func readWeather(v *viper.Viper) (w Weather, err error) {
	// The standard atmosphere unless told otherwise.
	w = Clear
	if v.IsSet("weather.preset") {
		if w, err = WeatherFromString(v.GetString("weather.preset")); err != nil {
			return
		}
	} else if v.IsSet("weather") {
		w.Name = "Custom"
	}
	if v.IsSet("weather.pressure_factor") {
		w.PressureFactor = v.GetFloat64("weather.pressure_factor")
	}
	if v.IsSet("weather.temp_offset") {
		w.TempOffset = v.GetFloat64("weather.temp_offset")
	}
	if v.IsSet("weather.density_factor") {
		w.DensityFactor = v.GetFloat64("weather.density_factor")
	}
	return
}

// Flight returns the validated flight of this scenario.
func (s *Scenario) Flight() (*Flight, error) {
	return NewFlight(s.Name, s.Rocket, s.Engine, s.Weather, s.Duration, s.Method)
}
