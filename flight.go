// Package ascent simulates the vertical ascent of a constant thrust rocket through a simplified troposphere.
package ascent

import (
	"fmt"
	"math"
	"strings"

	"github.com/ChristopherRabotin/ascent/integrator"
	kitlog "github.com/go-kit/kit/log"
)

const (
	// StepSize is the integration step in seconds.
	StepSize = 1.0
	// MaxDuration is the longest flight which can be simulated, in seconds.
	MaxDuration = 86400
)

// defaultLogger is the logger of new flights, silent unless SetDefaultLogger is called.
var defaultLogger kitlog.Logger = kitlog.NewNopLogger()

// SetDefaultLogger sets the logger used by flights created afterwards, including those of RunSimulation.
func SetDefaultLogger(logger kitlog.Logger) {
	defaultLogger = logger
}

// Method defines the integration scheme of a flight.
type Method uint8

const (
	// SemiImplicitEuler updates the velocity first, and then the altitude with the new velocity.
	SemiImplicitEuler Method = iota + 1
	// RK4 uses a classical Runge Kutta on the altitude and velocity.
	RK4
)

func (m Method) String() string {
	switch m {
	case SemiImplicitEuler:
		return "euler"
	case RK4:
		return "rk4"
	default:
		panic("unknown integration method")
	}
}

// MethodFromString returns the method from its name.
func MethodFromString(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "", "euler":
		return SemiImplicitEuler, nil
	case "rk4":
		return RK4, nil
	default:
		return 0, fmt.Errorf("undefined integration method '%s'", name)
	}
}

// TerminalVelocity returns the terminal velocity of the rocket in m/s given the sea level air density.
func TerminalVelocity(r Rocket, seaLevelDensity float64) float64 {
	return math.Sqrt(2 * r.Mass * G0 / (seaLevelDensity * r.DragCoefficient * r.Area))
}

// Flight defines a vertical ascent and does the integration.
type Flight struct {
	Name     string
	Rocket   Rocket
	Engine   Engine
	Weather  Weather
	Duration int // s
	Method   Method
	atm      Atmosphere
	vt       float64 // frozen at its sea level value
	// Integration state, owned by a single run.
	altitude, velocity float64
	records            FlightLog
	capped             bool
	logger             kitlog.Logger
}

// NewFlight returns a new validated Flight. A ConfigurationError is returned
// if any of the profiles or the duration is invalid.
func NewFlight(name string, r Rocket, e Engine, w Weather, duration int, method Method) (*Flight, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, &ConfigurationError{"flight.duration", float64(duration), "must be positive"}
	}
	if duration > MaxDuration {
		return nil, &ConfigurationError{"flight.duration", float64(duration), fmt.Sprintf("exceeds %d s", MaxDuration)}
	}
	if method == 0 {
		method = SemiImplicitEuler
	} else if method != SemiImplicitEuler && method != RK4 {
		return nil, &ConfigurationError{"flight.method", float64(method), "is undefined"}
	}
	atm := NewAtmosphere(w)
	klog := kitlog.With(defaultLogger, "flight", name)
	return &Flight{
		Name:     name,
		Rocket:   r,
		Engine:   e,
		Weather:  w,
		Duration: duration,
		Method:   method,
		atm:      atm,
		vt:       TerminalVelocity(r, atm.SeaLevelDensity()),
		logger:   klog,
	}, nil
}

// RunSimulation integrates a flight with the semi implicit Euler method and returns
// its duration+1 records.
func RunSimulation(r Rocket, e Engine, w Weather, duration int) (FlightLog, error) {
	f, err := NewFlight("ascent", r, e, w, duration, SemiImplicitEuler)
	if err != nil {
		return nil, err
	}
	return f.Run(), nil
}

// SetLogger sets the logger of this flight.
func (f *Flight) SetLogger(logger kitlog.Logger) {
	f.logger = logger
}

// TerminalVelocity returns the speed ceiling of this flight.
func (f *Flight) TerminalVelocity() float64 {
	return f.vt
}

// Records returns the records of the last run.
func (f *Flight) Records() FlightLog {
	return f.records
}

// Run integrates the flight from the pad and returns one record per second, from 0 to Duration
// inclusive. Each record is taken after the step of that second, so even the first one has moved.
// Run may be called several times and always returns the same records.
func (f *Flight) Run() FlightLog {
	f.altitude, f.velocity = 0, 0
	f.capped = false
	f.records = make(FlightLog, 0, f.Duration+1)
	f.logger.Log("level", "info", "subsys", "flight", "rocket", f.Rocket, "engine", f.Engine, "weather", f.Weather, "duration(s)", f.Duration, "method", f.Method, "vt(m/s)", f.vt)
	if f.Engine.Thrust <= f.Rocket.Weight() {
		f.logger.Log("level", "warning", "subsys", "flight", "message", "thrust does not exceed weight", "thrust(N)", f.Engine.Thrust, "weight(N)", f.Rocket.Weight())
	}

	switch f.Method {
	case RK4:
		integrator.NewRK4(0, StepSize, f).Solve()
	default:
		for t := 0; t <= f.Duration; t++ {
			f.step()
			f.records = append(f.records, f.record(t))
		}
	}

	s := f.records.Summary()
	f.logger.Log("level", "notice", "subsys", "flight", "status", "finished", "records", s.Records, "apex(m)", s.Apex, "max speed(m/s)", s.MaxSpeed)
	return f.records
}

// Summary returns the summary of the last run.
func (f *Flight) Summary() Summary {
	s := f.records.Summary()
	s.TerminalVelocity = f.vt
	s.CeilingReached = f.capped
	return s
}

// drag returns the drag force opposing a velocity v at the provided altitude.
func (f *Flight) drag(altitude, v float64) float64 {
	return 0.5 * f.atm.Density(altitude) * v * math.Abs(v) * f.Rocket.DragCoefficient * f.Rocket.Area
}

// acceleration returns the net acceleration at the provided altitude and velocity.
func (f *Flight) acceleration(altitude, v float64) float64 {
	netForce := f.Engine.Thrust - f.drag(altitude, v) - f.Rocket.Mass*G0
	return netForce / f.Rocket.Mass
}

// limit clamps the velocity to [0, vt], ascent only.
func (f *Flight) limit(v float64) float64 {
	if v > f.vt && !f.capped {
		f.capped = true
		f.logger.Log("level", "warning", "subsys", "flight", "message", "speed capped at terminal velocity", "altitude(m)", f.altitude, "vt(m/s)", f.vt)
	}
	return clamp(v, 0, f.vt)
}

// step performs one semi implicit Euler step: the altitude uses the updated velocity.
func (f *Flight) step() {
	f.velocity = f.limit(f.velocity + f.acceleration(f.altitude, f.velocity)*StepSize)
	f.altitude += f.velocity * StepSize
}

func (f *Flight) record(t int) FlightRecord {
	return FlightRecord{
		Time:        t,
		Speed:       round(f.velocity),
		Pressure:    round(f.atm.Pressure(f.altitude)),
		Temperature: round(f.atm.Celsius(f.altitude)),
		Altitude:    round(f.altitude),
	}
}

/* integrator.Integrable implementation, used by the RK4 method. */

// GetState returns the altitude and velocity.
func (f *Flight) GetState() []float64 {
	return []float64{f.altitude, f.velocity}
}

// SetState sets the state at the end of the i-th second and records it.
func (f *Flight) SetState(i uint64, s []float64) {
	f.velocity = f.limit(s[1])
	f.altitude = math.Max(f.altitude, s[0])
	f.records = append(f.records, f.record(int(i)))
}

// Stop returns true once the record of the last second has been written.
func (f *Flight) Stop(i uint64) bool {
	return i > uint64(f.Duration)
}

// Func returns the derivatives of the altitude and velocity. The vehicle never descends:
// it rests on the pad rather than falling through it.
func (f *Flight) Func(t float64, s []float64) []float64 {
	v := clamp(s[1], 0, f.vt)
	acc := f.acceleration(s[0], v)
	if v <= 0 && acc < 0 {
		acc = 0
	}
	return []float64{v, acc}
}
