package ascent

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Columns of FlightLog.Matrix.
const (
	ColTime = iota
	ColSpeed
	ColPressure
	ColTemperature
	ColAltitude
	numCols
)

// FlightRecord is the state of the flight at the end of a given second.
// All values are rounded to two decimals.
type FlightRecord struct {
	Time        int     // s
	Speed       float64 // m/s
	Pressure    float64 // Pa
	Temperature float64 // °C
	Altitude    float64 // m
}

func (r FlightRecord) String() string {
	return fmt.Sprintf("t=%ds v=%.2fm/s P=%.2fPa T=%.2f°C h=%.2fm", r.Time, r.Speed, r.Pressure, r.Temperature, r.Altitude)
}

// FlightLog is the chronological list of records of a flight.
type FlightLog []FlightRecord

// Matrix returns the log as a len(l) x 5 matrix, one row per record, with the columns
// ordered as ColTime, ColSpeed, ColPressure, ColTemperature, ColAltitude.
// Returns nil for an empty log.
func (l FlightLog) Matrix() *mat.Dense {
	if len(l) == 0 {
		return nil
	}
	m := mat.NewDense(len(l), numCols, nil)
	for i, r := range l {
		m.SetRow(i, []float64{float64(r.Time), r.Speed, r.Pressure, r.Temperature, r.Altitude})
	}
	return m
}

// Summary stores the highlights of a flight.
type Summary struct {
	Records          int
	Apex             float64 // m
	ApexTime         int     // s
	MaxSpeed         float64 // m/s
	MaxSpeedTime     int     // s
	FinalPressure    float64 // Pa
	FinalTemperature float64 // °C
	TerminalVelocity float64 // m/s, only set by Flight.Summary
	CeilingReached   bool    // whether the speed was capped at the terminal velocity
}

func (s Summary) String() string {
	str := fmt.Sprintf("apex %.2f m @ %ds, max speed %.2f m/s @ %ds, final P=%.2f Pa T=%.2f °C", s.Apex, s.ApexTime, s.MaxSpeed, s.MaxSpeedTime, s.FinalPressure, s.FinalTemperature)
	if s.TerminalVelocity > 0 {
		str += fmt.Sprintf(", vt=%.2f m/s", s.TerminalVelocity)
		if s.CeilingReached {
			str += " (reached)"
		}
	}
	return str
}

// Summary returns the summary of this log.
func (l FlightLog) Summary() Summary {
	if len(l) == 0 {
		return Summary{}
	}
	m := l.Matrix()
	alt := mat.Col(nil, ColAltitude, m)
	speed := mat.Col(nil, ColSpeed, m)
	apexIdx := floats.MaxIdx(alt)
	speedIdx := floats.MaxIdx(speed)
	last := l[len(l)-1]
	return Summary{
		Records:          len(l),
		Apex:             alt[apexIdx],
		ApexTime:         l[apexIdx].Time,
		MaxSpeed:         speed[speedIdx],
		MaxSpeedTime:     l[speedIdx].Time,
		FinalPressure:    last.Pressure,
		FinalTemperature: last.Temperature,
	}
}
