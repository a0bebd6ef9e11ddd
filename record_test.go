package ascent

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestFlightLogMatrix(t *testing.T) {
	fl := FlightLog{
		{0, 10, 101000, 14, 10},
		{1, 20, 100800, 13.9, 30},
		{2, 15, 100700, 13.8, 45},
	}
	m := fl.Matrix()
	if r, c := m.Dims(); r != 3 || c != 5 {
		t.Fatalf("invalid dimensions %dx%d", r, c)
	}
	if !floats.Equal(mat.Col(nil, ColTime, m), []float64{0, 1, 2}) {
		t.Fatal("invalid time column")
	}
	if !floats.Equal(mat.Row(nil, 1, m), []float64{1, 20, 100800, 13.9, 30}) {
		t.Fatalf("invalid row\n%v", mat.Formatted(m))
	}
	if (FlightLog{}).Matrix() != nil {
		t.Fatal("empty log should not have a matrix")
	}
}

func TestFlightLogSummary(t *testing.T) {
	fl := FlightLog{
		{0, 10, 101000, 14, 10},
		{1, 20, 100800, 13.9, 30},
		{2, 15, 100700, 13.8, 45},
		{3, 15, 100700, 13.8, 45},
	}
	s := fl.Summary()
	exp := Summary{Records: 4, Apex: 45, ApexTime: 2, MaxSpeed: 20, MaxSpeedTime: 1, FinalPressure: 100700, FinalTemperature: 13.8}
	if s != exp {
		t.Fatalf("got %+v\nexp %+v", s, exp)
	}
	if (FlightLog{}).Summary() != (Summary{}) {
		t.Fatal("empty log should have an empty summary")
	}
}
