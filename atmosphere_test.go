package ascent

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAtmosphereSeaLevel(t *testing.T) {
	for _, w := range WeatherConditions() {
		atm := NewAtmosphere(w)
		if p := atm.Pressure(0); !scalar.EqualWithinAbs(p, P0*w.PressureFactor, 1e-9) {
			t.Fatalf("[%s] P(0)=%f != %f", w.Name, p, P0*w.PressureFactor)
		}
		if c := atm.Celsius(0); !scalar.EqualWithinAbs(c, 15+w.TempOffset, 1e-9) {
			t.Fatalf("[%s] T(0)=%f °C", w.Name, c)
		}
		if rho := atm.Density(0); !scalar.EqualWithinAbs(rho, Rho0*w.DensityFactor, 1e-12) {
			t.Fatalf("[%s] ρ(0)=%f", w.Name, rho)
		}
	}
}

func TestPressureDecreasing(t *testing.T) {
	prev := PressureAt(0, 1)
	for h := 10.0; h <= Ceiling; h += 10 {
		p := PressureAt(h, 1)
		if p >= prev {
			t.Fatalf("pressure not decreasing at %f m: %f >= %f", h, p, prev)
		}
		prev = p
	}
}

func TestAtmosphereCeiling(t *testing.T) {
	pCeil := PressureAt(Ceiling, 1)
	tCeil := TemperatureAt(Ceiling, 0)
	if !scalar.EqualWithinAbs(pCeil, 22631.70, 1e-2) {
		t.Fatalf("P(11 km)=%f", pCeil)
	}
	if !scalar.EqualWithinAbs(tCeil, 216.65, 1e-9) {
		t.Fatalf("T(11 km)=%f", tCeil)
	}
	for _, h := range []float64{11001, 20000, 1e6} {
		if PressureAt(h, 1) != pCeil {
			t.Fatalf("pressure not clamped at %f m", h)
		}
		if TemperatureAt(h, 0) != tCeil {
			t.Fatalf("temperature not clamped at %f m", h)
		}
	}
	// The density is not clamped.
	if DensityAt(20000, Rho0) >= DensityAt(Ceiling, Rho0) {
		t.Fatal("density should keep decaying above the ceiling")
	}
}

func TestAtmosphereWeather(t *testing.T) {
	if p := PressureAt(1000, 0.5); !scalar.EqualWithinAbs(p, PressureAt(1000, 1)/2, 1e-9) {
		t.Fatalf("pressure factor not applied: %f", p)
	}
	if temp := TemperatureAt(1000, 10); !scalar.EqualWithinAbs(temp, T0+LapseRate*1000+10, 1e-12) {
		t.Fatalf("temperature offset not applied: %f", temp)
	}
	if rho := DensityAt(ScaleHeight, 2); !scalar.EqualWithinAbs(rho, 2/2.718281828459045, 1e-12) {
		t.Fatalf("density at one scale height: %f", rho)
	}
}
