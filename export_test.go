package ascent

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"gonum.org/v1/gonum/floats/scalar"
)

func readExport(t *testing.T, data string) [][]string {
	r := csv.NewReader(strings.NewReader(data))
	r.Comment = '#'
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %s", err)
	}
	return records
}

func TestExportCSV(t *testing.T) {
	fl := FlightLog{{0, 10.19, 101202.6, 14.93, 10.19}, {1, 20.26, 100959.7, 14.8, 30.45}}
	var buf bytes.Buffer
	if err := ExportCSV(&buf, fl, ExportConfig{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "# Creation date (UTC)") {
		t.Fatal("missing header")
	}
	records := readExport(t, buf.String())
	if len(records) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "time,speed,pressure,temperature,altitude" {
		t.Fatalf("invalid columns %v", records[0])
	}
	if strings.Join(records[2], ",") != "1,20.26,100959.70,14.80,30.45" {
		t.Fatalf("invalid row %v", records[2])
	}
}

func TestExportCSVJulian(t *testing.T) {
	start := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	fl := FlightLog{{0, 1, 1, 1, 1}, {1, 2, 2, 2, 2}}
	var buf bytes.Buffer
	if err := ExportCSV(&buf, fl, ExportConfig{Start: start}); err != nil {
		t.Fatal(err)
	}
	records := readExport(t, buf.String())
	if records[0][5] != "jd" {
		t.Fatalf("missing jd column: %v", records[0])
	}
	if records[1][5] != "2451545.000000" {
		t.Fatalf("invalid J2000 date %s", records[1][5])
	}
	exp := julian.TimeToJD(start.Add(time.Second))
	if !scalar.EqualWithinAbs(exp-2451545, 1/86400., 1e-9) {
		t.Fatalf("one second is not one second: %f", exp)
	}
}

func TestExportFile(t *testing.T) {
	fl, err := RunSimulation(SmallRocket, HybridEngine, Clear, 5)
	if err != nil {
		t.Fatal(err)
	}
	conf := ExportConfig{Filename: filepath.Join(t.TempDir(), "flight.csv")}
	if conf.IsUseless() {
		t.Fatal("config with a filename is useful")
	}
	name, err := Export(fl, conf)
	if err != nil {
		t.Fatal(err)
	}
	if name != conf.Filename {
		t.Fatalf("wrote to %s instead of %s", name, conf.Filename)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if records := readExport(t, string(data)); len(records) != len(fl)+1 {
		t.Fatalf("expected %d rows, got %d", len(fl)+1, len(records))
	}
	conf.Timestamp = true
	if p := conf.Path(); !strings.HasPrefix(p, strings.TrimSuffix(conf.Filename, ".csv")+"-") || !strings.HasSuffix(p, ".csv") {
		t.Fatalf("invalid stamped path %s", p)
	}
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("empty config is useless")
	}
}
