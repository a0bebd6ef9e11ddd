package ascent

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ExportConfig configures the exporting of a flight.
type ExportConfig struct {
	Filename  string    // CSV file path, without export if empty
	Timestamp bool      // Append the creation time to the filename
	Start     time.Time // Launch epoch, adds a Julian date column if set
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

// Path returns the path of the file to be written.
func (c ExportConfig) Path() string {
	if !c.Timestamp {
		return c.Filename
	}
	t := time.Now()
	stamp := fmt.Sprintf("-%d-%02d-%02dT%02d.%02d.%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	if idx := strings.LastIndex(c.Filename, "."); idx > 0 {
		return c.Filename[:idx] + stamp + c.Filename[idx:]
	}
	return c.Filename + stamp
}

// Create returns the export file, which requires a defer close statement!
func (c ExportConfig) Create() (*os.File, error) {
	return os.Create(c.Path())
}

// ExportCSV writes the flight log as CSV, preceded by a commented header.
func ExportCSV(w io.Writer, fl FlightLog, conf ExportConfig) error {
	withJD := !conf.Start.IsZero()
	hdr := fmt.Sprintf(`# Creation date (UTC): %s
# Records are time, speed, pressure, temperature, altitude.
#   Time in seconds since launch
#   Speed in m/s, pressure in Pa, temperature in °C, altitude in m
`, time.Now().UTC())
	if withJD {
		hdr += fmt.Sprintf("#   Launch epoch (UTC): %s, jd is a Julian date\n", conf.Start.UTC())
	}
	if _, err := io.WriteString(w, hdr); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cols := []string{"time", "speed", "pressure", "temperature", "altitude"}
	if withJD {
		cols = append(cols, "jd")
	}
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, r := range fl {
		row := []string{
			strconv.Itoa(r.Time),
			strconv.FormatFloat(r.Speed, 'f', precision, 64),
			strconv.FormatFloat(r.Pressure, 'f', precision, 64),
			strconv.FormatFloat(r.Temperature, 'f', precision, 64),
			strconv.FormatFloat(r.Altitude, 'f', precision, 64),
		}
		if withJD {
			dt := conf.Start.Add(time.Duration(r.Time) * time.Second)
			row = append(row, strconv.FormatFloat(julian.TimeToJD(dt), 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export writes the flight log to the file described by the config.
func Export(fl FlightLog, conf ExportConfig) (string, error) {
	f, err := conf.Create()
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := ExportCSV(f, fl, conf); err != nil {
		return "", err
	}
	return f.Name(), nil
}
