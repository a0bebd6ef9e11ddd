package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ChristopherRabotin/ascent"
	kitlog "github.com/go-kit/kit/log"
)

// Runs a single vertical ascent, either from a TOML scenario or from the interactive menus.

var (
	scenario string
	csvPath  string
	useRK4   bool
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file (interactive if unset)")
	flag.StringVar(&csvPath, "csv", "", "export the records to this CSV file")
	flag.BoolVar(&useRK4, "rk4", false, "integrate with RK4 instead of semi implicit Euler")
	flag.BoolVar(&verbose, "verbose", false, "log the flight on stderr")
}

func main() {
	flag.Parse()
	if verbose {
		ascent.SetDefaultLogger(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)))
	}

	var s *ascent.Scenario
	var err error
	if scenario != "" {
		if s, err = ascent.LoadScenario(scenario); err != nil {
			log.Fatal(err)
		}
	} else if s, err = selectScenario(newPrompter(os.Stdin, os.Stdout)); err != nil {
		log.Fatal(err)
	}
	if useRK4 {
		s.Method = ascent.RK4
	}
	if csvPath != "" {
		s.Export.Filename = csvPath
	}

	flight, err := s.Flight()
	if err != nil {
		log.Fatal(err)
	}
	fl := flight.Run()

	if err := writeTable(os.Stdout, fl); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\n%s\n", flight.Summary())

	if !s.Export.IsUseless() {
		name, err := ascent.Export(fl, s.Export)
		if err != nil {
			log.Fatalf("could not export: %s", err)
		}
		fmt.Printf("Saved records to %s.\n", name)
	}
}
