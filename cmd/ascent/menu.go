package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChristopherRabotin/ascent"
)

// errAborted is returned when the input ends before a choice is made.
var errAborted = errors.New("input closed before the flight was configured")

// prompter asks questions until a valid answer is given.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{bufio.NewScanner(in), out}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errAborted
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// choose returns the zero based index of the chosen option.
func (p *prompter) choose(title string, options []fmt.Stringer) (int, error) {
	fmt.Fprintf(p.out, "%s:\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt)
	}
	for {
		answer, err := p.ask(fmt.Sprintf("Select [1-%d]: ", len(options)))
		if err != nil {
			return -1, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "invalid choice `%s`\n", answer)
	}
}

// duration returns a positive number of seconds.
func (p *prompter) duration() (int, error) {
	for {
		answer, err := p.ask("Flight duration (s): ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		switch {
		case err != nil || n <= 0:
			fmt.Fprintf(p.out, "duration must be a positive integer, got `%s`\n", answer)
		case n > ascent.MaxDuration:
			fmt.Fprintf(p.out, "duration may not exceed %d s\n", ascent.MaxDuration)
		default:
			return n, nil
		}
	}
}

// selectScenario builds the scenario from the user's answers.
func selectScenario(p *prompter) (*ascent.Scenario, error) {
	s := &ascent.Scenario{Name: "ascent", Method: ascent.SemiImplicitEuler}

	rockets := ascent.Rockets()
	opts := make([]fmt.Stringer, len(rockets))
	for i, r := range rockets {
		opts[i] = r
	}
	idx, err := p.choose("Rocket size", opts)
	if err != nil {
		return nil, err
	}
	s.Rocket = rockets[idx]

	engines := ascent.Engines()
	opts = make([]fmt.Stringer, len(engines))
	for i, e := range engines {
		opts[i] = e
	}
	if idx, err = p.choose("Engine type", opts); err != nil {
		return nil, err
	}
	s.Engine = engines[idx]

	weather := ascent.WeatherConditions()
	opts = make([]fmt.Stringer, len(weather))
	for i, w := range weather {
		opts[i] = w
	}
	if idx, err = p.choose("Weather condition", opts); err != nil {
		return nil, err
	}
	s.Weather = weather[idx]

	if s.Duration, err = p.duration(); err != nil {
		return nil, err
	}
	return s, nil
}
