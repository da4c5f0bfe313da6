package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	fkerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseOptions loads and validates an options document from disk.
func ParseOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fkerrors.NewParseError(path, 0, err)
	}
	return ParseOptionsBytes(path, data)
}

// ParseOptionsBytes decodes and validates an options document. An empty
// document yields the defaults.
func ParseOptionsBytes(name string, data []byte) (*Options, error) {
	var opts Options
	if err := decodeStrict(data, &opts); err != nil {
		return nil, fkerrors.NewParseError(name, extractLine(err), err)
	}
	if err := ValidateOptions(&opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// ParseScenario loads and validates a scenario document from disk.
func ParseScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fkerrors.NewParseError(path, 0, err)
	}
	return ParseScenarioBytes(path, data)
}

// ParseScenarioBytes decodes and validates a scenario document.
func ParseScenarioBytes(name string, data []byte) (*Scenario, error) {
	var sc Scenario
	if err := decodeStrict(data, &sc); err != nil {
		return nil, fkerrors.NewParseError(name, extractLine(err), err)
	}
	if err := ValidateScenario(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
