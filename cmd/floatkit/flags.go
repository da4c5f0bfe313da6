package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	fallbackViewportWidth  = 1024
	fallbackViewportHeight = 768
)

// parseNumbers splits "a,b,..." into exactly n floats.
func parseNumbers(flag, value string, n int) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("--%s: expected %d comma-separated numbers, got %q", flag, n, value)
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseRect(flag, value string) (geometry.Rect, error) {
	v, err := parseNumbers(flag, value, 4)
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.NewRect(v[0], v[1], v[2], v[3]), nil
}

func parseSize(flag, value string) (geometry.Size, error) {
	v, err := parseNumbers(flag, value, 2)
	if err != nil {
		return geometry.Size{}, err
	}
	return geometry.Size{Width: v[0], Height: v[1]}, nil
}

// terminalSize reports the size of stdout when it is a terminal.
func terminalSize() (geometry.Size, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return geometry.Size{}, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return geometry.Size{}, false
	}
	return geometry.Size{Width: float64(w), Height: float64(h)}, true
}

func defaultViewport() geometry.Size {
	if size, ok := terminalSize(); ok {
		return size
	}
	return geometry.Size{Width: fallbackViewportWidth, Height: fallbackViewportHeight}
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func checkOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("--output must be one of text, json, yaml; got %q", format)
	}
}
