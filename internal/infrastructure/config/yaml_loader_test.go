package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
)

const scenarioYAML = `name: demo
viewport: {width: 800, height: 600}
elements:
  - {name: button, rect: {x: 100, y: 0, width: 40, height: 20}}
  - {name: tooltip, rect: {width: 120, height: 40}}
anchor: button
floating: tooltip
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestScenarioLoaderLoadSuccess(t *testing.T) {
	loader := NewScenarioLoader(logging.NewNoOpLogger())
	path := writeFile(t, "scenario.yaml", scenarioYAML)

	sc, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sc.Name != "demo" {
		t.Fatalf("expected name demo, got %s", sc.Name)
	}
	if sc.Anchor != "button" || sc.Floating != "tooltip" {
		t.Fatalf("unexpected anchor/floating: %s/%s", sc.Anchor, sc.Floating)
	}
}

func TestOptionsLoaderResolvesDefaults(t *testing.T) {
	loader := NewOptionsLoader(logging.NewNoOpLogger())
	path := writeFile(t, "options.yaml", "side: left\nside_offset: 4\n")

	opts, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if opts.Placement.Side != geometry.SideLeft {
		t.Fatalf("expected left, got %s", opts.Placement.Side)
	}
	if !opts.AvoidCollisions {
		t.Fatal("expected collision avoidance to default on")
	}
	if opts.SideOffset != 4 {
		t.Fatalf("expected side offset 4, got %v", opts.SideOffset)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewScenarioLoader(nil)
	_, err := loader.Load(context.Background(), "does-not-exist.yaml")
	assertDomainError(t, err, geometry.ErrCodeNotFound)
}

func TestLoaderParseError(t *testing.T) {
	loader := NewOptionsLoader(nil)
	path := writeFile(t, "bad.yaml", "side: [")
	_, err := loader.Load(context.Background(), path)
	assertDomainError(t, err, geometry.ErrCodeValidation)
}

func TestLoaderValidationError(t *testing.T) {
	loader := NewScenarioLoader(nil)
	path := writeFile(t, "invalid.yaml", scenarioYAML+"arrow: missing\n")
	_, err := loader.Load(context.Background(), path)
	assertDomainError(t, err, geometry.ErrCodeValidation)

	var domainErr *geometry.DomainError
	errors.As(err, &domainErr)
	if domainErr.Context["field"] != "arrow" {
		t.Fatalf("expected field arrow, got %v", domainErr.Context["field"])
	}
}

func TestLoaderCancelled(t *testing.T) {
	loader := NewScenarioLoader(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, "whatever.yaml")
	assertDomainError(t, err, geometry.ErrCodeState)
}

func TestLoaderValidate(t *testing.T) {
	loader := NewScenarioLoader(nil)
	path := writeFile(t, "scenario.yml", scenarioYAML)
	if err := loader.Validate(context.Background(), path); err != nil {
		t.Fatalf("expected validate success, got %v", err)
	}

	txt := writeFile(t, "scenario.txt", scenarioYAML)
	assertDomainError(t, loader.Validate(context.Background(), txt), geometry.ErrCodeValidation)
	assertDomainError(t, loader.Validate(context.Background(), t.TempDir()), geometry.ErrCodeValidation)
}

func assertDomainError(t *testing.T, err error, code geometry.ErrorCode) {
	t.Helper()
	var domainErr *geometry.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if domainErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, domainErr.Code)
	}
}
