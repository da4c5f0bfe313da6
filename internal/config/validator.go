package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	fkerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	elementNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("side", func(fl validator.FieldLevel) bool {
			_, err := geometry.ParseSide(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("align", func(fl validator.FieldLevel) bool {
			_, err := geometry.ParseAlignment(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("element_name", func(fl validator.FieldLevel) bool {
			return elementNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateOptions checks an options document.
func ValidateOptions(opts *Options) error {
	if opts == nil {
		return fkerrors.NewValidationError("options", "options are nil", nil)
	}
	if err := validatorInstance().Struct(opts); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateScenario performs schema and cross-reference validation.
func ValidateScenario(sc *Scenario) error {
	if sc == nil {
		return fkerrors.NewValidationError("scenario", "scenario is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(sc); err != nil {
		return convertValidationError(err)
	}
	if sc.Viewport.Width < 0 || sc.Viewport.Height < 0 {
		return fkerrors.NewValidationError("viewport", "width and height must not be negative", nil)
	}

	index := make(map[string]int, len(sc.Elements))
	for i, el := range sc.Elements {
		if el.Name == "window" {
			return fkerrors.NewValidationError(fieldForElement(i, "name"), `"window" is reserved`, nil)
		}
		if _, exists := index[el.Name]; exists {
			return fkerrors.NewValidationError(fieldForElement(i, "name"), fmt.Sprintf("duplicate element name %q", el.Name), nil)
		}
		if el.Parent != "" {
			if _, ok := index[el.Parent]; !ok {
				return fkerrors.NewValidationError(fieldForElement(i, "parent"), fmt.Sprintf("parent %q must be declared before %q", el.Parent, el.Name), nil)
			}
		}
		index[el.Name] = i
	}

	refs := []struct {
		field string
		name  string
	}{
		{"anchor", sc.Anchor},
		{"floating", sc.Floating},
		{"arrow", sc.Arrow},
	}
	for _, ref := range refs {
		if ref.name == "" {
			continue
		}
		if _, ok := index[ref.name]; !ok {
			return fkerrors.NewValidationError(ref.field, fmt.Sprintf("references unknown element %q", ref.name), nil)
		}
	}
	if sc.Anchor == sc.Floating {
		return fkerrors.NewValidationError("floating", "anchor and floating must be different elements", nil)
	}

	if err := ValidateOptions(&sc.Options); err != nil {
		return err
	}

	for i, ev := range sc.Events {
		if err := validateEvent(ev, i, index); err != nil {
			return err
		}
	}
	return nil
}

func validateEvent(ev Event, index int, elements map[string]int) error {
	target := ""
	switch ev.Type {
	case EventScroll:
		if ev.Scroll == nil {
			return fkerrors.NewValidationError(fieldForEvent(index, "type"), "scroll payload is required", nil)
		}
		target = ev.Scroll.Target
	case EventMove:
		if ev.Move == nil || ev.Move.Target == "" {
			return fkerrors.NewValidationError(fieldForEvent(index, "target"), "move requires a target element", nil)
		}
		target = ev.Move.Target
	case EventResize:
		if ev.Resize == nil {
			return fkerrors.NewValidationError(fieldForEvent(index, "type"), "resize payload is required", nil)
		}
		if err := validatorInstance().Struct(ev.Resize); err != nil {
			return convertValidationError(err)
		}
		target = ev.Resize.Target
	}
	if target == "" || target == "window" {
		if ev.Type == EventMove {
			return fkerrors.NewValidationError(fieldForEvent(index, "target"), "the window cannot be moved", nil)
		}
		return nil
	}
	if _, ok := elements[target]; !ok {
		return fkerrors.NewValidationError(fieldForEvent(index, "target"), fmt.Sprintf("references unknown element %q", target), nil)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return fkerrors.NewValidationError(field, msg, err)
	}

	return fkerrors.NewValidationError("config", err.Error(), err)
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// yamlishFieldName turns "Scenario.Options.CollisionPadding" into
// "options.collision_padding".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(camelBoundary.ReplaceAllString(part, "${1}_${2}")))
	}
	return strings.Join(lowered, ".")
}

func fieldForElement(index int, field string) string {
	return fmt.Sprintf("elements[%d].%s", index, field)
}

func fieldForEvent(index int, field string) string {
	return fmt.Sprintf("events[%d].%s", index, field)
}
