package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/alexisbeaulieu97/floatkit/internal/application/popper"
	cfgpkg "github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
	fkerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

// YAMLLoader implements the ConfigLoader port by reading YAML files from disk.
type YAMLLoader[T any] struct {
	logger ports.Logger
	kind   string
	parse  func(path string) (*T, error)
}

// NewOptionsLoader loads option documents and resolves them against the
// engine defaults.
func NewOptionsLoader(logger ports.Logger) *YAMLLoader[popper.Options] {
	return &YAMLLoader[popper.Options]{
		logger: logger,
		kind:   "options",
		parse: func(path string) (*popper.Options, error) {
			doc, err := cfgpkg.ParseOptions(path)
			if err != nil {
				return nil, err
			}
			resolved, err := doc.Resolve()
			if err != nil {
				return nil, err
			}
			return &resolved, nil
		},
	}
}

// NewScenarioLoader loads scenario documents.
func NewScenarioLoader(logger ports.Logger) *YAMLLoader[cfgpkg.Scenario] {
	return &YAMLLoader[cfgpkg.Scenario]{
		logger: logger,
		kind:   "scenario",
		parse:  cfgpkg.ParseScenario,
	}
}

// Load reads, decodes and validates the document at path.
func (l *YAMLLoader[T]) Load(ctx context.Context, path string) (*T, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	l.logDebug(ctx, "loading configuration", map[string]interface{}{"path": path, "kind": l.kind})

	doc, err := l.parse(path)
	if err != nil {
		l.logError(ctx, "failed to load configuration", err, map[string]interface{}{"path": path, "kind": l.kind})
		return nil, convertError(err, path)
	}

	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	l.logInfo(ctx, "configuration loaded", map[string]interface{}{"path": path, "kind": l.kind})
	return doc, nil
}

// Validate checks the path and loads the document without returning it.
func (l *YAMLLoader[T]) Validate(ctx context.Context, path string) error {
	if err := contextCheck(ctx); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		l.logError(ctx, "configuration path stat failed", err, map[string]interface{}{"path": path})
		return convertError(err, path)
	}
	if info.IsDir() {
		return domainError(geometry.ErrCodeValidation, "configuration path is a directory", nil, map[string]interface{}{"path": path})
	}

	ext := filepath.Ext(path)
	switch ext {
	case ".yaml", ".yml":
		_, err = l.Load(ctx, path)
	default:
		err = domainError(geometry.ErrCodeValidation, "unsupported configuration file extension", nil, map[string]interface{}{"path": path, "extension": ext})
	}

	return err
}

var (
	_ ports.ConfigLoader[popper.Options]  = (*YAMLLoader[popper.Options])(nil)
	_ ports.ConfigLoader[cfgpkg.Scenario] = (*YAMLLoader[cfgpkg.Scenario])(nil)
)

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}
	var domainErr *geometry.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.WithContext(map[string]interface{}{"path": path})
	}
	var parseErr *fkerrors.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, os.ErrNotExist) {
			return domainError(geometry.ErrCodeNotFound, "configuration not found", parseErr.Err, map[string]interface{}{"path": path})
		}
		return domainError(geometry.ErrCodeValidation, "invalid configuration syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}
	var valErr *fkerrors.ValidationError
	if errors.As(err, &valErr) {
		context := map[string]interface{}{"path": path}
		if valErr.Field != "" {
			context["field"] = valErr.Field
		}
		return domainError(geometry.ErrCodeValidation, valErr.Message, err, context)
	}
	if errors.Is(err, os.ErrNotExist) {
		return domainError(geometry.ErrCodeNotFound, "configuration not found", err, map[string]interface{}{"path": path})
	}
	return domainError(geometry.ErrCodeInternal, "configuration load failed", err, map[string]interface{}{"path": path})
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return domainError(geometry.ErrCodeState, "operation cancelled", err, nil)
	}
	return nil
}

func domainError(code geometry.ErrorCode, message string, cause error, ctx map[string]interface{}) *geometry.DomainError {
	return geometry.NewDomainError(code, message, cause, ctx)
}

func (l *YAMLLoader[T]) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader[T]) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader[T]) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
