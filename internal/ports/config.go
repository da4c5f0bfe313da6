package ports

import "context"

// ConfigLoader loads placement documents from an external source such as the
// filesystem. Implementations must respect context cancellation and
// translate infrastructure failures into domain error codes:
//   - io/fs.ErrNotExist -> ErrCodeNotFound
//   - YAML syntax or schema failures -> ErrCodeValidation
//   - context cancellation -> ErrCodeState with the ctx error as cause
//
// T is the decoded document type (options or scenario).
type ConfigLoader[T any] interface {
	Load(ctx context.Context, path string) (*T, error)
	Validate(ctx context.Context, path string) error
}
