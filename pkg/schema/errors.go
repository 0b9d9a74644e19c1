// Package schema defines the on-disk JSON formats for project metadata,
// saved maps, and saved prefabs, and the validation and construction code
// that turns them into live wang.WangSet / autotile / prefab values.
package schema

import "fmt"

// SchemaError reports a structurally invalid document: wrong version,
// missing required field, wrong shape.
type SchemaError struct {
	Context string
	Err     error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s: %v", e.Context, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func newSchemaError(context string, format string, args ...any) *SchemaError {
	return &SchemaError{Context: context, Err: fmt.Errorf(format, args...)}
}

// ReferentialError reports a document that is structurally valid but
// refers to something that doesn't exist: an unknown wangset name, an
// unregistered color id, a missing prefab.
type ReferentialError struct {
	Context string
	Err     error
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("schema: %s: %v", e.Context, e.Err)
}

func (e *ReferentialError) Unwrap() error { return e.Err }

func newReferentialError(context string, format string, args ...any) *ReferentialError {
	return &ReferentialError{Context: context, Err: fmt.Errorf(format, args...)}
}

// ResolutionGap reports that the autotile resolver had no variant to
// offer for some cell. It is not a loading error; it surfaces failures
// encountered while a loaded map is painted or baked.
type ResolutionGap struct {
	X, Y int
	Err  error
}

func (e *ResolutionGap) Error() string {
	return fmt.Sprintf("schema: resolution gap at (%d,%d): %v", e.X, e.Y, e.Err)
}

func (e *ResolutionGap) Unwrap() error { return e.Err }

// IOError wraps a filesystem or encoding failure encountered while
// loading or saving a document.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("schema: %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
