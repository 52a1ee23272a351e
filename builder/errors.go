// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Constructors attach context using %w (see impl_*.go).
//   - Constructors and WithX options never panic; only the IDFn helpers
//     (e.g. SymbolIDFn) panic on an out-of-range index.
package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, n1, n2, ...) is
// smaller than the allowed minimum for the requested shape.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that BuildGraph could not apply a
// constructor, e.g. a nil Constructor was passed in.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix constructor list */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s", method, inner)
}
