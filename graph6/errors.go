package graph6

import "errors"

// ErrDecoding indicates malformed graph6, sparse6, or directed-format input.
var ErrDecoding = errors.New("graph6: malformed input")
