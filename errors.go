package bilag

import "errors"

// Error kinds returned by the conversion pipeline. They are always wrapped
// with context, use errors.Is to test for them.
var (
	ErrFileOpen     = errors.New("cannot open input file")
	ErrDecode       = errors.New("cannot decode input")
	ErrSchema       = errors.New("invalid record")
	ErrLocaleDecode = errors.New("invalid amount")
	ErrWrite        = errors.New("cannot write output")
)
