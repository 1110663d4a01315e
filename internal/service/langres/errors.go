package langres

import "errors"

// Load failures. The scanner wraps these with the offending line and its
// number, so callers can both match with errors.Is and report the exact
// location.
var (
	ErrNoSection      = errors.New("data before section heading")
	ErrUnknownSection = errors.New("unexpected section")
	ErrMalformedLine  = errors.New("malformed line")
	ErrRedundantEntry = errors.New("redundant entry")
)
