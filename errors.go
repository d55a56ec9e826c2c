package textblock

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidCursor is returned by mutations on a freed cursor, a
	// cursor of another Textblock, or a closed Textblock.
	ErrInvalidCursor = errors.New("textblock: invalid cursor")

	// ErrResourceExhausted is returned when an edit would exceed a
	// configured limit. The document is left unchanged.
	ErrResourceExhausted = errors.New("textblock: resource exhausted")

	// ErrNoFormat is returned when no base format could be resolved
	// because the font loader failed.
	ErrNoFormat = errors.New("textblock: no format")
)

// ResourceError reports an edit rejected by a configured limit.
type ResourceError struct {
	// Op is the rejected operation, e.g. "insert".
	Op string
	// Limit names the limit, "length" or "paragraphs".
	Limit string
	// Max is the configured maximum.
	Max int
	// Requested is the size the edit would have produced.
	Requested int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("textblock: %s: %s %d exceeds limit %d", e.Op, e.Limit, e.Requested, e.Max)
}

// Is makes errors.Is(err, ErrResourceExhausted) true.
func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceExhausted
}

// InvariantError describes an internal inconsistency between the document
// and its cached layout. It is logged and the query degrades to "not
// found"; it is never caused by caller input.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return "textblock: " + e.Op + ": internal invariant violated: " + e.Detail
}

// invariant logs an InvariantError at Warn level.
func invariant(op, detail string) {
	Logger().Warn("textblock: invariant", "err", &InvariantError{Op: op, Detail: detail})
}
