package mdtest

import (
	"errors"
	"fmt"
)

// ErrMerge indicates an options block was rejected by the merge capability.
//
// Returned errors wrap it; match with errors.Is(err, ErrMerge) and use
// [errors.As] with [MergeError] for the details.
var ErrMerge = errors.New("merge options block rejected")

// ErrOrphanArgument indicates a positional code block appeared before any
// heading.
//
// Returned errors wrap it; match with errors.Is(err, ErrOrphanArgument) and
// use [errors.As] with [OrphanArgumentError] for the details.
var ErrOrphanArgument = errors.New("argument block before any heading")

// MergeError reports an options block whose content the merge capability
// rejected. Parsing stops at the first failure; no test cases are returned.
//
// Use [errors.As] to extract the offending line and raw block content, and
// [errors.Is]/[errors.As] on the wrapped error to inspect the capability's
// own failure:
//
//	var mErr *mdtest.MergeError
//	if errors.As(err, &mErr) {
//	    fmt.Printf("bad options at line %d: %v\n", mErr.Line, mErr.Err)
//	}
type MergeError struct {
	// Line is the 1-based source line of the offending block's opening fence.
	Line int

	// Raw is the block's content as handed to the merge capability.
	Raw string

	// Err is the error returned by the merge capability.
	Err error
}

// Error formats as "merge options block at line N: <cause>".
func (e *MergeError) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("merge options block at line %d: %v", e.Line, e.Err)
}

// Unwrap returns [ErrMerge] and the merge capability's error for use with
// [errors.Is] and [errors.As].
func (e *MergeError) Unwrap() []error {
	if e == nil {
		return nil
	}

	return []error{ErrMerge, e.Err}
}

// OrphanArgumentError reports a positional code block that appears before
// any heading has been opened. Arguments must belong to a heading; options
// blocks, by contrast, may precede the first heading and adjust the root
// options.
//
// Use errors.Is(err, [ErrOrphanArgument]) to match this error.
type OrphanArgumentError struct {
	// Line is the 1-based source line of the block's opening fence.
	Line int
}

// Error formats as "argument block at line N appears before any heading".
func (e *OrphanArgumentError) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("argument block at line %d appears before any heading", e.Line)
}

// Unwrap returns [ErrOrphanArgument] for use with [errors.Is].
func (e *OrphanArgumentError) Unwrap() error {
	return ErrOrphanArgument
}
