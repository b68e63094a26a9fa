package render

import (
	"fmt"
	"strings"

	"github.com/el-go/el/pkg/dom"
)

// Cause identifies why rendering failed.
type Cause uint8

const (
	CauseWrite           Cause = iota // the sink rejected a write
	CauseInvalidTagName               // tag name fails the name grammar
	CauseInvalidAttrName              // attribute name fails the name grammar
	CauseInvalidChild                 // content variant not permitted under the parent's kind
	CauseInvalidRawText               // raw text contains its element's closing tag
)

// String returns the string representation of the Cause.
func (c Cause) String() string {
	switch c {
	case CauseWrite:
		return "Write"
	case CauseInvalidTagName:
		return "InvalidTagName"
	case CauseInvalidAttrName:
		return "InvalidAttrName"
	case CauseInvalidChild:
		return "InvalidChild"
	case CauseInvalidRawText:
		return "InvalidRawText"
	default:
		return "Unknown"
	}
}

// segment is one step of the failure path, recorded while the error
// unwinds through the ancestor frames.
type segment struct {
	index int
	name  string // tag name when the child at index was an element
}

// Error describes a rendering failure: the cause plus the path from the
// root to the node that violated a rule.
type Error struct {
	// Cause classifies the failure.
	Cause Cause

	// Detail carries the offending tag name, attribute name, or raw
	// text, depending on the cause.
	Detail string

	// Err is the underlying sink error for CauseWrite.
	Err error

	// reversePath grows leaf-to-root as the error bubbles up through
	// the ancestor frames; Path reverses it for display.
	reversePath []segment
}

func newError(cause Cause, detail string) *Error {
	return &Error{Cause: cause, Detail: detail}
}

func writeError(err error) *Error {
	return &Error{Cause: CauseWrite, Err: err}
}

// at records that the error happened while processing child index of
// the current frame.
func (e *Error) at(index int, child dom.Content) *Error {
	seg := segment{index: index}
	if child.Kind == dom.ContentElement && child.Element != nil {
		seg.name = child.Element.Name
	}
	e.reversePath = append(e.reversePath, seg)
	return e
}

// Path returns the human-readable path from the topmost element to the
// node that caused the error. Segments take the form "/index(tagname)"
// when the content at that position is an element and "/index"
// otherwise, e.g. "/1(input)/0". The root path is "/".
func (e *Error) Path() string {
	if len(e.reversePath) == 0 {
		return "/"
	}
	var b strings.Builder
	for i := len(e.reversePath) - 1; i >= 0; i-- {
		seg := e.reversePath[i]
		if seg.name != "" {
			fmt.Fprintf(&b, "/%d(%s)", seg.index, seg.name)
		} else {
			fmt.Fprintf(&b, "/%d", seg.index)
		}
	}
	return b.String()
}

// Error implements the error interface.
func (e *Error) Error() string {
	var cause string
	switch e.Cause {
	case CauseWrite:
		cause = fmt.Sprintf("write: %v", e.Err)
	case CauseInvalidTagName:
		cause = fmt.Sprintf("invalid tag name %q", e.Detail)
	case CauseInvalidAttrName:
		cause = fmt.Sprintf("invalid attribute name %q", e.Detail)
	case CauseInvalidChild:
		cause = "invalid child"
	case CauseInvalidRawText:
		cause = fmt.Sprintf("invalid raw text %q", e.Detail)
	default:
		cause = "unknown cause"
	}
	return fmt.Sprintf("render error at %s: %s", e.Path(), cause)
}

// Unwrap returns the underlying sink error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
