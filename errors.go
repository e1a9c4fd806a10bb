package markup

import (
	"errors"
	"fmt"
)

// ErrWrongContent is the error kind for content a construct cannot accept.
// Every *WrongContentError matches it with errors.Is.
var ErrWrongContent = errors.New("wrong content")

// WrongContentError is returned by constructors if their input cannot be
// normalized into the shape the construct expects. Construction fails as a
// whole; there will never be a partially initialized construct.
type WrongContentError struct {
	Tag     string // name of the element the construct represents, e.g. "style"
	Content any    // the offending input value
	Reason  string // human readable explanation
}

// WrongContent creates a WrongContentError for an element and the offending content.
func WrongContent(tag string, content any, reason string) *WrongContentError {
	tracer().P("tag", tag).Debugf("wrong content: %s", reason)
	return &WrongContentError{Tag: tag, Content: content, Reason: reason}
}

func (e *WrongContentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("<%s>: wrong content %#v", e.Tag, e.Content)
	}
	return fmt.Sprintf("<%s>: wrong content %#v: %s", e.Tag, e.Content, e.Reason)
}

// Is reports whether target is ErrWrongContent.
func (e *WrongContentError) Is(target error) bool {
	return target == ErrWrongContent
}
