package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so callers can branch on the failure mode
// without parsing messages.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation means caller-supplied data violates a field constraint.
	KindValidation
	// KindAuthorization means the credential is missing or invalid.
	KindAuthorization
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
	// KindEmptyPrompt means a generation request carried an empty seed.
	KindEmptyPrompt
	// KindUpstreamTimeout means the generation service did not answer in time.
	KindUpstreamTimeout
	// KindUpstream means the generation service returned an error or a
	// malformed payload.
	KindUpstream
	// KindStoreUnavailable means the persistence layer is unreachable.
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindEmptyPrompt:
		return "empty_prompt"
	case KindUpstreamTimeout:
		return "upstream_timeout"
	case KindUpstream:
		return "upstream"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

// Error carries a human-readable message plus a machine-checkable kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match two apperr values by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// New creates a tagged error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error with a kind and message.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Validation creates a KindValidation error.
func Validation(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

// Authorization creates a KindAuthorization error.
func Authorization(format string, args ...any) *Error {
	return New(KindAuthorization, format, args...)
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// KindOf reports the kind of err, or KindUnknown for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
