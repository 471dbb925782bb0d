package platform

import (
	"errors"
	"fmt"
)

// Kind classifies a platform failure so call sites can pick a policy.
type Kind int

const (
	KindOther Kind = iota
	// KindNotFound: unknown chat, user or pending join request.
	KindNotFound
	// KindForbidden: the bot lacks rights in the target chat.
	KindForbidden
	// KindUnreachable: the recipient cannot be messaged.
	KindUnreachable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindUnreachable:
		return "unreachable"
	default:
		return "other"
	}
}

// Error is returned by every ChatPlatform method on failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified platform error.
func NewError(op string, kind Kind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of a platform error. Errors from outside the
// platform layer classify as KindOther.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindOther
}

// IsKind reports whether err is a platform error of the given kind.
func IsKind(err error, kind Kind) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Kind == kind
}
