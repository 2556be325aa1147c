package protoclass

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMember = errors.New("unknown member")
	ErrNotCallable   = errors.New("member is not a method")
	ErrDepthExceeded = errors.New("class chain exceeds max depth")
)

// MemberError reports a failed member lookup or call.
type MemberError struct {
	Owner  string
	Member string
	Err    error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Owner, e.Err, e.Member)
}

func (e *MemberError) Unwrap() error { return e.Err }

// Phase identifies the step of Instance that failed or is being traced.
type Phase string

const (
	PhaseConstructor Phase = "constructor"
	PhaseSuper       Phase = "super"
	PhasePrivate     Phase = "private"
	PhasePublic      Phase = "public"
	PhaseConstruct   Phase = "construct"
)

// InstantiationError wraps an error returned by a user constructor or
// construct initializer. Errors from superclass levels are wrapped once per
// level, innermost first.
type InstantiationError struct {
	Class string
	Phase Phase
	Err   error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("instantiate %s (%s): %v", e.Class, e.Phase, e.Err)
}

func (e *InstantiationError) Unwrap() error { return e.Err }
