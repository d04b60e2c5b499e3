// Package mp implements the multiple-precision integer engine: the
// digit-vector representation and the base arithmetic kernel (add, subtract,
// shift, multiply, square, divide) that every higher-level package in this
// module (reduce, modexp, numtheory, prime) is built on.
package mp

import "fmt"

// Kind classifies the way an operation failed.
type Kind int

const (
	// Unknown is the catch-all for states that should be unreachable.
	Unknown Kind = iota
	// Memory means a growth or allocation request could not be satisfied.
	Memory
	// InvalidInput means an operation's precondition was not met.
	InvalidInput
	// IterationLimit means a bounded iterative algorithm exceeded its retry ceiling.
	IterationLimit
)

func (k Kind) String() string {
	switch k {
	case Memory:
		return "memory"
	case InvalidInput:
		return "invalid input"
	case IterationLimit:
		return "iteration limit"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every operation in this module.
// It is never a sentinel: callers compare against Kind via errors.As, or
// use the KindOf helper below.
type Error struct {
	Op   string // operation that failed, e.g. "mp.Div"
	Kind Kind
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, kind Kind) *Error {
	return &Error{Op: op, Kind: kind}
}

func wrapError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf reports the Kind of err if it is (or wraps) an *Error, else Unknown.
func KindOf(err error) Kind {
	var e *Error
	if as(err, &e) {
		return e.Kind
	}
	return Unknown
}

// as is a tiny errors.As shim kept local to avoid importing errors twice
// across this file and callers that also want errors.Is/As on our Error.
func as(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
