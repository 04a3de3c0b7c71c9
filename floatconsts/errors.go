package floatconsts

import (
	"errors"
	"fmt"
	"strconv"
)

const resumableDefault = false

// ErrInvariantViolation matches, via errors.Is, every *InvariantViolation.
var ErrInvariantViolation error = errors.New("floatconsts: invariant violation")

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable reports whether the
	// data the error refers to is still
	// usable after the error.
	Resumable() bool
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error leaves the table usable.
func Resumable(e error) bool {
	var fe Error
	if errors.As(e, &fe) {
		return fe.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with the name of the check or field that
// produced it. Underlying errors can be retrieved using Cause() or
// errors.Unwrap.
func WrapError(err error, ctx string) error {
	if err == nil {
		return nil
	}
	return errWrapped{cause: err, ctx: ctx}
}

type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	}
	return e.cause.Error()
}

func (e errWrapped) Resumable() bool { return Resumable(e.cause) }

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

// Check names one condition of the bit-mask partition invariant.
type Check uint8

const (
	CheckCoverage Check = iota + 1
	CheckSignExp
	CheckSignSignif
	CheckExpSignif
)

func (c Check) String() string {
	switch c {
	case CheckCoverage:
		return "sign|exp|signif coverage"
	case CheckSignExp:
		return "sign&exp overlap"
	case CheckSignSignif:
		return "sign&signif overlap"
	case CheckExpSignif:
		return "exp&signif overlap"
	default:
		return "check(" + strconv.Itoa(int(c)) + ")"
	}
}

// InvariantViolation is returned when the sign, exponent and
// significand masks of a Layout do not partition a 32-bit word.
// The layout it came from must not be used.
type InvariantViolation struct {
	Check Check  // the condition that failed
	Got   uint32 // union or intersection that was computed
	Want  uint32 // value it should have had
}

// Error implements the error interface
func (v *InvariantViolation) Error() string {
	return "floatconsts: bit masks fail " + v.Check.String() +
		": got " + hex32(v.Got) + ", want " + hex32(v.Want)
}

// Resumable is always 'false' for InvariantViolation
func (v *InvariantViolation) Resumable() bool { return false }

// Is reports whether target is ErrInvariantViolation.
func (v *InvariantViolation) Is(target error) bool { return target == ErrInvariantViolation }

func hex32(u uint32) string { return fmt.Sprintf("0x%08X", u) }
