package mag

import (
	"errors"
	"fmt"
)

// RepresentationErrorCode categorizes the closed set of ways a magnitude
// operation can fail.
type RepresentationErrorCode string

const (
	// CodeNonIntegerInIntegerType indicates a non-integer magnitude was
	// materialized into an integral representation.
	CodeNonIntegerInIntegerType RepresentationErrorCode = "NON_INTEGER_IN_INTEGER_TYPE"

	// CodeCannotFit indicates the magnitude's value lies outside the
	// destination representation's range.
	CodeCannotFit RepresentationErrorCode = "CANNOT_FIT"

	// CodeInvalidRoot indicates an even root of a negative magnitude, or
	// a zeroth root.
	CodeInvalidRoot RepresentationErrorCode = "INVALID_ROOT"

	// CodeNegativeInUnsignedType indicates a negative magnitude was
	// materialized into an unsigned representation.
	CodeNegativeInUnsignedType RepresentationErrorCode = "NEGATIVE_IN_UNSIGNED_TYPE"

	// CodeBadInput indicates a violated construction precondition, such
	// as building a magnitude from zero.
	CodeBadInput RepresentationErrorCode = "BAD_INPUT"
)

// RepresentationError is the typed outcome for a failed magnitude
// operation. Every failure is deterministic: the same input always
// produces the same outcome, so callers are expected to resolve these
// during their own setup or validation step rather than retry.
type RepresentationError struct {
	// Code identifies the failure category.
	Code RepresentationErrorCode

	// Message is a human-readable description.
	Message string

	// Magnitude is the canonical rendering of the offending magnitude,
	// when one exists.
	Magnitude string

	// Rep names the destination representation, for materialization
	// failures.
	Rep string
}

// Error implements the error interface.
func (e *RepresentationError) Error() string {
	switch {
	case e.Magnitude != "" && e.Rep != "":
		return fmt.Sprintf("%s: %s (mag=%s, rep=%s)", e.Code, e.Message, e.Magnitude, e.Rep)
	case e.Magnitude != "":
		return fmt.Sprintf("%s: %s (mag=%s)", e.Code, e.Message, e.Magnitude)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func hasCode(err error, code RepresentationErrorCode) bool {
	var re *RepresentationError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// IsNonIntegerInIntegerType reports whether err carries
// NON_INTEGER_IN_INTEGER_TYPE. Uses errors.As to handle wrapped errors.
func IsNonIntegerInIntegerType(err error) bool {
	return hasCode(err, CodeNonIntegerInIntegerType)
}

// IsCannotFit reports whether err carries CANNOT_FIT.
func IsCannotFit(err error) bool {
	return hasCode(err, CodeCannotFit)
}

// IsInvalidRoot reports whether err carries INVALID_ROOT.
func IsInvalidRoot(err error) bool {
	return hasCode(err, CodeInvalidRoot)
}

// IsNegativeInUnsignedType reports whether err carries
// NEGATIVE_IN_UNSIGNED_TYPE.
func IsNegativeInUnsignedType(err error) bool {
	return hasCode(err, CodeNegativeInUnsignedType)
}

// IsBadInput reports whether err carries BAD_INPUT.
func IsBadInput(err error) bool {
	return hasCode(err, CodeBadInput)
}
