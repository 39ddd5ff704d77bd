// internal/equation/errors.go
//
// Validation failure taxonomy for the equation engine.
// Every rejected input maps to exactly one Kind; the Kind is part of the
// observable contract because callers localize and display it.

package equation

import (
	"errors"
	"fmt"
)

// Kind classifies why an equation was rejected.
type Kind int

const (
	KindNone Kind = iota
	KindWrongLength
	KindInvalidCharacter
	KindMissingOrMultipleEquals
	KindEqualsPositionInvalid
	KindRightSideNotNumeric
	KindLeadingZero
	KindMalformedExpression
	KindArithmeticMismatch
	KindNonIntegerResult
)

var (
	ErrWrongLength             = errors.New("equation must be exactly 8 characters")
	ErrInvalidCharacter        = errors.New("equation contains an invalid character")
	ErrMissingOrMultipleEquals = errors.New("equation must contain exactly one '='")
	ErrEqualsPositionInvalid   = errors.New("'=' is in an invalid position")
	ErrRightSideNotNumeric     = errors.New("right side must be a number")
	ErrLeadingZero             = errors.New("numbers cannot have leading zeros")
	ErrMalformedExpression     = errors.New("left side is not a valid expression")
	ErrArithmeticMismatch      = errors.New("equation does not compute")
	ErrNonIntegerResult        = errors.New("result must be a whole number")
)

var kindInfo = [...]struct {
	code string
	err  error
}{
	KindNone:                    {"", nil},
	KindWrongLength:             {"WRONG_LENGTH", ErrWrongLength},
	KindInvalidCharacter:        {"INVALID_CHARACTER", ErrInvalidCharacter},
	KindMissingOrMultipleEquals: {"MISSING_OR_MULTIPLE_EQUALS", ErrMissingOrMultipleEquals},
	KindEqualsPositionInvalid:   {"EQUALS_POSITION_INVALID", ErrEqualsPositionInvalid},
	KindRightSideNotNumeric:     {"RIGHT_SIDE_NOT_NUMERIC", ErrRightSideNotNumeric},
	KindLeadingZero:             {"LEADING_ZERO", ErrLeadingZero},
	KindMalformedExpression:     {"MALFORMED_EXPRESSION", ErrMalformedExpression},
	KindArithmeticMismatch:      {"ARITHMETIC_MISMATCH", ErrArithmeticMismatch},
	KindNonIntegerResult:        {"NON_INTEGER_RESULT", ErrNonIntegerResult},
}

// Kinds lists every failure kind in check order.
func Kinds() []Kind {
	return []Kind{
		KindWrongLength,
		KindInvalidCharacter,
		KindMissingOrMultipleEquals,
		KindEqualsPositionInvalid,
		KindRightSideNotNumeric,
		KindLeadingZero,
		KindMalformedExpression,
		KindArithmeticMismatch,
		KindNonIntegerResult,
	}
}

// Code is the stable machine-readable name of k, e.g. "WRONG_LENGTH".
func (k Kind) Code() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return "UNKNOWN"
	}
	return kindInfo[k].code
}

func (k Kind) String() string {
	if k == KindNone {
		return "NONE"
	}
	return k.Code()
}

// MarshalText encodes k as its code so JSON payloads carry "WRONG_LENGTH"
// rather than an integer.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Code()), nil
}

// Err returns the sentinel error for k, or nil for KindNone.
func (k Kind) Err() error {
	if k < 0 || int(k) >= len(kindInfo) {
		return nil
	}
	return kindInfo[k].err
}

// ValidationError reports a rejected equation.
type ValidationError struct {
	Kind  Kind
	Input string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid equation %q: %v", e.Input, e.Kind.Err())
}

func (e *ValidationError) Unwrap() error { return e.Kind.Err() }

func reject(input string, k Kind) error {
	return &ValidationError{Kind: k, Input: input}
}

// KindOf extracts the failure kind from err. It returns KindNone for nil
// and for errors that did not come from this package.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	for _, k := range Kinds() {
		if errors.Is(err, k.Err()) {
			return k
		}
	}
	return KindNone
}
