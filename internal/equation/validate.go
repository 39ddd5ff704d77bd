// internal/equation/validate.go
//
// Strict equation validation.
// Checks run in a fixed order and stop at the first failure, so the
// reported Kind for a given input is deterministic:
//
//	1. length == 8                       → WRONG_LENGTH
//	2. characters in 0-9 + - * / =       → INVALID_CHARACTER
//	3. exactly one '='                   → MISSING_OR_MULTIPLE_EQUALS
//	4. '=' at index 4..6                 → EQUALS_POSITION_INVALID
//	5. right side all digits             → RIGHT_SIDE_NOT_NUMERIC
//	6. right side has no leading zero    → LEADING_ZERO
//	7. left side is well-formed          → MALFORMED_EXPRESSION
//	8. left side evaluates to right side → NON_INTEGER_RESULT / ARITHMETIC_MISMATCH

package equation

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// Length is the fixed size of every equation.
	Length = 8
	// Alphabet is the set of characters an equation may contain.
	Alphabet = "0123456789+-*/="

	minEqualsIndex = 4
	maxEqualsIndex = 6
)

// Result is the tagged outcome of a validation.
type Result struct {
	Valid  bool `json:"valid"`
	Reason Kind `json:"reason,omitempty"`
}

// Check validates input and returns the outcome as data.
func Check(input string) Result {
	if err := Validate(input); err != nil {
		return Result{Reason: KindOf(err)}
	}
	return Result{Valid: true}
}

// Validate returns nil when input is a well-formed, arithmetically true
// equation, or a *ValidationError describing the first rule it breaks.
func Validate(input string) error {
	if utf8.RuneCountInString(input) != Length {
		return reject(input, KindWrongLength)
	}
	for _, r := range input {
		if !strings.ContainsRune(Alphabet, r) {
			return reject(input, KindInvalidCharacter)
		}
	}
	// Only ASCII from here on, so byte indexes are character indexes.
	if strings.Count(input, "=") != 1 {
		return reject(input, KindMissingOrMultipleEquals)
	}
	eq := strings.IndexByte(input, '=')
	if eq < minEqualsIndex || eq > maxEqualsIndex {
		return reject(input, KindEqualsPositionInvalid)
	}

	left, right := input[:eq], input[eq+1:]
	for i := 0; i < len(right); i++ {
		if !isDigit(right[i]) {
			return reject(input, KindRightSideNotNumeric)
		}
	}
	if len(right) > 1 && right[0] == '0' {
		return reject(input, KindLeadingZero)
	}
	if _, err := Tokenize(left); err != nil {
		return reject(input, KindMalformedExpression)
	}

	got, err := EvaluateInt(left)
	if err != nil {
		if errors.Is(err, ErrNonIntegerResult) {
			return reject(input, KindNonIntegerResult)
		}
		return reject(input, KindArithmeticMismatch)
	}
	want, err := strconv.ParseInt(right, 10, 64)
	if err != nil || got < 0 || got != want {
		return reject(input, KindArithmeticMismatch)
	}
	return nil
}
