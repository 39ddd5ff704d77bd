package equation

import (
	"fmt"
	"math/big"
	"strings"
)

// term is one slot of the working sequence: either a value or an operator.
type term struct {
	val *big.Rat
	op  byte
}

// Evaluate computes the exact value of a left-hand expression.
//
// Multiplication and division are folded first, left to right, then
// addition and subtraction, so "6*7+2" is 44 and "8-2-1" is 5. Division is
// exact rational division: "7/2" evaluates to 7/2 rather than being
// truncated. Division by zero has no value and fails with
// ErrNonIntegerResult. Ill-shaped input fails with ErrMalformedExpression.
func Evaluate(expr string) (*big.Rat, error) {
	v, _, err := evaluate(expr)
	return v, err
}

// EvaluateInt evaluates expr and requires every intermediate and the final
// result to be whole. A division that leaves a remainder anywhere in the
// expression fails with ErrNonIntegerResult.
func EvaluateInt(expr string) (int64, error) {
	v, whole, err := evaluate(expr)
	if err != nil {
		return 0, err
	}
	if !whole || !v.IsInt() {
		return 0, fmt.Errorf("%s = %s: %w", expr, v.RatString(), ErrNonIntegerResult)
	}
	if !v.Num().IsInt64() {
		return 0, fmt.Errorf("%s overflows int64: %w", expr, ErrArithmeticMismatch)
	}
	return v.Num().Int64(), nil
}

func evaluate(expr string) (*big.Rat, bool, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return nil, false, err
	}

	terms := make([]term, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == TokenOperator {
			terms = append(terms, term{op: t.Op})
		} else {
			terms = append(terms, term{val: new(big.Rat).SetInt64(t.Value)})
		}
	}

	whole := true
	terms, err = fold(terms, "*/", &whole)
	if err != nil {
		return nil, false, err
	}
	terms, err = fold(terms, "+-", &whole)
	if err != nil {
		return nil, false, err
	}
	if len(terms) != 1 || terms[0].val == nil {
		return nil, false, fmt.Errorf("expression %q did not reduce: %w", expr, ErrMalformedExpression)
	}
	return terms[0].val, whole, nil
}

// fold collapses every (left, op, right) triple whose operator is in ops,
// scanning left to right and splicing the result in place so the next
// operator sees the reduced value.
func fold(terms []term, ops string, whole *bool) ([]term, error) {
	i := 0
	for i < len(terms) {
		op := terms[i].op
		if op == 0 || strings.IndexByte(ops, op) < 0 {
			i++
			continue
		}
		if i == 0 || i+1 >= len(terms) || terms[i-1].val == nil || terms[i+1].val == nil {
			return nil, fmt.Errorf("operator %q lacks an operand: %w", op, ErrMalformedExpression)
		}
		res, err := apply(op, terms[i-1].val, terms[i+1].val)
		if err != nil {
			return nil, err
		}
		if !res.IsInt() {
			*whole = false
		}
		terms[i-1] = term{val: res}
		terms = append(terms[:i], terms[i+2:]...)
	}
	return terms, nil
}

func apply(op byte, a, b *big.Rat) (*big.Rat, error) {
	switch op {
	case '+':
		return new(big.Rat).Add(a, b), nil
	case '-':
		return new(big.Rat).Sub(a, b), nil
	case '*':
		return new(big.Rat).Mul(a, b), nil
	case '/':
		if b.Sign() == 0 {
			return nil, fmt.Errorf("division by zero: %w", ErrNonIntegerResult)
		}
		return new(big.Rat).Quo(a, b), nil
	}
	return nil, fmt.Errorf("unknown operator %q: %w", op, ErrMalformedExpression)
}
