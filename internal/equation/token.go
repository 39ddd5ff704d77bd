package equation

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType distinguishes operands from operators.
type TokenType int

const (
	TokenInteger TokenType = iota
	TokenOperator
)

// Token is one lexical unit of a left-hand expression.
type Token struct {
	Type  TokenType
	Value int64 // set for TokenInteger
	Op    byte  // one of + - * / for TokenOperator
	Pos   int   // byte offset in the expression
}

func (t Token) String() string {
	if t.Type == TokenOperator {
		return string(t.Op)
	}
	return strconv.FormatInt(t.Value, 10)
}

// Tokenize splits expr into an alternating operand/operator sequence and
// enforces the expression shape rules: it must not start or end with an
// operator, must not contain adjacent operators, and no operand longer than
// one digit may start with '0'. Any violation, including a character that is
// neither a digit nor an operator, is reported as ErrMalformedExpression.
func Tokenize(expr string) ([]Token, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty expression: %w", ErrMalformedExpression)
	}
	if isOperator(expr[0]) || isOperator(expr[len(expr)-1]) {
		return nil, fmt.Errorf("expression %q starts or ends with an operator: %w", expr, ErrMalformedExpression)
	}

	tokens := make([]Token, 0, len(expr))
	i := 0
	for i < len(expr) {
		ch := expr[i]
		switch {
		case isDigit(ch):
			start := i
			for i < len(expr) && isDigit(expr[i]) {
				i++
			}
			lit := expr[start:i]
			if len(lit) > 1 && lit[0] == '0' {
				return nil, fmt.Errorf("operand %q has a leading zero: %w", lit, ErrMalformedExpression)
			}
			n, err := strconv.ParseInt(lit, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("operand %q: %w", lit, ErrMalformedExpression)
			}
			tokens = append(tokens, Token{Type: TokenInteger, Value: n, Pos: start})
		case isOperator(ch):
			if i+1 < len(expr) && isOperator(expr[i+1]) {
				return nil, fmt.Errorf("adjacent operators at %d: %w", i, ErrMalformedExpression)
			}
			tokens = append(tokens, Token{Type: TokenOperator, Op: ch, Pos: i})
			i++
		default:
			return nil, fmt.Errorf("unexpected %q at %d: %w", ch, i, ErrMalformedExpression)
		}
	}
	return tokens, nil
}

const operators = "+-*/"

func isOperator(c byte) bool { return strings.IndexByte(operators, c) >= 0 }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
