package equation

import (
	"errors"
	"math/big"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"8*9-2", "70"},
		{"6*7+2", "44"},
		{"9+9*2", "27"},
		{"2+3*4-5", "9"},
		{"8-2-1", "5"},
		{"64/8/2", "4"},
		{"2*3*4", "24"},
		{"7/2", "7/2"},
		{"7/2*2", "7"},
		{"1-5", "-4"},
		{"0", "0"},
		{"999999", "999999"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error: %v", tt.expr, err)
			}
			want, _ := new(big.Rat).SetString(tt.want)
			if got.Cmp(want) != 0 {
				t.Errorf("Evaluate(%q) = %s, want %s", tt.expr, got.RatString(), tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		expr string
		want error
	}{
		{"5/0", ErrNonIntegerResult},
		{"1+4/0", ErrNonIntegerResult},
		{"", ErrMalformedExpression},
		{"1++2", ErrMalformedExpression},
		{"+1", ErrMalformedExpression},
		{"1-", ErrMalformedExpression},
		{"05+1", ErrMalformedExpression},
		{"1=2", ErrMalformedExpression},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Evaluate(tt.expr)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Evaluate(%q) error = %v, want %v", tt.expr, err, tt.want)
			}
		})
	}
}

func TestEvaluateInt(t *testing.T) {
	got, err := EvaluateInt("8*9-2")
	if err != nil || got != 70 {
		t.Fatalf("EvaluateInt(8*9-2) = %d, %v", got, err)
	}
	got, err = EvaluateInt("2-50")
	if err != nil || got != -48 {
		t.Fatalf("EvaluateInt(2-50) = %d, %v", got, err)
	}

	for _, expr := range []string{"7/2", "7/2*2", "10/4+1", "3/0"} {
		if _, err := EvaluateInt(expr); !errors.Is(err, ErrNonIntegerResult) {
			t.Errorf("EvaluateInt(%q) error = %v, want ErrNonIntegerResult", expr, err)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("12*3-40")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"12", "*", "3", "-", "40"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.String() != want[i] {
			t.Errorf("token %d = %q, want %q", i, tok.String(), want[i])
		}
	}
	if tokens[1].Type != TokenOperator || tokens[1].Pos != 2 {
		t.Errorf("token 1 = %+v, want operator at 2", tokens[1])
	}
	if tokens[4].Type != TokenInteger || tokens[4].Value != 40 || tokens[4].Pos != 5 {
		t.Errorf("token 4 = %+v, want integer 40 at 5", tokens[4])
	}
}
