package equation

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    error
	}{
		{"simple arithmetic", "w * 2 + 1", nil},
		{"bare variable", "w", nil},
		{"division", "w / 3", nil},
		{"empty", "", ErrEmptyExpression},
		{"unknown variable", "w + x", ErrInvalidExpression},
		{"syntax error", "w ++* 2", ErrInvalidExpression},
		{"non numeric result", `"hello"`, ErrInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.expression)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate(%q) = %v, want nil", tt.expression, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) = %v, want %v", tt.expression, err, tt.wantErr)
			}
		})
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		weightSum  float64
		want       float64
	}{
		{"identity", "w", 12, 12},
		{"scaled", "w * 2", 7, 14},
		{"offset", "w + 10", 5, 15},
		{"normalized score", "w / 40 * 100", 20, 50},
		{"constant", "42", 99, 42},
		{"zero weight", "w * 3", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.expression, tt.weightSum)
			if err != nil {
				t.Fatalf("Eval(%q, %v) error: %v", tt.expression, tt.weightSum, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Eval(%q, %v) = %v, want %v", tt.expression, tt.weightSum, got, tt.want)
			}
		})
	}
}

func TestRunReusesCompiledProgram(t *testing.T) {
	prog, err := Compile("w * w")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	for _, w := range []float64{0, 1, 3, 10} {
		got, err := Run(prog, w)
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if got != w*w {
			t.Errorf("Run(w=%v) = %v, want %v", w, got, w*w)
		}
	}
}
