package skills

import (
	"errors"
	"testing"
)

func TestParseScore_Valid(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"10", 10},
		{"7.5", 7.5},
		{"6.3", 6.3},
		{"0.0", 0},
		{"10.0", 10},
		{"9.99", 9.99},
	}
	for _, tc := range cases {
		got, err := ParseScore(tc.input)
		if err != nil {
			t.Errorf("ParseScore(%q): unexpected error %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseScore(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseScore_NotNumeric(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3", "7a", ".", "1e3", " 5", "5 ", "--1"} {
		_, err := ParseScore(input)
		if !errors.Is(err, ErrNotNumeric) {
			t.Errorf("ParseScore(%q): got %v, want ErrNotNumeric", input, err)
		}
	}
}

func TestParseScore_OutOfRange(t *testing.T) {
	for _, input := range []string{"10.5", "-1", "12", "10.01", "-0.01", "100"} {
		_, err := ParseScore(input)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ParseScore(%q): got %v, want ErrOutOfRange", input, err)
		}
	}
}

func TestParseScore_Unrounded(t *testing.T) {
	got, err := ParseScore("7.123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7.123 {
		t.Errorf("got %v, want the unrounded 7.123", got)
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-0.01, 0},
		{0, 0},
		{5.5, 5.5},
		{10, 10},
		{10.01, 10},
	}
	for _, tc := range cases {
		if got := ClampScore(tc.in); got != tc.want {
			t.Errorf("ClampScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
