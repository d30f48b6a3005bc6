package scheduler

import (
	"testing"
	"time"
)

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"10", 10, true},
		{"8-12", 8, true},
		{" 15 ", 15, true},
		{"12+", 12, true},
		{"Al fallo", 0, false},
		{"AMRAP", 0, false},
		{"", 0, false},
		{"-5", 0, false},
	}

	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("leadingInt(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"50", 50, true},
		{"62,5", 62.5, true},
		{"62.5", 62.5, true},
		{"80kg", 80, true},
		{"100,", 100, true},
		{" 45 ", 45, true},
		{"BW", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{",5", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseWeight(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseWeight(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := dateOnly(in); !got.Equal(want) {
		t.Errorf("dateOnly(%v) = %v, want %v", in, got, want)
	}
}
