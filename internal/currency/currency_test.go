package currency

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"Nil", nil, "—"},
		{"NaN", ptr(math.NaN()), "—"},
		{"Inf", ptr(math.Inf(1)), "—"},
		{"Zero", ptr(0), "USD $0.0000"},
		{"Simple", ptr(12.5), "USD $12.5000"},
		{"Rounds", ptr(0.123456), "USD $0.1235"},
		{"Whole", ptr(7), "USD $7.0000"},
		{"Negative", ptr(-1.5), "USD $-1.5000"},
		{"BinaryBelowHalf", ptr(0.00015), "USD $0.0001"},
		{"ExactTie", ptr(0.03125), "USD $0.0313"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUSD(tt.value); got != tt.want {
				t.Errorf("FormatUSD() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTWD(t *testing.T) {
	tests := []struct {
		name string
		usd  *float64
		rate *float64
		want string
	}{
		{"NilUSD", nil, ptr(30), "—"},
		{"NilRate", ptr(10), nil, "—"},
		{"BothNil", nil, nil, "—"},
		{"NaNRate", ptr(10), ptr(math.NaN()), "—"},
		{"Simple", ptr(10), ptr(30), "約 TWD $300.00"},
		{"Today", ptr(7), ptr(31), "約 TWD $217.00"},
		{"Fraction", ptr(1.2345), ptr(32.85), "約 TWD $40.55"},
		{"ZeroCost", ptr(0), ptr(31), "約 TWD $0.00"},
		{"BinaryBelowHalf", ptr(1.005), ptr(1), "約 TWD $1.00"},
		{"ExactTie", ptr(0.125), ptr(1), "約 TWD $0.13"},
		{"Overflow", ptr(math.MaxFloat64), ptr(2), "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTWD(tt.usd, tt.rate); got != tt.want {
				t.Errorf("FormatTWD() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAxis(t *testing.T) {
	if got := FormatAxis(2.5); got != " $2.5" {
		t.Errorf("FormatAxis(2.5) = %q", got)
	}
	if got := FormatAxis(10); got != " $10" {
		t.Errorf("FormatAxis(10) = %q", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(32.85); got != "32.85" {
		t.Errorf("FormatRate() = %q, want 32.85", got)
	}
}

func TestUSD(t *testing.T) {
	if got := USD(3); got != "USD $3.0000" {
		t.Errorf("USD(3) = %q", got)
	}
}
