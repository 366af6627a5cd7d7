package util

import "testing"

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   float64
	}{
		{name: "whole amount", amount: 155, want: 155},
		{name: "rounds down", amount: 1.004, want: 1},
		{name: "rounds up", amount: 1.006, want: 1.01},
		{name: "accumulated drift", amount: 0.1 + 0.2, want: 0.3},
		{name: "negative amount", amount: -1.006, want: -1.01},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundCurrency(tt.amount); got != tt.want {
				t.Fatalf("RoundCurrency(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}
