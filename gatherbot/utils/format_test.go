package utils

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{1500 * time.Millisecond, "2s"},
		{42 * time.Second, "42s"},
		{65 * time.Minute, "1h 5m"},
		{25*time.Hour + 30*time.Minute, "1d 1h"},
		{time.Hour + 5*time.Second, "1h"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMultiplierAndPercent(t *testing.T) {
	if got := FormatMultiplier(1.25); got != "x1.25" {
		t.Errorf("FormatMultiplier(1.25) = %q", got)
	}
	if got := FormatMultiplier(2); got != "x2" {
		t.Errorf("FormatMultiplier(2) = %q", got)
	}
	if got := FormatPercent(0.3); got != "+30%" {
		t.Errorf("FormatPercent(0.3) = %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(50, 100, 10); got != "▰▰▰▰▰▱▱▱▱▱" {
		t.Errorf("ProgressBar(50, 100) = %q", got)
	}
	if got := ProgressBar(500, 100, 4); got != "▰▰▰▰" {
		t.Errorf("overfull bar = %q", got)
	}
	if got := ProgressBar(1, 0, 3); got != "▱▱▱" {
		t.Errorf("zero total bar = %q", got)
	}
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorType
	}{
		{"You can fish again in 5 seconds.", BusinessLogicError},
		{"A Steel Pickaxe costs 500 coins, you have 20.", BusinessLogicError},
		{"You don't have a pet with id 4.", NotFoundError},
		{"Unknown tool \"laser\".", UserError},
		{"Your dog is already full.", BusinessLogicError},
		{"something broke", SystemError},
	}
	for _, tt := range tests {
		if got := ClassifyMessage(tt.msg); got != tt.want {
			t.Errorf("ClassifyMessage(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
