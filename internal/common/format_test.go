package common

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"trillions", 1.5e12, "$1.5T"},
		{"billions", 2.3e9, "$2.3B"},
		{"millions", 850e6, "$850.0M"},
		{"small", 950, "$950"},
		{"zero", 0, "$0"},
		{"boundary billion", 1e9, "$1.0B"},
		{"just under billion", 999.9e6, "$999.9M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.value); got != tt.want {
				t.Errorf("FormatMoney(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatSignedPct(t *testing.T) {
	if got := FormatSignedPct(0.85); got != "+0.85%" {
		t.Errorf("got %q, want +0.85%%", got)
	}
	if got := FormatSignedPct(-1.2); got != "-1.20%" {
		t.Errorf("got %q, want -1.20%%", got)
	}
	if got := FormatSignedPct(0); got != "+0.00%" {
		t.Errorf("got %q, want +0.00%%", got)
	}
}

func TestFormatPct(t *testing.T) {
	if got := FormatPct(12.53); got != "12.5%" {
		t.Errorf("got %q, want 12.5%%", got)
	}
}
