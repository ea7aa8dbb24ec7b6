package models

import "testing"

func TestParseChartPeriod(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ChartPeriod
	}{
		{"canonical 1W", "1W", Period1W},
		{"canonical 1M", "1M", Period1M},
		{"canonical 3M", "3M", Period3M},
		{"canonical 1Y", "1Y", Period1Y},
		{"lowercase", "1y", Period1Y},
		{"mixed case", "3m", Period3M},
		{"whitespace", " 1w ", Period1W},
		{"bogus", "bogus", Period1M},
		{"empty", "", Period1M},
		{"lookalike", "2Y", Period1M},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseChartPeriod(tt.raw); got != tt.want {
				t.Errorf("ParseChartPeriod(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestChartPeriodDays(t *testing.T) {
	tests := []struct {
		period ChartPeriod
		want   int
	}{
		{Period1W, 7},
		{Period1M, 30},
		{Period3M, 90},
		{Period1Y, 365},
	}
	for _, tt := range tests {
		if got := tt.period.Days(); got != tt.want {
			t.Errorf("%s.Days() = %d, want %d", tt.period, got, tt.want)
		}
	}
}

func TestChartPeriodInterval(t *testing.T) {
	for _, p := range []ChartPeriod{Period1W, Period1M, Period3M} {
		if got := p.Interval(); got != "1d" {
			t.Errorf("%s.Interval() = %q, want 1d", p, got)
		}
	}
	if got := Period1Y.Interval(); got != "1wk" {
		t.Errorf("1Y.Interval() = %q, want 1wk", got)
	}
}

func TestNormalizeTicker(t *testing.T) {
	if got := NormalizeTicker("  adm "); got != "ADM" {
		t.Errorf("got %q, want ADM", got)
	}
	if got := NormalizeTicker("ffarm.as"); got != "FFARM.AS" {
		t.Errorf("got %q, want FFARM.AS", got)
	}
}
