package commentary

import (
	"strings"
	"testing"
)

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"two sentences",
			"Revenue grew steadily. Margins held firm.",
			"Revenue grew steadily.",
		},
		{
			"abbreviation not split",
			"Revenue grew due to U.S. demand. Margins held.",
			"Revenue grew due to U.S. demand.",
		},
		{
			"single sentence unchanged",
			"Revenue grew steadily.",
			"Revenue grew steadily.",
		},
		{
			"no terminal punctuation unchanged",
			"Revenue grew steadily",
			"Revenue grew steadily",
		},
		{
			"question mark",
			"Will margins hold? Analysts doubt it.",
			"Will margins hold?",
		},
		{
			"lowercase continuation not split",
			"Shares rose 2 pct. vs peers and kept gains.",
			"Shares rose 2 pct. vs peers and kept gains.",
		},
		{
			"leading whitespace trimmed",
			"  Margins held. More text.",
			"Margins held.",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstSentence(tt.in); got != tt.want {
				t.Errorf("firstSentence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json untouched", `[{"ticker":"ADM"}]`, `[{"ticker":"ADM"}]`},
		{"fence with tag", "```json\n[{\"ticker\":\"ADM\"}]\n```", `[{"ticker":"ADM"}]`},
		{"fence without tag", "```\n[1,2]\n```", "[1,2]"},
		{"fence same line", "```json[1,2]```", "[1,2]"},
		{"surrounding whitespace", "  \n```json\n[]\n```\n ", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildPromptIncludesCompanyLines(t *testing.T) {
	cap := 2.3e9
	rev := 1.5e9
	margin := 0.125
	change := 0.85

	prompt := buildPrompt([]snapshot{
		{
			Ticker:          "ADM",
			Name:            "Archer-Daniels-Midland",
			Sector:          "commodity-trader",
			MarketCap:       &cap,
			TTMRevenue:      &rev,
			TTMProfitMargin: &margin,
			ChangePercent:   &change,
		},
		{Ticker: "BG", Name: "Bunge Global", Sector: "commodity-trader"},
	})

	wantLine := "- ADM (Archer-Daniels-Midland, commodity-trader): $2.3B market cap, $1.5B TTM revenue, 12.5% TTM profit margin, +0.85% today"
	if !strings.Contains(prompt, wantLine) {
		t.Errorf("prompt missing company line %q:\n%s", wantLine, prompt)
	}
	if !strings.Contains(prompt, "- BG (Bunge Global, commodity-trader): no market data available") {
		t.Errorf("prompt missing no-data line:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"climateImpact"`) {
		t.Error("prompt missing response schema")
	}
}
