package commentary

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agrilens/agrilens/internal/common"
)

// buildPrompt renders the batched prompt: one context line per ticker plus
// instructions pinning the reply to a raw JSON array.
func buildPrompt(snapshots []snapshot) string {
	var b strings.Builder

	b.WriteString("You are a financial analyst covering food and agriculture companies. ")
	b.WriteString("For each company below, write exactly one sentence of market commentary ")
	b.WriteString("and exactly one sentence on its climate or sustainability exposure.\n\n")
	b.WriteString("Companies:\n")

	for _, snap := range snapshots {
		b.WriteString(promptLine(snap))
		b.WriteByte('\n')
	}

	b.WriteString("\nRespond with only a JSON array, no markdown fences and no prose, ")
	b.WriteString("in the same order as the companies above:\n")
	b.WriteString(`[{"ticker":"...","commentary":"...","climateImpact":"..."}]`)

	return b.String()
}

// promptLine renders one company context line, e.g.
// "- ADM (Archer-Daniels-Midland, commodity-trader): $28.5B market cap, $85.5B TTM revenue, 2.1% TTM profit margin, +0.85% today".
// Fragments whose data is missing are omitted rather than zero-filled.
func promptLine(snap snapshot) string {
	var parts []string
	if snap.MarketCap != nil && *snap.MarketCap > 0 {
		parts = append(parts, common.FormatMoney(*snap.MarketCap)+" market cap")
	}
	if snap.TTMRevenue != nil {
		parts = append(parts, common.FormatMoney(*snap.TTMRevenue)+" TTM revenue")
	}
	if snap.TTMProfitMargin != nil {
		parts = append(parts, common.FormatPct(*snap.TTMProfitMargin*100)+" TTM profit margin")
	}
	if snap.ChangePercent != nil {
		parts = append(parts, common.FormatSignedPct(*snap.ChangePercent)+" today")
	}

	line := fmt.Sprintf("- %s (%s, %s)", snap.Ticker, snap.Name, snap.Sector)
	if len(parts) == 0 {
		return line + ": no market data available"
	}
	return line + ": " + strings.Join(parts, ", ")
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, leaving bare replies untouched.
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	rest, ok := strings.CutPrefix(s, "```")
	if !ok {
		return s
	}
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 && isFenceTag(rest[:nl]) {
		rest = rest[nl+1:]
	} else {
		rest = strings.TrimPrefix(rest, "json")
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), "```")

	return strings.TrimSpace(rest)
}

func isFenceTag(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) > 16 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// firstSentence truncates text after its first sentence-terminating
// punctuation. A terminator only counts when followed by whitespace and an
// uppercase letter, so abbreviations like "U.S." inside a sentence do not
// split it. Text without a qualifying terminator is returned unchanged.
func firstSentence(text string) string {
	text = strings.TrimSpace(text)

	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		rest := text[i+utf8.RuneLen(r):]
		trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
		if len(trimmed) == len(rest) || trimmed == "" {
			continue
		}
		next, _ := utf8.DecodeRuneInString(trimmed)
		if unicode.IsUpper(next) {
			return text[:i+utf8.RuneLen(r)]
		}
	}

	return text
}
