package prospekt

import (
	"regexp"
	"time"
)

// Validity date patterns, checked in strict precedence order. The range
// pattern must be tried before the single-date pattern: the single
// pattern would otherwise match only the first half of a genuine range.
// The optional "von <word> " lead-in absorbs locale filler before a
// lone date ("von Montag 03.02.2025") without a full phrase grammar.
var (
	validityRangePattern  = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4}) - (\d{2}\.\d{2}\.\d{4})`)
	validitySinglePattern = regexp.MustCompile(`(?:von \w+ )?(\d{2}\.\d{2}\.\d{4})`)
)

// siteDateLayout is the numeric date convention used on the source site.
const siteDateLayout = "02.01.2006"

// isoDateLayout is the canonical output form for validity dates.
const isoDateLayout = "2006-01-02"

// ParseValidity determines the validity window encoded in the raw
// validity text of one listing tile. It never fails: each side resolves
// independently to an ISO date or Unknown.
//
// A range ("01.01.2025 - 15.01.2025") yields both sides. A single date,
// optionally preceded by a "von <word>" lead-in, yields only ValidFrom.
// Text without a recognizable date yields Unknown for both sides.
func ParseValidity(text string) (validFrom, validTo string) {
	if m := validityRangePattern.FindStringSubmatch(text); m != nil {
		return normalizeDate(m[1]), normalizeDate(m[2])
	}
	if m := validitySinglePattern.FindStringSubmatch(text); m != nil {
		return normalizeDate(m[1]), Unknown
	}
	return Unknown, Unknown
}

// normalizeDate converts a DD.MM.YYYY token to canonical YYYY-MM-DD.
// Tokens that match the digit shape but denote no real calendar date
// (day 32, month 13) resolve to Unknown rather than an error.
func normalizeDate(token string) string {
	t, err := time.Parse(siteDateLayout, token)
	if err != nil {
		return Unknown
	}
	return t.Format(isoDateLayout)
}
