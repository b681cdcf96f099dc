package extract

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the accepted issue-date formats, matched against
// normalized text (lower-case, commas and dots already stripped).
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"2-1-2006",
	"2 January 2006",
	"January 2 2006",
}

// ParseDate parses an issue date in any of the accepted formats. The input
// is canonicalized the same way the normalizer does, so both raw batch
// values ("30 June 2023") and normalized OCR fragments parse.
func ParseDate(s string) (time.Time, error) {
	v := strings.Join(strings.Fields(strings.ToLower(strings.NewReplacer(",", "", ".", "").Replace(s))), " ")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
