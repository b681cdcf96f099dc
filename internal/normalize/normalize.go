// Package normalize canonicalizes raw OCR text into a form the field
// extractor and matcher can compare reliably: lower-cased, whitespace
// collapsed, punctuation stripped, with digit/letter look-alike repair
// inside number-like tokens.
package normalize

import (
	"regexp"
	"strings"
)

var reCRLF = regexp.MustCompile(`\r\n?`)

// edgePunct is trimmed from both ends of every token.
const edgePunct = ".,;:!?'\"`()[]{}<>#*|_~"

// confusions maps letters Tesseract commonly misreads for digits. Applied
// only inside segments classified as numeric-like.
var confusions = map[rune]rune{
	'o': '0',
	'i': '1',
	'l': '1',
	's': '5',
	'b': '8',
	'z': '2',
}

// Normalize canonicalizes raw OCR output. It is deterministic and
// idempotent: Normalize(Normalize(x)) == Normalize(x).
//
// Line structure is preserved (the extractor's name heuristics are
// line-oriented); empty lines are dropped.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = reCRLF.ReplaceAllString(s, "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		tokens := strings.Fields(line)
		kept := tokens[:0]
		for _, tok := range tokens {
			if t := normalizeToken(tok); t != "" {
				kept = append(kept, t)
			}
		}
		if len(kept) > 0 {
			out = append(out, strings.Join(kept, " "))
		}
	}
	return strings.Join(out, "\n")
}

// Token canonicalizes a single OCR word exactly as Normalize treats it
// inside a line, look-alike repair included. Per-word confidence maps must
// key by this form so a repaired token ("2o23" read as "2023") still finds
// its confidence.
func Token(word string) string {
	return normalizeToken(strings.ToLower(strings.TrimSpace(word)))
}

// Key collapses a free-form value (issuer, student name) to a canonical
// comparison key: lower-case, single spaces, no edge punctuation.
func Key(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	kept := tokens[:0]
	for _, tok := range tokens {
		if t := strings.Trim(tok, edgePunct); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}

func normalizeToken(tok string) string {
	tok = strings.Trim(tok, edgePunct)
	if tok == "" {
		return ""
	}

	if hasDigit(tok) {
		return repairNumeric(stripNonIdentifier(tok))
	}

	// Alphabetic token: drop anything that is not a letter.
	var b strings.Builder
	for _, r := range tok {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripNonIdentifier keeps letters, digits and the separators '-' and '/'
// that are part of identifiers like CERT-2023-001 or 12/06/2023.
func stripNonIdentifier(tok string) string {
	var b strings.Builder
	for _, r := range tok {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '/':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// repairNumeric applies look-alike corrections segment-wise. A segment
// (between '-'/'/' separators) is repaired only when it contains at least
// one digit and every non-digit character is a known confusable, so that
// "2o23" becomes "2023" but an alphanumeric code like "cs101" is left alone.
func repairNumeric(tok string) string {
	var b strings.Builder
	start := 0
	for i := 0; i <= len(tok); i++ {
		if i == len(tok) || tok[i] == '-' || tok[i] == '/' {
			b.WriteString(repairSegment(tok[start:i]))
			if i < len(tok) {
				b.WriteByte(tok[i])
			}
			start = i + 1
		}
	}
	return b.String()
}

func repairSegment(seg string) string {
	digits := 0
	for _, r := range seg {
		switch {
		case r >= '0' && r <= '9':
			digits++
		default:
			if _, ok := confusions[r]; !ok {
				return seg // a genuine letter: not a numeric segment
			}
		}
	}
	if digits == 0 {
		return seg
	}
	var b strings.Builder
	for _, r := range seg {
		if d, ok := confusions[r]; ok {
			b.WriteRune(d)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
