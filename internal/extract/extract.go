// Package extract locates certificate fields inside normalized OCR text.
//
// Each field has an ordered rule list: label-anchored patterns first (high
// confidence), bare shape patterns as fallback (low confidence). The final
// per-field confidence blends pattern specificity with the token-level OCR
// confidence passed through from the OCR collaborator.
package extract

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/certverify/internal/common"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

type rule struct {
	re   *regexp.Regexp
	conf float64
}

// Rules operate on normalized text: lower-case, no colons or edge
// punctuation, '-' and '/' preserved inside identifiers.
var (
	certNumberRules = []rule{
		{regexp.MustCompile(`(?m)\b(?:certificate|cert|serial) (?:no|number|num) ([a-z0-9][a-z0-9/-]*[0-9][a-z0-9/-]*)\b`), 0.95},
		// The bare shape may only start at an identifier boundary; "\b"
		// alone would let it fire on the tail of a roll number like
		// 21-cse-017.
		{regexp.MustCompile(`(?m)(?:^|[^a-z0-9/-])([a-z]{2,8}[-/][a-z0-9/-]*[0-9][a-z0-9/-]*)\b`), 0.50},
	}

	rollNumberRules = []rule{
		{regexp.MustCompile(`(?m)\b(?:roll|reg|registration|enrolment|enrollment) (?:no|number|num) ([a-z0-9][a-z0-9/-]*)\b`), 0.95},
	}

	studentNameRules = []rule{
		{regexp.MustCompile(`(?m)^(?:student name|candidate name|name) ([a-z][a-z ]*[a-z])$`), 0.90},
		{regexp.MustCompile(`(?m)^this is to certify that ([a-z][a-z ]*?)(?: has| is|$)`), 0.80},
	}

	issuerRules = []rule{
		{regexp.MustCompile(`(?m)^(?:issued by|issuing authority|issuer) ([a-z][a-z ]*[a-z])$`), 0.90},
		{regexp.MustCompile(`(?m)^([a-z ]*(?:university|institute|college|board)(?: of [a-z ]+|[a-z ]*))$`), 0.60},
	}

	issuedAtRules = []rule{
		{regexp.MustCompile(`(?m)\b(?:date of issue|issued on|issue date|issued|dated) (\d{1,4}[-/]\d{1,2}[-/]\d{1,4}|\d{1,2} [a-z]+ \d{4}|[a-z]+ \d{1,2} \d{4})\b`), 0.90},
		{regexp.MustCompile(`(?m)\b(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4})\b`), 0.50},
	}

	marksRules = []rule{
		{regexp.MustCompile(`(?m)\b(?:marks|grade|cgpa|percentage) ([a-z0-9/+-]+)\b`), 0.85},
	}
)

var fieldRules = []struct {
	field models.Field
	rules []rule
}{
	{models.FieldCertNumber, certNumberRules},
	{models.FieldRollNumber, rollNumberRules},
	{models.FieldStudentName, studentNameRules},
	{models.FieldIssuer, issuerRules},
	{models.FieldIssuedAt, issuedAtRules},
	{models.FieldMarks, marksRules},
}

// Extract applies the rule sets to normalized text and returns the fields it
// could recover. tokenConf maps normalized OCR tokens to their recognition
// confidence in [0,1]; nil is allowed and leaves pattern confidence as-is.
//
// A missing field is absent from the result, not empty. Extract fails with
// common.ErrExtractionIncomplete only when zero fields are recoverable.
func Extract(normalized string, tokenConf map[string]float64) (models.FieldSet, error) {
	fields := make(models.FieldSet, len(fieldRules))

	for _, fr := range fieldRules {
		value, conf, ok := firstMatch(normalized, fr.field, fr.rules)
		if !ok {
			continue
		}
		fields[fr.field] = models.FieldValue{
			Value:      value,
			Confidence: blendTokenConfidence(value, conf, tokenConf),
		}
	}

	if len(fields) == 0 {
		return nil, common.ErrExtractionIncomplete
	}
	return fields, nil
}

func firstMatch(text string, field models.Field, rules []rule) (string, float64, bool) {
	for _, r := range rules {
		for _, m := range r.re.FindAllStringSubmatch(text, -1) {
			value := strings.TrimSpace(m[1])
			if value == "" {
				continue
			}
			// A date candidate must actually parse; otherwise keep looking.
			if field == models.FieldIssuedAt {
				if _, err := ParseDate(value); err != nil {
					continue
				}
			}
			return value, r.conf, true
		}
	}
	return "", 0, false
}

// blendTokenConfidence scales the pattern confidence by the mean OCR
// confidence of the tokens that make up the value. Tokens the OCR layer did
// not report leave the pattern confidence untouched.
func blendTokenConfidence(value string, patternConf float64, tokenConf map[string]float64) float64 {
	if len(tokenConf) == 0 {
		return patternConf
	}
	var sum float64
	n := 0
	for _, tok := range strings.Fields(value) {
		if c, ok := tokenConf[tok]; ok {
			sum += c
			n++
		}
	}
	if n == 0 {
		return patternConf
	}
	return patternConf * (sum / float64(n))
}
