package models

// Field names a comparable certificate attribute recovered from OCR text.
type Field string

const (
	FieldStudentName Field = "student_name"
	FieldRollNumber  Field = "roll_number"
	FieldCertNumber  Field = "cert_number"
	FieldIssuer      Field = "issuer"
	FieldIssuedAt    Field = "issued_at"
	FieldMarks       Field = "marks"
)

// FieldValue is one extracted field with its extraction confidence in [0,1].
type FieldValue struct {
	Value      string
	Confidence float64
}

// FieldSet maps field names to extracted values. A missing field is absent
// from the map; absence is distinct from low-confidence presence.
type FieldSet map[Field]FieldValue

// Get returns the value for f and whether it was extracted at all.
func (fs FieldSet) Get(f Field) (FieldValue, bool) {
	v, ok := fs[f]
	return v, ok
}

// ExtractedCandidate is the engine's structured reading of one uploaded
// certificate. It is transient: created per verification request, never
// persisted by the engine itself.
type ExtractedCandidate struct {
	RawText  string
	Fields   FieldSet
	SourceID string
}
