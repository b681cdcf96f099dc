package models

// IngestRow is one raw record row from an institution-supplied batch.
// IssuedAt stays a string here; the loader owns date validation.
type IngestRow struct {
	Line        int
	RecordID    string
	StudentName string
	RollNumber  string
	CertNumber  string
	Issuer      string
	IssuedAt    string
	Marks       string
}

// RejectedRow is a row that failed validation, with the reason kept for the
// batch report.
type RejectedRow struct {
	Line   int
	Reason string
}

// IngestResult is the outcome of one batch: how many rows were accepted and
// which were rejected. NewRecords counts rows that created a record rather
// than re-asserting an existing one, so re-ingesting an identical batch
// reports the same Accepted count with NewRecords of zero.
type IngestResult struct {
	Accepted   int
	NewRecords int
	Rejected   []RejectedRow
}
