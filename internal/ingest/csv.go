package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// ParseCSV reads a record batch in the institution exchange format: a header
// row naming the columns, then one data row per record. Column order is
// free; unknown columns are ignored. Line numbers in the returned rows are
// 1-based data-row ordinals, matching how rejections are reported back.
func ParseCSV(r io.Reader) ([]models.IngestRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Short rows surface as per-row validation failures, not a dead batch.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty batch")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"student_name", "roll_number", "cert_number", "issuer", "issued_at"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("header missing column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []models.IngestRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		rows = append(rows, models.IngestRow{
			Line:        line,
			RecordID:    field(rec, "record_id"),
			StudentName: field(rec, "student_name"),
			RollNumber:  field(rec, "roll_number"),
			CertNumber:  field(rec, "cert_number"),
			Issuer:      field(rec, "issuer"),
			IssuedAt:    field(rec, "issued_at"),
			Marks:       field(rec, "marks"),
		})
	}
}
