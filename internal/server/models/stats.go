package models

import "time"

// Stats is the dashboard snapshot: index size, review backlog, and verdict
// counts over the reporting window.
type Stats struct {
	IndexedRecords   int
	UnresolvedAlerts int
	Verdicts         map[Verdict]int
	Since            time.Time
}
