// Package aiscore defines the optional authenticity-scoring capability. A
// configured scorer contributes advisory context to verification results; it
// never changes a verdict.
package aiscore

import (
	"context"

	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// Scorer estimates the probability that a candidate is an authentic
// certificate. ok reports whether the scorer has an opinion at all.
type Scorer interface {
	Score(ctx context.Context, cand models.ExtractedCandidate, result models.MatchResult) (probability float64, ok bool, err error)
}

// NoOp is the null-object default used when no scorer is configured. It
// keeps the verification pipeline free of nil checks.
type NoOp struct{}

func (NoOp) Score(ctx context.Context, cand models.ExtractedCandidate, result models.MatchResult) (float64, bool, error) {
	return 0, false, nil
}
