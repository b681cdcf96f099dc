package events

import (
	"context"
	"time"

	"github.com/dmitrijs2005/certverify/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, event *models.VerificationEvent) error
	CountVerifiedMatches(ctx context.Context, recordID, excludeSourceID string, since time.Time) (int, error)
	CountRejections(ctx context.Context, issuer, studentName string, since time.Time) (int, error)
	CountByVerdict(ctx context.Context, since time.Time) (map[models.Verdict]int, error)
}
