package records

import (
	"context"

	"github.com/dmitrijs2005/certverify/internal/server/models"
)

type Repository interface {
	CreateOrUpdate(ctx context.Context, rec *models.VerifiedRecord) error
	SelectAll(ctx context.Context) ([]models.VerifiedRecord, error)
	UpdateStatus(ctx context.Context, recordID string, status models.RecordStatus) error
}
