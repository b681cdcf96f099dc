package alertstore

import (
	"context"

	"github.com/dmitrijs2005/certverify/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, alert *models.Alert) error
	SelectUnresolved(ctx context.Context, limit int) ([]models.Alert, error)
	CountUnresolved(ctx context.Context) (int, error)
}
