package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/certverify/internal/dbx"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/alertstore"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/events"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/records"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Records(db dbx.DBTX) records.Repository
	Events(db dbx.DBTX) events.Repository
	Alerts(db dbx.DBTX) alertstore.Repository
}
