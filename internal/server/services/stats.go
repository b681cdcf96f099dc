package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/certverify/internal/index"
	sc "github.com/dmitrijs2005/certverify/internal/server/config"
	"github.com/dmitrijs2005/certverify/internal/server/models"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/repomanager"
)

// StatsService aggregates the dashboard counters.
type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	index       *index.RecordIndex
	config      *sc.Config
	now         func() time.Time
}

func NewStatsService(db *sql.DB, rm repomanager.RepositoryManager, ix *index.RecordIndex, config *sc.Config) *StatsService {
	return &StatsService{db: db, repomanager: rm, index: ix, config: config, now: time.Now}
}

// GetStats returns index size, unresolved alert backlog, and verdict counts
// over the alert window.
func (s *StatsService) GetStats(ctx context.Context) (models.Stats, error) {
	since := s.now().Add(-s.config.AlertWindow)

	verdicts, err := s.repomanager.Events(s.db).CountByVerdict(ctx, since)
	if err != nil {
		return models.Stats{}, err
	}
	unresolved, err := s.repomanager.Alerts(s.db).CountUnresolved(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	return models.Stats{
		IndexedRecords:   s.index.Len(),
		UnresolvedAlerts: unresolved,
		Verdicts:         verdicts,
		Since:            since,
	}, nil
}
