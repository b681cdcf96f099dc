// Command ingest applies one institution batch to the record store without
// starting the server. The batch comes from a local CSV file or from the
// configured object storage bucket.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/certverify/internal/flagx"
	"github.com/dmitrijs2005/certverify/internal/index"
	"github.com/dmitrijs2005/certverify/internal/logging"
	"github.com/dmitrijs2005/certverify/internal/server/config"
	"github.com/dmitrijs2005/certverify/internal/server/models"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/records"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/certverify/internal/server/services"
)

func main() {

	// Filter args to include only the flags handled here; the rest belong to
	// the shared config loader.
	args := flagx.FilterArgs(os.Args[1:], []string{"-file", "-s3key"})

	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	file := fs.String("file", "", "path to a local CSV batch")
	s3key := fs.String("s3key", "", "object key of a batch in the configured bucket")
	fs.Parse(args)

	if *file == "" && *s3key == "" {
		log.Fatal("either -file or -s3key is required")
	}

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migrations error: %v", err)
	}

	// Warm the index from the store first. The uniqueness and idempotency
	// checks run against it, so re-running a batch must see the records the
	// previous run created instead of minting fresh IDs.
	ix := index.NewRecordIndex()
	if err := ix.ReloadFrom(ctx, recordLoader{repo: rm.Records(db)}); err != nil {
		log.Fatalf("load existing records: %v", err)
	}

	svc := services.NewIngestionService(db, rm, ix, cfg, logger)

	var result models.IngestResult
	if *s3key != "" {
		result, err = svc.IngestFromS3(ctx, *s3key)
	} else {
		data, rerr := os.ReadFile(*file)
		if rerr != nil {
			log.Fatalf("read batch file: %v", rerr)
		}
		result, err = svc.IngestCSV(ctx, data)
	}
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	fmt.Printf("accepted: %d (new: %d), rejected: %d\n", result.Accepted, result.NewRecords, len(result.Rejected))
	for _, r := range result.Rejected {
		fmt.Printf("  row %d: %s\n", r.Line, r.Reason)
	}
}

// recordLoader adapts the records repository to the index reload contract.
type recordLoader struct {
	repo records.Repository
}

func (l recordLoader) LoadAll(ctx context.Context) ([]models.VerifiedRecord, error) {
	return l.repo.SelectAll(ctx)
}
