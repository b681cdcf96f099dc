package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/certverify/internal/common"
	"github.com/dmitrijs2005/certverify/internal/index"
	"github.com/dmitrijs2005/certverify/internal/ingest"
	"github.com/dmitrijs2005/certverify/internal/logging"
	sc "github.com/dmitrijs2005/certverify/internal/server/config"
	"github.com/dmitrijs2005/certverify/internal/server/models"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/repomanager"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	getS3Object = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in, optFns...)
	}
)

// IngestionService loads institution batches into the record store and the
// live index, either from an inline CSV payload or from the object storage
// bucket batches are dropped into.
type IngestionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	index       *index.RecordIndex
	config      *sc.Config
	log         logging.Logger
}

func NewIngestionService(db *sql.DB, rm repomanager.RepositoryManager, ix *index.RecordIndex,
	config *sc.Config, log logging.Logger) *IngestionService {
	return &IngestionService{db: db, repomanager: rm, index: ix, config: config, log: log}
}

// IngestCSV parses and applies one CSV batch.
func (s *IngestionService) IngestCSV(ctx context.Context, data []byte) (models.IngestResult, error) {
	rows, err := ingest.ParseCSV(bytes.NewReader(data))
	if err != nil {
		return models.IngestResult{}, fmt.Errorf("%w: parse batch: %v", common.ErrValidation, err)
	}
	loader := ingest.NewLoader(s.index, recordStore{repo: s.repomanager.Records(s.db)}, s.log)
	return loader.Ingest(ctx, rows), nil
}

// IngestFromS3 fetches a batch object by key and applies it.
func (s *IngestionService) IngestFromS3(ctx context.Context, key string) (models.IngestResult, error) {
	client, err := s.getS3Client(ctx)
	if err != nil {
		return models.IngestResult{}, err
	}

	out, err := getS3Object(client, ctx, &s3.GetObjectInput{
		Bucket: &s.config.S3Bucket,
		Key:    &key,
	})
	if err != nil {
		return models.IngestResult{}, fmt.Errorf("fetch batch %q: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return models.IngestResult{}, fmt.Errorf("read batch %q: %w", key, err)
	}
	s.log.Info(ctx, "batch fetched from object storage", "key", key, "bytes", len(data))
	return s.IngestCSV(ctx, data)
}

func (s *IngestionService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// recordStore adapts the records repository to the bulk loader contract.
type recordStore struct {
	repo interface {
		CreateOrUpdate(ctx context.Context, rec *models.VerifiedRecord) error
	}
}

func (s recordStore) Save(ctx context.Context, rec models.VerifiedRecord) error {
	return s.repo.CreateOrUpdate(ctx, &rec)
}
