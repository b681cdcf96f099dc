package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/certverify/internal/logging"
	pb "github.com/dmitrijs2005/certverify/internal/proto"
	"github.com/dmitrijs2005/certverify/internal/server/models"
	"github.com/dmitrijs2005/certverify/internal/server/services"
	"google.golang.org/grpc"
)

type verificationSvc interface {
	Verify(ctx context.Context, sourceID string, imageBytes []byte) (models.MatchResult, []models.Alert, error)
	VerifyText(ctx context.Context, sourceID, rawText string) (models.MatchResult, []models.Alert, error)
	RevokeRecord(ctx context.Context, recordID string) error
	ReloadIndex(ctx context.Context) (int, error)
}

type ingestionSvc interface {
	IngestCSV(ctx context.Context, data []byte) (models.IngestResult, error)
	IngestFromS3(ctx context.Context, key string) (models.IngestResult, error)
}

type statsSvc interface {
	GetStats(ctx context.Context) (models.Stats, error)
}

type GRPCServer struct {
	pb.UnimplementedCertVerifyServiceServer
	address      string
	verification verificationSvc
	ingestion    ingestionSvc
	stats        statsSvc
	logger       logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, vs *services.VerificationService,
	is *services.IngestionService, ss *services.StatsService) (*GRPCServer, error) {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		verification: vs,
		ingestion:    is,
		stats:        ss,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	// registers service
	pb.RegisterCertVerifyServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
