package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/certverify/internal/common"
	pb "github.com/dmitrijs2005/certverify/internal/proto"
	"github.com/dmitrijs2005/certverify/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Verify(ctx context.Context, req *pb.VerifyRequest) (*pb.VerifyResponse, error) {

	var result models.MatchResult
	var alerts []models.Alert
	var err error

	switch {
	case req.RawText != "":
		result, alerts, err = s.verification.VerifyText(ctx, req.SourceId, req.RawText)
	case len(req.Image) > 0:
		result, alerts, err = s.verification.Verify(ctx, req.SourceId, req.Image)
	default:
		return nil, status.Error(codes.InvalidArgument, "either image or raw_text is required")
	}

	if err != nil {
		s.logger.Error(ctx, err.Error())
		if errors.Is(err, common.ErrIndexUnavailable) {
			return nil, status.Error(codes.Unavailable, "record index unavailable")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return resultToPb(result, alerts), nil
}

func (s *GRPCServer) IngestBatch(ctx context.Context, req *pb.IngestBatchRequest) (*pb.IngestBatchResponse, error) {

	var result models.IngestResult
	var err error

	switch {
	case req.S3Key != "":
		result, err = s.ingestion.IngestFromS3(ctx, req.S3Key)
	case len(req.Csv) > 0:
		result, err = s.ingestion.IngestCSV(ctx, req.Csv)
	default:
		return nil, status.Error(codes.InvalidArgument, "either csv payload or s3_key is required")
	}

	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.IngestBatchResponse{
		Accepted:   int32(result.Accepted),
		NewRecords: int32(result.NewRecords),
	}
	for _, r := range result.Rejected {
		resp.Rejected = append(resp.Rejected, &pb.RejectedRow{Line: int32(r.Line), Reason: r.Reason})
	}
	return resp, nil
}

func (s *GRPCServer) RevokeRecord(ctx context.Context, req *pb.RevokeRecordRequest) (*pb.RevokeRecordResponse, error) {

	if req.RecordId == "" {
		return nil, status.Error(codes.InvalidArgument, "record_id is required")
	}

	if err := s.verification.RevokeRecord(ctx, req.RecordId); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "record not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RevokeRecordResponse{}, nil
}

func (s *GRPCServer) ReloadIndex(ctx context.Context, req *pb.ReloadIndexRequest) (*pb.ReloadIndexResponse, error) {

	n, err := s.verification.ReloadIndex(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		if errors.Is(err, common.ErrIndexUnavailable) {
			return nil, status.Error(codes.Unavailable, "index reload failed")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ReloadIndexResponse{Records: int32(n)}, nil
}

func (s *GRPCServer) GetStats(ctx context.Context, req *pb.GetStatsRequest) (*pb.GetStatsResponse, error) {

	st, err := s.stats.GetStats(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetStatsResponse{
		IndexedRecords:   int32(st.IndexedRecords),
		UnresolvedAlerts: int32(st.UnresolvedAlerts),
		Verified:         int32(st.Verdicts[models.VerdictVerified]),
		Flagged:          int32(st.Verdicts[models.VerdictFlagged]),
		Rejected:         int32(st.Verdicts[models.VerdictRejected]),
		SinceUnix:        st.Since.Unix(),
	}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func resultToPb(result models.MatchResult, alerts []models.Alert) *pb.VerifyResponse {
	resp := &pb.VerifyResponse{
		Verdict:         string(result.Verdict),
		MatchedRecordId: result.MatchedRecordID,
		OverallScore:    result.OverallScore,
		Reasons:         result.Reasons,
	}
	for _, f := range []models.Field{
		models.FieldCertNumber, models.FieldStudentName, models.FieldRollNumber,
		models.FieldIssuedAt, models.FieldMarks,
	} {
		if score, ok := result.FieldScores[f]; ok {
			resp.FieldScores = append(resp.FieldScores, &pb.FieldScore{Field: string(f), Score: score})
		}
	}
	for _, a := range alerts {
		resp.Alerts = append(resp.Alerts, &pb.Alert{
			Id:              a.ID,
			Type:            string(a.Type),
			Severity:        string(a.Severity),
			RelatedRecordId: a.RelatedRecordID,
			RelatedSourceId: a.RelatedSourceID,
			Reason:          a.Reason,
			CreatedAtUnix:   a.CreatedAt.Unix(),
		})
	}
	return resp
}
