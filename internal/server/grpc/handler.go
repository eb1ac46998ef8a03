package grpc

import (
	"context"
	"encoding/json"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api"
)

func (s *GRPCServer) Generate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, s, in, s.api.Generate)
}

func (s *GRPCServer) Upload(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, s, in, s.api.Upload)
}

func (s *GRPCServer) RetryMetadata(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, s, in, s.api.RetryMetadata)
}

func (s *GRPCServer) ListVersions(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, s, in, s.api.ListVersions)
}

func (s *GRPCServer) RestoreVersion(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, s, in, s.api.Restore)
}

func (s *GRPCServer) GetImageURL(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, s, in, s.api.ImageURL)
}

func (s *GRPCServer) ListFiles(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, s, in, s.api.ListFiles)
}

func (s *GRPCServer) Ping(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{"status": "OK"})
}

func handle[Req, Resp any](ctx context.Context, s *GRPCServer, in *structpb.Struct, call func(context.Context, Req) (Resp, error)) (*structpb.Struct, error) {
	var req Req
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}

	resp, err := call(ctx, req)
	if err != nil {
		if errors.Is(err, common.ErrPartialWrite) {
			s.logger.Error(ctx, "partial write", "error", err)
		}
		return nil, toStatus(err)
	}

	out, err := toStruct(resp)
	if err != nil {
		s.logger.Error(ctx, "encode response", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return out, nil
}

func fromStruct(in *structpb.Struct, dst any) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	b, err := protojson.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, err
	}
	return out, nil
}

// toStatus maps service errors to gRPC codes. A partial write also wraps the
// store error that caused it, so it is checked first.
func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, common.ErrPartialWrite):
		code = codes.DataLoss
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrUnsupportedFormat):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrVersionNotFound):
		code = codes.NotFound
	case errors.Is(err, common.ErrStoreUnavailable):
		code = codes.Unavailable
	case errors.Is(err, common.ErrRender):
		code = codes.InvalidArgument
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		return status.Error(codes.Internal, "internal error")
	}

	st := status.New(code, err.Error())
	if code == codes.DataLoss {
		if detail, derr := toStruct(api.NewErrorResponse(err)); derr == nil {
			if withDetail, derr := st.WithDetails(detail); derr == nil {
				st = withDetail
			}
		}
	}
	return st.Err()
}
