package rpc

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/service"
)

var _ MerchandiseServer = &server{}

type server struct {
	service service.MerchandiseService
	logger  logrus.FieldLogger
}

func NewMerchandiseServer(merchandiseService service.MerchandiseService, logger logrus.FieldLogger) MerchandiseServer {
	return &server{service: merchandiseService, logger: logger}
}

func (s *server) AddProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	added, err := s.service.AddProduct(ctx, service.AddProductRequest{
		Name:        in.GetFields()["name"].GetStringValue(),
		Description: in.GetFields()["description"].GetStringValue(),
		Category:    in.GetFields()["category"].GetStringValue(),
	})
	if err != nil {
		return nil, s.toStatus(err)
	}

	product := added.Event.Product
	return s.response(map[string]any{
		"productId":    product.ID.String(),
		"name":         product.Name.String(),
		"description":  product.Description.String(),
		"category":     product.Category.String(),
		"displayOrder": added.Event.DisplayOrder.Int(),
		"state":        model.StateName(added.Merchandise),
	})
}

func (s *server) SuspendMerchandise(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	suspension, err := s.service.SuspendMerchandise(ctx, in.GetFields()["reason"].GetStringValue())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.response(map[string]any{
		"state":  model.StateName(suspension.Merchandise),
		"reason": suspension.Event.Reason,
	})
}

func (s *server) ResumeMerchandise(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	resumption, err := s.service.ResumeMerchandise(ctx)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.response(map[string]any{
		"state": model.StateName(resumption.Merchandise),
	})
}

func (s *server) response(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build response: %v", err)
	}
	return out, nil
}

func (s *server) toStatus(err error) error {
	var (
		invalidRequest service.InvalidRequestError
		duplicateName  model.DuplicateProductNameError
		notAllowed     model.OperationNotAllowedError
	)
	switch {
	case errors.As(err, &invalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &duplicateName):
		return status.Error(codes.AlreadyExists, duplicateName.Error())
	case errors.As(err, &notAllowed):
		return status.Error(codes.FailedPrecondition, notAllowed.Error())
	case errors.Is(err, model.ErrOptimisticLock):
		return status.Error(codes.Aborted, err.Error())
	default:
		s.logger.WithError(err).Error("merchandise request failed")
		return status.Error(codes.Internal, "internal error")
	}
}

// LoggingInterceptor logs every unary call with its status code.
func LoggingInterceptor(logger logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"code":     status.Code(err).String(),
			"duration": time.Since(start).String(),
		}).Info("handled grpc request")
		return resp, err
	}
}
