package rpc

import (
	"context"
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/service"
)

var _ service.MerchandiseService = &stubService{}

type stubService struct {
	lastRequest service.AddProductRequest
	added       model.Added
	err         error
}

func (s *stubService) AddProduct(_ context.Context, request service.AddProductRequest) (model.Added, error) {
	s.lastRequest = request
	return s.added, s.err
}

func (s *stubService) SuspendMerchandise(_ context.Context, reason string) (model.Suspension, error) {
	if s.err != nil {
		return model.Suspension{}, s.err
	}
	r, err := model.NewNonEmptyString(reason)
	if err != nil {
		return model.Suspension{}, err
	}
	return model.Suspension{
		Merchandise: model.NewSuspended(r, 1),
		Event:       model.MerchandiseSuspended{Reason: reason},
	}, nil
}

func (s *stubService) ResumeMerchandise(_ context.Context) (model.Resumption, error) {
	return model.Resumption{Merchandise: model.NewEmpty(2)}, s.err
}

func mustNonEmpty(t *testing.T, s string) model.NonEmptyString {
	v, err := model.NewNonEmptyString(s)
	require.NoError(t, err)
	return v
}

func startServer(t *testing.T, svc service.MerchandiseService) *Client {
	t.Helper()

	logger, _ := test.NewNullLogger()
	listener := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(logger)))
	RegisterMerchandiseServer(s, NewMerchandiseServer(svc, logger))
	go func() {
		_ = s.Serve(listener)
	}()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn)
}

func TestMerchandiseServer(t *testing.T) {
	ctx := context.Background()

	t.Run("add product returns the projected product", func(t *testing.T) {
		svc := &stubService{added: model.Added{
			Merchandise: model.NewOpen(1),
			Event: model.ProductAdded{
				Product: model.Product{
					ID:          model.IdentifierFrom(mustNonEmpty(t, "product-1")),
					Name:        mustNonEmpty(t, "Mug"),
					Description: mustNonEmpty(t, "Ceramic mug"),
					Category:    mustNonEmpty(t, "Kitchen"),
				},
				DisplayOrder: 4,
			},
		}}
		client := startServer(t, svc)

		out, err := client.AddProduct(ctx, "Mug", "Ceramic mug", "Kitchen")

		require.NoError(t, err)
		require.Equal(t, service.AddProductRequest{Name: "Mug", Description: "Ceramic mug", Category: "Kitchen"}, svc.lastRequest)
		fields := out.AsMap()
		require.Equal(t, "product-1", fields["productId"])
		require.Equal(t, "Mug", fields["name"])
		require.Equal(t, float64(4), fields["displayOrder"])
		require.Equal(t, "open", fields["state"])
	})

	t.Run("errors are mapped to status codes", func(t *testing.T) {
		for _, tc := range []struct {
			err  error
			code codes.Code
		}{
			{service.InvalidRequestError{Field: "name", Message: "invalid product name: \"\""}, codes.InvalidArgument},
			{service.DomainError{Err: model.DuplicateProductNameError{Name: "Mug"}}, codes.AlreadyExists},
			{service.DomainError{Err: model.OperationNotAllowedError{Operation: "add product", Reason: "入荷停止中"}}, codes.FailedPrecondition},
			{errors.Wrap(model.ErrOptimisticLock, "save product"), codes.Aborted},
			{errors.New("connection refused"), codes.Internal},
		} {
			client := startServer(t, &stubService{err: tc.err})

			_, err := client.AddProduct(ctx, "Mug", "Ceramic mug", "Kitchen")

			require.Equal(t, tc.code, status.Code(err), tc.err.Error())
		}
	})

	t.Run("suspension reason is carried in the error message", func(t *testing.T) {
		client := startServer(t, &stubService{err: service.DomainError{
			Err: model.OperationNotAllowedError{Operation: "add product to suspended merchandise", Reason: "入荷停止中"},
		}})

		_, err := client.AddProduct(ctx, "Mug", "Ceramic mug", "Kitchen")

		require.Contains(t, status.Convert(err).Message(), "入荷停止中")
	})

	t.Run("suspend and resume report the new state", func(t *testing.T) {
		client := startServer(t, &stubService{})

		out, err := client.SuspendMerchandise(ctx, "入荷停止中")
		require.NoError(t, err)
		require.Equal(t, "suspended", out.AsMap()["state"])
		require.Equal(t, "入荷停止中", out.AsMap()["reason"])

		out, err = client.ResumeMerchandise(ctx)
		require.NoError(t, err)
		require.Equal(t, "empty", out.AsMap()["state"])
	})
}
