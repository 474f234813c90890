package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "merchandise.v1.MerchandiseService"

// MerchandiseServer exchanges google.protobuf.Struct messages, so the
// service needs no generated code.
type MerchandiseServer interface {
	AddProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	SuspendMerchandise(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ResumeMerchandise(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv MerchandiseServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MerchandiseServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddProduct",
			Handler:    unaryHandler("AddProduct", MerchandiseServer.AddProduct),
		},
		{
			MethodName: "SuspendMerchandise",
			Handler:    unaryHandler("SuspendMerchandise", MerchandiseServer.SuspendMerchandise),
		},
		{
			MethodName: "ResumeMerchandise",
			Handler:    unaryHandler("ResumeMerchandise", MerchandiseServer.ResumeMerchandise),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "merchandise/v1/merchandise.proto",
}

func RegisterMerchandiseServer(s grpc.ServiceRegistrar, srv MerchandiseServer) {
	s.RegisterService(&serviceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler(method string, call unaryCall) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MerchandiseServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MerchandiseServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
