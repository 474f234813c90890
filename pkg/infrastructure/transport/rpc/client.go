package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls MerchandiseService over an established connection.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) AddProduct(ctx context.Context, name, description, category string) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{
		"name":        name,
		"description": description,
		"category":    category,
	})
	if err != nil {
		return nil, err
	}
	return c.invoke(ctx, "AddProduct", in)
}

func (c *Client) SuspendMerchandise(ctx context.Context, reason string) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"reason": reason})
	if err != nil {
		return nil, err
	}
	return c.invoke(ctx, "SuspendMerchandise", in)
}

func (c *Client) ResumeMerchandise(ctx context.Context) (*structpb.Struct, error) {
	return c.invoke(ctx, "ResumeMerchandise", &structpb.Struct{})
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return nil, err
	}
	return out, nil
}
