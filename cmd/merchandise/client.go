package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/infrastructure/transport/rpc"
)

func addProductCommand() *cli.Command {
	return &cli.Command{
		Name:  "add-product",
		Usage: "add a product through a running service",
		Flags: []cli.Flag{
			addressFlag(),
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "description", Required: true},
			&cli.StringFlag{Name: "category", Required: true},
		},
		Action: withClient(func(c *cli.Context, client *rpc.Client) (*structpb.Struct, error) {
			return client.AddProduct(c.Context, c.String("name"), c.String("description"), c.String("category"))
		}),
	}
}

func suspendCommand() *cli.Command {
	return &cli.Command{
		Name:  "suspend",
		Usage: "stop accepting new products",
		Flags: []cli.Flag{
			addressFlag(),
			&cli.StringFlag{Name: "reason", Required: true},
		},
		Action: withClient(func(c *cli.Context, client *rpc.Client) (*structpb.Struct, error) {
			return client.SuspendMerchandise(c.Context, c.String("reason"))
		}),
	}
}

func resumeCommand() *cli.Command {
	return &cli.Command{
		Name:  "resume",
		Usage: "accept new products again",
		Flags: []cli.Flag{addressFlag()},
		Action: withClient(func(c *cli.Context, client *rpc.Client) (*structpb.Struct, error) {
			return client.ResumeMerchandise(c.Context)
		}),
	}
}

func addressFlag() cli.Flag {
	return &cli.StringFlag{Name: "address", Value: "localhost:8081", Usage: "gRPC address of the service"}
}

func withClient(call func(c *cli.Context, client *rpc.Client) (*structpb.Struct, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		conn, err := grpc.NewClient(c.String("address"), grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return errors.Wrap(err, "dial service")
		}
		defer conn.Close()

		out, err := call(c, rpc.NewClient(conn))
		if err != nil {
			return err
		}
		return printJSON(c.App.Writer, out)
	}
}

func printJSON(w io.Writer, out *structpb.Struct) error {
	b, err := json.MarshalIndent(out.AsMap(), "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
