package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/service"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/infrastructure/event"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/infrastructure/identity"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/infrastructure/mysql"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/infrastructure/transport/rest"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/infrastructure/transport/rpc"
)

const shutdownTimeout = 10 * time.Second

func serviceCommand() *cli.Command {
	return &cli.Command{
		Name:  "service",
		Usage: "serve the merchandise gRPC and HTTP APIs",
		Action: func(c *cli.Context) error {
			cnf, err := parseEnv()
			if err != nil {
				return err
			}
			logger, err := newLogger(cnf.LogLevel)
			if err != nil {
				return err
			}
			return runService(c.Context, cnf, logger)
		},
	}
}

func runService(ctx context.Context, cnf *config, logger *log.Logger) error {
	db, err := mysql.Open(ctx, cnf.dsn())
	if err != nil {
		return err
	}
	defer db.Close()

	readModel := mysql.NewReadModel(db, cnf.MerchandiseID)
	merchandiseService := service.NewMerchandiseService(service.Dependencies{
		ProductNames:  readModel,
		DisplayOrders: readModel,
		Repository:    mysql.NewMerchandiseRepository(db, cnf.MerchandiseID),
		IDs:           identity.Generator{},
		Dispatcher:    event.NewLogDispatcher(logger.WithField("component", "events")),
		Logger:        logger,
	})

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(rpc.LoggingInterceptor(logger)))
	rpc.RegisterMerchandiseServer(grpcServer, rpc.NewMerchandiseServer(merchandiseService, logger))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(rpc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	httpServer := &http.Server{
		Addr:              cnf.ServeHTTPAddress,
		Handler:           rest.Router(merchandiseService, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listener, err := net.Listen("tcp", cnf.ServeGRPCAddress)
		if err != nil {
			return errors.Wrap(err, "listen grpc")
		}
		logger.WithField("address", cnf.ServeGRPCAddress).Info("starting grpc server")
		return grpcServer.Serve(listener)
	})
	g.Go(func() error {
		logger.WithField("address", cnf.ServeHTTPAddress).Info("starting http server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve http")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down")
		healthServer.Shutdown()
		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply database migrations",
		Action: func(c *cli.Context) error {
			cnf, err := parseEnv()
			if err != nil {
				return err
			}
			db, err := mysql.Open(c.Context, cnf.dsn())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := mysql.Migrate(db.DB); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
}
