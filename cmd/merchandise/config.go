package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/infrastructure/mysql"
)

const appID = "merchandise"

type config struct {
	LogLevel string `envconfig:"log_level" default:"info"`

	ServeGRPCAddress string `envconfig:"serve_grpc_address" default:":8081"`
	ServeHTTPAddress string `envconfig:"serve_http_address" default:":8080"`

	MerchandiseID string `envconfig:"merchandise_id" default:"default"`

	DatabaseUser     string `envconfig:"database_user" required:"true"`
	DatabasePassword string `envconfig:"database_password" required:"true"`
	DatabaseHost     string `envconfig:"database_host" required:"true"`
	DatabaseName     string `envconfig:"database_name" required:"true"`
}

func parseEnv() (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}

func (c *config) dsn() string {
	return mysql.DSN{
		User:     c.DatabaseUser,
		Password: c.DatabasePassword,
		Host:     c.DatabaseHost,
		Database: c.DatabaseName,
	}.String()
}

func newLogger(level string) (*log.Logger, error) {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	logger.SetLevel(lvl)
	return logger, nil
}
