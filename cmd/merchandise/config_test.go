package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("MERCHANDISE_DATABASE_USER", "app")
	t.Setenv("MERCHANDISE_DATABASE_PASSWORD", "secret")
	t.Setenv("MERCHANDISE_DATABASE_HOST", "db:3306")
	t.Setenv("MERCHANDISE_DATABASE_NAME", "merchandise")
	t.Setenv("MERCHANDISE_SERVE_GRPC_ADDRESS", ":9090")

	cnf, err := parseEnv()

	require.NoError(t, err)
	require.Equal(t, ":9090", cnf.ServeGRPCAddress)
	require.Equal(t, ":8080", cnf.ServeHTTPAddress)
	require.Equal(t, "default", cnf.MerchandiseID)
	require.Contains(t, cnf.dsn(), "app:secret@tcp(db:3306)/merchandise")
}

func TestParseEnvRequiresDatabase(t *testing.T) {
	for _, key := range []string{"MERCHANDISE_DATABASE_USER", "DATABASE_USER"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	_, err := parseEnv()

	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	require.Equal(t, "debug", logger.GetLevel().String())

	_, err = newLogger("loud")
	require.Error(t, err)
}
