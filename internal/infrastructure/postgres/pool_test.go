package postgres_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/postgres"
	"github.com/MUNTAZIR1234/Invoice/pkg/config"
)

func TestPoolConfig_KeepsHostAndAppliesLimits(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db.internal", Port: 6543, User: "rent", Password: "p@ss:word", DBName: "rent_invoicing", SSLMode: "disable",
		MaxConns: 4, MinConns: 2, ConnectTimeout: 3 * time.Second,
	}

	pc, err := postgres.PoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", pc.ConnConfig.Host, "host must be dialled as configured")
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Equal(t, "p@ss:word", pc.ConnConfig.Password)
	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, 3*time.Second, pc.ConnConfig.ConnectTimeout)
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfig_DatabaseURLWins(t *testing.T) {
	pc, err := postgres.PoolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@hosted.example.com:5432/app?sslmode=disable",
		Host:        "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "hosted.example.com", pc.ConnConfig.Host)
	assert.Equal(t, "app", pc.ConnConfig.Database)
}

func TestPoolConfig_RejectsBadURL(t *testing.T) {
	_, err := postgres.PoolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}
