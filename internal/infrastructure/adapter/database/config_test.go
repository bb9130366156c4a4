package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          5432,
		Username:      "marketplace",
		Password:      "secret",
		Database:      "marketplace_dev",
		SSLMode:       "disable",
		MaxOpenConns:  25,
		MaxIdleConns:  25,
		QueryTimeout:  10 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    5,
	}
}

func TestConfigDSN(t *testing.T) {
	t.Run("Carries the connection parameters", func(t *testing.T) {
		dsn := validTestConfig().DSN()

		assert.Contains(t, dsn, "host=localhost")
		assert.Contains(t, dsn, "port=5432")
		assert.Contains(t, dsn, "dbname=marketplace_dev")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("Enforces the query timeout server-side", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.QueryTimeout = 7 * time.Second

		assert.Contains(t, cfg.DSN(), "statement_timeout=7000")
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid config passes", func(t *testing.T) {
		require.NoError(t, validTestConfig().Validate())
	})

	t.Run("Rejections", func(t *testing.T) {
		cases := map[string]func(*Config){
			"missing host":         func(c *Config) { c.Host = "" },
			"missing credentials":  func(c *Config) { c.Password = "" },
			"unsupported driver":   func(c *Config) { c.Driver = "mysql" },
			"invalid ssl mode":     func(c *Config) { c.SSLMode = "sometimes" },
			"zero query timeout":   func(c *Config) { c.QueryTimeout = 0 },
			"out-of-range port":    func(c *Config) { c.Port = 70000 },
			"negative retry delay": func(c *Config) { c.RetryDelay = -1 },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				cfg := validTestConfig()
				mutate(cfg)
				assert.Error(t, cfg.Validate())
			})
		}
	})
}
