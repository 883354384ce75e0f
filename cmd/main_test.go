package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"http://a", "http://b"}, splitList(" http://a, ,http://b,"))
	req.Empty(splitList(""))
}

func TestOpenStores(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	t.Run("badger", func(t *testing.T) {
		req := require.New(t)
		st, err := openStores(ctx, Config{StoreDriver: "badger", BadgerFilepath: t.TempDir()}, log)
		req.NoError(err)
		defer st.close()
		req.NotNil(st.badger)
		req.NotNil(st.messages)
		req.NotNil(st.seen)
	})

	t.Run("sqlite", func(t *testing.T) {
		req := require.New(t)
		st, err := openStores(ctx, Config{StoreDriver: "sqlite", SQLiteFilepath: filepath.Join(t.TempDir(), "chat.db")}, log)
		req.NoError(err)
		defer st.close()
		req.Nil(st.badger)
		req.NotNil(st.members)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := openStores(ctx, Config{StoreDriver: "postgres"}, log)
		require.ErrorContains(t, err, "postgres")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			StoreDriver:        "badger",
			MetricInterval:     time.Minute,
			ValueLogGCInterval: 10 * time.Minute,
			IDRetryAttempts:    5,
		}
	}
	zero, negative, ten := 0, -1, 10

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "limit set", mutate: func(c *Config) { c.LimitMessages = &ten }},
		{name: "zero limit", mutate: func(c *Config) { c.LimitMessages = &zero }, wantErr: "LIMIT_MESSAGES"},
		{name: "negative limit", mutate: func(c *Config) { c.LimitMessages = &negative }, wantErr: "LIMIT_MESSAGES"},
		{name: "zero metric interval", mutate: func(c *Config) { c.MetricInterval = 0 }, wantErr: "METRIC_INTERVAL"},
		{name: "zero gc interval", mutate: func(c *Config) { c.ValueLogGCInterval = 0 }, wantErr: "VALUE_LOG_GC_INTERVAL"},
		{name: "gc interval ignored on sqlite", mutate: func(c *Config) {
			c.StoreDriver = "sqlite"
			c.ValueLogGCInterval = 0
		}},
		{name: "no retry", mutate: func(c *Config) { c.IDRetryAttempts = 0 }, wantErr: "ID_RETRY_ATTEMPTS"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := valid()
			tc.mutate(&config)
			err := config.validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
