package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/readlog/config"
)

func TestSetupSearch(t *testing.T) {
	t.Run("disabled without addresses", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		assert.Nil(t, setupSearch(&config.Config{ESBooksIndex: "books"}, logger))
		assert.Empty(t, hook.AllEntries())
	})

	t.Run("bad index is logged", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		cfg := &config.Config{ElasticsearchAddrs: "http://127.0.0.1:9200"}
		assert.Nil(t, setupSearch(cfg, logger))

		require.Len(t, hook.AllEntries(), 1)
		entry := hook.LastEntry()
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, "book index init failed, search disabled", entry.Message)
		assert.Contains(t, entry.Data, "error")
	})

	t.Run("configured", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		cfg := &config.Config{ElasticsearchAddrs: "http://127.0.0.1:9200", ESBooksIndex: "books"}
		assert.NotNil(t, setupSearch(cfg, logger))
		assert.Empty(t, hook.AllEntries())
	})
}

func TestSetupNotifierLogsFailure(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	assert.Nil(t, setupNotifier(nil, &config.Config{AppName: "readlog"}, logger))

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "welcome notifier init failed, welcome emails disabled", hook.LastEntry().Message)
}
