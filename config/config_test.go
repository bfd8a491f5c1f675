package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("UPLOAD_MAX_BYTES", "")

	cfg := Load()
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, StorageDisk, cfg.StorageDriver)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, int64(5<<20), cfg.UploadMaxBytes)
	assert.Equal(t, time.Minute, cfg.AuthRateWindow)
	assert.Error(t, cfg.Validate(), "missing JWT_SECRET must fail")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("AUTH_RATE_WINDOW", "30s")
	t.Setenv("ELASTICSEARCH_ADDRS", "http://a:9200, http://b:9200,")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 30*time.Second, cfg.AuthRateWindow)
	assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.ESAddrs())
	assert.Equal(t, int32(10), cfg.DBMaxConns)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{JWTSecret: "x", StoreDriver: StoreMemory, StorageDriver: StorageDisk, BcryptCost: 10, UploadMaxBytes: 1}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(c *Config){
		"blank secret":    func(c *Config) { c.JWTSecret = "  " },
		"store driver":    func(c *Config) { c.StoreDriver = "mongo" },
		"storage driver":  func(c *Config) { c.StorageDriver = "ftp" },
		"gcs bucket":      func(c *Config) { c.StorageDriver = StorageGCS },
		"bcrypt too low":  func(c *Config) { c.BcryptCost = 3 },
		"bcrypt too high": func(c *Config) { c.BcryptCost = 32 },
		"upload size":     func(c *Config) { c.UploadMaxBytes = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", c.PostgresDSN())
}
