package external

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathrly.app/catalog"
	"weathrly.app/internal/config"
	"weathrly.app/pkg/errors"
)

const testCatalogKey = "weathrly:fallback:cities"

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func setupSeededRedisCatalog(t *testing.T) (*miniredis.Miniredis, *RedisCatalog) {
	t.Helper()

	mockRedis, cfg := setupMockRedis(t)
	redisCatalog, err := NewRedisCatalog(cfg, testCatalogKey)
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisCatalog.Close() })

	entries, err := catalog.Entries()
	require.NoError(t, err)
	added, err := redisCatalog.Seed(context.Background(), entries)
	require.NoError(t, err)
	require.Equal(t, len(entries), added)

	return mockRedis, redisCatalog
}

func TestNewRedisCatalog(t *testing.T) {
	tests := []struct {
		name      string
		config    func(t *testing.T) *config.RedisConfig
		key       string
		errorType errors.ErrorType
	}{
		{
			name:      "NilConfig",
			config:    func(t *testing.T) *config.RedisConfig { return nil },
			key:       testCatalogKey,
			errorType: errors.ErrorTypeConfiguration,
		},
		{
			name: "EmptyKey",
			config: func(t *testing.T) *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			},
			errorType: errors.ErrorTypeConfiguration,
		},
		{
			name: "Unreachable",
			config: func(t *testing.T) *config.RedisConfig {
				return &config.RedisConfig{Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
			},
			key:       testCatalogKey,
			errorType: errors.ErrorTypeCache,
		},
		{
			name: "Valid",
			config: func(t *testing.T) *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			},
			key: testCatalogKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCatalog, err := NewRedisCatalog(tt.config(t), tt.key)

			if tt.errorType != errors.ErrorTypeUnknown {
				require.Error(t, err)
				assert.Nil(t, redisCatalog)
				assert.Equal(t, tt.errorType, errors.TypeOf(err))
				return
			}

			require.NoError(t, err)
			assert.NoError(t, redisCatalog.Ping(context.Background()))
			assert.NoError(t, redisCatalog.Close())
		})
	}
}

func TestRedisCatalog_Lookup(t *testing.T) {
	_, redisCatalog := setupSeededRedisCatalog(t)

	bundle, err := redisCatalog.Lookup(context.Background(), "Singapore")
	require.NoError(t, err)
	assert.Equal(t, "Singapore, SG", bundle.Current.Location)
	assert.Len(t, bundle.Forecast, 5)

	_, err = redisCatalog.Lookup(context.Background(), "Atlantis")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRedisCatalog_SeedKeepsExistingEntries(t *testing.T) {
	mockRedis, redisCatalog := setupSeededRedisCatalog(t)

	custom := `{"current":{"location":"London, GB","temperature":3,"icon":"snowy"},"forecast":[]}`
	mockRedis.HSet(testCatalogKey, "London", custom)

	entries, err := catalog.Entries()
	require.NoError(t, err)
	added, err := redisCatalog.Seed(context.Background(), entries)
	require.NoError(t, err)
	assert.Zero(t, added)

	bundle, err := redisCatalog.Lookup(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, 3, bundle.Current.Temperature)
	assert.Equal(t, "snowy", bundle.Current.Icon)
}

func TestRedisCatalog_CorruptEntry(t *testing.T) {
	mockRedis, redisCatalog := setupSeededRedisCatalog(t)
	mockRedis.HSet(testCatalogKey, "Broken", "{not json")

	_, err := redisCatalog.Lookup(context.Background(), "Broken")
	assert.True(t, errors.IsCacheError(err))
}

func TestRedisCatalog_Cities(t *testing.T) {
	_, redisCatalog := setupSeededRedisCatalog(t)

	cities, err := redisCatalog.Cities(context.Background())
	require.NoError(t, err)
	assert.Len(t, cities, 10)
	assert.Equal(t, "Bangalore", cities[0])
	assert.Equal(t, "redis", redisCatalog.Backend())
}

func TestRedisCatalog_ServerDown(t *testing.T) {
	mockRedis, redisCatalog := setupSeededRedisCatalog(t)
	mockRedis.Close()

	_, err := redisCatalog.Lookup(context.Background(), "London")
	assert.True(t, errors.IsCacheError(err))
	assert.Error(t, redisCatalog.Ping(context.Background()))
}
