package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weathrly.app/catalog"
	"weathrly.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every pooled connection to :memory: would otherwise see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func setupSeededRepo(t *testing.T) *FallbackCatalogRepositoryAdapter {
	repo := NewFallbackCatalogRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Migrate(ctx))

	entries, err := catalog.Entries()
	require.NoError(t, err)

	added, err := repo.Seed(ctx, entries)
	require.NoError(t, err)
	require.Equal(t, len(entries), added)

	return repo
}

func TestFallbackCatalogRepository_Lookup(t *testing.T) {
	repo := setupSeededRepo(t)

	bundle, err := repo.Lookup(context.Background(), "Tokyo")
	require.NoError(t, err)

	assert.Equal(t, "Tokyo, JP", bundle.Current.Location)
	assert.Equal(t, "sunny", bundle.Current.Icon)
	assert.Len(t, bundle.Forecast, 5)
	assert.Equal(t, "Today", bundle.Forecast[0].Day)
}

func TestFallbackCatalogRepository_Lookup_ExactMatchOnly(t *testing.T) {
	repo := setupSeededRepo(t)

	for _, city := range []string{"Atlantis", "tokyo", ""} {
		bundle, err := repo.Lookup(context.Background(), city)
		assert.Nil(t, bundle)
		assert.True(t, errors.IsNotFoundError(err), city)
	}
}

func TestFallbackCatalogRepository_SeedIsIdempotent(t *testing.T) {
	repo := setupSeededRepo(t)

	entries, err := catalog.Entries()
	require.NoError(t, err)

	added, err := repo.Seed(context.Background(), entries)
	require.NoError(t, err)
	assert.Zero(t, added)

	cities, err := repo.Cities(context.Background())
	require.NoError(t, err)
	assert.Len(t, cities, len(entries))
}

func TestFallbackCatalogRepository_Cities(t *testing.T) {
	repo := setupSeededRepo(t)

	cities, err := repo.Cities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bangalore", cities[0])
	assert.Equal(t, "Tokyo", cities[len(cities)-1])
	assert.Equal(t, "database", repo.Backend())
}

func TestFallbackCatalogRepository_CorruptRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFallbackCatalogRepositoryAdapter(db)
	require.NoError(t, repo.Migrate(context.Background()))
	require.NoError(t, db.Create(&FallbackCityModel{City: "Broken", Bundle: "{not json"}).Error)

	_, err := repo.Lookup(context.Background(), "Broken")
	assert.True(t, errors.IsDatabaseError(err))
}
