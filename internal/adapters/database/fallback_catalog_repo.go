package database

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weathrly.app/catalog"
	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

// FallbackCityModel represents the database model for a catalogued fallback bundle
type FallbackCityModel struct {
	ID        uint   `gorm:"primaryKey"`
	City      string `gorm:"uniqueIndex;not null"`
	Bundle    string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FallbackCityModel) TableName() string {
	return "fallback_cities"
}

// FallbackCatalogRepositoryAdapter implements the FallbackCatalog port using GORM
type FallbackCatalogRepositoryAdapter struct {
	db *gorm.DB
}

// NewFallbackCatalogRepositoryAdapter creates a new fallback catalog repository adapter
func NewFallbackCatalogRepositoryAdapter(db *gorm.DB) *FallbackCatalogRepositoryAdapter {
	return &FallbackCatalogRepositoryAdapter{db: db}
}

// Migrate creates the fallback_cities table
func (r *FallbackCatalogRepositoryAdapter) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&FallbackCityModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate fallback catalog", err)
	}
	return nil
}

// Seed inserts entries whose city is not yet stored and returns the number added
func (r *FallbackCatalogRepositoryAdapter) Seed(ctx context.Context, entries []catalog.Entry) (int, error) {
	added := 0
	for _, entry := range entries {
		payload, err := json.Marshal(entry.BundleData)
		if err != nil {
			return added, errors.NewDatabaseError("failed to encode fallback bundle", err)
		}

		model := &FallbackCityModel{City: entry.City, Bundle: string(payload)}
		result := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "city"}}, DoNothing: true}).
			Create(model)
		if result.Error != nil {
			return added, errors.NewDatabaseError("failed to seed fallback catalog", result.Error)
		}
		added += int(result.RowsAffected)
	}
	return added, nil
}

// Lookup retrieves the bundle stored under the exact city name
func (r *FallbackCatalogRepositoryAdapter) Lookup(ctx context.Context, city string) (*ports.BundleData, error) {
	var model FallbackCityModel
	result := r.db.WithContext(ctx).Where("city = ?", city).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("city not in fallback catalog")
		}
		return nil, errors.NewDatabaseError("failed to find fallback city", result.Error)
	}

	var bundle ports.BundleData
	if err := json.Unmarshal([]byte(model.Bundle), &bundle); err != nil {
		return nil, errors.NewDatabaseError("failed to decode fallback bundle", err)
	}
	return &bundle, nil
}

// Cities returns the catalogued city names in alphabetical order
func (r *FallbackCatalogRepositoryAdapter) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	result := r.db.WithContext(ctx).Model(&FallbackCityModel{}).Order("city").Pluck("city", &cities)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list fallback cities", result.Error)
	}
	return cities, nil
}

func (r *FallbackCatalogRepositoryAdapter) Backend() string {
	return "database"
}
