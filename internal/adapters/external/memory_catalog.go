package external

import (
	"context"
	"sort"
	"sync"

	"weathrly.app/catalog"
	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

// MemoryCatalog implements the FallbackCatalog port over an in-process map
type MemoryCatalog struct {
	data  map[string]ports.BundleData
	mutex sync.RWMutex
}

// NewMemoryCatalog creates a catalog holding the given entries. Later entries win on duplicate cities.
func NewMemoryCatalog(entries []catalog.Entry) *MemoryCatalog {
	data := make(map[string]ports.BundleData, len(entries))
	for _, entry := range entries {
		data[entry.City] = entry.BundleData
	}
	return &MemoryCatalog{data: data}
}

// Lookup returns a copy of the bundle stored under the exact city name
func (c *MemoryCatalog) Lookup(ctx context.Context, city string) (*ports.BundleData, error) {
	c.mutex.RLock()
	bundle, exists := c.data[city]
	c.mutex.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("city not in fallback catalog")
	}

	bundle.Forecast = append([]ports.DailySummaryData(nil), bundle.Forecast...)
	return &bundle, nil
}

// Cities returns the catalogued city names in sorted order
func (c *MemoryCatalog) Cities(ctx context.Context) ([]string, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	cities := make([]string, 0, len(c.data))
	for city := range c.data {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities, nil
}

func (c *MemoryCatalog) Backend() string {
	return "memory"
}
