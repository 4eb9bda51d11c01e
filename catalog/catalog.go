// Package catalog ships the hand-authored fallback bundles used to seed every catalog backend.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"weathrly.app/internal/ports"
)

//go:embed fallback_cities.json
var seedJSON []byte

// Entry is one city's pre-authored bundle
type Entry struct {
	City string `json:"city"`
	ports.BundleData
}

// Entries decodes the embedded seed data
func Entries() ([]Entry, error) {
	return Parse(seedJSON)
}

// Parse decodes a seed document and rejects entries without a city name
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode fallback catalog: %w", err)
	}

	for i, entry := range entries {
		if entry.City == "" {
			return nil, fmt.Errorf("fallback catalog entry %d has no city", i)
		}
	}

	return entries, nil
}
