package infra

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"carbon-backend/app/src/domain"
)

// DefaultDeviceMetadata returns the built-in device→coordinate table for
// the Vancouver street sensor deployment.
func DefaultDeviceMetadata() domain.DeviceMetadata {
	return domain.DeviceMetadata{
		"Granville St": {Lat: 49.2827, Lng: -123.1187},
		"Main St": {Lat: 49.2734, Lng: -123.1000},
		"Broadway": {Lat: 49.2625, Lng: -123.1140},
		"Kingsway": {Lat: 49.2485, Lng: -123.0650},
		"Fraser St": {Lat: 49.2570, Lng: -123.0900},
		"Commercial Dr": {Lat: 49.2730, Lng: -123.0690},
		"Hastings St": {Lat: 49.2810, Lng: -123.0560},
		"Robson St": {Lat: 49.2835, Lng: -123.1210},
		"Davie St": {Lat: 49.2810, Lng: -123.1330},
		"Denman St": {Lat: 49.2900, Lng: -123.1390},
		"West 4th Ave": {Lat: 49.2680, Lng: -123.1550},
		"West 41st Ave": {Lat: 49.2330, Lng: -123.1160},
		"Knight St": {Lat: 49.2430, Lng: -123.0770},
		"Cambie St": {Lat: 49.2660, Lng: -123.1150},
		"Victoria Dr": {Lat: 49.2490, Lng: -123.0650},
	}
}

// LoadDeviceMetadata returns the device metadata table. With an empty
// path the built-in table is used; otherwise path must name a YAML file
// mapping device IDs to lat/lng pairs. The table is read once at startup
// and never mutated afterwards.
func LoadDeviceMetadata(path string) (domain.DeviceMetadata, error) {
	if path == "" {
		return DefaultDeviceMetadata(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("device map: read %s: %w", path, err)
	}

	var table map[string]domain.Coordinates
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("device map: parse %s: %w", path, err)
	}

	return domain.DeviceMetadata(table), nil
}
