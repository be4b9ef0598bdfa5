package cluster

import (
	"path/filepath"
	"strings"
)

// Extensions lists the file types Load understands.
var Extensions = []string{".txt", ".csv", ".geojson", ".json"}

// Load picks a reader from the file extension. Anything that is not CSV or
// GeoJSON is read as cluster text.
func Load(path string) (*Registry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVFile(path)
	case ".geojson", ".json":
		return ReadGeoJSONFile(path)
	default:
		return ReadFile(path)
	}
}

// Supported reports whether name has one of Extensions.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
