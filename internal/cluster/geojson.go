package cluster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	errNoClusterProperty = errors.New("missing cluster property")
	errBadCoordinates    = errors.New("coordinates must be two non-negative numbers")
)

// ReadGeoJSONFile reads point features from a GeoJSON file.
func ReadGeoJSONFile(path string) (*Registry, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGeoJSON(f)
}

// ReadGeoJSON reads a Feature or FeatureCollection of Point/MultiPoint
// geometries. The cluster name comes from properties.cluster, falling back to
// properties.name.
func ReadGeoJSON(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	reg := NewRegistry()
	addPoint := func(v any, name string) error {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return errBadCoordinates
		}
		x, xok := a[0].(float64)
		y, yok := a[1].(float64)
		if !xok || !yok || x < 0 || y < 0 {
			return errBadCoordinates
		}
		return reg.AddNode(NewNode(x, y, name))
	}
	addFeature := func(fm map[string]any) error {
		props, _ := fm["properties"].(map[string]any)
		name, err := clusterProperty(props)
		if err != nil {
			return err
		}
		g, ok := fm["geometry"].(map[string]any)
		if !ok {
			return errors.New("missing geometry")
		}
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			return addPoint(g["coordinates"], name)
		case "MultiPoint":
			pts, ok := g["coordinates"].([]any)
			if !ok {
				return errBadCoordinates
			}
			for _, p := range pts {
				if err := addPoint(p, name); err != nil {
					return err
				}
			}
			return nil
		default:
			return fmt.Errorf("unsupported geometry %q", gt)
		}
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if err := addFeature(raw); err != nil {
			return nil, fmt.Errorf("%w: feature: %w", ErrMalformed, err)
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for i, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: feature %d is not an object", ErrMalformed, i)
			}
			if err := addFeature(fm); err != nil {
				return nil, fmt.Errorf("%w: feature %d: %w", ErrMalformed, i, err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: unsupported geojson type %q", ErrMalformed, t)
	}
	return reg, nil
}

func clusterProperty(props map[string]any) (string, error) {
	for _, key := range []string{"cluster", "name"} {
		var name string
		switch v := props[key].(type) {
		case string:
			name = v
		case float64:
			name = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			continue
		}
		if name == "" || !clusterNamePattern.MatchString(name) {
			return "", fmt.Errorf("%w: %q", errBadName, name)
		}
		return name, nil
	}
	return "", errNoClusterProperty
}
