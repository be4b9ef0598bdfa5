package cluster_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clusterview/internal/cluster"
)

func TestReadCSV(t *testing.T) {
	in := "Label,X,Y\nA1,1.0,2.0\nA1,3.5,0.5\nB,2.0,\"4,0\"\n"
	reg, err := cluster.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B"}, reg.Keys())
	assert.Equal(t, [][2]float64{{2, 4}}, xys(reg.Get("B")))
	assert.Equal(t, 3.5, reg.MaxX())
	assert.Equal(t, 4.0, reg.MaxY())
}

func TestReadCSV_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"missing columns": "lat,lon\n1,2\n",
		"bad value":       "x,y,cluster\n1,2,A\nq,2,A\n",
		"ragged row":      "x,y,cluster\n1,2\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			reg, err := cluster.ReadCSV(strings.NewReader(in))
			assert.Nil(t, reg)
			assert.ErrorIs(t, err, cluster.ErrMalformed)
		})
	}
}

func TestReadCSV_LineNumber(t *testing.T) {
	_, err := cluster.ReadCSV(strings.NewReader("x,y,cluster\n1,2,A\nq,2,A\n"))
	var le *cluster.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
}

func TestReadGeoJSON(t *testing.T) {
	in := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"cluster":"A1"},"geometry":{"type":"Point","coordinates":[1,2]}},
		{"type":"Feature","properties":{"name":"B"},"geometry":{"type":"MultiPoint","coordinates":[[2,4],[0.5,1]]}},
		{"type":"Feature","properties":{"cluster":7},"geometry":{"type":"Point","coordinates":[5,0]}}
	]}`
	reg, err := cluster.ReadGeoJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B", "7"}, reg.Keys())
	assert.Equal(t, [][2]float64{{2, 4}, {0.5, 1}}, xys(reg.Get("B")))
	assert.Equal(t, 5.0, reg.MaxX())
	assert.Equal(t, 4.0, reg.MaxY())
}

func TestReadGeoJSON_SingleFeature(t *testing.T) {
	in := `{"type":"Feature","properties":{"cluster":"Z"},"geometry":{"type":"Point","coordinates":[0,0]}}`
	reg, err := cluster.ReadGeoJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestReadGeoJSON_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":      `{`,
		"bare geometry": `{"type":"Point","coordinates":[1,2]}`,
		"no cluster":    `{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,2]}}`,
		"negative":      `{"type":"Feature","properties":{"cluster":"A"},"geometry":{"type":"Point","coordinates":[-1,2]}}`,
		"line":          `{"type":"Feature","properties":{"cluster":"A"},"geometry":{"type":"LineString","coordinates":[[1,2],[3,4]]}}`,
		"bad name":      `{"type":"Feature","properties":{"cluster":"a b"},"geometry":{"type":"Point","coordinates":[1,2]}}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			reg, err := cluster.ReadGeoJSON(strings.NewReader(in))
			assert.Nil(t, reg)
			assert.ErrorIs(t, err, cluster.ErrMalformed)
		})
	}
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	txt := writeFile(t, "cluster.txt", "1 2 A\n")
	csv := writeFile(t, "points.CSV", "x,y,cluster\n3,4,B\n")
	geo := writeFile(t, "points.geojson", `{"type":"Feature","properties":{"cluster":"C"},"geometry":{"type":"Point","coordinates":[5,6]}}`)

	for path, key := range map[string]string{txt: "A", csv: "B", geo: "C"} {
		reg, err := cluster.Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, []string{key}, reg.Keys())
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, cluster.Supported("cluster.txt"))
	assert.True(t, cluster.Supported("a.GeoJSON"))
	assert.False(t, cluster.Supported("a.kml"))
	assert.False(t, cluster.Supported("README"))
}
