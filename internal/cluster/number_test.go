package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clusterview/internal/cluster"
)

func TestParseAxisValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"12", 12},
		{"1234", 1234},
		{"12.5", 12.5},
		{"0.0", 0},
		{"4,0", 4},
		{"12,5", 12.5},
		{"1,234", 1234},
		{"1,234,567", 1234567},
		{"1.234.567", 1234567},
		{"1,234.5", 1234.5},
		{"1.234,5", 1234.5},
		{"123.4567", 123.4567},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cluster.ParseAxisValue(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseAxisValue_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "1e5", "123.", "123,", ",5", "1..2", "1,2.3,4", "1.2,3.4", " 1"} {
		t.Run(in, func(t *testing.T) {
			_, err := cluster.ParseAxisValue(in)
			assert.Error(t, err)
		})
	}
}
