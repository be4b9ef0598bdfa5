package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clusterview/internal/cluster"
)

func TestRegistry_AddNode_GroupsByName(t *testing.T) {
	reg := cluster.NewRegistry()
	require.NoError(t, reg.AddNode(cluster.NewNode(1, 2, "A1")))
	require.NoError(t, reg.AddNode(cluster.NewNode(2, 1, "B")))
	require.NoError(t, reg.AddNode(cluster.NewNode(3, 3, "A1")))

	assert.Equal(t, []string{"A1", "B"}, reg.Keys())
	assert.Equal(t, 3, reg.Len())

	a := reg.Get("A1")
	require.Len(t, a, 2)
	assert.Equal(t, [2]float64{1, 2}, [2]float64{a[0].X(), a[0].Y()})
	assert.Equal(t, [2]float64{3, 3}, [2]float64{a[1].X(), a[1].Y()})
	for _, n := range a {
		assert.Equal(t, "A1", n.ClusterName())
	}
	b := reg.Get("B")
	require.Len(t, b, 1)
	assert.Equal(t, "B", b[0].ClusterName())

	assert.Nil(t, reg.Get("missing"))
}

func TestRegistry_MaximaAfterEveryInsert(t *testing.T) {
	pts := [][2]float64{{0.5, 3}, {2, 1}, {1, 7.25}, {9, 0}, {4, 4}}
	reg := cluster.NewRegistry()
	var wantX, wantY float64
	for _, p := range pts {
		require.NoError(t, reg.AddNode(cluster.NewNode(p[0], p[1], "C")))
		wantX = max(wantX, p[0])
		wantY = max(wantY, p[1])
		assert.Equal(t, wantX, reg.MaxX())
		assert.Equal(t, wantY, reg.MaxY())
	}
}

func TestRegistry_Empty(t *testing.T) {
	reg := cluster.NewRegistry()
	assert.Zero(t, reg.MaxX())
	assert.Zero(t, reg.MaxY())
	assert.Empty(t, reg.Keys())
	assert.Zero(t, reg.Len())
}

func TestRegistry_AddNilNode(t *testing.T) {
	reg := cluster.NewRegistry()
	assert.ErrorIs(t, reg.AddNode(nil), cluster.ErrNilNode)
	assert.Zero(t, reg.Len())
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	reg := cluster.NewRegistry()
	require.NoError(t, reg.AddNode(cluster.NewNode(1, 1, "A")))

	keys := reg.Keys()
	keys[0] = "changed"
	nodes := reg.Get("A")
	nodes[0] = *cluster.NewNode(100, 100, "Z")

	assert.Equal(t, []string{"A"}, reg.Keys())
	assert.Equal(t, 1.0, reg.Get("A")[0].X())
}

func TestNode_String(t *testing.T) {
	assert.Equal(t, "A1(x=1.5, y=2)", cluster.NewNode(1.5, 2, "A1").String())
}
