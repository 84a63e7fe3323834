package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/vecmath/pkg/math3d"
)

// quad is a unit square in the XY plane split into two triangles.
func quad() *Mesh {
	m := NewMesh("quad")
	for _, p := range []math3d.Vector3[float64]{
		math3d.V3(0.0, 0.0, 0.0),
		math3d.V3(2.0, 0.0, 0.0),
		math3d.V3(2.0, 4.0, 0.0),
		math3d.V3(0.0, 4.0, 0.0),
	} {
		m.Vertices = append(m.Vertices, MeshVertex{Position: p})
	}
	m.Faces = append(m.Faces, Face{V: [3]int{0, 1, 2}}, Face{V: [3]int{0, 2, 3}})
	m.CalculateBounds()
	return m
}

func TestMeshBounds(t *testing.T) {
	m := quad()
	assert.Equal(t, math3d.V3(0.0, 0.0, 0.0), m.BoundsMin)
	assert.Equal(t, math3d.V3(2.0, 4.0, 0.0), m.BoundsMax)
	assert.Equal(t, math3d.V3(1.0, 2.0, 0.0), m.Center())
	assert.Equal(t, math3d.V3(2.0, 4.0, 0.0), m.Size())
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.TriangleCount())

	empty := NewMesh("empty")
	empty.CalculateBounds()
	assert.Equal(t, math3d.Zero3[float64](), empty.Center())
}

func TestMeshNormals(t *testing.T) {
	m := quad()
	m.CalculateNormals()
	for i, v := range m.Vertices {
		assert.Equal(t, math3d.Forward3[float64](), v.Normal, "vertex %d", i)
	}

	m = quad()
	m.CalculateSmoothNormals()
	for i, v := range m.Vertices {
		assert.InDelta(t, 1.0, v.Normal.Z, 1e-12, "vertex %d", i)
		assert.InDelta(t, 1.0, v.Normal.Magnitude(), 1e-12, "vertex %d", i)
	}
}

func TestMeshTransform(t *testing.T) {
	m := quad()
	m.CalculateNormals()
	m.Transform(Transform{
		Translation: math3d.V3(0.0, 0.0, 1.0),
		Rotation:    quarterTurnZ(),
		Scale:       math3d.One3[float64](),
	})

	requireVec3InDelta(t, math3d.V3(-4.0, 0.0, 1.0), m.BoundsMin)
	requireVec3InDelta(t, math3d.V3(0.0, 2.0, 1.0), m.BoundsMax)
	requireVec3InDelta(t, math3d.Forward3[float64](), m.Vertices[0].Normal)
}

func TestMeshCloneAndAppend(t *testing.T) {
	m := quad()
	c := m.Clone()
	c.Vertices[0].Position = math3d.V3(-1.0, -1.0, -1.0)
	c.Faces[0].V[0] = 3
	assert.Equal(t, math3d.Zero3[float64](), m.Vertices[0].Position)
	assert.Equal(t, 0, m.Faces[0].V[0])

	m.Append(quad())
	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 4, m.TriangleCount())
	assert.Equal(t, [3]int{4, 5, 6}, m.Faces[2].V)
	assert.Equal(t, [3]int{4, 6, 7}, m.Faces[3].V)
}
