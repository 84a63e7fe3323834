// Package models brings glTF geometry and scene transforms into math3d types.
package models

import (
	"github.com/taigrr/vecmath/pkg/math3d"
	"github.com/taigrr/vecmath/pkg/scalar"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vector3[float64]
	BoundsMax math3d.Vector3[float64]
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vector3[float64]
	Normal   math3d.Vector3[float64]
	UV       math3d.Vector2[float64]
}

// Face is a triangle, as indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vector3[float64] {
	return math3d.V3(
		scalar.Midpoint(m.BoundsMin.X, m.BoundsMax.X),
		scalar.Midpoint(m.BoundsMin.Y, m.BoundsMax.Y),
		scalar.Midpoint(m.BoundsMin.Z, m.BoundsMax.Z),
	)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vector3[float64] {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) faceNormal(f Face) math3d.Vector3[float64] {
	v0 := m.Vertices[f.V[0]].Position
	v1 := m.Vertices[f.V[1]].Position
	v2 := m.Vertices[f.V[2]].Position
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

// CalculateNormals assigns each face's normal to its three vertices.
// Vertices shared between faces keep the normal of the last face.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		normal := m.faceNormal(f).Normalized()
		for _, vi := range f.V {
			m.Vertices[vi].Normal = normal
		}
	}
}

// CalculateSmoothNormals averages face normals per vertex. Larger faces
// weigh more because the cross products are summed before normalizing.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3[float64]()
	}

	for _, f := range m.Faces {
		normal := m.faceNormal(f)
		for _, vi := range f.V {
			m.Vertices[vi].Normal.AddAssign(normal)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalized()
	}
}

// Transform moves every vertex by t and recomputes the bounds.
// Normals are only rotated, so non-uniform scale skews them.
func (m *Mesh) Transform(t Transform) {
	for i := range m.Vertices {
		m.Vertices[i].Position = t.Apply(m.Vertices[i].Position)
		m.Vertices[i].Normal = t.ApplyDirection(m.Vertices[i].Normal).Normalized()
	}
	m.CalculateBounds()
}

// Append adds other's vertices and faces to m, reindexing the faces.
func (m *Mesh) Append(other *Mesh) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		m.Faces = append(m.Faces, Face{V: [3]int{base + f.V[0], base + f.V[1], base + f.V[2]}})
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
