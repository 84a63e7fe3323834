package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/vecmath/pkg/math3d"
)

var (
	ErrNoBufferView   = errors.New("accessor has no buffer view")
	ErrExternalBuffer = errors.New("external buffer not loaded")
	ErrAccessorType   = errors.New("unexpected accessor type")
	// ErrIndexOutOfRange reports an index past the end of the document
	// array or vertex list it refers to.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	CalculateNormals bool
	SmoothNormals    bool
	// NodeTransforms places each mesh instance at its node's world transform
	// instead of reading mesh data in model space.
	NodeTransforms bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		CalculateNormals: true,
		SmoothNormals:    true,
		NodeTransforms:   true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file with the default loader.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// FromDocument converts an already decoded document with the default loader.
func FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	return NewGLTFLoader().FromDocument(doc, name)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc, filepath.Base(path))
}

// FromDocument merges every triangle primitive in doc into one mesh.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	placed := false
	if l.NodeTransforms {
		world := WorldTransforms(doc)
		for i, node := range doc.Nodes {
			t, ok := world[i]
			if !ok || node.Mesh == nil || *node.Mesh < 0 || *node.Mesh >= len(doc.Meshes) {
				continue
			}
			m := doc.Meshes[*node.Mesh]
			part := NewMesh(node.Name)
			if err := l.processMesh(doc, m, part); err != nil {
				return nil, fmt.Errorf("process mesh %q of node %d: %w", m.Name, i, err)
			}
			part.Transform(t)
			mesh.Append(part)
			placed = true
		}
	}

	if !placed {
		for _, m := range doc.Meshes {
			if err := l.processMesh(doc, m, mesh); err != nil {
				return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
			}
		}
	}

	hasNormals := false
	for _, v := range mesh.Vertices {
		if v.Normal.Magnitude() > 0.001 {
			hasNormals = true
			break
		}
	}

	if l.CalculateNormals && !hasNormals {
		if l.SmoothNormals {
			mesh.CalculateSmoothNormals()
		} else {
			mesh.CalculateNormals()
		}
	}

	mesh.CalculateBounds()

	return mesh, nil
}

func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVector3s(doc, posIdx, modeler.ReadPosition)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals []math3d.Vector3[float64]
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = readVector3s(doc, normIdx, modeler.ReadNormal)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		var uvs []math3d.Vector2[float64]
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uvs, err = readVector2s(doc, uvIdx)
			if err != nil {
				return fmt.Errorf("read uvs: %w", err)
			}
		}

		baseVertex := len(mesh.Vertices)

		for i := range positions {
			v := MeshVertex{Position: positions[i]}
			if i < len(normals) {
				v.Normal = normals[i]
			}
			if i < len(uvs) {
				// GLTF uses top-left origin (V=0 at top), flip V for bottom-left origin
				v.UV = math3d.V2(uvs[i].X, 1.0-uvs[i].Y)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for _, idx := range indices {
				if idx >= len(positions) {
					return fmt.Errorf("%w: vertex %d of %d", ErrIndexOutOfRange, idx, len(positions))
				}
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		// GLTF front faces wind CCW; faces here wind CW, so swap the last two.
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{
				V: [3]int{
					baseVertex + indices[i],
					baseVertex + indices[i+2],
					baseVertex + indices[i+1],
				},
			})
		}
	}

	return nil
}

// accessor looks up an accessor and checks that its bytes are loaded and
// in range, so the modeler readers below cannot index past a buffer.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: accessor %d of %d", ErrIndexOutOfRange, idx, len(doc.Accessors))
	}
	acr := doc.Accessors[idx]
	if acr.BufferView == nil {
		return nil, ErrNoBufferView
	}

	bvIdx := *acr.BufferView
	if bvIdx < 0 || bvIdx >= len(doc.BufferViews) {
		return nil, fmt.Errorf("%w: buffer view %d of %d", ErrIndexOutOfRange, bvIdx, len(doc.BufferViews))
	}
	bufferView := doc.BufferViews[bvIdx]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("%w: buffer %d of %d", ErrIndexOutOfRange, bufferView.Buffer, len(doc.Buffers))
	}
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.Data == nil {
		if buffer.URI != "" {
			return nil, fmt.Errorf("%w: %s", ErrExternalBuffer, buffer.URI)
		}
		return nil, errors.New("buffer has no data")
	}

	size, err := elementSize(acr)
	if err != nil {
		return nil, err
	}
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = size
	}
	if bufferView.ByteOffset < 0 || bufferView.ByteOffset+bufferView.ByteLength > len(buffer.Data) {
		return nil, fmt.Errorf("buffer view %d runs past end of buffer (%d bytes)", bvIdx, len(buffer.Data))
	}
	if acr.Count > 0 && acr.ByteOffset+(acr.Count-1)*stride+size > bufferView.ByteLength {
		return nil, fmt.Errorf("accessor reads past end of buffer view (%d bytes)", bufferView.ByteLength)
	}
	return acr, nil
}

func elementSize(acr *gltf.Accessor) (int, error) {
	var component int
	switch acr.ComponentType {
	case gltf.ComponentByte, gltf.ComponentUbyte:
		component = 1
	case gltf.ComponentShort, gltf.ComponentUshort:
		component = 2
	case gltf.ComponentUint, gltf.ComponentFloat:
		component = 4
	default:
		return 0, fmt.Errorf("%w: component %v", ErrAccessorType, acr.ComponentType)
	}

	switch acr.Type {
	case gltf.AccessorScalar:
		return component, nil
	case gltf.AccessorVec2:
		return 2 * component, nil
	case gltf.AccessorVec3:
		return 3 * component, nil
	case gltf.AccessorVec4:
		return 4 * component, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrAccessorType, acr.Type)
	}
}

func readVector3s(doc *gltf.Document, accessorIdx int, read func(*gltf.Document, *gltf.Accessor, [][3]float32) ([][3]float32, error)) ([]math3d.Vector3[float64], error) {
	acr, err := accessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if acr.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("%w: want VEC3, got %v", ErrAccessorType, acr.Type)
	}

	floats, err := read(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vector3[float64], len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

// readVector2s accepts float, normalized ubyte and normalized ushort
// texture coordinates.
func readVector2s(doc *gltf.Document, accessorIdx int) ([]math3d.Vector2[float64], error) {
	acr, err := accessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if acr.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("%w: want VEC2, got %v", ErrAccessorType, acr.Type)
	}

	floats, err := modeler.ReadTextureCoord(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vector2[float64], len(floats))
	for i, f := range floats {
		result[i] = math3d.V2(float64(f[0]), float64(f[1]))
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	acr, err := accessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if acr.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("%w: want SCALAR indices, got %v", ErrAccessorType, acr.Type)
	}

	raw, err := modeler.ReadIndices(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	result := make([]int, len(raw))
	for i, x := range raw {
		result[i] = int(x)
	}
	return result, nil
}
