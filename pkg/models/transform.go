package models

import (
	"github.com/qmuntal/gltf"
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Transform is a glTF-style TRS transform: scale, then rotate, then translate.
// Rotation must be a unit quaternion.
type Transform struct {
	Translation math3d.Vector3[float64]
	Rotation    math3d.Quaternion[float64]
	Scale       math3d.Vector3[float64]
}

// IdentityTransform leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{
		Translation: math3d.Zero3[float64](),
		Rotation:    math3d.Identity[float64](),
		Scale:       math3d.One3[float64](),
	}
}

// Rotate rotates v by the unit quaternion q, computing q * (v, 0) * conj(q).
func Rotate(q math3d.Quaternion[float64], v math3d.Vector3[float64]) math3d.Vector3[float64] {
	r := q.Mul(math3d.Q(v.X, v.Y, v.Z, 0)).Mul(q.Conjugate())
	return math3d.V3(r.X, r.Y, r.Z)
}

// Apply transforms a point.
func (t Transform) Apply(p math3d.Vector3[float64]) math3d.Vector3[float64] {
	return Rotate(t.Rotation, p.Mul(t.Scale)).Add(t.Translation)
}

// ApplyDirection rotates a direction, ignoring scale and translation.
func (t Transform) ApplyDirection(d math3d.Vector3[float64]) math3d.Vector3[float64] {
	return Rotate(t.Rotation, d)
}

// Compose returns the transform that applies child first, then t.
// Scale composes per axis, which is exact while child rotation and
// parent scale do not mix non-uniform axes.
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Translation: t.Apply(child.Translation),
		Rotation:    t.Rotation.Mul(child.Rotation).Normalized(),
		Scale:       t.Scale.Mul(child.Scale),
	}
}

// NodeTransform reads a node's local TRS. A zero rotation or scale, as left
// by a Node built in code, reads as the glTF default.
func NodeTransform(n *gltf.Node) Transform {
	t := Transform{
		Translation: math3d.V3(n.Translation[0], n.Translation[1], n.Translation[2]),
		Rotation:    math3d.Q(n.Rotation[0], n.Rotation[1], n.Rotation[2], n.Rotation[3]),
		Scale:       math3d.V3(n.Scale[0], n.Scale[1], n.Scale[2]),
	}
	if !t.Rotation.Valid() {
		t.Rotation = math3d.Identity[float64]()
	}
	if t.Scale == math3d.Zero3[float64]() {
		t.Scale = math3d.One3[float64]()
	}
	return t
}

// WorldTransforms returns the world transform of every node reachable from
// the document's default scene, keyed by node index. Without a default
// scene, every node that is nobody's child is a root.
func WorldTransforms(doc *gltf.Document) map[int]Transform {
	world := make(map[int]Transform, len(doc.Nodes))

	var visit func(idx int, parent Transform)
	visit = func(idx int, parent Transform) {
		if idx < 0 || idx >= len(doc.Nodes) {
			return
		}
		if _, seen := world[idx]; seen {
			return
		}
		node := doc.Nodes[idx]
		t := parent.Compose(NodeTransform(node))
		world[idx] = t
		for _, c := range node.Children {
			visit(c, t)
		}
	}

	for _, root := range rootNodes(doc) {
		visit(root, IdentityTransform())
	}
	return world
}

func rootNodes(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots
}
