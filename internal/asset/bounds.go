package asset

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"

	"github.com/toolittlecakes/ar-art-prod/pkg/geom"
)

var identityMatrix = [16]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Bounds computes the axis-aligned bounding box of the primary scene
// (the first scene in the document), composing node transforms down the
// hierarchy. A document without scenes yields ErrNoScene. A scene with
// no reachable geometry yields an empty box.
func (d *Document) Bounds() (geom.BBox, error) {
	if len(d.doc.Scenes) == 0 {
		return geom.BBox{}, ErrNoScene
	}

	box := geom.NewBBox()
	visited := make(map[uint32]bool) // guards against malformed node cycles
	for _, root := range d.doc.Scenes[0].Nodes {
		d.extendByNode(&box, root, mgl32.Ident4(), visited)
	}
	return box, nil
}

// extendByNode grows box by the node's mesh geometry in world space,
// then recurses into its children.
func (d *Document) extendByNode(box *geom.BBox, idx uint32, parent mgl32.Mat4, visited map[uint32]bool) {
	if int(idx) >= len(d.doc.Nodes) || visited[idx] {
		return
	}
	visited[idx] = true

	node := d.doc.Nodes[idx]
	world := parent.Mul4(localTransform(node))

	if node.Mesh != nil {
		for _, pg := range d.byMesh[int(*node.Mesh)] {
			for _, p := range pg.positions {
				box.Extend(mgl32.TransformCoordinate(mgl32.Vec3{p[0], p[1], p[2]}, world))
			}
		}
	}

	for _, child := range node.Children {
		d.extendByNode(box, child, world, visited)
	}
}

// localTransform returns the node's local transform. A node carries
// either an explicit matrix or a translation/rotation/scale triple.
func localTransform(n *gltf.Node) mgl32.Mat4 {
	if m := n.MatrixOrDefault(); m != identityMatrix {
		var out mgl32.Mat4
		for i, v := range m {
			out[i] = float32(v) // both layouts are column-major
		}
		return out
	}

	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()

	translate := mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2]))
	rotate := mgl32.Quat{
		W: float32(r[3]),
		V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])},
	}.Mat4()
	scale := mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2]))

	return translate.Mul4(rotate).Mul4(scale)
}
