package asset

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// ApplyUniformScale scales every mesh primitive's vertex positions and
// every node translation by s. Scaling both keeps world-space extents
// exactly proportional regardless of how geometry is spread across the
// node hierarchy, and covers secondary scenes and unreferenced meshes
// along with the primary scene.
func (d *Document) ApplyUniformScale(s float32) {
	for _, pg := range d.prims {
		for i := range pg.positions {
			pg.positions[i][0] *= s
			pg.positions[i][1] *= s
			pg.positions[i][2] *= s
		}
		pg.dirty = true
	}

	for _, node := range d.doc.Nodes {
		scaleTranslation(node, float64(s))
	}
}

// Recenter translates the document so pivot lands on the origin, by
// offsetting the root nodes of every scene. Translation composes after
// rotation and scale in a TRS node, so a parent-space offset is exact.
func (d *Document) Recenter(pivot mgl32.Vec3) {
	offset := [3]float64{
		-float64(pivot.X()),
		-float64(pivot.Y()),
		-float64(pivot.Z()),
	}

	moved := make(map[uint32]bool) // a node rooting two scenes moves once
	for _, scene := range d.doc.Scenes {
		for _, root := range scene.Nodes {
			if int(root) >= len(d.doc.Nodes) || moved[root] {
				continue
			}
			moved[root] = true
			offsetTranslation(d.doc.Nodes[root], offset)
		}
	}
}

func scaleTranslation(n *gltf.Node, s float64) {
	if m := n.MatrixOrDefault(); m != identityMatrix {
		m[12] *= s
		m[13] *= s
		m[14] *= s
		n.Matrix = m
		return
	}
	t := n.TranslationOrDefault()
	n.Translation = [3]float64{t[0] * s, t[1] * s, t[2] * s}
}

func offsetTranslation(n *gltf.Node, offset [3]float64) {
	if m := n.MatrixOrDefault(); m != identityMatrix {
		m[12] += offset[0]
		m[13] += offset[1]
		m[14] += offset[2]
		n.Matrix = m
		return
	}
	t := n.TranslationOrDefault()
	n.Translation = [3]float64{t[0] + offset[0], t[1] + offset[1], t[2] + offset[2]}
}
