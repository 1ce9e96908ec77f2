package asset

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/toolittlecakes/ar-art-prod/pkg/geom"
)

const epsilon = 1e-4

func vecNear(t *testing.T, got, want mgl32.Vec3, what string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if !mgl32.FloatEqualThreshold(got[i], want[i], epsilon) {
			t.Errorf("%s = %v, want %v", what, got, want)
			return
		}
	}
}

// boxCorners returns the eight corners of an axis-aligned box.
func boxCorners(min, max [3]float32) [][3]float32 {
	return [][3]float32{
		{min[0], min[1], min[2]},
		{max[0], min[1], min[2]},
		{min[0], max[1], min[2]},
		{max[0], max[1], min[2]},
		{min[0], min[1], max[2]},
		{max[0], min[1], max[2]},
		{min[0], max[1], max[2]},
		{max[0], max[1], max[2]},
	}
}

// newBoxGLTF builds a single-mesh document whose geometry spans the
// given box, with the mesh hung off one root node.
func newBoxGLTF(min, max [3]float32) *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, boxCorners(min, max))
	doc.Meshes = []*gltf.Mesh{{
		Name: "box",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{gltf.POSITION: uint32(pos)},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "root", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []uint32{0}
	return doc
}

func writeGLB(t *testing.T, doc *gltf.Document, path string) {
	t.Helper()
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func loadGLB(t *testing.T, path string) *Document {
	t.Helper()
	d, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}
	return d
}

func mustBounds(t *testing.T, d *Document) geom.BBox {
	t.Helper()
	b, err := d.Bounds()
	if err != nil {
		t.Fatalf("bounds failed: %v", err)
	}
	return b
}

func TestLoadBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.glb")
	writeGLB(t, newBoxGLTF([3]float32{-2, -1, -0.5}, [3]float32{2, 1, 0.5}), path)

	d := loadGLB(t, path)
	if d.SceneCount() != 1 {
		t.Errorf("scene count = %d, want 1", d.SceneCount())
	}

	b := mustBounds(t, d)
	vecNear(t, b.Min, mgl32.Vec3{-2, -1, -0.5}, "bounds min")
	vecNear(t, b.Max, mgl32.Vec3{2, 1, 0.5}, "bounds max")
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.glb")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBoundsNoScene(t *testing.T) {
	doc := newBoxGLTF([3]float32{0, 0, 0}, [3]float32{1, 1, 1})
	doc.Scenes = nil
	doc.Scene = nil

	path := filepath.Join(t.TempDir(), "noscene.glb")
	writeGLB(t, doc, path)

	d := loadGLB(t, path)
	if d.SceneCount() != 0 {
		t.Errorf("scene count = %d, want 0", d.SceneCount())
	}
	if _, err := d.Bounds(); !errors.Is(err, ErrNoScene) {
		t.Errorf("expected ErrNoScene, got %v", err)
	}
}

func TestBoundsEmptyScene(t *testing.T) {
	doc := gltf.NewDocument()
	path := filepath.Join(t.TempDir(), "empty.glb")
	writeGLB(t, doc, path)

	d := loadGLB(t, path)
	b := mustBounds(t, d)
	if !b.IsEmpty() {
		t.Errorf("scene without geometry should have empty bounds, got %v..%v", b.Min, b.Max)
	}
}

func TestBoundsNodeTranslation(t *testing.T) {
	doc := newBoxGLTF([3]float32{0, 0, 0}, [3]float32{1, 1, 1})
	doc.Nodes[0].Translation = [3]float64{10, -5, 2}

	path := filepath.Join(t.TempDir(), "moved.glb")
	writeGLB(t, doc, path)

	b := mustBounds(t, loadGLB(t, path))
	vecNear(t, b.Min, mgl32.Vec3{10, -5, 2}, "bounds min")
	vecNear(t, b.Max, mgl32.Vec3{11, -4, 3}, "bounds max")
}

func TestBoundsNodeRotation(t *testing.T) {
	doc := newBoxGLTF([3]float32{0, 0, 0}, [3]float32{2, 1, 1})
	// 90 degrees around Z: +X maps to +Y.
	s := math.Sqrt2 / 2
	doc.Nodes[0].Rotation = [4]float64{0, 0, s, s}

	path := filepath.Join(t.TempDir(), "rotated.glb")
	writeGLB(t, doc, path)

	b := mustBounds(t, loadGLB(t, path))
	vecNear(t, b.Min, mgl32.Vec3{-1, 0, 0}, "bounds min")
	vecNear(t, b.Max, mgl32.Vec3{0, 2, 1}, "bounds max")
}

func TestBoundsNodeMatrix(t *testing.T) {
	doc := newBoxGLTF([3]float32{0, 0, 0}, [3]float32{1, 1, 1})
	doc.Nodes[0].Matrix = [16]float64{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		3, 0, 0, 1,
	}

	path := filepath.Join(t.TempDir(), "matrix.glb")
	writeGLB(t, doc, path)

	b := mustBounds(t, loadGLB(t, path))
	vecNear(t, b.Min, mgl32.Vec3{3, 0, 0}, "bounds min")
	vecNear(t, b.Max, mgl32.Vec3{5, 2, 2}, "bounds max")
}

func TestBoundsNestedNodes(t *testing.T) {
	doc := newBoxGLTF([3]float32{0, 0, 0}, [3]float32{1, 1, 1})
	// Re-hang the mesh on a child; parent and child both translate.
	doc.Nodes = []*gltf.Node{
		{Name: "parent", Translation: [3]float64{5, 0, 0}, Children: []uint32{1}},
		{Name: "child", Translation: [3]float64{0, 3, 0}, Mesh: gltf.Index(0)},
	}
	doc.Scenes[0].Nodes = []uint32{0}

	path := filepath.Join(t.TempDir(), "nested.glb")
	writeGLB(t, doc, path)

	b := mustBounds(t, loadGLB(t, path))
	vecNear(t, b.Min, mgl32.Vec3{5, 3, 0}, "bounds min")
	vecNear(t, b.Max, mgl32.Vec3{6, 4, 1}, "bounds max")
}

func TestApplyUniformScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scale.glb")
	writeGLB(t, newBoxGLTF([3]float32{0, 0, 0}, [3]float32{4, 2, 1}), path)

	d := loadGLB(t, path)
	d.ApplyUniformScale(0.25)

	b := mustBounds(t, d)
	vecNear(t, b.Min, mgl32.Vec3{0, 0, 0}, "bounds min")
	vecNear(t, b.Max, mgl32.Vec3{1, 0.5, 0.25}, "bounds max")
}

func TestApplyUniformScaleWithNodeTranslation(t *testing.T) {
	doc := newBoxGLTF([3]float32{0, 0, 0}, [3]float32{2, 2, 2})
	doc.Nodes[0].Translation = [3]float64{8, 0, 0}

	path := filepath.Join(t.TempDir(), "scaled-moved.glb")
	writeGLB(t, doc, path)

	d := loadGLB(t, path)
	// Node translations scale along with the vertices, so world-space
	// extents scale exactly.
	d.ApplyUniformScale(0.5)

	b := mustBounds(t, d)
	vecNear(t, b.Min, mgl32.Vec3{4, 0, 0}, "bounds min")
	vecNear(t, b.Max, mgl32.Vec3{5, 1, 1}, "bounds max")
}

func TestRecenter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recenter.glb")
	writeGLB(t, newBoxGLTF([3]float32{2, 2, 2}, [3]float32{4, 4, 4}), path)

	d := loadGLB(t, path)
	b := mustBounds(t, d)
	d.Recenter(b.Center())

	centered := mustBounds(t, d)
	vecNear(t, centered.Min, mgl32.Vec3{-1, -1, -1}, "bounds min")
	vecNear(t, centered.Max, mgl32.Vec3{1, 1, 1}, "bounds max")
}

func TestRecenterIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idem.glb")
	writeGLB(t, newBoxGLTF([3]float32{1, 2, 3}, [3]float32{3, 4, 5}), path)

	d := loadGLB(t, path)
	b := mustBounds(t, d)
	d.Recenter(b.Center())

	once := mustBounds(t, d)
	d.Recenter(once.Center())
	twice := mustBounds(t, d)

	vecNear(t, twice.Min, once.Min, "bounds min after second centering")
	vecNear(t, twice.Max, once.Max, "bounds max after second centering")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.glb")
	outPath := filepath.Join(dir, "out", "normalized.glb")
	writeGLB(t, newBoxGLTF([3]float32{-2, -1, -0.5}, [3]float32{2, 1, 0.5}), inPath)

	d := loadGLB(t, inPath)
	d.ApplyUniformScale(0.25)
	b := mustBounds(t, d)
	d.Recenter(b.Center())

	if err := d.Save(outPath); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// The written file reflects the transformed geometry.
	reloaded := mustBounds(t, loadGLB(t, outPath))
	vecNear(t, reloaded.Min, mgl32.Vec3{-0.5, -0.25, -0.125}, "reloaded min")
	vecNear(t, reloaded.Max, mgl32.Vec3{0.5, 0.25, 0.125}, "reloaded max")
}

func TestSaveInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inplace.glb")
	writeGLB(t, newBoxGLTF([3]float32{0, 0, 0}, [3]float32{2, 2, 2}), path)

	d := loadGLB(t, path)
	d.ApplyUniformScale(0.5)
	if err := d.Save(path); err != nil {
		t.Fatalf("in-place save failed: %v", err)
	}

	reloaded := mustBounds(t, loadGLB(t, path))
	vecNear(t, reloaded.Max, mgl32.Vec3{1, 1, 1}, "reloaded max")
}

func TestScaleReachesUnreferencedMesh(t *testing.T) {
	// A second mesh outside the primary scene must still be scaled.
	doc := newBoxGLTF([3]float32{0, 0, 0}, [3]float32{1, 1, 1})
	pos := modeler.WritePosition(doc, boxCorners([3]float32{0, 0, 0}, [3]float32{4, 4, 4}))
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "stray",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{gltf.POSITION: uint32(pos)},
		}},
	})

	path := filepath.Join(t.TempDir(), "stray.glb")
	writeGLB(t, doc, path)

	d := loadGLB(t, path)
	d.ApplyUniformScale(0.5)

	for _, pg := range d.byMesh[1] {
		for _, p := range pg.positions {
			for i := 0; i < 3; i++ {
				if p[i] > 2+epsilon {
					t.Fatalf("stray mesh position %v not scaled", p)
				}
			}
		}
	}
}
