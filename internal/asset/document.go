// Package asset wraps binary glTF (GLB) documents behind the narrow
// surface the normalizer needs: load, save, bounds, uniform scale,
// recenter. All container parsing and serialization is delegated to
// github.com/qmuntal/gltf; this package never touches GLB bytes itself.
package asset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Asset errors.
var (
	ErrNoScene = errors.New("document has no scenes")
)

// primGeometry holds one primitive's decoded vertex positions.
type primGeometry struct {
	mesh      int
	prim      int
	positions [][3]float32
	dirty     bool
}

// Document is an in-memory GLB model: the parsed container plus the
// decoded POSITION data of every mesh primitive. It is owned by the
// caller for the duration of one file's processing and never shared.
type Document struct {
	doc    *gltf.Document
	prims  []*primGeometry
	byMesh map[int][]*primGeometry
}

// Load opens a GLB file and decodes the vertex positions of every mesh
// primitive. The whole file is read into memory before Load returns, so
// saving back to the same path later is safe.
func Load(path string) (*Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}

	d := &Document{
		doc:    doc,
		byMesh: make(map[int][]*primGeometry),
	}
	if err := d.decodePositions(); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return d, nil
}

// decodePositions reads the POSITION accessor of every primitive in the
// document. Primitives without positions contribute no geometry.
func (d *Document) decodePositions() error {
	for mi, mesh := range d.doc.Meshes {
		for pi, prim := range mesh.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if int(posIdx) >= len(d.doc.Accessors) {
				return fmt.Errorf("mesh %d primitive %d: position accessor %d out of range", mi, pi, posIdx)
			}
			positions, err := modeler.ReadPosition(d.doc, d.doc.Accessors[posIdx], nil)
			if err != nil {
				return fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
			pg := &primGeometry{mesh: mi, prim: pi, positions: positions}
			d.prims = append(d.prims, pg)
			d.byMesh[mi] = append(d.byMesh[mi], pg)
		}
	}
	return nil
}

// SceneCount returns the number of scenes in the document.
func (d *Document) SceneCount() int {
	return len(d.doc.Scenes)
}

// Save serializes the document to path as binary glTF, re-encoding any
// mutated vertex positions first. The parent directory is created if
// missing. Path may equal the path the document was loaded from.
func (d *Document) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	d.encodePositions()

	if err := gltf.SaveBinary(d.doc, path); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// encodePositions writes mutated position data into fresh accessors and
// repoints the primitives at them. The superseded accessors stay in the
// container; readers only follow the attribute references.
func (d *Document) encodePositions() {
	for _, pg := range d.prims {
		if !pg.dirty {
			continue
		}
		acc := modeler.WritePosition(d.doc, pg.positions)
		d.doc.Meshes[pg.mesh].Primitives[pg.prim].Attributes[gltf.POSITION] = uint32(acc)
		pg.dirty = false
	}
}
