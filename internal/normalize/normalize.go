// Package normalize rescales model documents so each fits within a unit
// bounding box, centered on the origin. It drives the per-file pipeline
// (bounds, scale, recenter, save) and the batch loop over a directory.
package normalize

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toolittlecakes/ar-art-prod/internal/asset"
	"github.com/toolittlecakes/ar-art-prod/pkg/geom"
)

// ErrDegenerateGeometry marks a model whose bounding box has zero
// extent on every axis, such as a single point or no geometry at all.
var ErrDegenerateGeometry = errors.New("degenerate geometry: bounding box has zero extent")

// Document is the slice of a loaded model the normalizer needs.
// It matches *asset.Document; tests substitute an in-memory fake.
type Document interface {
	Bounds() (geom.BBox, error)
	ApplyUniformScale(scale float32)
	Recenter(pivot mgl32.Vec3)
	Save(path string) error
}

// Loader opens model documents from disk.
type Loader interface {
	Load(path string) (Document, error)
}

// GLBLoader loads binary glTF documents via the asset package.
type GLBLoader struct{}

func (GLBLoader) Load(path string) (Document, error) {
	return asset.Load(path)
}

var (
	_ Loader   = GLBLoader{}
	_ Document = (*asset.Document)(nil)
)

// Report carries the measurements of one successfully normalized file.
type Report struct {
	OriginalSize   mgl32.Vec3
	MaxDimension   float32
	ScaleFactor    float32
	NormalizedSize mgl32.Vec3
}

// FitScale returns the uniform scale factor that fits the box's largest
// dimension into a unit cube: 1 / max(sizeX, sizeY, sizeZ). The factor
// is the same on all three axes so proportions are preserved.
func FitScale(b geom.BBox) (float32, error) {
	maxDim := b.MaxDimension()
	if maxDim == 0 {
		return 0, ErrDegenerateGeometry
	}
	return 1 / maxDim, nil
}

// Normalize scales doc to fit a unit bounding box and centers it on the
// origin. The bounding box is computed exactly once to derive the scale
// factor; the pivot comes from the post-scale bounds, so centering must
// run after scaling. The returned report has no normalized size yet;
// the caller fills it in after saving.
func Normalize(doc Document) (Report, error) {
	bounds, err := doc.Bounds()
	if err != nil {
		return Report{}, err
	}

	scale, err := FitScale(bounds)
	if err != nil {
		return Report{}, err
	}

	doc.ApplyUniformScale(scale)

	scaled, err := doc.Bounds()
	if err != nil {
		return Report{}, err
	}
	doc.Recenter(scaled.Center())

	return Report{
		OriginalSize: bounds.Size(),
		MaxDimension: bounds.MaxDimension(),
		ScaleFactor:  scale,
	}, nil
}
