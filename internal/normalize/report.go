package normalize

import (
	"fmt"
	"io"
)

// writeReport prints the measurement block for one normalized file.
// The formats are a stable contract for scripts reading stdout: sizes
// use three decimal places, the scale factor four.
func writeReport(w io.Writer, rep Report) {
	o := rep.OriginalSize
	n := rep.NormalizedSize
	fmt.Fprintf(w, "  original size:   %.3f x %.3f x %.3f\n", o.X(), o.Y(), o.Z())
	fmt.Fprintf(w, "  max dimension:   %.3f\n", rep.MaxDimension)
	fmt.Fprintf(w, "  scale factor:    %.4f\n", rep.ScaleFactor)
	fmt.Fprintf(w, "  normalized size: %.3f x %.3f x %.3f\n", n.X(), n.Y(), n.Z())
}
