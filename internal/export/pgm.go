package export

import (
	"fmt"
	"io"
)

// WritePGM writes a square grayscale raster as a binary PGM (P5) image,
// the common interchange format for occupancy-grid maps. raster must be
// row-major with exactly size² bytes.
func WritePGM(w io.Writer, size int, raster []byte) error {
	if len(raster) != size*size {
		return fmt.Errorf("raster is %d bytes, want %d", len(raster), size*size)
	}
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", size, size); err != nil {
		return err
	}
	_, err := w.Write(raster)
	return err
}
