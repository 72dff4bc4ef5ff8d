// Package trace reads and writes pose trace files: CSV logs of
// timestamped robot poses that the visualizer can replay.
package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Frame is one timestamped pose sample.
type Frame struct {
	T        float64 // seconds since start
	X        float64 // meters
	Y        float64 // meters
	ThetaDeg float64 // degrees, 0 = along +X
}

var header = []string{"time", "x", "y", "theta"}

// Writer appends frames to a trace file created by Create.
type Writer struct {
	f *os.File
	w *csv.Writer
}

// Create opens path for writing and emits the header row.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	return &Writer{f: f, w: w}, nil
}

// Append writes one frame.
func (w *Writer) Append(fr Frame) error {
	return w.w.Write([]string{
		strconv.FormatFloat(fr.T, 'f', 6, 64),
		strconv.FormatFloat(fr.X, 'f', 6, 64),
		strconv.FormatFloat(fr.Y, 'f', 6, 64),
		strconv.FormatFloat(fr.ThetaDeg, 'f', 6, 64),
	})
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// ReadFile loads every frame from a trace file, in order. Rows that do
// not parse are skipped.
func ReadFile(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("trace %s is empty", path)
	}

	frames := make([]Frame, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}

		vals := make([]float64, 4)
		ok := true
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		frames = append(frames, Frame{T: vals[0], X: vals[1], Y: vals[2], ThetaDeg: vals[3]})
	}

	return frames, nil
}
