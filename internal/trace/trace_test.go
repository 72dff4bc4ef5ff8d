package trace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv")

	frames := []Frame{
		{T: 0.0, X: 1.0, Y: 2.0, ThetaDeg: 0},
		{T: 0.1, X: 1.1, Y: 2.0, ThetaDeg: 15},
		{T: 0.2, X: 1.2, Y: 2.1, ThetaDeg: -30},
	}

	w, err := Create(path)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	for _, fr := range frames {
		if err := w.Append(fr); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != len(frames) {
		t.Fatalf("expected %d frames, got %d", len(frames), len(got))
	}
	for i := range frames {
		if got[i] != frames[i] {
			t.Errorf("frame %d: expected %+v, got %+v", i, frames[i], got[i])
		}
	}
}

func TestReadSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv")
	data := "time,x,y,theta\n0.0,1.0,2.0,0.0\nnot,a,valid,row\n0.1,1.1,2.1,5.0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	frames, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[1].ThetaDeg != 5.0 {
		t.Errorf("expected theta 5.0, got %f", frames[1].ThetaDeg)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Error("expected error for empty trace")
	}
}
