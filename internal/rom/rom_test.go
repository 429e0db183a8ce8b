package rom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zayn-spectrum/zxemu/internal/memory"
)

func writeTempROM(t *testing.T, banks int) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.rom")
	if err := os.WriteFile(path, make([]byte, banks*bankSize), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadValidatesSizeForModel(t *testing.T) {
	path := writeTempROM(t, 1)
	data, err := Load(path, memory.Model48K)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data) != bankSize {
		t.Fatalf("len = %d, want %d", len(data), bankSize)
	}

	if _, err := Load(path, memory.Model128K); err == nil {
		t.Fatalf("Load with mismatched model: want error, got nil")
	}
}

func TestDetectModel(t *testing.T) {
	cases := []struct {
		banks int
		want  memory.Model
	}{
		{1, memory.Model48K},
		{2, memory.Model128K},
		{4, memory.ModelPlus3},
	}
	for _, c := range cases {
		got, err := DetectModel(make([]byte, c.banks*bankSize))
		if err != nil {
			t.Fatalf("DetectModel(%d banks): %v", c.banks, err)
		}
		if got != c.want {
			t.Fatalf("DetectModel(%d banks) = %v, want %v", c.banks, got, c.want)
		}
	}

	if _, err := DetectModel(make([]byte, 3*bankSize)); err == nil {
		t.Fatalf("DetectModel(3 banks): want error, got nil")
	}
}
