// Package rom loads ROM images and derives the memory.Model a given ROM
// set implies, following the teacher's plain os.ReadFile-based file
// loaders (ay_parser.go, cpu_6502_runner.go) rather than any archive or
// resource-embedding library.
package rom

import (
	"fmt"
	"os"

	"github.com/zayn-spectrum/zxemu/internal/memory"
	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

const bankSize = 16 * 1024

// Load reads a ROM image file and validates its length against model: 48K
// takes exactly one 16 KiB bank, 128K exactly two, +3 exactly four.
func Load(path string, model memory.Model) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading rom %q: %v", zerr.ErrIO, path, err)
	}
	want := banksFor(model)
	if len(data) != want*bankSize {
		return nil, fmt.Errorf("%w: rom %q is %d bytes, want %d for this model", zerr.ErrFormat, path, len(data), want*bankSize)
	}
	return data, nil
}

func banksFor(model memory.Model) int {
	switch model {
	case memory.Model128K:
		return 2
	case memory.ModelPlus3:
		return 4
	default:
		return 1
	}
}

// DetectModel infers a Model from a ROM image's size alone, for callers
// that load a ROM before knowing which -m flag the user intended to pair
// it with (spec.md §6 "-m" is otherwise the source of truth when given).
func DetectModel(data []byte) (memory.Model, error) {
	switch len(data) / bankSize {
	case 1:
		return memory.Model48K, nil
	case 2:
		return memory.Model128K, nil
	case 4:
		return memory.ModelPlus3, nil
	default:
		return 0, fmt.Errorf("%w: rom image is %d bytes, not a recognised 1/2/4-bank size", zerr.ErrFormat, len(data))
	}
}
