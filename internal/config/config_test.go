package config

import (
	"errors"
	"testing"

	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if c.BaseRAMKiB != 48 {
		t.Fatalf("BaseRAMKiB = %d, want 48", c.BaseRAMKiB)
	}
	if c.NoThrottle {
		t.Fatalf("NoThrottle = true by default")
	}
}

func TestParseFlags(t *testing.T) {
	c, err := Parse([]string{"-r", "48.rom", "-m", "16", "-t", "game.tap", "-f"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.ROMPath != "48.rom" || c.BaseRAMKiB != 16 || c.FastTAP != "game.tap" || !c.NoThrottle {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestParseRejectsOutOfRangeRAM(t *testing.T) {
	_, err := Parse([]string{"-m", "64"})
	if !errors.Is(err, zerr.ErrConfig) {
		t.Fatalf("err = %v, want zerr.ErrConfig", err)
	}
}

func TestParseRejectsConflictingTapeFlags(t *testing.T) {
	_, err := Parse([]string{"-T", "a.tap", "-z", "b.tzx"})
	if !errors.Is(err, zerr.ErrConfig) {
		t.Fatalf("err = %v, want zerr.ErrConfig", err)
	}

	_, err = Parse([]string{"-t", "a.tap", "-z", "b.tzx"})
	if !errors.Is(err, zerr.ErrConfig) {
		t.Fatalf("err = %v, want zerr.ErrConfig", err)
	}
}
