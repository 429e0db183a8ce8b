package screen

import (
	"testing"

	"github.com/zayn-spectrum/zxemu/internal/border"
)

type fakeVRAM struct {
	bank [0x4000]byte
}

func (f *fakeVRAM) VRAMBank() *[0x4000]byte { return &f.bank }

func pixelAt(fb []byte, x, y int) (r, g, b, a byte) {
	off := (y*border.FrameWidth + x) * 4
	return fb[off+0], fb[off+1], fb[off+2], fb[off+3]
}

func TestRenderFrameSolidCell(t *testing.T) {
	fb := make([]byte, border.FrameWidth*border.FrameHeight*4)
	r := New(fb)
	vram := &fakeVRAM{}

	// Top-left cell: all bits set (ink everywhere), attribute ink=1 (blue),
	// paper=0 (black), not bright, not flashing.
	vram.bank[0] = 0xFF
	vram.bank[0x1800] = 0x01

	r.RenderFrame(vram, 0)

	x, y := border.BorderSize, border.BorderSize
	gotR, gotG, gotB, gotA := pixelAt(fb, x, y)
	wantR, wantG, wantB := border.ColorNormal[1][0], border.ColorNormal[1][1], border.ColorNormal[1][2]
	if gotR != wantR || gotG != wantG || gotB != wantB || gotA != 0xFF {
		t.Fatalf("pixel = (%d,%d,%d,%d), want (%d,%d,%d,255)", gotR, gotG, gotB, gotA, wantR, wantG, wantB)
	}
}

func TestRenderFrameFlashSwapsInkPaper(t *testing.T) {
	fb := make([]byte, border.FrameWidth*border.FrameHeight*4)
	r := New(fb)
	vram := &fakeVRAM{}

	vram.bank[0] = 0xFF   // all ink bits set
	vram.bank[0x1800] = 0x80 | (2 << 3) | 1 // flash, paper=2, ink=1

	r.RenderFrame(vram, 0) // flash phase 0: no swap, ink (1) shows
	x, y := border.BorderSize, border.BorderSize
	r0, g0, b0, _ := pixelAt(fb, x, y)
	if r0 != border.ColorNormal[1][0] || g0 != border.ColorNormal[1][1] || b0 != border.ColorNormal[1][2] {
		t.Fatalf("flash phase 0 pixel = (%d,%d,%d), want ink colour %v", r0, g0, b0, border.ColorNormal[1])
	}

	r.RenderFrame(vram, 1) // flash phase 1: swapped, paper (2) shows where bits are set
	r1, g1, b1, _ := pixelAt(fb, x, y)
	if r1 != border.ColorNormal[2][0] || g1 != border.ColorNormal[2][1] || b1 != border.ColorNormal[2][2] {
		t.Fatalf("flash phase 1 pixel = (%d,%d,%d), want paper colour %v", r1, g1, b1, border.ColorNormal[2])
	}
}

func TestRenderFrameBrightSelectsBrightPalette(t *testing.T) {
	fb := make([]byte, border.FrameWidth*border.FrameHeight*4)
	r := New(fb)
	vram := &fakeVRAM{}

	vram.bank[0] = 0xFF
	vram.bank[0x1800] = 0x40 | 1 // bright, ink=1

	r.RenderFrame(vram, 0)
	x, y := border.BorderSize, border.BorderSize
	gotR, gotG, gotB, _ := pixelAt(fb, x, y)
	want := border.ColorBright[1]
	if gotR != want[0] || gotG != want[1] || gotB != want[2] {
		t.Fatalf("pixel = (%d,%d,%d), want bright ink colour %v", gotR, gotG, gotB, want)
	}
}
