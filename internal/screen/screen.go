// Package screen renders the 256x192 active display area — bitmap plus
// attribute-cell colouring, including the FLASH swap — into the shared
// ARGB framebuffer the border.Rasterizer paints its border into. Grounded
// on the teacher's ULAEngine.RenderFrame (video_ula.go): same non-linear
// bitmap row addressing, same attribute parse, same per-cell 8-pixel
// write loop, but driven once per frame from VRAM through memory.Map
// rather than from a device's own private VRAM copy.
package screen

import "github.com/zayn-spectrum/zxemu/internal/border"

const (
	displayWidth  = border.DisplayWidth  // 256
	displayHeight = border.DisplayHeight // 192
	cellsX        = displayWidth / 8     // 32
	attrOffset    = 0x1800               // VRAM-relative: 6144 bytes of bitmap precede attributes
)

// VRAM is the subset of memory.Map the renderer needs: direct byte reads
// from the currently-selected video bank (bank 5, or bank 7 when the
// 128K/+3 shadow-screen latch selects it).
type VRAM interface {
	VRAMBank() *[0x4000]byte
}

// Renderer paints the active display area into a shared framebuffer.
type Renderer struct {
	fb []byte // shared with border.Rasterizer: FrameWidth*FrameHeight*4

	colorU32 [16]uint32 // [0..7] normal, [8..15] bright
	rowStart [displayHeight]uint16
}

// New creates a Renderer painting into fb, which must be the same buffer
// passed to border.New.
func New(fb []byte) *Renderer {
	r := &Renderer{fb: fb}
	for i := 0; i < 8; i++ {
		n := border.ColorNormal[i]
		r.colorU32[i] = uint32(n[2]) | uint32(n[1])<<8 | uint32(n[0])<<16 | 0xFF000000
		b := border.ColorBright[i]
		r.colorU32[8+i] = uint32(b[2]) | uint32(b[1])<<8 | uint32(b[0])<<16 | 0xFF000000
	}
	for y := 0; y < displayHeight; y++ {
		highY := (y & 0xC0) << 5
		lowY := (y & 0x07) << 8
		midY := (y & 0x38) << 2
		r.rowStart[y] = uint16(highY + lowY + midY)
	}
	return r
}

// RenderFrame paints the whole 256x192 area from vram's currently
// selected bank, swapping INK/PAPER on any FLASH-attributed cell when
// flashPhase is 1.
func (r *Renderer) RenderFrame(vram VRAM, flashPhase int) {
	bank := vram.VRAMBank()
	flashOn := flashPhase != 0

	for y := 0; y < displayHeight; y++ {
		rowAddr := r.rowStart[y]
		cellY := y >> 3
		attrRowBase := uint16(attrOffset + cellY*cellsX)

		frameY := border.BorderSize + y
		frameRowBase := frameY * border.FrameWidth * 4

		for cellX := 0; cellX < cellsX; cellX++ {
			bitmapByte := bank[rowAddr+uint16(cellX)]
			attr := bank[attrRowBase+uint16(cellX)]

			ink := attr & 0x07
			paper := (attr >> 3) & 0x07
			bright := attr & 0x40 != 0
			flash := attr & 0x80 != 0

			fg, bg := ink, paper
			if flash && flashOn {
				fg, bg = bg, fg
			}
			var brightOff uint8
			if bright {
				brightOff = 8
			}
			fgU32 := r.colorU32[brightOff+fg]
			bgU32 := r.colorU32[brightOff+bg]

			frameX := border.BorderSize + cellX*8
			pixelBase := frameRowBase + frameX*4
			for bit := 7; bit >= 0; bit-- {
				off := pixelBase + (7-bit)*4
				c := bgU32
				if bitmapByte>>uint(bit)&1 != 0 {
					c = fgU32
				}
				r.fb[off+0] = byte(c >> 16)
				r.fb[off+1] = byte(c >> 8)
				r.fb[off+2] = byte(c)
				r.fb[off+3] = byte(c >> 24)
			}
		}
	}
}
