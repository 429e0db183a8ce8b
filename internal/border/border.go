// Package border implements the cycle-accurate border rasteriser: it paints
// border pixels into the shared ARGB framebuffer at the exact T-state the
// real ULA would have output them, rather than filling the whole border in
// one go at frame end (spec.md §4.4, §9 "cycle-accurate border vs scanline
// raster").
package border

import "github.com/zayn-spectrum/zxemu/internal/clock"

const (
	DisplayWidth  = 256
	DisplayHeight = 192

	BorderSize = 32

	FrameWidth  = DisplayWidth + 2*BorderSize  // 320
	FrameHeight = DisplayHeight + 2*BorderSize // 256
)

// Timing describes one model's per-line T-state layout. 48K uses 224
// T-states/line with 24-T-state borders either side of 128 T-states of
// active video; 128K/+3 use 228 T-states/line with 26-T-state borders.
type Timing struct {
	TStatesPerLine int
	BorderWidth    int // T-states of border on each side
}

var Timing48K = Timing{TStatesPerLine: 224, BorderWidth: 24}
var Timing128K = Timing{TStatesPerLine: 228, BorderWidth: 26}

// Palette, normal and bright, indexed 0-7 (black can't brighten).
var ColorNormal = [8][3]uint8{
	{0, 0, 0}, {0, 0, 205}, {205, 0, 0}, {205, 0, 205},
	{0, 205, 0}, {0, 205, 205}, {205, 205, 0}, {205, 205, 205},
}

var ColorBright = [8][3]uint8{
	{0, 0, 0}, {0, 0, 255}, {255, 0, 0}, {255, 0, 255},
	{0, 255, 0}, {0, 255, 255}, {255, 255, 0}, {255, 255, 255},
}

// Rasterizer owns the shared framebuffer's border region and paints it
// incrementally as the T-state clock advances.
type Rasterizer struct {
	timing Timing
	fb     []byte // FrameWidth*FrameHeight*4 ARGB, shared with the VRAM raster

	colorU32 [8]uint32

	border uint8

	frameOrigin clock.TState
	sliceOrigin clock.TState
	drawnTo     clock.TState // frame-relative T-state painted up to
}

// New creates a Rasterizer painting into fb, which must be
// FrameWidth*FrameHeight*4 bytes and is owned jointly with the VRAM raster.
func New(timing Timing, fb []byte) *Rasterizer {
	r := &Rasterizer{timing: timing, fb: fb}
	for i := 0; i < 8; i++ {
		c := ColorNormal[i]
		r.colorU32[i] = uint32(c[2]) | uint32(c[1])<<8 | uint32(c[0])<<16 | 0xFF000000
	}
	return r
}

// SetBorder changes the current border colour (bits 0-2 only). Callers must
// have already advanced to the current T-state so the old colour's pixels
// are committed first.
func (r *Rasterizer) SetBorder(color uint8) {
	r.border = color & 0x07
}

// Border returns the current border colour.
func (r *Rasterizer) Border() uint8 { return r.border }

// BeginSlice anchors the slice origin to the previous frameOrigin.
func (r *Rasterizer) BeginSlice(origin clock.TState) {
	r.sliceOrigin = origin
}

// EndSlice paints up to slice_origin+cpuTStates and re-anchors frameOrigin.
func (r *Rasterizer) EndSlice(cpuTStates uint64) {
	tNow := r.sliceOrigin + clock.TState(cpuTStates)
	r.AdvanceTo(tNow)
	r.frameOrigin = tNow
}

// FrameOrigin returns the T-state the last EndSlice painted to.
func (r *Rasterizer) FrameOrigin() clock.TState { return r.frameOrigin }

// NewFrame resets drawnTo to 0 at frame boundaries (invariant 4: drawnTo is
// monotonic within a frame, resets only here).
func (r *Rasterizer) NewFrame() {
	r.drawnTo = 0
	r.frameOrigin = 0
}

// AdvanceTo paints border pixels from drawnTo up to tAbs (an absolute
// T-state; the rasteriser tracks drawnTo in frame-relative terms internally
// and converts tAbs by subtracting the slice origin, which is the frame's
// first T-state because the scheduler runs each frame as one slice).
func (r *Rasterizer) AdvanceTo(tAbs clock.TState) {
	if tAbs <= r.sliceOrigin {
		return
	}
	tRel := tAbs - r.sliceOrigin
	if tRel <= r.drawnTo {
		return
	}

	lineT := r.timing.TStatesPerLine
	from := int64(r.drawnTo)
	to := int64(tRel)
	r.drawnTo = tRel

	for from < to {
		line := from / int64(lineT)
		lineStart := line * int64(lineT)
		lineEnd := lineStart + int64(lineT)
		segEnd := to
		if segEnd > lineEnd {
			segEnd = lineEnd
		}
		r.paintLineSegment(int(line), int(from-lineStart), int(segEnd-lineStart))
		from = segEnd
	}
}

// paintLineSegment paints the T-state range [t0,t1) of the given absolute
// line index, mapping T-states linearly onto the pixel columns they
// correspond to, and skipping lines outside the visible border bands.
func (r *Rasterizer) paintLineSegment(line, t0, t1 int) {
	frameLine := line % 312 // PAL frame is always 312 lines regardless of model
	y := -1
	switch {
	case frameLine >= 16 && frameLine < 64: // top border + overscan
		y = frameLine - 16
	case frameLine >= 64 && frameLine < 256: // active video: border sides only
		y = BorderSize + (frameLine - 64)
	case frameLine >= 256 && frameLine < 288: // bottom border
		y = BorderSize + DisplayHeight + (frameLine - 256)
	default:
		return // retrace/flyback: invisible
	}
	if y < 0 || y >= FrameHeight {
		return
	}

	bw := r.timing.BorderWidth
	activeStart := bw
	activeEnd := activeStart + DisplayWidth/2 // two pixels per T-state

	leftLo, leftHi := clampRange(t0, t1, 0, activeStart)
	if leftHi > leftLo {
		x0 := leftLo * BorderSize / bw
		x1 := leftHi * BorderSize / bw
		r.fillRow(y, x0, x1)
	}

	rightLo, rightHi := clampRange(t0, t1, activeEnd, activeEnd+bw)
	if rightHi > rightLo {
		x0 := FrameWidth - BorderSize + (rightLo-activeEnd)*BorderSize/bw
		x1 := FrameWidth - BorderSize + (rightHi-activeEnd)*BorderSize/bw
		r.fillRow(y, x0, x1)
	}

	// Active-video columns are never painted here: the VRAM raster owns
	// them at frame end. If this line is outside the screen band
	// (frameLine<64 or >=256) the "active" span is still border, already
	// covered above since activeStart/activeEnd bound the whole line for
	// non-screen lines by construction of the caller.
	if frameLine < 64 || frameLine >= 256 {
		midLo, midHi := clampRange(t0, t1, activeStart, activeEnd)
		if midHi > midLo {
			x0 := BorderSize + (midLo-activeStart)*DisplayWidth/(activeEnd-activeStart)
			x1 := BorderSize + (midHi-activeStart)*DisplayWidth/(activeEnd-activeStart)
			r.fillRow(y, x0, x1)
		}
	}
}

func clampRange(t0, t1, lo, hi int) (int, int) {
	if t0 < lo {
		t0 = lo
	}
	if t1 > hi {
		t1 = hi
	}
	if t1 < t0 {
		t1 = t0
	}
	return t0, t1
}

func (r *Rasterizer) fillRow(y, x0, x1 int) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > FrameWidth {
		x1 = FrameWidth
	}
	if x0 >= x1 {
		return
	}
	c := r.colorU32[r.border]
	rowBase := y * FrameWidth * 4
	for x := x0; x < x1; x++ {
		off := rowBase + x*4
		r.fb[off+0] = byte(c >> 16)
		r.fb[off+1] = byte(c >> 8)
		r.fb[off+2] = byte(c)
		r.fb[off+3] = byte(c >> 24)
	}
}
