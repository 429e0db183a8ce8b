//go:build !headless

package display

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenPresenter is an ebiten.Game whose Draw simply blits the latest
// frame the emulator handed it, scaled to the window; the emulator drives
// frame timing itself (the scheduler calls Present once per emulated
// frame), so Update only services window-level concerns: fullscreen
// toggling on F11, close detection, and forwarding F6-F12 presses to
// HotkeyHandler when one is set, matching the teacher's EbitenOutput.Update.
type EbitenPresenter struct {
	width, height int
	scale         int
	fullscreen    bool

	img   *ebiten.Image
	frame []byte

	mutex   sync.RWMutex
	started bool

	HotkeyHandler func(key ebiten.Key)
}

// New creates a presenter for a width x height ARGB framebuffer, shown
// scaled by scale.
func New(width, height, scale int) Presenter {
	return &EbitenPresenter{
		width: width, height: height, scale: scale,
		img: ebiten.NewImage(width, height),
	}
}

// Start opens the window and registers this presenter as ebiten's Game.
func (e *EbitenPresenter) Start() error {
	e.mutex.Lock()
	e.started = true
	e.mutex.Unlock()

	ebiten.SetWindowSize(e.width*e.scale, e.height*e.scale)
	ebiten.SetWindowTitle("ZX Spectrum")
	go func() {
		if err := ebiten.RunGame(e); err != nil {
			fmt.Println("display:", err)
		}
	}()
	return nil
}

// Stop marks the presenter stopped; ebiten.RunGame exits on its own when
// the window closes (Update returning ebiten.Termination).
func (e *EbitenPresenter) Stop() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.started = false
	return nil
}

// IsStarted reports whether the window is currently running.
func (e *EbitenPresenter) IsStarted() bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.started
}

// Present hands over one frame's ARGB bytes (width*height*4).
func (e *EbitenPresenter) Present(frame []byte) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if len(frame) != e.width*e.height*4 {
		return fmt.Errorf("display: frame is %d bytes, want %d", len(frame), e.width*e.height*4)
	}
	e.frame = frame
	return nil
}

// Update implements ebiten.Game.
func (e *EbitenPresenter) Update() error {
	if ebiten.IsWindowBeingClosed() {
		e.mutex.Lock()
		e.started = false
		e.mutex.Unlock()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		e.fullscreen = !e.fullscreen
		ebiten.SetFullscreen(e.fullscreen)
	}
	if e.HotkeyHandler != nil {
		for _, k := range pressedHotkeys {
			if inpututil.IsKeyJustPressed(k) {
				e.HotkeyHandler(k)
			}
		}
	}
	return nil
}

// pressedHotkeys are the F6-F12 function keys spec.md §6 assigns to
// rewind/pause/snapshot/throttle actions; the emulator's HotkeyHandler
// decides what each one does.
var pressedHotkeys = []ebiten.Key{
	ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9,
	ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
}

// Draw implements ebiten.Game.
func (e *EbitenPresenter) Draw(screen *ebiten.Image) {
	e.mutex.RLock()
	frame := e.frame
	e.mutex.RUnlock()
	if frame == nil {
		return
	}
	e.img.WritePixels(frame)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(e.scale), float64(e.scale))
	screen.DrawImage(e.img, op)
}

// Layout implements ebiten.Game.
func (e *EbitenPresenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width * e.scale, e.height * e.scale
}
