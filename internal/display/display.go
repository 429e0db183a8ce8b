// Package display presents the border+screen ARGB framebuffer
// (border.FrameWidth x border.FrameHeight) to the host. The build-tag
// split between ebiten.go and headless.go mirrors the teacher's
// EbitenOutput/HeadlessVideoOutput pair (video_backend_ebiten.go,
// video_backend_headless.go).
package display

// Presenter receives a full-frame ARGB buffer once per emulated frame.
type Presenter interface {
	Present(frame []byte) error
	Start() error
	Stop() error
	IsStarted() bool
}
