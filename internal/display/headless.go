//go:build headless

package display

// HeadlessPresenter discards frames, matching the teacher's
// HeadlessVideoOutput stand-in used in CI and toolchain-less builds.
type HeadlessPresenter struct {
	started bool
}

// New creates a Presenter that discards every frame. width, height and
// scale are accepted for API symmetry with the ebiten-backed build and
// otherwise ignored.
func New(width, height, scale int) Presenter { return &HeadlessPresenter{} }

// Present discards frame.
func (h *HeadlessPresenter) Present(frame []byte) error { return nil }

// Start marks the presenter started.
func (h *HeadlessPresenter) Start() error {
	h.started = true
	return nil
}

// Stop marks the presenter stopped.
func (h *HeadlessPresenter) Stop() error {
	h.started = false
	return nil
}

// IsStarted reports whether Start has been called without a matching Stop.
func (h *HeadlessPresenter) IsStarted() bool { return h.started }
