//go:build headless

package audiosink

// HeadlessSink discards pushed samples, matching the teacher's headless
// OtoPlayer stand-in (audio_backend_headless.go) used in CI and
// toolchain-less environments.
type HeadlessSink struct {
	started bool
}

// New creates a Sink that discards every sample. sampleRate is accepted
// for API symmetry with the oto-backed build and otherwise ignored.
func New(sampleRate int) (Sink, error) {
	return &HeadlessSink{}, nil
}

// Push discards samples.
func (s *HeadlessSink) Push(samples []int16) {}

// Start marks the sink started.
func (s *HeadlessSink) Start() error {
	s.started = true
	return nil
}

// Stop marks the sink stopped.
func (s *HeadlessSink) Stop() { s.started = false }

// Close is a no-op.
func (s *HeadlessSink) Close() {}
