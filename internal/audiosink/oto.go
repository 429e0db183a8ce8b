//go:build !headless

package audiosink

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoSink drives oto's float32 player from the shared S16 ring, converting
// samples on the audio callback thread the way the teacher's OtoPlayer.Read
// converts chip output on demand.
type OtoSink struct {
	ctx    *oto.Context
	player *oto.Player
	ring   *ring

	mutex   sync.Mutex
	started bool
}

// New creates a Sink backed by oto at sampleRate.
func New(sampleRate int) (Sink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSink{ctx: ctx, ring: newRing(sampleRate)} // ~1s of headroom
	s.player = ctx.NewPlayer(s)
	return s, nil
}

// Read implements io.Reader for oto's player, converting queued S16
// samples to little-endian float32 on demand; starved output is silence.
func (s *OtoSink) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		sample, ok := s.ring.pop()
		var f float32
		if ok {
			f = float32(sample) / 32768.0
		}
		putFloat32LE(p[i*4:], f)
	}
	return n * 4, nil
}

func putFloat32LE(p []byte, f float32) {
	bits := math.Float32bits(f)
	p[0] = byte(bits)
	p[1] = byte(bits >> 8)
	p[2] = byte(bits >> 16)
	p[3] = byte(bits >> 24)
}

// Push queues samples for playback.
func (s *OtoSink) Push(samples []int16) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.ring.push(samples)
}

// Start begins playback.
func (s *OtoSink) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.started {
		s.player.Play()
		s.started = true
	}
	return nil
}

// Stop pauses playback.
func (s *OtoSink) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.started {
		s.player.Pause()
		s.started = false
	}
}

// Close releases the player.
func (s *OtoSink) Close() {
	s.Stop()
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.player != nil {
		s.player.Close()
		s.player = nil
	}
}
