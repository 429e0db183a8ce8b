package main

import (
	"testing"

	"github.com/zayn-spectrum/zxemu/internal/border"
	"github.com/zayn-spectrum/zxemu/internal/clock"
	"github.com/zayn-spectrum/zxemu/internal/memory"
	"github.com/zayn-spectrum/zxemu/internal/screen"
	"github.com/zayn-spectrum/zxemu/internal/tape"
)

func TestTapeSourcesOfSkipsNilEngines(t *testing.T) {
	if got := tapeSourcesOf(nil, nil); got != nil {
		t.Fatalf("expected no sources, got %v", got)
	}

	blocks := []tape.Block{}
	player := tape.NewPlayer(blocks, discardEdgeSink{})
	sources := tapeSourcesOf(player, nil)
	if len(sources) != 1 {
		t.Fatalf("expected exactly one source, got %d", len(sources))
	}
}

type discardEdgeSink struct{}

func (discardEdgeSink) AdvanceTo(t clock.TState) {}
func (discardEdgeSink) SetTapeLevel(level bool)  {}

func TestVideoAdapterPresentsSharedFramebuffer(t *testing.T) {
	fb := make([]byte, border.FrameWidth*border.FrameHeight*4)
	mem := memory.New(memory.Model48K, make([]byte, 16*1024))
	presenter := &recordingPresenter{}
	v := &videoAdapter{screen: screen.New(fb), mem: mem, fb: fb, presenter: presenter}

	v.RenderFrame(0)

	if !presenter.presented {
		t.Fatal("expected Present to be called")
	}
	if len(presenter.lastFrame) != len(fb) {
		t.Fatalf("presented frame length = %d, want %d", len(presenter.lastFrame), len(fb))
	}
}

type recordingPresenter struct {
	presented bool
	lastFrame []byte
}

func (r *recordingPresenter) Present(frame []byte) error {
	r.presented = true
	r.lastFrame = frame
	return nil
}
func (r *recordingPresenter) Start() error   { return nil }
func (r *recordingPresenter) Stop() error    { return nil }
func (r *recordingPresenter) IsStarted() bool { return r.presented }
