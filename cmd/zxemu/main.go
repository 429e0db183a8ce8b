package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zayn-spectrum/zxemu/internal/audiosink"
	"github.com/zayn-spectrum/zxemu/internal/beeper"
	"github.com/zayn-spectrum/zxemu/internal/border"
	"github.com/zayn-spectrum/zxemu/internal/clock"
	"github.com/zayn-spectrum/zxemu/internal/config"
	"github.com/zayn-spectrum/zxemu/internal/cpu"
	"github.com/zayn-spectrum/zxemu/internal/diag"
	"github.com/zayn-spectrum/zxemu/internal/display"
	"github.com/zayn-spectrum/zxemu/internal/divide"
	"github.com/zayn-spectrum/zxemu/internal/fdc"
	"github.com/zayn-spectrum/zxemu/internal/keyboard"
	"github.com/zayn-spectrum/zxemu/internal/memory"
	"github.com/zayn-spectrum/zxemu/internal/psg"
	"github.com/zayn-spectrum/zxemu/internal/rom"
	"github.com/zayn-spectrum/zxemu/internal/scheduler"
	"github.com/zayn-spectrum/zxemu/internal/screen"
	"github.com/zayn-spectrum/zxemu/internal/snapshot"
	"github.com/zayn-spectrum/zxemu/internal/tape"
	"github.com/zayn-spectrum/zxemu/internal/tzx"
	"github.com/zayn-spectrum/zxemu/internal/ula"
)

const (
	sampleRate  = 44100
	framePeriod = time.Second / 50
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "zxemu:", err)
		os.Exit(1)
	}
}

func run() error {
	log := diag.Default()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	romData, err := os.ReadFile(cfg.ROMPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}
	model, err := rom.DetectModel(romData)
	if err != nil {
		return fmt.Errorf("detecting model from %s: %w", cfg.ROMPath, err)
	}

	mem := memory.New(model, romData)

	if cfg.DivROM != "" {
		divROM, err := os.ReadFile(cfg.DivROM)
		if err != nil {
			return fmt.Errorf("reading DivIDE ROM: %w", err)
		}
		divController := divide.New()
		if err := divController.LoadROM(divROM); err != nil {
			return fmt.Errorf("loading DivIDE ROM %s: %w", cfg.DivROM, err)
		}
		mem.SetDivIDE(divController)
	}

	// fdc is passed to ula.New as the FDC interface: only wrap a non-nil
	// *fdc.Controller in it, or the interface value itself would be
	// non-nil (pointing at a nil Controller) and Gateway's "fdc != nil"
	// check would wrongly dispatch to it.
	var fdcIface ula.FDC
	if model == memory.ModelPlus3 {
		fdcIface = fdc.New()
	}

	// ay is passed to beeper.New as the PSGStepper interface for the same
	// reason: keep it nil rather than a typed-nil *psg.PSG.
	var ay *psg.PSG
	var stepper beeper.PSGStepper
	if model != memory.Model48K {
		ay = psg.New(sampleRate, 0)
		stepper = ay
	}

	timing := border.Timing48K
	if model != memory.Model48K {
		timing = border.Timing128K
	}

	fb := make([]byte, border.FrameWidth*border.FrameHeight*4)
	rasterizer := border.New(timing, fb)
	screenRenderer := screen.New(fb)
	bp := beeper.New(sampleRate, stepper)
	matrix := keyboard.NewMatrix()

	gateway := ula.New(mem, rasterizer, bp, matrix, ay, fdcIface, model)
	core := cpu.New(gateway)

	var tapPlayer *tape.Player
	var tzxPlayer *tzx.Player

	switch {
	case cfg.FastTAP != "":
		data, err := os.ReadFile(cfg.FastTAP)
		if err != nil {
			return fmt.Errorf("reading fast-TAP file: %w", err)
		}
		if err := tape.FastLoad(data, mem, core, true, log); err != nil {
			return fmt.Errorf("fast-loading %s: %w", cfg.FastTAP, err)
		}

	case cfg.PulseTAP != "":
		data, err := os.ReadFile(cfg.PulseTAP)
		if err != nil {
			return fmt.Errorf("reading TAP file: %w", err)
		}
		blocks, err := tape.ParseTAP(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", cfg.PulseTAP, err)
		}
		tapPlayer = tape.NewPlayer(blocks, bp)
		bp.SetTapeActive(true)

	case cfg.TZXTape != "":
		data, err := os.ReadFile(cfg.TZXTape)
		if err != nil {
			return fmt.Errorf("reading TZX file: %w", err)
		}
		tzxPlayer, err = tzx.NewPlayer(data, bp, model == memory.Model48K)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", cfg.TZXTape, err)
		}
		bp.SetTapeActive(true)
	}
	gateway.SetTapeSources(tapeSourcesOf(tapPlayer, tzxPlayer)...)

	if cfg.Snapshot != "" {
		borderColor, err := snapshot.Load(cfg.Snapshot, core, mem)
		if err != nil {
			return fmt.Errorf("loading snapshot %s: %w", cfg.Snapshot, err)
		}
		rasterizer.SetBorder(borderColor)
	} else {
		core.Reset()
	}

	clk := clock.New()
	video := &videoAdapter{screen: screenRenderer, mem: mem, fb: fb, presenter: display.New(border.FrameWidth, border.FrameHeight, 2)}
	sched := scheduler.New(core, clk, rasterizer, bp, tapPlayer, tzxPlayer, video, timing.TStatesPerLine)

	sink, err := audiosink.New(sampleRate)
	if err != nil {
		return fmt.Errorf("opening audio sink: %w", err)
	}
	if err := sink.Start(); err != nil {
		return fmt.Errorf("starting audio sink: %w", err)
	}
	defer sink.Close()

	if err := video.presenter.Start(); err != nil {
		return fmt.Errorf("starting display: %w", err)
	}
	defer video.presenter.Stop()

	keys := keyboard.NewHost(matrix, log)
	keys.Start()
	defer keys.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return runLoop(gctx, sched, bp, sink, cfg.NoThrottle)
	})

	return group.Wait()
}

// runLoop drives one scheduler frame at a time, draining audio samples
// after each frame and throttling to 50Hz unless disabled.
func runLoop(ctx context.Context, sched *scheduler.Scheduler, bp *beeper.Beeper, sink audiosink.Sink, noThrottle bool) error {
	var ticker *time.Ticker
	if !noThrottle {
		ticker = time.NewTicker(framePeriod)
		defer ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		sched.RunFrame()
		sink.Push(bp.DrainSamples())

		if ticker != nil {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// tapeSourcesOf builds the EAR-input priority chain, skipping engines that
// were never wired up. TAP takes priority over TZX per spec.md §6.
func tapeSourcesOf(tapPlayer *tape.Player, tzxPlayer *tzx.Player) []ula.TapeSource {
	var sources []ula.TapeSource
	if tapPlayer != nil {
		sources = append(sources, tapPlayer)
	}
	if tzxPlayer != nil {
		sources = append(sources, tzxPlayer)
	}
	return sources
}

// videoAdapter bridges the scheduler's once-per-frame VideoRaster callback
// to the active-area rasteriser and the host presenter, both of which
// share the same ARGB framebuffer the border rasteriser paints into.
type videoAdapter struct {
	screen    *screen.Renderer
	mem       *memory.Map
	fb        []byte
	presenter display.Presenter
}

func (v *videoAdapter) RenderFrame(flashPhase int) {
	v.screen.RenderFrame(v.mem, flashPhase)
	_ = v.presenter.Present(v.fb)
}
