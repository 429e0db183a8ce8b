package tzx

import (
	"encoding/binary"
	"testing"

	"github.com/zayn-spectrum/zxemu/internal/clock"
)

type edgeRecorder struct {
	times  []clock.TState
	levels []bool
}

func (r *edgeRecorder) AdvanceTo(t clock.TState)  { r.times = append(r.times, t) }
func (r *edgeRecorder) SetTapeLevel(level bool)   { r.levels = append(r.levels, level) }

func header() []byte {
	return append(append([]byte{}, magic...), 1, 20)
}

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// buildGeneralised constructs a minimal ID 0x19 block with one pilot
// symbol (flags=0 toggle, single pulse) repeated rep times, and no data
// stream, matching spec.md §8 scenario B.
func buildGeneralised19(pulse uint16, rep uint16, pauseMS uint16) []byte {
	var body []byte
	body = append(body, le16(pauseMS)...)  // pause
	body = append(body, le32(1)...)        // totp = 1 entry in pilot stream
	body = append(body, 1)                 // npp = 1 pulse per pilot symbol
	body = append(body, 1)                 // asp = 1 symbol in pilot alphabet
	body = append(body, le32(0)...)        // totd = 0
	body = append(body, 0)                 // npd = 0
	body = append(body, 0)                 // asd = 0
	// pilot alphabet: symbol 0 = flags 0 (toggle), one pulse
	body = append(body, 0)
	body = append(body, le16(pulse)...)
	// pilot stream: symbol 0, repeated rep times
	body = append(body, 0)
	body = append(body, le16(rep)...)

	block := []byte{idGeneralised}
	block = append(block, le32(uint32(len(body)))...)
	block = append(block, body...)
	return block
}

func TestGeneralisedPilotToggleRepeat(t *testing.T) {
	data := append(header(), buildGeneralised19(2168, 4, 0)...)
	sink := &edgeRecorder{}
	p, err := NewPlayer(data, sink, true)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.BeginSlice(0)
	p.EndSlice(100_000)

	wantTimes := []clock.TState{0, 2168, 2168, 4336, 4336, 6504, 6504, 8672}
	wantLevels := []bool{false, true, false, true, false, true, false, true}
	if len(sink.times) != len(wantTimes) {
		t.Fatalf("got %d edges, want %d: %v", len(sink.times), len(wantTimes), sink.times)
	}
	for i := range wantTimes {
		if sink.times[i] != wantTimes[i] || sink.levels[i] != wantLevels[i] {
			t.Errorf("edge %d: got (t=%d,lvl=%v), want (t=%d,lvl=%v)", i, sink.times[i], sink.levels[i], wantTimes[i], wantLevels[i])
		}
	}
}

func TestGeneralisedDataAlphabetKeepFlag(t *testing.T) {
	// Two data symbols, flags=1 (keep), 2 pulses each; data stream picks
	// symbol 1 then 0 then 1 then 0, 1 bit/symbol (asd=2).
	var body []byte
	body = append(body, le16(0)...) // pause
	body = append(body, le32(0)...) // totp = 0
	body = append(body, 0)          // npp
	body = append(body, 0)          // asp
	body = append(body, le32(4)...) // totd = 4 symbols
	body = append(body, 2)          // npd = 2 pulses per data symbol
	body = append(body, 2)          // asd = 2 symbols in the data alphabet

	// alphabet symbol 0: flags=1 (keep), pulses 855,855
	body = append(body, 1)
	body = append(body, le16(855)...)
	body = append(body, le16(855)...)
	// alphabet symbol 1: flags=1 (keep), pulses 1710,1710
	body = append(body, 1)
	body = append(body, le16(1710)...)
	body = append(body, le16(1710)...)

	// data stream: symbols 1,0,1,0 as single bits MSB-first: 1 0 1 0 -> 0xA0
	body = append(body, 0xA0)

	block := []byte{idGeneralised}
	block = append(block, le32(uint32(len(body)))...)
	block = append(block, body...)

	data := append(header(), block...)
	sink := &edgeRecorder{}
	p, err := NewPlayer(data, sink, true)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.BeginSlice(0)
	p.EndSlice(100_000)

	want := []clock.TState{1710, 3420, 4275, 5130, 6840, 8550, 9405, 10260}
	if len(sink.times) != len(want) {
		t.Fatalf("got %d edges, want %d: %v", len(sink.times), len(want), sink.times)
	}
	for i := range want {
		if sink.times[i] != want[i] {
			t.Errorf("edge %d: got t=%d, want t=%d", i, sink.times[i], want[i])
		}
	}
}

// TestGeneralisedPilotAlphabetSizeVsPulseCountDiffer uses distinct npp
// (pulses per symbol) and asp (alphabet size) values, unlike the other
// generalised-data fixtures above where both happen to be equal and so
// cannot catch the two arguments being swapped when read by parseAlphabet.
func TestGeneralisedPilotAlphabetSizeVsPulseCountDiffer(t *testing.T) {
	var body []byte
	body = append(body, le16(0)...) // pause
	body = append(body, le32(1)...) // totp = 1 entry in pilot stream
	body = append(body, 2)          // npp = 2 pulses per pilot symbol
	body = append(body, 3)          // asp = 3 symbols in the pilot alphabet
	body = append(body, le32(0)...) // totd = 0
	body = append(body, 0)          // npd
	body = append(body, 0)          // asd

	// pilot alphabet: 3 symbols of 1+2*npp = 5 bytes each.
	// symbol 0: flags=0 (toggle), no pulses.
	body = append(body, 0)
	body = append(body, le16(0)...)
	body = append(body, le16(0)...)
	// symbol 1: flags=0 (toggle), no pulses.
	body = append(body, 0)
	body = append(body, le16(0)...)
	body = append(body, le16(0)...)
	// symbol 2: flags=0 (toggle), pulses 1000 then 2000.
	body = append(body, 0)
	body = append(body, le16(1000)...)
	body = append(body, le16(2000)...)

	// pilot stream: one entry, symbol index 2, repeated once.
	body = append(body, 2)
	body = append(body, le16(1)...)

	block := []byte{idGeneralised}
	block = append(block, le32(uint32(len(body)))...)
	block = append(block, body...)

	data := append(header(), block...)
	sink := &edgeRecorder{}
	p, err := NewPlayer(data, sink, true)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.BeginSlice(0)
	p.EndSlice(100_000)

	want := []clock.TState{0, 1000, 3000}
	if len(sink.times) != len(want) {
		t.Fatalf("got %d edges, want %d: %v", len(sink.times), len(want), sink.times)
	}
	for i := range want {
		if sink.times[i] != want[i] {
			t.Errorf("edge %d: got t=%d, want t=%d", i, sink.times[i], want[i])
		}
	}
}

func TestPauseAnchoring(t *testing.T) {
	// Pure tone: pulse=1000, count=2, no pause field on that block kind,
	// followed by an explicit Pause block of 10ms.
	toneBlock := []byte{idPureTone}
	toneBlock = append(toneBlock, le16(1000)...)
	toneBlock = append(toneBlock, le16(2)...)

	pauseBlock := []byte{idPauseStop}
	pauseBlock = append(pauseBlock, le16(10)...)

	data := append(header(), toneBlock...)
	data = append(data, pauseBlock...)

	sink := &edgeRecorder{}
	p, err := NewPlayer(data, sink, true)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	p.AdvanceTo(2_000 - 1)
	if !p.Active() {
		t.Fatalf("player went inactive before the two tone edges landed")
	}
	if len(sink.times) != 1 || sink.times[0] != 1000 {
		t.Fatalf("expected exactly one edge at t=1000 so far, got %v", sink.times)
	}

	pauseEnd := clock.TState(2000) + msToTStates(10)
	p.AdvanceTo(pauseEnd - 1)
	if !p.Active() {
		t.Fatalf("player went inactive before the pause ended")
	}
	if len(sink.times) != 2 || sink.times[1] != 2000 {
		t.Fatalf("expected the second tone edge at t=2000, got %v", sink.times)
	}

	p.AdvanceTo(pauseEnd + 1)
	if p.Active() {
		t.Fatalf("player stayed active after its only pause ended with no further blocks")
	}
}

func TestUnknownBlockIDRejected(t *testing.T) {
	data := append(header(), 0xFF)
	if _, err := NewPlayer(data, &edgeRecorder{}, true); err == nil {
		t.Fatalf("expected an error for an unknown block ID")
	}
}
