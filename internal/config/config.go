// Package config parses the emulator's command-line flags (spec.md §6)
// with github.com/spf13/pflag, the same short/long flag parser the pack's
// tape/disk reader tooling uses for a comparably small flag set, rather
// than the standard library's flag package which the teacher's repo never
// reaches for either.
package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

// Config holds every CLI-configurable setting, after validation.
type Config struct {
	ROMPath    string // -r
	BaseRAMKiB int    // -m: 16..48

	DriveA string // -A
	DriveB string // -B

	IDEImage string // -i
	DivROM   string // -I

	FastTAP   string // -t: fast TAP injection, auto-start
	PulseTAP  string // -T: TAP pulse replay
	TZXTape   string // -z: TZX pulse replay
	Snapshot  string // -s: .SNA to load at start

	NoThrottle bool // -f: disable 50Hz throttle
	TraceMask  uint32 // -d
}

// Parse parses args (typically os.Args[1:]) into a validated Config.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("zxemu", pflag.ContinueOnError)

	c := &Config{}
	fs.StringVarP(&c.ROMPath, "rom", "r", "", "ROM image (16/32/64 KiB selects 48K/128K/+3)")
	fs.IntVarP(&c.BaseRAMKiB, "ram", "m", 48, "base RAM size in KiB on a 48K machine (16-48)")
	fs.StringVarP(&c.DriveA, "drive-a", "A", "", "+3 drive A disk image")
	fs.StringVarP(&c.DriveB, "drive-b", "B", "", "+3 drive B disk image")
	fs.StringVarP(&c.IDEImage, "ide", "i", "", "DivIDE IDE image")
	fs.StringVarP(&c.DivROM, "div-rom", "I", "", "DivIDE boot EPROM image (8 KiB single-bank, or 32 KiB four-bank)")
	fs.StringVarP(&c.FastTAP, "fast-tap", "t", "", "TAP file, loaded via fast injection and auto-started")
	fs.StringVarP(&c.PulseTAP, "tap", "T", "", "TAP file, replayed as real pulses")
	fs.StringVarP(&c.TZXTape, "tzx", "z", "", "TZX file, replayed as real pulses")
	fs.StringVarP(&c.Snapshot, "snapshot", "s", "", ".SNA snapshot to load at start")
	fs.BoolVarP(&c.NoThrottle, "no-throttle", "f", false, "disable the 50Hz frame throttle")
	fs.Uint32VarP(&c.TraceMask, "debug", "d", 0, "trace bitmask")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", zerr.ErrConfig, err)
	}

	if c.BaseRAMKiB < 16 || c.BaseRAMKiB > 48 {
		return nil, fmt.Errorf("%w: -m %d out of range 16-48", zerr.ErrConfig, c.BaseRAMKiB)
	}
	if c.PulseTAP != "" && c.TZXTape != "" {
		return nil, fmt.Errorf("%w: -T and -z are mutually exclusive (one tape engine at a time)", zerr.ErrConfig)
	}
	if c.FastTAP != "" && (c.PulseTAP != "" || c.TZXTape != "") {
		return nil, fmt.Errorf("%w: -t cannot be combined with -T or -z", zerr.ErrConfig)
	}

	return c, nil
}
