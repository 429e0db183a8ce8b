// Package tape implements TAP file parsing, the fixed-timing TAP pulse
// player (spec.md §4.5) and the fast TAP loader that injects CODE blocks
// directly into RAM (spec.md §4.7).
package tape

import (
	"fmt"

	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

// Block is one TAP block's on-tape byte sequence: an implicit leading flag
// byte (0x00 header / 0xFF data, conventionally) followed by the payload
// and the trailing XOR checksum byte — exactly the bytes a real loader
// would shift out over the EAR line, including the checksum.
type Block struct {
	Data []byte
}

// Flag returns the block's leading flag byte.
func (b Block) Flag() byte {
	if len(b.Data) == 0 {
		return 0
	}
	return b.Data[0]
}

// StandardHeader describes a 17-byte ROM header payload: type, name, and
// the three loader parameters. Only meaningful when Flag()==0x00 and
// len(Data)==18 (flag + 17-byte payload).
type StandardHeader struct {
	Type   byte
	Name   [10]byte
	Length uint16
	Param1 uint16
	Param2 uint16
}

// HeaderPayload parses the 17-byte standard ROM header from this block's
// payload, if shaped like one.
func (b Block) HeaderPayload() (StandardHeader, bool) {
	if b.Flag() != 0x00 || len(b.Data) < 18 {
		return StandardHeader{}, false
	}
	p := b.Data[1:18]
	var h StandardHeader
	h.Type = p[0]
	copy(h.Name[:], p[1:11])
	h.Length = uint16(p[11]) | uint16(p[12])<<8
	h.Param1 = uint16(p[13]) | uint16(p[14])<<8
	h.Param2 = uint16(p[15]) | uint16(p[16])<<8
	return h, true
}

// Payload returns the data between the flag byte and the trailing checksum.
func (b Block) Payload() []byte {
	if len(b.Data) < 2 {
		return nil
	}
	return b.Data[1 : len(b.Data)-1]
}

const (
	HeaderTypeProgram  = 0
	HeaderTypeNumArray = 1
	HeaderTypeCharArray = 2
	HeaderTypeCode     = 3
)

// ParseTAP splits a .tap file into its blocks: each is
// (len_u16_le, flag_u8, payload[len-2], checksum_u8).
func ParseTAP(data []byte) ([]Block, error) {
	var blocks []Block
	off := 0
	for off < len(data) {
		if off+2 > len(data) {
			return nil, fmt.Errorf("%w: truncated TAP length prefix at offset %d", zerr.ErrFormat, off)
		}
		length := int(data[off]) | int(data[off+1])<<8
		off += 2
		if length < 1 || off+length > len(data) {
			return nil, fmt.Errorf("%w: TAP block length %d exceeds remaining data at offset %d", zerr.ErrFormat, length, off)
		}
		blocks = append(blocks, Block{Data: append([]byte(nil), data[off:off+length]...)})
		off += length
	}
	return blocks, nil
}
