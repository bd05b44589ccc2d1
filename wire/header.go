package wire

import "encoding/binary"

// headerSize is the fixed 8-byte frame header: object id, then a packed
// (length<<16 | opcode) word.
const headerSize = 8

// Header is the decoded form of a frame's first 8 bytes.
type Header struct {
	ObjectID uint32
	Length   uint16 // total frame length in bytes, including the header
	Opcode   uint16
}

// ParseHeader decodes an 8-byte frame header. The caller guarantees len(b) == 8.
func ParseHeader(b []byte) Header {
	objectID := binary.LittleEndian.Uint32(b[0:4])
	sizeOpcode := binary.LittleEndian.Uint32(b[4:8])
	return Header{
		ObjectID: objectID,
		Length:   uint16(sizeOpcode >> 16),
		Opcode:   uint16(sizeOpcode & 0xffff),
	}
}

// HeaderSize is the exported form of headerSize, used by transports that
// need to size their initial read.
const HeaderSize = headerSize
