package section

import (
	"encoding/binary"

	"github.com/tmaklin/ahda-sub000/errs"
)

// BlockHeader is the fixed 32-byte structure preceding every block payload.
type BlockHeader struct {
	// NumRecords is the number of queries covered by this block.
	NumRecords uint32 // byte offset 0-3
	// DeflatedLen is the size in bytes of the double-deflated payload that
	// follows this header, excluding the header itself.
	DeflatedLen uint32 // byte offset 4-7
	// BlockLen is the uncompressed size of the serialized bitmap.
	BlockLen uint32 // byte offset 8-11
	// FlagsLen is the uncompressed size of the serialized BlockFlags.
	FlagsLen uint32 // byte offset 12-15
	// StartIdx is the smallest query_id present in this block.
	StartIdx uint32 // byte offset 16-19

	// Reserved holds the 12 trailing bytes, preserved across round trips.
	Reserved [blockHeaderReservedSize]byte // byte offset 20-31
}

// Parse decodes a BlockHeader from exactly HeaderSize bytes.
func (h *BlockHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.NumRecords = binary.LittleEndian.Uint32(data[0:4])
	h.DeflatedLen = binary.LittleEndian.Uint32(data[4:8])
	h.BlockLen = binary.LittleEndian.Uint32(data[8:12])
	h.FlagsLen = binary.LittleEndian.Uint32(data[12:16])
	h.StartIdx = binary.LittleEndian.Uint32(data[16:20])
	copy(h.Reserved[:], data[20:32])

	return nil
}

// Bytes serializes the BlockHeader into a freshly allocated HeaderSize slice.
func (h *BlockHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint32(b[0:4], h.NumRecords)
	binary.LittleEndian.PutUint32(b[4:8], h.DeflatedLen)
	binary.LittleEndian.PutUint32(b[8:12], h.BlockLen)
	binary.LittleEndian.PutUint32(b[12:16], h.FlagsLen)
	binary.LittleEndian.PutUint32(b[16:20], h.StartIdx)
	copy(b[20:32], h.Reserved[:])

	return b
}

// ParseBlockHeader parses a BlockHeader from a byte slice that is at least
// HeaderSize bytes long; any trailing bytes are ignored.
func ParseBlockHeader(data []byte) (BlockHeader, error) {
	if len(data) < HeaderSize {
		return BlockHeader{}, errs.ErrInvalidHeaderSize
	}

	h := BlockHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return BlockHeader{}, err
	}

	return h, nil
}
