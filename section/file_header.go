package section

import (
	"encoding/binary"

	"github.com/tmaklin/ahda-sub000/errs"
)

// FileHeader is the fixed 32-byte structure at the start of every AHDA file.
type FileHeader struct {
	// NTargets is the size of the fixed target catalogue for this file.
	NTargets uint32 // byte offset 0-3
	// NQueries is the total number of queries the file claims to cover.
	NQueries uint32 // byte offset 4-7
	// FlagsLen is the byte length of the FileFlags section that follows.
	FlagsLen uint32 // byte offset 8-11
	// Format records which textual dialect produced this file, informational only.
	Format Format // byte offset 12-13
	// BitmapType selects the flattened-index width used by every block's bitmap.
	BitmapType BitmapType // byte offset 14-15

	// Reserved holds the 16 trailing bytes. Preserved verbatim across a
	// read-then-write round trip; zero for a freshly constructed header.
	Reserved [fileHeaderReservedSize]byte // byte offset 16-31
}

// NewFileHeader creates a FileHeader for a fresh encode, with reserved
// bytes zeroed and the 32-bit bitmap type selected.
func NewFileHeader(nTargets, nQueries uint32, format Format) *FileHeader {
	return &FileHeader{
		NTargets:   nTargets,
		NQueries:   nQueries,
		Format:     format,
		BitmapType: BitmapType32,
	}
}

// Parse decodes a FileHeader from exactly HeaderSize bytes.
func (h *FileHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.NTargets = binary.LittleEndian.Uint32(data[0:4])
	h.NQueries = binary.LittleEndian.Uint32(data[4:8])
	h.FlagsLen = binary.LittleEndian.Uint32(data[8:12])
	h.Format = Format(binary.LittleEndian.Uint16(data[12:14]))
	h.BitmapType = BitmapType(binary.LittleEndian.Uint16(data[14:16]))
	copy(h.Reserved[:], data[16:32])

	if !h.BitmapType.IsValid() {
		return errs.ErrInvalidBitmapType
	}

	return nil
}

// Bytes serializes the FileHeader into a freshly allocated HeaderSize slice.
func (h *FileHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint32(b[0:4], h.NTargets)
	binary.LittleEndian.PutUint32(b[4:8], h.NQueries)
	binary.LittleEndian.PutUint32(b[8:12], h.FlagsLen)
	binary.LittleEndian.PutUint16(b[12:14], uint16(h.Format))
	binary.LittleEndian.PutUint16(b[14:16], uint16(h.BitmapType))
	copy(b[16:32], h.Reserved[:])

	return b
}

// ParseFileHeader parses a FileHeader from a byte slice that is at least
// HeaderSize bytes long; any trailing bytes are ignored.
func ParseFileHeader(data []byte) (FileHeader, error) {
	if len(data) < HeaderSize {
		return FileHeader{}, errs.ErrInvalidHeaderSize
	}

	h := FileHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}
