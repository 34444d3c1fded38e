package encoding

import (
	"encoding/binary"

	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/internal/pool"
)

// VarStringEncoder encodes strings and ordered sequences with
// variable-length-integer length prefixes, as required by the AHDA
// FileFlags/BlockFlags trailing metadata sections.
//
// Each string is encoded as:
//   - uvarint: byte length of the UTF-8 payload
//   - N bytes: the UTF-8 payload
//
// Ordered sequences are encoded as a uvarint element count followed by the
// elements themselves, back to back.
type VarStringEncoder struct {
	buf *pool.ByteBuffer
}

// NewVarStringEncoder creates a new encoder backed by a pooled buffer.
func NewVarStringEncoder() *VarStringEncoder {
	return &VarStringEncoder{buf: pool.GetBuffer()}
}

// WriteUvarint appends v as a little-endian base-128 variable-length integer.
func (e *VarStringEncoder) WriteUvarint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	e.buf.MustWrite(tmp[:n])
}

// WriteUint32 appends v as a fixed-width little-endian uint32.
func (e *VarStringEncoder) WriteUint32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	e.buf.MustWrite(tmp[:])
}

// WriteString appends a single length-prefixed string.
func (e *VarStringEncoder) WriteString(s string) {
	e.WriteUvarint(uint64(len(s)))
	e.buf.MustWrite([]byte(s))
}

// WriteStrings appends a count-prefixed ordered sequence of strings.
func (e *VarStringEncoder) WriteStrings(ss []string) {
	e.WriteUvarint(uint64(len(ss)))
	for _, s := range ss {
		e.WriteString(s)
	}
}

// WriteUint32s appends a count-prefixed ordered sequence of fixed-width uint32s.
func (e *VarStringEncoder) WriteUint32s(vs []uint32) {
	e.WriteUvarint(uint64(len(vs)))
	for _, v := range vs {
		e.WriteUint32(v)
	}
}

// Bytes returns the encoded data. The returned slice shares the encoder's
// underlying buffer and must not be retained past the next Reset.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (e *VarStringEncoder) Len() int {
	return e.buf.Len()
}

// Reset releases the encoder's buffer back to the pool. The encoder must
// not be used again afterwards.
func (e *VarStringEncoder) Reset() {
	if e.buf != nil {
		pool.PutBuffer(e.buf)
		e.buf = nil
	}
}

// VarStringDecoder decodes the inverse of VarStringEncoder from an in-memory
// byte slice.
type VarStringDecoder struct {
	data []byte
	pos  int
}

// NewVarStringDecoder creates a decoder over data, starting at offset 0.
func NewVarStringDecoder(data []byte) *VarStringDecoder {
	return &VarStringDecoder{data: data}
}

// Pos returns the current read offset.
func (d *VarStringDecoder) Pos() int { return d.pos }

// Remaining reports whether unread bytes remain.
func (d *VarStringDecoder) Remaining() bool { return d.pos < len(d.data) }

// ReadUvarint decodes a variable-length unsigned integer.
func (d *VarStringDecoder) ReadUvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		return 0, errs.ErrCorruptBitmap
	}
	d.pos += n

	return v, nil
}

// ReadUint32 decodes a fixed-width little-endian uint32.
func (d *VarStringDecoder) ReadUint32() (uint32, error) {
	if len(d.data)-d.pos < 4 {
		return 0, errs.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(d.data[d.pos : d.pos+4])
	d.pos += 4

	return v, nil
}

// ReadString decodes a single length-prefixed string.
func (d *VarStringDecoder) ReadString() (string, error) {
	n, err := d.ReadUvarint()
	if err != nil {
		return "", err
	}
	if uint64(len(d.data)-d.pos) < n {
		return "", errs.ErrUnexpectedEOF
	}
	s := string(d.data[d.pos : d.pos+int(n)])
	d.pos += int(n)

	return s, nil
}

// ReadStrings decodes a count-prefixed ordered sequence of strings.
func (d *VarStringDecoder) ReadStrings() ([]string, error) {
	count, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		s, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// ReadUint32s decodes a count-prefixed ordered sequence of fixed-width uint32s.
func (d *VarStringDecoder) ReadUint32s() ([]uint32, error) {
	count, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	out := make([]uint32, 0, count)
	for i := uint64(0); i < count; i++ {
		v, err := d.ReadUint32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
