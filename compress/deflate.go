package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

// DeflateCompressor implements the raw DEFLATE codec (RFC 1951) that backs
// the AHDA block payload. It is the default and only codec the on-disk
// container format uses; the other Codec implementations in this package
// exist for debugging and auxiliary-data use, not for the block payload
// itself.
//
// Performance characteristics:
//   - Compression: pooled flate.Writer at the default compression level
//   - Decompression: a new flate.Reader per call
type DeflateCompressor struct{}

var _ Codec = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a new deflate compressor.
func NewDeflateCompressor() DeflateCompressor {
	return DeflateCompressor{}
}

var deflateWriterPool = sync.Pool{
	New: func() any {
		w, _ := flate.NewWriter(io.Discard, flate.DefaultCompression)
		return w
	},
}

// Compress deflates data once. Callers that need the AHDA block's
// required double-compression call Compress twice in succession (see
// container.PackBlock).
func (c DeflateCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, _ := deflateWriterPool.Get().(*flate.Writer)
	defer deflateWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates data once.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	return io.ReadAll(r)
}

// Deflate deflates data once. It is the free-function form used by the
// container package, which needs to call it twice in sequence without
// constructing a DeflateCompressor value each time.
func Deflate(data []byte) ([]byte, error) {
	return NewDeflateCompressor().Compress(data)
}

// Inflate inflates data once.
func Inflate(data []byte) ([]byte, error) {
	return NewDeflateCompressor().Decompress(data)
}

// DeflateTwice applies Deflate to data, then to the result, reproducing the
// AHDA block payload's required double-compression.
func DeflateTwice(data []byte) ([]byte, error) {
	once, err := Deflate(data)
	if err != nil {
		return nil, err
	}

	return Deflate(once)
}

// InflateTwice applies Inflate to data, then to the result, the inverse of
// DeflateTwice.
func InflateTwice(data []byte) ([]byte, error) {
	once, err := Inflate(data)
	if err != nil {
		return nil, err
	}

	return Inflate(once)
}
