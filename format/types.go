// Package format enumerates the compression algorithms available to the
// compress package's Codec factory. AHDA's on-disk block payload always
// uses CompressionDeflate (deflated twice, see compress.Deflate), but the
// other algorithms remain selectable through the same Codec interface for
// debugging and for embedders compressing auxiliary data alongside a file.
package format

type CompressionType uint8

const (
	CompressionNone    CompressionType = 0x1
	CompressionDeflate CompressionType = 0x2
	CompressionZstd    CompressionType = 0x3
	CompressionS2      CompressionType = 0x4
	CompressionLZ4     CompressionType = 0x5
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionDeflate:
		return "Deflate"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
