// Package section implements the fixed-width binary headers and their
// associated variable-length trailing metadata ("flags") used by the AHDA
// container format.
package section

// Fixed section sizes, shared by the file-level and block-level headers.
const (
	HeaderSize = 32 // both FileHeader and BlockHeader are exactly this many bytes

	fileHeaderReservedSize  = 16
	blockHeaderReservedSize = 12
)

// Format identifies the textual pseudoalignment dialect the file was
// originally produced from, recorded for informational purposes only; it
// never changes how the binary container itself is decoded.
type Format uint16

const (
	FormatUnknown   Format = 0
	FormatThemisto  Format = 1
	FormatFulgor    Format = 2
	FormatBifrost   Format = 3
	FormatMetagraph Format = 4
	FormatSAM       Format = 5
)

func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "Unknown"
	case FormatThemisto:
		return "Themisto"
	case FormatFulgor:
		return "Fulgor"
	case FormatBifrost:
		return "Bifrost"
	case FormatMetagraph:
		return "Metagraph"
	case FormatSAM:
		return "SAM"
	default:
		return "Unknown"
	}
}

// BitmapType selects the width of the flattened (query_id, target_idx)
// index space used by the bitmap codec.
type BitmapType uint16

const (
	BitmapType32 BitmapType = 0
	BitmapType64 BitmapType = 1
)

func (b BitmapType) String() string {
	switch b {
	case BitmapType32:
		return "Roaring32"
	case BitmapType64:
		return "Roaring64"
	default:
		return "Unknown"
	}
}

// IsValid reports whether b is one of the two schema-defined bitmap types.
func (b BitmapType) IsValid() bool {
	return b == BitmapType32 || b == BitmapType64
}
