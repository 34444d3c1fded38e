package bitmap

import "github.com/tmaklin/ahda-sub000/errs"

// Set64 is the schema-reserved 64-bit bitmap type (section.BitmapType64).
// It exists only so the on-disk bitmap_type field has somewhere to point;
// no encoder in this module can produce one, matching spec.md's "reserved
// for future use" contract.
type Set64 struct{}

// New64 always fails: the 64-bit path is unreachable through any encoder.
func New64() (*Set64, error) {
	return nil, errs.ErrNotImplemented
}

// Deserialize64 always fails: decoding a bitmap_type=1 file is an
// unsupported, not corrupt, condition.
func Deserialize64(data []byte) (*Set64, error) {
	return nil, errs.ErrUnsupportedBitmapType
}
