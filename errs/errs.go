// Package errs defines the sentinel errors returned by the ahda packages.
//
// Callers should use errors.Is against the values in this package rather
// than comparing error strings. Functions that return these sentinels
// typically wrap them with additional context via fmt.Errorf("%w: ...", ...).
package errs

import "errors"

// Header and flags errors.
var (
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidMagicNumber    = errors.New("invalid magic number")
	ErrInvalidHeaderFlags    = errors.New("invalid header flags")
	ErrInvalidBitmapType     = errors.New("invalid bitmap type")
	ErrUnsupportedBitmapType = errors.New("unsupported bitmap type")
	ErrFlagsLengthMismatch   = errors.New("flags length does not match declared length")
)

// Bitmap codec errors.
var (
	ErrCorruptBitmap    = errors.New("corrupt bitmap encoding")
	ErrUnsortedBitIndex = errors.New("bit index must be added in non-decreasing order")
	ErrNotImplemented   = errors.New("not implemented")
	ErrIndexOutOfRange  = errors.New("target index out of range")
)

// Block codec errors.
var (
	ErrCorruptBlockHeader  = errors.New("corrupt block header")
	ErrBlockRecordMismatch = errors.New("block record count does not match header")
	ErrEmptyBlock          = errors.New("block contains no records")
)

// Streaming encoder/decoder errors.
var (
	ErrMissingQueryIdentifier = errors.New("record missing query id or query name")
	ErrInvalidBlockSize       = errors.New("block size out of range")
	ErrAddressSpaceOverflow   = errors.New("flattened bit index space exceeds uint32 range")
	ErrEncoderClosed          = errors.New("encoder is closed")
	ErrDecoderExhausted       = errors.New("decoder has no more records")
	ErrUnexpectedEOF          = errors.New("unexpected end of file within block")
	ErrNTargetsRequired       = errors.New("n_targets must be set before encoding")
)

// Textual format errors.
var (
	ErrUnsupportedFormat        = errors.New("unsupported or undetected pseudoalignment format")
	ErrParse                    = errors.New("failed to parse pseudoalignment line")
	ErrBifrostHeaderNotConsumed = errors.New("bifrost header line must be consumed before records")
	ErrMalformedLine            = errors.New("malformed input line")
)

// CLI / configuration errors.
var (
	ErrMissingArgument = errors.New("missing required argument")
	ErrUnknownCommand  = errors.New("unknown command")
)
