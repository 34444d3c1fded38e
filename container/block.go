// Package container implements the AHDA block packer and unpacker: the
// assembly and disassembly of a single block (BlockHeader ∥ compressed
// bitmap+flags payload) within the larger file stream.
package container

import (
	"io"

	"github.com/tmaklin/ahda-sub000/bitmap"
	"github.com/tmaklin/ahda-sub000/compress"
	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/internal/pool"
	"github.com/tmaklin/ahda-sub000/section"
)

// PackBlock serializes a block's bitmap and flags, double-deflates the
// concatenation, and returns BlockHeader ∥ payload ready to write to the
// output sink.
func PackBlock(queries []string, queryIDs []uint32, bits *bitmap.Set) ([]byte, error) {
	bitmapBytes := bits.Serialize()
	flags := section.BlockFlags{Queries: queries, QueryIDs: queryIDs}
	flagsBytes := flags.Bytes()

	concatBuf := pool.GetLargeBuffer()
	defer pool.PutLargeBuffer(concatBuf)
	concatBuf.MustWrite(bitmapBytes)
	concatBuf.MustWrite(flagsBytes)

	payload, err := compress.DeflateTwice(concatBuf.Bytes())
	if err != nil {
		return nil, err
	}

	var startIdx uint32
	if len(queryIDs) > 0 {
		startIdx = queryIDs[0]
	}

	header := section.BlockHeader{
		NumRecords:  uint32(len(queryIDs)),
		DeflatedLen: uint32(len(payload)),
		BlockLen:    uint32(len(bitmapBytes)),
		FlagsLen:    uint32(len(flagsBytes)),
		StartIdx:    startIdx,
	}

	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// UnpackedBlock is the result of reading and validating one block.
type UnpackedBlock struct {
	Header section.BlockHeader
	Bitmap *bitmap.Set
	Flags  section.BlockFlags
}

// UnpackBlock reads one BlockHeader and its payload from r, inflates twice,
// splits the result into the bitmap and flags sections, and cross-checks
// the invariants spec.md §4.4 step 5 requires. io.EOF propagates
// unchanged when the stream ends cleanly between blocks (no bytes of a new
// header were read); any other short read is errs.ErrUnexpectedEOF.
func UnpackBlock(r io.Reader, nTargets uint32) (*UnpackedBlock, error) {
	headerBytes := make([]byte, section.HeaderSize)
	n, err := io.ReadFull(r, headerBytes)
	if err != nil {
		if n == 0 && err == io.EOF {
			return nil, io.EOF
		}

		return nil, errs.ErrUnexpectedEOF
	}

	header, err := section.ParseBlockHeader(headerBytes)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, header.DeflatedLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errs.ErrUnexpectedEOF
	}

	concat, err := compress.InflateTwice(payload)
	if err != nil {
		return nil, err
	}

	wantLen := int(header.BlockLen) + int(header.FlagsLen)
	if len(concat) != wantLen {
		return nil, errs.ErrCorruptBlockHeader
	}

	bitmapBytes := concat[:header.BlockLen]
	flagsBytes := concat[header.BlockLen:]

	bits, err := bitmap.Deserialize(bitmapBytes)
	if err != nil {
		return nil, err
	}

	flags, err := section.ParseBlockFlags(flagsBytes)
	if err != nil {
		return nil, err
	}

	if err := flags.Validate(header.NumRecords, header.StartIdx); err != nil {
		return nil, err
	}

	if err := checkBitmapAgainstQueryIDs(bits, flags.QueryIDs, nTargets); err != nil {
		return nil, err
	}

	return &UnpackedBlock{Header: header, Bitmap: bits, Flags: flags}, nil
}

// checkBitmapAgainstQueryIDs verifies every set bit's query_id (idx /
// nTargets) is a member of queryIDs, per spec.md §4.4 step 5.
func checkBitmapAgainstQueryIDs(bits *bitmap.Set, queryIDs []uint32, nTargets uint32) error {
	if nTargets == 0 {
		if bits.Len() > 0 {
			return errs.ErrCorruptBlockHeader
		}

		return nil
	}

	members := make(map[uint32]struct{}, len(queryIDs))
	for _, id := range queryIDs {
		members[id] = struct{}{}
	}

	var badIdx bool
	bits.Iterate(func(idx uint32) bool {
		q := idx / nTargets
		if _, ok := members[q]; !ok {
			badIdx = true
			return false
		}

		return true
	})
	if badIdx {
		return errs.ErrCorruptBlockHeader
	}

	return nil
}
