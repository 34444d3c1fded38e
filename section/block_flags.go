package section

import (
	"github.com/tmaklin/ahda-sub000/encoding"
	"github.com/tmaklin/ahda-sub000/errs"
)

// BlockFlags is the variable-length metadata carried alongside a block's
// bitmap: the query names and ids covered by the block, parallel slices
// sorted ascending by id.
type BlockFlags struct {
	Queries  []string
	QueryIDs []uint32
}

// Bytes serializes the BlockFlags.
func (f BlockFlags) Bytes() []byte {
	enc := encoding.NewVarStringEncoder()
	enc.WriteStrings(f.Queries)
	enc.WriteUint32s(f.QueryIDs)

	out := make([]byte, enc.Len())
	copy(out, enc.Bytes())
	enc.Reset()

	return out
}

// ParseBlockFlags decodes a BlockFlags from exactly data's length, which
// must equal the BlockHeader's declared FlagsLen.
func ParseBlockFlags(data []byte) (BlockFlags, error) {
	dec := encoding.NewVarStringDecoder(data)

	queries, err := dec.ReadStrings()
	if err != nil {
		return BlockFlags{}, err
	}

	queryIDs, err := dec.ReadUint32s()
	if err != nil {
		return BlockFlags{}, err
	}

	if len(queries) != len(queryIDs) {
		return BlockFlags{}, errs.ErrBlockRecordMismatch
	}

	return BlockFlags{Queries: queries, QueryIDs: queryIDs}, nil
}

// Validate checks the cross-invariants spec.md §4.4 step 5 requires: ascending
// ids, count matches numRecords, and min(QueryIDs) equals startIdx.
func (f BlockFlags) Validate(numRecords, startIdx uint32) error {
	if uint32(len(f.QueryIDs)) != numRecords {
		return errs.ErrBlockRecordMismatch
	}
	if len(f.QueryIDs) == 0 {
		return nil
	}
	if f.QueryIDs[0] != startIdx {
		return errs.ErrCorruptBlockHeader
	}
	for i := 1; i < len(f.QueryIDs); i++ {
		if f.QueryIDs[i] <= f.QueryIDs[i-1] {
			return errs.ErrCorruptBlockHeader
		}
	}

	return nil
}
