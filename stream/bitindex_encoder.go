package stream

import (
	"io"

	"github.com/tmaklin/ahda-sub000/bitmap"
	"github.com/tmaklin/ahda-sub000/container"
	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/internal/options"
	"github.com/tmaklin/ahda-sub000/internal/pool"
	"github.com/tmaklin/ahda-sub000/section"
)

// BitIndexEncoder is the variant of the streaming encoder described in
// spec.md §4.5 that accepts already-sorted global bit indices
// (query_id*n_targets + target_idx) directly, instead of records. Indices
// must be supplied in non-decreasing order; the encoder groups query ids
// into blocks by the rule "query id q belongs to block b iff
// q ∈ [b*B, (b+1)*B)", sealing the current block whenever a query id
// crosses that boundary. Every query id from 0 to n_queries-1 is placed
// into exactly one block's BlockFlags.QueryIDs — including ids that never
// own a bit, whether they fall between two bit-bearing ids or span whole
// untouched block windows — so the decoder's per-block expansion never
// has to invent a gap.
//
// Not safe for concurrent use.
type BitIndexEncoder struct {
	w io.Writer

	nTargets uint32
	queries  []string
	nQueries uint32

	cfg *config

	curBlock    uint32 // which [b*B, (b+1)*B) query-id window is open, or noBlockOpen if none
	curBits     *bitmap.Set
	curQueryIDs []uint32

	nextFillID uint32 // next query id not yet assigned to a block's QueryIDs

	lastIdx  uint32
	haveLast bool
	closed   bool
}

const noBlockOpen = ^uint32(0)

// NewBitIndexEncoder creates a BitIndexEncoder. queries is the full
// query-name catalogue in query-id order; its length becomes FileHeader.NQueries.
func NewBitIndexEncoder(w io.Writer, targetNames []string, sampleName string, queries []string, opts ...Option) (*BitIndexEncoder, error) {
	nTargets := uint32(len(targetNames))

	cfg, err := newConfig(nTargets)
	if err != nil {
		return nil, err
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header := section.NewFileHeader(nTargets, uint32(len(queries)), cfg.format)
	flags := section.FileFlags{QueryName: sampleName, TargetNames: targetNames}
	flagsBytes := flags.Bytes()
	header.FlagsLen = uint32(len(flagsBytes))

	if _, err := w.Write(header.Bytes()); err != nil {
		return nil, err
	}
	if _, err := w.Write(flagsBytes); err != nil {
		return nil, err
	}

	return &BitIndexEncoder{
		w:        w,
		nTargets: nTargets,
		queries:  queries,
		nQueries: uint32(len(queries)),
		cfg:      cfg,
		curBlock: noBlockOpen,
	}, nil
}

// Write pushes one global bit index. idx must be >= every previously
// written index.
func (e *BitIndexEncoder) Write(idx uint32) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}
	if e.haveLast && idx < e.lastIdx {
		return errs.ErrUnsortedBitIndex
	}
	e.haveLast = true
	e.lastIdx = idx

	q := idx / e.nTargets
	if err := e.fillTo(q); err != nil {
		return err
	}
	e.curBits.AddSorted(idx)

	return nil
}

// fillTo assigns every query id in [nextFillID, q] to a block's QueryIDs,
// opening and sealing block windows as each id crosses a
// [b*B, (b+1)*B) boundary. Ids strictly before q receive no bits; q itself
// is left for the caller to add bits to via curBits.AddSorted. This is how
// a query with zero hits — whether sandwiched between two bit-bearing
// queries in the same block or spanning whole untouched block windows —
// still ends up recorded in some block's QueryIDs, per spec.md §4.6.
func (e *BitIndexEncoder) fillTo(q uint32) error {
	for e.nextFillID <= q {
		block := e.nextFillID / e.cfg.blockSize

		if e.curBlock == noBlockOpen {
			e.curBlock = block
			e.curBits = bitmap.New()
		} else if block != e.curBlock {
			if err := e.sealBlock(); err != nil {
				return err
			}
			e.curBlock = block
			e.curBits = bitmap.New()
		}

		e.curQueryIDs = append(e.curQueryIDs, e.nextFillID)
		e.nextFillID++
	}

	return nil
}

func (e *BitIndexEncoder) sealBlock() error {
	if e.curBits == nil || len(e.curQueryIDs) == 0 {
		return nil
	}

	names, namesDone := pool.GetStringSlice(len(e.curQueryIDs))
	defer namesDone()
	for i, id := range e.curQueryIDs {
		if int(id) < len(e.queries) {
			names[i] = e.queries[id]
		}
	}

	packed, err := container.PackBlock(names, e.curQueryIDs, e.curBits)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(packed); err != nil {
		return err
	}

	e.curBits = nil
	e.curQueryIDs = nil

	return nil
}

// Close assigns any remaining query ids up to n_queries-1 to a block —
// including a final run that never received a single bit — then seals
// whatever block is left open, so the file's record count matches the
// announced NQueries with no gaps.
func (e *BitIndexEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.nQueries > 0 {
		if err := e.fillTo(e.nQueries - 1); err != nil {
			return err
		}
	}

	return e.sealBlock()
}
