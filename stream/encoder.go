package stream

import (
	"io"
	"math"
	"sort"

	"github.com/tmaklin/ahda-sub000/bitmap"
	"github.com/tmaklin/ahda-sub000/container"
	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/internal/options"
	"github.com/tmaklin/ahda-sub000/internal/pool"
	"github.com/tmaklin/ahda-sub000/record"
	"github.com/tmaklin/ahda-sub000/section"
)

// Encoder is the record-based AHDA streaming encoder. It implements
// spec.md §4.5's state machine: the FileHeader and FileFlags are emitted
// at construction (state PreHeader), records are buffered until the
// configured block size is reached (Collecting), at which point the
// buffer is sorted, packed, and flushed (Sealing), and Close() flushes any
// final partial block (Done).
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w io.Writer

	nTargets uint32
	queries  []string // catalogue, index == query_id
	nameToID map[string]uint32
	targetID map[string]uint32

	cfg *config
	buf []record.PseudoAln

	closed bool
}

// NewEncoder creates an Encoder that writes a FileHeader and FileFlags to w
// immediately, then buffers records until Close or an internal block seal.
//
// targetNames is the file's fixed target catalogue in target-index order.
// queries is the full query-name catalogue in query-id order; sampleName is
// stored as FileFlags.QueryName.
func NewEncoder(w io.Writer, targetNames []string, sampleName string, queries []string, opts ...Option) (*Encoder, error) {
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

	nameToID := make(map[string]uint32, len(queries))
	for i, name := range queries {
		nameToID[name] = uint32(i)
	}

	targetID := make(map[string]uint32, len(targetNames))
	for i, name := range targetNames {
		targetID[name] = uint32(i)
	}

	return &Encoder{
		w:        w,
		nTargets: nTargets,
		queries:  queries,
		nameToID: nameToID,
		targetID: targetID,
		cfg:      cfg,
	}, nil
}

// Write buffers one record, resolving a missing QueryID/QueryName from the
// queries catalogue and a missing Ones/OnesNames pair from the target
// catalogue. It seals and flushes the current block once it reaches the
// configured block size.
func (e *Encoder) Write(rec record.PseudoAln) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}

	resolved, err := e.resolve(rec)
	if err != nil {
		return err
	}

	e.buf = append(e.buf, resolved)
	if uint32(len(e.buf)) >= e.cfg.blockSize {
		return e.sealBlock()
	}

	return nil
}

func (e *Encoder) resolve(rec record.PseudoAln) (record.PseudoAln, error) {
	if rec.QueryID == nil {
		if rec.QueryName == nil {
			return rec, errs.ErrMissingQueryIdentifier
		}
		id, ok := e.nameToID[*rec.QueryName]
		if !ok {
			return rec, errs.ErrMissingQueryIdentifier
		}
		rec.QueryID = &id
	}
	if rec.QueryName == nil {
		if int(*rec.QueryID) >= len(e.queries) {
			return rec, errs.ErrMissingQueryIdentifier
		}
		name := e.queries[*rec.QueryID]
		rec.QueryName = &name
	}

	if rec.Ones == nil && rec.OnesNames != nil {
		ones := make([]uint32, 0, len(rec.OnesNames))
		for _, name := range rec.OnesNames {
			idx, ok := e.targetID[name]
			if !ok {
				return rec, errs.ErrIndexOutOfRange
			}
			ones = append(ones, idx)
		}
		rec.Ones = ones
	}
	for _, idx := range rec.Ones {
		if idx >= e.nTargets {
			return rec, errs.ErrIndexOutOfRange
		}
	}

	return rec, nil
}

// sealBlock sorts the buffered records ascending by query_id, packs them
// into a block via the container package, writes the block, and resets the
// buffer.
func (e *Encoder) sealBlock() error {
	if len(e.buf) == 0 {
		return nil
	}

	sort.Slice(e.buf, func(i, j int) bool { return *e.buf[i].QueryID < *e.buf[j].QueryID })

	names, namesDone := pool.GetStringSlice(len(e.buf))
	defer namesDone()
	ids, idsDone := pool.GetUint32Slice(len(e.buf))
	defer idsDone()
	bits := bitmap.New()

	maxID := *e.buf[len(e.buf)-1].QueryID
	if err := checkAddressSpace(maxID, e.nTargets); err != nil {
		return err
	}

	for i, rec := range e.buf {
		names[i] = *rec.QueryName
		ids[i] = *rec.QueryID
		for _, t := range rec.Ones {
			bits.AddSorted(*rec.QueryID*e.nTargets + t)
		}
	}

	packed, err := container.PackBlock(names, ids, bits)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(packed); err != nil {
		return err
	}

	e.buf = e.buf[:0]

	return nil
}

func checkAddressSpace(maxQueryID, nTargets uint32) error {
	if uint64(maxQueryID+1)*uint64(nTargets) > math.MaxUint32+1 {
		return errs.ErrAddressSpaceOverflow
	}

	return nil
}

// Close flushes any partially-filled final block. The Encoder must not be
// used afterwards.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	return e.sealBlock()
}
