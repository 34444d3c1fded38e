package stream

import (
	"io"

	"github.com/tmaklin/ahda-sub000/bitmap"
	"github.com/tmaklin/ahda-sub000/container"
	"github.com/tmaklin/ahda-sub000/errs"
	"github.com/tmaklin/ahda-sub000/record"
	"github.com/tmaklin/ahda-sub000/section"
)

// Decoder is the AHDA streaming decoder. It reads FileHeader and FileFlags
// eagerly at construction, then lazily yields one record at a time via
// Next, pulling and expanding a block from the underlying reader whenever
// its current block's records are exhausted.
//
// Not safe for concurrent use.
type Decoder struct {
	r io.Reader

	Header section.FileHeader
	Flags  section.FileFlags

	pending []record.PseudoAln
	pos     int
	eof     bool
}

// NewDecoder reads and validates the FileHeader and FileFlags from r.
func NewDecoder(r io.Reader) (*Decoder, error) {
	headerBytes := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, errs.ErrUnexpectedEOF
	}

	header, err := section.ParseFileHeader(headerBytes)
	if err != nil {
		return nil, err
	}

	flagsBytes := make([]byte, header.FlagsLen)
	if _, err := io.ReadFull(r, flagsBytes); err != nil {
		return nil, errs.ErrUnexpectedEOF
	}

	flags, err := section.ParseFileFlags(flagsBytes)
	if err != nil {
		return nil, err
	}
	if uint32(len(flags.TargetNames)) != header.NTargets {
		return nil, errs.ErrFlagsLengthMismatch
	}

	return &Decoder{r: r, Header: header, Flags: flags}, nil
}

// Next returns the next decoded record. ok is false once the stream is
// exhausted; a non-nil error indicates a corrupt or truncated file.
func (d *Decoder) Next() (rec record.PseudoAln, ok bool, err error) {
	for d.pos >= len(d.pending) {
		if d.eof {
			return record.PseudoAln{}, false, nil
		}

		if err := d.pullBlock(); err != nil {
			if err == io.EOF {
				d.eof = true
				return record.PseudoAln{}, false, nil
			}

			return record.PseudoAln{}, false, err
		}
	}

	rec = d.pending[d.pos]
	d.pos++

	return rec, true, nil
}

// pullBlock reads and expands the next block into d.pending using the
// single-pass ascending-bitmap-iteration algorithm from spec.md §4.6.
func (d *Decoder) pullBlock() error {
	block, err := container.UnpackBlock(d.r, d.Header.NTargets)
	if err != nil {
		return err
	}

	d.pending = expandBlock(block.Flags.QueryIDs, block.Flags.Queries, block.Bitmap, d.Header.NTargets)
	d.pos = 0

	return nil
}

// expandBlock performs the bitmap-to-record expansion described in
// spec.md §4.6: iterate the bitmap's set indices ascending, accumulating
// target hits per query id, and flush a record (including empty records
// for query ids with zero bits) each time the query id advances.
func expandBlock(queryIDs []uint32, queryNames []string, bits *bitmap.Set, nTargets uint32) []record.PseudoAln {
	if len(queryIDs) == 0 {
		return nil
	}

	nameOf := make(map[uint32]string, len(queryIDs))
	for i, id := range queryIDs {
		nameOf[id] = queryNames[i]
	}

	records := make([]record.PseudoAln, 0, len(queryIDs))
	idIndex := 0 // index into queryIDs of the query currently being accumulated
	prevQ := queryIDs[0]
	acc := []uint32{}

	flush := func(q uint32) {
		name := nameOf[q]
		qCopy := q
		records = append(records, record.PseudoAln{
			QueryID:   &qCopy,
			QueryName: &name,
			Ones:      acc,
		})
		acc = []uint32{}
	}

	// emit empty records for every query id strictly between 'from' and
	// 'to' (exclusive) that appears in queryIDs but never owned a bit.
	emitEmptyBetween := func(from, to uint32) {
		for idIndex < len(queryIDs) && queryIDs[idIndex] <= from {
			idIndex++
		}
		for idIndex < len(queryIDs) && queryIDs[idIndex] < to {
			id := queryIDs[idIndex]
			flush(id)
			idIndex++
		}
	}

	bits.Iterate(func(idx uint32) bool {
		q := idx / nTargets
		t := idx % nTargets

		if q != prevQ {
			flush(prevQ)
			emitEmptyBetween(prevQ, q)
			prevQ = q
		}
		acc = append(acc, t)

		return true
	})
	flush(prevQ)
	emitEmptyBetween(prevQ, queryIDs[len(queryIDs)-1]+1)

	return records
}
