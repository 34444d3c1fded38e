// Package bitmap implements a compact, sorted-integer container for the
// flattened (query_id, target_idx) index space used by the AHDA block
// codec. It mirrors the run/array split a general-purpose Roaring bitmap
// uses, trimmed to what this format needs: ascending insertion, a single
// run-optimization pass before serialization, and ascending iteration.
package bitmap

import (
	"encoding/binary"
	"sort"

	"github.com/tmaklin/ahda-sub000/errs"
)

// minRunLength is the shortest consecutive stretch worth promoting to a
// run span instead of storing as literals; below this the two-value
// (start, length) run header costs more than the literals it would save.
const minRunLength = 3

// spanKind tags how a span's values are stored on the wire.
type spanKind uint8

const (
	spanArray spanKind = 0 // a handful of literal ascending values
	spanRun   spanKind = 1 // a contiguous [start, start+length) run
)

type span struct {
	kind    spanKind
	start   uint32   // run: first value. array: unused (values carries them)
	length  uint32   // run: count of values covered
	values  []uint32 // array: literal values
}

// Set is a sorted set of uint32 indices with a deliberate two-phase
// lifecycle: values are added (Add/AddSorted), then Optimize converts the
// accumulated values into run/array spans before Serialize is called.
// Iterate works directly off the added values and does not require
// Optimize to have run.
type Set struct {
	values    []uint32
	sorted    bool
	optimized []span
}

// New creates an empty Set.
func New() *Set {
	return &Set{sorted: true}
}

// AddSorted appends idx, which the caller guarantees is >= every previously
// added value. This is the fast path used by the block packer, which
// always builds a block's bitmap from an already-ascending bit stream.
func (s *Set) AddSorted(idx uint32) {
	if n := len(s.values); n > 0 && s.values[n-1] > idx {
		s.sorted = false
	}
	s.values = append(s.values, idx)
}

// Add appends idx without an ordering guarantee; Build sorts and
// deduplicates before any other operation is allowed to assume order.
func (s *Set) Add(idx uint32) {
	s.AddSorted(idx)
}

// Build finalizes insertion: sorts if any out-of-order Add was observed and
// removes duplicate values. Idempotent.
func (s *Set) Build() {
	if !s.sorted {
		sort.Slice(s.values, func(i, j int) bool { return s.values[i] < s.values[j] })
		s.sorted = true
	}
	s.values = dedupAscending(s.values)
}

func dedupAscending(vs []uint32) []uint32 {
	if len(vs) < 2 {
		return vs
	}
	out := vs[:1]
	for _, v := range vs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// Len returns the number of distinct values in the set. Build should be
// called first if values were added out of order.
func (s *Set) Len() int {
	return len(s.values)
}

// Optimize converts the sorted value list into run/array spans, collapsing
// any stretch of minRunLength or more consecutive integers into a single
// run span. It runs Build first, and must be called before Serialize.
func (s *Set) Optimize() {
	s.Build()
	s.optimized = s.optimized[:0]

	vs := s.values
	for i := 0; i < len(vs); {
		j := i + 1
		for j < len(vs) && vs[j] == vs[j-1]+1 {
			j++
		}

		runLen := j - i
		if runLen >= minRunLength {
			s.optimized = append(s.optimized, span{
				kind:   spanRun,
				start:  vs[i],
				length: uint32(runLen),
			})
		} else {
			s.optimized = append(s.optimized, span{
				kind:   spanArray,
				values: append([]uint32(nil), vs[i:j]...),
			})
		}
		i = j
	}
}

// Iterate calls fn for every value in ascending order, stopping early if fn
// returns false.
func (s *Set) Iterate(fn func(idx uint32) bool) {
	for _, v := range s.values {
		if !fn(v) {
			return
		}
	}
}

// Serialize produces the self-describing wire form: a uvarint span count
// followed by, for each span, a kind byte and either (uvarint start,
// uvarint length) for a run or (uvarint count, uvarint values...) for an
// array. Optimize should be called first; if it was not, Serialize runs
// Optimize itself.
func (s *Set) Serialize() []byte {
	if s.optimized == nil {
		s.Optimize()
	}

	buf := make([]byte, 0, 8*len(s.optimized)+8)
	buf = appendUvarint(buf, uint64(len(s.optimized)))

	for _, sp := range s.optimized {
		buf = append(buf, byte(sp.kind))
		switch sp.kind {
		case spanRun:
			buf = appendUvarint(buf, uint64(sp.start))
			buf = appendUvarint(buf, uint64(sp.length))
		case spanArray:
			buf = appendUvarint(buf, uint64(len(sp.values)))
			for _, v := range sp.values {
				buf = appendUvarint(buf, uint64(v))
			}
		}
	}

	return buf
}

func appendUvarint(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)

	return append(buf, tmp[:n]...)
}

// Deserialize parses the wire form Serialize produces. The resulting Set is
// ready for Iterate; its internal value list is fully expanded and sorted.
func Deserialize(data []byte) (*Set, error) {
	pos := 0

	readUvarint := func() (uint64, error) {
		v, n := binary.Uvarint(data[pos:])
		if n <= 0 {
			return 0, errs.ErrCorruptBitmap
		}
		pos += n

		return v, nil
	}

	spanCount, err := readUvarint()
	if err != nil {
		return nil, err
	}

	out := New()
	var prevEnd int64 = -1

	for i := uint64(0); i < spanCount; i++ {
		if pos >= len(data) {
			return nil, errs.ErrCorruptBitmap
		}
		kind := spanKind(data[pos])
		pos++

		switch kind {
		case spanRun:
			start, err := readUvarint()
			if err != nil {
				return nil, err
			}
			length, err := readUvarint()
			if err != nil {
				return nil, err
			}
			if length == 0 || int64(start) <= prevEnd {
				return nil, errs.ErrCorruptBitmap
			}
			for v := start; v < start+length; v++ {
				out.AddSorted(uint32(v))
			}
			prevEnd = int64(start + length - 1)
		case spanArray:
			count, err := readUvarint()
			if err != nil {
				return nil, err
			}
			for j := uint64(0); j < count; j++ {
				v, err := readUvarint()
				if err != nil {
					return nil, err
				}
				if int64(v) <= prevEnd {
					return nil, errs.ErrCorruptBitmap
				}
				out.AddSorted(uint32(v))
				prevEnd = int64(v)
			}
		default:
			return nil, errs.ErrCorruptBitmap
		}
	}

	out.Build()

	return out, nil
}
