// Package stream implements the AHDA streaming encoder and decoder state
// machines: bounded-memory record-at-a-time and block-at-a-time conversion
// to and from the AHDA byte stream.
package stream

import "github.com/tmaklin/ahda-sub000/errs"

// maxBlockSize is the memory-bound cap on the number of records buffered
// per block, independent of n_targets.
const maxBlockSize = 65536

// ComputeBlockSize implements spec.md §4.5's formula:
// B = min(floor((2^32-1)/n_targets), maxBlockSize+1) - 1, never less than 2.
// This keeps (B-1)*n_targets inside the 32-bit flattened index space used
// by the bitmap codec and caps B at maxBlockSize for a predictable memory
// bound.
func ComputeBlockSize(nTargets uint32) (uint32, error) {
	if nTargets == 0 {
		return 0, errs.ErrNTargetsRequired
	}

	byAddressSpace := uint64(0xFFFFFFFF) / uint64(nTargets)
	capped := byAddressSpace
	if capped > maxBlockSize+1 {
		capped = maxBlockSize + 1
	}

	b := capped - 1
	if b < 2 {
		b = 2
	}

	return uint32(b), nil
}

// ValidateBlockSize enforces the 2..65536 range set_block_size callers must
// satisfy.
func ValidateBlockSize(n uint32) error {
	if n < 2 || n > maxBlockSize {
		return errs.ErrInvalidBlockSize
	}

	return nil
}
