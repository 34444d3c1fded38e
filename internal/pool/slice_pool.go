package pool

import "sync"

// Slice pools for efficient reuse of typed slices.
// These pools help reduce allocations when sealing repeated blocks during streaming encode.
var (
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
	stringSlicePool = sync.Pool{
		New: func() any { return &[]string{} },
	}
)

// GetUint32Slice retrieves and resizes a uint32 slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []uint32: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	ids, cleanup := pool.GetUint32Slice(1000)
//	defer cleanup()
//	// Use ids slice...
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint32SlicePool.Put(ptr) }
}

// GetStringSlice retrieves and resizes a string slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []string: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	names, cleanup := pool.GetStringSlice(1000)
//	defer cleanup()
//	// Use names slice...
func GetStringSlice(size int) ([]string, func()) {
	ptr, _ := stringSlicePool.Get().(*[]string)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]string, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { stringSlicePool.Put(ptr) }
}
