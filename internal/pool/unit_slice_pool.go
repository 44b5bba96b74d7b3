package pool

import "sync"

var unitSlicePool = sync.Pool{
	New: func() any { return &[]uint16{} },
}

// GetUnitSlice retrieves a code unit slice of the given length from the pool.
//
// If the pooled slice has insufficient capacity a new one is allocated. The
// caller must call the returned cleanup function (typically with defer) to
// return the slice to the pool; the slice must not be used afterwards.
//
// Example:
//
//	units, cleanup := pool.GetUnitSlice(len(key))
//	defer cleanup()
//	units = codeunit.AppendString(units[:0], key)
func GetUnitSlice(size int) ([]uint16, func()) {
	ptr, _ := unitSlicePool.Get().(*[]uint16)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint16, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { unitSlicePool.Put(ptr) }
}
