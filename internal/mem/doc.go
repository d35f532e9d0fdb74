// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// AllocAligned returns zeroed heap memory aligned to a power-of-two boundary.
// Slot blocks use cache-line alignment; key buffers use word alignment.
//
// # Typed Views
//
// Int32s and Uint32s reinterpret an aligned byte region as a word slice
// without copying, which is how the slot table addresses its value and key
// handle regions inside the single backing block.
package mem
