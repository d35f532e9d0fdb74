// Package keystore owns the byte buffers behind occupied slot keys.
//
// Each key is copied into its own buffer of len(key)+1 bytes with a trailing
// NUL, allocated through the table's allocator. Slots refer to buffers by
// Handle; handle 0 means "no key". Ownership is single: a buffer is released
// exactly once, either when its slot is tombstoned or when the table is
// destroyed.
package keystore
