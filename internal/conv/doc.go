// Package conv provides checked integer conversions for slot indices and key
// handles, which are stored as uint32.
package conv
