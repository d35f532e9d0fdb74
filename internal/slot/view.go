package slot

import "unsafe"

func statusView(b []byte) []Status {
	return unsafe.Slice((*Status)(unsafe.Pointer(&b[0])), len(b)) //nolint:gosec // Status is a byte
}
