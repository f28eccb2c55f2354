//go:build unix

package scanner

import (
	"io/fs"
	"syscall"
)

// deviceOf returns the device id backing the entry, when the platform
// exposes one.
func deviceOf(info fs.FileInfo) (uint64, bool) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Dev), true
	}
	return 0, false
}
