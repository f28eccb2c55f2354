//go:build unix

package resolver

import (
	"io/fs"
	"syscall"
)

// fileIdentity returns the device+inode pair identifying the file.
func fileIdentity(info fs.FileInfo) (identity, bool) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return identity{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
	}
	return identity{}, false
}
