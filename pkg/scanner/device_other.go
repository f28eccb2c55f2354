//go:build !unix

package scanner

import "io/fs"

// deviceOf reports no device identity on platforms without one; the
// one-filesystem confinement then degrades to unrestricted descent.
func deviceOf(info fs.FileInfo) (uint64, bool) {
	return 0, false
}
