//go:build !unix

package resolver

import "io/fs"

// fileIdentity reports no identity on platforms without a device+inode
// concept; every candidate then takes the canonicalization path.
func fileIdentity(info fs.FileInfo) (identity, bool) {
	return identity{}, false
}
