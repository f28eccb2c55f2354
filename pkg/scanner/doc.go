// Package scanner implements the parallel traversal engine.
//
// A Walker fans out one goroutine per discovered directory, bounded by a
// semaphore sized to the worker count. Each walker reads its directory,
// classifies entries without following symlinks, runs them through the
// layered filter policy, bumps atomic counters for files and directories,
// and appends symlink candidates to a mutex-guarded buffer. Walk returns
// only after every spawned walker has finished, so the buffer handed to
// the resolution phase is complete and frozen.
//
// Unreadable directories are skipped and traversal continues; a live
// filesystem is allowed to change underneath the scan.
package scanner
