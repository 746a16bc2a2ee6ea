// Package filesystem provides the filesystem used by rxpipe.
//
// Both implementations sit on afero: NewOS uses the real filesystem and
// guards writers with an advisory lock file, NewMemory keeps everything in
// memory and is meant for tests.
package filesystem
