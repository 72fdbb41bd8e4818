// Package filesystem provides implementations of types.FS.
//
// NewOS talks to the real filesystem; NewAferoFS wraps any afero.Fs and is
// what tests use with an in-memory filesystem.
package filesystem
