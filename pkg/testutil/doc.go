// Package testutil provides helpers shared by slideshow tests.
//
// Tests run against an in-memory afero filesystem wherever the code under
// test goes through types.FS; only the filesystem and config packages touch
// the real disk, always under t.TempDir().
package testutil
