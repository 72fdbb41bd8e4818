// Package resolve turns the names given on the command line into source
// files. A name that exists is used as is; otherwise its last extension is
// dropped and each known extension is tried in priority order, first hit
// wins. Resolution only ever stats files.
package resolve
