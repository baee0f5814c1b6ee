// Package walk provides the filesystem probe and the depth-bounded tree walker.
//
// The walker produces a flat, pre-order list of directory nodes. Entries that
// cannot be read are skipped and reported to a Logger rather than aborting the
// traversal, so one unreadable directory never fails a whole scan.
package walk
