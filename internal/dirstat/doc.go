// Package dirstat provides directory size reporting.
//
// It drives a depth-bounded walk over a scan root, ranks the discovered
// directories by size and computes the total size independently of how many
// entries are displayed.
package dirstat
