// Package dispatch runs an external command in a batch of directories.
//
// Each directory is independent: a failing command is recorded and the batch
// carries on with the next directory.
package dispatch
