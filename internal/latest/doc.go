// Package latest finds the most recent puzzle already downloaded into a
// directory, judging by file names alone.
package latest
