// Package puz reads and writes the Across Lite binary crossword format.
//
// A file is a fixed 0x34-byte header followed by the solution grid, the
// player fill grid, NUL-terminated title, author, copyright, clue and notes
// strings, and optional extension sections. Only the GEXT (per-square
// markup) extension is produced; others are skipped when reading.
//
// All strings are ISO-8859-1. Callers are expected to sanitize text before
// building a Puzzle; Encode rejects anything that does not fit.
//
// Checksums follow the format's rotate-and-add scheme: a header checksum
// (CIB), a whole-file checksum and the four "masked" checksums that spell
// ICHEATED when XORed with the section checksums.
package puz
