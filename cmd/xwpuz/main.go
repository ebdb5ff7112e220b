// Package main provides the entry point for the xwpuz CLI.
//
// xwpuz downloads a daily crossword from xwordinfo and saves it as an
// Across Lite .puz file.
//
// Usage:
//
//	xwpuz                 # today's puzzle
//	xwpuz --date sat      # the most recent Saturday
//	xwpuz --date 3/7/2024
//	xwpuz latest          # most recent puzzle already downloaded
//
// See --help for all available options.
package main

// main is the entry point for xwpuz.
func main() {
	Execute()
}
