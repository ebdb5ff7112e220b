// Package report renders the download history and puzzle file summaries
// for the terminal (plain text), for tools (JSON) and for sharing
// (Markdown).
package report
