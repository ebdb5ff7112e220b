// Package database provides SQLite-based storage for the download history.
//
// Each puzzle file xwpuz writes is recorded with its date, location and a
// few facts about the puzzle, so the history command can list what was
// saved without re-reading every file. The database is a single file in
// the XDG data directory, opened through the CGO-free modernc.org/sqlite
// driver.
package database
