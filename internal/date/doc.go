// Package date resolves the date tokens accepted on the command line into
// canonical puzzle dates and derives output file names from them.
//
// Accepted tokens (case-insensitive):
//
//	""  or "today"          today
//	mon, tue, ... sun       most recent such weekday, today included
//	themeless               most recent Saturday
//	3/7                     March 7 of the current year
//	3/7/24                  March 7, 2024
//	3/7/2024                March 7, 2024
//
// The canonical form is month/day/yyyy. Month and day tokens typed by the
// user are kept verbatim, so "03/7/24" stays "03/7/2024" and produces the
// file name "Mar724.puz".
package date
