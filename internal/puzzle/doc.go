// Package puzzle converts an XWord Info response into the .puz model.
//
// The source grid is a flat, row-major list of cell strings and the clues
// arrive as two independently numbered lists. The .puz format instead
// stores one clue list ordered by grid position and expects readers to
// rebuild the numbering from the grid. This package therefore:
//
//  1. numbers the grid with the standard two-direction scan (Number),
//  2. maps clue numbers to decoded, Latin-1 safe text (ParseClues),
//  3. merges across and down into a single list (Merge), and
//  4. derives the solution and fill grids, notes and circle markup (Build).
//
// Data problems that a solver can live with are absorbed: a numbered slot
// without clue text gets MissingClue, and a rebus square is stored as
// RebusPlaceholder with its answer appended to the notes.
package puzzle
