package puzzle

// Number computes clue numbers for a row-major grid of the given width.
// It returns the numbers of across and down entries in scan order.
//
// A white square starts an across entry when it opens its row, or when the
// square to its left is black and the square to its right is white and in
// the same row. Down entries follow the same rule along columns. Each
// starting square consumes one number, shared when it starts both.
func Number(cells []Cell, width int) (across, down []int) {
	if width <= 0 {
		return nil, nil
	}

	next := 1
	for i, cell := range cells {
		if cell.IsBlocked() {
			continue
		}

		col := i % width
		startsAcross := col == 0 ||
			(cells[i-1].IsBlocked() && col+1 < width && i+1 < len(cells) && !cells[i+1].IsBlocked())
		startsDown := i < width ||
			(cells[i-width].IsBlocked() && i+width < len(cells) && !cells[i+width].IsBlocked())

		if startsAcross {
			across = append(across, next)
		}
		if startsDown {
			down = append(down, next)
		}
		if startsAcross || startsDown {
			next++
		}
	}
	return across, down
}
