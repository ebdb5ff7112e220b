package puz

var nul = []byte{0}

// checksum folds data into sum with the format's rotate-right-and-add step.
func checksum(data []byte, sum uint16) uint16 {
	for _, b := range data {
		if sum&1 != 0 {
			sum = sum>>1 | 0x8000
		} else {
			sum >>= 1
		}
		sum += uint16(b)
	}
	return sum
}

// textChecksum covers the string sections. Empty title, author, copyright
// and notes are skipped; clues are summed without their terminators.
func textChecksum(t encodedText, sum uint16) uint16 {
	for _, s := range [][]byte{t.title, t.author, t.copyright} {
		if len(s) > 0 {
			sum = checksum(s, sum)
			sum = checksum(nul, sum)
		}
	}
	for _, clue := range t.clues {
		sum = checksum(clue, sum)
	}
	if len(t.notes) > 0 {
		sum = checksum(t.notes, sum)
		sum = checksum(nul, sum)
	}
	return sum
}

// maskedChecksums returns the eight masked checksum bytes stored at 0x10.
func maskedChecksums(cib, solution, fill, text uint16) [8]byte {
	const mask = "ICHEATED"
	sums := [4]uint16{cib, solution, fill, text}

	var out [8]byte
	for i, s := range sums {
		out[i] = mask[i] ^ byte(s)
		out[i+4] = mask[i+4] ^ byte(s>>8)
	}
	return out
}
