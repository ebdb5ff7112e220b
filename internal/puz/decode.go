package puz

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// reader walks the body of a puzzle file.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) next(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, ErrTruncated
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) cstring() ([]byte, error) {
	end := bytes.IndexByte(r.data[r.pos:], 0)
	if end < 0 {
		return nil, ErrTruncated
	}
	b := r.data[r.pos : r.pos+end]
	r.pos += end + 1
	return b, nil
}

// Decode parses a puzzle file and verifies its checksums. Leading bytes
// before the ACROSS&DOWN signature are ignored.
func Decode(data []byte) (*Puzzle, error) {
	idx := bytes.Index(data, magic)
	if idx < 2 {
		return nil, ErrBadMagic
	}
	data = data[idx-2:]
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	header := data[:headerSize]

	if cib := checksum(header[0x2C:headerSize], 0); cib != binary.LittleEndian.Uint16(header[0x0E:]) {
		return nil, fmt.Errorf("%w: header", ErrChecksum)
	}
	if binary.LittleEndian.Uint16(header[0x32:]) != 0 {
		return nil, ErrScrambled
	}

	width := int(header[0x2C])
	height := int(header[0x2D])
	numClues := int(binary.LittleEndian.Uint16(header[0x2E:]))
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	r := &reader{data: data, pos: headerSize}
	var text encodedText
	var err error
	if text.solution, err = r.next(width * height); err != nil {
		return nil, fmt.Errorf("solution: %w", err)
	}
	if text.fill, err = r.next(width * height); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	if text.title, err = r.cstring(); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	if text.author, err = r.cstring(); err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}
	if text.copyright, err = r.cstring(); err != nil {
		return nil, fmt.Errorf("copyright: %w", err)
	}
	text.clues = make([][]byte, numClues)
	for i := range text.clues {
		if text.clues[i], err = r.cstring(); err != nil {
			return nil, fmt.Errorf("clue %d: %w", i+1, err)
		}
	}
	if text.notes, err = r.cstring(); err != nil {
		return nil, fmt.Errorf("notes: %w", err)
	}

	cib := binary.LittleEndian.Uint16(header[0x0E:])
	sum := checksum(text.solution, cib)
	sum = checksum(text.fill, sum)
	sum = textChecksum(text, sum)
	if sum != binary.LittleEndian.Uint16(header[0x00:]) {
		return nil, fmt.Errorf("%w: file", ErrChecksum)
	}
	masked := maskedChecksums(cib, checksum(text.solution, 0), checksum(text.fill, 0), textChecksum(text, 0))
	if !bytes.Equal(masked[:], header[0x10:0x18]) {
		return nil, fmt.Errorf("%w: masked", ErrChecksum)
	}

	p := &Puzzle{
		Width:     width,
		Height:    height,
		Solution:  decodeText(text.solution),
		Fill:      decodeText(text.fill),
		Title:     decodeText(text.title),
		Author:    decodeText(text.author),
		Copyright: decodeText(text.copyright),
		Notes:     decodeText(text.notes),
		Clues:     make([]string, numClues),
	}
	for i, clue := range text.clues {
		p.Clues[i] = decodeText(clue)
	}

	if err := readSections(r, p); err != nil {
		return nil, err
	}
	return p, nil
}

// readSections consumes extension sections until the data runs out.
func readSections(r *reader, p *Puzzle) error {
	for len(r.data)-r.pos >= 8 {
		code, _ := r.next(4) //nolint:errcheck // length checked by loop condition
		meta, _ := r.next(4) //nolint:errcheck // length checked by loop condition
		length := int(binary.LittleEndian.Uint16(meta[0:]))
		want := binary.LittleEndian.Uint16(meta[2:])

		data, err := r.next(length)
		if err != nil {
			return fmt.Errorf("%s section: %w", code, err)
		}
		if _, err := r.next(1); err != nil {
			return fmt.Errorf("%s section: %w", code, err)
		}
		if checksum(data, 0) != want {
			return fmt.Errorf("%w: %s section", ErrChecksum, code)
		}

		if string(code) == gextCode {
			if length != p.Width*p.Height {
				return fmt.Errorf("%w: GEXT has %d squares", ErrGridMismatch, length)
			}
			p.Markup = bytes.Clone(data)
		}
	}
	return nil
}

// decodeText converts ISO-8859-1 bytes to a Go string. Every byte maps to
// a rune, so decoding cannot fail.
func decodeText(b []byte) string {
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(b) //nolint:errcheck // total mapping
	return string(s)
}
