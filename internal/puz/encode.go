package puz

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

const (
	headerSize = 0x34
	version    = "1.3\x00"
	typeNormal = 0x0001
	gextCode   = "GEXT"
)

var magic = []byte("ACROSS&DOWN\x00")

// encodedText holds the grids and string sections as ISO-8859-1 bytes,
// strings without terminators.
type encodedText struct {
	solution  []byte
	fill      []byte
	title     []byte
	author    []byte
	copyright []byte
	clues     [][]byte
	notes     []byte
}

// Encode serializes p. It fails without partial output when p violates
// the format's constraints.
func Encode(p *Puzzle) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	text, err := encodeText(p)
	if err != nil {
		return nil, err
	}
	solution, fill := text.solution, text.fill

	header := make([]byte, headerSize)
	copy(header[0x02:], magic)
	copy(header[0x18:], version)
	header[0x2C] = byte(p.Width)
	header[0x2D] = byte(p.Height)
	binary.LittleEndian.PutUint16(header[0x2E:], uint16(len(p.Clues)))
	binary.LittleEndian.PutUint16(header[0x30:], typeNormal)
	binary.LittleEndian.PutUint16(header[0x32:], 0)

	cib := checksum(header[0x2C:headerSize], 0)
	binary.LittleEndian.PutUint16(header[0x0E:], cib)

	sum := checksum(solution, cib)
	sum = checksum(fill, sum)
	sum = textChecksum(text, sum)
	binary.LittleEndian.PutUint16(header[0x00:], sum)

	masked := maskedChecksums(cib, checksum(solution, 0), checksum(fill, 0), textChecksum(text, 0))
	copy(header[0x10:], masked[:])

	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(solution)
	buf.Write(fill)
	for _, s := range [][]byte{text.title, text.author, text.copyright} {
		buf.Write(s)
		buf.WriteByte(0)
	}
	for _, clue := range text.clues {
		buf.Write(clue)
		buf.WriteByte(0)
	}
	buf.Write(text.notes)
	buf.WriteByte(0)

	if p.HasMarkup() {
		writeSection(&buf, gextCode, p.Markup)
	}

	return buf.Bytes(), nil
}

// writeSection appends an extension section: code, length, checksum,
// data and a NUL terminator.
func writeSection(buf *bytes.Buffer, code string, data []byte) {
	var meta [4]byte
	binary.LittleEndian.PutUint16(meta[0:], uint16(len(data)))
	binary.LittleEndian.PutUint16(meta[2:], checksum(data, 0))
	buf.WriteString(code)
	buf.Write(meta[:])
	buf.Write(data)
	buf.WriteByte(0)
}

func encodeText(p *Puzzle) (encodedText, error) {
	enc := charmap.ISO8859_1.NewEncoder()
	conv := func(name, s string) ([]byte, error) {
		b, err := enc.Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", name, ErrInvalidText, err)
		}
		return b, nil
	}

	var t encodedText
	var err error
	if t.solution, err = conv("solution", p.Solution); err != nil {
		return t, err
	}
	if t.fill, err = conv("fill", p.Fill); err != nil {
		return t, err
	}
	if t.title, err = conv("title", p.Title); err != nil {
		return t, err
	}
	if t.author, err = conv("author", p.Author); err != nil {
		return t, err
	}
	if t.copyright, err = conv("copyright", p.Copyright); err != nil {
		return t, err
	}
	if t.notes, err = conv("notes", p.Notes); err != nil {
		return t, err
	}
	t.clues = make([][]byte, len(p.Clues))
	for i, clue := range p.Clues {
		if t.clues[i], err = conv(fmt.Sprintf("clue %d", i+1), clue); err != nil {
			return t, err
		}
	}
	return t, nil
}
