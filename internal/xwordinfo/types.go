package xwordinfo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BlockCell is the grid value of a blocked square.
const BlockCell = "."

// MaxDimension is the largest row or column count the .puz format can hold.
const MaxDimension = 255

// Size is the grid size in the response.
type Size struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Clues holds the raw clue strings, each formatted "<number>. <text>".
type Clues struct {
	Across []string `json:"across"`
	Down   []string `json:"down"`
}

// Flag decodes a boolean the API sends either as a JSON bool or as a
// string such as "true".
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = false
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid flag %s: %w", data, err)
	}
	*f = Flag(v)
	return nil
}

// Response is one day's puzzle as returned by the API.
type Response struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Editor    string `json:"editor"`
	Copyright string `json:"copyright"`
	Date      string `json:"date"`

	// Notepad is free text shown with the puzzle. The API sends null
	// when there is none.
	Notepad string `json:"notepad"`

	Size  Size     `json:"size"`
	Grid  []string `json:"grid"`
	Clues Clues    `json:"clues"`

	// Circles has one entry per cell; non-zero marks a circled square.
	// It is null for puzzles without circles.
	Circles []int `json:"circles"`

	// ShadeCircles asks for circled squares to be rendered shaded.
	ShadeCircles Flag `json:"shadecircles"`
}

// Decode parses a response body.
func Decode(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &resp, nil
}

// Validate checks the fields the puzzle build depends on.
func (r *Response) Validate() error {
	if r.Size.Rows <= 0 || r.Size.Cols <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrMalformedResponse, r.Size.Cols, r.Size.Rows)
	}
	if r.Size.Rows > MaxDimension || r.Size.Cols > MaxDimension {
		return fmt.Errorf("%w: size %dx%d exceeds %d", ErrMalformedResponse, r.Size.Cols, r.Size.Rows, MaxDimension)
	}
	if len(r.Grid) != r.Size.Rows*r.Size.Cols {
		return fmt.Errorf("%w: grid has %d cells, want %d", ErrMalformedResponse, len(r.Grid), r.Size.Rows*r.Size.Cols)
	}
	for i, cell := range r.Grid {
		if cell == "" {
			return fmt.Errorf("%w: empty grid cell at %d", ErrMalformedResponse, i)
		}
	}
	if r.Circles != nil && len(r.Circles) != len(r.Grid) {
		return fmt.Errorf("%w: %d circle flags for %d cells", ErrMalformedResponse, len(r.Circles), len(r.Grid))
	}
	if len(r.Clues.Across) == 0 && len(r.Clues.Down) == 0 {
		return fmt.Errorf("%w: no clues", ErrMalformedResponse)
	}
	return nil
}

// HasCircles reports whether any cell is circled.
func (r *Response) HasCircles() bool {
	for _, c := range r.Circles {
		if c != 0 {
			return true
		}
	}
	return false
}
