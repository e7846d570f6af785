package textgrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/rinkpath/grid"
)

// ErrUnknownEncoding indicates an encoding name that is neither letters nor tokens.
var ErrUnknownEncoding = errors.New("textgrid: unknown encoding")

// Encoding selects how a cell token is interpreted.
type Encoding int

const (
	// Letters matches single uppercase tokens exactly (X, P, G, B) or a cost.
	Letters Encoding = iota
	// Tokens reads a leading cost then lowercase markers by containment.
	Tokens
)

// String returns "letters" or "tokens".
func (e Encoding) String() string {
	switch e {
	case Letters:
		return "letters"
	case Tokens:
		return "tokens"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding maps "letters"/"a" and "tokens"/"b" (any case) to an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "letters", "a":
		return Letters, nil
	case "tokens", "b":
		return Tokens, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

var letterMarkers = map[string]grid.Marker{
	"X": grid.MarkerObstacle,
	"P": grid.MarkerStart,
	"G": grid.MarkerGoal,
	"B": grid.MarkerPuck,
}

var tokenMarkers = []struct {
	letter string
	marker grid.Marker
}{
	{"x", grid.MarkerObstacle},
	{"p", grid.MarkerStart},
	{"g", grid.MarkerGoal},
	{"b", grid.MarkerPuck},
}

// DecodeCell converts one token into a Cell under enc.
func DecodeCell(token string, enc Encoding) grid.Cell {
	token = strings.TrimSpace(token)
	cost, rest := leadingCost(token)
	if enc == Letters {
		if m, ok := letterMarkers[token]; ok {
			return grid.Cell{Cost: grid.DefaultCost, Markers: m}
		}
		return grid.Cell{Cost: cost}
	}

	cell := grid.Cell{Cost: cost}
	for _, tm := range tokenMarkers {
		if strings.Contains(rest, tm.letter) {
			cell.Markers |= tm.marker
		}
	}
	return cell
}

// leadingCost splits token into its leading decimal number and the remainder.
// Without a usable number the cost is grid.DefaultCost.
func leadingCost(token string) (int64, string) {
	i := 0
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i == 0 {
		return grid.DefaultCost, token
	}
	n, err := strconv.ParseInt(token[:i], 10, 64)
	if err != nil {
		return grid.DefaultCost, token[i:]
	}
	return n, token[i:]
}

// Decode converts a token matrix into a Grid. Grid construction errors
// (empty, non-rectangular) are returned unchanged.
func Decode(tokens [][]string, enc Encoding) (*grid.Grid, error) {
	if enc != Letters && enc != Tokens {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEncoding, enc)
	}
	cells := make([][]grid.Cell, len(tokens))
	for r, row := range tokens {
		cells[r] = make([]grid.Cell, len(row))
		for c, tok := range row {
			cells[r][c] = DecodeCell(tok, enc)
		}
	}
	return grid.New(cells)
}

// Parse reads a multi-line text layout and decodes it under enc.
func Parse(text string, enc Encoding) (*grid.Grid, error) {
	var tokens [][]string
	for _, line := range strings.Split(text, "\n") {
		if row := SplitRow(line, enc); len(row) > 0 {
			tokens = append(tokens, row)
		}
	}
	return Decode(tokens, enc)
}

// SplitRow tokenizes one text row. Comments after "#" are dropped. Rows
// with separators split on whitespace and commas; a Letters row without
// separators yields one token per character. A blank row yields nil.
func SplitRow(line string, enc Encoding) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	isSep := func(r rune) bool { return unicode.IsSpace(r) || r == ',' }
	if strings.IndexFunc(line, isSep) >= 0 || enc == Tokens {
		return strings.FieldsFunc(line, isSep)
	}
	row := make([]string, 0, len(line))
	for _, r := range line {
		row = append(row, string(r))
	}
	return row
}

// Format renders g back into text under enc, one row per line, cells
// separated by single spaces. In Letters a cell shows its strongest marker
// (obstacle, start, goal, puck) or else its cost; in Tokens it shows the
// cost followed by every marker letter.
func Format(g *grid.Grid, enc Encoding) string {
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell, _ := g.Cell(grid.Position{Row: r, Col: c})
			sb.WriteString(encodeCell(cell, enc))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func encodeCell(cell grid.Cell, enc Encoding) string {
	if enc == Letters {
		for _, l := range []string{"X", "P", "G", "B"} {
			if cell.Markers.Has(letterMarkers[l]) {
				return l
			}
		}
		return strconv.FormatInt(cell.Cost, 10)
	}
	s := strconv.FormatInt(cell.Cost, 10)
	for _, tm := range tokenMarkers {
		if cell.Markers.Has(tm.marker) {
			s += tm.letter
		}
	}
	return s
}
