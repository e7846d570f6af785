package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rinkpath/search"
)

// ErrUnknownFormat indicates an output format other than text or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// MaxPathMoves is the longest path printed in full by Text.
const MaxPathMoves = 50

const separator = "----------------------------------------"

// Format selects an output layout.
type Format int

const (
	// FormatText is the human-readable block layout.
	FormatText Format = iota
	// FormatJSON is an indented JSON document.
	FormatJSON
)

// String returns the flag spelling of f.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps "text" or "json" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Record is the JSON form of one result.
type Record struct {
	Algorithm string   `json:"algorithm"`
	Found     bool     `json:"found"`
	Path      []string `json:"path"`
	Cost      *int64   `json:"cost"`
	Visited   int      `json:"visited"`
}

// Document is the JSON form of one puzzle's results.
type Document struct {
	Puzzle  string   `json:"puzzle"`
	Results []Record `json:"results"`
}

// NewRecord converts res into its JSON form. Path is empty, never null,
// and Cost is nil when the goal is unreachable.
func NewRecord(res *search.Result) Record {
	rec := Record{
		Algorithm: res.Algorithm.String(),
		Found:     res.Found,
		Path:      make([]string, len(res.Path)),
		Visited:   res.Visited,
	}
	for i, m := range res.Path {
		rec.Path[i] = m.String()
	}
	if res.Found {
		cost := res.Cost
		rec.Cost = &cost
	}
	return rec
}

// Text writes the block layout for a single result.
func Text(w io.Writer, res *search.Result) error {
	var sb strings.Builder
	switch {
	case !res.Found:
		fmt.Fprintf(&sb, "%s Path: none\n", res.Algorithm)
	case len(res.Path) > MaxPathMoves:
		fmt.Fprintf(&sb, "%s Path (first %d moves): %v ...\n", res.Algorithm, MaxPathMoves, res.Path[:MaxPathMoves])
	default:
		fmt.Fprintf(&sb, "%s Path: %v\n", res.Algorithm, res.Path)
	}
	if res.Found {
		fmt.Fprintf(&sb, "Total Cost: %d\n", res.Cost)
	} else {
		sb.WriteString("Total Cost: inf\n")
	}
	fmt.Fprintf(&sb, "Search Depth: %d\n", res.Visited)
	sb.WriteString(separator + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// JSON writes results as an indented JSON array of records.
func JSON(w io.Writer, results []*search.Result) error {
	return encode(w, records(results))
}

// Write renders the results of the puzzle called name in format. The text
// layout is preceded by a "Puzzle: name" line when name is set; the JSON
// layout is a Document, or a bare array when name is empty.
func Write(w io.Writer, format Format, name string, results []*search.Result) error {
	switch format {
	case FormatText:
		if name != "" {
			if _, err := fmt.Fprintf(w, "Puzzle: %s\n", name); err != nil {
				return err
			}
		}
		for _, res := range results {
			if err := Text(w, res); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		if name == "" {
			return JSON(w, results)
		}
		return encode(w, Document{Puzzle: name, Results: records(results)})
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

func records(results []*search.Result) []Record {
	out := make([]Record, len(results))
	for i, res := range results {
		out[i] = NewRecord(res)
	}
	return out
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}
