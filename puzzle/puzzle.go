package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/rinkpath/ctxlog"
	"github.com/katalvlaran/rinkpath/grid"
	"github.com/katalvlaran/rinkpath/search"
	"github.com/katalvlaran/rinkpath/textgrid"
)

// Sentinel errors for puzzle loading.
var (
	// ErrNoPuzzles indicates the given paths contained no puzzle blocks.
	ErrNoPuzzles = errors.New("puzzle: no puzzles found")
	// ErrDuplicatePuzzle indicates two puzzle blocks share a name.
	ErrDuplicatePuzzle = errors.New("puzzle: duplicate puzzle name")
	// ErrInvalidRows indicates a rows attribute that is not a list of
	// strings or of string lists.
	ErrInvalidRows = errors.New("puzzle: invalid rows")
)

// Puzzle is one decoded rink with the algorithms to run on it.
type Puzzle struct {
	Name        string
	Description string
	File        string
	Encoding    textgrid.Encoding
	Grid        *grid.Grid
	Algorithms  []search.Algorithm
}

// fileRoot is the top-level schema of a puzzle file.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
}

// puzzleBlock is the HCL schema of one puzzle block.
type puzzleBlock struct {
	Name        string    `hcl:"name,label"`
	Description *string   `hcl:"description,optional"`
	Encoding    *string   `hcl:"encoding,optional"`
	Rows        cty.Value `hcl:"rows"`
	Algorithms  []string  `hcl:"algorithms,optional"`
}

// Loader reads puzzle files. It keeps no state between calls.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found in paths (files, or directories walked
// recursively) and returns their puzzles ordered by file then position.
// Puzzle names must be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*Puzzle, error) {
	logger := ctxlog.FromContext(ctx)
	files, err := findFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("puzzle files discovered", "count", len(files))

	var out []*Puzzle
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("puzzle: read %s: %w", file, err)
		}
		ps, err := l.Parse(ctx, file, src)
		if err != nil {
			return nil, err
		}
		out = append(out, ps...)
	}
	if err := checkUnique(out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoPuzzles
	}
	logger.Debug("puzzles loaded", "count", len(out))
	return out, nil
}

// Parse decodes the puzzles of a single HCL source. filename is used in
// diagnostics and recorded in Puzzle.File. Each call parses src afresh, so
// reusing a filename never returns an earlier source.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) ([]*Puzzle, error) {
	// hclparse.Parser caches files by name; a parser per call keeps src authoritative.
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("puzzle: parse %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("puzzle: decode %s: %w", filename, diags)
	}

	out := make([]*Puzzle, 0, len(root.Puzzles))
	for _, b := range root.Puzzles {
		p, err := b.translate(filename)
		if err != nil {
			return nil, err
		}
		ctxlog.FromContext(ctx).Debug("puzzle decoded",
			"name", p.Name, "file", filename, "rows", p.Grid.Rows, "cols", p.Grid.Cols)
		out = append(out, p)
	}
	if err := checkUnique(out); err != nil {
		return nil, err
	}
	return out, nil
}

// translate converts the HCL schema into a decoded Puzzle.
func (b *puzzleBlock) translate(filename string) (*Puzzle, error) {
	p := &Puzzle{Name: b.Name, File: filename, Encoding: textgrid.Letters}
	if b.Description != nil {
		p.Description = *b.Description
	}
	if b.Encoding != nil {
		enc, err := textgrid.ParseEncoding(*b.Encoding)
		if err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", b.Name, err)
		}
		p.Encoding = enc
	}

	tokens, err := rowTokens(b.Rows, p.Encoding)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", b.Name, err)
	}
	if p.Grid, err = textgrid.Decode(tokens, p.Encoding); err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", b.Name, err)
	}

	if len(b.Algorithms) == 0 {
		p.Algorithms = search.Algorithms()
	}
	for _, name := range b.Algorithms {
		alg, err := search.ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", b.Name, err)
		}
		p.Algorithms = append(p.Algorithms, alg)
	}
	return p, nil
}

// rowTokens flattens the dynamic rows value. A string element is split like
// a text row; a list or tuple element is converted to a list of strings.
func rowTokens(rows cty.Value, enc textgrid.Encoding) ([][]string, error) {
	if rows.IsNull() || !rows.IsKnown() {
		return nil, fmt.Errorf("%w: rows must be set", ErrInvalidRows)
	}
	ty := rows.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return nil, fmt.Errorf("%w: rows must be a list, got %s", ErrInvalidRows, ty.FriendlyName())
	}

	var out [][]string
	it := rows.ElementIterator()
	for i := 0; it.Next(); i++ {
		_, el := it.Element()
		switch {
		case el.IsNull():
			return nil, fmt.Errorf("%w: row %d is null", ErrInvalidRows, i)
		case el.Type() == cty.String:
			out = append(out, textgrid.SplitRow(el.AsString(), enc))
		case el.Type().IsListType() || el.Type().IsTupleType():
			list, err := convert.Convert(el, cty.List(cty.String))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidRows, i, err)
			}
			var row []string
			if err := gocty.FromCtyValue(list, &row); err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidRows, i, err)
			}
			out = append(out, row)
		default:
			return nil, fmt.Errorf("%w: row %d has type %s", ErrInvalidRows, i, el.Type().FriendlyName())
		}
	}
	return out, nil
}

// checkUnique rejects repeated puzzle names.
func checkUnique(ps []*Puzzle) error {
	seen := make(map[string]string, len(ps))
	for _, p := range ps {
		if prev, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %q in %s and %s", ErrDuplicatePuzzle, p.Name, prev, p.File)
		}
		seen[p.Name] = p.File
	}
	return nil
}

// findFiles expands paths into a sorted, de-duplicated list of .hcl files.
func findFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("puzzle: %w", err)
		}
		if !info.IsDir() {
			add(filepath.Clean(path))
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".hcl" {
				add(filepath.Clean(p))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("puzzle: walk %s: %w", path, err)
		}
	}
	sort.Strings(files)
	return files, nil
}
