// Package patterns loads initial board states from coordinate pattern
// files. A pattern file holds one cell per line in the form "(row, col) *"
// for a live cell or "(row, col) ." for a dead one; blank lines and lines
// starting with '#' are ignored.
package patterns

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"golife/model"
)

// ErrMalformedPattern reports an unreadable or syntactically invalid
// pattern file.
var ErrMalformedPattern = errors.New("malformed pattern file")

// Matches lines like: (1,2) *  or  (0, 4) .
var coordLineRE = regexp.MustCompile(`^\s*\(\s*(\d+)\s*,\s*(\d+)\s*\)\s+([*.])\s*$`)

// PatternFile is the parsed content of a pattern file. Rows and Cols are
// inferred from the maximum coordinates seen (inclusive).
type PatternFile struct {
	Rows      int
	Cols      int
	LiveCells []model.Cell
}

// ParseFile parses the pattern file at path.
func ParseFile(path string) (*PatternFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedPattern, "[ParseFile] pattern file not found: %+v", path)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse parses pattern lines from r; name is used in error messages only.
func Parse(r io.Reader, name string) (*PatternFile, error) {
	var (
		pf      PatternFile
		maxRow  = -1
		maxCol  = -1
		scanner = bufio.NewScanner(r)
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isSkippable(line) {
			continue
		}

		m := coordLineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.Wrapf(ErrMalformedPattern,
				"[Parse] malformed line %d in %s: %q", lineNo, name, line)
		}

		// Digits already validated by the regexp.
		row, _ := strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		if m[3] == "*" {
			pf.LiveCells = append(pf.LiveCells, model.Cell{X: col, Y: row})
			maxRow = max(maxRow, row)
			maxCol = max(maxCol, col)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "[Parse] failed to read pattern: %+v", name)
	}

	pf.Rows = maxRow + 1
	pf.Cols = maxCol + 1
	return &pf, nil
}

func isSkippable(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t', '\r':
			continue
		case '#':
			return true
		default:
			return false
		}
	}
	return true
}

// Load clears the grid and places the live cells from the pattern file at
// path. The pattern must fit: loading never truncates.
func Load(path string, grid *model.Grid) error {
	pf, err := ParseFile(path)
	if err != nil {
		return err
	}

	if pf.Rows > grid.GetHeight() || pf.Cols > grid.GetWidth() {
		return errors.Wrapf(model.ErrInvalidGrid,
			"[Load] pattern (%dx%d) does not fit into board %dx%d",
			pf.Rows, pf.Cols, grid.GetHeight(), grid.GetWidth())
	}

	grid.Clear()
	return grid.Place(model.CustomPattern(pf.LiveCells), 0, 0)
}
