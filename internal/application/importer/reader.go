package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"matchmaker-backend/internal/domain"
)

// ErrNoHeader is returned for an empty file.
var ErrNoHeader = errors.New("csv missing header row")

// RowIssue records a cell that was present but could not be parsed.
type RowIssue struct {
	Line   int
	Label  string
	Column string
	Value  string
}

func (i RowIssue) String() string {
	return fmt.Sprintf("line %d: %s (%s): cannot parse %q", i.Line, i.Label, i.Column, i.Value)
}

// Parsed is the result of reading one export file.
type Parsed struct {
	Projects []domain.Project
	Issues   []RowIssue
	Unmapped []string // header labels stored in Extra
}

// ReadProjects parses a UTF-8 CSV export (optional BOM) with a header row of
// column labels. Blank cells stay NULL; unparseable numeric cells stay NULL
// and are reported in Issues. Fully blank rows are skipped.
func ReadProjects(r io.Reader) (Parsed, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Parsed{}, err
	}
	data = stripBOM(data)
	cr := csv.NewReader(bufio.NewReader(bytes.NewReader(data)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return Parsed{}, ErrNoHeader
	}
	if err != nil {
		return Parsed{}, err
	}

	var out Parsed
	cols := make([]*column, len(header))
	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = strings.TrimSpace(h)
		if c, ok := lookupColumn(h); ok {
			c := c
			cols[i] = &c
		} else if labels[i] != "" {
			out.Unmapped = append(out.Unmapped, labels[i])
		}
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, err
		}
		line, _ := cr.FieldPos(0)

		var p domain.Project
		blank := true
		for i, raw := range rec {
			if i >= len(header) {
				break
			}
			cell := strings.TrimSpace(raw)
			if cell == "" {
				continue
			}
			blank = false
			if cols[i] == nil {
				if labels[i] == "" {
					continue
				}
				if p.Extra == nil {
					p.Extra = map[string]interface{}{}
				}
				p.Extra[labels[i]] = cell
				continue
			}
			if !cols[i].set(&p, cell) {
				out.Issues = append(out.Issues, RowIssue{Line: line, Label: labels[i], Column: cols[i].Name, Value: cell})
			}
		}
		if !blank {
			out.Projects = append(out.Projects, p)
		}
	}
	return out, nil
}

func stripBOM(b []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(b) >= 3 && bytes.Equal(b[:3], bom) {
		return b[3:]
	}
	return b
}
