package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/cfgcode/factor"
)

// table is a CSV file held column by column.
type table struct {
	header []string
	cells  [][]string
}

func readTable(r io.Reader, comma rune) (*table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("input has no header row")
		}

		return nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)

	t := &table{header: header, cells: make([][]string, len(header))}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		for j, cell := range record {
			t.cells[j] = append(t.cells[j], strings.TrimSpace(cell))
		}
	}

	return t, nil
}

// columnSet builds factor columns for names in the given order, or for every
// column when names is empty.
func (t *table) columnSet(names []string) (factor.ColumnSet, error) {
	if len(names) == 0 {
		names = t.header
	}

	index := make(map[string]int, len(t.header))
	for j, name := range t.header {
		if _, dup := index[name]; !dup {
			index[name] = j
		}
	}

	set := make(factor.ColumnSet, 0, len(names))
	for _, name := range names {
		j, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("column %q not found in header %v", name, t.header)
		}
		set = append(set, factor.ColumnFromLabels(name, t.cells[j]))
	}

	return set, nil
}
