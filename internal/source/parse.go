package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/podolab/podo-analyzer/internal/pressure"
)

// ErrNoData indicates a document without any pressure rows.
var ErrNoData = errors.New("document contains no pressure data")

// document is the on-disk capture format.
type document struct {
	RawPressureByRows map[string]string `json:"RawPressureByRows"`
}

// ParseDocument decodes a capture document into a pressure grid.
func ParseDocument(data []byte) (pressure.Grid, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	if len(doc.RawPressureByRows) == 0 {
		return nil, ErrNoData
	}

	type indexedRow struct {
		index int
		key   string
	}
	rows := make([]indexedRow, 0, len(doc.RawPressureByRows))
	for key := range doc.RawPressureByRows {
		idx, err := rowIndex(key)
		if err != nil {
			return nil, err
		}
		rows = append(rows, indexedRow{index: idx, key: key})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].index < rows[j].index })

	grid := make(pressure.Grid, 0, len(rows))
	for _, row := range rows {
		cells, err := parseRow(row.key, doc.RawPressureByRows[row.key])
		if err != nil {
			return nil, err
		}
		if len(grid) > 0 && len(cells) != len(grid[0]) {
			return nil, fmt.Errorf("row %q has %d cells, previous rows have %d",
				row.key, len(cells), len(grid[0]))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// ParseFile reads and decodes a capture document from disk.
func ParseFile(path string) (pressure.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseDocument(data)
}

// rowIndex extracts the numeric row index embedded after the final
// underscore of a row identifier.
func rowIndex(key string) (int, error) {
	pos := strings.LastIndex(key, "_")
	if pos < 0 || pos == len(key)-1 {
		return 0, fmt.Errorf("row identifier %q has no index suffix", key)
	}
	idx, err := strconv.Atoi(key[pos+1:])
	if err != nil {
		return 0, fmt.Errorf("row identifier %q has non-numeric index: %w", key, err)
	}
	return idx, nil
}

// parseRow converts one comma-separated value string into a row of
// non-negative integers. Whitespace around separators is tolerated.
func parseRow(key, raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	cells := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("row %q: non-numeric cell %q", key, strings.TrimSpace(field))
		}
		if v < 0 {
			return nil, fmt.Errorf("row %q: negative pressure value %d", key, v)
		}
		cells = append(cells, v)
	}
	return cells, nil
}
