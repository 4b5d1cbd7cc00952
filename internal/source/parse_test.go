package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDocument(t *testing.T) {
	doc := []byte(`{"RawPressureByRows": {
		"row_0": "0, 1, 2",
		"row_1": "3, 4, 5",
		"row_2": "6,7,8"
	}}`)

	grid, err := ParseDocument(doc)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	rows, cols := grid.Dims()
	if rows != 3 || cols != 3 {
		t.Fatalf("dimensions: got %dx%d, want 3x3", rows, cols)
	}
	want := [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}
	for r := range want {
		for c := range want[r] {
			if grid[r][c] != want[r][c] {
				t.Errorf("cell (%d,%d): got %d, want %d", r, c, grid[r][c], want[r][c])
			}
		}
	}
}

func TestParseDocument_NumericRowOrder(t *testing.T) {
	// Lexicographic ordering would put row_10 before row_2.
	doc := []byte(`{"RawPressureByRows": {
		"row_10": "10",
		"row_2": "2",
		"row_0": "0",
		"row_1": "1"
	}}`)

	grid, err := ParseDocument(doc)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(grid) != 4 {
		t.Fatalf("got %d rows, want 4", len(grid))
	}
	wantOrder := []int{0, 1, 2, 10}
	for i, want := range wantOrder {
		if grid[i][0] != want {
			t.Errorf("row %d: got %d, want %d", i, grid[i][0], want)
		}
	}
}

func TestParseDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not JSON", `pressure: yes`},
		{"missing field", `{"SomethingElse": 1}`},
		{"empty rows", `{"RawPressureByRows": {}}`},
		{"no index suffix", `{"RawPressureByRows": {"row": "1, 2"}}`},
		{"non-numeric index", `{"RawPressureByRows": {"row_x": "1, 2"}}`},
		{"non-numeric cell", `{"RawPressureByRows": {"row_0": "1, two, 3"}}`},
		{"empty cell", `{"RawPressureByRows": {"row_0": "1, , 3"}}`},
		{"negative cell", `{"RawPressureByRows": {"row_0": "1, -2, 3"}}`},
		{"ragged rows", `{"RawPressureByRows": {"row_0": "1, 2, 3", "row_1": "1, 2"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDocument([]byte(tt.doc)); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestParseDocument_NoData(t *testing.T) {
	_, err := ParseDocument([]byte(`{"RawPressureByRows": {}}`))
	if !errors.Is(err, ErrNoData) {
		t.Errorf("got %v, want ErrNoData", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.json")
	content := `{"RawPressureByRows": {"row_0": "0, 5", "row_1": "10, 15"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	grid, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if grid[1][1] != 15 {
		t.Errorf("cell (1,1): got %d, want 15", grid[1][1])
	}
}

func TestParseFile_Missing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing file should be an error")
	}
}
