package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// loadColorFile reads gradient control colors from a CSV file. The first
// row is a header and is ignored; every following row holds one R,G,B
// triple. Channel range and row count are validated by the gradient
// builder, so this only handles file shape and number parsing.
func loadColorFile(path string) ([][3]int, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening color file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading color file %q: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("color file %q is empty", path)
	}

	rows := make([][3]int, 0, len(records)-1)
	for _, rec := range records[1:] {
		var row [3]int
		for i, fieldValue := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(fieldValue))
			if err != nil {
				return nil, fmt.Errorf("color file %q: channel %q: %w", path, fieldValue, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
