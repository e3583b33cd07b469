package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeColorFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colors.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadColorFile(t *testing.T) {
	path := writeColorFile(t, "R,G,B\n5,71,92\n10,120,115\n184,216,215\n")

	rows, err := loadColorFile(path)
	if err != nil {
		t.Fatalf("loadColorFile: %v", err)
	}
	want := [][3]int{{5, 71, 92}, {10, 120, 115}, {184, 216, 215}}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestLoadColorFileSkipsHeader(t *testing.T) {
	path := writeColorFile(t, "red,green,blue\n0,0,0\n127,127,127\n255,255,255\n")
	rows, err := loadColorFile(path)
	if err != nil {
		t.Fatalf("loadColorFile: %v", err)
	}
	if rows[0] != [3]int{0, 0, 0} {
		t.Errorf("first data row = %v, header was not skipped", rows[0])
	}
}

func TestLoadColorFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not a number", "R,G,B\n5,x,92\n10,120,115\n184,216,215\n"},
		{"wrong column count", "R,G,B\n5,71\n10,120,115\n184,216,215\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeColorFile(t, tt.content)
			if _, err := loadColorFile(path); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestLoadColorFileMissing(t *testing.T) {
	if _, err := loadColorFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("want error for missing file")
	}
}
