package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRunExport(t *testing.T) {
	configPath := writeFile(t, "config.yaml", `
variant: graded
students:
  - name: 김철수
    age: 14
    score: 3
    grade: 1
    class: 3
  - name: 이영희
    age: 15
    score: 9
    grade: 2
    class: 1
`)
	outPath := filepath.Join(t.TempDir(), "roster.xlsx")

	output, err := executeCmd(t, "export", "-c", configPath, "-o", outPath)
	if err != nil {
		t.Fatalf("export command error = %v", err)
	}
	if !strings.Contains(output, "Wrote 2 students") {
		t.Errorf("unexpected output: %s", output)
	}

	f, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[1][0] != "김철수" || rows[2][0] != "이영희" {
		t.Errorf("data rows = %v", rows[1:])
	}
}
