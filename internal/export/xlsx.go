// Package export writes roster projections as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jpalmerr/rosterboard/internal/roster"
)

// SheetName is the name of the single worksheet in an exported workbook.
const SheetName = "학생 목록"

// ContentType is the MIME type of the workbook written by [WriteXLSX].
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX writes the projection as a one-sheet workbook: a header row of
// column titles followed by one row per projected row, in projection order.
// A missing score is left blank.
func WriteXLSX(w io.Writer, columns []roster.Column, rows roster.Projection) error {
	f := excelize.NewFile()
	defer f.Close()

	// the default sheet is renamed rather than adding a second one
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, col.Title); err != nil {
			return fmt.Errorf("write header %q: %w", col.Key, err)
		}
	}

	for r, row := range rows {
		for c, col := range columns {
			value, ok := cellValue(row, col.Key)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return fmt.Errorf("write row %d column %q: %w", r+1, col.Key, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// cellValue returns the value for column key, or false when the cell stays blank.
func cellValue(row roster.Row, key string) (any, bool) {
	switch key {
	case roster.ColumnRow:
		return row.Number, row.Number > 0
	case roster.ColumnName:
		return row.Name, true
	case roster.ColumnAge:
		return row.Age, true
	case roster.ColumnScore:
		if row.Score == nil {
			return nil, false
		}
		return *row.Score, true
	case roster.ColumnGrade:
		return row.Grade, row.Grade > 0
	case roster.ColumnClass:
		return row.Class, row.Class > 0
	case roster.ColumnRating:
		return row.Rating, row.Rating != ""
	default:
		return nil, false
	}
}
