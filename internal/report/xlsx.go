package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"mailtriage/internal/service"
)

const sheetName = "Results"

// WriteXLSX writes the report as a single-sheet workbook to out. Count
// columns are stored as numbers.
func WriteXLSX(out io.Writer, items []service.BatchItem) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := xlsxRow(&items[i])
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(sheetName, "D", "E", 60); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	return f.Write(out)
}

func xlsxRow(item *service.BatchItem) []interface{} {
	cols := itemToRow(item)
	row := make([]interface{}, len(cols))
	for i, v := range cols {
		row[i] = v
	}
	if item.Err == nil && item.Result != nil {
		row[5] = item.Result.CharCount
		row[6] = item.Result.WordCount
	}
	return row
}
