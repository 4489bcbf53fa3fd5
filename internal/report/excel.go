// Package report renders department rosters and inventories into xlsx
// workbooks for the admin export endpoints.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is one export: a header row plus data rows, with fixed column
// widths so the files open readable without manual resizing.
type Sheet struct {
	Name    string
	Headers []string
	Widths  []float64
	Rows    [][]any
}

// Build renders the sheet into xlsx bytes. The header row is bold and
// every populated cell gets a thin border.
func Build(sheet Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return nil, fmt.Errorf("failed to create cell style: %w", err)
	}

	for col, header := range sheet.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet.Name, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet.Name, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, width := range sheet.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet.Name, col, col, width); err != nil {
			return nil, err
		}
	}

	for r, rowData := range sheet.Rows {
		for c, value := range rowData {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet.Name, cell, value); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet.Name, cell, cell, cellStyle); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}

// OrNA substitutes the original export's placeholder for blank fields.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
