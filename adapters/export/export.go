// Package export renders drawn samples as CSV or XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is the tabular form of a run: a header row plus one row per draw.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// BuildSheet lays out a run's values one per row, numbered from 1. Values
// are formatted at full round-trip precision so the export can seed a
// replay without drift.
func BuildSheet(values []float64) *Sheet {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(v, 'g', -1, 64),
		}
	}

	return &Sheet{
		Headers: []string{"index", "value"},
		Rows:    rows,
	}
}

// WriteFile writes the sheet in the format the path's extension names.
func WriteFile(path string, sheet *Sheet) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(path, sheet)
	case ".xlsx":
		return WriteXLSX(path, sheet)
	}
	return fmt.Errorf("unsupported export extension %q, want .csv or .xlsx", filepath.Ext(path))
}

func WriteCSV(path string, sheet *Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(sheet.Headers); err != nil {
		return err
	}
	for _, row := range sheet.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WriteXLSX(path string, sheet *Sheet) error {
	f := excelize.NewFile()

	// Ensure Sheet1 exists and is active.
	name := "Sheet1"
	if idx, err := f.GetSheetIndex(name); err != nil || idx == -1 {
		idx, err := f.NewSheet(name)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	// Header row
	for i, h := range sheet.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r := 0; r < len(sheet.Rows); r++ {
		rowIdx := r + 2
		for c, v := range sheet.Rows[r] {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
