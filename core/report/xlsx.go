package report

import (
	"fmt"

	"otc-compare/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the comparison rows.
const SheetName = "Comparison"

// WriteXLSX writes the records to an xlsx workbook, one row per record,
// filled green or red by recommendation.
func WriteXLSX(path string, records []reconcile.Comparison) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	boldID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Headers))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", boldID); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	fills := make(map[string]int, 2)
	for _, color := range []string{ColorDiscord, ColorMarketplace} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("failed to create fill style: %w", err)
		}
		fills[color] = id
	}

	for i, rec := range records {
		row := i + 2
		start, _ := excelize.CoordinatesToCellName(1, row)
		values := cells(rec)
		if err := f.SetSheetRow(SheetName, start, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}

		if color := RowColor(rec.Recommendation); color != "" {
			end, _ := excelize.CoordinatesToCellName(len(Headers), row)
			if err := f.SetCellStyle(SheetName, start, end, fills[color]); err != nil {
				return fmt.Errorf("failed to style row %d: %w", row, err)
			}
		}
	}

	_ = f.SetColWidth(SheetName, "B", "B", 32)
	_ = f.SetColWidth(SheetName, "C", lastCol, 18)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
