package http

import (
	"bytes"
	"fmt"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	exportSheet    = "Units"
	exportFileName = "units.xlsx"
	mimeXLSX       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportColumn struct {
	title string
	width float64
	value func(queries.UnitListItem) any
}

var exportColumns = []exportColumn{
	{"ID", 10, func(i queries.UnitListItem) any { return i.ID }},
	{"Serial", 22, func(i queries.UnitListItem) any { return i.Serial }},
	{"Model", 22, func(i queries.UnitListItem) any { return i.ModelName }},
	{"Vendor", 18, func(i queries.UnitListItem) any { return i.VendorName }},
	{"Amount", 10, func(i queries.UnitListItem) any { return i.Amount }},
	{"Status", 22, func(i queries.UnitListItem) any { return i.StatusLabel }},
	{"Owner", 22, func(i queries.UnitListItem) any { return i.OwnerName }},
	{"Stock", 22, func(i queries.UnitListItem) any { return i.StockName }},
	{"Responsible", 22, func(i queries.UnitListItem) any { return i.ResponsibleName }},
	{"Comment", 30, func(i queries.UnitListItem) any { return i.Comment }},
	{"Created", 20, func(i queries.UnitListItem) any {
		if i.CreatedAt.IsZero() {
			return ""
		}
		return i.CreatedAt.Format("2006-01-02 15:04")
	}},
}

// unitsWorkbook renders items as a single sheet with a frozen header row.
func unitsWorkbook(items []queries.UnitListItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for col, column := range exportColumns {
		if err = setCell(f, col+1, 1, column.title); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err = f.SetColWidth(exportSheet, name, name, column.width); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}
	last, err := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err != nil {
		return nil, err
	}
	if err = f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for row, item := range items {
		for col, column := range exportColumns {
			if err = setCell(f, col+1, row+2, column.value(item)); err != nil {
				return nil, err
			}
		}
	}

	if err = f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err = f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err = f.SetCellValue(exportSheet, cell, value); err != nil {
		return fmt.Errorf("cell %s: %w", cell, err)
	}
	return nil
}
