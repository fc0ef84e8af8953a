package contract

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the single sheet of the export workbook.
	SheetName = "Contratos"
	// ExportFilename is the fixed download name of the export.
	ExportFilename = "contratos_export.xlsx"
	// ExportMIME is the media type of the open XML spreadsheet format.
	ExportMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteWorkbook serializes the record set into a spreadsheet: one header
// row with the catalog labels, then one row per record in canonical column
// order, id dropped. Date fields are normalized to ISO date strings (empty
// when unparseable), numeric fields become typed numeric cells (blank when
// unparseable), everything else stays text.
func WriteWorkbook(records []Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	header := make([]interface{}, len(Fields))
	for i, spec := range Fields {
		header[i] = spec.Label
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range records {
		row := make([]interface{}, len(Fields))
		for j, spec := range Fields {
			row[j] = exportCell(spec, &records[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

func exportCell(spec FieldSpec, r *Record) interface{} {
	raw := spec.Get(r)
	switch {
	case spec.Kind == KindDate:
		if t := ParseDate(raw); t != nil {
			return t.Format("2006-01-02")
		}
		return ""
	case spec.Kind == KindNumeric || spec.ExportNumber:
		if v, ok := ParseAmount(raw); ok {
			return v
		}
		return ""
	default:
		return raw
	}
}
