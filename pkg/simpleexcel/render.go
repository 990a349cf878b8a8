package simpleexcel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultHeaderFill = "DDEBF7"

func (e *DataExporter) renderSections(f *excelize.File, sheet string, sections []*SectionConfig) error {
	nextRow := 1
	for _, sec := range sections {
		startCol, startRow := 1, nextRow
		if sec.Position != "" {
			col, row, err := excelize.CellNameToCoordinates(sec.Position)
			if err != nil {
				return fmt.Errorf("section %q: invalid position %q: %w", sec.ID, sec.Position, err)
			}
			startCol, startRow = col, row
		}

		endRow, err := e.renderSection(f, sheet, sec, startCol, startRow)
		if err != nil {
			return err
		}
		if endRow+1 > nextRow {
			nextRow = endRow + 1
		}
	}
	return nil
}

// renderSection writes one section and returns the first row after it.
func (e *DataExporter) renderSection(f *excelize.File, sheet string, sec *SectionConfig, startCol, startRow int) (int, error) {
	formatters, err := e.resolveFormatters(sec)
	if err != nil {
		return 0, err
	}

	row := startRow
	lastCol := startCol
	if len(sec.Columns) > 1 {
		lastCol = startCol + len(sec.Columns) - 1
	}

	if sec.Title != "" {
		cell, _ := excelize.CoordinatesToCellName(startCol, row)
		if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
			return 0, err
		}
		styleID, err := newStyle(f, sec.TitleStyle, excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
		if err != nil {
			return 0, fmt.Errorf("section %q: title style: %w", sec.ID, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return 0, err
		}
		if lastCol > startCol {
			end, _ := excelize.CoordinatesToCellName(lastCol, row)
			if err := f.MergeCell(sheet, cell, end); err != nil {
				return 0, err
			}
		}
		row++
	}

	if sec.ShowHeader && len(sec.Columns) > 0 {
		styleID, err := newStyle(f, sec.HeaderStyle, excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{defaultHeaderFill}},
		})
		if err != nil {
			return 0, fmt.Errorf("section %q: header style: %w", sec.ID, err)
		}
		for i, col := range sec.Columns {
			cell, _ := excelize.CoordinatesToCellName(startCol+i, row)
			header := col.Header
			if header == "" {
				header = col.FieldName
			}
			if err := f.SetCellValue(sheet, cell, header); err != nil {
				return 0, err
			}
		}
		first, _ := excelize.CoordinatesToCellName(startCol, row)
		last, _ := excelize.CoordinatesToCellName(startCol+len(sec.Columns)-1, row)
		if err := f.SetCellStyle(sheet, first, last, styleID); err != nil {
			return 0, err
		}
		row++
	}

	dataStyles := make([]int, len(sec.Columns))
	for i, col := range sec.Columns {
		if col.NumFmt == 0 && sec.DataStyle == nil {
			continue
		}
		styleID, err := newStyle(f, sec.DataStyle, excelize.Style{NumFmt: col.NumFmt})
		if err != nil {
			return 0, fmt.Errorf("section %q: data style: %w", sec.ID, err)
		}
		dataStyles[i] = styleID
	}

	for _, item := range rowsOf(sec.Data) {
		for i, col := range sec.Columns {
			val := extractValue(item, col.FieldName)
			if formatters[i] != nil {
				val = formatters[i](val)
			}
			cell, _ := excelize.CoordinatesToCellName(startCol+i, row)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return 0, err
			}
			if dataStyles[i] != 0 {
				if err := f.SetCellStyle(sheet, cell, cell, dataStyles[i]); err != nil {
					return 0, err
				}
			}
		}
		row++
	}

	for i, col := range sec.Columns {
		if col.Width <= 0 {
			continue
		}
		name, _ := excelize.ColumnNumberToName(startCol + i)
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return 0, err
		}
	}

	return row, nil
}

func (e *DataExporter) resolveFormatters(sec *SectionConfig) ([]func(interface{}) interface{}, error) {
	out := make([]func(interface{}) interface{}, len(sec.Columns))
	for i, col := range sec.Columns {
		switch {
		case col.Formatter != nil:
			out[i] = col.Formatter
		case col.FormatterName != "":
			fn, ok := e.formatters[col.FormatterName]
			if !ok {
				return nil, fmt.Errorf("section %q: formatter %q is not registered", sec.ID, col.FormatterName)
			}
			out[i] = fn
		}
	}
	return out, nil
}

func newStyle(f *excelize.File, tmpl *StyleTemplate, base excelize.Style) (int, error) {
	s := base
	if tmpl != nil {
		if tmpl.Font != nil {
			s.Font = &excelize.Font{Bold: tmpl.Font.Bold, Size: tmpl.Font.Size, Color: tmpl.Font.Color}
		}
		if tmpl.Fill != nil && tmpl.Fill.Color != "" {
			s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{tmpl.Fill.Color}}
		}
	}
	return f.NewStyle(&s)
}
