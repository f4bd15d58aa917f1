package importer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

// ReadWorkbook opens an .xlsx file and returns the headers (first row
// of the chosen sheet) plus one RawRow per data row. An empty sheet
// name selects the first sheet. Header order is preserved; short rows
// simply lack the trailing keys.
func ReadWorkbook(path, sheet string) ([]string, []mapper.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var headers []string
	for _, h := range rows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	data := make([]mapper.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := mapper.RawRow{}
		empty := true
		for i, cell := range cells {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			v := strings.TrimSpace(cell)
			row[headers[i]] = v
			if v != "" {
				empty = false
			}
		}
		if !empty {
			data = append(data, row)
		}
	}

	return headers, data, nil
}
