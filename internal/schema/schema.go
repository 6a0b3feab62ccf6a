package schema

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"invoicetab/internal/common"
	"invoicetab/internal/record"
)

// Schema is the ordered output column list, taken from the header row of a
// template workbook. Column names double as record field names.
type Schema []string

// Load reads the header row of the first sheet of the XLSX template at path.
// There is no built-in default column order; a missing or unreadable template
// aborts the run before any document is processed.
func Load(path string) (Schema, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewAppError("SCHEMA_SOURCE",
			fmt.Sprintf("open template %s", path),
			fmt.Errorf("%w: %v", common.ErrSchemaSource, err))
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, common.NewAppError("SCHEMA_SOURCE",
			fmt.Sprintf("read template sheet %q", sheet),
			fmt.Errorf("%w: %v", common.ErrSchemaSource, err))
	}
	if len(rows) == 0 {
		return nil, common.NewAppError("SCHEMA_SOURCE",
			fmt.Sprintf("template %s has no header row", path),
			common.ErrSchemaSource)
	}

	var cols Schema
	for _, cell := range rows[0] {
		if cell = strings.TrimSpace(cell); cell != "" {
			cols = append(cols, cell)
		}
	}
	if len(cols) == 0 {
		return nil, common.NewAppError("SCHEMA_SOURCE",
			fmt.Sprintf("template %s header row is empty", path),
			common.ErrSchemaSource)
	}
	return cols, nil
}

// Align projects records onto the schema's column order. Every row has
// exactly len(s) cells: fields the record never set become "", fields the
// schema does not name are dropped. Align never fails.
func Align(recs []*record.Record, s Schema) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		row := make([]string, len(s))
		for i, col := range s {
			if v, ok := r.Get(col); ok {
				row[i] = v
			}
		}
		rows = append(rows, row)
	}
	return rows
}
