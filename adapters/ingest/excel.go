package ingest

import (
	"io"

	"github.com/xuri/excelize/v2"

	"disasterscope/domain/table"
	"disasterscope/internal/errors"
)

// loadExcel parses the first sheet of an .xlsx workbook. The first row is
// the header, matching the CSV contract.
func (r *Reader) loadExcel(src io.Reader) (table.Table, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return table.Table{}, errors.IngestFailed("failed to open Excel workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.Table{}, errors.IngestFailed("Excel workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table.Table{}, errors.IngestFailed("failed to read Excel sheet", err)
	}
	if len(rows) == 0 {
		return table.Table{}, errors.IngestFailed("Excel sheet is empty", nil)
	}

	return buildTable(rows[0], rows[1:])
}
