package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"disasterscope/domain/table"
	"disasterscope/internal/errors"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestLoadExcel(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"country", "disastertype", "magnitude"},
		{"India", "Flood", 4.5},
		{"Japan", "Earthquake", 7.1},
	})

	tbl, err := NewReader().Load("disasters.xlsx", buf)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"country", "disastertype", "magnitude"}, tbl.Names())

	magnitude, ok := tbl.Column("magnitude")
	require.True(t, ok)
	assert.Equal(t, table.KindNumeric, magnitude.Kind)
	assert.Equal(t, []float64{4.5, 7.1}, magnitude.Floats())
}

func TestLoadExcelGarbageFails(t *testing.T) {
	_, err := NewReader().Load("d.xlsx", bytes.NewReader([]byte("not a workbook")))
	require.Error(t, err)
	assert.True(t, errors.IsIngestFailed(err))
}
