package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disasterscope/domain/table"
)

func mustTable(t *testing.T, cols ...table.Column) table.Table {
	t.Helper()
	tbl, err := table.New(cols...)
	require.NoError(t, err)
	return tbl
}

func TestFillNullsReplacesEveryNull(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "country", Kind: table.KindText, Cells: []table.Cell{
			table.TextCell("India"), table.NullCell(), table.NullCell(),
		}},
	)

	out := FillNulls(tbl, "Unknown")

	col, ok := out.Column("country")
	require.True(t, ok)
	assert.Equal(t, 0, col.NullCount())
	assert.Equal(t, []string{"India", "Unknown", "Unknown"}, col.Strings())

	// Input must be untouched
	orig, _ := tbl.Column("country")
	assert.Equal(t, 2, orig.NullCount())
}

func TestFillNullsNumericColumnBecomesText(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "magnitude", Kind: table.KindNumeric, Cells: []table.Cell{
			table.NumCell("3.5", 3.5), table.NullCell(),
		}},
	)

	out := FillNulls(tbl, "Unknown")

	col, ok := out.Column("magnitude")
	require.True(t, ok)
	assert.Equal(t, table.KindText, col.Kind)
	assert.Equal(t, []string{"3.5", "Unknown"}, col.Strings())
}

func TestFillNullsNoNullsNoCopy(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "a", Kind: table.KindText, Cells: []table.Cell{table.TextCell("x")}},
	)

	out := FillNulls(tbl, "Unknown")
	col, _ := out.Column("a")
	assert.Equal(t, []string{"x"}, col.Strings())
	assert.Equal(t, table.KindText, col.Kind)
}

func TestNormalizeCategoryTitleCases(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "country", Kind: table.KindText, Cells: []table.Cell{
			table.TextCell("INDIA"),
			table.TextCell("south africa"),
			table.TextCell("Japan"),
		}},
	)

	out := NormalizeCategory(tbl, "country")

	col, _ := out.Column("country")
	assert.Equal(t, []string{"India", "South Africa", "Japan"}, col.Strings())
}

func TestNormalizeCategoryIdempotent(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "country", Kind: table.KindText, Cells: []table.Cell{
			table.TextCell("new ZEALAND"),
		}},
	)

	once := NormalizeCategory(tbl, "country")
	twice := NormalizeCategory(once, "country")

	a, _ := once.Column("country")
	b, _ := twice.Column("country")
	assert.Equal(t, a.Strings(), b.Strings())
}

func TestNormalizeCategoryAbsentColumn(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "a", Kind: table.KindText, Cells: []table.Cell{table.TextCell("x")}},
	)

	out := NormalizeCategory(tbl, "country")
	assert.Equal(t, tbl.Names(), out.Names())
	col, _ := out.Column("a")
	assert.Equal(t, []string{"x"}, col.Strings())
}

func TestNormalizeCategorySkipsNulls(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "country", Kind: table.KindText, Cells: []table.Cell{
			table.TextCell("india"), table.NullCell(),
		}},
	)

	out := NormalizeCategory(tbl, "country")
	col, _ := out.Column("country")
	assert.Equal(t, 1, col.NullCount())
	assert.Equal(t, "India", col.Cells[0].String())
}
