package inspect

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

func TestDescribeNumericColumn(t *testing.T) {
	tbl := mustTable(t, table.Column{Name: "magnitude", Kind: table.KindNumeric, Cells: []table.Cell{
		table.NumCell("2", 2),
		table.NumCell("4", 4),
		table.NumCell("6", 6),
		table.NumCell("8", 8),
	}})

	summaries := Describe(tbl)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 4, s.Count)
	require.NotNil(t, s.Numeric)
	assert.Nil(t, s.Text)
	assert.InDelta(t, 5.0, s.Numeric.Mean, 1e-9)
	assert.InDelta(t, 2.0, s.Numeric.Min, 1e-9)
	assert.InDelta(t, 8.0, s.Numeric.Max, 1e-9)
	assert.InDelta(t, 5.0, s.Numeric.Median, 1e-9)
	// Sample standard deviation of {2,4,6,8}
	assert.InDelta(t, 2.5819889, s.Numeric.Std, 1e-6)
}

func TestDescribeTextColumn(t *testing.T) {
	tbl := mustTable(t, table.Column{Name: "disastertype", Kind: table.KindText, Cells: []table.Cell{
		table.TextCell("Flood"),
		table.TextCell("Drought"),
		table.TextCell("Flood"),
		table.NullCell(),
	}})

	summaries := Describe(tbl)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.Text)
	assert.Nil(t, s.Numeric)
	assert.Equal(t, 2, s.Text.Unique)
	assert.Equal(t, "Flood", s.Text.Mode)
	assert.Equal(t, 2, s.Text.ModeFreq)
}

func TestDescribeSingleValue(t *testing.T) {
	tbl := mustTable(t, table.Column{Name: "n", Kind: table.KindNumeric, Cells: []table.Cell{
		table.NumCell("7", 7),
	}})

	s := Describe(tbl)[0]
	require.NotNil(t, s.Numeric)
	assert.Equal(t, 7.0, s.Numeric.Mean)
	assert.Equal(t, 0.0, s.Numeric.Std)
	assert.Equal(t, 7.0, s.Numeric.Q25)
	assert.Equal(t, 7.0, s.Numeric.Q75)
}

func TestDescribeZeroRows(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "a", Kind: table.KindText, Cells: nil},
		table.Column{Name: "b", Kind: table.KindNumeric, Cells: nil},
	)

	summaries := Describe(tbl)
	require.Len(t, summaries, 2)
	for _, s := range summaries {
		assert.Equal(t, 0, s.Count)
		assert.Nil(t, s.Numeric)
		assert.Nil(t, s.Text)
	}
}

func TestNullCounts(t *testing.T) {
	tbl := mustTable(t,
		table.Column{Name: "a", Kind: table.KindText, Cells: []table.Cell{
			table.TextCell("x"), table.NullCell(), table.NullCell(),
		}},
		table.Column{Name: "b", Kind: table.KindText, Cells: []table.Cell{
			table.TextCell("1"), table.TextCell("2"), table.TextCell("3"),
		}},
	)

	counts := NullCounts(tbl)
	assert.Equal(t, []NullCount{{Name: "a", Count: 2}, {Name: "b", Count: 0}}, counts)
}

func TestTypeInfo(t *testing.T) {
	tbl := mustTable(t, table.Column{Name: "a", Kind: table.KindText, Cells: []table.Cell{
		table.TextCell("x"), table.NullCell(),
	}})

	infos := TypeInfo(tbl)
	assert.Equal(t, []Info{{Name: "a", Kind: table.KindText, NonNull: 1}}, infos)
}
