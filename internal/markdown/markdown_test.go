package markdown

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dev-shimada/csv2md/internal/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRow(t *testing.T) {
	assert.Equal(t, "| a | b |", FormatRow([]string{"a", "b"}))
	assert.Equal(t, "| a |", FormatRow([]string{"a"}))
	assert.Equal(t, "|  |", FormatRow([]string{""}))
	assert.Equal(t, "| a |  | c |", FormatRow([]string{"a", "", "c"}))
}

func TestRuleRow(t *testing.T) {
	assert.Equal(t, []string{"---", "---", "---"}, RuleRow(3))
	assert.Empty(t, RuleRow(0))
}

func TestPlain_Header(t *testing.T) {
	table, err := csv.NewTable([]csv.Row{{"a", "b"}, {"1", "2"}, {"3", "4"}}, true, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Plain{}.Render(&buf, table))

	expected := "| a | b |\n| --- | --- |\n| 1 | 2 |\n| 3 | 4 |\n"
	assert.Equal(t, expected, buf.String())
}

func TestPlain_Columns(t *testing.T) {
	table, err := csv.NewTable([]csv.Row{{"1", "2"}, {"3", "4"}}, false, []string{"x", "y"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Plain{}.Render(&buf, table))

	expected := "| x | y |\n| --- | --- |\n| 1 | 2 |\n| 3 | 4 |\n"
	assert.Equal(t, expected, buf.String())
}

func TestPlain_RuleMatchesHeaderWidth(t *testing.T) {
	table, err := csv.NewTable([]csv.Row{{"a", "b", "c"}, {"1"}, {"1", "2", "3", "4"}}, true, nil)
	require.NoError(t, err)

	lines := Lines(table)
	require.Len(t, lines, 4)
	assert.Equal(t, "| --- | --- | --- |", lines[1])
	// ragged rows are not reconciled
	assert.Equal(t, "| 1 |", lines[2])
	assert.Equal(t, "| 1 | 2 | 3 | 4 |", lines[3])
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPlain_WriteError(t *testing.T) {
	table, err := csv.NewTable([]csv.Row{{"a"}}, true, nil)
	require.NoError(t, err)
	assert.Error(t, Plain{}.Render(failWriter{}, table))
}

func TestAligned(t *testing.T) {
	table, err := csv.NewTable([]csv.Row{{"name", "qty"}, {"apple", "1"}, {"kiwi", "12"}}, true, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Aligned{}.Render(&buf, table))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		assert.True(t, strings.HasPrefix(line, "|"), line)
		assert.True(t, strings.HasSuffix(line, "|"), line)
	}
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[1], "---")
	assert.NotContains(t, lines[1], ":", "rule row carries no alignment markers")
	assert.Contains(t, lines[2], "apple")
	// padded to the width of "apple"
	assert.Contains(t, lines[3], "kiwi  ")
}

func TestAligned_Ragged(t *testing.T) {
	table, err := csv.NewTable([]csv.Row{{"a", "b"}, {"1", "2", "3"}, {"4"}}, true, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Aligned{}.Render(&buf, table))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	// every row, header and rule included, spans the widest row's three columns
	for _, line := range lines {
		assert.Equal(t, 4, strings.Count(line, "|"), "row %q", line)
	}
	assert.Contains(t, lines[2], "3")
	assert.Contains(t, lines[3], "4")
	assert.NotContains(t, lines[1], ":")
}

func TestNew(t *testing.T) {
	assert.IsType(t, Plain{}, New(false))
	assert.IsType(t, Aligned{}, New(true))
}
