package csv

import "errors"

// ErrEmpty is returned by NewTable when the input had no lines.
var ErrEmpty = errors.New("empty csv")

type Table struct {
	Header Row
	Body   []Row
}

// NewTable builds a Table from rows. With header set, the first row names the
// columns. Otherwise columns name them and every row is data.
// Rows are not padded or truncated to the header width.
func NewTable(rows []Row, header bool, columns []string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if header {
		return &Table{
			Header: rows[0],
			Body:   rows[1:],
		}, nil
	}
	return &Table{
		Header: append(Row(nil), columns...),
		Body:   rows,
	}, nil
}

// NumColumns is the column count of the header.
func (t *Table) NumColumns() int {
	return len(t.Header)
}
