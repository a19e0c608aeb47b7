package value

import (
	"fmt"

	"github.com/modelbase/pavo/format"
)

// Table is a flat columnar record batch used for bulk tabular interchange.
// Unlike the indexed containers it has no lookup dimension of its own: the
// header names columns and every row holds one scalar per column.
type Table struct {
	Header []string
	Rows   [][]Value
}

// NewTable builds a table, checking that every row matches the header width
// and holds only plain or calendar scalars.
func NewTable(header []string, rows [][]Value) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("table row %d has %d cells, header has %d", i, len(row), len(header))
		}
		for j, cell := range row {
			if IsIndexed(cell) {
				return nil, fmt.Errorf("table cell (%d, %d) holds a container kind %T", i, j, cell)
			}
		}
	}

	return &Table{Header: header, Rows: rows}, nil
}

func (t *Table) isValue()          {}
func (t *Table) Type() format.Type { return format.TypeTable }

func (t *Table) Equal(other Value) bool {
	o, ok := other.(*Table)
	if !ok || len(o.Header) != len(t.Header) || len(o.Rows) != len(t.Rows) {
		return false
	}

	for i, name := range t.Header {
		if o.Header[i] != name {
			return false
		}
	}
	for i, row := range t.Rows {
		for j, cell := range row {
			if !cell.Equal(o.Rows[i][j]) {
				return false
			}
		}
	}

	return true
}

func (t *Table) Clone() Value {
	header := make([]string, len(t.Header))
	copy(header, t.Header)
	rows := make([][]Value, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]Value, len(row))
		for j, cell := range row {
			rows[i][j] = cell.Clone()
		}
	}

	return &Table{Header: header, Rows: rows}
}

func (t *Table) String() string {
	return fmt.Sprintf("table of %d columns, %d rows", len(t.Header), len(t.Rows))
}
