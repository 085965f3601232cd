package orn2ttl

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column is a source-qualified column name. Qualification prevents collisions between attribute tables
type Column struct {
	Source SourceName
	Name   string
}

// Qualified returns column name suffixed by its source, e.g. 'SPEED_LIMIT_speed_limits'
func (col Column) Qualified() string {
	return col.Name + "_" + col.Source.String()
}

// Table is one attribute source loaded in memory
type Table struct {
	Source    SourceName
	KeyColumn string
	Columns   []string
	Rows      [][]string

	keyIdx int
	index  map[string][]int
}

// HasKey reports whether table carries join key column
func (table *Table) HasKey() bool {
	return table.keyIdx >= 0
}

// ColumnIndex returns position of the column or -1
func (table *Table) ColumnIndex(name string) int {
	for i := range table.Columns {
		if table.Columns[i] == name {
			return i
		}
	}
	return -1
}

// Value returns cell of given row, empty cells are absent
func (table *Table) Value(row int, name string) Optional[string] {
	idx := table.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(table.Rows) {
		return Absent[string]()
	}
	return cellValue(table.Rows[row], idx)
}

// Lookup returns indices of rows matching canonical key
func (table *Table) Lookup(key string) []int {
	if !table.HasKey() {
		return nil
	}
	if table.index == nil {
		table.index = make(map[string][]int, len(table.Rows))
		for i, row := range table.Rows {
			if table.keyIdx >= len(row) {
				continue
			}
			k := CanonicalKey(row[table.keyIdx])
			if k == "" {
				continue
			}
			table.index[k] = append(table.index[k], i)
		}
	}
	return table.index[key]
}

// ReadTable reads delimited attribute source. Key column may be absent: such table is loaded but never joined
func ReadTable(r io.Reader, source SourceName, keyColumn string, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read header of '%s'", source)
	}
	table := &Table{
		Source:    source,
		KeyColumn: keyColumn,
		Columns:   make([]string, len(header)),
		Rows:      [][]string{},
		keyIdx:    -1,
	}
	for i, h := range header {
		// UTF-8 BOM
		table.Columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if table.Columns[i] == keyColumn {
			table.keyIdx = i
		}
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "Can't read row %d of '%s'", len(table.Rows)+1, source)
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// LoadTable opens and reads attribute source file
func LoadTable(fname string, source SourceName, keyColumn string, delimiter rune) (*Table, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingSource, "'%s' (%s): %s", fname, source, err.Error())
	}
	defer file.Close()
	table, err := ReadTable(file, source, keyColumn, delimiter)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingSource, "'%s' (%s): %s", fname, source, err.Error())
	}
	return table, nil
}

// CanonicalKey casts join key to a single string representation: numeric keys lose fractional zeros ("123.0" -> "123")
func CanonicalKey(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return s
}

func cellValue(row []string, idx int) Optional[string] {
	if idx >= len(row) {
		return Absent[string]()
	}
	return nonEmpty(row[idx])
}

// nonEmpty treats blank cells and null markers as absent
func nonEmpty(raw string) Optional[string] {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "nan", "null", "none":
		return Absent[string]()
	}
	if strings.Trim(s, "*") == "" {
		// DBF null numeric
		return Absent[string]()
	}
	return Present(s)
}
