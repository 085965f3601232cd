package orn2ttl

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// JoinedRow is one base element with attribute columns of every matched source
type JoinedRow struct {
	Element *ElementRecord
	values  map[Column]string
	byName  map[string]Column
}

func newJoinedRow(element *ElementRecord) *JoinedRow {
	return &JoinedRow{
		Element: element,
		values:  make(map[Column]string),
		byName:  make(map[string]Column),
	}
}

func (row *JoinedRow) clone() *JoinedRow {
	cp := newJoinedRow(row.Element)
	for k, v := range row.values {
		cp.values[k] = v
	}
	for k, v := range row.byName {
		cp.byName[k] = v
	}
	return cp
}

// set copies non-key columns of attribute row. The first source seen for a plain column name keeps precedence
func (row *JoinedRow) set(table *Table, rowIdx int) {
	record := table.Rows[rowIdx]
	for i, name := range table.Columns {
		if i == table.keyIdx || i >= len(record) {
			continue
		}
		col := Column{Source: table.Source, Name: name}
		row.values[col] = record[i]
		if _, seen := row.byName[name]; !seen {
			if _, base := row.Element.Attributes[name]; !base {
				row.byName[name] = col
			}
		}
	}
}

// Attr returns column of given source
func (row *JoinedRow) Attr(source SourceName, name string) Optional[string] {
	v, ok := row.values[Column{Source: source, Name: name}]
	if !ok {
		return Absent[string]()
	}
	return nonEmpty(v)
}

// Base returns column of base geometry source
func (row *JoinedRow) Base(name string) Optional[string] {
	return row.Element.Attribute(name)
}

// First returns the first-seen column with given plain name: base source, then attribute sources in join order
func (row *JoinedRow) First(name string) Optional[string] {
	if _, ok := row.Element.Attributes[name]; ok {
		return row.Base(name)
	}
	col, ok := row.byName[name]
	if !ok {
		return Absent[string]()
	}
	return nonEmpty(row.values[col])
}

// Columns returns qualified names of every attribute column present in the row
func (row *JoinedRow) Columns() []string {
	cols := make([]string, 0, len(row.values))
	for col := range row.values {
		cols = append(cols, col.Qualified())
	}
	return cols
}

// Join left-joins every attribute table carrying the key column onto base elements.
//
// Base row count is preserved as long as attribute keys are unique per element.
// Duplicate attribute keys multiply the element row (left join semantics, not corrected)
func Join(elements []ElementRecord, tables []*Table) []*JoinedRow {
	st := time.Now()
	log.Infof("Joining %d attribute tables onto %d elements...", len(tables), len(elements))

	rows := make([]*JoinedRow, len(elements))
	for i := range elements {
		rows[i] = newJoinedRow(&elements[i])
	}
	for _, table := range tables {
		if !table.HasKey() {
			log.Debugf("Table '%s' has no '%s' column. It won't be joined", table.Source, table.KeyColumn)
			continue
		}
		matched := 0
		next := make([]*JoinedRow, 0, len(rows))
		for _, row := range rows {
			matches := table.Lookup(row.Element.ID)
			if len(matches) == 0 {
				next = append(next, row)
				continue
			}
			matched++
			if len(matches) > 1 {
				log.Debugf("Element '%s' has %d rows in '%s'. Element row will be duplicated", row.Element.ID, len(matches), table.Source)
			}
			targets := make([]*JoinedRow, len(matches))
			targets[0] = row
			for i := 1; i < len(matches); i++ {
				targets[i] = row.clone()
			}
			for i, m := range matches {
				targets[i].set(table, m)
			}
			next = append(next, targets...)
		}
		rows = next
		log.Debugf("Table '%s': %d of elements matched", table.Source, matched)
	}
	log.Infof("Joined into %d rows in %v", len(rows), time.Since(st))
	return rows
}
