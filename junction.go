package orn2ttl

import (
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Junction table columns
const (
	COLUMN_JUNCTION_ID        = "JUNCTION_ID"
	COLUMN_LATITUDE           = "LATITUDE_DECIMAL_DEGREES"
	COLUMN_LONGITUDE          = "LONGITUDE_DECIMAL_DEGREES"
	COLUMN_JUNCTION_TYPE      = "JUNCTION_TYPE"
	COLUMN_EXIT_NUMBER        = "EXIT_NUMBER"
	COLUMN_NATIONAL_UUID      = "NATIONAL_UUID"
	COLUMN_EFFECTIVE_DATETIME = "EFFECTIVE_DATETIME"
)

// Junction is a point node of road network
type Junction struct {
	ID            int64
	Geom          orb.Point
	JunctionType  Optional[string]
	ExitNumber    Optional[string]
	NationalID    Optional[string]
	EffectiveDate Optional[time.Time]
}

// Key returns canonical string form of junction identifier (the one road segments refer to)
func (junction *Junction) Key() string {
	return strconv.FormatInt(junction.ID, 10)
}

// JunctionsFromTable reads junction source row by row. Duplicate IDs are kept here and resolved by FilterJunctions.
// Rows without identifier or coordinates can't be placed in the network and are skipped
func JunctionsFromTable(table *Table) ([]*Junction, []FieldIssue, error) {
	if table.ColumnIndex(COLUMN_JUNCTION_ID) < 0 {
		return nil, nil, errors.Wrapf(ErrMissingKeyColumn, "'%s' has no column '%s'", table.Source, COLUMN_JUNCTION_ID)
	}
	st := time.Now()
	junctions := make([]*Junction, 0, len(table.Rows))
	var issues []FieldIssue
	for i := range table.Rows {
		rawID, ok := table.Value(i, COLUMN_JUNCTION_ID).Get()
		if !ok {
			continue
		}
		fr := fieldReader{recordID: rawID}
		id := fr.identifier(COLUMN_JUNCTION_ID, rawID)
		lat := fr.decimal(COLUMN_LATITUDE, table.Value(i, COLUMN_LATITUDE))
		lon := fr.decimal(COLUMN_LONGITUDE, table.Value(i, COLUMN_LONGITUDE))
		junction := Junction{
			JunctionType:  table.Value(i, COLUMN_JUNCTION_TYPE),
			ExitNumber:    table.Value(i, COLUMN_EXIT_NUMBER),
			NationalID:    table.Value(i, COLUMN_NATIONAL_UUID),
			EffectiveDate: fr.date(COLUMN_EFFECTIVE_DATETIME, table.Value(i, COLUMN_EFFECTIVE_DATETIME)),
		}
		issues = append(issues, fr.issues...)
		if !id.IsPresent() || !lat.IsPresent() || !lon.IsPresent() {
			log.Debugf("Junction row %d ('%s') has no identifier or coordinates. Skipping", i+1, rawID)
			continue
		}
		junction.ID = id.OrElse(0)
		junction.Geom = orb.Point{lon.OrElse(0), lat.OrElse(0)}
		junctions = append(junctions, &junction)
	}
	log.Infof("Read %d junction rows in %v", len(junctions), time.Since(st))
	return junctions, issues, nil
}
