package orn2ttl

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Sources is every input of one conversion
type Sources struct {
	Elements []ElementRecord
	// Attributes are tables joined onto elements, in join order
	Attributes []*Table
	Junctions  *Table
}

// LoadSources reads base geometry and every configured table. Absence of any of them is fatal
func LoadSources(cfg *Config) (*Sources, error) {
	st := time.Now()
	elements, err := LoadElements(cfg.Geometry.Path, getGeometryFormat(cfg.Geometry.Format), cfg.Geometry.Key)
	if err != nil {
		return nil, errors.Wrap(err, "Can't load base geometry")
	}
	src := Sources{
		Elements:   elements,
		Attributes: []*Table{},
	}
	delimiter := cfg.DelimiterRune()
	for _, file := range cfg.SourceFiles() {
		keyColumn := cfg.AttributeKey
		if file.Source == SOURCE_JUNCTIONS {
			keyColumn = COLUMN_JUNCTION_ID
		}
		table, err := LoadTable(file.Path, file.Source, keyColumn, delimiter)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't load '%s' table", file.Source)
		}
		log.Debugf("Table '%s': %d rows, %d columns", file.Source, len(table.Rows), len(table.Columns))
		if file.Source == SOURCE_JUNCTIONS {
			src.Junctions = table
			continue
		}
		src.Attributes = append(src.Attributes, table)
	}
	if src.Junctions == nil {
		return nil, errors.Wrapf(ErrMissingSource, "'%s' table is not configured", SOURCE_JUNCTIONS)
	}
	log.Infof("Loaded sources in %v", time.Since(st))
	return &src, nil
}

// Run executes full conversion described by cfg and writes its outputs
func Run(cfg *Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Bad configuration")
	}
	src, err := LoadSources(cfg)
	if err != nil {
		return nil, err
	}
	conv := NewConverter(
		WithBounds(cfg.Bounds),
		WithNamespaces(cfg.Namespaces),
		WithStrictEnums(cfg.StrictEnums),
		WithPruneDangling(cfg.PruneDangling),
	)
	log.Debug(conv)
	result, err := conv.Build(src)
	if err != nil {
		return nil, err
	}
	err = WriteGraph(result.Graph, result.Identifiers, getOutputFormat(cfg.Output.Format), cfg.Output.Path)
	if err != nil {
		return nil, errors.Wrap(err, "Can't write output")
	}
	if cfg.Routing.Out != "" {
		err = ExportRouting(BuildRoutingEdges(result.Segments), result.Junctions, cfg.Routing)
		if err != nil {
			return nil, errors.Wrap(err, "Can't export routing graph")
		}
	}
	result.Stats.Log()
	return &result.Stats, nil
}
