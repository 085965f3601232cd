package orn2ttl

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is a full description of one conversion run
type Config struct {
	// Namespaces overrides or extends prefix table
	Namespaces map[string]string `yaml:"namespaces"`
	Geometry   GeometryConfig    `yaml:"geometry"`
	// AttributesDir is a directory containing attribute tables
	AttributesDir string `yaml:"attributes_dir"`
	// AttributeKey is a column attribute tables are keyed by
	AttributeKey string `yaml:"attribute_key"`
	// Delimiter of attribute tables
	Delimiter string `yaml:"delimiter"`
	// Attributes maps source name onto file name inside AttributesDir
	Attributes    map[string]string `yaml:"attributes"`
	Bounds        Bounds            `yaml:"bounds"`
	Output        OutputConfig      `yaml:"output"`
	StrictEnums   bool              `yaml:"strict_enums"`
	PruneDangling bool              `yaml:"prune_dangling"`
	Routing       RoutingConfig     `yaml:"routing"`
}

// GeometryConfig describes base geometry source
type GeometryConfig struct {
	Path string `yaml:"path"`
	Key  string `yaml:"key"`
	// Format is 'shapefile' or 'geojson'
	Format string `yaml:"format"`
}

// OutputConfig describes statement output
type OutputConfig struct {
	Path string `yaml:"path"`
	// Format is 'turtle', 'ntriples' or 'parquet'
	Format string `yaml:"format"`
}

// RoutingConfig describes optional routing graph export. Empty Out disables export
type RoutingConfig struct {
	Out string `yaml:"out"`
	// GeomFormat is 'wkt' or 'geojson'
	GeomFormat string `yaml:"geom_format"`
	Contract   bool   `yaml:"contract"`
}

// DefaultConfig returns ORN defaults for City of Toronto
func DefaultConfig() *Config {
	attributes := make(map[string]string, len(defaultSourceFiles))
	for source, fname := range defaultSourceFiles {
		attributes[source.String()] = fname
	}
	return &Config{
		Namespaces: map[string]string{},
		Geometry: GeometryConfig{
			Path:   filepath.Join("ORN", "ORN_ROAD_NET_ELEMENT.shp"),
			Key:    COLUMN_ELEMENT_ID,
			Format: GEOMETRY_SHAPEFILE.String(),
		},
		AttributesDir: "ORN",
		AttributeKey:  COLUMN_ATTRIBUTE_KEY,
		Delimiter:     ";",
		Attributes:    attributes,
		Bounds:        TorontoBounds,
		Output: OutputConfig{
			Path:   "orn_toronto.ttl",
			Format: OUTPUT_TURTLE.String(),
		},
		Routing: RoutingConfig{
			GeomFormat: "wkt",
			Contract:   true,
		},
	}
}

// LoadConfig overlays YAML file onto defaults
func LoadConfig(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read config file")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "Can't parse config file")
	}
	return cfg, nil
}

// Validate checks paths, formats and bounds
func (cfg *Config) Validate() error {
	if cfg.Geometry.Path == "" {
		return errors.New("geometry.path is required")
	}
	if cfg.Geometry.Key == "" {
		return errors.New("geometry.key is required")
	}
	if getGeometryFormat(cfg.Geometry.Format) == 0 {
		return errors.Wrapf(ErrUnsupportedFormat, "geometry.format '%s'", cfg.Geometry.Format)
	}
	if cfg.AttributeKey == "" {
		return errors.New("attribute_key is required")
	}
	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return errors.Errorf("delimiter must be a single character, got '%s'", cfg.Delimiter)
	}
	for name, fname := range cfg.Attributes {
		if getSourceName(name) == 0 {
			return errors.Errorf("unknown attribute source '%s'", name)
		}
		if fname == "" {
			return errors.Errorf("attributes.%s has empty file name", name)
		}
	}
	if _, ok := cfg.Attributes[SOURCE_JUNCTIONS.String()]; !ok {
		return errors.Errorf("attributes.%s is required", SOURCE_JUNCTIONS)
	}
	if cfg.Output.Path == "" {
		return errors.New("output.path is required")
	}
	if getOutputFormat(cfg.Output.Format) == 0 {
		return errors.Wrapf(ErrUnsupportedFormat, "output.format '%s'", cfg.Output.Format)
	}
	if cfg.Routing.Out != "" && getRoutingGeomFormat(cfg.Routing.GeomFormat) == 0 {
		return errors.Wrapf(ErrUnsupportedFormat, "routing.geom_format '%s'", cfg.Routing.GeomFormat)
	}
	return errors.Wrap(cfg.Bounds.Validate(), "Bad bounds")
}

// DelimiterRune returns table delimiter
func (cfg *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(cfg.Delimiter)
	return r
}

// SourceFiles returns attribute sources in join order with their full paths
func (cfg *Config) SourceFiles() []SourceFile {
	files := make([]SourceFile, 0, len(cfg.Attributes))
	for _, source := range sourceNamesOrdered {
		fname, ok := cfg.Attributes[source.String()]
		if !ok {
			continue
		}
		if !filepath.IsAbs(fname) {
			fname = filepath.Join(cfg.AttributesDir, fname)
		}
		files = append(files, SourceFile{Source: source, Path: fname})
	}
	return files
}

// SourceFile is attribute table location
type SourceFile struct {
	Source SourceName
	Path   string
}
