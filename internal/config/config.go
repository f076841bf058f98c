package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/owlpinetech/healpix"
	"github.com/owlpinetech/pixicoord"
	"github.com/spf13/viper"
)

// Config holds all pixicoord command configuration.
type Config struct {
	Precision uint          `mapstructure:"precision"`
	Input     string        `mapstructure:"input"`
	Log       LogConfig     `mapstructure:"log"`
	Indexer   IndexerConfig `mapstructure:"indexer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IndexerConfig selects and parameterises the pixel indexer. Angles are in radians.
type IndexerConfig struct {
	Kind        string  `mapstructure:"kind"`
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	RowMajor    bool    `mapstructure:"row_major"`
	Parallel    float64 `mapstructure:"parallel"`
	NorthCutoff float64 `mapstructure:"north_cutoff"`
	SouthCutoff float64 `mapstructure:"south_cutoff"`
	Order       int     `mapstructure:"order"`
	Scheme      string  `mapstructure:"scheme"`
}

// Digits beyond this are noise for a float64.
const MaxPrecision = 15

// HEALPix orders are limited by the 64-bit pixel numbering.
const MaxHealpixOrder = 29

// Load reads configuration from an optional file and environment variables. An empty
// path searches for pixicoord.yaml in the working directory and ./configs, and a
// missing file is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("precision", 6)
	v.SetDefault("input", "-")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("indexer.kind", pixicoord.CylindricalEquirectangularName)
	v.SetDefault("indexer.width", 360)
	v.SetDefault("indexer.height", 180)
	v.SetDefault("indexer.row_major", true)
	v.SetDefault("indexer.parallel", 0.0)
	v.SetDefault("indexer.north_cutoff", 80*math.Pi/180)
	v.SetDefault("indexer.south_cutoff", -80*math.Pi/180)
	v.SetDefault("indexer.order", 4)
	v.SetDefault("indexer.scheme", "nest")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("pixicoord")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: PIXICOORD_INDEXER_KIND → indexer.kind
	v.SetEnvPrefix("PIXICOORD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Precision > MaxPrecision {
		errs = append(errs, fmt.Sprintf("precision must be at most %d, got %d", MaxPrecision, c.Precision))
	}
	if c.Input == "" {
		errs = append(errs, "input is required")
	}
	errs = append(errs, c.Indexer.validate()...)

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func (i IndexerConfig) validate() []string {
	var errs []string

	switch i.Kind {
	case pixicoord.ProjectionlessName, pixicoord.CylindricalEquirectangularName, pixicoord.MercatorCutoffName:
		if i.Width <= 0 {
			errs = append(errs, fmt.Sprintf("indexer.width must be positive, got %d", i.Width))
		}
		if i.Height <= 0 {
			errs = append(errs, fmt.Sprintf("indexer.height must be positive, got %d", i.Height))
		}
		if i.Kind == pixicoord.MercatorCutoffName {
			if i.NorthCutoff <= i.SouthCutoff {
				errs = append(errs, "indexer.north_cutoff must be greater than indexer.south_cutoff")
			}
			if i.NorthCutoff >= math.Pi/2 || i.SouthCutoff <= -math.Pi/2 {
				errs = append(errs, "indexer cutoffs must lie strictly between the poles")
			}
		}
	case pixicoord.FlatHealpixName:
		if i.Order < 0 || i.Order > MaxHealpixOrder {
			errs = append(errs, fmt.Sprintf("indexer.order must be 0-%d, got %d", MaxHealpixOrder, i.Order))
		}
		if _, err := ParseScheme(i.Scheme); err != nil {
			errs = append(errs, err.Error())
		}
	default:
		errs = append(errs, fmt.Sprintf("indexer.kind must be one of %s, got %q",
			strings.Join(pixicoord.IndexerNames(), ", "), i.Kind))
	}
	return errs
}

// Build constructs the configured indexer. The configuration must have passed Validate.
func (i IndexerConfig) Build() (pixicoord.LocationIndexer, error) {
	switch i.Kind {
	case pixicoord.ProjectionlessName:
		return pixicoord.NewProjectionlessIndexer(i.Width, i.Height, i.RowMajor), nil
	case pixicoord.CylindricalEquirectangularName:
		return pixicoord.NewCylindricalEquirectangularIndexer(i.Parallel, i.Width, i.Height, i.RowMajor), nil
	case pixicoord.MercatorCutoffName:
		return pixicoord.NewMercatorCutoffIndexer(i.NorthCutoff, i.SouthCutoff, i.Width, i.Height, i.RowMajor), nil
	case pixicoord.FlatHealpixName:
		scheme, err := ParseScheme(i.Scheme)
		if err != nil {
			return nil, err
		}
		return pixicoord.NewFlatHealpixIndexer(healpix.HealpixOrder(i.Order), scheme), nil
	default:
		return nil, pixicoord.NewUnknownIndexerError(i.Kind)
	}
}

var schemes = []string{"nest", "ring"}

func ParseScheme(name string) (healpix.HealpixScheme, error) {
	switch strings.ToLower(name) {
	case "nest":
		return healpix.NestScheme, nil
	case "ring":
		return healpix.RingScheme, nil
	default:
		return healpix.NestScheme, fmt.Errorf("indexer.scheme must be one of %s, got %q", strings.Join(schemes, ", "), name)
	}
}

// Whether the configured indexer accepts Cartesian and Spherical locations. The
// projectionless grid only understands grid positions.
func (i IndexerConfig) IndexesCoordinates() bool {
	return slices.Contains([]string{
		pixicoord.CylindricalEquirectangularName,
		pixicoord.MercatorCutoffName,
		pixicoord.FlatHealpixName,
	}, i.Kind)
}
