package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/owlpinetech/healpix"
	"github.com/owlpinetech/pixicoord"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Precision)
	}
	if cfg.Input != "-" {
		t.Errorf("expected input -, got %s", cfg.Input)
	}
	if cfg.Indexer.Kind != pixicoord.CylindricalEquirectangularName {
		t.Errorf("expected indexer kind %s, got %s", pixicoord.CylindricalEquirectangularName, cfg.Indexer.Kind)
	}
	if cfg.Indexer.Width != 360 || cfg.Indexer.Height != 180 || !cfg.Indexer.RowMajor {
		t.Errorf("unexpected default grid %+v", cfg.Indexer)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected default log config %+v", cfg.Log)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	contents := `
precision: 3
input: points.yaml
log:
  level: debug
  format: json
indexer:
  kind: flat-healpix
  order: 2
  scheme: ring
`
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Precision != 3 || cfg.Input != "points.yaml" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Indexer.Kind != pixicoord.FlatHealpixName || cfg.Indexer.Order != 2 || cfg.Indexer.Scheme != "ring" {
		t.Errorf("unexpected indexer config %+v", cfg.Indexer)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected an error for a missing explicit config file")
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PIXICOORD_PRECISION", "2")
	t.Setenv("PIXICOORD_INDEXER_KIND", pixicoord.MercatorCutoffName)
	t.Setenv("PIXICOORD_INDEXER_WIDTH", "64")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Precision != 2 {
		t.Errorf("expected precision 2, got %d", cfg.Precision)
	}
	if cfg.Indexer.Kind != pixicoord.MercatorCutoffName || cfg.Indexer.Width != 64 {
		t.Errorf("unexpected indexer config %+v", cfg.Indexer)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Precision: 6,
			Input:     "-",
			Indexer: IndexerConfig{
				Kind:        pixicoord.MercatorCutoffName,
				Width:       10,
				Height:      10,
				NorthCutoff: 1,
				SouthCutoff: -1,
				Order:       3,
				Scheme:      "nest",
			},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"precision", func(c *Config) { c.Precision = 16 }, "precision must be at most 15"},
		{"input", func(c *Config) { c.Input = "" }, "input is required"},
		{"kind", func(c *Config) { c.Indexer.Kind = "sinusoidal" }, "indexer.kind must be one of"},
		{"width", func(c *Config) { c.Indexer.Width = 0 }, "indexer.width must be positive"},
		{"height", func(c *Config) { c.Indexer.Height = -2 }, "indexer.height must be positive"},
		{"cutoff order", func(c *Config) { c.Indexer.SouthCutoff = 2 }, "north_cutoff must be greater"},
		{"cutoff pole", func(c *Config) { c.Indexer.NorthCutoff = math.Pi / 2 }, "strictly between the poles"},
		{"order", func(c *Config) {
			c.Indexer.Kind = pixicoord.FlatHealpixName
			c.Indexer.Order = 30
		}, "indexer.order must be 0-29"},
		{"scheme", func(c *Config) {
			c.Indexer.Kind = pixicoord.FlatHealpixName
			c.Indexer.Scheme = "spiral"
		}, "indexer.scheme must be one of nest, ring"},
	}

	base := valid()
	if err := base.Validate(); err != nil {
		t.Fatalf("expected base config to be valid, got %v", err)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.message) {
				t.Errorf("expected error containing %q, got %v", tc.message, err)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	testCases := []struct {
		indexer  IndexerConfig
		expected pixicoord.LocationIndexer
		coords   bool
	}{
		{IndexerConfig{Kind: pixicoord.ProjectionlessName, Width: 4, Height: 3, RowMajor: true},
			pixicoord.NewProjectionlessIndexer(4, 3, true), false},
		{IndexerConfig{Kind: pixicoord.CylindricalEquirectangularName, Width: 8, Height: 4},
			pixicoord.NewCylindricalEquirectangularIndexer(0, 8, 4, false), true},
		{IndexerConfig{Kind: pixicoord.MercatorCutoffName, Width: 8, Height: 4, NorthCutoff: 1, SouthCutoff: -1},
			pixicoord.NewMercatorCutoffIndexer(1, -1, 8, 4, false), true},
		{IndexerConfig{Kind: pixicoord.FlatHealpixName, Order: 1, Scheme: "nest"},
			pixicoord.NewFlatHealpixIndexer(1, healpix.NestScheme), true},
	}

	for _, tc := range testCases {
		t.Run(tc.indexer.Kind, func(t *testing.T) {
			built, err := tc.indexer.Build()
			if err != nil {
				t.Fatal(err)
			}
			if reflect.TypeOf(built) != reflect.TypeOf(tc.expected) {
				t.Errorf("expected indexer type %T, got %T", tc.expected, built)
			}
			if built.Size() != tc.expected.Size() {
				t.Errorf("expected size %d, got %d", tc.expected.Size(), built.Size())
			}
			if tc.indexer.IndexesCoordinates() != tc.coords {
				t.Errorf("expected coordinate support %v for %s", tc.coords, tc.indexer.Kind)
			}
		})
	}

	if _, err := (IndexerConfig{Kind: "sinusoidal"}).Build(); err == nil {
		t.Errorf("expected unknown indexer kind to fail")
	}
}
