// Package batch converts lists of points read from YAML documents between cartesian and
// spherical form, and places them on a pixelized sphere.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/owlpinetech/pixicoord"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoRepresentation    = errors.New("point has no cartesian, spherical or geographic components")
	ErrManyRepresentations = errors.New("point must have exactly one of cartesian, spherical or geographic components")
	ErrComponentCount      = errors.New("point components must have exactly three values")
)

// A point as written in a batch document. Exactly one of the representations must be
// set. Geographic components are latitude, longitude and radial distance.
type Point struct {
	Name       string    `yaml:"name"`
	Cartesian  []float64 `yaml:"cartesian,flow,omitempty"`
	Spherical  []float64 `yaml:"spherical,flow,omitempty"`
	Geographic []float64 `yaml:"geographic,flow,omitempty"`
}

type Input struct {
	Points []Point `yaml:"points"`
}

// The converted form of a point. When the point could not be built, only Name and Error
// are set. When it was built but could not be indexed, Index is nil and Error says why.
type Result struct {
	Name      string    `yaml:"name"`
	Cartesian []float64 `yaml:"cartesian,flow,omitempty"`
	Spherical []float64 `yaml:"spherical,flow,omitempty"`
	Index     *int      `yaml:"index,omitempty"`
	Error     string    `yaml:"error,omitempty"`
}

type Output struct {
	Results []Result `yaml:"results"`
}

func Decode(r io.Reader) (Input, error) {
	var in Input
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return Input{}, fmt.Errorf("decode batch: %w", err)
	}
	return in, nil
}

func Encode(w io.Writer, out Output) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return enc.Close()
}

type Runner struct {
	precision uint
	indexer   pixicoord.LocationIndexer
	logger    *slog.Logger
}

// Create a runner that rounds results to the given number of decimal digits. The indexer
// may be nil, in which case no pixel indices are computed.
func NewRunner(precision uint, indexer pixicoord.LocationIndexer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		precision: precision,
		indexer:   indexer,
		logger:    logger,
	}
}

// Convert every point of the batch. Invalid points are reported in their result and do
// not stop the batch; only cancellation of the context does, in which case the results
// gathered so far are returned along with the context's error.
func (r *Runner) Run(ctx context.Context, in Input) (Output, error) {
	out := Output{Results: make([]Result, 0, len(in.Points))}
	failed := 0
	for _, p := range in.Points {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("batch interrupted after %d points: %w", len(out.Results), err)
		}
		res := r.Convert(p)
		if res.Error != "" {
			failed++
		}
		out.Results = append(out.Results, res)
	}
	r.logger.Info("batch converted", "points", len(out.Results), "failed", failed)
	return out, nil
}

func (r *Runner) Convert(p Point) Result {
	res := Result{Name: p.Name}

	cart, sphere, err := resolve(p)
	if err != nil {
		r.logger.Warn("invalid point", "name", p.Name, "error", err)
		res.Error = err.Error()
		return res
	}

	res.Cartesian = components(cart.Round(r.precision))
	res.Spherical = components(sphere.Round(r.precision))

	if r.indexer != nil {
		ind, err := r.indexer.ToIndex(sphere)
		if err != nil {
			r.logger.Warn("point not indexed", "name", p.Name, "indexer", r.indexer.Name(), "error", err)
			res.Error = fmt.Sprintf("index: %v", err)
			return res
		}
		res.Index = &ind
	}

	r.logger.Debug("converted point", "name", p.Name, "cartesian", cart, "spherical", sphere)
	return res
}

// Build both forms of the point. The spherical form always has its azimuth wrapped into
// [0, 2*pi), so that every result is a valid spherical coordinate.
func resolve(p Point) (pixicoord.Cartesian, pixicoord.Spherical, error) {
	set := 0
	for _, c := range [][]float64{p.Cartesian, p.Spherical, p.Geographic} {
		if c != nil {
			set++
		}
	}
	switch {
	case set == 0:
		return pixicoord.Cartesian{}, pixicoord.Spherical{}, ErrNoRepresentation
	case set > 1:
		return pixicoord.Cartesian{}, pixicoord.Spherical{}, ErrManyRepresentations
	}

	switch {
	case p.Cartesian != nil:
		if len(p.Cartesian) != 3 {
			return pixicoord.Cartesian{}, pixicoord.Spherical{}, ErrComponentCount
		}
		cart, err := pixicoord.NewCartesian(p.Cartesian[0], p.Cartesian[1], p.Cartesian[2])
		if err != nil {
			return pixicoord.Cartesian{}, pixicoord.Spherical{}, err
		}
		return cart, cart.ToSpherical().WrapAzimuth(), nil
	case p.Spherical != nil:
		if len(p.Spherical) != 3 {
			return pixicoord.Cartesian{}, pixicoord.Spherical{}, ErrComponentCount
		}
		sphere, err := pixicoord.NewSpherical(p.Spherical[0], p.Spherical[1], p.Spherical[2])
		if err != nil {
			return pixicoord.Cartesian{}, pixicoord.Spherical{}, err
		}
		return sphere.ToCartesian(), sphere, nil
	default:
		if len(p.Geographic) != 3 {
			return pixicoord.Cartesian{}, pixicoord.Spherical{}, ErrComponentCount
		}
		sphere, err := pixicoord.FromGeographic(p.Geographic[0], p.Geographic[1], p.Geographic[2])
		if err != nil {
			return pixicoord.Cartesian{}, pixicoord.Spherical{}, err
		}
		return sphere.ToCartesian(), sphere, nil
	}
}

func components[C pixicoord.Coordinate[C]](c C) []float64 {
	a, b, d := c.Components()
	return []float64{a, b, d}
}
