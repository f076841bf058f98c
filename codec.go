package pixicoord

import (
	"encoding/json"
	"slices"

	"github.com/owlpinetech/healpix"
	"golang.org/x/exp/maps"
)

type indexerEnvelope struct {
	Name    string          `json:"name"`
	Indexer json.RawMessage `json:"indexer"`
}

type indexerDecoder func(json.RawMessage) (LocationIndexer, error)

// Indexers are rebuilt through their constructors, since the precomputed projection
// state is not part of the serialized form.
var indexerDecoders = map[string]indexerDecoder{
	ProjectionlessName: func(raw json.RawMessage) (LocationIndexer, error) {
		var p ProjectionlessIndexer
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return NewProjectionlessIndexer(p.Width, p.Height, p.RowMajor), nil
	},
	MercatorCutoffName: func(raw json.RawMessage) (LocationIndexer, error) {
		var m MercatorCutoffIndexer
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		return NewMercatorCutoffIndexer(m.NorthCutoff, m.SouthCutoff, m.Width, m.Height, m.RowMajor), nil
	},
	CylindricalEquirectangularName: func(raw json.RawMessage) (LocationIndexer, error) {
		var c CylindricalEquirectangularIndexer
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return NewCylindricalEquirectangularIndexer(c.Parallel, c.Width, c.Height, c.RowMajor), nil
	},
	FlatHealpixName: func(raw json.RawMessage) (LocationIndexer, error) {
		var h struct {
			Scheme healpix.HealpixScheme `json:"scheme"`
			Order  healpix.HealpixOrder  `json:"order"`
		}
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, err
		}
		return NewFlatHealpixIndexer(h.Order, h.Scheme), nil
	},
}

// The names of every indexer that UnmarshalIndexer knows how to rebuild, sorted.
func IndexerNames() []string {
	names := maps.Keys(indexerDecoders)
	slices.Sort(names)
	return names
}

// Serialize the indexer along with its name, so that UnmarshalIndexer can pick the
// right concrete type when reading it back.
func MarshalIndexer(indexer LocationIndexer) ([]byte, error) {
	if _, ok := indexerDecoders[indexer.Name()]; !ok {
		return nil, NewUnknownIndexerError(indexer.Name())
	}
	raw, err := json.Marshal(indexer)
	if err != nil {
		return nil, err
	}
	return json.Marshal(indexerEnvelope{
		Name:    indexer.Name(),
		Indexer: raw,
	})
}

func UnmarshalIndexer(data []byte) (LocationIndexer, error) {
	var env indexerEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	decode, ok := indexerDecoders[env.Name]
	if !ok {
		return nil, NewUnknownIndexerError(env.Name)
	}
	return decode(env.Indexer)
}
