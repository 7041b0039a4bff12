package almanac

import (
	"github.com/menmos/almanac-go/input"
	"github.com/pkg/errors"
)

// BuildLayer builds the layer described by an almanac block.
func BuildLayer(block input.Block) (*Layer, error) {
	layer := NewLayer(block.From, block.To)
	for _, t := range block.Triples {
		if err := layer.Insert(t.Destination, t.Source, t.Length); err != nil {
			return nil, errors.Wrapf(err, "line %d: map %q", t.Line, block.Name())
		}
	}
	return layer, nil
}

// BuildPipeline builds one layer per almanac block, in file order.
func BuildPipeline(a *input.Almanac) (*Pipeline, error) {
	layers := make([]*Layer, 0, len(a.Blocks))
	for _, block := range a.Blocks {
		layer, err := BuildLayer(block)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	return NewPipeline(layers...), nil
}
