package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

type yamlRoot struct {
	Styles map[string]map[string]yaml.Node `yaml:"styles"`
}

func parseYAML(path string, src []byte) (*Sheet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var root yamlRoot
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	sheet := newSheet(path)
	for sel, props := range root.Styles {
		for name, node := range props {
			val, err := yamlScalar(&node)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s.%s: %w", node.Line, sel, name, err)
			}
			if err := sheet.set(sel, name, val); err != nil {
				return nil, err
			}
		}
	}
	return sheet, nil
}

func yamlScalar(n *yaml.Node) (cty.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return cty.NilVal, errors.New("value must be a scalar")
	}
	switch n.ShortTag() {
	case "!!str":
		return cty.StringVal(n.Value), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return cty.NilVal, err
		}
		return cty.BoolVal(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return cty.NilVal, err
		}
		if math.IsNaN(f) {
			return cty.NilVal, errors.New("number must not be NaN")
		}
		return cty.NumberFloatVal(f), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %s", n.ShortTag())
	}
}
