package attr

import (
	"errors"
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Parser converts a raw attribute value into a cty.Value of Type().
type Parser interface {
	// Name is the semantic type name used in error messages.
	Name() string
	Type() cty.Type
	Parse(raw string) (cty.Value, error)
}

var (
	// Float parses standard decimal notation into a finite number.
	Float Parser = floatParser{}
	// Single is Float limited to the float32 range.
	Single Parser = singleParser{}
	// Bool accepts only the literals "true" and "false".
	Bool Parser = boolParser{}
	// String passes the raw value through verbatim.
	String Parser = stringParser{}
	// Size parses a row height or column width policy.
	Size Parser = lengthParser{}
)

var errNotFinite = errors.New("number must be finite")

type floatParser struct{}

func (floatParser) Name() string   { return "float" }
func (floatParser) Type() cty.Type { return cty.Number }

func (floatParser) Parse(raw string) (cty.Value, error) {
	v, err := convert.Convert(cty.StringVal(raw), cty.Number)
	if err != nil {
		return cty.NilVal, err
	}
	if v.AsBigFloat().IsInf() {
		return cty.NilVal, errNotFinite
	}
	return v, nil
}

type singleParser struct{ floatParser }

func (p singleParser) Parse(raw string) (cty.Value, error) {
	v, err := p.floatParser.Parse(raw)
	if err != nil {
		return cty.NilVal, err
	}
	if f, _ := v.AsBigFloat().Float32(); math.IsInf(float64(f), 0) {
		return cty.NilVal, errors.New("number is out of float32 range")
	}
	return v, nil
}

type boolParser struct{}

func (boolParser) Name() string   { return "bool" }
func (boolParser) Type() cty.Type { return cty.Bool }

// Parse is stricter than cty's own string conversion, which also takes "1" and "0".
func (boolParser) Parse(raw string) (cty.Value, error) {
	switch raw {
	case "true":
		return cty.True, nil
	case "false":
		return cty.False, nil
	default:
		return cty.NilVal, errors.New(`a bool is required ("true" or "false")`)
	}
}

type stringParser struct{}

func (stringParser) Name() string   { return "string" }
func (stringParser) Type() cty.Type { return cty.String }

func (stringParser) Parse(raw string) (cty.Value, error) {
	return cty.StringVal(raw), nil
}
