package attr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Policy is how a row or column claims space inside its grid.
type Policy string

const (
	// Fixed claims exactly Value units.
	Fixed Policy = "fixed"
	// Auto sizes to content.
	Auto Policy = "auto"
	// Star shares the remaining space proportionally to Value.
	Star Policy = "star"
)

// Length is a row height or column width.
type Length struct {
	Policy Policy  `cty:"policy" json:"policy"`
	Value  float64 `cty:"value" json:"value"`
}

// AutoLength is the default for rows and columns.
var AutoLength = Length{Policy: Auto}

func (l Length) String() string {
	switch l.Policy {
	case Auto:
		return "auto"
	case Star:
		if l.Value == 1 {
			return "star"
		}
		return fmt.Sprintf("%g*", l.Value)
	default:
		return fmt.Sprintf("%g", l.Value)
	}
}

var lengthType = cty.Object(map[string]cty.Type{
	"policy": cty.String,
	"value":  cty.Number,
})

type lengthParser struct{}

func (lengthParser) Name() string   { return "length" }
func (lengthParser) Type() cty.Type { return lengthType }

// Parse accepts "auto", "star", "*", "<n>*", "<n>star" and a plain "<n>".
func (lengthParser) Parse(raw string) (cty.Value, error) {
	switch raw {
	case "auto":
		return lengthVal(Auto, cty.Zero), nil
	case "star", "*":
		return lengthVal(Star, cty.NumberIntVal(1)), nil
	}

	weight, isStar := strings.CutSuffix(raw, "*")
	if !isStar {
		weight, isStar = strings.CutSuffix(raw, "star")
	}
	if isStar {
		n, err := Float.Parse(weight)
		if err != nil {
			return cty.NilVal, fmt.Errorf("star weight: %w", err)
		}
		if n.AsBigFloat().Sign() <= 0 {
			return cty.NilVal, errors.New("star weight must be greater than zero")
		}
		return lengthVal(Star, n), nil
	}

	n, err := Float.Parse(raw)
	if err != nil {
		return cty.NilVal, errors.New(`a length is required ("auto", "star", "<n>*" or a number)`)
	}
	if n.AsBigFloat().Sign() < 0 {
		return cty.NilVal, errors.New("length must not be negative")
	}
	return lengthVal(Fixed, n), nil
}

func lengthVal(p Policy, n cty.Value) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"policy": cty.StringVal(string(p)),
		"value":  n,
	})
}
