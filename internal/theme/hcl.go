package theme

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclRoot is the schema of an HCL stylesheet: only style blocks are allowed.
type hclRoot struct {
	Styles []*hclStyle `hcl:"style,block"`
}

type hclStyle struct {
	Selector string   `hcl:"selector,label"`
	Body     hcl.Body `hcl:",remain"`
}

func parseHCL(path string, src []byte) (*Sheet, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, diags
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, diags
	}

	sheet := newSheet(path)
	for _, st := range root.Styles {
		attrs, diags := st.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}

		// Evaluate in source order so diagnostics are stable.
		ordered := make([]*hcl.Attribute, 0, len(attrs))
		for _, a := range attrs {
			ordered = append(ordered, a)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
		})

		for _, a := range ordered {
			val, diags := a.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			if err := sheet.set(st.Selector, a.Name, val); err != nil {
				return nil, err
			}
		}
	}
	return sheet, nil
}
