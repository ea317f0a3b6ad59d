// Package theme resolves a window's stylesheet chain into one merged Theme.
//
// A Theme maps selectors (widget kinds such as "button", or "#id") to
// Styles, and a Style maps property names to primitive cty values. The
// runtime supplies a base theme; stylesheets are layered on top of it with
// Builder.Extend in the order given and materialized once with Build.
// Stylesheets are HCL (.hcl) or YAML (.yaml, .yml):
//
//	style "button" {
//	  background = "#2196f3"
//	  font_size  = 14
//	}
//
//	styles:
//	  button:
//	    background: "#2196f3"
//	    font_size: 14
package theme
