// Package attr coerces raw markup attribute strings into typed widget
// configuration.
//
// Every widget kind publishes a Set: a fixed list of Bindings, each pairing
// an attribute name with a Parser and a destination field. Apply walks the
// Set once per element. Parsers turn the raw string into a cty.Value and the
// value is decoded into the destination with gocty, so all four parser kinds
// (Float, Bool, String, Length) share one decoding path and one error shape.
package attr
