// Package markup reads window markup source text into immutable node trees.
//
// The source may hold any number of top-level <window> fragments; it does
// not have to be a single well-formed document. Each fragment becomes one
// Window whose Root is the <window> element. Nodes are linked through
// FirstChild and NextSibling so consumers walk the tree the same way the
// builder does: children first, then the next sibling, threading whatever
// state they accumulate.
package markup
