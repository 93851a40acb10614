// Package model defines the document structures shared by the presentation
// parsers and their consumers.
//
// A parser builds a Document incrementally and hands it to the caller, who
// owns it exclusively from then on. Nothing in this package retains state
// between parses.
package model
