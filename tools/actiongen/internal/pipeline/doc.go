// Package pipeline implements the actiongen generator: load a directory of
// JSON action-catalog files, validate their cross-references, and emit a Go
// source file declaring a literal []*action.Definition the host can embed
// without a runtime JSON parse.
package pipeline
