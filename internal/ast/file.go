package ast

// File is a single compilation unit: an ordered list of top-level
// declarations (spec §4.2.17, §6 "an ordered list of top-level
// declarations").
type File struct {
	Name  string // source filename, used to set the IR module's source filename
	Decls []*Node // top-level Var and Fun nodes, in declaration order
}

// Package is the root input to the core: an ordered list of files
// (spec §6 "a package node containing an ordered list of file nodes").
type Package struct {
	Name  string
	Files []*File
}
