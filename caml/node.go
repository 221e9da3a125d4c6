package caml

import "github.com/dkrantsberg/camlquery/model"

// node is the sealed intermediate CAML tree produced by the where-clause
// compiler and consumed by the serializer. Logical branches are strictly
// binary: CAML's And and Or elements take exactly two child expressions,
// so an n-ary filter connective becomes a right-leaning chain of
// binaryNodes.
type node interface {
	camlNode()
}

// comparisonNode is a single typed comparison, e.g.
// <Eq><FieldRef Name="Age"/><Value Type="Number">28</Value></Eq>.
type comparisonNode struct {
	tag    string
	column string
	typ    model.CAMLType
	val    value
}

func (comparisonNode) camlNode() {}

// multiNode is a membership test over a value list, e.g.
// <In><FieldRef Name="Status"/><Values>...</Values></In>.
type multiNode struct {
	tag    string
	column string
	typ    model.CAMLType
	vals   []value
}

func (multiNode) camlNode() {}

// binaryNode joins exactly two children under And or Or.
type binaryNode struct {
	tag   string
	left  node
	right node
}

func (binaryNode) camlNode() {}
