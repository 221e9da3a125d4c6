package caml

import (
	"strings"

	"github.com/dkrantsberg/camlquery/internal/xmlenc"
	"github.com/dkrantsberg/camlquery/model"
)

// The serializer renders the node tree into one XML fragment with no
// prologue and no indentation. Attribute order, self-closing empty
// elements and entity escaping are all fixed: downstream comparisons are
// literal string equality, so the exact bytes are part of the contract.

func renderNode(b *strings.Builder, n node) {
	switch n := n.(type) {
	case comparisonNode:
		openTag(b, n.tag)
		renderFieldRef(b, n.column)
		renderValue(b, n.typ, n.val)
		closeTag(b, n.tag)
	case multiNode:
		openTag(b, n.tag)
		renderFieldRef(b, n.column)
		openTag(b, "Values")
		for _, v := range n.vals {
			renderValue(b, n.typ, v)
		}
		closeTag(b, "Values")
		closeTag(b, n.tag)
	case binaryNode:
		openTag(b, n.tag)
		renderNode(b, n.left)
		renderNode(b, n.right)
		closeTag(b, n.tag)
	}
}

func renderFieldRef(b *strings.Builder, column string) {
	b.WriteString(`<FieldRef Name="`)
	b.WriteString(xmlenc.Attr(column))
	b.WriteString(`"/>`)
}

func renderValue(b *strings.Builder, typ model.CAMLType, v value) {
	b.WriteString(`<Value Type="`)
	b.WriteString(string(typ))
	b.WriteString(`">`)
	b.WriteString(xmlenc.Text(v.text()))
	b.WriteString(`</Value>`)
}

func openTag(b *strings.Builder, tag string) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
