// Package xmlenc provides deterministic XML entity escaping for the
// hand-rolled serializers in this module.
//
// The stdlib encoding/xml escaper writes control characters as numeric
// references and inserts no guarantees about quote handling, which makes
// byte-exact golden comparisons brittle. This package escapes exactly the
// five predefined entities and nothing else, so serialized output is a
// pure function of the input string.
package xmlenc

import "strings"

var (
	textReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
)

// Text escapes element text content.
func Text(s string) string {
	return textReplacer.Replace(s)
}

// Attr escapes a double-quoted attribute value.
func Attr(s string) string {
	return attrReplacer.Replace(s)
}
