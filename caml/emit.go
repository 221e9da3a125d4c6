package caml

import (
	"strconv"
	"strings"

	"github.com/dkrantsberg/camlquery/filter"
	"github.com/dkrantsberg/camlquery/internal/xmlenc"
	"github.com/dkrantsberg/camlquery/model"
)

// CompileViewFields renders the projection list as a ViewFields element,
// one FieldRef per field in caller order. An empty list yields the empty
// string; the store then defaults to all columns.
func CompileViewFields(m *model.Metadata, fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	openTag(&b, "ViewFields")
	for _, f := range fields {
		renderFieldRef(&b, m.ResolveColumn(f))
	}
	closeTag(&b, "ViewFields")
	return b.String()
}

// CompileOrderBy renders order specs as an OrderBy element. Each spec is
// "field" or "field ASC|DESC" (direction case-insensitive); a bare field
// sorts ascending with the Ascending attribute omitted. Anything else
// fails with an error tagged ErrInvalidOrder.
//
// Absent specs default to the identity column descending, so unordered
// queries return stable, reverse-chronological-by-creation results.
func CompileOrderBy(m *model.Metadata, specs []string) (string, error) {
	var b strings.Builder
	openTag(&b, "OrderBy")

	if len(specs) == 0 {
		renderOrderRef(&b, m.IdentityColumn(), `False`)
	}
	for _, spec := range specs {
		column, ascending, err := parseOrderSpec(m, spec)
		if err != nil {
			return "", err
		}
		renderOrderRef(&b, column, ascending)
	}

	closeTag(&b, "OrderBy")
	return b.String(), nil
}

// parseOrderSpec returns the resolved column and the Ascending attribute
// value, empty when the attribute is omitted.
func parseOrderSpec(m *model.Metadata, spec string) (column, ascending string, err error) {
	tokens := strings.Fields(spec)
	switch len(tokens) {
	case 1:
		return m.ResolveColumn(tokens[0]), "", nil
	case 2:
		switch strings.ToUpper(tokens[1]) {
		case "ASC":
			return m.ResolveColumn(tokens[0]), "True", nil
		case "DESC":
			return m.ResolveColumn(tokens[0]), "False", nil
		default:
			return "", "", invalidOrder(spec, "unrecognized direction %q", tokens[1])
		}
	default:
		return "", "", invalidOrder(spec, "want 1 or 2 tokens, got %d", len(tokens))
	}
}

func renderOrderRef(b *strings.Builder, column, ascending string) {
	b.WriteString(`<FieldRef Name="`)
	b.WriteString(xmlenc.Attr(column))
	if ascending != "" {
		b.WriteString(`" Ascending="`)
		b.WriteString(ascending)
	}
	b.WriteString(`"/>`)
}

// CompileRowLimit renders a RowLimit element for a positive row cap and
// the empty string for anything else. A bad limit is a safe default,
// never an error.
func CompileRowLimit(v any) string {
	n := filter.CoerceLimit(v)
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	openTag(&b, "RowLimit")
	b.WriteString(strconv.Itoa(n))
	closeTag(&b, "RowLimit")
	return b.String()
}
