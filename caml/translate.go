package caml

import (
	"strings"

	"github.com/dkrantsberg/camlquery/filter"
	"github.com/dkrantsberg/camlquery/model"
)

// CompileWhere compiles a where-clause tree into a Where fragment.
// A nil clause yields the empty string.
func CompileWhere(m *model.Metadata, c filter.Clause) (string, error) {
	if c == nil {
		return "", nil
	}
	n, err := compileClause(m, c)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	openTag(&b, "Where")
	renderNode(&b, n)
	closeTag(&b, "Where")
	return b.String(), nil
}

// Translate is the translator's entry point: it renders a complete view
// document of shape
//
//	<View>[ViewFields]<Query>[Where][OrderBy]</Query>[RowLimit]</View>
//
// from one model's metadata and one filter. Each optional part is omitted
// entirely when its input is absent; OrderBy always appears because an
// absent order defaults to the identity column descending.
//
// Translate is a pure function over its read-only inputs and is safe to
// call concurrently.
func Translate(m *model.Metadata, f filter.Filter) (string, error) {
	where, err := CompileWhere(m, f.Where)
	if err != nil {
		return "", err
	}
	orderBy, err := CompileOrderBy(m, f.Order)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	openTag(&b, "View")
	b.WriteString(CompileViewFields(m, Projection(m, f)))
	openTag(&b, "Query")
	b.WriteString(where)
	b.WriteString(orderBy)
	closeTag(&b, "Query")
	b.WriteString(CompileRowLimit(f.Limit))
	closeTag(&b, "View")
	return b.String(), nil
}

// Projection resolves the effective field list of a filter. An explicit
// inclusion list wins; otherwise an exclusion set expands against the
// model's declared field order; otherwise there is no projection.
func Projection(m *model.Metadata, f filter.Filter) []string {
	if len(f.Fields) > 0 {
		return f.Fields
	}
	if len(f.Exclude) == 0 {
		return nil
	}

	excluded := make(map[string]struct{}, len(f.Exclude))
	for _, name := range f.Exclude {
		excluded[name] = struct{}{}
	}
	var fields []string
	for _, name := range m.FieldNames() {
		if _, skip := excluded[name]; !skip {
			fields = append(fields, name)
		}
	}
	return fields
}
