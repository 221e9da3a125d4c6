package filter

import (
	"fmt"
	"sort"
	"strconv"
)

// ParseFilter builds a Filter from a decoded JSON filter object. Unknown
// top-level keys are ignored, matching the lenient filter grammar of the
// data-access layers this translator serves. The input maps are treated
// as read-only.
func ParseFilter(raw map[string]any) (Filter, error) {
	var f Filter

	if v, ok := raw["fields"]; ok {
		include, exclude, err := parseFields(v)
		if err != nil {
			return Filter{}, err
		}
		f.Fields, f.Exclude = include, exclude
	}

	if v, ok := raw["where"]; ok {
		m, ok := v.(map[string]any)
		if !ok {
			return Filter{}, malformed("where must be an object, got %T", v)
		}
		clause, err := ParseWhere(m)
		if err != nil {
			return Filter{}, err
		}
		f.Where = clause
	}

	if v, ok := raw["order"]; ok {
		order, err := parseOrder(v)
		if err != nil {
			return Filter{}, err
		}
		f.Order = order
	}

	if v, ok := raw["limit"]; ok {
		f.Limit = CoerceLimit(v)
	}

	return f, nil
}

// ParseWhere builds a Clause tree from a decoded where-clause object.
// An empty object yields a nil Clause (no constraint). Every clause level
// must be a single-key object; anything else fails with an error tagged
// ErrMalformedClause.
func ParseWhere(raw map[string]any) (Clause, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if len(raw) > 1 {
		return nil, malformed("clause object has %d keys, want exactly 1", len(raw))
	}

	// Exactly one entry.
	var key string
	var val any
	for k, v := range raw {
		key, val = k, v
	}

	switch key {
	case string(And), string(Or):
		return parseLogical(Connective(key), val)
	default:
		return parseComparison(key, val)
	}
}

func parseLogical(conn Connective, val any) (Clause, error) {
	items, ok := val.([]any)
	if !ok {
		return nil, malformed("%s requires an array of clauses, got %T", conn, val)
	}
	if len(items) == 0 {
		return nil, malformed("%s requires at least one clause", conn)
	}

	children := make([]Clause, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, malformed("%s[%d] must be an object, got %T", conn, i, item)
		}
		child, err := ParseWhere(m)
		if err != nil {
			return nil, err
		}
		if child == nil {
			return nil, malformed("%s[%d] must not be empty", conn, i)
		}
		children = append(children, child)
	}
	return Logical{Conn: conn, Clauses: children}, nil
}

func parseComparison(field string, val any) (Clause, error) {
	opSpec, ok := val.(map[string]any)
	if !ok {
		// Bare value is an implicit equality.
		return Comparison{Field: field, Op: OpEq, Value: val}, nil
	}
	if len(opSpec) != 1 {
		return nil, malformed("operator object for field %q has %d keys, want exactly 1", field, len(opSpec))
	}

	for name, operand := range opSpec {
		op, known := parseOp(name)
		if !known {
			return nil, malformed("unknown operator %q for field %q", name, field)
		}
		return Comparison{Field: field, Op: op, Value: operand}, nil
	}
	panic("unreachable")
}

// parseFields accepts either an array of field names or a name→bool
// inclusion/exclusion map. When the map holds any true entry it is an
// inclusion set (false entries are ignored); an all-false map is an
// exclusion set.
func parseFields(v any) (include, exclude []string, err error) {
	switch fields := v.(type) {
	case []any:
		for i, item := range fields {
			name, ok := item.(string)
			if !ok {
				return nil, nil, fmt.Errorf("filter: fields[%d] must be a string, got %T", i, item)
			}
			include = append(include, name)
		}
		return include, nil, nil
	case map[string]any:
		// Sorted keys keep the projection deterministic; JSON object
		// order is not observable after decoding.
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b, ok := fields[name].(bool)
			if !ok {
				return nil, nil, fmt.Errorf("filter: fields[%q] must be a boolean, got %T", name, fields[name])
			}
			if b {
				include = append(include, name)
			} else {
				exclude = append(exclude, name)
			}
		}
		if len(include) > 0 {
			return include, nil, nil
		}
		return nil, exclude, nil
	default:
		return nil, nil, fmt.Errorf("filter: fields must be an array or object, got %T", v)
	}
}

func parseOrder(v any) ([]string, error) {
	switch order := v.(type) {
	case string:
		return []string{order}, nil
	case []any:
		specs := make([]string, 0, len(order))
		for i, item := range order {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("filter: order[%d] must be a string, got %T", i, item)
			}
			specs = append(specs, s)
		}
		return specs, nil
	default:
		return nil, fmt.Errorf("filter: order must be a string or array of strings, got %T", v)
	}
}

// CoerceLimit converts a raw limit value to an integer row cap. Anything
// non-positive or unparseable yields zero, which means "no limit"; a bad
// limit never fails a query build.
func CoerceLimit(v any) int {
	switch n := v.(type) {
	case int:
		return positive(n)
	case int64:
		return positive(int(n))
	case float64:
		return positive(int(n))
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return positive(parsed)
	default:
		return 0
	}
}

func positive(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
