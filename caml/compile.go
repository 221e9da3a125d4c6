package caml

import (
	"fmt"

	"github.com/birdie-ai/golibs/xerrors"

	"github.com/dkrantsberg/camlquery/filter"
	"github.com/dkrantsberg/camlquery/model"
)

// operatorTag is the fixed mapping from filter operators to CAML
// comparison element names. Multi-value operators are handled separately;
// an operator missing here fails compilation instead of emitting an
// empty tag.
func operatorTag(op filter.Op) (string, bool) {
	switch op {
	case filter.OpEq:
		return "Eq", true
	case filter.OpNeq:
		return "Neq", true
	case filter.OpGt:
		return "Gt", true
	case filter.OpGte:
		return "Geq", true
	case filter.OpLt:
		return "Lt", true
	case filter.OpLte:
		return "Leq", true
	case filter.OpLike:
		return "BeginsWith", true
	case filter.OpContains:
		return "Contains", true
	default:
		return "", false
	}
}

func connectiveTag(conn filter.Connective) (string, bool) {
	switch conn {
	case filter.And:
		return "And", true
	case filter.Or:
		return "Or", true
	default:
		return "", false
	}
}

// compileClause turns a where-clause tree into the binary CAML node tree.
// The input clause is read-only: compilation allocates fresh nodes and
// never touches the caller's slices, so compiling the same tree twice
// yields byte-identical output.
func compileClause(m *model.Metadata, c filter.Clause) (node, error) {
	switch clause := c.(type) {
	case filter.Comparison:
		return compileComparison(m, clause)
	case filter.Logical:
		return compileLogical(m, clause)
	default:
		return nil, fmt.Errorf("caml: unsupported clause type %T", c)
	}
}

func compileComparison(m *model.Metadata, c filter.Comparison) (node, error) {
	column := m.ResolveColumn(c.Field)
	typ, err := m.ResolveType(c.Field)
	if err != nil {
		return nil, err
	}

	switch c.Op {
	case filter.OpIn:
		vals, ok := toValues(c.Value)
		if !ok {
			return nil, invalidOperand(c.Field, c.Op, "value must be a sequence, got %T", c.Value)
		}
		return multiNode{tag: "In", column: column, typ: typ, vals: vals}, nil
	case filter.OpNin:
		return nil, unsupportedOperator(c.Field, c.Op)
	default:
		tag, known := operatorTag(c.Op)
		if !known {
			return nil, unsupportedOperator(c.Field, c.Op)
		}
		val, ok := toValue(c.Value)
		if !ok {
			return nil, invalidOperand(c.Field, c.Op, "value of type %T is not renderable", c.Value)
		}
		return comparisonNode{tag: tag, column: column, typ: typ, val: val}, nil
	}
}

// compileLogical compiles every child in order, then folds the results
// into a right-leaning binary chain: children a, b, c, d under And become
// And(a, And(b, And(c, d))). A single-child connective compiles to the
// child alone.
func compileLogical(m *model.Metadata, c filter.Logical) (node, error) {
	tag, known := connectiveTag(c.Conn)
	if !known {
		return nil, malformedClause("unknown connective %q", c.Conn)
	}
	if len(c.Clauses) == 0 {
		return nil, malformedClause("%s requires at least one clause", c.Conn)
	}

	children := make([]node, 0, len(c.Clauses))
	for _, child := range c.Clauses {
		compiled, err := compileClause(m, child)
		if err != nil {
			return nil, err
		}
		children = append(children, compiled)
	}
	return foldBinary(tag, children), nil
}

// foldBinary nests n compiled conditions into n-1 binary logical nodes,
// preserving left-to-right order.
func foldBinary(tag string, nodes []node) node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return binaryNode{tag: tag, left: nodes[0], right: foldBinary(tag, nodes[1:])}
}

func malformedClause(format string, args ...any) error {
	reason := fmt.Sprintf(format, args...)
	return xerrors.Tag(&filter.MalformedClauseError{Reason: reason}, filter.ErrMalformedClause)
}
