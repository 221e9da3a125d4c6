// Package filter defines the generic, JSON-shaped query filter consumed
// by the CAML translator: a projection list, a where-clause tree, order
// specs and a row limit.
//
// The where clause is a recursive sum type. A Comparison is one
// field/operator/value triple; a Logical groups two or more child clauses
// under an and/or connective. Filters are transient value objects: they
// live for one translate call and are never mutated by any compile step.
package filter

// Op is a comparison operator of the filter grammar.
type Op string

const (
	OpEq       Op = "eq"
	OpNeq      Op = "neq"
	OpGt       Op = "gt"
	OpGte      Op = "gte"
	OpLt       Op = "lt"
	OpLte      Op = "lte"
	OpIn       Op = "inq"
	OpNin      Op = "nin"
	OpLike     Op = "like"
	OpContains Op = "contains"
)

// parseOp maps an operator spelling from a filter object to its canonical
// Op. The "in" alias is accepted alongside "inq".
func parseOp(s string) (Op, bool) {
	switch s {
	case "eq":
		return OpEq, true
	case "neq":
		return OpNeq, true
	case "gt":
		return OpGt, true
	case "gte":
		return OpGte, true
	case "lt":
		return OpLt, true
	case "lte":
		return OpLte, true
	case "inq", "in":
		return OpIn, true
	case "nin":
		return OpNin, true
	case "like":
		return OpLike, true
	case "contains":
		return OpContains, true
	default:
		return "", false
	}
}

// Connective joins the children of a Logical clause.
type Connective string

const (
	And Connective = "and"
	Or  Connective = "or"
)

// Clause is the sealed where-clause tree node.
//
// Only Comparison and Logical implement it; the marker method keeps the
// union closed so compilers can type-switch exhaustively.
type Clause interface {
	clauseNode()
}

// Comparison is a leaf clause: one field, one operator, one operand.
type Comparison struct {
	Field string
	Op    Op
	Value any
}

func (Comparison) clauseNode() {}

// Logical is an n-ary connective over child clauses. Child order is
// semantically insignificant but is preserved verbatim, because the
// translator's output must be reproducible byte for byte.
type Logical struct {
	Conn    Connective
	Clauses []Clause
}

func (Logical) clauseNode() {}

// Filter is the caller-supplied query filter. Every part is optional.
type Filter struct {
	// Fields is the projection list. Empty means the store default
	// (all columns).
	Fields []string

	// Exclude is the projection exclusion set, consulted only when
	// Fields is empty; the projection is then the model's declared
	// fields minus these.
	Exclude []string

	// Where is the root of the where-clause tree, nil for none.
	Where Clause

	// Order holds order specs of the form "field" or "field ASC|DESC".
	Order []string

	// Limit caps the number of rows. Zero or negative means no limit.
	Limit int
}
