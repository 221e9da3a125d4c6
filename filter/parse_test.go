package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhere_Empty(t *testing.T) {
	clause, err := ParseWhere(nil)
	require.NoError(t, err)
	assert.Nil(t, clause)

	clause, err = ParseWhere(map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, clause)
}

func TestParseWhere_ImplicitEq(t *testing.T) {
	clause, err := ParseWhere(map[string]any{"firstName": "Joe"})
	require.NoError(t, err)

	want := Comparison{Field: "firstName", Op: OpEq, Value: "Joe"}
	if diff := cmp.Diff(want, clause); diff != "" {
		t.Fatalf("clause mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWhere_ExplicitOperators(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want Clause
	}{
		{
			name: "gt",
			raw:  map[string]any{"age": map[string]any{"gt": float64(21)}},
			want: Comparison{Field: "age", Op: OpGt, Value: float64(21)},
		},
		{
			name: "inq",
			raw:  map[string]any{"status": map[string]any{"inq": []any{"new", "open"}}},
			want: Comparison{Field: "status", Op: OpIn, Value: []any{"new", "open"}},
		},
		{
			name: "in alias",
			raw:  map[string]any{"status": map[string]any{"in": []any{"new"}}},
			want: Comparison{Field: "status", Op: OpIn, Value: []any{"new"}},
		},
		{
			name: "like",
			raw:  map[string]any{"lastName": map[string]any{"like": "Do"}},
			want: Comparison{Field: "lastName", Op: OpLike, Value: "Do"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clause, err := ParseWhere(tc.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, clause); diff != "" {
				t.Fatalf("clause mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseWhere_Nested(t *testing.T) {
	raw := map[string]any{
		"and": []any{
			map[string]any{"or": []any{
				map[string]any{"firstName": "Joe"},
				map[string]any{"firstName": "Jane"},
			}},
			map[string]any{"age": map[string]any{"gte": float64(18)}},
		},
	}

	clause, err := ParseWhere(raw)
	require.NoError(t, err)

	want := Logical{Conn: And, Clauses: []Clause{
		Logical{Conn: Or, Clauses: []Clause{
			Comparison{Field: "firstName", Op: OpEq, Value: "Joe"},
			Comparison{Field: "firstName", Op: OpEq, Value: "Jane"},
		}},
		Comparison{Field: "age", Op: OpGte, Value: float64(18)},
	}}
	if diff := cmp.Diff(want, clause); diff != "" {
		t.Fatalf("clause mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWhere_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"multi-key clause", map[string]any{"firstName": "Joe", "lastName": "Doe"}},
		{"multi-key operator object", map[string]any{"age": map[string]any{"gt": 1.0, "lt": 9.0}}},
		{"unknown operator", map[string]any{"age": map[string]any{"between": []any{1.0, 9.0}}}},
		{"connective without array", map[string]any{"and": map[string]any{"a": 1.0}}},
		{"empty connective", map[string]any{"or": []any{}}},
		{"non-object child", map[string]any{"and": []any{"nope"}}},
		{"empty child", map[string]any{"and": []any{map[string]any{}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseWhere(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedClause), "want ErrMalformedClause, got %v", err)

			var details *MalformedClauseError
			assert.True(t, errors.As(err, &details))
		})
	}
}

func TestParseWhere_DoesNotMutateInput(t *testing.T) {
	children := []any{
		map[string]any{"firstName": "Joe"},
		map[string]any{"lastName": "Doe"},
		map[string]any{"age": float64(28)},
	}
	raw := map[string]any{"and": children}

	_, err := ParseWhere(raw)
	require.NoError(t, err)

	// The caller's array must survive intact for a second parse.
	assert.Len(t, raw["and"], 3)
	again, err := ParseWhere(raw)
	require.NoError(t, err)
	assert.Len(t, again.(Logical).Clauses, 3)
}

func TestParseFilter(t *testing.T) {
	raw := map[string]any{
		"fields": []any{"firstName", "lastName"},
		"where":  map[string]any{"age": map[string]any{"gt": float64(21)}},
		"order":  "lastName DESC",
		"limit":  float64(10),
	}

	f, err := ParseFilter(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"firstName", "lastName"}, f.Fields)
	assert.Empty(t, f.Exclude)
	assert.Equal(t, []string{"lastName DESC"}, f.Order)
	assert.Equal(t, 10, f.Limit)

	want := Comparison{Field: "age", Op: OpGt, Value: float64(21)}
	if diff := cmp.Diff(want, f.Where); diff != "" {
		t.Fatalf("where mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFilter_FieldSets(t *testing.T) {
	// Any true entry makes the map an inclusion set; false entries are
	// then ignored.
	f, err := ParseFilter(map[string]any{
		"fields": map[string]any{"lastName": true, "firstName": true, "age": false},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"firstName", "lastName"}, f.Fields)
	assert.Empty(t, f.Exclude)

	// An all-false map is an exclusion set.
	f, err = ParseFilter(map[string]any{
		"fields": map[string]any{"age": false, "joined": false},
	})
	require.NoError(t, err)
	assert.Empty(t, f.Fields)
	assert.Equal(t, []string{"age", "joined"}, f.Exclude)
}

func TestParseFilter_OrderForms(t *testing.T) {
	f, err := ParseFilter(map[string]any{"order": []any{"lastName ASC", "age"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"lastName ASC", "age"}, f.Order)

	_, err = ParseFilter(map[string]any{"order": float64(7)})
	require.Error(t, err)
}

func TestCoerceLimit(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{10, 10},
		{int64(3), 3},
		{float64(25), 25},
		{"42", 42},
		{"1e3", 0},
		{"abc", 0},
		{-5, 0},
		{float64(-1), 0},
		{nil, 0},
		{true, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CoerceLimit(tc.in), "input %v", tc.in)
	}
}
