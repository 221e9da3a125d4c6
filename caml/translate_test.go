package caml

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrantsberg/camlquery/filter"
)

func TestTranslate_EmptyFilter(t *testing.T) {
	out, err := Translate(customerMetadata(t), filter.Filter{})
	require.NoError(t, err)
	assert.Equal(t,
		`<View><Query><OrderBy><FieldRef Name="ID" Ascending="False"/></OrderBy></Query></View>`,
		out)
}

// The reference scenario: three ANDed comparisons against a model with
// one explicit column override.
func TestTranslate_ConjunctionScenario(t *testing.T) {
	raw := map[string]any{
		"where": map[string]any{
			"and": []any{
				map[string]any{"firstName": "Joe"},
				map[string]any{"lastName": "Doe"},
				map[string]any{"age": float64(28)},
			},
		},
	}
	f, err := filter.ParseFilter(raw)
	require.NoError(t, err)

	out, err := Translate(customerMetadata(t), f)
	require.NoError(t, err)
	assert.Contains(t, out,
		`<Where><And>`+
			`<Eq><FieldRef Name="FirstName"/><Value Type="Text">Joe</Value></Eq>`+
			`<And>`+
			`<Eq><FieldRef Name="LastName"/><Value Type="Text">Doe</Value></Eq>`+
			`<Eq><FieldRef Name="Age"/><Value Type="Number">28</Value></Eq>`+
			`</And></And></Where>`)
}

func TestTranslate_ExclusionFieldSet(t *testing.T) {
	f := filter.Filter{Exclude: []string{"age", "joined"}}

	out, err := Translate(customerMetadata(t), f)
	require.NoError(t, err)
	assert.Contains(t, out,
		`<ViewFields><FieldRef Name="FirstName"/><FieldRef Name="LastName"/><FieldRef Name="Active"/></ViewFields>`)
}

func TestTranslate_ErrorsPropagate(t *testing.T) {
	m := customerMetadata(t)

	_, err := Translate(m, filter.Filter{
		Where: filter.Comparison{Field: "nickname", Op: filter.OpEq, Value: "JJ"},
	})
	require.Error(t, err)

	_, err = Translate(m, filter.Filter{Order: []string{"age sideways"}})
	require.Error(t, err)
}

func TestTranslate_Golden(t *testing.T) {
	m := customerMetadata(t)

	tests := []struct {
		name string
		f    filter.Filter
	}{
		{
			name: "default_view",
			f:    filter.Filter{},
		},
		{
			name: "full_document",
			f: filter.Filter{
				Fields: []string{"firstName", "lastName"},
				Where: filter.Logical{Conn: filter.And, Clauses: []filter.Clause{
					filter.Comparison{Field: "active", Op: filter.OpEq, Value: true},
					filter.Comparison{Field: "age", Op: filter.OpGte, Value: 21},
				}},
				Order: []string{"lastName ASC", "age DESC"},
				Limit: 50,
			},
		},
		{
			name: "conjunction_fold",
			f: filter.Filter{
				Where: filter.Logical{Conn: filter.And, Clauses: []filter.Clause{
					filter.Comparison{Field: "firstName", Op: filter.OpEq, Value: "Joe"},
					filter.Comparison{Field: "lastName", Op: filter.OpEq, Value: "Doe"},
					filter.Comparison{Field: "age", Op: filter.OpEq, Value: 28},
				}},
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Translate(m, tc.f)
			require.NoError(t, err)
			g.Assert(t, tc.name, []byte(out))
		})
	}
}
