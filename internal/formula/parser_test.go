package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Node
	}{
		{
			name:  "atom",
			input: "p",
			want:  Atom{Name: "p"},
		},
		{
			name:  "constants",
			input: "1 & 0",
			want:  And{Left: Top{}, Right: Bottom{}},
		},
		{
			name:  "constant aliases are case-insensitive",
			input: "top & bOt",
			want:  And{Left: Top{}, Right: Bottom{}},
		},
		{
			name:  "negation binds tighter than and",
			input: "~p & q",
			want:  And{Left: Not{Operand: Atom{Name: "p"}}, Right: Atom{Name: "q"}},
		},
		{
			name:  "double negation",
			input: "~~p",
			want:  Not{Operand: Not{Operand: Atom{Name: "p"}}},
		},
		{
			name:  "and binds tighter than or",
			input: "p | q & r",
			want: Or{
				Left:  Atom{Name: "p"},
				Right: And{Left: Atom{Name: "q"}, Right: Atom{Name: "r"}},
			},
		},
		{
			name:  "or binds tighter than residuated implication",
			input: "p | q => r",
			want: Strong{
				Left:  Or{Left: Atom{Name: "p"}, Right: Atom{Name: "q"}},
				Right: Atom{Name: "r"},
			},
		},
		{
			name:  "residuated binds tighter than material implication",
			input: "p => q -> r",
			want: Implies{
				Left:  Strong{Left: Atom{Name: "p"}, Right: Atom{Name: "q"}},
				Right: Atom{Name: "r"},
			},
		},
		{
			name:  "equivalence is loosest",
			input: "p -> q <-> r",
			want: Iff{
				Left:  Implies{Left: Atom{Name: "p"}, Right: Atom{Name: "q"}},
				Right: Atom{Name: "r"},
			},
		},
		{
			name:  "binary operators associate left",
			input: "p -> q -> r",
			want: Implies{
				Left:  Implies{Left: Atom{Name: "p"}, Right: Atom{Name: "q"}},
				Right: Atom{Name: "r"},
			},
		},
		{
			name:  "parentheses override precedence",
			input: "p & (q | r)",
			want: And{
				Left:  Atom{Name: "p"},
				Right: Or{Left: Atom{Name: "q"}, Right: Atom{Name: "r"}},
			},
		},
		{
			name:  "box with action label",
			input: "[]_a p",
			want:  Box{Action: "a", Operand: Atom{Name: "p"}},
		},
		{
			name:  "diamond with action label",
			input: "<>_work p",
			want:  Diamond{Action: "work", Operand: Atom{Name: "p"}},
		},
		{
			name:  "modal operators bind like negation",
			input: "[]_a p & <>_b q",
			want: And{
				Left:  Box{Action: "a", Operand: Atom{Name: "p"}},
				Right: Diamond{Action: "b", Operand: Atom{Name: "q"}},
			},
		},
		{
			name:  "nested modalities",
			input: "[]_a <>_a ~p",
			want: Box{
				Action: "a",
				Operand: Diamond{
					Action:  "a",
					Operand: Not{Operand: Atom{Name: "p"}},
				},
			},
		},
		{
			name:  "whitespace is insignificant",
			input: "  p\t&\n q  ",
			want:  And{Left: Atom{Name: "p"}, Right: Atom{Name: "q"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("AST mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
		msg   string
	}{
		{"empty input", "", 0, "missing operand"},
		{"dangling operator", "p & ", 4, "missing operand"},
		{"doubled operator", "p & & q", 4, "expected a formula"},
		{"unclosed parenthesis", "(p", 2, "expected ')'"},
		{"trailing input", "p q", 2, "unexpected input"},
		{"stray close paren", ")", 0, "expected a formula"},
		{"lone equals", "p = q", 2, "expected '>' after '='"},
		{"lone dash", "p - q", 2, "expected '>' after '-'"},
		{"box without action", "[] p", 0, "requires an action label"},
		{"box with empty action", "[]_ p", 0, "missing its action label"},
		{"diamond without action", "<> p", 0, "requires an action label"},
		{"unknown rune", "p # q", 2, "unknown token"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.pos, parseErr.Pos, "error position")
			assert.Contains(t, parseErr.Msg, tc.msg)
		})
	}
}

func TestNode_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"p&q", "p & q"},
		{"p | (q & r)", "p | q & r"}, // redundant parens dropped
		{"(p | q) & r", "(p | q) & r"},
		{"~(p & q)", "~(p & q)"},
		{"[]_a (p -> q)", "[]_a (p -> q)"},
		{"p -> (q -> r)", "p -> (q -> r)"}, // right nesting is not the default
		{"(p -> q) -> r", "p -> q -> r"},
		{"TOP | bot", "1 | 0"},
	}

	for _, tc := range tests {
		node, err := Parse(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, node.String(), "printing %q", tc.input)

		// Reparsing the printed form must give back the same tree.
		again, err := Parse(node.String())
		require.NoError(t, err)
		if diff := cmp.Diff(node, again); diff != "" {
			t.Errorf("round trip mismatch for %q (-first +second):\n%s", tc.input, diff)
		}
	}
}

func TestAtoms(t *testing.T) {
	node, err := Parse("(p & q) -> ([]_a p | ~r) <-> 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q", "r"}, Atoms(node))

	constant, err := Parse("1 -> 0")
	require.NoError(t, err)
	assert.Empty(t, Atoms(constant))
}
