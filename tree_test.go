package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeify(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"m", "meter"},
		{"(m)", "meter"},
		{"((m))", "meter"},
		{"m/s^2", "(meter / [second ^ 2])"},
		{"m/s/s", "([meter / second] / second)"},
		{"m/(s*s)", "(meter / [second * second])"},
		{"m*s^2^3", "(meter * [(second ^ 2) ^ 3])"},
		{"m^(2)", "(meter ^ 2)"},
		{"m^-1*s", "([meter ^ -1] * second)"},
		{"N", "([10³ gram * meter] * second⁻²)"},
		{"s/mph", "(second / [mile * hour⁻¹])"},
		{"2", "2"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got, err := Explain(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestTreeifyTokens(t *testing.T) {
	// The tree for m/s^2 puts the power under the division.
	root, err := parseTree("m/s^2", newParsectx(nil))
	require.NoError(t, err)
	require.Equal(t, tokenTree, root.kind)
	assert.Equal(t, OpDiv, root.op)
	assert.Equal(t, tokenUnit, root.left.kind)
	require.Equal(t, tokenTree, root.right.kind)
	assert.Equal(t, OpPow, root.right.op)
	assert.Equal(t, tokenUnit, root.right.left.kind)
	assert.Equal(t, tokenNum, root.right.right.kind)
	assert.Equal(t, 2.0, root.right.right.num)
	assert.Equal(t, 2, root.pos)
	assert.Equal(t, 4, root.right.pos)
}

func TestTreeifyErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  any
		pos  int
	}{
		{"empty", "", new(*EmptyExpressionError), 1},
		{"empty group", "()", new(*EmptyExpressionError), 1},
		{"empty operand", "m/()", new(*EmptyExpressionError), 3},
		{"missing operator", "m s", new(*MissingOperatorError), 3},
		{"missing operator before tree", "m s^2", new(*MissingOperatorError), 3},
		{"missing operator in group", "(m s)", new(*MissingOperatorError), 4},
		{"missing operator after group", "(m) s", new(*MissingOperatorError), 5},
		{"leading operator", "*m", new(*OperandError), 1},
		{"trailing operator", "m*", new(*OperandError), 2},
		{"adjacent operators", "m*/s", new(*OperandError), 3},
		{"lone operator", "^", new(*OperandError), 1},
		{"operator in group", "m/(*)", new(*OperandError), 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Explain(c.src)
			require.Error(t, err)
			require.ErrorAs(t, err, c.err)
			var ie InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, c.pos, ie.Pos())
		})
	}
}

func TestEmptyExpressionErrorGroup(t *testing.T) {
	_, err := Explain("()")
	var e *EmptyExpressionError
	require.ErrorAs(t, err, &e)
	assert.True(t, e.Group)
	assert.Equal(t, "1: empty parentheses", e.Error())
	_, err = Explain("  ")
	require.ErrorAs(t, err, &e)
	assert.False(t, e.Group)
	assert.Equal(t, "1: no expression", e.Error())
}

func BenchmarkTreeify(b *testing.B) {
	ctx := newParsectx(nil)
	for _, src := range benchExprs {
		toks, err := tokenize(src, ctx, 0)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(src, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := treeify(toks, 1, false); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkExpand(b *testing.B) {
	ctx := newParsectx(nil)
	for _, src := range benchExprs {
		tree, err := parseTree(src, ctx)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(src, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				e := expander{spaces: make(map[Space]float64)}
				if err := e.expand(tree, 1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
