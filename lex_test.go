package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"spaces", " \t ", ""},
		{"unit", "m", "meter"},
		{"name", "Meter", "meter"},
		{"prefix", "km", "10³ meter"},
		{"prefix name", "kilometer", "10³ meter"},
		{"milli", "ms", "10⁻³ second"},
		{"precedence", "m/s^2", "meter / second ^ 2"},
		{"negative exponent", "s^-2", "second ^ -2"},
		{"group", "m / (s * s)", "meter / {second * second}"},
		{"nested group", "m/((s))", "meter / {{second}}"},
		{"unicode ops", "m×s÷s·s", "meter * second / second * second"},
		{"underscore", "nautical_mile", "nautical mile"},
		{"hyphen", "nautical-mile", "nautical mile"},
		{"derived", "N", "{10³ gram * meter * second⁻²}"},
		{"prefixed derived", "kN", "{10³ gram * meter * second⁻² * 10³ ×1}"},
		{"scaled derived", "dyn", "{10³ gram * meter * second⁻² * 10⁻⁵ ×1}"},
		{"shorthand", "mph", "{mile * hour⁻¹}"},
		{"shorthand with derived", "Wh", "{{10³ gram * meter² * second⁻³} * hour}"},
		{"prefixed shorthand", "kWh", "{{10³ gram * meter² * second⁻³} * hour * 10³ ×1}"},
		{"number", "2", "2"},
		{"space separates", "m s", "meter second"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := tokenize(c.src, newParsectx(nil), 0)
			require.NoError(t, err)
			assert.Equal(t, c.want, fmtTokens(toks))
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := tokenize("m / (s * s)", newParsectx(nil), 0)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].pos)
	assert.Equal(t, 3, toks[1].pos)
	assert.Equal(t, 5, toks[2].pos)
	require.Equal(t, tokenGroup, toks[2].kind)
	g := toks[2].group
	require.Len(t, g, 3)
	assert.Equal(t, 6, g[0].pos)
	assert.Equal(t, 8, g[1].pos)
	assert.Equal(t, 10, g[2].pos)
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  any
		pos  int
	}{
		{"invalid token", "xyz123notaunit", new(*TokenError), 1},
		{"invalid after op", "m/xyz", new(*TokenError), 3},
		{"close", ")", new(*BracketError), 1},
		{"extra close", "(m))", new(*BracketError), 4},
		{"unclosed", "m/(", new(*BracketError), 3},
		{"unclosed nested", "((m)", new(*BracketError), 1},
		{"bad token in group", "m/(s*q)", new(*TokenError), 6},
		{"infinity", "m^inf", new(*TokenError), 3},
		{"nonmetric prefix", "kft", new(*TokenError), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := tokenize(c.src, newParsectx(nil), 0)
			require.Error(t, err)
			require.ErrorAs(t, err, c.err)
			var ie InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, c.pos, ie.Pos())
		})
	}
}

func TestNoPrefixes(t *testing.T) {
	_, err := tokenize("km", newParsectx([]ParseOption{NoPrefixes()}), 0)
	var te *TokenError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "km", te.Text)
	toks, err := tokenize("kph", newParsectx([]ParseOption{NoPrefixes()}), 0)
	require.NoError(t, err)
	assert.Equal(t, "{10³ meter * hour⁻¹}", fmtTokens(toks))
}

func TestScanNum(t *testing.T) {
	cases := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"m", 0},
		{".", 0},
		{"0", 1},
		{"10 m", 2},
		{"1.5", 3},
		{".5", 2},
		{"-40 c", 3},
		{"+2", 2},
		{"1e3", 3},
		{"1E2 footcandle", 3},
		{"1e-3", 4},
		{"1e+3m", 4},
		{"1e", 1},
		{"1em", 1},
		{"2e to C", 1},
		{"1.1.1", 3},
		{"10m/s", 2},
		{"1-2", 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, scanNum(c.src), "scanning %q", c.src)
	}
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "Unit", tokenUnit.String())
	assert.Equal(t, "Tree", tokenTree.String())
	assert.Equal(t, "tokenKind(9)", tokenKind(9).String())
}

var benchExprs = []string{"m/s^2", "m/s/s", "m/(s*s)", "kWh", "mi/h^2"}

func BenchmarkTokenize(b *testing.B) {
	ctx := newParsectx(nil)
	for _, src := range benchExprs {
		b.Run(src, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tokenize(src, ctx, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
