package units

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string, opts ...ParseOption) *Dimensions {
	t.Helper()
	d, err := Parse(src, opts...)
	require.NoError(t, err, "parsing %q", src)
	return d
}

func TestParseEquivalent(t *testing.T) {
	want := map[Space]float64{Length: 1, Time: -2}
	for _, src := range []string{"m/s^2", "m/(s*s)", "m/s/s", "m*s^-2", "(s^2/m)^-1"} {
		d := mustParse(t, src)
		assert.Equal(t, want, d.Spaces(), "parsing %q", src)
	}
}

func TestParseUnits(t *testing.T) {
	cases := []struct {
		src  string
		want []Unit
	}{
		{"m/s^2", []Unit{{meter, 1, 0}, {second, -2, 0}}},
		{"km^2", []Unit{{meter, 2, 3}}},
		{"m/s/s", []Unit{{meter, 1, 0}, {second, -1, 0}, {second, -1, 0}}},
		{"N^2", []Unit{{gram, 2, 3}, {meter, 2, 0}, {second, -4, 0}}},
		{"s/mph", []Unit{{second, 1, 0}, {mile, -1, 0}, {hour, 1, 0}}},
		{"(m^2)^0.5", []Unit{{meter, 1, 0}}},
		{"kph", []Unit{{meter, 1, 3}, {hour, -1, 0}}},
		{"1/s", nil},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			d, err := Parse(c.src)
			if c.want == nil {
				var e *NumberError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 1.0, e.Num)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, d.Units())
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  any
		pos  int
	}{
		{"unit exponent", "m^s", new(*ExponentError), 3},
		{"tree exponent", "m^(2*3)", new(*ExponentError), 5},
		{"bare number", "2", new(*NumberError), 1},
		{"number operand", "m*2", new(*NumberError), 3},
		{"fractional power", "m^0.5", new(*PowerError), 1},
		{"huge power", "m^2000", new(*PowerError), 1},
		{"fractional derived", "N^0.5", new(*PowerError), 1},
		{"invalid token", "xyz123notaunit", new(*TokenError), 1},
		{"missing operator", "m s", new(*MissingOperatorError), 3},
		{"unclosed", "m/(", new(*BracketError), 3},
		{"unopened", ")", new(*BracketError), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := Parse(c.src)
			assert.Nil(t, d)
			require.ErrorAs(t, err, c.err)
			var ie InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, c.pos, ie.Pos())
		})
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"N", "kg*m/s^2", true},
		{"kg*m/s^2", "N", true},
		{"m/s", "mi/h", true},
		{"m/s", "s/m", false},
		{"m", "m^2", false},
		{"m", "s", false},
		{"m*s", "s*m", true},
		{"J", "N*m", true},
		{"kWh", "J", true},
		{"W", "J/s", true},
		{"lux", "cd*sr/m^2", true},
		{"footcandle", "hefnerkerze*rad/ft^2", true},
		{"mph", "km/h", true},
		{"dyn", "N", true},
		{"hectare", "acre", true},
		{"m^0", "ft^0", true},
		{"m^0", "s^0", false},
		{"m/m", "s/s", false},
	}
	for _, c := range cases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		assert.Equal(t, c.want, a.Equal(b), "%s == %s", c.a, c.b)
	}
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		src  string
		want []Unit
	}{
		{"m/s/s", []Unit{{meter, 1, 0}, {second, -2, 0}}},
		{"s*m*s", []Unit{{second, 2, 0}, {meter, 1, 0}}},
		{"km*m", []Unit{{meter, 2, 1.5}}},
		{"km/m", []Unit{{meter, 0, 0}}},
		{"kN", []Unit{{gram, 1, 3}, {meter, 1, 0}, {second, -2, 0}}},
		{"ft*mi", []Unit{{foot, 2, 0}}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			d := mustParse(t, c.src)
			s := d.Simplify()
			assert.Equal(t, c.want, s.Units())
			assert.Equal(t, d.Spaces(), s.Spaces())
			assert.Equal(t, s.Units(), s.Simplify().Units())
		})
	}
}

func TestDimensionsFormat(t *testing.T) {
	cases := []struct {
		src    string
		names  string
		spaces string
	}{
		{"m/s^2", "[meter] [second]⁻²", "[length] [time]⁻²"},
		{"m", "[meter]", "[length]"},
		{"kN", "[gram] [meter] [second]⁻²", "[mass] [length] [time]⁻²"},
		{"m^-0.5^2", "[meter]⁻¹", "[length]⁻¹"},
		{"nautical_mile", "[nautical mile]", "[length]"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			d := mustParse(t, c.src)
			assert.Equal(t, c.names, d.String())
			assert.Equal(t, c.names, fmt.Sprintf("%v", d))
			assert.Equal(t, c.spaces, fmt.Sprintf("%+v", d))
			assert.Equal(t, fmt.Sprintf("%q", c.names), fmt.Sprintf("%q", d))
		})
	}
}

func TestDimensionsCopies(t *testing.T) {
	d := mustParse(t, "m/s")
	u := d.Units()
	u[0].Power = 7
	s := d.Spaces()
	s[Length] = 7
	assert.Equal(t, 1.0, d.Units()[0].Power)
	assert.Equal(t, 1.0, d.Spaces()[Length])
}

func TestWithTable(t *testing.T) {
	tab := NewTable()
	smoot, err := NewLinear("smoot", Length, "1.7018", "", false, []string{"smt"}, true)
	require.NoError(t, err)
	require.NoError(t, tab.Add(Definition{Conversion: smoot}))
	d := mustParse(t, "ksmt", WithTable(tab))
	assert.Equal(t, []Unit{{smoot, 1, 3}}, d.Units())
	_, err = Parse("m", WithTable(tab))
	var te *TokenError
	require.ErrorAs(t, err, &te)
}
