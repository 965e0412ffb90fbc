package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	cases := []struct {
		src      string
		value    string
		from, to string
	}{
		{"10 km/h => mph", "10", "km/h", "mph"},
		{"10 km/h=>mph", "10", "km/h", "mph"},
		{"m to ft", "1", "m", "ft"},
		{"  2.5 m -> ft  ", "2.5", "m", "ft"},
		{"-40 c in f", "-40", "c", "f"},
		{"1e3 m -> km", "1000", "m", "km"},
		{"1E2 footcandle => hefnerkerze*rad/ft^2", "100", "footcandle", "hefnerkerze*rad/ft^2"},
		{"10 in to cm", "10", "in", "cm"},
		{"5 ft in in", "5", "ft", "in"},
		{"3 nautical-mile to km", "3", "nautical-mile", "km"},
		{"10m/s => km/h", "10", "m/s", "km/h"},
		{"2 e to C", "2", "e", "C"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			q, err := ParseQuery(c.src, 0)
			require.NoError(t, err)
			assert.Equal(t, c.value, q.Value.Text('g', -1))
			assert.Equal(t, uint(DefaultPrec), q.Value.Prec())
			assert.Equal(t, c.from, q.From)
			assert.Equal(t, c.to, q.To)
		})
	}
}

func TestParseQueryPrec(t *testing.T) {
	q, err := ParseQuery("0.1 m => ft", 200)
	require.NoError(t, err)
	assert.Equal(t, uint(200), q.Value.Prec())
}

func TestParseQueryErrors(t *testing.T) {
	cases := []struct {
		src    string
		reason string
	}{
		{"", "missing units"},
		{"10", "missing units"},
		{"10 m", "expected <units> => <units>"},
		{"10 m to", "expected <units> => <units>"},
		{"=> m", "expected <units> => <units>"},
		{"10 m => ", "expected <units> => <units>"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := ParseQuery(c.src, 0)
			var qe *QueryError
			require.ErrorAs(t, err, &qe)
			assert.Equal(t, c.reason, qe.Reason)
			assert.Equal(t, c.src, qe.Query)
		})
	}
}
