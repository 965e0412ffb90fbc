package units

import (
	"fmt"
	"io"
	"maps"
)

// Unit is a unit raised to a power and scaled by a power of ten. The scale
// applies once per power, so a kilometer squared is meter with power 2 and
// scale 3, i.e. 10⁶ m².
type Unit struct {
	Conversion Conversion
	Power      float64
	Scale      float64
}

// Dimensions is a parsed unit expression. It is immutable.
type Dimensions struct {
	// units are the expanded units in expression order.
	units []Unit
	// spaces is the net power of each space, excluding special units.
	spaces map[Space]float64
}

// Parse parses a unit expression such as "m/s^2" or "kWh".
func Parse(src string, opts ...ParseOption) (*Dimensions, error) {
	ctx := newParsectx(opts)
	t, err := parseTree(src, ctx)
	if err != nil {
		return nil, err
	}
	e := expander{spaces: make(map[Space]float64)}
	if err := e.expand(t, 1); err != nil {
		return nil, err
	}
	return &Dimensions{units: e.units, spaces: e.spaces}, nil
}

// Explain parses a unit expression and returns its expression tree. Each
// level of the tree is bracketed, alternating between round and square
// brackets.
func Explain(src string, opts ...ParseOption) (string, error) {
	t, err := parseTree(src, newParsectx(opts))
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// Units returns a copy of the expanded units, including special units.
func (d *Dimensions) Units() []Unit {
	return append([]Unit(nil), d.units...)
}

// Spaces returns a copy of the net power of each space.
func (d *Dimensions) Spaces() map[Space]float64 {
	return maps.Clone(d.spaces)
}

// Equal reports whether d and o have the same net power of every space,
// meaning values may be converted between them. The order of units does
// not matter.
func (d *Dimensions) Equal(o *Dimensions) bool {
	return maps.Equal(d.spaces, o.spaces)
}

// Simplify combines the units of each space into one unit, using the first
// unit of each space in order of appearance. The result is meant for
// reporting dimensions; special units are dropped, and converting with a
// simplified expression generally gives different results.
func (d *Dimensions) Simplify() *Dimensions {
	var order []Space
	merged := make(map[Space][]Unit)
	for _, u := range d.units {
		if IsSpecial(u.Conversion) {
			continue
		}
		s := u.Conversion.Space()
		if _, ok := merged[s]; !ok {
			order = append(order, s)
		}
		merged[s] = append(merged[s], u)
	}
	r := &Dimensions{units: make([]Unit, 0, len(order)), spaces: maps.Clone(d.spaces)}
	for _, s := range order {
		us := merged[s]
		if len(us) == 1 {
			r.units = append(r.units, us[0])
			continue
		}
		var p, sp float64
		for _, u := range us {
			p += u.Power
			sp += u.Scale * u.Power
		}
		u := Unit{Conversion: us[0].Conversion, Power: p}
		if p != 0 {
			u.Scale = sp / p
		}
		r.units = append(r.units, u)
	}
	return r
}

// String formats the dimensions by unit names, e.g. "[meter] [second]⁻²".
func (d *Dimensions) String() string {
	return bracketed(d.units, func(u Unit) string { return u.Conversion.Name() })
}

// spaceString formats the dimensions by space names, e.g.
// "[length] [time]⁻²".
func (d *Dimensions) spaceString() string {
	return bracketed(d.units, func(u Unit) string { return u.Conversion.Space().String() })
}

// Format implements fmt.Formatter. The %v and %s verbs write unit names;
// with the + flag, they write space names instead.
func (d *Dimensions) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if f.Flag('+') {
			io.WriteString(f, d.spaceString())
			return
		}
		io.WriteString(f, d.String())
	case 'q':
		fmt.Fprintf(f, "%q", d.String())
	default:
		fmt.Fprintf(f, "%%!%c(*units.Dimensions=%s)", verb, d.String())
	}
}

var _ fmt.Formatter = (*Dimensions)(nil)
