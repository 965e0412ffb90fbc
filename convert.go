package units

import (
	"log/slog"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// ConvertOption is an option for converting values.
type ConvertOption interface {
	convertOption(*convertctx)
}

type (
	precopt  uint
	traceopt struct{ log *slog.Logger }
)

// Prec sets the precision of conversions. The default is DefaultPrec.
func Prec(prec uint) ConvertOption {
	return precopt(prec)
}

func (o precopt) convertOption(c *convertctx) {
	if o != 0 {
		c.prec = uint(o)
	}
}

// Trace logs each step of a conversion at debug level.
func Trace(log *slog.Logger) ConvertOption {
	return traceopt{log}
}

func (o traceopt) convertOption(c *convertctx) {
	c.log = o.log
}

type convertctx struct {
	prec uint
	log  *slog.Logger
}

// Convert converts a value in units of d to units of to. Convert does not
// check that the dimensions are equal; use Equal first. The result is a new
// value computed to the conversion precision.
//
// Each unit of d in turn converts the value to its base unit, once per
// power, and then applies its scale. The units of to then do the reverse.
func (d *Dimensions) Convert(to *Dimensions, value *big.Float, opts ...ConvertOption) (*big.Float, error) {
	c := convertctx{prec: DefaultPrec}
	for _, opt := range opts {
		opt.convertOption(&c)
	}
	x := new(big.Float).SetPrec(c.prec).Set(value)
	for _, u := range d.units {
		if err := c.apply(x, u, true); err != nil {
			return nil, err
		}
	}
	for _, u := range to.units {
		if err := c.apply(x, u, false); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// apply converts x through one unit. Units on the from side go toward the
// base unit for positive powers; units on the to side go away from it.
func (c *convertctx) apply(x *big.Float, u Unit, from bool) error {
	p := u.Power
	if !validPower(p) {
		return &PowerError{Unit: u.Conversion.Name(), Power: p}
	}
	up := (p > 0) == from
	for i, n := 0, int(math.Abs(p)); i < n; i++ {
		var before string
		if c.log != nil {
			before = x.Text('g', 10)
		}
		step := "to base"
		if up {
			u.Conversion.ToBase(x, x)
		} else {
			u.Conversion.FromBase(x, x)
			step = "from base"
		}
		if c.log != nil {
			c.log.Debug("convert", slog.String("unit", u.Conversion.Name()), slog.String("step", step), slog.String("before", before), slog.String("after", x.Text('g', 10)))
		}
	}
	e := u.Scale * p
	if !from {
		e = -e
	}
	if e != 0 {
		var before string
		if c.log != nil {
			before = x.Text('g', 10)
		}
		x.Mul(x, pow10(e, c.prec))
		if c.log != nil {
			c.log.Debug("convert", slog.String("unit", u.Conversion.Name()), slog.String("step", "scale"), slog.Float64("exponent", e), slog.String("before", before), slog.String("after", x.Text('g', 10)))
		}
	}
	return nil
}

// maxPower is the largest magnitude of a unit's net power.
const maxPower = 1024

// validPower reports whether a net power can be applied by repeated
// conversion.
func validPower(p float64) bool {
	return p == math.Trunc(p) && math.Abs(p) <= maxPower
}

// pow10 computes 10^e to the given precision. Integral exponents are exact
// up to rounding of the result.
func pow10(e float64, prec uint) *big.Float {
	r := new(big.Float).SetPrec(prec)
	if e == math.Trunc(e) && math.Abs(e) <= 1<<16 {
		n := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(math.Abs(e))), nil)
		if e < 0 {
			return r.SetRat(new(big.Rat).SetFrac(big.NewInt(1), n))
		}
		return r.SetInt(n)
	}
	ten := new(big.Float).SetPrec(prec).SetInt64(10)
	bigfloat.Pow(r, ten, new(big.Float).SetPrec(prec).SetFloat64(e))
	return r
}
