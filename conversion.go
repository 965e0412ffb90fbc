package units

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Space is a physical dimension. Two unit expressions are convertible when
// they have the same power of every space.
type Space string

const (
	Angle             Space = "angle"
	ElectricCurrent   Space = "electric current"
	Length            Space = "length"
	LuminousIntensity Space = "luminous intensity"
	Mass              Space = "mass"
	Quantity          Space = "quantity"
	Temperature       Space = "temperature"
	Time              Space = "time"
	// Dynamic is the space of virtual units that only carry a numeric
	// multiplier through conversion. Dynamic units never count toward a
	// unit expression's dimensions.
	Dynamic Space = "dynamic"
)

// Spaces returns the physical spaces units may belong to, excluding Dynamic.
func Spaces() []Space {
	return []Space{Angle, ElectricCurrent, Length, LuminousIntensity, Mass, Quantity, Temperature, Time}
}

// ParseSpace returns the space with the given name. Dynamic is not a valid
// name.
func ParseSpace(name string) (Space, bool) {
	name = strings.Join(strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), " ")
	for _, s := range Spaces() {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

func (s Space) String() string {
	return string(s)
}

// Conversion converts values of one unit to and from the base unit of its
// space. ToBase and FromBase must set out to their result, computed to the
// precision of out, and return out. out and in may be the same value.
type Conversion interface {
	// Name is the canonical name of the unit. Names match case-insensitively.
	Name() string
	// Space is the space the unit measures.
	Space() Space
	// Aliases are alternative spellings. Aliases match case-sensitively.
	Aliases() []string
	// Metric reports whether the unit accepts metric prefixes.
	Metric() bool
	// ToBase converts a value in this unit to the space's base unit.
	ToBase(out, in *big.Float) *big.Float
	// FromBase converts a value in the space's base unit to this unit.
	FromBase(out, in *big.Float) *big.Float
}

// Linear is a unit related to its base unit by base = value*factor + offset.
// If Pi is set, the factor is additionally multiplied by π.
type Linear struct {
	name    string
	space   Space
	factor  *big.Rat
	offset  *big.Rat
	pi      bool
	aliases []string
	metric  bool
}

// NewLinear creates a linear unit. factor and offset are exact decimal or
// fractional numbers like "0.3048" or "5/9"; an empty offset means zero.
func NewLinear(name string, space Space, factor, offset string, pi bool, aliases []string, metric bool) (*Linear, error) {
	if name == "" {
		return nil, &DefinitionError{Name: name, Reason: "empty unit name"}
	}
	if space == "" || space == Dynamic {
		return nil, &DefinitionError{Name: name, Reason: "invalid space " + string(space)}
	}
	f, ok := new(big.Rat).SetString(factor)
	if !ok || f.Sign() == 0 {
		return nil, &DefinitionError{Name: name, Reason: "invalid factor " + factor}
	}
	c := &Linear{
		name:    name,
		space:   space,
		factor:  f,
		pi:      pi,
		aliases: append([]string(nil), aliases...),
		metric:  metric,
	}
	if offset != "" {
		o, ok := new(big.Rat).SetString(offset)
		if !ok {
			return nil, &DefinitionError{Name: name, Reason: "invalid offset " + offset}
		}
		if o.Sign() != 0 {
			c.offset = o
		}
	}
	return c, nil
}

// linear is NewLinear for static tables.
func linear(name string, space Space, factor string, aliases ...string) *Linear {
	c, err := NewLinear(name, space, factor, "", false, aliases, false)
	if err != nil {
		panic("units: " + err.Error())
	}
	return c
}

func (c *Linear) withMetric() *Linear {
	c.metric = true
	return c
}

func (c *Linear) withPi() *Linear {
	c.pi = true
	return c
}

func (c *Linear) withOffset(offset string) *Linear {
	o, ok := new(big.Rat).SetString(offset)
	if !ok {
		panic("units: invalid offset " + offset)
	}
	c.offset = o
	return c
}

func (c *Linear) Name() string      { return c.name }
func (c *Linear) Space() Space      { return c.space }
func (c *Linear) Aliases() []string { return c.aliases }
func (c *Linear) Metric() bool      { return c.metric }

// Factor returns the exact part of the unit's factor.
func (c *Linear) Factor() *big.Rat {
	return new(big.Rat).Set(c.factor)
}

// scale sets f to the unit's factor at precision prec.
func (c *Linear) scale(f *big.Float, prec uint) *big.Float {
	f.SetPrec(prec).SetRat(c.factor)
	if c.pi {
		pi := bigfloat.Pi(new(big.Float).SetPrec(prec))
		f.Mul(f, pi)
	}
	return f
}

func (c *Linear) ToBase(out, in *big.Float) *big.Float {
	p := precOf(out, in)
	f := c.scale(new(big.Float), p)
	out.SetPrec(p).Mul(in, f)
	if c.offset != nil {
		out.Add(out, new(big.Float).SetPrec(p).SetRat(c.offset))
	}
	return out
}

func (c *Linear) FromBase(out, in *big.Float) *big.Float {
	p := precOf(out, in)
	f := c.scale(new(big.Float), p)
	out.SetPrec(p).Set(in)
	if c.offset != nil {
		out.Sub(out, new(big.Float).SetPrec(p).SetRat(c.offset))
	}
	return out.Quo(out, f)
}

// Constant is a virtual unit in the Dynamic space which multiplies values
// by a fixed amount. Derived units use constants for multipliers that are
// not powers of ten.
type Constant struct {
	text  string
	value *big.Rat
}

// NewConstant creates a constant unit from an exact decimal or fractional
// number.
func NewConstant(value string) (*Constant, error) {
	v, ok := new(big.Rat).SetString(value)
	if !ok || v.Sign() == 0 {
		return nil, &DefinitionError{Name: value, Reason: "invalid constant"}
	}
	return &Constant{text: value, value: v}, nil
}

func constant(value string) *Constant {
	c, err := NewConstant(value)
	if err != nil {
		panic("units: " + err.Error())
	}
	return c
}

// one is the constant that carries metric prefixes applied to derived units.
var one = constant("1")

func (c *Constant) Name() string      { return "×" + c.text }
func (c *Constant) Space() Space      { return Dynamic }
func (c *Constant) Aliases() []string { return nil }
func (c *Constant) Metric() bool      { return false }

func (c *Constant) ToBase(out, in *big.Float) *big.Float {
	p := precOf(out, in)
	return out.SetPrec(p).Mul(in, new(big.Float).SetPrec(p).SetRat(c.value))
}

func (c *Constant) FromBase(out, in *big.Float) *big.Float {
	p := precOf(out, in)
	return out.SetPrec(p).Quo(in, new(big.Float).SetPrec(p).SetRat(c.value))
}

// IsSpecial reports whether a conversion is a virtual unit that does not
// contribute to dimensions.
func IsSpecial(c Conversion) bool {
	return c.Space() == Dynamic
}

// precOf gives the precision to use for an operation writing to out.
func precOf(out, in *big.Float) uint {
	if p := out.Prec(); p != 0 {
		return p
	}
	if p := in.Prec(); p != 0 {
		return p
	}
	return DefaultPrec
}

// DefaultPrec is the precision of conversions when no other is given.
const DefaultPrec = 64

var (
	_ Conversion = (*Linear)(nil)
	_ Conversion = (*Constant)(nil)
)
