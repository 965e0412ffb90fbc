package units

import (
	"strconv"
	"strings"
)

var superscripts = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
	"-", "⁻", "+", "⁺", ".", "·", "e", "ᵉ",
)

// superscript formats a number with superscript characters.
func superscript(x float64) string {
	return superscripts.Replace(strconv.FormatFloat(x, 'g', -1, 64))
}

func (u Unit) String() string {
	var b strings.Builder
	if u.Scale != 0 {
		b.WriteString("10" + superscript(u.Scale) + " ")
	}
	b.WriteString(u.Conversion.Name())
	if u.Power != 1 {
		b.WriteString(superscript(u.Power))
	}
	return b.String()
}

// bracketed writes each non-special unit as [name]ᵖ, using name to choose
// the text in brackets.
func bracketed(units []Unit, name func(Unit) string) string {
	var b strings.Builder
	for _, u := range units {
		if IsSpecial(u.Conversion) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("[" + name(u) + "]")
		if u.Power != 1 {
			b.WriteString(superscript(u.Power))
		}
	}
	if b.Len() == 0 {
		return "dimensionless"
	}
	return b.String()
}
