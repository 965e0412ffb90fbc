package units

// Prefix is a metric prefix that scales a unit by a power of ten.
type Prefix struct {
	// Name is the full prefix, e.g. "kilo".
	Name string
	// Symbols are the short forms, e.g. "k". Symbols match case-sensitively.
	Symbols []string
	// Power is the base-10 exponent, e.g. 3 for kilo.
	Power int
}

// MetricPrefixes lists the SI prefixes. Resolution tries longer spellings
// first, so the order here does not matter.
var MetricPrefixes = []Prefix{
	{"quetta", []string{"Q"}, 30},
	{"ronna", []string{"R"}, 27},
	{"yotta", []string{"Y"}, 24},
	{"zetta", []string{"Z"}, 21},
	{"exa", []string{"E"}, 18},
	{"peta", []string{"P"}, 15},
	{"tera", []string{"T"}, 12},
	{"giga", []string{"G"}, 9},
	{"mega", []string{"M"}, 6},
	{"kilo", []string{"k"}, 3},
	{"hecto", []string{"h"}, 2},
	{"deca", []string{"da"}, 1},
	{"deci", []string{"d"}, -1},
	{"centi", []string{"c"}, -2},
	{"milli", []string{"m"}, -3},
	{"micro", []string{"µ", "μ", "u"}, -6},
	{"nano", []string{"n"}, -9},
	{"pico", []string{"p"}, -12},
	{"femto", []string{"f"}, -15},
	{"atto", []string{"a"}, -18},
	{"zepto", []string{"z"}, -21},
	{"yocto", []string{"y"}, -24},
	{"ronto", []string{"r"}, -27},
	{"quecto", []string{"q"}, -30},
}

// prefixSpelling is one way to write a prefix.
type prefixSpelling struct {
	text string
	fold bool
	p    *Prefix
}

// spellings returns every spelling of the given prefixes, longest first.
func spellings(prefixes []Prefix) []prefixSpelling {
	var r []prefixSpelling
	for i := range prefixes {
		p := &prefixes[i]
		r = append(r, prefixSpelling{text: p.Name, fold: true, p: p})
		if p.Name == "deca" {
			r = append(r, prefixSpelling{text: "deka", fold: true, p: p})
		}
		for _, s := range p.Symbols {
			r = append(r, prefixSpelling{text: s, p: p})
		}
	}
	// Insertion sort by decreasing length so "da" wins over "d".
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && len(r[j].text) > len(r[j-1].text); j-- {
			r[j], r[j-1] = r[j-1], r[j]
		}
	}
	return r
}
