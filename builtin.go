package units

// Base units by space. The first unit of each space is its base unit.
var (
	radian    = linear("radian", Angle, "1", "rad").withMetric()
	steradian = linear("steradian", Angle, "1", "sr").withMetric()
	turn      = linear("turn", Angle, "2", "tr", "pla").withPi().withMetric()
	degree    = linear("degree", Angle, "1/180", "deg", "°").withPi()
	gradian   = linear("gradian", Angle, "1/200", "grad", "gon").withPi().withMetric()

	ampere = linear("ampere", ElectricCurrent, "1", "A", "amp").withMetric()

	meter        = linear("meter", Length, "1", "m", "metre").withMetric()
	inch         = linear("inch", Length, "0.0254", "in")
	thou         = linear("thou", Length, "0.0000254", "mil")
	foot         = linear("foot", Length, "0.3048", "ft", "feet")
	yard         = linear("yard", Length, "0.9144", "yd")
	mile         = linear("mile", Length, "1609.344", "mi")
	league       = linear("league", Length, "4828.0417")
	nauticalMile = linear("nautical mile", Length, "1852", "nmi")

	candela     = linear("candela", LuminousIntensity, "1", "cd").withMetric()
	hefnerkerze = linear("hefnerkerze", LuminousIntensity, "0.903", "hk")

	gram  = linear("gram", Mass, "1", "g").withMetric()
	tonne = linear("tonne", Mass, "1000000", "t")
	pound = linear("pound", Mass, "453.59237", "lb")
	ounce = linear("ounce", Mass, "28.349523125", "oz")

	number = linear("number", Quantity, "1", "n", "num", "x").withMetric()
	mole   = linear("mole", Quantity, "6.02214076e23", "mol").withMetric()

	kelvin     = linear("kelvin", Temperature, "1", "K", "k", "degk")
	celsius    = linear("celsius", Temperature, "1", "c", "degc", "°C").withOffset("273.15")
	fahrenheit = linear("fahrenheit", Temperature, "5/9", "f", "degf", "°F").withOffset("45967/180")
	rankine    = linear("rankine", Temperature, "5/9", "r", "degr", "°R")

	second  = linear("second", Time, "1", "s", "sec").withMetric()
	minute  = linear("minute", Time, "60", "min")
	hour    = linear("hour", Time, "3600", "h", "hr")
	day     = linear("day", Time, "86400", "D")
	week    = linear("week", Time, "604800", "wk")
	sol     = linear("sol", Time, "88740.244")
	julian  = linear("julian year", Time, "31557600")
	ftn     = linear("fortnight", Time, "1209600", "ftn")
	planck  = linear("planck time", Time, "5.391247e-44", "tp")
	atom    = linear("atom", Time, "0.15957")
	mvey    = linear("martian vernal equinox year", Time, "59264867.1384")
	ghurry  = linear("ghurry", Time, "1440")
	lustre  = linear("lustre", Time, "157788000")
	nundine = linear("nundine", Time, "777600")
	punct   = linear("punct", Time, "900")
	quadr   = linear("quadrant", Time, "21600")
	quinz   = linear("quinzieme", Time, "1296000", "quinzième")
	jubilee = linear("jubilee", Time, "1577880000")
	sday    = linear("sidereal day", Time, "86164.0891217")
	shake   = linear("shake", Time, "1e-8")
	jiffy   = linear("jiffy", Time, "3.33564e-11")
	galyear = linear("galactic year", Time, "19440000e6")
	kermit  = linear("kermit", Time, "864")
	third   = linear("third", Time, "1/60")
	fourth  = linear("fourth", Time, "1/3600")
)

// Derived unit expansions shared by several definitions.
var (
	newtonUnits = []Unit{{gram, 1, 3}, {meter, 1, 0}, {second, -2, 0}}
	jouleUnits  = []Unit{{gram, 1, 3}, {meter, 2, 0}, {second, -2, 0}}
	wattUnits   = []Unit{{gram, 1, 3}, {meter, 2, 0}, {second, -3, 0}}
	pascalUnits = []Unit{{gram, 1, 3}, {meter, -1, 0}, {second, -2, 0}}
	voltUnits   = []Unit{{gram, 1, 3}, {meter, 2, 0}, {second, -3, 0}, {ampere, -1, 0}}
	coulombUnit = []Unit{{ampere, 1, 0}, {second, 1, 0}}
	luxUnits    = []Unit{{candela, 1, 0}, {steradian, 1, 0}, {meter, -2, 0}}
	doseUnits   = []Unit{{meter, 2, 0}, {second, -2, 0}}
	hertzUnits  = []Unit{{second, -1, 0}}
)

// scaled returns units followed by a constant multiplier of value·10^scale.
func scaled(units []Unit, value string, scale float64) []Unit {
	r := make([]Unit, len(units), len(units)+1)
	copy(r, units)
	return append(r, Unit{constant(value), 1, scale})
}

var watt = &Derived{Name: "watt", Aliases: []string{"W"}, Metric: true, Expand: wattUnits}

func builtins() []Definition {
	var defs []Definition
	for _, c := range []Conversion{
		radian, steradian, turn, degree, gradian,
		ampere,
		meter, inch, thou, foot, yard, mile, league, nauticalMile,
		candela, hefnerkerze,
		gram, tonne, pound, ounce,
		number, mole,
		kelvin, celsius, fahrenheit, rankine,
		second, minute, hour, day, week, sol, julian, ftn, planck, atom, mvey,
		ghurry, lustre, nundine, punct, quadr, quinz, jubilee, sday, shake,
		jiffy, galyear, kermit, third, fourth,
	} {
		defs = append(defs, Definition{Conversion: c})
	}
	for _, d := range []*Derived{
		// force
		{Name: "newton", Aliases: []string{"N"}, Metric: true, Expand: newtonUnits},
		{Name: "pound force", Aliases: []string{"lbf"}, Metric: true, Expand: scaled(newtonUnits, "4.448222", 0)},
		{Name: "dyne", Aliases: []string{"dyn"}, Expand: scaled(newtonUnits, "1", -5)},
		{Name: "kip", Expand: scaled(newtonUnits, "4448.222", 0)},
		{Name: "kilopond", Aliases: []string{"kp"}, Expand: scaled(newtonUnits, "9.80665", 0)},
		{Name: "poundal", Aliases: []string{"pdl"}, Expand: []Unit{{pound, 1, 0}, {foot, 1, 0}, {second, -2, 0}}},
		// energy and power
		{Name: "joule", Aliases: []string{"J"}, Metric: true, Expand: jouleUnits},
		watt,
		{Name: "btu", Aliases: []string{"BTU"}, Metric: true, Expand: scaled(jouleUnits, "1055.06", 0)},
		{Name: "calorie", Aliases: []string{"cal"}, Metric: true, Expand: scaled(jouleUnits, "4.184", 0)},
		{Name: "electronvolt", Aliases: []string{"eV"}, Metric: true, Expand: scaled(jouleUnits, "1.602176634", -19)},
		{Name: "erg", Metric: true, Expand: scaled(jouleUnits, "1", -7)},
		// electricity
		{Name: "volt", Aliases: []string{"V"}, Metric: true, Expand: voltUnits},
		{Name: "statvolt", Aliases: []string{"statV"}, Metric: true, Expand: scaled(voltUnits, "299.792458", 0)},
		{Name: "coulomb", Aliases: []string{"C"}, Metric: true, Expand: coulombUnit},
		{Name: "elementary charge", Aliases: []string{"e"}, Metric: true, Expand: scaled(coulombUnit, "1.602176634", -19)},
		{Name: "faraday", Metric: true, Expand: scaled(coulombUnit, "96485.3321233100184", 0)},
		{Name: "ampere hour", Aliases: []string{"Ah"}, Metric: true, Expand: []Unit{{ampere, 1, 0}, {hour, 1, 0}}},
		// frequency and radioactivity
		{Name: "hertz", Aliases: []string{"Hz"}, Metric: true, Expand: hertzUnits},
		{Name: "becquerel", Aliases: []string{"Bq"}, Metric: true, Expand: hertzUnits},
		{Name: "curie", Aliases: []string{"Ci"}, Metric: true, Expand: scaled(hertzUnits, "37", 9)},
		{Name: "rutherford", Aliases: []string{"Rd"}, Metric: true, Expand: scaled(hertzUnits, "1", 6)},
		// pressure
		{Name: "pascal", Aliases: []string{"Pa"}, Metric: true, Expand: pascalUnits},
		{Name: "psi", Metric: true, Expand: scaled(pascalUnits, "6.894757", 3)},
		{Name: "bar", Metric: true, Expand: scaled(pascalUnits, "100", 3)},
		{Name: "atmosphere", Aliases: []string{"atm"}, Expand: scaled(pascalUnits, "101.325", 3)},
		{Name: "torr", Expand: scaled(pascalUnits, "133.322", 0)},
		// illuminance
		{Name: "lux", Aliases: []string{"lx"}, Metric: true, Expand: luxUnits},
		{Name: "phot", Aliases: []string{"ph"}, Expand: scaled(luxUnits, "1", 4)},
		{Name: "footcandle", Aliases: []string{"foot candle", "fc"}, Expand: scaled(luxUnits, "10.763910416709722", 0)},
		// radiation dose
		{Name: "gray", Aliases: []string{"Gy"}, Metric: true, Expand: doseUnits},
		{Name: "radiation unit", Metric: true, Expand: scaled(doseUnits, "1", -2)},
		{Name: "sievert", Aliases: []string{"Sv"}, Metric: true, Expand: doseUnits},
		{Name: "rem", Metric: true, Expand: scaled(doseUnits, "1", -2)},
		// area and volume
		{Name: "hectare", Aliases: []string{"ha"}, Expand: []Unit{{meter, 2, 0}, {constant("1"), 1, 4}}},
		{Name: "acre", Aliases: []string{"ac"}, Expand: []Unit{{meter, 2, 0}, {constant("4046.8564224"), 1, 0}}},
		{Name: "litre", Aliases: []string{"L", "l", "liter"}, Metric: true, Expand: []Unit{{meter, 3, 0}, {constant("1"), 1, -3}}},
		{Name: "gallon", Aliases: []string{"gal"}, Expand: []Unit{{meter, 3, 0}, {constant("3.785411784"), 1, -3}}},
	} {
		defs = append(defs, Definition{Derived: d})
	}
	for _, s := range []*Shorthand{
		{Name: "watt hour", Aliases: []string{"Wh"}, Metric: true, Parts: []Part{{Derived: watt, Power: 1}, {Conversion: hour, Power: 1}}},
		{Name: "miles per hour", Aliases: []string{"mph"}, Parts: []Part{{Conversion: mile, Power: 1}, {Conversion: hour, Power: -1}}},
		{Name: "kilometers per hour", Aliases: []string{"kph", "kmh"}, Parts: []Part{{Conversion: meter, Power: 1, Scale: 3}, {Conversion: hour, Power: -1}}},
		{Name: "knot", Aliases: []string{"kn", "kt"}, Parts: []Part{{Conversion: nauticalMile, Power: 1}, {Conversion: hour, Power: -1}}},
		{Name: "revolutions per minute", Aliases: []string{"rpm"}, Parts: []Part{{Conversion: turn, Power: 1}, {Conversion: minute, Power: -1}}},
	} {
		defs = append(defs, Definition{Shorthand: s})
	}
	return defs
}
