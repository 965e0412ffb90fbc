// Package units parses unit expressions and converts values between them.
//
// A unit expression is unit names joined by "*", "/", and "^", with
// parentheses for grouping: "m/s^2", "kg*m/(s*s)", "kWh". Power binds
// tighter than multiplication and division, and all operators are
// left-associative, so "m/s/s" is the same as "m/s^2". Whitespace separates
// tokens and does not imply multiplication; names with spaces are written
// with "_" or "-", as in "nautical_mile". Metric units accept SI prefixes
// by name or symbol.
//
// Parse turns an expression into Dimensions. Two Dimensions with the same
// net power of every physical space, e.g. "N" and "kg*m/s^2", are Equal, and
// values may be converted between them with Convert. Conversions are done
// with arbitrary-precision floats, so offsets like those of temperature
// scales work as expected.
//
// Units come from a Table. The default table holds the built-in units;
// LoadDefinitions extends it with units described in YAML or TOML.
package units
