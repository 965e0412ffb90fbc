package units

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Derived is a named product of units, e.g. newton = kg·m·s⁻².
type Derived struct {
	// Name is the canonical name. Names match case-insensitively.
	Name string
	// Aliases are alternative spellings, matched case-sensitively.
	Aliases []string
	// Metric reports whether the unit accepts metric prefixes.
	Metric bool
	// Expand is the product the unit stands for. Multipliers that are not
	// powers of ten are carried by Constant units.
	Expand []Unit
}

// Shorthand is a named composite of units multiplied together, e.g.
// mph = mile·hour⁻¹. Unlike a derived unit, a shorthand's parts may
// themselves be derived units.
type Shorthand struct {
	Name    string
	Aliases []string
	Metric  bool
	Parts   []Part
}

// Part is one factor of a shorthand. Exactly one of Conversion and Derived
// is set.
type Part struct {
	Conversion Conversion
	Derived    *Derived
	Power      float64
	Scale      float64
}

// Definition is the result of a unit lookup. Exactly one field is non-nil.
type Definition struct {
	Conversion Conversion
	Derived    *Derived
	Shorthand  *Shorthand
}

// Name returns the canonical name of the definition.
func (d Definition) Name() string {
	switch {
	case d.Conversion != nil:
		return d.Conversion.Name()
	case d.Derived != nil:
		return d.Derived.Name
	case d.Shorthand != nil:
		return d.Shorthand.Name
	default:
		return ""
	}
}

// Aliases returns the aliases of the definition.
func (d Definition) Aliases() []string {
	switch {
	case d.Conversion != nil:
		return d.Conversion.Aliases()
	case d.Derived != nil:
		return d.Derived.Aliases
	case d.Shorthand != nil:
		return d.Shorthand.Aliases
	default:
		return nil
	}
}

// Metric reports whether the definition accepts metric prefixes.
func (d Definition) Metric() bool {
	switch {
	case d.Conversion != nil:
		return d.Conversion.Metric()
	case d.Derived != nil:
		return d.Derived.Metric
	case d.Shorthand != nil:
		return d.Shorthand.Metric
	default:
		return false
	}
}

func (d Definition) valid() bool {
	n := 0
	if d.Conversion != nil {
		n++
	}
	if d.Derived != nil {
		n++
	}
	if d.Shorthand != nil {
		n++
	}
	return n == 1
}

// Table is a registry of unit definitions. Lookups on a table are safe for
// concurrent use, but Add is not safe to call concurrently with any other
// method.
type Table struct {
	// names maps case-folded canonical names to definitions.
	names map[string]Definition
	// aliases maps exact aliases to definitions.
	aliases map[string]Definition
	// defs is every definition in the order added.
	defs []Definition
	// prefixes are the metric prefixes the table resolves, longest first.
	prefixes []prefixSpelling
}

// NewTable creates an empty table that resolves MetricPrefixes.
func NewTable() *Table {
	return &Table{
		names:    make(map[string]Definition),
		aliases:  make(map[string]Definition),
		prefixes: spellings(MetricPrefixes),
	}
}

// Default returns the built-in unit table. The result is shared and must
// not be modified; use Clone to extend it.
func Default() *Table {
	return defaultTable()
}

var defaultTable = sync.OnceValue(func() *Table {
	t := NewTable()
	for _, d := range builtins() {
		if err := t.Add(d); err != nil {
			panic("units: built-in table: " + err.Error())
		}
	}
	return t
})

// Clone returns a copy of the table which may be extended independently.
func (t *Table) Clone() *Table {
	n := &Table{
		names:    make(map[string]Definition, len(t.names)),
		aliases:  make(map[string]Definition, len(t.aliases)),
		defs:     append([]Definition(nil), t.defs...),
		prefixes: t.prefixes,
	}
	for k, v := range t.names {
		n.names[k] = v
	}
	for k, v := range t.aliases {
		n.aliases[k] = v
	}
	return n
}

// Add registers a definition. Names and aliases are globally unique within
// a table; if any spelling of d is already in use, Add returns a
// *CollisionError and the table is unchanged.
func (t *Table) Add(d Definition) error {
	if !d.valid() {
		return &DefinitionError{Name: d.Name(), Reason: "definition must set exactly one kind"}
	}
	name := d.Name()
	if name == "" {
		return &DefinitionError{Reason: "empty unit name"}
	}
	if d.Shorthand != nil {
		for _, p := range d.Shorthand.Parts {
			if (p.Conversion == nil) == (p.Derived == nil) {
				return &DefinitionError{Name: name, Reason: "shorthand part must be a unit or a derived unit"}
			}
		}
	}
	key := fold(name)
	if t.taken(key) || t.taken(name) {
		return &CollisionError{Name: name}
	}
	// An existing alias that matches the new name case-insensitively would
	// hide it for that spelling.
	for a := range t.aliases {
		if fold(a) == key {
			return &CollisionError{Name: name}
		}
	}
	seen := map[string]bool{key: true, name: true}
	for _, a := range d.Aliases() {
		if a == "" {
			return &DefinitionError{Name: name, Reason: "empty alias"}
		}
		if seen[a] || t.taken(a) {
			return &CollisionError{Name: a}
		}
		// Aliases are checked before names, so an alias spelled like an
		// existing name in another case would shadow it.
		if _, ok := t.names[fold(a)]; ok {
			return &CollisionError{Name: a}
		}
		seen[a] = true
	}
	t.names[key] = d
	for _, a := range d.Aliases() {
		t.aliases[a] = d
	}
	t.defs = append(t.defs, d)
	return nil
}

// taken reports whether s is already a name or alias in the table.
func (t *Table) taken(s string) bool {
	if _, ok := t.aliases[s]; ok {
		return true
	}
	_, ok := t.names[s]
	return ok
}

// Lookup finds a definition by exact alias or case-insensitive name, without
// considering metric prefixes.
func (t *Table) Lookup(name string) (Definition, bool) {
	if d, ok := t.aliases[name]; ok {
		return d, true
	}
	d, ok := t.names[fold(name)]
	return d, ok
}

// Resolve finds a definition by name, allowing a metric prefix on metric
// units. A name that matches a definition exactly is never split into a
// prefix and a unit. The returned prefix is nil if none was used.
func (t *Table) Resolve(name string) (Definition, *Prefix, bool) {
	if d, ok := t.Lookup(name); ok {
		return d, nil, true
	}
	for _, s := range t.prefixes {
		if len(name) <= len(s.text) {
			continue
		}
		head, rest := name[:len(s.text)], name[len(s.text):]
		if head != s.text && !(s.fold && strings.EqualFold(head, s.text)) {
			continue
		}
		if d, ok := t.Lookup(rest); ok && d.Metric() {
			return d, s.p, true
		}
	}
	return Definition{}, nil, false
}

// Definitions returns every definition in the table in the order added.
func (t *Table) Definitions() []Definition {
	return append([]Definition(nil), t.defs...)
}

// fold case-folds a unit name.
func fold(s string) string {
	// Casers carry state, so each call gets its own.
	return cases.Fold().String(s)
}
