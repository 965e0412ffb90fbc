package units

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	tableopt    struct{ t *Table }
	noprefixopt struct{}
)

// parsectx holds general data for parsing.
type parsectx struct {
	// table resolves unit names. nil means the default table.
	table *Table
	// noprefix disables metric prefix resolution.
	noprefix bool
}

func newParsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.table == nil {
		p.table = Default()
	}
	return p
}

// resolve finds the definition for a unit name.
func (p parsectx) resolve(name string) (Definition, *Prefix, bool) {
	if p.noprefix {
		d, ok := p.table.Lookup(name)
		return d, nil, ok
	}
	return p.table.Resolve(name)
}

// WithTable sets the table used to resolve unit names. The default is the
// built-in table returned by Default.
func WithTable(t *Table) ParseOption {
	return tableopt{t}
}

func (o tableopt) parseOption(p parsectx) parsectx {
	p.table = o.t
	return p
}

// NoPrefixes disables metric prefixes, so that only exact unit names and
// aliases are recognized.
func NoPrefixes() ParseOption {
	return noprefixopt{}
}

func (noprefixopt) parseOption(p parsectx) parsectx {
	p.noprefix = true
	return p
}
