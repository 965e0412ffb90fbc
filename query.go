package units

import (
	"math/big"
	"strings"
	"unicode/utf8"
)

// Query is a request to convert a value between two unit expressions, e.g.
// "10 km/h => mph".
type Query struct {
	// Value is the value to convert. It is 1 if the query has no number.
	Value *big.Float
	// From and To are the unit expressions.
	From, To string
}

// Separators are the spellings that divide the two sides of a query, in
// the order they are tried.
var Separators = []string{"=>", "->", " to ", " in "}

// ParseQuery splits a conversion query into its value and unit expressions.
// The value is parsed to the given precision, or DefaultPrec if prec is 0.
func ParseQuery(s string, prec uint) (*Query, error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	rest := strings.TrimSpace(s)
	col := 1 + utf8.RuneCountInString(s[:strings.Index(s, rest)])
	q := Query{Value: new(big.Float).SetPrec(prec).SetInt64(1)}
	if n := scanNum(rest); n > 0 {
		v, _, err := big.ParseFloat(rest[:n], 10, prec, big.ToNearestEven)
		if err != nil {
			return nil, &QueryError{Col: col, Query: s, Reason: "invalid number " + rest[:n]}
		}
		q.Value = v
		rest = strings.TrimSpace(rest[n:])
	}
	if rest == "" {
		return nil, &QueryError{Col: col, Query: s, Reason: "missing units"}
	}
	for _, sep := range Separators {
		off := 0
		for {
			k := strings.Index(rest[off:], sep)
			if k < 0 {
				break
			}
			k += off
			from, to := strings.TrimSpace(rest[:k]), strings.TrimSpace(rest[k+len(sep):])
			if from != "" && to != "" {
				q.From, q.To = from, to
				return &q, nil
			}
			off = k + 1
		}
	}
	return nil, &QueryError{Col: col, Query: s, Reason: "expected <units> => <units>"}
}

// Result is the outcome of a conversion query.
type Result struct {
	Query *Query
	// From and To are the parsed unit expressions.
	From, To *Dimensions
	// Value is the converted value.
	Value *big.Float
}

// Eval parses and evaluates a conversion query using the given table, or
// the default table if t is nil. If the two sides have different
// dimensions, the error is a *DimensionError.
func Eval(src string, t *Table, opts ...ConvertOption) (*Result, error) {
	c := convertctx{prec: DefaultPrec}
	for _, opt := range opts {
		opt.convertOption(&c)
	}
	q, err := ParseQuery(src, c.prec)
	if err != nil {
		return nil, err
	}
	var popts []ParseOption
	if t != nil {
		popts = append(popts, WithTable(t))
	}
	from, err := Parse(q.From, popts...)
	if err != nil {
		return nil, err
	}
	to, err := Parse(q.To, popts...)
	if err != nil {
		return nil, err
	}
	if !from.Equal(to) {
		return nil, &DimensionError{From: from, To: to}
	}
	v, err := from.Convert(to, q.Value, opts...)
	if err != nil {
		return nil, err
	}
	return &Result{Query: q, From: from, To: to, Value: v}, nil
}
