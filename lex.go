package units

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	ctx  parsectx
	toks []*token
	buf  strings.Builder
	// bufpos is the position of the first rune in buf.
	bufpos int
}

// tokenize converts a unit expression into tokens. base is the position of
// the rune before src in the full input, so that token positions count from
// the start of the outermost expression.
func tokenize(src string, ctx parsectx, base int) ([]*token, error) {
	l := lexer{ctx: ctx}
	var (
		group    strings.Builder
		depth    int
		groupcol int
	)
	col := base
	for _, r := range src {
		col++
		if depth > 0 {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					sub, err := tokenize(group.String(), ctx, groupcol)
					if err != nil {
						return nil, err
					}
					l.toks = append(l.toks, &token{kind: tokenGroup, group: sub, pos: groupcol})
					group.Reset()
					continue
				}
			}
			group.WriteRune(r)
			continue
		}
		switch {
		case r == '(':
			if err := l.flush(); err != nil {
				return nil, err
			}
			depth = 1
			groupcol = col
		case r == ')':
			return nil, &BracketError{Col: col, Right: ")"}
		case unicode.IsSpace(r):
			if err := l.flush(); err != nil {
				return nil, err
			}
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				if err := l.flush(); err != nil {
					return nil, err
				}
				l.toks = append(l.toks, &token{kind: tokenOp, op: opkinds[opindex(k)], pos: col})
				continue
			}
			if l.buf.Len() == 0 {
				l.bufpos = col
			}
			l.buf.WriteRune(r)
		}
	}
	if depth > 0 {
		return nil, &BracketError{Col: groupcol, Left: "("}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// opindex converts a byte index into Operators to a rune index.
func opindex(k int) int {
	return len([]rune(Operators[:k]))
}

// flush resolves the pending text to a number or unit tokens.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	text := l.buf.String()
	l.buf.Reset()
	pos := l.bufpos
	if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		l.toks = append(l.toks, &token{kind: tokenNum, num: f, pos: pos})
		return nil
	}
	name := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, text)
	d, p, ok := l.ctx.resolve(name)
	if !ok {
		return &TokenError{Col: pos, Text: text}
	}
	var scale float64
	if p != nil {
		scale = float64(p.Power)
	}
	l.toks = append(l.toks, definitionToken(d, scale, pos))
	return nil
}

// definitionToken creates the token for a resolved definition. Units become
// single unit tokens. Derived units and shorthands become groups multiplying
// their constituents, with any prefix scale carried by a constant.
func definitionToken(d Definition, scale float64, pos int) *token {
	switch {
	case d.Conversion != nil:
		return &token{kind: tokenUnit, unit: Unit{Conversion: d.Conversion, Power: 1, Scale: scale}, pos: pos}
	case d.Derived != nil:
		return derivedToken(d.Derived, 1, scale, pos)
	case d.Shorthand != nil:
		var toks []*token
		for _, p := range d.Shorthand.Parts {
			if p.Derived != nil {
				toks = appendMul(toks, derivedToken(p.Derived, p.Power, p.Scale, pos))
				continue
			}
			toks = appendMul(toks, &token{kind: tokenUnit, unit: Unit{Conversion: p.Conversion, Power: p.Power, Scale: p.Scale}, pos: pos})
		}
		if scale != 0 {
			toks = appendMul(toks, &token{kind: tokenUnit, unit: Unit{Conversion: one, Power: 1, Scale: scale}, pos: pos})
		}
		return &token{kind: tokenGroup, group: toks, pos: pos}
	default:
		panic("units: empty definition")
	}
}

// derivedToken expands a derived unit to a group. A power other than 1
// raises the whole group.
func derivedToken(d *Derived, power, scale float64, pos int) *token {
	var toks []*token
	for _, u := range d.Expand {
		toks = appendMul(toks, &token{kind: tokenUnit, unit: u, pos: pos})
	}
	if scale != 0 {
		toks = appendMul(toks, &token{kind: tokenUnit, unit: Unit{Conversion: one, Power: 1, Scale: scale}, pos: pos})
	}
	g := &token{kind: tokenGroup, group: toks, pos: pos}
	if power == 1 {
		return g
	}
	return &token{
		kind: tokenGroup,
		group: []*token{
			g,
			{kind: tokenOp, op: OpPow, pos: pos},
			{kind: tokenNum, num: power, pos: pos},
		},
		pos: pos,
	}
}

// appendMul appends t to toks, preceded by a multiplication if toks is not
// empty.
func appendMul(toks []*token, t *token) []*token {
	if len(toks) > 0 {
		toks = append(toks, &token{kind: tokenOp, op: OpMul, pos: t.pos})
	}
	return append(toks, t)
}

// scanNum returns the length in bytes of the number at the start of s, or 0
// if s does not start with a number. A number is an optional sign, digits
// with at most one decimal point, and an optional exponent which may be
// signed.
func scanNum(s string) int {
	var dig, dot, e, le, ed bool
	i, end := 0, 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for ; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			if dot || e {
				return end
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return end
			}
			e = true
			le = true
		case '+', '-':
			// A sign anywhere other than immediately following an exponent
			// marker ends the number.
			if !le {
				return end
			}
			le = false
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return end
		}
		if (dig && !e) || ed {
			end = i + 1
		}
	}
	return end
}
