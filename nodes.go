package units

import (
	"strconv"
	"strings"
)

// token is an element of a unit expression. Tokenizing produces units,
// numbers, operators, and groups; treeifying replaces groups and operators
// with trees.
type token struct {
	kind tokenKind

	unit  Unit
	num   float64
	op    Op
	group []*token

	left  *token
	right *token

	// pos is the column of the token in the original input.
	pos int
}

type tokenKind int8

const (
	tokenNone tokenKind = iota

	tokenUnit  // unit reference with local power and scale
	tokenNum   // number literal, valid only as an exponent
	tokenOp    // operator awaiting treeification
	tokenGroup // parenthesized sub-expression
	tokenTree  // op applied to left and right
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.29.0 -type=tokenKind -trimprefix=token

// Op is a binary operator in a unit expression.
type Op int8

const (
	OpMul Op = iota
	OpDiv
	OpPow
)

// precedence gives the binding strength of an operator. Higher binds
// tighter.
func (op Op) precedence() int {
	switch op {
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		panic("units: invalid operator " + op.String())
	}
}

func (op Op) String() string {
	switch op {
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Operators contains the runes which are considered to be operators, and
// opkinds the operator each one means.
const Operators = "*/^×÷·"

var opkinds = []Op{OpMul, OpDiv, OpPow, OpMul, OpDiv, OpMul}

func (t *token) String() string {
	var b strings.Builder
	t.fmt(&b, false)
	return b.String()
}

// fmt writes the token. Trees are written with alternating round and square
// brackets around each operand so that the structure is visible.
func (t *token) fmt(b *strings.Builder, square bool) {
	switch t.kind {
	case tokenUnit:
		b.WriteString(t.unit.String())
	case tokenNum:
		b.WriteString(strconv.FormatFloat(t.num, 'g', -1, 64))
	case tokenOp:
		b.WriteString(t.op.String())
	case tokenGroup:
		b.WriteByte('{')
		for i, c := range t.group {
			if i > 0 {
				b.WriteByte(' ')
			}
			c.fmt(b, square)
		}
		b.WriteByte('}')
	case tokenTree:
		var l, r byte = '(', ')'
		if square {
			l, r = '[', ']'
		}
		b.WriteByte(l)
		t.left.fmt(b, !square)
		b.WriteString(" " + t.op.String() + " ")
		t.right.fmt(b, !square)
		b.WriteByte(r)
	default:
		panic("units: invalid token kind " + t.kind.String() + " after writing " + b.String())
	}
}

// fmtTokens writes a token sequence separated by spaces.
func fmtTokens(toks []*token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.fmt(&b, false)
	}
	return b.String()
}
