package units

// parseTree tokenizes and treeifies a unit expression.
func parseTree(src string, ctx parsectx) (*token, error) {
	toks, err := tokenize(src, ctx, 0)
	if err != nil {
		return nil, err
	}
	return treeify(toks, 1, false)
}

// treeify builds an expression tree from a token sequence. The highest
// precedence operator is reduced first, and among operators of equal
// precedence the leftmost, so all operators are left-associative. pos and
// group describe the sequence for errors about it being empty.
func treeify(toks []*token, pos int, group bool) (*token, error) {
	switch len(toks) {
	case 0:
		return nil, &EmptyExpressionError{Col: pos, Group: group}
	case 1:
		return operand(toks[0])
	}
	// Operators may not start or end the sequence or be adjacent.
	var live [4]int
	for i, t := range toks {
		if t.kind != tokenOp {
			continue
		}
		if i == 0 || i == len(toks)-1 || toks[i-1].kind == tokenOp {
			return nil, &OperandError{Col: t.pos, Op: t.op}
		}
		live[t.op.precedence()]++
	}
	toks = append([]*token(nil), toks...)
	for len(toks) > 1 {
		level := 0
		for l := len(live) - 1; l > 0; l-- {
			if live[l] > 0 {
				level = l
				break
			}
		}
		if level == 0 {
			return nil, &MissingOperatorError{Col: adjacent(toks)}
		}
		for i, t := range toks {
			if t.kind != tokenOp || t.op.precedence() != level {
				continue
			}
			left, err := operand(toks[i-1])
			if err != nil {
				return nil, err
			}
			right, err := operand(toks[i+1])
			if err != nil {
				return nil, err
			}
			tree := &token{kind: tokenTree, op: t.op, left: left, right: right, pos: t.pos}
			toks[i-1] = tree
			toks = append(toks[:i], toks[i+2:]...)
			live[level]--
			break
		}
	}
	return toks[0], nil
}

// operand prepares a token to be an operand of a tree or the root.
func operand(t *token) (*token, error) {
	switch t.kind {
	case tokenGroup:
		return treeify(t.group, t.pos, true)
	case tokenUnit, tokenNum, tokenTree:
		return t, nil
	case tokenOp:
		return nil, &OperandError{Col: t.pos, Op: t.op}
	default:
		panic("units: invalid token kind " + t.kind.String() + " in treeify")
	}
}

// adjacent returns the position of the first operand that follows another
// operand.
func adjacent(toks []*token) int {
	for i := 1; i < len(toks); i++ {
		if toks[i].kind != tokenOp && toks[i-1].kind != tokenOp {
			t := toks[i]
			for t.kind == tokenTree {
				t = t.left
			}
			return t.pos
		}
	}
	panic("units: no adjacent operands in " + fmtTokens(toks))
}
