package units

// expander flattens an expression tree into units with net powers.
type expander struct {
	units  []Unit
	spaces map[Space]float64
}

// expand walks t with an accumulated power. Exponents multiply the power of
// their base and division negates the power of its right side.
func (e *expander) expand(t *token, power float64) error {
	switch t.kind {
	case tokenTree:
		switch t.op {
		case OpPow:
			if t.right.kind != tokenNum {
				return &ExponentError{Col: t.right.pos}
			}
			return e.expand(t.left, power*t.right.num)
		case OpDiv:
			if err := e.expand(t.left, power); err != nil {
				return err
			}
			return e.expand(t.right, -power)
		default:
			if err := e.expand(t.left, power); err != nil {
				return err
			}
			return e.expand(t.right, power)
		}
	case tokenUnit:
		u := t.unit
		u.Power *= power
		if !validPower(u.Power) {
			return &PowerError{Col: t.pos, Unit: u.Conversion.Name(), Power: u.Power}
		}
		e.units = append(e.units, u)
		if !IsSpecial(u.Conversion) {
			e.spaces[u.Conversion.Space()] += u.Power
		}
		return nil
	case tokenGroup:
		for _, c := range t.group {
			if c.kind == tokenOp {
				continue
			}
			if err := e.expand(c, power); err != nil {
				return err
			}
		}
		return nil
	case tokenNum:
		return &NumberError{Col: t.pos, Num: t.num}
	default:
		panic("units: invalid token kind " + t.kind.String() + " in expand")
	}
}
