package units

import (
	"strconv"
)

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the unclosed open bracket, if any.
	Left string
	// Right is the unopened close bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TokenError is an error indicating text that is neither a number nor a
// known unit. It implements InputError.
type TokenError struct {
	// Col is the position of the start of the token.
	Col int
	// Text is the token.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token: "+err.Text)
}

func (err *TokenError) Pos() int {
	return err.Col
}

// MissingOperatorError is an error indicating two operands with no operator
// between them, e.g. "m s". It implements InputError.
type MissingOperatorError struct {
	// Col is the position of the second operand.
	Col int
}

func (err *MissingOperatorError) Error() string {
	return errpos(err.Col, "missing operator in expression")
}

func (err *MissingOperatorError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator with a missing operand.
// It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op Op
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "operator "+err.Op.String()+" is missing an operand")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ExponentError is an error indicating an exponent that is not a number,
// e.g. "m^s". It implements InputError.
type ExponentError struct {
	// Col is the position of the exponent.
	Col int
}

func (err *ExponentError) Error() string {
	return errpos(err.Col, "invalid exponent, expected number")
}

func (err *ExponentError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a number used where a unit is
// required. Numbers are only valid as exponents. It implements InputError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Num is the number.
	Num float64
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "number "+strconv.FormatFloat(err.Num, 'g', -1, 64)+" is not a unit")
}

func (err *NumberError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or an
// empty pair of parentheses. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the open bracket of an empty group, or 1 if
	// the whole expression is empty.
	Col int
	// Group indicates whether the empty expression is in parentheses.
	Group bool
}

func (err *EmptyExpressionError) Error() string {
	if err.Group {
		return errpos(err.Col, "empty parentheses")
	}
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// PowerError is an error indicating a unit raised to a power that cannot be
// applied by repeated conversion, either because it is not an integer or
// because its magnitude exceeds 1024. It implements InputError.
type PowerError struct {
	// Col is the position of the unit, or 0 if the error occurred during
	// conversion.
	Col int
	// Unit is the name of the unit.
	Unit string
	// Power is the net power of the unit.
	Power float64
}

func (err *PowerError) Error() string {
	return errpos(err.Col, "unit "+err.Unit+" has unsupported power "+strconv.FormatFloat(err.Power, 'g', -1, 64))
}

func (err *PowerError) Pos() int {
	return err.Col
}

// QueryError is an error indicating a conversion query that cannot be
// split into a value and two unit expressions. It implements InputError.
type QueryError struct {
	// Col is the position of the problem.
	Col int
	// Query is the query text.
	Query string
	// Reason describes the problem.
	Reason string
}

func (err *QueryError) Error() string {
	return errpos(err.Col, err.Reason+": "+strconv.Quote(err.Query))
}

func (err *QueryError) Pos() int {
	return err.Col
}

// DimensionError is an error indicating a conversion between unit
// expressions with different dimensions.
type DimensionError struct {
	From, To *Dimensions
}

func (err *DimensionError) Error() string {
	return "cannot convert " + err.From.Simplify().spaceString() + " to " + err.To.Simplify().spaceString()
}

// CollisionError is an error indicating a unit name or alias that is already
// in use in a table.
type CollisionError struct {
	Name string
}

func (err *CollisionError) Error() string {
	return "unit name " + strconv.Quote(err.Name) + " is already defined"
}

// DefinitionError is an error indicating an invalid unit definition.
type DefinitionError struct {
	Name   string
	Reason string
}

func (err *DefinitionError) Error() string {
	if err.Name == "" {
		return "invalid unit definition: " + err.Reason
	}
	return "invalid unit definition " + strconv.Quote(err.Name) + ": " + err.Reason
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*MissingOperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ExponentError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*PowerError)(nil)
	_ InputError = (*QueryError)(nil)
)
