package variables

import "strings"

// Op is an assignment operator
type Op int

// All the supported assignment operators
const (
	Assign Op = iota
	Add
	Sub
	Mul
	Div
)

func (o Op) String() string {
	switch o {
	case Assign:
		return "="
	case Add:
		return "+="
	case Sub:
		return "-="
	case Mul:
		return "*="
	case Div:
		return "/="
	}

	return "?="
}

var compound = map[byte]Op{'+': Add, '-': Sub, '*': Mul, '/': Div}

// Assignment is a parsed `name op operand` expression
type Assignment struct {
	Name    string
	Op      Op
	Operand string
}

// ParseAssignment splits expr at its first '='. The byte before it picks a compound operator if it is one of + - * /.
// One space between the name and the operator is dropped. The operand is kept verbatim for += and -=, so that text
// can be appended with its leading space, and loses one leading space for every other operator
func ParseAssignment(expr string) (Assignment, bool) {
	idx := strings.IndexByte(expr, '=')
	if idx == -1 {
		return Assignment{}, false
	}

	op, nameEnd := Assign, idx
	if idx > 0 {
		if res, ok := compound[expr[idx-1]]; ok {
			op, nameEnd = res, idx-1
		}
	}

	operand := expr[idx+1:]
	if op != Add && op != Sub {
		operand = strings.TrimPrefix(operand, " ")
	}

	return Assignment{
		Name:    strings.TrimSuffix(expr[:nameEnd], " "),
		Op:      op,
		Operand: operand,
	}, true
}

// NumericRead is a parsed `#name` or `#name op literal` read, used to feed a variable's value into a repeat count
type NumericRead struct {
	Name    string
	Op      Op
	Operand int
	HasOp   bool
}

// ParseNumericRead parses expr, which must start with '#'
func ParseNumericRead(expr string) (NumericRead, bool) {
	if !strings.HasPrefix(expr, "#") {
		return NumericRead{}, false
	}

	body := expr[1:]
	if a, ok := ParseAssignment(body); ok && a.Op != Assign {
		return NumericRead{Name: a.Name, Op: a.Op, Operand: LeadingInt(a.Operand), HasOp: true}, true
	}

	return NumericRead{Name: body}, true
}

// Combine applies the read's operator, if any, to value. Dividing by zero panics
func (n NumericRead) Combine(value int) int {
	if !n.HasOp {
		return value
	}

	switch n.Op {
	case Add:
		return value + n.Operand
	case Sub:
		return value - n.Operand
	case Mul:
		return value * n.Operand
	case Div:
		return floorDiv(value, n.Operand)
	}

	return value
}
