package convcheck

import (
	"fmt"
	"strings"

	"github.com/unitsafe/mag"
	"github.com/unitsafe/mag/rep"
)

// Op is a sealed description of a conversion step (or chain of steps)
// applied to values of an input representation. Only the constructors in
// this package produce Ops.
type Op interface {
	// InputRep is the representation of the values fed into the op.
	InputRep() rep.Rep

	// OutputRep is the representation of the values the op produces.
	OutputRep() rep.Rep

	fmt.Stringer

	op() // sealed
}

type castOp struct {
	from, to rep.Rep
}

func (c castOp) op()                {}
func (c castOp) InputRep() rep.Rep  { return c.from }
func (c castOp) OutputRep() rep.Rep { return c.to }
func (c castOp) String() string {
	return fmt.Sprintf("cast[%s -> %s]", c.from, c.to)
}

type multiplyOp struct {
	r rep.Rep
	m mag.Magnitude
}

func (m multiplyOp) op()                {}
func (m multiplyOp) InputRep() rep.Rep  { return m.r }
func (m multiplyOp) OutputRep() rep.Rep { return m.r }
func (m multiplyOp) String() string {
	return fmt.Sprintf("multiply[%s by %s]", m.r, m.m)
}

type divideOp struct {
	r rep.Rep
	m mag.Magnitude
}

func (d divideOp) op()                {}
func (d divideOp) InputRep() rep.Rep  { return d.r }
func (d divideOp) OutputRep() rep.Rep { return d.r }
func (d divideOp) String() string {
	return fmt.Sprintf("divide[%s by %s]", d.r, d.m)
}

type sequenceOp struct {
	ops []Op
}

func (s sequenceOp) op()                {}
func (s sequenceOp) InputRep() rep.Rep  { return s.ops[0].InputRep() }
func (s sequenceOp) OutputRep() rep.Rep { return s.ops[len(s.ops)-1].OutputRep() }
func (s sequenceOp) String() string {
	parts := make([]string, len(s.ops))
	for i, op := range s.ops {
		parts[i] = op.String()
	}
	return "seq[" + strings.Join(parts, "; ") + "]"
}

// Cast describes converting a value from one representation to another.
func Cast(from, to rep.Rep) Op {
	return castOp{from: from, to: to}
}

// MultiplyBy describes multiplying an in-representation value by the
// exact magnitude m, staying in the same representation.
func MultiplyBy(r rep.Rep, m mag.Magnitude) Op {
	return multiplyOp{r: r, m: m}
}

// DivideByInteger describes dividing an in-representation value by the
// magnitude m, which must be an exact integer (integer division
// truncates for integral representations).
func DivideByInteger(r rep.Rep, m mag.Magnitude) (Op, error) {
	if !mag.IsInteger(m) {
		return nil, &mag.RepresentationError{
			Code:      mag.CodeBadInput,
			Message:   "divisor must be an integer magnitude",
			Magnitude: m.String(),
		}
	}
	return divideOp{r: r, m: m}, nil
}

// Sequence chains ops left to right. Each op's output representation
// must match the next op's input representation.
func Sequence(ops ...Op) (Op, error) {
	if len(ops) == 0 {
		return nil, &mag.RepresentationError{
			Code:    mag.CodeBadInput,
			Message: "empty op sequence",
		}
	}
	flat := make([]Op, 0, len(ops))
	for _, op := range ops {
		if s, ok := op.(sequenceOp); ok {
			flat = append(flat, s.ops...)
			continue
		}
		flat = append(flat, op)
	}
	for i := 0; i+1 < len(flat); i++ {
		if flat[i].OutputRep() != flat[i+1].InputRep() {
			return nil, &mag.RepresentationError{
				Code: mag.CodeBadInput,
				Message: fmt.Sprintf("op %d produces %s but op %d consumes %s",
					i, flat[i].OutputRep(), i+1, flat[i+1].InputRep()),
			}
		}
	}
	if len(flat) == 1 {
		return flat[0], nil
	}
	return sequenceOp{ops: flat}, nil
}
