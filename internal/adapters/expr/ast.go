package expr

import "math"

// node is one vertex of the compiled evaluation tree. Evaluation is pure and
// total: undefined points come back as NaN, never as a panic.
type node interface {
	eval(x float64) float64
}

type constNode struct {
	value float64
}

func (n constNode) eval(float64) float64 { return n.value }

type varNode struct{}

func (varNode) eval(x float64) float64 { return x }

type negNode struct {
	operand node
}

func (n negNode) eval(x float64) float64 { return -n.operand.eval(x) }

type binOp uint8

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
)

type binNode struct {
	op    binOp
	left  node
	right node
}

func (n binNode) eval(x float64) float64 {
	l := n.left.eval(x)
	r := n.right.eval(x)
	switch n.op {
	case opAdd:
		return l + r
	case opSub:
		return l - r
	case opMul:
		return l * r
	case opDiv:
		// Division by zero follows IEEE semantics; the sampler turns the
		// resulting Inf or NaN into a gap.
		return l / r
	case opPow:
		return math.Pow(l, r)
	default:
		return math.NaN()
	}
}

type callNode struct {
	name string
	fn   func(float64) float64
	arg  node
}

func (n callNode) eval(x float64) float64 { return n.fn(n.arg.eval(x)) }

// isConst reports whether a subtree evaluates to the same value everywhere.
func isConst(n node) bool {
	_, ok := n.(constNode)
	return ok
}

// fold collapses a constant subtree into a literal at compile time. A
// subtree that is undefined everywhere, like log(-1), folds to a NaN literal
// and plots as an empty curve.
func fold(n node) node {
	switch t := n.(type) {
	case negNode:
		if isConst(t.operand) {
			return constNode{value: t.eval(0)}
		}
	case binNode:
		if isConst(t.left) && isConst(t.right) {
			return constNode{value: t.eval(0)}
		}
	case callNode:
		if isConst(t.arg) {
			return constNode{value: t.eval(0)}
		}
	}
	return n
}
