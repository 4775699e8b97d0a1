package ast

// Atom is a leaf value, or one of the quoting forms that own exactly one
// nested S-expression.
type Atom[D any] struct {
	nt NodeType

	text string
	i    int64
	f    float64
	b    bool
	sub  *Sexpr[D]

	deco D
}

// NewSymbol creates an atom of type symbol
func NewSymbol[D any](v string, deco D) *Atom[D] {
	return &Atom[D]{nt: NodeTypeSymbol, text: v, deco: deco}
}

// NewString creates an atom of type string, v is the text between the double
// quotes with escape sequences left as they were written.
func NewString[D any](v string, deco D) *Atom[D] {
	return &Atom[D]{nt: NodeTypeString, text: v, deco: deco}
}

// NewInt creates an atom of type int
func NewInt[D any](v int64, deco D) *Atom[D] {
	return &Atom[D]{nt: NodeTypeInt, i: v, deco: deco}
}

// NewFloat creates an atom of type float
func NewFloat[D any](v float64, deco D) *Atom[D] {
	return &Atom[D]{nt: NodeTypeFloat, f: v, deco: deco}
}

// NewBool creates an atom of type bool
func NewBool[D any](v bool, deco D) *Atom[D] {
	return &Atom[D]{nt: NodeTypeBool, b: v, deco: deco}
}

// NewQuoted creates a quoted atom ('x) that owns the given expression
func NewQuoted[D any](v *Sexpr[D], deco D) *Atom[D] {
	return &Atom[D]{nt: NodeTypeQuoted, sub: v, deco: deco}
}

// NewQuasiQuoted creates a quasiquoted atom (`x) that owns the given expression
func NewQuasiQuoted[D any](v *Sexpr[D], deco D) *Atom[D] {
	return &Atom[D]{nt: NodeTypeQuasiQuoted, sub: v, deco: deco}
}

// NewUnquoted creates an unquoted atom (,x) that owns the given expression
func NewUnquoted[D any](v *Sexpr[D], deco D) *Atom[D] {
	return &Atom[D]{nt: NodeTypeUnquoted, sub: v, deco: deco}
}

func newWrapper[D any](nt NodeType, v *Sexpr[D], deco D) *Atom[D] {
	return &Atom[D]{nt: nt, sub: v, deco: deco}
}

// Type returns the type of the atom
func (a *Atom[D]) Type() NodeType {
	return a.nt
}

// Decoration returns the decoration attached to the atom.
func (a *Atom[D]) Decoration() D {
	return a.deco
}

// Text returns the name of a symbol or the raw text of a string.
func (a *Atom[D]) Text() string {
	return a.text
}

func (a *Atom[D]) Int() int64 {
	return a.i
}

func (a *Atom[D]) Float() float64 {
	return a.f
}

func (a *Atom[D]) Bool() bool {
	return a.b
}

// Inner returns the expression owned by a quoting atom, or nil.
func (a *Atom[D]) Inner() *Sexpr[D] {
	return a.sub
}

// Value returns the payload of the atom as an interface value.
func (a *Atom[D]) Value() interface{} {
	switch a.nt {
	case NodeTypeSymbol, NodeTypeString:
		return a.text
	case NodeTypeInt:
		return a.i
	case NodeTypeFloat:
		return a.f
	case NodeTypeBool:
		return a.b
	}
	return a.sub
}

func (a *Atom[D]) String() string {
	return string(encodeAtom(a))
}
