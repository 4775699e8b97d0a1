package ast

// Sexpr is an S-expression decorated with a value of type D: either an atom
// or a possibly empty list of S-expressions.
type Sexpr[D any] struct {
	atom *Atom[D]
	list []*Sexpr[D]

	deco D
}

// NewAtom wraps an atom into an S-expression.
func NewAtom[D any](a *Atom[D], deco D) *Sexpr[D] {
	return &Sexpr[D]{
		atom: a,
		deco: deco,
	}
}

// NewList creates a list node holding the given items. The items slice is
// copied.
func NewList[D any](items []*Sexpr[D], deco D) *Sexpr[D] {
	list := make([]*Sexpr[D], len(items))
	copy(list, items)
	return &Sexpr[D]{
		list: list,
		deco: deco,
	}
}

// Type returns NodeTypeList for lists and the type of the atom otherwise.
func (s *Sexpr[D]) Type() NodeType {
	if s.atom != nil {
		return s.atom.nt
	}
	return NodeTypeList
}

// IsAtom returns true if the node is an atom
func (s *Sexpr[D]) IsAtom() bool {
	return s.atom != nil
}

// IsList returns true if the node is a list
func (s *Sexpr[D]) IsList() bool {
	return s.atom == nil
}

// Atom returns the atom of the node, or nil for lists.
func (s *Sexpr[D]) Atom() *Atom[D] {
	return s.atom
}

// List returns all the children elements of the node, or nil for atoms.
func (s *Sexpr[D]) List() []*Sexpr[D] {
	if s.atom != nil {
		return nil
	}
	return s.list
}

// Decoration returns the decoration attached to the node.
func (s *Sexpr[D]) Decoration() D {
	return s.deco
}

// IsSymbol returns true if the node is the symbol with the given name.
func (s *Sexpr[D]) IsSymbol(name string) bool {
	return s.atom != nil && s.atom.nt == NodeTypeSymbol && s.atom.text == name
}

func (s *Sexpr[D]) String() string {
	return string(Encode(s))
}
