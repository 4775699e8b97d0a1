package ast

import (
	"reflect"
)

// Unit is the decoration of untagged trees.
type Unit = struct{}

// Map rebuilds the tree replacing every decoration d with fn(d).
func Map[D, E any](s *Sexpr[D], fn func(D) E) *Sexpr[E] {
	if s == nil {
		return nil
	}
	if s.atom != nil {
		return NewAtom(MapAtom(s.atom, fn), fn(s.deco))
	}
	list := make([]*Sexpr[E], 0, len(s.list))
	for i := range s.list {
		list = append(list, Map(s.list[i], fn))
	}
	return &Sexpr[E]{list: list, deco: fn(s.deco)}
}

// MapAtom is the Atom counterpart of Map.
func MapAtom[D, E any](a *Atom[D], fn func(D) E) *Atom[E] {
	if a == nil {
		return nil
	}
	if a.nt.IsWrapper() {
		return newWrapper(a.nt, Map(a.sub, fn), fn(a.deco))
	}
	return &Atom[E]{
		nt:   a.nt,
		text: a.text,
		i:    a.i,
		f:    a.f,
		b:    a.b,
		deco: fn(a.deco),
	}
}

func erase[D any](D) Unit {
	return Unit{}
}

// Untag produces a copy of the tree with every decoration replaced by Unit.
// Two trees parsed from equivalent input are equal once untagged.
func Untag[D any](s *Sexpr[D]) *Sexpr[Unit] {
	return Map(s, erase[D])
}

// UntagAtom produces a copy of the atom with every decoration replaced by
// Unit.
func UntagAtom[D any](a *Atom[D]) *Atom[Unit] {
	return MapAtom(a, erase[D])
}

// Equal reports whether two trees are structurally equal, ignoring their
// decorations.
func Equal[D, E any](a *Sexpr[D], b *Sexpr[E]) bool {
	return reflect.DeepEqual(Untag(a), Untag(b))
}

// Symbol returns an untagged symbol node.
func Symbol(v string) *Sexpr[Unit] {
	return NewAtom(NewSymbol(v, Unit{}), Unit{})
}

// String returns an untagged string node.
func String(v string) *Sexpr[Unit] {
	return NewAtom(NewString(v, Unit{}), Unit{})
}

// Int returns an untagged integer node.
func Int(v int64) *Sexpr[Unit] {
	return NewAtom(NewInt(v, Unit{}), Unit{})
}

// Float returns an untagged float node.
func Float(v float64) *Sexpr[Unit] {
	return NewAtom(NewFloat(v, Unit{}), Unit{})
}

// Bool returns an untagged boolean node.
func Bool(v bool) *Sexpr[Unit] {
	return NewAtom(NewBool(v, Unit{}), Unit{})
}

// Quoted returns an untagged 'v node.
func Quoted(v *Sexpr[Unit]) *Sexpr[Unit] {
	return NewAtom(NewQuoted(v, Unit{}), Unit{})
}

// QuasiQuoted returns an untagged `v node.
func QuasiQuoted(v *Sexpr[Unit]) *Sexpr[Unit] {
	return NewAtom(NewQuasiQuoted(v, Unit{}), Unit{})
}

// Unquoted returns an untagged ,v node.
func Unquoted(v *Sexpr[Unit]) *Sexpr[Unit] {
	return NewAtom(NewUnquoted(v, Unit{}), Unit{})
}

// List returns an untagged list node.
func List(items ...*Sexpr[Unit]) *Sexpr[Unit] {
	return NewList(items, Unit{})
}
