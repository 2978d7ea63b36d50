// Copyright 2026 The go-idlc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "github.com/go-idlc/idlc/diag"

// Api is the single root declaration of a compile job (spec.md §3: "Exactly
// one Api node per compile").
type Api struct {
	base
	Name       string
	Doc        *Documentation
	Attrs      Attributes
	Enums      []*Enum
	Structs    []*Struct
	Interfaces []*Interface
	Callbacks  []*Callback
	Funcs      []*Func
}

func NewApi(name string, loc diag.Location) *Api {
	return &Api{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (a *Api) DeclName() string { return a.Name }
func (a *Api) declNode()        {}

func (a *Api) AddEnum(e *Enum)           { e.setParent(a); a.Enums = append(a.Enums, e) }
func (a *Api) AddStruct(s *Struct)       { s.setParent(a); a.Structs = append(a.Structs, s) }
func (a *Api) AddInterface(i *Interface) { i.setParent(a); a.Interfaces = append(a.Interfaces, i) }
func (a *Api) AddCallback(c *Callback)   { c.setParent(a); a.Callbacks = append(a.Callbacks, c) }
func (a *Api) AddFunc(f *Func)           { f.setParent(a); a.Funcs = append(a.Funcs, f) }

// AllDecls returns every top-level-owned Decl in declaration order,
// depth-first, matching the generator traversal contract in spec.md §9
// ("insertion-order within each collection, depth-first").
func (a *Api) AllDecls() []Decl {
	var out []Decl
	out = append(out, a)
	for _, e := range a.Enums {
		out = append(out, e)
		for _, c := range e.Consts {
			out = append(out, c)
		}
	}
	for _, s := range a.Structs {
		out = append(out, s)
		for _, f := range s.Fields {
			out = append(out, f)
		}
	}
	for _, cb := range a.Callbacks {
		out = append(out, cb)
		for _, arg := range cb.Args {
			out = append(out, arg)
		}
	}
	for _, fn := range a.Funcs {
		out = append(out, fn)
		for _, arg := range fn.Args {
			out = append(out, arg)
		}
	}
	for _, i := range a.Interfaces {
		out = append(out, i)
		for _, m := range i.Methods {
			out = append(out, m)
			for _, arg := range m.Args {
				out = append(out, arg)
			}
		}
		for _, p := range i.Properties {
			out = append(out, p)
		}
		for _, ev := range i.Events {
			out = append(out, ev)
		}
	}
	return out
}

// Enum declares a set of 32-bit signed integer constants.
type Enum struct {
	base
	Name   string
	Doc    *Documentation
	Attrs  Attributes
	Consts []*EnumConst
}

func NewEnum(name string, loc diag.Location) *Enum {
	return &Enum{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (e *Enum) DeclName() string { return e.Name }
func (e *Enum) declNode()        {}
func (e *Enum) AddConst(c *EnumConst) {
	c.setParent(e)
	e.Consts = append(e.Consts, c)
}

// EnumConst is a named constant within an Enum. Value and Resolved are
// derived fields written by sema Pass 1 during topological evaluation.
type EnumConst struct {
	base
	Name     string
	Doc      *Documentation
	Attrs    Attributes
	Value    int32
	Resolved bool
}

func NewEnumConst(name string, loc diag.Location) *EnumConst {
	return &EnumConst{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (c *EnumConst) DeclName() string { return c.Name }
func (c *EnumConst) declNode()        {}

// Enum returns the enclosing Enum.
func (c *EnumConst) Enum() *Enum {
	if e, ok := c.parent.(*Enum); ok {
		return e
	}
	return nil
}

// Struct declares a C-style record, optionally usable as an opaque handle
// type when marked with the `handle` attribute.
type Struct struct {
	base
	Name   string
	Doc    *Documentation
	Attrs  Attributes
	Fields []*Field
}

func NewStruct(name string, loc diag.Location) *Struct {
	return &Struct{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (s *Struct) DeclName() string { return s.Name }
func (s *Struct) declNode()        {}
func (s *Struct) AddField(f *Field) {
	f.setParent(s)
	s.Fields = append(s.Fields, f)
}

// IsHandle reports whether this struct carries the `handle` attribute
// (spec.md §3, §4.6 Pass 9).
func (s *Struct) IsHandle() bool { return s.Attrs.Has(AttrHandle) }

type Field struct {
	base
	Name  string
	Doc   *Documentation
	Attrs Attributes
}

func NewField(name string, loc diag.Location) *Field {
	return &Field{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (f *Field) DeclName() string { return f.Name }
func (f *Field) declNode()        {}

// Struct returns the enclosing Struct.
func (f *Field) Struct() *Struct {
	if s, ok := f.parent.(*Struct); ok {
		return s
	}
	return nil
}

// Interface declares a set of methods, properties, and events bound to an
// opaque handle instance.
type Interface struct {
	base
	Name       string
	Doc        *Documentation
	Attrs      Attributes
	Methods    []*Method
	Properties []*Property
	Events     []*Event
}

func NewInterface(name string, loc diag.Location) *Interface {
	return &Interface{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (i *Interface) DeclName() string { return i.Name }
func (i *Interface) declNode()        {}
func (i *Interface) AddMethod(m *Method) {
	m.setParent(i)
	i.Methods = append(i.Methods, m)
}
func (i *Interface) AddProperty(p *Property) {
	p.setParent(i)
	i.Properties = append(i.Properties, p)
}
func (i *Interface) AddEvent(e *Event) {
	e.setParent(i)
	i.Events = append(i.Events, e)
}

type Method struct {
	base
	Name  string
	Doc   *Documentation
	Attrs Attributes
	Args  []*Arg
}

func NewMethod(name string, loc diag.Location) *Method {
	return &Method{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (m *Method) DeclName() string { return m.Name }
func (m *Method) declNode()        {}
func (m *Method) AddArg(a *Arg) {
	a.setParent(m)
	m.Args = append(m.Args, a)
}

// Interface returns the enclosing Interface.
func (m *Method) Interface() *Interface {
	if i, ok := m.parent.(*Interface); ok {
		return i
	}
	return nil
}

func (m *Method) IsStatic() bool { return m.Attrs.Has(AttrStatic) }
func (m *Method) IsCtor() bool   { return m.Attrs.Has(AttrCtor) }

// ThisArg returns the argument carrying `this`, if any.
func (m *Method) ThisArg() *Arg {
	for _, a := range m.Args {
		if a.Attrs.Has(AttrThis) {
			return a
		}
	}
	return nil
}

// Arg is a single parameter of a Method, Callback, or Func.
type Arg struct {
	base
	Name  string
	Attrs Attributes
}

func NewArg(name string, loc diag.Location) *Arg {
	return &Arg{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (a *Arg) DeclName() string { return a.Name }
func (a *Arg) declNode()        {}

// Property is a named getter/setter pair resolved to existing methods of
// the enclosing Interface.
type Property struct {
	base
	Name  string
	Doc   *Documentation
	Attrs Attributes
}

func NewProperty(name string, loc diag.Location) *Property {
	return &Property{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (p *Property) DeclName() string { return p.Name }
func (p *Property) declNode()        {}

func (p *Property) Interface() *Interface {
	if i, ok := p.parent.(*Interface); ok {
		return i
	}
	return nil
}

// GetMethod returns the resolved getter Method, if `get` is present and
// resolved.
func (p *Property) GetMethod() *Method {
	return resolvedMethod(p.Attrs, AttrGet)
}

// SetMethod returns the resolved setter Method, if `set` is present and
// resolved.
func (p *Property) SetMethod() *Method {
	return resolvedMethod(p.Attrs, AttrSet)
}

// Event mirrors Property but additionally permits a `userdata` argument on
// its getter/setter (spec.md §4.6 Pass 7).
type Event struct {
	base
	Name  string
	Doc   *Documentation
	Attrs Attributes
}

func NewEvent(name string, loc diag.Location) *Event {
	return &Event{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (e *Event) DeclName() string { return e.Name }
func (e *Event) declNode()        {}

func (e *Event) Interface() *Interface {
	if i, ok := e.parent.(*Interface); ok {
		return i
	}
	return nil
}

func (e *Event) GetMethod() *Method { return resolvedMethod(e.Attrs, AttrGet) }
func (e *Event) SetMethod() *Method { return resolvedMethod(e.Attrs, AttrSet) }

func resolvedMethod(attrs Attributes, kind AttrKind) *Method {
	a, ok := attrs.Get(kind)
	if !ok || a.Method == nil || a.Method.Resolved == nil {
		return nil
	}
	m, _ := a.Method.Resolved.(*Method)
	return m
}

// Callback declares a function-typed declaration meant to be invoked from
// generated code into user code.
type Callback struct {
	base
	Name  string
	Doc   *Documentation
	Attrs Attributes
	Args  []*Arg
}

func NewCallback(name string, loc diag.Location) *Callback {
	return &Callback{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (c *Callback) DeclName() string { return c.Name }
func (c *Callback) declNode()        {}
func (c *Callback) AddArg(a *Arg) {
	a.setParent(c)
	c.Args = append(c.Args, a)
}

// Func declares a free function.
type Func struct {
	base
	Name  string
	Doc   *Documentation
	Attrs Attributes
	Args  []*Arg
}

func NewFunc(name string, loc diag.Location) *Func {
	return &Func{base: base{Loc: loc}, Name: name, Attrs: Attributes{}}
}

func (f *Func) DeclName() string { return f.Name }
func (f *Func) declNode()        {}
func (f *Func) AddArg(a *Arg) {
	a.setParent(f)
	f.Args = append(f.Args, a)
}

var (
	_ Decl = (*Api)(nil)
	_ Decl = (*Enum)(nil)
	_ Decl = (*EnumConst)(nil)
	_ Decl = (*Struct)(nil)
	_ Decl = (*Field)(nil)
	_ Decl = (*Interface)(nil)
	_ Decl = (*Method)(nil)
	_ Decl = (*Arg)(nil)
	_ Decl = (*Property)(nil)
	_ Decl = (*Event)(nil)
	_ Decl = (*Callback)(nil)
	_ Decl = (*Func)(nil)
)
