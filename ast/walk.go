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

// ArgHolder is implemented by the three Decl kinds that own an ordered
// argument list: Method, Callback, and Func. Passes 3-5 share logic over
// this interface rather than duplicating it per kind.
type ArgHolder interface {
	Decl
	ArgList() []*Arg
}

func (m *Method) ArgList() []*Arg   { return m.Args }
func (c *Callback) ArgList() []*Arg { return c.Args }
func (f *Func) ArgList() []*Arg     { return f.Args }

var (
	_ ArgHolder = (*Method)(nil)
	_ ArgHolder = (*Callback)(nil)
	_ ArgHolder = (*Func)(nil)
)

// ArgIndex returns the position of a within holder's argument list, or -1.
func ArgIndex(holder ArgHolder, a *Arg) int {
	for i, x := range holder.ArgList() {
		if x == a {
			return i
		}
	}
	return -1
}

// FieldIndex returns the position of f within s's field list, or -1.
func FieldIndex(s *Struct, f *Field) int {
	for i, x := range s.Fields {
		if x == f {
			return i
		}
	}
	return -1
}

// Walk visits every Decl reachable from api, depth-first, in the
// insertion-order-within-each-collection contract the Generator Interface
// relies on (spec.md §9). fn is called once per Decl including api itself.
func Walk(api *Api, fn func(Decl)) {
	for _, d := range api.AllDecls() {
		fn(d)
	}
}
