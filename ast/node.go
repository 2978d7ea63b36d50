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

// Package ast defines the concrete syntax tree produced by the parser and
// refined in place by the attribute engine and semantic passes: a single
// tagged-variant Decl type per declaration kind, a sparse Attributes map per
// declaration, and DeclRef/Literal payloads for cross-references and
// constant values.
//
// Every node is owned by a Context arena (Context.Root is the one Api for a
// compile job); parent back-references are pure navigation and are never
// used to free memory — the arena frees everything together at teardown.
package ast

import "github.com/go-idlc/idlc/diag"

// Node is implemented by every tree element that has a source Location.
type Node interface {
	Location() diag.Location
}

// Decl is implemented by every named declaration: Api, Enum, EnumConst,
// Struct, Field, Interface, Method, Arg, Property, Event, Callback, Func.
// declNode is unexported so the set of implementations is closed to this
// package, matching the teacher's sealed-interface idiom (ast.Node /
// fileElement markers in the teacher's ast package).
type Decl interface {
	Node
	DeclName() string
	Parent() Node
	declNode()
}

// base is embedded by every Decl implementation. It carries the Location
// common to all nodes and the weak, lookup-only back-reference to the
// owning parent.
type base struct {
	Loc    diag.Location
	parent Node
}

func (b *base) Location() diag.Location { return b.Loc }
func (b *base) Parent() Node            { return b.parent }
func (b *base) setParent(p Node)        { b.parent = p }

// Context is the arena that owns one compile job's entire AST, its interned
// filenames, and the single Api root. Its lifetime equals one compile
// invocation (spec.md §3 "Context arena").
type Context struct {
	Root  *Api
	files map[string]string
}

// NewContext creates an empty arena.
func NewContext() *Context {
	return &Context{files: make(map[string]string)}
}

// Intern returns the canonical string for name, so that every token
// produced for the same file shares one backing string.
func (c *Context) Intern(name string) string {
	if s, ok := c.files[name]; ok {
		return s
	}
	c.files[name] = name
	return name
}
