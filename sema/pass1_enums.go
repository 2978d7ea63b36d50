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

package sema

import (
	"math"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/symtab"
)

type constColor int

const (
	white constColor = iota
	gray
	black
)

// enumConstants is Pass 1: resolves every EnumConst to a final int32 value
// by evaluating `value` either as a literal or, for the `A | B | C` form, by
// combining the referenced constants' values with bitwise OR, after
// checking the reference graph for cycles and duplicates.
func enumConstants(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, e := range api.Enums {
		if err := evalEnum(e, h); err != nil {
			return err
		}
	}
	return nil
}

func evalEnum(e *ast.Enum, h *diag.Handler) error {
	colors := make(map[*ast.EnumConst]constColor, len(e.Consts))

	var eval func(c *ast.EnumConst) error
	eval = func(c *ast.EnumConst) error {
		if c.Resolved {
			return nil
		}
		if colors[c] == black {
			return nil
		}
		if colors[c] == gray {
			return h.HandleErrorf(c.Location().Start, diag.E2040, c.Name)
		}
		colors[c] = gray

		attr, hasValue := c.Attrs.Get(ast.AttrValue)
		if !hasValue {
			// No explicit `value`: auto-increment from the previous
			// constant's value, starting at 0.
			prev := prevConst(e, c)
			var base int32
			if prev != nil {
				if err := eval(prev); err != nil {
					return err
				}
				base = prev.Value + 1
			}
			c.Value = base
			c.Resolved = true
			colors[c] = black
			return nil
		}

		switch attr.Value.Kind {
		case ast.LitInt:
			if attr.Value.Int < math.MinInt32 || attr.Value.Int > math.MaxInt32 {
				return h.HandleErrorf(attr.Pos, diag.E2038, attr.Pos.String())
			}
			c.Value = int32(attr.Value.Int)
		case ast.LitConstRefs:
			refs := attr.Value.Const
			if len(refs) == 0 {
				return h.HandleErrorf(attr.Pos, diag.E2036)
			}
			seen := map[string]bool{}
			var combined int32
			for _, ref := range refs {
				if seen[ref.Text] {
					return h.HandleErrorf(ref.Pos, diag.E2039, ref.Text)
				}
				seen[ref.Text] = true
				if ref.Text == c.Name {
					return h.HandleErrorf(ref.Pos, diag.E2033, c.Name)
				}
				target, ok := ref.Resolved.(*ast.EnumConst)
				if !ok {
					return h.HandleErrorf(ref.Pos, diag.E2034, ref.Text)
				}
				if target.Enum() != e {
					return h.HandleErrorf(ref.Pos, diag.E2035, ref.Text)
				}
				if err := eval(target); err != nil {
					return err
				}
				combined |= target.Value
			}
			c.Value = combined
		default:
			return h.HandleErrorf(attr.Pos, diag.E2031)
		}

		if c.Attrs.Has(ast.AttrNoError) && !e.Attrs.Has(ast.AttrErrorCode) {
			return h.HandleErrorf(c.Location().Start, diag.E2112)
		}

		c.Resolved = true
		colors[c] = black
		return nil
	}

	for _, c := range e.Consts {
		if err := eval(c); err != nil {
			return err
		}
	}
	return nil
}

func prevConst(e *ast.Enum, c *ast.EnumConst) *ast.EnumConst {
	for i, cc := range e.Consts {
		if cc == c {
			if i == 0 {
				return nil
			}
			return e.Consts[i-1]
		}
	}
	return nil
}
