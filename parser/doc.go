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

package parser

import (
	"strings"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
)

// docLine is one physical line of a doc-comment block, already stripped of
// its `///` lead (or split out of a `/** ... */` block), with the column of
// its first non-space character preserved for the continuation-line rule.
type docLine struct {
	text string
	pos  diag.Position
}

func (l docLine) indent() int {
	return len(l.text) - len(strings.TrimLeft(l.text, " "))
}

func splitBlockLines(text string, start diag.Position) []docLine {
	lines := strings.Split(text, "\n")
	out := make([]docLine, 0, len(lines))
	for i, raw := range lines {
		t := raw
		if i == 0 {
			t = strings.TrimPrefix(t, "*")
		} else {
			t = strings.TrimPrefix(strings.TrimLeft(t, " "), "*")
		}
		t = strings.TrimPrefix(t, " ")
		pos := start
		pos.Line += i
		out = append(out, docLine{text: t, pos: pos})
	}
	return out
}

var sectionTags = map[string]bool{
	"brief": true, "detail": true, "author": true,
	"copyright": true, "license": true, "note": true,
}

// assembleDoc parses a run of docLines collected from one or more `///`
// lines or a single `/** */` block into a Documentation record, enforcing
// the empty-block (E2006), duplicate-singleton-section (E2007-E2010), and
// continuation-indentation (E2011) rules of spec.md §4.3/§4.2.
func assembleDoc(lines []docLine, loc diag.Location, h *diag.Handler) (*ast.Documentation, error) {
	doc := &ast.Documentation{Loc: loc}
	currentTag := ""
	for _, l := range lines {
		tag, rest, ok := splitTag(l.text)
		if ok {
			currentTag = tag
			if err := appendSection(doc, tag, rest, l.pos, h); err != nil {
				return nil, err
			}
			continue
		}
		if strings.TrimSpace(l.text) == "" {
			continue
		}
		if currentTag == "" {
			// Continuation with no open section: treat as a bare brief
			// continuation is invalid; report at column 4 rule anyway.
			if l.indent() != 4 {
				return nil, h.HandleErrorf(l.pos, diag.E2011)
			}
			continue
		}
		if l.indent() != 4 {
			return nil, h.HandleErrorf(l.pos, diag.E2011)
		}
		if err := appendSection(doc, currentTag, strings.TrimLeft(l.text, " "), l.pos, h); err != nil {
			return nil, err
		}
	}
	if doc.IsEmpty() {
		return nil, h.HandleErrorf(loc.Start, diag.E2006)
	}
	resolveLinks(doc)
	return doc, nil
}

func splitTag(line string) (tag, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(trimmed) == len(line) && strings.HasPrefix(line, " ") {
		// Indented at all: never a tag line (only unindented lines open a
		// new section; this also lets `indent()==4` uniquely mean
		// "continuation").
		return "", "", false
	}
	idx := strings.Index(trimmed, ":")
	if idx <= 0 {
		return "", "", false
	}
	candidate := trimmed[:idx]
	if !sectionTags[candidate] {
		return "", "", false
	}
	return candidate, strings.TrimPrefix(trimmed[idx+1:], " "), true
}

func appendSection(doc *ast.Documentation, tag, text string, pos diag.Position, h *diag.Handler) error {
	switch tag {
	case "brief":
		if doc.Brief != "" {
			return h.HandleErrorf(pos, diag.E2007)
		}
		doc.Brief = appendText(doc.Brief, text)
	case "detail":
		if doc.Detail != "" {
			return h.HandleErrorf(pos, diag.E2008)
		}
		doc.Detail = appendText(doc.Detail, text)
	case "copyright":
		if doc.Copyright != "" {
			return h.HandleErrorf(pos, diag.E2009)
		}
		doc.Copyright = appendText(doc.Copyright, text)
	case "license":
		if doc.License != "" {
			return h.HandleErrorf(pos, diag.E2010)
		}
		doc.License = appendText(doc.License, text)
	case "author":
		doc.Authors = append(doc.Authors, text)
	case "note":
		doc.Notes = append(doc.Notes, text)
	default:
		if tag != "" {
			// Continuation lines reuse the currently open tag even though
			// it is not re-validated against sectionTags here.
			return appendSection(doc, tag, text, pos, h)
		}
	}
	return nil
}

func appendText(existing, add string) string {
	if existing == "" {
		return add
	}
	return existing + " " + add
}

// resolveLinks scans every text fragment for `::name` inline references and
// records them on doc.Links for Pass 10 to resolve.
func resolveLinks(doc *ast.Documentation) {
	scan := func(text string) {
		for {
			idx := strings.Index(text, "::")
			if idx < 0 {
				return
			}
			text = text[idx+2:]
			end := 0
			for end < len(text) && (isNameByte(text[end])) {
				end++
			}
			if end > 0 {
				doc.Links = append(doc.Links, ast.NewDeclRef(text[:end], doc.Loc.Start))
			}
			text = text[end:]
		}
	}
	scan(doc.Brief)
	scan(doc.Detail)
	for _, n := range doc.Notes {
		scan(n)
	}
}

func isNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}
