// Copyright 2026 The tagmechanic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package tagmechanic rewrites tags in loosely formed (X)HTML documents.
//
// A rewrite makes a single pass over a document,
// finds the tags selected by a [Criterion]
// (by name and, optionally, by the value of one attribute)
// and either deletes the elements they open
// or renames and re-attributes them,
// treating each opening tag and its matching closing tag consistently.
// Everything else in the document is copied through,
// except that tags are written back in a normalized form
// (lower-case names, double-quoted attribute values).
//
// The parser is deliberately permissive.
// It is not a conforming XML or HTML parser:
// it does not resolve entities or namespaces,
// it tolerates improperly nested tags,
// and it does not build a tree.
package tagmechanic

import (
	"fmt"
	"io"
	"log/slog"
)

// A Rewriter applies criteria to documents.
// The zero value is ready to use.
// A Rewriter is safe to use from multiple goroutines:
// each call to Rewrite keeps its own parse state.
type Rewriter struct {
	// Logger receives a message for each [Warning].
	// If Logger is nil, warnings are only reported in the [Result].
	Logger *slog.Logger
}

// Result is the outcome of a rewrite.
type Result struct {
	// Output is the rewritten document.
	Output string
	// Occurrences is the number of elements that matched the criterion.
	// An element with an opening and a closing tag counts once,
	// as does a self-closing tag.
	Occurrences int
	// Marked is the number of individual tags that were rewritten or removed,
	// counting the opening and closing tags of an element separately.
	Marked int
	// Warnings describes the malformed markup that was tolerated.
	Warnings []Warning
}

// A Warning describes a recoverable problem found during a rewrite.
type Warning struct {
	// Offset is the byte offset in the document where the problem was found.
	Offset int
	Msg    string
}

func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s", w.Offset, w.Msg)
}

// Rewrite applies the criterion to the document
// using the default options for [Rewriter].
func Rewrite(document string, c *Criterion) (*Result, error) {
	return new(Rewriter).Rewrite(document, c)
}

// Rewrite applies the criterion to the document.
// It returns a [*CriterionError] before reading the document
// if the criterion is invalid
// and a [*ParseError] if the document contains a tag that cannot be parsed.
// Improperly nested tags are not errors:
// they are reported in [Result.Warnings].
func (r *Rewriter) Rewrite(document string, c *Criterion) (*Result, error) {
	crit, err := c.compile()
	if err != nil {
		return nil, err
	}
	state := &rewriteState{
		Rewriter: r,
		crit:     crit,
		tok:      NewTokenizer(document),
		dst:      make([]byte, 0, len(document)),
		result:   new(Result),
	}
	if err := state.run(); err != nil {
		return nil, err
	}
	state.result.Output = string(state.dst)
	if r.Logger != nil {
		r.Logger.Debug("Rewrite finished",
			slog.String("tag", crit.tag),
			slog.String("action", crit.action.String()),
			slog.Int("occurrences", state.result.Occurrences),
			slog.Int("warnings", len(state.result.Warnings)))
	}
	return state.result, nil
}

// disposition records what happened to the opening tag of an open element,
// so that its closing tag can be treated the same way.
type disposition uint8

const (
	kept disposition = iota
	deleted
	modified
)

// openElement is an entry in the stack of currently open elements.
type openElement struct {
	name    string
	disp    disposition
	newName string // only for modified
}

// rewriteState is the state of a single pass over a document.
type rewriteState struct {
	*Rewriter
	crit *compiledCriterion
	tok  *Tokenizer

	path []openElement
	// skipDepth is the length of path
	// just after a deleted element was pushed,
	// or zero if no content is being skipped.
	skipDepth int

	dst    []byte
	result *Result
}

func (s *rewriteState) run() error {
	for {
		tok, err := s.tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TextToken:
			if tok.Recovered {
				s.warn(tok.Offset, "unclosed tag passed through as text")
			}
			if !s.skipping() {
				s.dst = append(s.dst, tok.Data...)
			}
		case TagToken:
			tag, err := ParseTag(tok.Data)
			if err != nil {
				return offsetError(err, tok.Offset)
			}
			s.tag(tok.Offset, tag)
		}
	}
	if n := len(s.path); n > 0 {
		s.warn(s.tok.Offset(), fmt.Sprintf("%d element(s) not closed at end of document, innermost <%s>", n, s.path[n-1].name))
	}
	return nil
}

func (s *rewriteState) skipping() bool {
	return s.skipDepth > 0
}

func (s *rewriteState) tag(offset int, tag *Tag) {
	switch tag.Kind {
	case BeginTag, SingleTag, SingleExtendedTag:
		s.startTag(tag)
	case EndTag:
		s.endTag(offset, tag)
	default:
		if !s.skipping() {
			s.dst = AppendTag(s.dst, tag)
		}
	}
}

func (s *rewriteState) startTag(tag *Tag) {
	if s.skipping() {
		// Inside a deleted element: track nesting only.
		if tag.Kind == BeginTag {
			s.push(openElement{name: tag.Name})
		}
		return
	}
	if !s.crit.matches(tag) {
		if tag.Kind == BeginTag {
			s.push(openElement{name: tag.Name})
		}
		s.dst = AppendTag(s.dst, tag)
		return
	}

	s.result.Occurrences++
	s.result.Marked++
	switch s.crit.action {
	case Delete:
		if tag.Kind == BeginTag {
			s.push(openElement{name: tag.Name, disp: deleted})
			s.skipDepth = len(s.path)
		}
	case Modify:
		out := &Tag{
			Kind:  tag.Kind,
			Name:  s.crit.rewriteName(tag.Name),
			Attrs: s.crit.rewriteAttrs(tag.Attrs),
		}
		if tag.Kind == BeginTag {
			s.push(openElement{name: tag.Name, disp: modified, newName: out.Name})
		}
		s.dst = AppendTag(s.dst, out)
	}
}

func (s *rewriteState) endTag(offset int, tag *Tag) {
	if len(s.path) == 0 {
		s.warn(offset, fmt.Sprintf("end tag </%s> without a start tag", tag.Name))
		s.dst = AppendTag(s.dst, tag)
		return
	}
	top := s.pop()
	if top.name != tag.Name {
		s.warn(offset, fmt.Sprintf("end tag </%s> closes <%s>", tag.Name, top.name))
	}
	closesSkip := s.skipDepth == len(s.path)+1
	if closesSkip {
		s.skipDepth = 0
	}

	// The disposition comes from the stack, not from matching the end tag.
	if tag.Name == s.crit.tag && top.disp != kept {
		s.result.Marked++
		switch top.disp {
		case deleted:
			return
		case modified:
			s.dst = AppendTag(s.dst, &Tag{Kind: EndTag, Name: top.newName})
			return
		}
	}
	// A mismatched end tag that closes a deleted element
	// belongs to the enclosing document and is kept.
	if s.skipping() {
		return
	}
	s.dst = AppendTag(s.dst, tag)
}

func (s *rewriteState) push(elem openElement) {
	s.path = append(s.path, elem)
}

func (s *rewriteState) pop() openElement {
	top := s.path[len(s.path)-1]
	s.path = s.path[:len(s.path)-1]
	return top
}

func (s *rewriteState) warn(offset int, msg string) {
	s.result.Warnings = append(s.result.Warnings, Warning{Offset: offset, Msg: msg})
	if s.Logger != nil {
		s.Logger.Warn(msg, slog.Int("offset", offset), slog.Int("depth", len(s.path)))
	}
}
