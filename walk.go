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

package tagmechanic

import (
	"io"
)

// A Cursor describes a [Token] encountered during [Walk].
type Cursor struct {
	token Token
	tag   *Tag
	path  []string
}

// Token returns the current [Token].
func (c *Cursor) Token() Token {
	return c.token
}

// Tag returns the parsed tag of the current token
// or nil if the token is a text run.
func (c *Cursor) Tag() *Tag {
	return c.tag
}

// Path returns the names of the elements that enclose the current token,
// outermost first.
// For a begin tag, the path does not include the element it opens.
// For an end tag, the path does not include the element it closes.
// The slice is only valid until the callback returns.
func (c *Cursor) Path() []string {
	return c.path
}

// Parent returns the name of the innermost enclosing element
// or the empty string at the top level of the document.
func (c *Cursor) Parent() string {
	if len(c.path) == 0 {
		return ""
	}
	return c.path[len(c.path)-1]
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each text run
	// and for each tag other than an end tag.
	// If Pre returns false for a begin tag,
	// everything up to and including the matching end tag is skipped.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each end tag.
	// If Post returns false, traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk tokenizes a document and calls [WalkOptions.Pre] and [WalkOptions.Post]
// for its tokens in document order
// while tracking the path of open elements.
// Improper nesting is tolerated the same way [*Rewriter.Rewrite] tolerates it:
// an end tag always closes the innermost open element.
// A nil opts only checks that the document can be tokenized and parsed.
func Walk(document string, opts *WalkOptions) error {
	if opts == nil {
		opts = new(WalkOptions)
	}
	tok := NewTokenizer(document)
	var path []string
	skipDepth := 0
	cursor := new(Cursor)
	for {
		t, err := tok.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		cursor.token = t
		cursor.tag = nil
		cursor.path = path
		if t.Kind == TextToken {
			if skipDepth == 0 && opts.Pre != nil {
				opts.Pre(cursor)
			}
			continue
		}

		tag, err := ParseTag(t.Data)
		if err != nil {
			return offsetError(err, t.Offset)
		}
		cursor.tag = tag
		switch tag.Kind {
		case EndTag:
			top := ""
			if len(path) > 0 {
				top = path[len(path)-1]
				path = path[:len(path)-1]
			}
			cursor.path = path
			if skipDepth > 0 {
				if len(path) >= skipDepth {
					continue
				}
				skipDepth = 0
				if top == tag.Name {
					continue
				}
				// A mismatched end tag closed the skipped element.
				// It is reported like any other end tag.
			}
			if opts.Post != nil && !opts.Post(cursor) {
				return nil
			}
		case BeginTag:
			if skipDepth > 0 {
				path = append(path, tag.Name)
				continue
			}
			descend := opts.Pre == nil || opts.Pre(cursor)
			path = append(path, tag.Name)
			if !descend {
				skipDepth = len(path)
			}
		default:
			if skipDepth == 0 && opts.Pre != nil {
				opts.Pre(cursor)
			}
		}
	}
}

// A Match is a tag selected by a criterion.
type Match struct {
	// Offset is the byte offset of the tag in the document.
	Offset int
	Tag    *Tag
	// Path is the names of the enclosing elements, outermost first.
	Path []string
}

// Find returns the tags in the document that a rewrite with c would change,
// without rewriting anything.
// Tags inside an element that c deletes are not reported,
// so len(matches) equals [Result.Occurrences] of the corresponding rewrite.
func Find(document string, c *Criterion) ([]Match, error) {
	crit, err := c.compile()
	if err != nil {
		return nil, err
	}
	var matches []Match
	err = Walk(document, &WalkOptions{
		Pre: func(cur *Cursor) bool {
			tag := cur.Tag()
			if tag == nil || !crit.matches(tag) {
				return true
			}
			matches = append(matches, Match{
				Offset: cur.Token().Offset,
				Tag:    tag,
				Path:   append([]string(nil), cur.Path()...),
			})
			return crit.action != Delete
		},
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
