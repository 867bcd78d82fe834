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
	"strings"
)

// TokenKind distinguishes text runs from tags.
type TokenKind uint8

const (
	// TextToken is a run of text between tags.
	TextToken TokenKind = 1 + iota
	// TagToken is the raw source of a single tag, including its angle brackets.
	TagToken
)

// A Token is a span of the document returned by [*Tokenizer.Next].
type Token struct {
	Kind TokenKind
	// Data is the verbatim source of the token.
	Data string
	// Offset is the byte offset of Data in the document.
	Offset int
	// Recovered is set on a text token that starts with a '<'
	// which was not closed before the next '<'.
	// The unclosed tag is passed through as text.
	Recovered bool
}

// A Tokenizer splits a document into alternating text runs and tags.
// Comments and CDATA sections are returned whole as single tags,
// even if they contain '<' or '>'.
type Tokenizer struct {
	doc string
	pos int
}

// NewTokenizer returns a tokenizer that reads from doc.
func NewTokenizer(doc string) *Tokenizer {
	return &Tokenizer{doc: doc}
}

// Offset returns the byte offset of the next token.
func (z *Tokenizer) Offset() int {
	return z.pos
}

// Next returns the next token in the document.
// At the end of the document, Next returns [io.EOF].
// A tag that is never closed returns a [*ParseError]
// and the tokenizer does not advance.
func (z *Tokenizer) Next() (Token, error) {
	const (
		commentStart = "<!--"
		commentEnd   = "-->"
		cdataStart   = "<![CDATA["
		cdataEnd     = "]]>"
	)

	p := z.pos
	if p >= len(z.doc) {
		return Token{}, io.EOF
	}
	rest := z.doc[p:]
	if rest[0] != '<' {
		end := strings.IndexByte(rest, '<')
		if end < 0 {
			end = len(rest)
		}
		return z.emit(TextToken, p, p+end, false), nil
	}

	switch {
	case strings.HasPrefix(rest, commentStart):
		end := strings.Index(rest[len(commentStart):], commentEnd)
		if end < 0 {
			return Token{}, &ParseError{Offset: p, Msg: "unterminated comment"}
		}
		return z.emit(TagToken, p, p+len(commentStart)+end+len(commentEnd), false), nil
	case hasCaseInsensitivePrefix(rest, cdataStart):
		end := strings.Index(rest[len(cdataStart):], cdataEnd)
		if end < 0 {
			return Token{}, &ParseError{Offset: p, Msg: "unterminated CDATA section"}
		}
		return z.emit(TagToken, p, p+len(cdataStart)+end+len(cdataEnd), false), nil
	}

	gt := strings.IndexByte(rest[1:], '>')
	lt := strings.IndexByte(rest[1:], '<')
	if lt >= 0 && (gt < 0 || lt < gt) {
		// Another tag starts before this one ends.
		// Hand back everything up to it as text.
		return z.emit(TextToken, p, p+1+lt, true), nil
	}
	if gt < 0 {
		return Token{}, &ParseError{Offset: p, Msg: "tag is missing closing '>'"}
	}
	return z.emit(TagToken, p, p+1+gt+1, false), nil
}

func (z *Tokenizer) emit(kind TokenKind, start, end int, recovered bool) Token {
	z.pos = end
	return Token{
		Kind:      kind,
		Data:      z.doc[start:end],
		Offset:    start,
		Recovered: recovered,
	}
}

func hasCaseInsensitivePrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toLowerASCII(prefix[i]) != toLowerASCII(s[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
