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
	"strings"

	"golang.org/x/net/html/atom"
)

// ParseTag parses the source of a single tag (as returned by [*Tokenizer.Next])
// into its kind, name, and attributes.
// ParseTag is permissive:
// it accepts poorly formatted tags that an XML parser would reject.
// It only fails if the tag has no name or an attribute quote is never closed.
// Offsets in a returned [*ParseError] are relative to the start of raw.
func ParseTag(raw string) (*Tag, error) {
	if len(raw) < 2 || raw[0] != '<' || raw[len(raw)-1] != '>' {
		return nil, &ParseError{Offset: 0, Msg: "tag must begin with '<' and end with '>'"}
	}

	p := skipSpace(raw, 1)
	isEnd := false
	if p < len(raw) && raw[p] == '/' {
		isEnd = true
		p = skipSpace(raw, p+1)
	}

	// Comments and CDATA sections may not have a space after their marker,
	// so they are detected before reading a name.
	rest := raw[p:]
	switch {
	case strings.HasPrefix(rest, CommentName):
		infoStart := p + len(CommentName)
		if !strings.HasSuffix(raw, "-->") || len(raw)-len("-->") < infoStart {
			return nil, &ParseError{Offset: p, Msg: "comment does not end with -->"}
		}
		return newPassthrough(CommentName, raw[infoStart:len(raw)-len("-->")]), nil
	case hasCaseInsensitivePrefix(rest, CDATAName):
		return newPassthrough(CDATAName, raw[p+len(CDATAName):len(raw)-1]), nil
	}

	nameEnd := p
	for nameEnd < len(raw) && !isNameTerminator(raw[nameEnd]) {
		nameEnd++
	}
	if nameEnd == p {
		return nil, &ParseError{Offset: p, Msg: "missing tag name"}
	}
	rawName := raw[p:nameEnd]
	switch {
	case strings.EqualFold(rawName, DoctypeName):
		return newPassthrough(DoctypeName, raw[nameEnd:len(raw)-1]), nil
	case rawName[0] == '?':
		if len(rawName) > 1 {
			rawName = strings.TrimSuffix(rawName, "?")
		}
		info := strings.TrimSuffix(raw[nameEnd:len(raw)-1], "?")
		return newPassthrough(rawName, info), nil
	case rawName[0] == '!':
		// Other markup declarations, like <!ENTITY ...>.
		return newPassthrough(rawName, raw[nameEnd:len(raw)-1]), nil
	}

	tag := &Tag{Name: lowerTagName(rawName)}
	if isEnd {
		tag.Kind = EndTag
		return tag, nil
	}

	interior := raw[:len(raw)-1]
	attrs, end, err := lexAttributes(interior, nameEnd, true)
	if err != nil {
		return nil, err
	}
	if len(attrs) > 0 {
		tag.Attrs = attrs
	}
	tail := strings.TrimRightFunc(interior[end:], isSpaceRune)
	switch {
	case !strings.HasSuffix(tail, "/"):
		tag.Kind = BeginTag
	case len(tail) >= 2 && isSpace(tail[len(tail)-2]):
		tag.Kind = SingleExtendedTag
	default:
		tag.Kind = SingleTag
	}
	return tag, nil
}

// lowerTagName lower-cases an element name.
// Known HTML element names share storage with the atom table.
func lowerTagName(name string) string {
	var buf [32]byte
	b := append(buf[:0], name...)
	for i, c := range b {
		b[i] = toLowerASCII(c)
	}
	return atom.String(b)
}

func isNameTerminator(c byte) bool {
	switch c {
	case '>', '/', '"', '\'':
		return true
	default:
		return isSpace(c)
	}
}
