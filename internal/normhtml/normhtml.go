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

// Package normhtml provides a function for normalizing markup
// so that two documents can be compared
// without regard to attribute order, attribute quoting,
// or the notation used for empty elements.
package normhtml

import (
	"bytes"
	"sort"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// NormalizeHTML strips insignificant differences from markup.
// Attributes are sorted by name and double-quoted,
// empty void elements are written as <br>,
// and other self-closing elements are expanded to a start and end tag.
// Comments are kept verbatim.
func NormalizeHTML(b []byte) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}

	tok := html.NewTokenizer(bytes.NewReader(b))
	var output []byte
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			output = append(output, htmlEscaper.Replace(bytes.Clone(tok.Text()))...)
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			output = append(output, "</"...)
			output = append(output, tagBytes...)
			output = append(output, ">"...)
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			tag := string(tagBytes)
			output = append(output, "<"...)
			output = append(output, tag...)
			if hasAttr {
				var attrs []htmlAttribute
				for {
					k, v, more := tok.TagAttr()
					attrs = append(attrs, htmlAttribute{string(k), string(v)})
					if !more {
						break
					}
				}
				sort.Slice(attrs, func(i, j int) bool {
					return attrs[i].key < attrs[j].key
				})
				for _, attr := range attrs {
					output = append(output, " "...)
					output = append(output, attr.key...)
					output = append(output, `="`...)
					output = append(output, html.EscapeString(attr.value)...)
					output = append(output, `"`...)
				}
			}
			output = append(output, ">"...)
			if tt == html.SelfClosingTagToken && !isVoidElement(tag) {
				output = append(output, "</"...)
				output = append(output, tag...)
				output = append(output, ">"...)
			}
		case html.CommentToken, html.DoctypeToken:
			output = append(output, tok.Raw()...)
		}
	}
}

var voidElements = map[string]struct{}{
	atom.Area.String():   {},
	atom.Base.String():   {},
	atom.Br.String():     {},
	atom.Col.String():    {},
	atom.Embed.String():  {},
	atom.Hr.String():     {},
	atom.Img.String():    {},
	atom.Input.String():  {},
	atom.Link.String():   {},
	atom.Meta.String():   {},
	atom.Param.String():  {},
	atom.Source.String(): {},
	atom.Track.String():  {},
	atom.Wbr.String():    {},
}

func isVoidElement(tag string) bool {
	_, ok := voidElements[tag]
	return ok
}
