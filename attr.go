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
)

// An Attribute is a single name/value pair inside a tag.
type Attribute struct {
	Key   string
	Value string
	// Bare is true for a minimized attribute written without a value,
	// like "disabled" in <input disabled>.
	Bare bool
}

// Attributes is an ordered list of attributes.
// The order is the order in which the attributes appeared in the source
// and is preserved when a tag is written back out.
type Attributes []Attribute

// Len returns the number of attributes.
func (attrs Attributes) Len() int {
	return len(attrs)
}

// Index returns the index of the attribute with the given key
// or -1 if it is not present.
func (attrs Attributes) Index(key string) int {
	for i := range attrs {
		if attrs[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value of the attribute with the given key
// and whether it was present.
func (attrs Attributes) Get(key string) (value string, ok bool) {
	i := attrs.Index(key)
	if i < 0 {
		return "", false
	}
	return attrs[i].Value, true
}

// Set sets the value of the attribute with the given key.
// An existing attribute keeps its position; a new one is appended.
func (attrs *Attributes) Set(key, value string) {
	if i := attrs.Index(key); i >= 0 {
		(*attrs)[i].Value = value
		(*attrs)[i].Bare = false
		return
	}
	*attrs = append(*attrs, Attribute{Key: key, Value: value})
}

func (attrs *Attributes) setBare(key string) {
	if attrs.Index(key) >= 0 {
		return
	}
	*attrs = append(*attrs, Attribute{Key: key, Bare: true})
}

// Clone returns a copy of attrs that does not share storage.
func (attrs Attributes) Clone() Attributes {
	if attrs == nil {
		return nil
	}
	return append(Attributes(nil), attrs...)
}

// ParseAttributes parses a string of attribute assignments
// such as `class="note" id=x` into an ordered list.
// It uses the same rules as tag parsing,
// so attribute names are lower-cased
// unless they are one of the mixed-case SVG attribute names.
func ParseAttributes(s string) (Attributes, error) {
	attrs, _, err := lexAttributes(s, 0, false)
	return attrs, err
}

// lexAttributes parses attributes in s starting at p.
// If inTag is true, s is the interior of a tag
// and a trailing slash marks a self-closing tag rather than part of a value.
// It returns the offset after the last attribute,
// so s[end:] holds only whitespace and, in a tag, an optional self-closing slash.
func lexAttributes(s string, p int, inTag bool) (attrs Attributes, end int, err error) {
	for {
		start := p
		p = skipSpace(s, p)
		if p >= len(s) {
			return attrs, p, nil
		}
		eq := strings.IndexByte(s[p:], '=')
		if eq < 0 {
			// Keep the whitespace before a trailing slash
			// so the caller can tell <br/> from <br />.
			return lexBareTail(s, start, attrs, inTag)
		}

		// Anything before the last word is a minimized attribute.
		words := strings.Fields(s[p : p+eq])
		if len(words) == 0 {
			return nil, p, &ParseError{Offset: p, Msg: "attribute value without a name"}
		}
		for _, w := range words[:len(words)-1] {
			attrs.setBare(foldAttributeName(w))
		}
		name := foldAttributeName(words[len(words)-1])

		p = skipSpace(s, p+eq+1)
		var value string
		if p < len(s) && s[p] == '"' {
			close := strings.IndexByte(s[p+1:], '"')
			if close < 0 {
				return nil, p, &ParseError{Offset: p, Msg: "unterminated quote in value of attribute " + name}
			}
			value = s[p+1 : p+1+close]
			p += close + 2
		} else {
			start := p
			for p < len(s) && !isSpace(s[p]) && s[p] != '>' && !(inTag && s[p] == '/' && closesTag(s, p)) {
				p++
			}
			value = s[start:p]
		}
		attrs.Set(name, value)
	}
}

// lexBareTail handles the text after the last '=':
// any remaining words are minimized attributes
// and, in a tag, a trailing slash is left for the caller.
func lexBareTail(s string, p int, attrs Attributes, inTag bool) (Attributes, int, error) {
	body := strings.TrimRightFunc(s[p:], isSpaceRune)
	body = strings.TrimSuffix(body, ">")
	if inTag && strings.HasSuffix(body, "/") {
		body = strings.TrimRightFunc(body[:len(body)-1], isSpaceRune)
	}
	for _, w := range strings.Fields(body) {
		attrs.setBare(foldAttributeName(w))
	}
	return attrs, p + len(body), nil
}

// closesTag reports whether the slash at s[i] is the slash of a self-closing tag.
func closesTag(s string, i int) bool {
	rest := strings.TrimLeftFunc(s[i+1:], isSpaceRune)
	return rest == "" || rest[0] == '>'
}

func foldAttributeName(name string) string {
	if _, ok := svgAttributes[name]; ok {
		return name
	}
	return strings.ToLower(name)
}

func skipSpace(s string, p int) int {
	for p < len(s) && isSpace(s[p]) {
		p++
	}
	return p
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isSpaceRune(c rune) bool {
	return c < 0x80 && isSpace(byte(c))
}

// svgAttributes is the set of SVG attribute names that are case-sensitive
// and thus must not be lower-cased.
var svgAttributes = map[string]struct{}{
	"attributeName":             {},
	"attributeType":             {},
	"baseFrequency":             {},
	"baseProfile":               {},
	"calcMode":                  {},
	"clipPathUnits":             {},
	"contentScriptType":         {},
	"contentStyleType":          {},
	"diffuseConstant":           {},
	"edgeMode":                  {},
	"externalResourcesRequired": {},
	"filterRes":                 {},
	"filterUnits":               {},
	"glyphRef":                  {},
	"gradientTransform":         {},
	"gradientUnits":             {},
	"kernelMatrix":              {},
	"kernelUnitLength":          {},
	"keyPoints":                 {},
	"keySplines":                {},
	"keyTimes":                  {},
	"lengthAdjust":              {},
	"limitingConeAngle":         {},
	"markerHeight":              {},
	"markerUnits":               {},
	"markerWidth":               {},
	"maskContentUnits":          {},
	"maskUnits":                 {},
	"numOctaves":                {},
	"pathLength":                {},
	"patternContentUnits":       {},
	"patternTransform":          {},
	"patternUnits":              {},
	"pointsAtX":                 {},
	"pointsAtY":                 {},
	"pointsAtZ":                 {},
	"preserveAlpha":             {},
	"preserveAspectRatio":       {},
	"primitiveUnits":            {},
	"refX":                      {},
	"refY":                      {},
	"repeatCount":               {},
	"repeatDur":                 {},
	"requiredExtensions":        {},
	"requiredFeatures":          {},
	"specularConstant":          {},
	"specularExponent":          {},
	"spreadMethod":              {},
	"startOffset":               {},
	"stdDeviation":              {},
	"stitchTiles":               {},
	"surfaceScale":              {},
	"systemLanguage":            {},
	"tableValues":               {},
	"targetX":                   {},
	"targetY":                   {},
	"textLength":                {},
	"viewBox":                   {},
	"viewTarget":                {},
	"xChannelSelector":          {},
	"yChannelSelector":          {},
	"zoomAndPan":                {},
}
