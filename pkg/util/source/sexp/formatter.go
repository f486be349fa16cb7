// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sexp

import "strings"

// Formatter lays out an S-Expression so that, where possible, no line exceeds a
// given width.  A list which does not fit on the current line is broken after
// its first operand, with each remaining operand on its own line and indented
// one level deeper than the list itself:
//
//	(head child1
//	   child2
//	   ...
//	   childn)
type Formatter struct {
	// Maximum desired width
	maxWidth uint
	// Text used for one level of indentation
	indent string
}

// NewFormatter constructs a new formatter which aims to fit its output within a
// given width.
func NewFormatter(width uint) *Formatter {
	return &Formatter{width, "   "}
}

// Format a given S-Expression, returning one or more newline terminated lines.
func (p *Formatter) Format(sexp SExp) string {
	var text formattedText
	//
	p.format(sexp, 0, &text)
	//
	return text.String()
}

func (p *Formatter) format(sexp SExp, depth int, text *formattedText) {
	var (
		flat = sexp.String(true)
		list = sexp.AsList()
	)
	// Symbols, empty lists and anything which fits are written as is.
	if list == nil || list.Len() < 2 || text.lineWidth()+uint(len(flat)) <= p.maxWidth {
		text.writeString(flat)
		return
	}
	//
	text.writeString("(")
	p.format(list.Get(0), depth+1, text)
	//
	for i := 1; i < list.Len(); i++ {
		if i == 1 {
			text.writeString(" ")
		} else {
			text.newLine(strings.Repeat(p.indent, depth+1))
		}
		//
		p.format(list.Get(i), depth+1, text)
	}
	//
	text.writeString(")")
}

// formattedText accumulates the lines of a formatted block of text.
type formattedText struct {
	lines []string
}

func (p *formattedText) String() string {
	var builder strings.Builder
	//
	for _, l := range p.lines {
		builder.WriteString(l)
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// newLine starts a new line with the given indentation prefix.
func (p *formattedText) newLine(prefix string) {
	p.lines = append(p.lines, prefix)
}

// lineWidth returns the width of the current line.
func (p *formattedText) lineWidth() uint {
	var n = len(p.lines)
	//
	if n == 0 {
		return 0
	}
	// Width of last line
	return uint(len(p.lines[n-1]))
}

// writeString appends a string onto the current line.
func (p *formattedText) writeString(str string) {
	if n := len(p.lines); n == 0 {
		p.lines = append(p.lines, str)
	} else {
		p.lines[n-1] += str
	}
}
