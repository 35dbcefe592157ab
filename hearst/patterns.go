// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of CONMAP.
//
//  CONMAP is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  CONMAP is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with CONMAP.  If not, see <https://www.gnu.org/licenses/>.

package hearst

import (
	"fmt"
	"strings"
)

const (
	// GroupHypernym is the name of the capture group holding a hypernym
	GroupHypernym = "hypernym"

	// GroupHyponyms is the name of the capture group holding a run
	// of hyponym candidates
	GroupHyponyms = "hyponyms"

	wordChars = `\p{L}\p{N}_`

	// spaceChars covers ASCII whitespace along with Unicode separators
	// (e.g. no-break space)
	spaceChars = `\s\p{Z}`
)

// Pattern is a single entry of the ordered cue table.
// The Expr must contain both the `hypernym` and `hyponyms`
// named groups. The expressions may use the `{W}` placeholder
// for a single word, the `{S}` placeholder for a run of words,
// commas and whitespace and the `{_}` placeholder for a word separator.
// All of them are expanded to Unicode-aware character classes
// when compiling.
type Pattern struct {
	ID   int    `json:"id"`
	Cue  string `json:"cue"`
	Expr string `json:"expr"`
}

// Expanded returns the expression with placeholders replaced
// by the actual character classes.
func (p Pattern) Expanded() string {
	r := strings.NewReplacer(
		"{W}", fmt.Sprintf("[%s]+", wordChars),
		"{S}", fmt.Sprintf(`[%s%s,]+`, wordChars, spaceChars),
		"{_}", fmt.Sprintf(`[%s]+`, spaceChars),
	)
	return r.Replace(p.Expr)
}

func (p Pattern) String() string {
	return fmt.Sprintf("Pattern #%d (%s)", p.ID, p.Cue)
}

// DefaultPatterns returns the fixed priority table of Hearst-like
// patterns. Note that some cues are present more than once
// ("such as", "are kinds of") which means the same text span can produce
// more than one match. This is expected.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			ID:   0,
			Cue:  "X such as|including|especially|like Y",
			Expr: `(?P<hypernym>{W}){_}(?:such as|including|especially|like){_}(?P<hyponyms>{S})`,
		},
		{
			ID:   1,
			Cue:  "Y are types of|are kinds of X",
			Expr: `(?P<hyponyms>{S}){_}(?:are types of|are kinds of){_}(?P<hypernym>{W})`,
		},
		{
			ID:   2,
			Cue:  "X is a hypernym of Y",
			Expr: `(?P<hypernym>{W}){_}is a hypernym of{_}(?P<hyponyms>{S})`,
		},
		{
			ID:   3,
			Cue:  "Y are hyponyms of the word X",
			Expr: `(?P<hyponyms>{S}){_}are hyponyms of the word{_}["']?(?P<hypernym>{W})["']?`,
		},
		{
			ID:   4,
			Cue:  "X includes Y",
			Expr: `(?P<hypernym>{W}){_}includes{_}(?P<hyponyms>{S})`,
		},
		{
			ID:   5,
			Cue:  "Y are examples of X",
			Expr: `(?P<hyponyms>{S}){_}are examples of{_}(?P<hypernym>{W})`,
		},
		{
			ID:   6,
			Cue:  "X such as Y",
			Expr: `(?P<hypernym>{W}){_}such as{_}(?P<hyponyms>{S})`,
		},
		{
			ID:   7,
			Cue:  "Y are members of the class X",
			Expr: `(?P<hyponyms>{S}){_}are members of the class{_}(?P<hypernym>{W})`,
		},
		{
			ID:   8,
			Cue:  "Y are kinds of X",
			Expr: `(?P<hyponyms>{S}){_}are kinds of{_}(?P<hypernym>{W})`,
		},
	}
}
