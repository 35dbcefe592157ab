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
	"regexp"
)

// RawMatch is a purely syntactic match of a pattern. Nothing
// is validated at this stage.
type RawMatch struct {
	HypernymSpan string `json:"hypernymSpan"`
	HyponymsSpan string `json:"hyponymsSpan"`
	PatternID    int    `json:"patternId"`

	// Start and End are byte offsets of the whole match
	Start int `json:"start"`
	End   int `json:"end"`
}

type compiledPattern struct {
	Pattern
	rx          *regexp.Regexp
	hypernymIdx int
	hyponymsIdx int
}

// Matcher applies an ordered table of patterns to a text.
// It is immutable once created and can be shared between goroutines.
type Matcher struct {
	patterns []compiledPattern
}

// Patterns returns a copy of the pattern table in priority order
func (m *Matcher) Patterns() []Pattern {
	ans := make([]Pattern, len(m.patterns))
	for i, p := range m.patterns {
		ans[i] = p.Pattern
	}
	return ans
}

// Match finds all the matches of all the patterns. The result is ordered
// by pattern priority and then by position within the text. Patterns
// are not mutually exclusive so the same span may be reported more than once.
func (m *Matcher) Match(text string) []RawMatch {
	ans := make([]RawMatch, 0, 8)
	if text == "" {
		return ans
	}
	for _, p := range m.patterns {
		for _, loc := range p.rx.FindAllStringSubmatchIndex(text, -1) {
			ans = append(
				ans,
				RawMatch{
					HypernymSpan: groupValue(text, loc, p.hypernymIdx),
					HyponymsSpan: groupValue(text, loc, p.hyponymsIdx),
					PatternID:    p.ID,
					Start:        loc[0],
					End:          loc[1],
				},
			)
		}
	}
	return ans
}

func groupValue(text string, loc []int, idx int) string {
	if 2*idx+1 >= len(loc) || loc[2*idx] < 0 {
		return ""
	}
	return text[loc[2*idx]:loc[2*idx+1]]
}

// NewMatcher compiles the provided patterns. Matching is always
// case-insensitive.
func NewMatcher(patterns []Pattern) (*Matcher, error) {
	ans := &Matcher{patterns: make([]compiledPattern, len(patterns))}
	for i, p := range patterns {
		rx, err := regexp.Compile("(?i)" + p.Expanded())
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s: %w", p, err)
		}
		cp := compiledPattern{
			Pattern:     p,
			rx:          rx,
			hypernymIdx: rx.SubexpIndex(GroupHypernym),
			hyponymsIdx: rx.SubexpIndex(GroupHyponyms),
		}
		if cp.hypernymIdx < 0 || cp.hyponymsIdx < 0 {
			return nil, fmt.Errorf(
				"%s must define both `%s` and `%s` groups", p, GroupHypernym, GroupHyponyms)
		}
		ans.patterns[i] = cp
	}
	return ans, nil
}

// NewDefaultMatcher creates a matcher with the DefaultPatterns table.
func NewDefaultMatcher() *Matcher {
	m, err := NewMatcher(DefaultPatterns())
	if err != nil {
		panic(fmt.Errorf("invalid default pattern table: %w", err))
	}
	return m
}
