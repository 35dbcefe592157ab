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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEmptyText(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("")
	assert.NotNil(t, ans)
	assert.Len(t, ans, 0)
}

func TestMatchNoCuePhrase(t *testing.T) {
	m := NewDefaultMatcher()
	assert.Len(t, m.Match("The weather is nice today."), 0)
	assert.Len(t, m.Match("   \n\t "), 0)
}

func TestMatchSuchAsProducesTwoMatches(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("Fruits such as apples, bananas and oranges are healthy.")
	require.Len(t, ans, 2)
	assert.Equal(t, 0, ans[0].PatternID)
	assert.Equal(t, 6, ans[1].PatternID)
	for _, v := range ans {
		assert.Equal(t, "Fruits", v.HypernymSpan)
		assert.Equal(t, "apples, bananas and oranges are healthy", v.HyponymsSpan)
		assert.Equal(t, 0, v.Start)
	}
}

func TestMatchHyponymsFirst(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("Dogs, cats and horses are kinds of animals.")
	require.Len(t, ans, 2)
	assert.Equal(t, 1, ans[0].PatternID)
	assert.Equal(t, 8, ans[1].PatternID)
	assert.Equal(t, "animals", ans[0].HypernymSpan)
	assert.Equal(t, "Dogs, cats and horses", ans[0].HyponymsSpan)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("VEHICLES SUCH AS cars")
	require.Len(t, ans, 2)
	assert.Equal(t, "VEHICLES", ans[0].HypernymSpan)
	assert.Equal(t, "cars", ans[0].HyponymsSpan)
}

func TestMatchQuotedHypernym(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match(`Apples and pears are hyponyms of the word "fruit"`)
	require.Len(t, ans, 1)
	assert.Equal(t, 3, ans[0].PatternID)
	assert.Equal(t, "fruit", ans[0].HypernymSpan)
	assert.Equal(t, "Apples and pears", ans[0].HyponymsSpan)
}

func TestMatchOrderFollowsPriorityThenPosition(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("animals such as dogs. colors such as red")
	require.Len(t, ans, 4)
	assert.Equal(t, []int{0, 0, 6, 6}, []int{
		ans[0].PatternID, ans[1].PatternID, ans[2].PatternID, ans[3].PatternID})
	assert.Equal(t, "animals", ans[0].HypernymSpan)
	assert.Equal(t, "colors", ans[1].HypernymSpan)
	assert.Equal(t, "animals", ans[2].HypernymSpan)
	assert.Equal(t, "colors", ans[3].HypernymSpan)
	assert.Less(t, ans[0].Start, ans[1].Start)
}

func TestMatchBlankHyponymsStillEmitted(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("fruits such as , .")
	require.Len(t, ans, 2)
	assert.Equal(t, "", strings.Trim(ans[0].HyponymsSpan, ", "))
}

func TestMatchUnicodeWords(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("Cafés such as bistros")
	require.NotEmpty(t, ans)
	assert.Equal(t, "Cafés", ans[0].HypernymSpan)
}

func TestMatchIncludesAndExamples(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("Furniture includes chairs and tables")
	require.Len(t, ans, 1)
	assert.Equal(t, 4, ans[0].PatternID)
	assert.Equal(t, "chairs and tables", ans[0].HyponymsSpan)

	ans = m.Match("Roses and tulips are examples of flowers")
	require.Len(t, ans, 1)
	assert.Equal(t, 5, ans[0].PatternID)
	assert.Equal(t, "flowers", ans[0].HypernymSpan)
}

func TestNewMatcherRequiresBothGroups(t *testing.T) {
	_, err := NewMatcher([]Pattern{{ID: 0, Cue: "broken", Expr: `(?P<hypernym>{W}) such as`}})
	assert.Error(t, err)

	_, err = NewMatcher([]Pattern{{ID: 0, Cue: "invalid", Expr: `(?P<hypernym>{W}`}})
	assert.Error(t, err)
}

func TestPatternsReturnsTableCopy(t *testing.T) {
	m := NewDefaultMatcher()
	p := m.Patterns()
	assert.Len(t, p, len(DefaultPatterns()))
	p[0].Cue = "changed"
	assert.NotEqual(t, "changed", m.Patterns()[0].Cue)
}

func TestMatchUnicodeSeparators(t *testing.T) {
	m := NewDefaultMatcher()
	ans := m.Match("Fruits such as apples,\u00a0bananas and oranges.")
	require.Len(t, ans, 2)
	assert.Equal(t, "Fruits", ans[0].HypernymSpan)
	assert.Equal(t, "apples,\u00a0bananas and oranges", ans[0].HyponymsSpan)

	ans = m.Match("Dogs\u00a0and cats are kinds of\u00a0animals")
	require.Len(t, ans, 2)
	assert.Equal(t, "animals", ans[0].HypernymSpan)
	assert.Equal(t, "Dogs\u00a0and cats", ans[0].HyponymsSpan)
}
