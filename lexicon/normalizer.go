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

package lexicon

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidSpan = errors.New("span is not a valid UTF-8 string")

	// Stopwords are never considered as candidate terms
	Stopwords = map[string]bool{
		"and": true, "or": true, "but": true, "the": true, "a": true, "an": true,
		"are": true, "is": true, "was": true, "were": true, "be": true,
		"being": true, "been": true,
	}

	// closedClass contains function words which are never nouns
	// in the hyponym spans even though some of them have a noun
	// sense in the lexicon (e.g. `will`, `can`).
	closedClass = map[string]bool{
		"i": true, "me": true, "my": true, "we": true, "us": true, "our": true,
		"you": true, "your": true, "he": true, "him": true, "his": true,
		"she": true, "her": true, "it": true, "its": true, "they": true,
		"them": true, "their": true, "this": true, "that": true, "these": true,
		"those": true, "who": true, "whom": true, "which": true, "what": true,
		"whose": true, "of": true, "in": true, "on": true, "at": true, "by": true,
		"for": true, "with": true, "from": true, "to": true, "into": true,
		"onto": true, "about": true, "over": true, "under": true,
		"between": true, "among": true, "through": true, "during": true,
		"before": true, "after": true, "above": true, "below": true,
		"without": true, "within": true, "than": true, "as": true, "like": true,
		"such": true, "including": true, "especially": true, "nor": true,
		"so": true, "yet": true, "if": true, "then": true, "because": true,
		"while": true, "although": true, "though": true, "whether": true,
		"do": true, "does": true, "did": true, "has": true, "have": true,
		"had": true, "having": true, "can": true, "could": true, "may": true,
		"might": true, "must": true, "shall": true, "should": true, "will": true,
		"would": true, "not": true, "no": true, "also": true, "very": true,
		"too": true, "only": true, "just": true, "other": true, "others": true,
		"some": true, "any": true, "many": true, "much": true, "more": true,
		"most": true, "few": true, "several": true, "all": true, "both": true,
		"each": true, "every": true, "either": true, "neither": true, "etc": true,
	}
)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isCapitalized(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// Normalizer turns a raw span of text into a set of candidate
// terms - lowercase base forms of nouns.
type Normalizer struct {
	lex           *Lexicon
	acceptUnknown bool
}

// Tokenize splits a span into word tokens (letters, digits, underscore)
func Tokenize(span string) []string {
	return strings.FieldsFunc(span, func(r rune) bool { return !isWordRune(r) })
}

// Normalize returns unique candidate terms in the order of their first
// occurrence. Only noun-like tokens are kept: words known to the lexicon
// and capitalized unknown words (proper nouns).
func (n *Normalizer) Normalize(span string) ([]string, error) {
	if !utf8.ValidString(span) {
		return nil, ErrInvalidSpan
	}
	lower := cases.Lower(language.English)
	ans := make([]string, 0, 4)
	seen := make(map[string]bool)
	for _, token := range Tokenize(norm.NFC.String(span)) {
		if !hasLetter(token) {
			continue
		}
		low := lower.String(token)
		if Stopwords[low] || closedClass[low] {
			continue
		}
		lemma, ok := n.lex.Lemma(low)
		if !ok {
			if !n.acceptUnknown && !isCapitalized(token) {
				continue
			}
			lemma = inflection.Singular(low)
		}
		if Stopwords[lemma] || seen[lemma] {
			continue
		}
		seen[lemma] = true
		ans = append(ans, lemma)
	}
	return ans, nil
}

// Lemma returns a lowercase base form of a single word. Unlike
// Normalize, it does not filter anything.
func (n *Normalizer) Lemma(word string) string {
	low := cases.Lower(language.English).String(strings.TrimSpace(word))
	if lemma, ok := n.lex.Lemma(low); ok {
		return lemma
	}
	return inflection.Singular(low)
}

func NewNormalizer(lex *Lexicon, conf *Conf) *Normalizer {
	return &Normalizer{
		lex:           lex,
		acceptUnknown: conf != nil && conf.AcceptUnknownTokens,
	}
}
