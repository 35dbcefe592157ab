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

import "strings"

type detachRule struct {
	suffix string
	repl   string
}

// nounRules are the WordNet "morphy" detachment rules for nouns
var nounRules = []detachRule{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// Morphy returns base forms of a (possibly inflected) noun which
// are present in the lexicon. The word itself is considered first,
// then either the irregular forms from the exception list or the forms
// produced by the detachment rules.
func (lex *Lexicon) Morphy(word string) []string {
	form := normalizeLemma(word)
	if form == "" {
		return []string{}
	}
	candidates := []string{form}
	if exc, ok := lex.exceptions[form]; ok {
		candidates = append(candidates, exc...)

	} else {
		for _, rule := range nounRules {
			if strings.HasSuffix(form, rule.suffix) && len(form) > len(rule.suffix) {
				candidates = append(candidates, form[:len(form)-len(rule.suffix)]+rule.repl)
			}
		}
	}
	ans := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, c := range candidates {
		if _, ok := lex.index[c]; ok && !seen[c] {
			ans = append(ans, c)
			seen[c] = true
		}
	}
	return ans
}
