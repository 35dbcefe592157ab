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
	"fmt"
	"strings"
)

var (
	ErrUnknownSynset = errors.New("unknown synset")
)

// Synset is a set of synonymous nouns sharing a single sense.
// Hypernyms and InstanceHypernyms refer to IDs of other synsets.
type Synset struct {
	ID                string   `json:"id" yaml:"id"`
	Words             []string `json:"words" yaml:"words"`
	Hypernyms         []string `json:"hypernyms,omitempty" yaml:"hypernyms,omitempty"`
	InstanceHypernyms []string `json:"instanceHypernyms,omitempty" yaml:"instanceHypernyms,omitempty"`
	Gloss             string   `json:"gloss,omitempty" yaml:"gloss,omitempty"`
}

// Lexicon is a noun-only lexical database in the spirit of WordNet.
// It is populated by one of the loaders and it must not be modified
// once shared between goroutines.
type Lexicon struct {
	synsets    map[string]*Synset
	index      map[string][]string
	exceptions map[string][]string
}

func normalizeLemma(w string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(w)), " ", "_")
}

// AddSynset adds a synset and indexes all its words.
// Adding a synset with an already existing ID replaces
// the original definition but keeps the original index entries.
func (lex *Lexicon) AddSynset(s Synset) {
	cp := s
	lex.synsets[s.ID] = &cp
	for _, w := range s.Words {
		lemma := normalizeLemma(w)
		if lemma == "" {
			continue
		}
		var found bool
		for _, id := range lex.index[lemma] {
			if id == s.ID {
				found = true
				break
			}
		}
		if !found {
			lex.index[lemma] = append(lex.index[lemma], s.ID)
		}
	}
}

// AddException registers irregular base forms for an inflected form
// (e.g. mice -> mouse)
func (lex *Lexicon) AddException(form string, bases ...string) {
	form = normalizeLemma(form)
	for _, b := range bases {
		lex.exceptions[form] = append(lex.exceptions[form], normalizeLemma(b))
	}
}

func (lex *Lexicon) Synset(id string) (*Synset, bool) {
	s, ok := lex.synsets[id]
	return s, ok
}

// HasLemma tests whether the exact lemma is a known noun
func (lex *Lexicon) HasLemma(lemma string) bool {
	_, ok := lex.index[normalizeLemma(lemma)]
	return ok
}

// Size returns number of synsets
func (lex *Lexicon) Size() int {
	return len(lex.synsets)
}

// NumLemmas returns number of indexed lemmas
func (lex *Lexicon) NumLemmas() int {
	return len(lex.index)
}

// Synsets returns all the synsets for all the base forms
// of the word (see Morphy). The order follows the base forms
// and then the index order.
func (lex *Lexicon) Synsets(word string) []*Synset {
	forms := lex.Morphy(word)
	ans := make([]*Synset, 0, len(forms))
	seen := make(map[string]bool)
	for _, form := range forms {
		for _, id := range lex.index[form] {
			if seen[id] {
				continue
			}
			seen[id] = true
			if s, ok := lex.synsets[id]; ok {
				ans = append(ans, s)
			}
		}
	}
	return ans
}

// Lemma returns the shortest base form of the word known
// to the lexicon. The second value is false if no base form is known.
func (lex *Lexicon) Lemma(word string) (string, bool) {
	forms := lex.Morphy(word)
	if len(forms) == 0 {
		return "", false
	}
	ans := forms[0]
	for _, f := range forms[1:] {
		if len(f) < len(ans) {
			ans = f
		}
	}
	return ans, true
}

// Validate checks that all the hypernym references point
// to existing synsets.
func (lex *Lexicon) Validate() error {
	for _, s := range lex.synsets {
		for _, h := range s.Hypernyms {
			if _, ok := lex.synsets[h]; !ok {
				return fmt.Errorf("%w %s referenced by %s", ErrUnknownSynset, h, s.ID)
			}
		}
		for _, h := range s.InstanceHypernyms {
			if _, ok := lex.synsets[h]; !ok {
				return fmt.Errorf("%w %s referenced by %s", ErrUnknownSynset, h, s.ID)
			}
		}
	}
	return nil
}

func NewLexicon() *Lexicon {
	return &Lexicon{
		synsets:    make(map[string]*Synset),
		index:      make(map[string][]string),
		exceptions: make(map[string][]string),
	}
}
