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

// Validator answers whether a term is a recognized direct hypernym
// of another term according to the lexicon.
type Validator struct {
	lex               *Lexicon
	instanceHypernyms bool
}

// IsHypernymOf returns true iff some sense of the hyponym lists
// some sense of the hypernym among its direct hypernyms.
// Terms unknown to the lexicon are never related.
func (v *Validator) IsHypernymOf(hypernym, hyponym string) bool {
	hyperSyns := v.lex.Synsets(hypernym)
	if len(hyperSyns) == 0 {
		return false
	}
	hyperIDs := make(map[string]bool, len(hyperSyns))
	for _, s := range hyperSyns {
		hyperIDs[s.ID] = true
	}
	for _, s := range v.lex.Synsets(hyponym) {
		for _, h := range s.Hypernyms {
			if hyperIDs[h] {
				return true
			}
		}
		if v.instanceHypernyms {
			for _, h := range s.InstanceHypernyms {
				if hyperIDs[h] {
					return true
				}
			}
		}
	}
	return false
}

func NewValidator(lex *Lexicon, conf *Conf) *Validator {
	return &Validator{
		lex:               lex,
		instanceHypernyms: conf != nil && conf.InstanceHypernyms,
	}
}
