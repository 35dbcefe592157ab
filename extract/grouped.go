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

package extract

import (
	"github.com/bytedance/sonic"
)

type groupedItem struct {
	Hypernym string   `json:"hypernym"`
	Hyponyms []string `json:"hyponyms"`
}

// GroupedRelations maps hypernyms to their hyponyms. Keys keep
// the order of their first occurrence. The zero value is an empty
// collection ready to use.
type GroupedRelations struct {
	keys  []string
	items map[string][]string
}

// Add appends hyponym to the sequence of hypernym. Duplicates are kept.
func (gr *GroupedRelations) Add(hypernym, hyponym string) {
	if gr.items == nil {
		gr.items = make(map[string][]string)
	}
	if _, ok := gr.items[hypernym]; !ok {
		gr.keys = append(gr.keys, hypernym)
	}
	gr.items[hypernym] = append(gr.items[hypernym], hyponym)
}

func (gr *GroupedRelations) Keys() []string {
	ans := make([]string, len(gr.keys))
	copy(ans, gr.keys)
	return ans
}

func (gr *GroupedRelations) Hyponyms(hypernym string) []string {
	v, ok := gr.items[hypernym]
	if !ok {
		return []string{}
	}
	ans := make([]string, len(v))
	copy(ans, v)
	return ans
}

func (gr *GroupedRelations) Len() int {
	return len(gr.keys)
}

// NumPairs returns the total number of hyponyms (including duplicates)
func (gr *GroupedRelations) NumPairs() int {
	var ans int
	for _, v := range gr.items {
		ans += len(v)
	}
	return ans
}

func (gr *GroupedRelations) Each(fn func(hypernym string, hyponyms []string)) {
	for _, k := range gr.keys {
		fn(k, gr.items[k])
	}
}

// Deduplicated returns a copy where each hypernym has unique
// hyponyms (order of first occurrence is kept).
func (gr *GroupedRelations) Deduplicated() *GroupedRelations {
	ans := NewGroupedRelations()
	for _, k := range gr.keys {
		seen := make(map[string]bool)
		for _, h := range gr.items[k] {
			if !seen[h] {
				ans.Add(k, h)
				seen[h] = true
			}
		}
	}
	return ans
}

func (gr *GroupedRelations) MarshalJSON() ([]byte, error) {
	tmp := make([]groupedItem, len(gr.keys))
	for i, k := range gr.keys {
		tmp[i] = groupedItem{Hypernym: k, Hyponyms: gr.items[k]}
	}
	return sonic.Marshal(tmp)
}

func (gr *GroupedRelations) UnmarshalJSON(data []byte) error {
	var tmp []groupedItem
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	gr.keys = make([]string, 0, len(tmp))
	gr.items = make(map[string][]string)
	for _, item := range tmp {
		if _, ok := gr.items[item.Hypernym]; !ok {
			gr.keys = append(gr.keys, item.Hypernym)
		}
		gr.items[item.Hypernym] = append(gr.items[item.Hypernym], item.Hyponyms...)
	}
	return nil
}

func NewGroupedRelations() *GroupedRelations {
	return &GroupedRelations{
		keys:  make([]string, 0, 10),
		items: make(map[string][]string),
	}
}

// Group builds GroupedRelations out of validated pairs
func Group(pairs []ValidatedPair) *GroupedRelations {
	ans := NewGroupedRelations()
	for _, p := range pairs {
		ans.Add(p.Hypernym, p.Hyponym)
	}
	return ans
}
