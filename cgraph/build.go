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

package cgraph

import (
	"fmt"

	"conmap/extract"

	"github.com/rs/zerolog/log"
)

const (
	// RootLabel is the synthetic root of the global graph
	RootLabel = "Concept Map of the Document"

	// GlobalName identifies the global graph
	GlobalName = "global"

	GlobalTitle = "Global Concept Map of the Document"
)

func HypernymTitle(hypernym string) string {
	return fmt.Sprintf("Concept Map: %s", hypernym)
}

// ConceptMaps contains one graph per hypernym plus
// the global graph connecting all of them.
type ConceptMaps struct {
	Graphs []*Graph
	Global *Graph
}

// All returns the per-hypernym graphs followed by the global one
func (cm *ConceptMaps) All() []*Graph {
	ans := make([]*Graph, 0, len(cm.Graphs)+1)
	ans = append(ans, cm.Graphs...)
	if cm.Global != nil {
		ans = append(ans, cm.Global)
	}
	return ans
}

// Empty reports whether there are no hypernyms at all.
// In such case, no artifacts should be produced.
func (cm *ConceptMaps) Empty() bool {
	return len(cm.Graphs) == 0
}

func newGlobalGraph() *Graph {
	ans := NewGraph(GlobalName, GlobalTitle)
	ans.global = true
	return ans
}

// Build creates concept graphs out of grouped relations. Graphs
// follow the order of hypernyms.
func Build(grouped *extract.GroupedRelations) *ConceptMaps {
	ans := &ConceptMaps{
		Graphs: make([]*Graph, 0, grouped.Len()),
		Global: newGlobalGraph(),
	}
	ans.Global.AddNode(RootLabel)
	grouped.Each(func(hypernym string, hyponyms []string) {
		g := NewGraph(hypernym, HypernymTitle(hypernym))
		g.AddNode(hypernym)
		for _, h := range hyponyms {
			g.AddEdge(hypernym, h)
		}
		ans.Graphs = append(ans.Graphs, g)
		ans.Global.AddEdge(RootLabel, hypernym)
	})
	for _, g := range ans.Graphs {
		for _, e := range g.edges {
			ans.Global.AddEdge(e.From, e.To)
		}
	}
	log.Debug().
		Int("numGraphs", len(ans.Graphs)).
		Int("globalEdges", ans.Global.NumEdges()).
		Msg("built concept graphs")
	return ans
}
