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

// Edge is a directed hypernym -> hyponym connection
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a simple directed graph (no multi-edges) with nodes
// and edges kept in the order of insertion. The zero value
// is an empty graph ready to use.
type Graph struct {
	Name  string
	Title string

	// global marks the document-wide graph
	global bool

	nodes    []string
	nodeIdx  map[string]int
	edges    []Edge
	edgeSet  map[Edge]bool
	succ     map[string][]string
	inDegree map[string]int
}

func (g *Graph) init() {
	if g.nodeIdx == nil {
		g.nodeIdx = make(map[string]int)
		g.edgeSet = make(map[Edge]bool)
		g.succ = make(map[string][]string)
		g.inDegree = make(map[string]int)
	}
}

func (g *Graph) AddNode(n string) {
	g.init()
	if _, ok := g.nodeIdx[n]; ok {
		return
	}
	g.nodeIdx[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// AddEdge adds both nodes (if missing) and the edge. It returns
// false if the edge has already been present.
func (g *Graph) AddEdge(from, to string) bool {
	g.init()
	e := Edge{From: from, To: to}
	if g.edgeSet[e] {
		return false
	}
	g.AddNode(from)
	g.AddNode(to)
	g.edgeSet[e] = true
	g.edges = append(g.edges, e)
	g.succ[from] = append(g.succ[from], to)
	g.inDegree[to]++
	return true
}

func (g *Graph) HasNode(n string) bool {
	_, ok := g.nodeIdx[n]
	return ok
}

func (g *Graph) HasEdge(from, to string) bool {
	return g.edgeSet[Edge{From: from, To: to}]
}

func (g *Graph) Nodes() []string {
	ans := make([]string, len(g.nodes))
	copy(ans, g.nodes)
	return ans
}

// NodeIndex returns a position of n in the order of insertion
// or -1 if there is no such node.
func (g *Graph) NodeIndex(n string) int {
	if i, ok := g.nodeIdx[n]; ok {
		return i
	}
	return -1
}

func (g *Graph) Edges() []Edge {
	ans := make([]Edge, len(g.edges))
	copy(ans, g.edges)
	return ans
}

func (g *Graph) Successors(n string) []string {
	ans := make([]string, len(g.succ[n]))
	copy(ans, g.succ[n])
	return ans
}

func (g *Graph) OutDegree(n string) int {
	return len(g.succ[n])
}

func (g *Graph) InDegree(n string) int {
	return g.inDegree[n]
}

func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// IsGlobal reports whether g is the global graph created by Build.
// A hypernym graph is never global, whatever its name is.
func (g *Graph) IsGlobal() bool {
	return g.global
}

func NewGraph(name, title string) *Graph {
	return &Graph{
		Name:     name,
		Title:    title,
		nodes:    make([]string, 0, 10),
		nodeIdx:  make(map[string]int),
		edges:    make([]Edge, 0, 10),
		edgeSet:  make(map[Edge]bool),
		succ:     make(map[string][]string),
		inDegree: make(map[string]int),
	}
}
