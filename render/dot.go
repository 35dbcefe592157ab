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

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"conmap/cgraph"

	"github.com/awalterschulze/gographviz"
)

var dotIDEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

var dotNodeAttrs = map[string]string{
	"shape":     "circle",
	"style":     "filled",
	"fillcolor": `"#1f78b4"`,
}

// DOTRenderer writes graphs in the Graphviz DOT language
type DOTRenderer struct {
	outputDir string
}

func (r *DOTRenderer) Extension() string {
	return "gv"
}

// dotID produces a double-quoted DOT identifier. Within such strings
// DOT only defines escaped quotes so backslashes are doubled too.
func dotID(s string) string {
	return `"` + dotIDEscaper.Replace(s) + `"`
}

// NewDOTGraph converts a concept graph into a gographviz graph.
// All the identifiers are quoted so any label is allowed.
func NewDOTGraph(g *cgraph.Graph, title string) (*gographviz.Graph, error) {
	ans := gographviz.NewGraph()
	name := dotID(g.Name)
	if err := ans.SetName(name); err != nil {
		return nil, err
	}
	if err := ans.SetDir(true); err != nil {
		return nil, err
	}
	if err := ans.AddAttr(name, "label", dotID(title)); err != nil {
		return nil, err
	}
	if err := ans.AddAttr(name, "labelloc", "t"); err != nil {
		return nil, err
	}
	for _, n := range g.Nodes() {
		if err := ans.AddNode(name, dotID(n), dotNodeAttrs); err != nil {
			return nil, fmt.Errorf("failed to add node %s: %w", n, err)
		}
	}
	for _, e := range g.Edges() {
		if err := ans.AddEdge(dotID(e.From), dotID(e.To), true, nil); err != nil {
			return nil, fmt.Errorf("failed to add edge %s -> %s: %w", e.From, e.To, err)
		}
	}
	return ans, nil
}

// WriteDOT writes the graph in the DOT format.
func WriteDOT(w io.Writer, g *cgraph.Graph, title string) error {
	dg, err := NewDOTGraph(g, title)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, dg.String())
	return err
}

func (r *DOTRenderer) Render(g *cgraph.Graph, title, outputName string) (Artifact, error) {
	path, err := prepareTarget(r.outputDir, outputName)
	if err != nil {
		return Artifact{}, err
	}
	f, err := os.Create(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteDOT(f, g, title); err != nil {
		f.Close()
		return Artifact{}, fmt.Errorf("failed to write graph %s: %w", g.Name, err)
	}
	if err := f.Close(); err != nil {
		return Artifact{}, fmt.Errorf("failed to write graph %s: %w", g.Name, err)
	}
	return newArtifact(g, title, outputName, path), nil
}

func NewDOTRenderer(conf *Conf) *DOTRenderer {
	return &DOTRenderer{outputDir: conf.OutputDir}
}
