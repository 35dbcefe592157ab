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
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"conmap/cgraph"
	"conmap/extract"

	"github.com/awalterschulze/gographviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	mu      sync.Mutex
	names   []string
	failOn  string
	panicOn string
}

func (r *recordingRenderer) Extension() string {
	return "txt"
}

func (r *recordingRenderer) Render(g *cgraph.Graph, title, outputName string) (Artifact, error) {
	if g.Name == r.failOn {
		return Artifact{}, errors.New("disk full")
	}
	if g.Name == r.panicOn {
		panic("renderer crashed")
	}
	r.mu.Lock()
	r.names = append(r.names, outputName)
	r.mu.Unlock()
	return newArtifact(g, title, outputName, outputName), nil
}

func testMaps() *cgraph.ConceptMaps {
	return cgraph.Build(extract.Group([]extract.ValidatedPair{
		{Hypernym: "fruit", Hyponym: "apple"},
		{Hypernym: "fruit", Hyponym: "pear"},
		{Hypernym: "animal", Hyponym: "bird"},
		{Hypernym: "metal", Hyponym: "iron"},
	}))
}

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "concept_map_fruit.png", ArtifactName("fruit", "png"))
	assert.Equal(t, "concept_map_ice_cream.png", ArtifactName("ice cream", "png"))
	assert.Equal(t, "concept_map____etc.gv", ArtifactName("../etc", "gv"))
	assert.Equal(t, "concept_map_café.png", ArtifactName("café", "png"))
	assert.Equal(t, "concept_map_global_.png", ArtifactName("global", "png"))
	assert.Equal(t, "concept_map_Global_.png", ArtifactName("Global", "png"))
	assert.Equal(t, "concept_map__.png", ArtifactName("", "png"))
	assert.Equal(t, "concept_map_global__.png", ArtifactName("global_", "png"))
	assert.Equal(t, "concept_map_fruit__.png", ArtifactName("fruit_", "png"))
	assert.Equal(t, "concept_map_ice_cream__.png", ArtifactName("ice cream?", "png"))
	assert.NotEqual(t, ArtifactName("global", "png"), ArtifactName("global_", "png"))
	assert.NotEqual(t, ArtifactName("", "png"), ArtifactName("_", "png"))
	assert.Equal(t, "concept_map_global.png", GlobalArtifactName("png"))
}

func TestSpringLayoutIsDeterministic(t *testing.T) {
	g := testMaps().Global
	p1 := springLayout(g, DefaultLayoutSeed, 50)
	p2 := springLayout(g, DefaultLayoutSeed, 50)
	assert.Equal(t, p1, p2)
	require.Len(t, p1, g.NumNodes())
	for _, p := range p1 {
		assert.LessOrEqual(t, p.X, 1.0+1e-9)
		assert.GreaterOrEqual(t, p.X, -1.0-1e-9)
		assert.LessOrEqual(t, p.Y, 1.0+1e-9)
		assert.GreaterOrEqual(t, p.Y, -1.0-1e-9)
	}
	p3 := springLayout(g, 7, 50)
	assert.NotEqual(t, p1, p3)
}

func TestSpringLayoutSmallGraphs(t *testing.T) {
	assert.Empty(t, springLayout(cgraph.NewGraph("x", "x"), DefaultLayoutSeed, 50))
	g := cgraph.NewGraph("x", "x")
	g.AddNode("x")
	assert.Equal(t, []point{{0, 0}}, springLayout(g, DefaultLayoutSeed, 50))
}

func TestWriteDOT(t *testing.T) {
	g := cgraph.NewGraph("fruit", cgraph.HypernymTitle("fruit"))
	g.AddEdge("fruit", "apple")
	g.AddEdge("fruit", `the "red" one`)
	g.AddEdge("fruit", `back\slash`)
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, g, g.Title))

	parsed, err := gographviz.Read(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, parsed.Directed)
	assert.Equal(t, `"fruit"`, parsed.Name)
	assert.Equal(t, `"Concept Map: fruit"`, parsed.Attrs["label"])
	assert.Len(t, parsed.Nodes.Nodes, 4)
	assert.NotEmpty(t, parsed.Edges.SrcToDsts[`"fruit"`][`"apple"`])
	assert.NotEmpty(t, parsed.Edges.SrcToDsts[`"fruit"`][`"the \"red\" one"`])
	assert.NotEmpty(t, parsed.Edges.SrcToDsts[`"fruit"`][`"back\\slash"`])
	assert.Len(t, parsed.Edges.Edges, 3)
}

func TestDOTIDQuoting(t *testing.T) {
	assert.Equal(t, `"apple"`, dotID("apple"))
	assert.Equal(t, `"the \"red\" one"`, dotID(`the "red" one`))
	assert.Equal(t, `"a\\b"`, dotID(`a\b`))
	assert.Equal(t, `"žluťoučký kůň"`, dotID("žluťoučký kůň"))
}

func TestRenderAllOrderAndGlobalLast(t *testing.T) {
	r := &recordingRenderer{}
	arts := RenderAll(context.Background(), r, testMaps(), 3)
	require.Len(t, arts, 4)
	assert.Equal(t, "concept_map_fruit.txt", arts[0].Name)
	assert.Equal(t, "concept_map_animal.txt", arts[1].Name)
	assert.Equal(t, "concept_map_metal.txt", arts[2].Name)
	assert.Equal(t, "concept_map_global.txt", arts[3].Name)
	assert.True(t, arts[3].Global)
	assert.Equal(t, cgraph.GlobalTitle, arts[3].Title)
	assert.Equal(t, "concept_map_global.txt", r.names[len(r.names)-1])
}

func TestRenderAllHypernymNamedGlobal(t *testing.T) {
	r := &recordingRenderer{}
	maps := cgraph.Build(extract.Group([]extract.ValidatedPair{
		{Hypernym: "global", Hyponym: "world"},
		{Hypernym: "global_", Hyponym: "earth"},
	}))
	arts := RenderAll(context.Background(), r, maps, 2)
	require.Len(t, arts, 3)
	assert.Equal(t, "concept_map_global_.txt", arts[0].Name)
	assert.False(t, arts[0].Global)
	assert.Equal(t, "concept_map_global__.txt", arts[1].Name)
	assert.False(t, arts[1].Global)
	assert.Equal(t, "concept_map_global.txt", arts[2].Name)
	assert.True(t, arts[2].Global)
}

func TestRenderAllSkipsFailures(t *testing.T) {
	r := &recordingRenderer{failOn: "animal", panicOn: "metal"}
	arts := RenderAllInto(context.Background(), r, testMaps(), 2, "job1")
	require.Len(t, arts, 2)
	assert.Equal(t, "job1/concept_map_fruit.txt", arts[0].Name)
	assert.Equal(t, "job1/concept_map_global.txt", arts[1].Name)
}

func TestRenderAllEmpty(t *testing.T) {
	r := &recordingRenderer{}
	arts := RenderAll(context.Background(), r, cgraph.Build(extract.Group(nil)), 2)
	assert.NotNil(t, arts)
	assert.Empty(t, arts)
	assert.Empty(t, r.names)
}

func TestRenderAllCancelled(t *testing.T) {
	r := &recordingRenderer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	arts := RenderAll(ctx, r, testMaps(), 2)
	assert.Empty(t, arts)
}

func TestDOTRendererWritesFiles(t *testing.T) {
	dir := t.TempDir()
	r := NewDOTRenderer(&Conf{OutputDir: dir})
	arts := RenderAllInto(context.Background(), r, testMaps(), 2, "run")
	require.Len(t, arts, 4)
	for _, a := range arts {
		assert.Equal(t, filepath.Join(dir, "run", filepath.Base(a.Name)), a.Path)
		data, err := os.ReadFile(a.Path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "digraph")
	}
}

func TestPNGRenderer(t *testing.T) {
	dir := t.TempDir()
	r := NewPNGRenderer(&Conf{OutputDir: dir})
	maps := testMaps()
	art, err := r.Render(maps.Graphs[0], maps.Graphs[0].Title, ArtifactName("fruit", r.Extension()))
	require.NoError(t, err)
	assert.Equal(t, "concept_map_fruit.png", art.Name)
	f, err := os.Open(art.Path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)

	dc, err := r.Draw(maps.Global, maps.Global.Title)
	require.NoError(t, err)
	assert.Equal(t, 1000, dc.Width())
	assert.Equal(t, 800, dc.Height())
}

func TestPrepareTargetStaysInRoot(t *testing.T) {
	dir := t.TempDir()
	p, err := prepareTarget(dir, "../../outside.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "outside.png"), p)
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(&Conf{Format: FormatDOT})
	require.NoError(t, err)
	assert.Equal(t, "gv", r.Extension())
	r, err = NewRenderer(&Conf{Format: FormatNone})
	assert.NoError(t, err)
	assert.Nil(t, r)
	_, err = NewRenderer(&Conf{Format: "svg"})
	assert.Error(t, err)
}

func TestConfValidateAndDefaults(t *testing.T) {
	conf := &Conf{OutputDir: filepath.Join(t.TempDir(), "maps")}
	require.NoError(t, conf.ValidateAndDefaults("render"))
	assert.Equal(t, FormatPNG, conf.Format)
	assert.Greater(t, conf.Concurrency, 0)
	assert.Equal(t, int64(DefaultLayoutSeed), conf.LayoutSeed)
	assert.DirExists(t, conf.OutputDir)

	conf = &Conf{Format: "svg"}
	assert.Error(t, conf.ValidateAndDefaults("render"))
}
