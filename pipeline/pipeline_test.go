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

package pipeline

import (
	"context"
	"testing"

	"conmap/cgraph"
	"conmap/extract"
	"conmap/lexicon"
	"conmap/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioA = "Fruits such as apples, bananas and oranges are healthy."

func newTestPipeline(t *testing.T, format string, dedup bool) *Pipeline {
	lex, err := lexicon.LoadEmbedded()
	require.NoError(t, err)
	extractConf := &extract.Conf{DedupHyponyms: dedup}
	require.NoError(t, extractConf.ValidateAndDefaults("extract"))
	renderConf := &render.Conf{Format: format, OutputDir: t.TempDir()}
	require.NoError(t, renderConf.ValidateAndDefaults("render"))
	p, err := NewFromConf(lex, &lexicon.Conf{}, extractConf, renderConf)
	require.NoError(t, err)
	return p
}

func TestRunScenarioA(t *testing.T) {
	p := newTestPipeline(t, render.FormatDOT, true)
	ans, err := p.Run(context.Background(), scenarioA)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, ans.Status())
	assert.Equal(t, []string{"fruit"}, ans.Grouped.Keys())
	assert.ElementsMatch(t, []string{"apple", "banana", "orange"}, ans.Grouped.Hyponyms("fruit"))

	require.Len(t, ans.Maps.Graphs, 1)
	fruit := ans.Maps.Graphs[0]
	assert.Equal(t, 3, fruit.NumEdges())
	global := ans.Maps.Global
	assert.True(t, global.HasEdge(cgraph.RootLabel, "fruit"))
	assert.Equal(t, 4, global.NumEdges())

	require.Len(t, ans.Artifacts, 2)
	assert.Equal(t, "concept_map_fruit.gv", ans.Artifacts[0].Name)
	assert.Equal(t, "concept_map_global.gv", ans.Artifacts[1].Name)
	assert.FileExists(t, ans.Artifacts[1].Path)
}

func TestRunKeepsDuplicatesByDefault(t *testing.T) {
	p := newTestPipeline(t, render.FormatNone, false)
	ans, err := p.Run(context.Background(), scenarioA)
	require.NoError(t, err)
	assert.Len(t, ans.Grouped.Hyponyms("fruit"), 6)
	assert.Equal(t, 3, ans.Maps.Graphs[0].NumEdges())
	assert.Empty(t, ans.Artifacts)
	assert.False(t, p.RenderingEnabled())
}

func TestRunEmptyInput(t *testing.T) {
	p := newTestPipeline(t, render.FormatDOT, false)
	for _, text := range []string{"", "  \n\t "} {
		ans, err := p.Run(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, StatusEmpty, ans.Status())
		assert.Empty(t, ans.Matches)
		assert.Equal(t, 0, ans.Grouped.Len())
		assert.True(t, ans.Maps.Empty())
		assert.Empty(t, ans.Artifacts)
	}
}

func TestRunNoRelations(t *testing.T) {
	p := newTestPipeline(t, render.FormatDOT, false)
	ans, err := p.Run(context.Background(), "Metals such as apples and bananas.")
	require.NoError(t, err)
	assert.NotEmpty(t, ans.Matches)
	assert.Equal(t, StatusNoRelations, ans.Status())
	assert.Empty(t, ans.Artifacts)
}

func TestRunNoBreakSpaceBetweenHyponyms(t *testing.T) {
	p := newTestPipeline(t, render.FormatNone, true)
	ans, err := p.Run(context.Background(), "Fruits such as apples,\u00a0bananas and oranges.")
	require.NoError(t, err)
	assert.Equal(t, []string{"fruit"}, ans.Grouped.Keys())
	assert.ElementsMatch(t, []string{"apple", "banana", "orange"}, ans.Grouped.Hyponyms("fruit"))
	assert.Equal(t, 3, ans.Maps.Graphs[0].NumEdges())
}

func TestRunIntoSubdir(t *testing.T) {
	p := newTestPipeline(t, render.FormatDOT, false)
	ans, err := p.RunInto(context.Background(), scenarioA, "abc")
	require.NoError(t, err)
	require.NotEmpty(t, ans.Artifacts)
	assert.Equal(t, "abc/concept_map_fruit.gv", ans.Artifacts[0].Name)
}

func TestRunIsIdempotent(t *testing.T) {
	p := newTestPipeline(t, render.FormatNone, false)
	text := "Mammals like dogs and cats. Animals including mammals and birds."
	a1, err := p.Run(context.Background(), text)
	require.NoError(t, err)
	a2, err := p.Run(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, a1.Grouped.Keys(), a2.Grouped.Keys())
	for _, k := range a1.Grouped.Keys() {
		assert.Equal(t, a1.Grouped.Hyponyms(k), a2.Grouped.Hyponyms(k))
	}
	assert.Equal(t, a1.Maps.Global.Edges(), a2.Maps.Global.Edges())
}

func TestRunCancelled(t *testing.T) {
	p := newTestPipeline(t, render.FormatNone, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Run(ctx, scenarioA)
	assert.ErrorIs(t, err, context.Canceled)
}
