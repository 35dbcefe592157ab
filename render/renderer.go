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
	"context"
	"fmt"
	"path"

	"conmap/cgraph"
	"conmap/merror"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func renderProtected(r Renderer, g *cgraph.Graph, outputName string) (ans Artifact, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = merror.PanicValueToErr(rec)
		}
	}()
	ans, err = r.Render(g, g.Title, outputName)
	return
}

// RenderAll renders all concept maps to the root of the output directory.
func RenderAll(ctx context.Context, r Renderer, maps *cgraph.ConceptMaps, concurrency int) []Artifact {
	return RenderAllInto(ctx, r, maps, concurrency, "")
}

// RenderAllInto renders per-hypernym graphs in parallel (at most `concurrency`
// at a time) and then the global graph. A failed graph is logged and skipped.
// Artifacts follow the order of maps.All(). With non-empty subdir, all the
// artifacts are placed to the subdirectory of the output directory.
func RenderAllInto(
	ctx context.Context,
	r Renderer,
	maps *cgraph.ConceptMaps,
	concurrency int,
	subdir string,
) []Artifact {
	if maps.Empty() {
		return []Artifact{}
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	rendered := make([]*Artifact, len(maps.Graphs))
	eg := new(errgroup.Group)
	eg.SetLimit(concurrency)
	for i, g := range maps.Graphs {
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			art, err := renderProtected(r, g, path.Join(subdir, ArtifactName(g.Name, r.Extension())))
			if err != nil {
				log.Error().Err(err).Str("graph", g.Name).Msg("failed to render graph, skipping")
				return nil
			}
			rendered[i] = &art
			return nil
		})
	}
	eg.Wait()

	ans := make([]Artifact, 0, len(rendered)+1)
	for _, art := range rendered {
		if art != nil {
			ans = append(ans, *art)
		}
	}
	if ctx.Err() != nil {
		return ans
	}
	art, err := renderProtected(r, maps.Global, path.Join(subdir, GlobalArtifactName(r.Extension())))
	if err != nil {
		log.Error().Err(err).Str("graph", maps.Global.Name).Msg("failed to render graph, skipping")

	} else {
		ans = append(ans, art)
	}
	log.Debug().
		Int("numArtifacts", len(ans)).
		Int("numGraphs", len(maps.Graphs)+1).
		Msg("rendered concept maps")
	return ans
}

// NewRenderer creates a renderer based on the configured format.
// For the `none` format, nil is returned which means no artifacts
// should be produced.
func NewRenderer(conf *Conf) (Renderer, error) {
	switch conf.Format {
	case FormatPNG, "":
		return NewPNGRenderer(conf), nil
	case FormatDOT:
		return NewDOTRenderer(conf), nil
	case FormatNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown render format %s", conf.Format)
	}
}
