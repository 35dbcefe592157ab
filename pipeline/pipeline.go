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
	"strings"
	"time"

	"conmap/cgraph"
	"conmap/extract"
	"conmap/hearst"
	"conmap/render"

	"github.com/rs/zerolog/log"
)

type Status string

const (
	// StatusEmpty means the input text contains nothing to process
	StatusEmpty Status = "empty"

	// StatusNoRelations means no pair has been confirmed
	StatusNoRelations Status = "noRelations"

	StatusOK Status = "ok"
)

// Outcome contains results of all the processing stages
type Outcome struct {
	Matches     []hearst.RawMatch         `json:"matches"`
	Pairs       []extract.ValidatedPair   `json:"pairs"`
	Grouped     *extract.GroupedRelations `json:"grouped"`
	Maps        *cgraph.ConceptMaps       `json:"-"`
	Artifacts   []render.Artifact         `json:"artifacts"`
	NumFailures int                       `json:"numFailures"`
	ProcTime    time.Duration             `json:"-"`
	empty       bool
}

func (o *Outcome) Status() Status {
	if o.empty {
		return StatusEmpty
	}
	if len(o.Pairs) == 0 {
		return StatusNoRelations
	}
	return StatusOK
}

type Options struct {
	DedupHyponyms bool

	// Concurrency limits parallel rendering of graphs
	Concurrency int
}

// Pipeline is a reusable chain text -> matches -> pairs -> groups
// -> graphs -> artifacts. All the collaborators are expected to be
// immutable so a single Pipeline can serve concurrent runs.
type Pipeline struct {
	extractor *extract.Extractor
	renderer  render.Renderer
	opts      Options
}

func (p *Pipeline) Matcher() *hearst.Matcher {
	return p.extractor.Matcher()
}

// RenderingEnabled tells whether the pipeline produces artifacts
func (p *Pipeline) RenderingEnabled() bool {
	return p.renderer != nil
}

func emptyOutcome() *Outcome {
	grouped := extract.NewGroupedRelations()
	return &Outcome{
		Matches:   []hearst.RawMatch{},
		Pairs:     []extract.ValidatedPair{},
		Grouped:   grouped,
		Maps:      cgraph.Build(grouped),
		Artifacts: []render.Artifact{},
		empty:     true,
	}
}

func (p *Pipeline) Run(ctx context.Context, text string) (*Outcome, error) {
	return p.RunInto(ctx, text, "")
}

// RunInto processes the text and stores all the artifacts into
// a subdirectory `subdir` of the renderer's output directory.
// Empty input and no relations found are not considered errors.
// Only a cancelled context produces an error.
func (p *Pipeline) RunInto(ctx context.Context, text, subdir string) (*Outcome, error) {
	t0 := time.Now()
	if strings.TrimSpace(text) == "" {
		ans := emptyOutcome()
		ans.ProcTime = time.Since(t0)
		return ans, nil
	}
	res, err := p.extractor.ExtractContext(ctx, text)
	if err != nil {
		return nil, err
	}
	grouped := extract.Group(res.Pairs)
	if p.opts.DedupHyponyms {
		grouped = grouped.Deduplicated()
	}
	ans := &Outcome{
		Matches:     res.Matches,
		Pairs:       res.Pairs,
		Grouped:     grouped,
		Maps:        cgraph.Build(grouped),
		Artifacts:   []render.Artifact{},
		NumFailures: res.NumFailures,
	}
	if p.renderer != nil && !ans.Maps.Empty() {
		ans.Artifacts = render.RenderAllInto(ctx, p.renderer, ans.Maps, p.opts.Concurrency, subdir)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ans.ProcTime = time.Since(t0)
	log.Debug().
		Int("numMatches", len(ans.Matches)).
		Int("numPairs", len(ans.Pairs)).
		Int("numGraphs", len(ans.Maps.Graphs)).
		Int("numArtifacts", len(ans.Artifacts)).
		Dur("procTime", ans.ProcTime).
		Str("status", string(ans.Status())).
		Msg("pipeline finished")
	return ans, nil
}

// New creates a pipeline. The renderer may be nil in which case
// no artifacts are produced.
func New(extractor *extract.Extractor, renderer render.Renderer, opts Options) *Pipeline {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Pipeline{
		extractor: extractor,
		renderer:  renderer,
		opts:      opts,
	}
}
