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
	"math"

	"conmap/cgraph"

	"github.com/fogleman/gg"
)

const (
	nodeRadius  = 28.0
	arrowLength = 12.0
	arrowWidth  = 5.0
	titleHeight = 40.0
	margin      = 50.0

	nodeColor  = "#1f78b4"
	edgeColor  = "#333333"
	labelColor = "#000000"
)

type canvasSize struct {
	Width  int
	Height int
}

var (
	hypernymCanvas = canvasSize{Width: 800, Height: 600}
	globalCanvas   = canvasSize{Width: 1000, Height: 800}
)

// PNGRenderer draws graphs as raster images using
// a seeded spring layout.
type PNGRenderer struct {
	outputDir  string
	seed       int64
	iterations int
	fontPath   string
}

func (r *PNGRenderer) Extension() string {
	return "png"
}

func (r *PNGRenderer) canvasFor(g *cgraph.Graph) canvasSize {
	if g.IsGlobal() {
		return globalCanvas
	}
	return hypernymCanvas
}

func (r *PNGRenderer) setFont(dc *gg.Context, points float64) error {
	if r.fontPath == "" {
		return nil
	}
	if err := dc.LoadFontFace(r.fontPath, points); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	return nil
}

func drawArrow(dc *gg.Context, from, to point) {
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)
	if dist <= 2*nodeRadius {
		return
	}
	ux, uy := dx/dist, dy/dist
	sx, sy := from.X+ux*nodeRadius, from.Y+uy*nodeRadius
	ex, ey := to.X-ux*nodeRadius, to.Y-uy*nodeRadius
	dc.DrawLine(sx, sy, ex, ey)
	dc.Stroke()
	bx, by := ex-ux*arrowLength, ey-uy*arrowLength
	dc.MoveTo(ex, ey)
	dc.LineTo(bx-uy*arrowWidth, by+ux*arrowWidth)
	dc.LineTo(bx+uy*arrowWidth, by-ux*arrowWidth)
	dc.ClosePath()
	dc.Fill()
}

// Draw creates an in-memory image of the graph
func (r *PNGRenderer) Draw(g *cgraph.Graph, title string) (*gg.Context, error) {
	size := r.canvasFor(g)
	dc := gg.NewContext(size.Width, size.Height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	positions := springLayout(g, r.seed, r.iterations)
	scaleX := (float64(size.Width) - 2*margin) / 2
	scaleY := (float64(size.Height) - 2*margin - titleHeight) / 2
	canvasPos := make([]point, len(positions))
	for i, p := range positions {
		canvasPos[i] = point{
			X: margin + (p.X+1)*scaleX,
			Y: margin + titleHeight + (p.Y+1)*scaleY,
		}
	}

	dc.SetHexColor(edgeColor)
	dc.SetLineWidth(1.5)
	for _, e := range g.Edges() {
		drawArrow(dc, canvasPos[g.NodeIndex(e.From)], canvasPos[g.NodeIndex(e.To)])
	}

	for _, p := range canvasPos {
		dc.SetHexColor(nodeColor)
		dc.DrawCircle(p.X, p.Y, nodeRadius)
		dc.Fill()
	}

	if err := r.setFont(dc, dfltLabelFontSizePoints); err != nil {
		return nil, err
	}
	dc.SetHexColor(labelColor)
	for i, n := range g.Nodes() {
		dc.DrawStringAnchored(n, canvasPos[i].X, canvasPos[i].Y, 0.5, 0.5)
	}

	titleSize := 14.0
	if g.IsGlobal() {
		titleSize = 16.0
	}
	if err := r.setFont(dc, titleSize); err != nil {
		return nil, err
	}
	dc.DrawStringAnchored(title, float64(size.Width)/2, margin/2+titleHeight/2, 0.5, 0.5)
	return dc, nil
}

func (r *PNGRenderer) Render(g *cgraph.Graph, title, outputName string) (Artifact, error) {
	dc, err := r.Draw(g, title)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to draw graph %s: %w", g.Name, err)
	}
	path, err := prepareTarget(r.outputDir, outputName)
	if err != nil {
		return Artifact{}, err
	}
	if err := dc.SavePNG(path); err != nil {
		return Artifact{}, fmt.Errorf("failed to save graph %s: %w", g.Name, err)
	}
	return newArtifact(g, title, outputName, path), nil
}

func NewPNGRenderer(conf *Conf) *PNGRenderer {
	ans := &PNGRenderer{
		outputDir:  conf.OutputDir,
		seed:       conf.LayoutSeed,
		iterations: conf.LayoutIterations,
		fontPath:   conf.FontPath,
	}
	if ans.seed == 0 {
		ans.seed = DefaultLayoutSeed
	}
	if ans.iterations <= 0 {
		ans.iterations = dfltLayoutIterations
	}
	return ans
}
