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
	"math"
	"math/rand"

	"conmap/cgraph"
)

type point struct {
	X float64
	Y float64
}

const minDist = 0.01

// springLayout positions nodes using the Fruchterman-Reingold
// force-directed algorithm. Edges are treated as undirected.
// Initial positions are drawn from a seeded generator so the
// result is deterministic. Returned positions are indexed by node
// order and scaled to [-1, 1].
func springLayout(g *cgraph.Graph, seed int64, iterations int) []point {
	n := g.NumNodes()
	if n == 0 {
		return []point{}
	}
	if n == 1 {
		return []point{{0, 0}}
	}
	rnd := rand.New(rand.NewSource(seed))
	pos := make([]point, n)
	for i := range pos {
		pos[i] = point{X: rnd.Float64(), Y: rnd.Float64()}
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		i, j := g.NodeIndex(e.From), g.NodeIndex(e.To)
		adj[i][j] = true
		adj[j][i] = true
	}

	k := math.Sqrt(1.0 / float64(n))
	minX, maxX, minY, maxY := bounds(pos)
	temp := math.Max(maxX-minX, maxY-minY) * 0.1
	dt := temp / float64(iterations+1)
	disp := make([]point, n)
	for it := 0; it < iterations; it++ {
		for i := range disp {
			disp[i] = point{}
			for j := range pos {
				if i == j {
					continue
				}
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				dist := math.Max(math.Hypot(dx, dy), minDist)
				force := k * k / (dist * dist)
				if adj[i][j] {
					force -= dist / k
				}
				disp[i].X += dx * force
				disp[i].Y += dy * force
			}
		}
		for i := range pos {
			length := math.Max(math.Hypot(disp[i].X, disp[i].Y), minDist)
			pos[i].X += disp[i].X * temp / length
			pos[i].Y += disp[i].Y * temp / length
		}
		temp -= dt
	}
	return rescale(pos)
}

func bounds(pos []point) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

func rescale(pos []point) []point {
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))
	var lim float64
	for i := range pos {
		pos[i].X -= cx
		pos[i].Y -= cy
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim > 0 {
		for i := range pos {
			pos[i].X /= lim
			pos[i].Y /= lim
		}
	}
	return pos
}
