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
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"conmap/cgraph"
)

const (
	artifactPrefix = "concept_map_"
)

var unsafeNameChars = regexp.MustCompile(`[^\p{L}\p{N}_-]`)

// Artifact describes a single rendered concept graph
type Artifact struct {

	// Name is a path relative to the output directory
	Name string `json:"name"`

	// Path is the actual file path
	Path   string `json:"-"`
	Title  string `json:"title"`
	Graph  string `json:"graph"`
	Global bool   `json:"global"`
}

// Renderer produces a persisted node-link diagram of a graph
type Renderer interface {
	Render(g *cgraph.Graph, title, outputName string) (Artifact, error)

	// Extension provides a file extension (without the dot) of
	// produced artifacts.
	Extension() string
}

// ArtifactName provides a deterministic file name for a hypernym
// graph. Characters unsafe for file names are replaced by `_`.
// A trailing `_` is added to empty names, to names ending with `_`
// and to names equal to the reserved global one so distinct
// (sanitized) hypernyms never share a file and never take
// the global graph's name.
func ArtifactName(hypernym, ext string) string {
	name := unsafeNameChars.ReplaceAllString(hypernym, "_")
	if name == "" || strings.HasSuffix(name, "_") || strings.EqualFold(name, cgraph.GlobalName) {
		name += "_"
	}
	return fmt.Sprintf("%s%s.%s", artifactPrefix, name, ext)
}

func GlobalArtifactName(ext string) string {
	return fmt.Sprintf("%s%s.%s", artifactPrefix, cgraph.GlobalName, ext)
}

// prepareTarget resolves outputName within rootDir and makes
// sure all the parent directories exist.
func prepareTarget(rootDir, outputName string) (string, error) {
	path := filepath.Join(rootDir, filepath.Clean("/"+outputName))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to prepare directory for %s: %w", outputName, err)
	}
	return path, nil
}

func newArtifact(g *cgraph.Graph, title, outputName, path string) Artifact {
	return Artifact{
		Name:   filepath.ToSlash(filepath.Clean(outputName)),
		Path:   path,
		Title:  title,
		Graph:  g.Name,
		Global: g.IsGlobal(),
	}
}
