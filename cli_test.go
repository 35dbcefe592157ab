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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConf(t *testing.T, format string) (string, string) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "maps")
	confPath := filepath.Join(dir, "conmap.json")
	raw := `{"extract": {"dedupHyponyms": true}, "render": {"format": "` + format +
		`", "outputDir": "` + filepath.ToSlash(outDir) + `", "concurrency": 2}}`
	require.NoError(t, os.WriteFile(confPath, []byte(raw), 0644))
	return confPath, outDir
}

func TestRunExtract(t *testing.T) {
	confPath, outDir := writeTestConf(t, "dot")
	var buf bytes.Buffer
	err := runExtract(
		&buf, confPath, "", "Fruits such as apples, bananas and oranges are healthy.")
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Relations found: 1\n"), out)
	assert.Contains(t, out, "Fruit → apple, banana, orange\n")
	assert.Contains(t, out, "Generated concept maps:")
	assert.Contains(t, out, filepath.Join(outDir, "concept_map_fruit.gv"))
	assert.FileExists(t, filepath.Join(outDir, "concept_map_global.gv"))
}

func TestRunExtractFromFile(t *testing.T) {
	confPath, _ := writeTestConf(t, "none")
	input := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("The weather is nice today."), 0644))
	var buf bytes.Buffer
	require.NoError(t, runExtract(&buf, confPath, input, ""))
	assert.Equal(t, "No hypernym/hyponym relations found.\n", buf.String())
}

func TestRunExtractEmptyText(t *testing.T) {
	confPath, _ := writeTestConf(t, "none")
	input := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("  \n "), 0644))
	var buf bytes.Buffer
	require.NoError(t, runExtract(&buf, confPath, input, ""))
	assert.Equal(t, "Please provide a text to analyze.\n", buf.String())
}

func TestRunExtractInvalidConf(t *testing.T) {
	confPath, _ := writeTestConf(t, "svg")
	var buf bytes.Buffer
	assert.Error(t, runExtract(&buf, confPath, "", "Fruits such as apples."))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Fruit", capitalize("fruit"))
	assert.Equal(t, "Élan", capitalize("éLAN"))
	assert.Equal(t, "", capitalize(""))
}
